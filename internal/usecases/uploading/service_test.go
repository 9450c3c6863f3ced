package uploading

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeStorage struct {
	lastObjectName  string
	lastContentType string
	uploadErr       error
}

func (f *fakeStorage) Upload(_ context.Context, objectName string, _ io.Reader, _ int64, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.lastObjectName = objectName
	f.lastContentType = contentType
	return "http://storage.local/creator-images/" + objectName, nil
}

func TestUploadCreatorImage(t *testing.T) {
	t.Run("Upload com sucesso retorna a URL pública", func(t *testing.T) {
		storage := &fakeStorage{}
		service := NewService(storage)

		url, err := service.UploadCreatorImage(
			context.Background(),
			"perfil.png",
			"image/png",
			1024,
			strings.NewReader("conteudo"),
		)

		assert.NoError(t, err)
		assert.Contains(t, url, "creators/")
		assert.Contains(t, url, "perfil.png")
		assert.Equal(t, "image/png", storage.lastContentType)
		assert.True(t, strings.HasPrefix(storage.lastObjectName, "creators/"))
	})

	t.Run("Nome do arquivo é sanitizado na chave do objeto", func(t *testing.T) {
		storage := &fakeStorage{}
		service := NewService(storage)

		_, err := service.UploadCreatorImage(
			context.Background(),
			"../etc/foto de perfil!.png",
			"image/png",
			1024,
			strings.NewReader("conteudo"),
		)

		assert.NoError(t, err)
		assert.NotContains(t, storage.lastObjectName, "..")
		assert.NotContains(t, storage.lastObjectName, " ")
		assert.NotContains(t, storage.lastObjectName, "!")
	})

	t.Run("Arquivo acima de 2MB é rejeitado", func(t *testing.T) {
		service := NewService(&fakeStorage{})

		_, err := service.UploadCreatorImage(
			context.Background(),
			"grande.png",
			"image/png",
			MaxImageSize+1,
			strings.NewReader("conteudo"),
		)

		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("Tipo de arquivo que não é imagem é rejeitado", func(t *testing.T) {
		service := NewService(&fakeStorage{})

		_, err := service.UploadCreatorImage(
			context.Background(),
			"documento.pdf",
			"application/pdf",
			1024,
			strings.NewReader("conteudo"),
		)

		assert.ErrorIs(t, err, ErrInvalidFileType)
	})

	t.Run("Requisição sem arquivo é rejeitada", func(t *testing.T) {
		service := NewService(&fakeStorage{})

		_, err := service.UploadCreatorImage(context.Background(), "", "image/png", 0, nil)

		assert.ErrorIs(t, err, ErrMissingFile)
	})

	t.Run("Falha no armazenamento retorna erro de storage", func(t *testing.T) {
		service := NewService(&fakeStorage{uploadErr: errors.New("minio indisponível")})

		_, err := service.UploadCreatorImage(
			context.Background(),
			"perfil.png",
			"image/png",
			1024,
			strings.NewReader("conteudo"),
		)

		assert.ErrorIs(t, err, ErrStorageOperation)
	})
}
