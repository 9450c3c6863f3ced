package uploading

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-analytics-api/infrastructure/objectstorage"
	"github.com/vfg2006/creator-analytics-api/pkg/utils"
)

// MaxImageSize é o tamanho máximo aceito para imagens de perfil (2 MiB)
const MaxImageSize = 2 << 20

type UploadService interface {
	UploadCreatorImage(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (string, error)
}

type uploadService struct {
	storage objectstorage.Uploader
}

func NewService(storage objectstorage.Uploader) UploadService {
	return &uploadService{
		storage: storage,
	}
}

// UploadCreatorImage valida e envia uma imagem de perfil de criador para o
// armazenamento de objetos, retornando a URL pública do arquivo
func (s *uploadService) UploadCreatorImage(
	ctx context.Context,
	filename, contentType string,
	size int64,
	reader io.Reader,
) (string, error) {
	if reader == nil || filename == "" {
		return "", ErrMissingFile
	}

	if size > MaxImageSize {
		return "", ErrFileTooLarge
	}

	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrInvalidFileType
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return "", ErrStorageOperation
	}

	objectName := fmt.Sprintf(
		"creators/%d_%s_%s",
		time.Now().UnixMilli(),
		suffix,
		sanitizeFilename(filename),
	)

	url, err := s.storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		logrus.WithError(err).WithField("object", objectName).Error("Erro ao enviar imagem para o armazenamento")
		return "", ErrStorageOperation
	}

	return url, nil
}

// sanitizeFilename remove diretórios e caracteres problemáticos do nome
// original do arquivo antes de usá-lo na chave do objeto
func sanitizeFilename(name string) string {
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return b.String()
}
