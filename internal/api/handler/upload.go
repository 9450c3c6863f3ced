package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/uploading"
	"github.com/vfg2006/creator-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/creator-analytics-api/pkg/log"
)

type UploadResponse struct {
	URL string `json:"url"`
}

// UploadCreatorImage recebe uma imagem de perfil via multipart/form-data no
// campo "image" e retorna a URL pública do arquivo armazenado
func UploadCreatorImage(service uploading.UploadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(uploading.MaxImageSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo excede o tamanho máximo de 2MB", nil)
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum arquivo enviado no campo image", nil)
			return
		}
		defer file.Close()

		logger := log.ForContext(r.Context())
		logger.WithFields(log.Fields{
			"file_name": header.Filename,
			"file_size": header.Size,
		}).Info("upload: recebendo imagem de criador")

		url, err := service.UploadCreatorImage(
			r.Context(),
			header.Filename,
			header.Header.Get("Content-Type"),
			header.Size,
			file,
		)
		if err != nil {
			handleUploadError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadResponse{URL: url})
	}
}

func handleUploadError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, uploading.ErrMissingFile):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum arquivo enviado", nil)

	case errors.Is(err, uploading.ErrFileTooLarge):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo excede o tamanho máximo de 2MB", nil)

	case errors.Is(err, uploading.ErrInvalidFileType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Apenas imagens são aceitas", nil)

	case errors.Is(err, uploading.ErrStorageOperation):
		apiErrors.WriteError(w, apiErrors.ErrObjectStorage, "Erro ao enviar arquivo para o armazenamento", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar upload", nil)
	}
}
