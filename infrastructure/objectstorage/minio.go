// Package objectstorage integra a API com o serviço de armazenamento de
// objetos (MinIO ou qualquer compatível com S3) usado para as imagens de
// perfil dos criadores
package objectstorage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-analytics-api/internal/config"
)

// Uploader abstrai o armazenamento de objetos para os serviços da aplicação
type Uploader interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type MinioStorage struct {
	client *minio.Client
	cfg    config.Storage
}

func NewMinioStorage(ctx context.Context, cfg config.Storage) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar cliente do armazenamento de objetos: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar bucket %s: %w", cfg.Bucket, err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("erro ao criar bucket %s: %w", cfg.Bucket, err)
		}
		logrus.WithField("bucket", cfg.Bucket).Info("Bucket de imagens criado")
	}

	return &MinioStorage{
		client: client,
		cfg:    cfg,
	}, nil
}

// Upload envia o objeto para o bucket configurado e retorna a URL pública
func (s *MinioStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar objeto %s: %w", objectName, err)
	}

	return s.PublicURL(objectName), nil
}

// PublicURL monta a URL pública de um objeto. O bucket de imagens é público
// para leitura.
func (s *MinioStorage) PublicURL(objectName string) string {
	protocol := "http"
	if s.cfg.UseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.cfg.PublicEndpoint, s.cfg.Bucket, objectName)
}
