package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain"
	"github.com/dramirez-dev/conecta-pueblo-api/pkg/config"
)

// tiposPermitidos extensiones de imagen aceptadas para subidas y su content type.
var tiposPermitidos = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// Uploader define el puerto de subida de imágenes usado por los handlers.
type Uploader interface {
	SubirImagen(ctx context.Context, nombreArchivo string, archivo io.Reader, tamano int64) (url string, objeto string, err error)
	EliminarImagen(ctx context.Context, objeto string) error
}

// MinIOClient implementación de Uploader sobre MinIO (o cualquier compatible S3).
type MinIOClient struct {
	client *minio.Client
	cfg    config.StorageConfig
}

// NewMinIOClient conecta con el servidor de objetos y garantiza que el bucket exista.
func NewMinIOClient(ctx context.Context, cfg config.StorageConfig) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("conectar minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("verificar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("crear bucket: %w", err)
		}
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// SubirImagen valida extensión y tamaño, sube el archivo y devuelve la URL pública
// junto al nombre del objeto. Las imágenes se organizan por año/mes.
func (m *MinIOClient) SubirImagen(ctx context.Context, nombreArchivo string, archivo io.Reader, tamano int64) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(nombreArchivo))
	contentType, ok := tiposPermitidos[ext]
	if !ok {
		return "", "", fmt.Errorf("%w: extensión %q no permitida", domain.ErrInvalidInput, ext)
	}
	if m.cfg.MaxUploadSize > 0 && tamano > m.cfg.MaxUploadSize {
		return "", "", fmt.Errorf("%w: el archivo supera el tamaño máximo permitido", domain.ErrInvalidInput)
	}

	now := time.Now()
	objeto := fmt.Sprintf("uploads/%d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)

	_, err := m.client.PutObject(ctx, m.cfg.Bucket, objeto, archivo, tamano, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-filename": nombreArchivo,
			"uploaded-at":       now.Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("subir objeto: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(m.cfg.PublicBaseURL, "/"), m.cfg.Bucket, objeto)
	return url, objeto, nil
}

// EliminarImagen borra un objeto subido previamente.
func (m *MinIOClient) EliminarImagen(ctx context.Context, objeto string) error {
	if err := m.client.RemoveObject(ctx, m.cfg.Bucket, objeto, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("eliminar objeto: %w", err)
	}
	return nil
}
