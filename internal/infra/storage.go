package infra

import (
	"context"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// StorageUploader writes product photos to a Cloud Storage bucket and returns
// their public URL. The bucket is expected to allow public reads — the URL is
// embedded directly in producer documents consumed by the map frontend.
type StorageUploader struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewStorageUploader(ctx context.Context, credsPath, bucketName string) (*StorageUploader, error) {
	cli, err := storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
	if err != nil {
		return nil, fmt.Errorf("cliente storage: %w", err)
	}
	return &StorageUploader{bucket: cli.Bucket(bucketName), bucketName: bucketName}, nil
}

// Upload stores one photo under a generated object name and returns its URL.
func (s *StorageUploader) Upload(ctx context.Context, nomeFicheiro, contentType string, conteudo io.Reader) (string, error) {
	objeto := "produtos/" + uuid.New().String() + path.Ext(nomeFicheiro)

	w := s.bucket.Object(objeto).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, conteudo); err != nil {
		w.Close()
		return "", fmt.Errorf("upload %s: %w", objeto, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", objeto, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objeto), nil
}
