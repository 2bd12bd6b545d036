package infra

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// NewFirestore opens a Firestore client from a service-account credentials
// file. A missing or unreadable file is reported as an error so the caller can
// fall back to the embedded row store.
func NewFirestore(ctx context.Context, credsPath, projectID string) (*firestore.Client, error) {
	if _, err := os.Stat(credsPath); err != nil {
		return nil, fmt.Errorf("credenciais firebase: %w", err)
	}
	if projectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID não definido")
	}

	cli, err := firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credsPath))
	if err != nil {
		return nil, fmt.Errorf("cliente firestore: %w", err)
	}
	return cli, nil
}
