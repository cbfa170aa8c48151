package storage

import (
	"context"
	"time"
)

// DocumentStore keeps issued policy documents.
type DocumentStore interface {
	// UploadDocument stores content under folder/name and returns its public ID
	// and a download URL.
	UploadDocument(ctx context.Context, folder, name string, content []byte) (publicID, url string, err error)
	DeleteDocument(ctx context.Context, publicID string) error
	// SecureURL returns a signed link that stops working after expires.
	SecureURL(publicID string, expires time.Duration) (string, error)
}
