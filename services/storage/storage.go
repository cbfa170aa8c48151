package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore uploads documents to Cloudinary as raw assets.
type CloudinaryStore struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// NewCloudinaryStore wraps an initialised Cloudinary client.
func NewCloudinaryStore(cld *cloudinary.Cloudinary, cloudName, apiSecret string) *CloudinaryStore {
	return &CloudinaryStore{cld: cld, cloudName: cloudName, apiSecret: apiSecret}
}

// UploadDocument uploads content and returns the permanent identifier and its secure URL.
func (s *CloudinaryStore) UploadDocument(ctx context.Context, folder, name string, content []byte) (string, string, error) {
	params := uploader.UploadParams{
		Folder:       folder,
		PublicID:     name,
		ResourceType: "raw",
		Overwrite:    api.Bool(true),
	}
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(content), params)
	if err != nil {
		return "", "", fmt.Errorf("CloudinaryStore: failed to upload document: %w", err)
	}
	if result.Error.Message != "" {
		return "", "", fmt.Errorf("CloudinaryStore: upload rejected: %s", result.Error.Message)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("CloudinaryStore: no public ID returned")
	}
	return result.PublicID, result.SecureURL, nil
}

// DeleteDocument deletes a document given its public ID.
func (s *CloudinaryStore) DeleteDocument(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID, ResourceType: "raw"})
	if err != nil {
		return fmt.Errorf("CloudinaryStore: failed to delete document: %w", err)
	}
	return nil
}

// SecureURL builds a signed, expiring link for an authenticated raw asset. The
// signature is SHA-1 over "expires_at" and "public_id" followed by the API secret.
func (s *CloudinaryStore) SecureURL(publicID string, expires time.Duration) (string, error) {
	return signedURL(s.cloudName, s.apiSecret, publicID, time.Now().Add(expires)), nil
}

func signedURL(cloudName, secret, publicID string, expiresAt time.Time) string {
	ts := expiresAt.Unix()
	signature := computeSHA1(fmt.Sprintf("expires_at=%d&public_id=%s%s", ts, publicID, secret))
	return fmt.Sprintf("https://res.cloudinary.com/%s/raw/authenticated/s--%s--/expires_%d/%s", cloudName, signature[:8], ts, publicID)
}

// computeSHA1 computes the SHA-1 hash of the input and returns its hex encoding.
func computeSHA1(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
