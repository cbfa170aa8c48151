package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, url, err := s.UploadDocument(ctx, "travelsure/policies", "TS-1.txt", []byte("certificate"))
	require.NoError(t, err)
	assert.Equal(t, "travelsure/policies/TS-1.txt", id)
	assert.Equal(t, "memory://travelsure/policies/TS-1.txt", url)

	doc, ok := s.Document(id)
	require.True(t, ok)
	assert.Equal(t, "certificate", string(doc))

	require.NoError(t, s.DeleteDocument(ctx, id))
	assert.Error(t, s.DeleteDocument(ctx, id))

	_, _, err = s.UploadDocument(ctx, "x", "", nil)
	assert.Error(t, err)
}

func TestSignedURL(t *testing.T) {
	at := time.Unix(1700000000, 0)
	url := signedURL("demo", "secret", "travelsure/policies/TS-1", at)

	assert.True(t, strings.HasPrefix(url, "https://res.cloudinary.com/demo/raw/authenticated/s--"))
	assert.True(t, strings.HasSuffix(url, "/expires_1700000000/travelsure/policies/TS-1"))
	assert.Equal(t, url, signedURL("demo", "secret", "travelsure/policies/TS-1", at))
	assert.NotEqual(t, url, signedURL("demo", "other", "travelsure/policies/TS-1", at))
}
