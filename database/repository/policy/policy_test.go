package policyRepo

import (
	"context"
	"testing"

	"travelsure/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPolicyRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPolicyRepo()

	p := &models.Policy{PolicyNumber: "TS-1", SessionID: "s1", Status: models.PolicyStatusActive}
	require.NoError(t, repo.Create(ctx, p))
	assert.False(t, p.IssuedAt.IsZero())

	assert.Error(t, repo.Create(ctx, &models.Policy{PolicyNumber: "TS-1", SessionID: "s2"}))
	assert.Error(t, repo.Create(ctx, &models.Policy{PolicyNumber: "TS-2", SessionID: "s1"}))

	got, err := repo.GetBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "TS-1", got.PolicyNumber)
	assert.False(t, got.ReminderSent)

	require.NoError(t, repo.MarkReminderSent(ctx, "TS-1"))
	got, err = repo.GetByNumber(ctx, "TS-1")
	require.NoError(t, err)
	assert.True(t, got.ReminderSent)

	_, err = repo.GetByNumber(ctx, "TS-404")
	assert.ErrorIs(t, err, ErrPolicyNotFound)
	assert.ErrorIs(t, repo.MarkReminderSent(ctx, "TS-404"), ErrPolicyNotFound)
}
