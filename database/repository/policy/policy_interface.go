package policyRepo

import (
	"context"
	"errors"

	"travelsure/models"
)

// ErrPolicyNotFound is returned when no policy matches the lookup.
var ErrPolicyNotFound = errors.New("policy not found")

// PolicyRepository defines methods for issued policy data access.
type PolicyRepository interface {
	// Create inserts a new policy record.
	Create(ctx context.Context, p *models.Policy) error
	// GetByNumber retrieves a policy by its policy number.
	GetByNumber(ctx context.Context, policyNumber string) (*models.Policy, error)
	// GetBySession retrieves the policy issued for a chat session.
	GetBySession(ctx context.Context, sessionID string) (*models.Policy, error)
	// MarkReminderSent flags the pre-departure reminder as delivered.
	MarkReminderSent(ctx context.Context, policyNumber string) error
}
