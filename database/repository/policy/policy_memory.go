package policyRepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"travelsure/models"
)

// MemoryPolicyRepo is an in-process PolicyRepository used by the chat CLI and
// deployments without a database.
type MemoryPolicyRepo struct {
	mu        sync.RWMutex
	byNumber  map[string]models.Policy
	bySession map[string]string
}

func NewMemoryPolicyRepo() *MemoryPolicyRepo {
	return &MemoryPolicyRepo{
		byNumber:  make(map[string]models.Policy),
		bySession: make(map[string]string),
	}
}

func (r *MemoryPolicyRepo) Create(_ context.Context, p *models.Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byNumber[p.PolicyNumber]; ok {
		return fmt.Errorf("failed to create policy: duplicate policy number %s", p.PolicyNumber)
	}
	if _, ok := r.bySession[p.SessionID]; ok {
		return fmt.Errorf("failed to create policy: session %s already has a policy", p.SessionID)
	}
	if p.IssuedAt.IsZero() {
		p.IssuedAt = time.Now()
	}
	r.byNumber[p.PolicyNumber] = *p
	r.bySession[p.SessionID] = p.PolicyNumber
	return nil
}

func (r *MemoryPolicyRepo) GetByNumber(_ context.Context, policyNumber string) (*models.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byNumber[policyNumber]
	if !ok {
		return nil, ErrPolicyNotFound
	}
	return &p, nil
}

func (r *MemoryPolicyRepo) GetBySession(ctx context.Context, sessionID string) (*models.Policy, error) {
	r.mu.RLock()
	number, ok := r.bySession[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrPolicyNotFound
	}
	return r.GetByNumber(ctx, number)
}

func (r *MemoryPolicyRepo) MarkReminderSent(_ context.Context, policyNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byNumber[policyNumber]
	if !ok {
		return ErrPolicyNotFound
	}
	p.ReminderSent = true
	r.byNumber[policyNumber] = p
	return nil
}
