package policyRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelsure/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPolicyRepo implements PolicyRepository using MongoDB.
type MongoPolicyRepo struct {
	coll *mongo.Collection
}

// NewMongoPolicyRepo creates a policy repository over the "policies" collection.
func NewMongoPolicyRepo(db *mongo.Database) (*MongoPolicyRepo, error) {
	repo := &MongoPolicyRepo{coll: db.Collection("policies")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoPolicyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "policy_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "session_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "coverage_start", Value: 1}, {Key: "reminder_sent", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new policy document.
func (r *MongoPolicyRepo) Create(ctx context.Context, p *models.Policy) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.IssuedAt.IsZero() {
		p.IssuedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}
	return nil
}

func (r *MongoPolicyRepo) GetByNumber(ctx context.Context, policyNumber string) (*models.Policy, error) {
	return r.findOne(ctx, bson.M{"policy_number": policyNumber})
}

func (r *MongoPolicyRepo) GetBySession(ctx context.Context, sessionID string) (*models.Policy, error) {
	return r.findOne(ctx, bson.M{"session_id": sessionID})
}

func (r *MongoPolicyRepo) findOne(ctx context.Context, filter bson.M) (*models.Policy, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Policy
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to fetch policy: %w", err)
	}
	return &p, nil
}

// MarkReminderSent sets reminder_sent on the policy.
func (r *MongoPolicyRepo) MarkReminderSent(ctx context.Context, policyNumber string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"policy_number": policyNumber},
		bson.M{"$set": bson.M{"reminder_sent": true}})
	if err != nil {
		return fmt.Errorf("failed to update policy %s: %w", policyNumber, err)
	}
	if res.MatchedCount == 0 {
		return ErrPolicyNotFound
	}
	return nil
}
