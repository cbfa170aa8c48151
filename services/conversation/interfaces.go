package conversation

import (
	"context"

	"travelsure/models"
)

// FAQService answers coverage and policy questions.
type FAQService interface {
	Answer(ctx context.Context, question string, pc models.PolicyContext) (string, error)
}

// PersonaClassifier is the rule-based persona fallback.
type PersonaClassifier interface {
	Classify(trip models.TripData) models.Persona
}

// PlanEngine prices the catalogue for a trip.
type PlanEngine interface {
	Recommend(trip models.TripData, persona models.Persona) []models.PlanQuote
	// FindPlan resolves a reply ("2", "the premium one") against the offered plan ids.
	FindPlan(reply string, offered []string) (models.Plan, bool)
	AddOnsFor(trip models.TripData, planID string) []models.AddOn
	// ParseAddOns returns the chosen add-on ids and whether the user declined them all.
	ParseAddOns(reply string, offered []string) (ids []string, none bool)
	Gaps(trip models.TripData, planID string, addOns []string) []models.CoverageGap
	Quote(trip models.TripData, planID string, addOns []string) (models.Quote, error)
}

// PaymentHandler starts and settles premium payments.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
	// Confirm refreshes the invoice from the gateway. paymentID may be empty, in
	// which case the invoice's own payment id is used.
	Confirm(ctx context.Context, invoice models.Invoice, paymentID string) (*models.Invoice, error)
}

// PolicyIssuer turns a paid session into an issued policy.
type PolicyIssuer interface {
	Issue(ctx context.Context, s *models.Session) (*models.PolicySummary, error)
}
