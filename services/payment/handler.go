package payment

import (
	"context"
	"errors"
	"math"
	"strings"

	"travelsure/config"
	"travelsure/models"

	"go.uber.org/zap"
)

// Handler creates and settles premium payments.
type Handler interface {
	CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
	Confirm(ctx context.Context, invoice models.Invoice, paymentID string) (*models.Invoice, error)
}

// NewHandler returns the Stripe handler when a key is configured, otherwise
// the simulated one.
func NewHandler(cfg config.Config, logger *zap.Logger) Handler {
	if cfg.StripeKey == "" {
		logger.Warn("STRIPE_KEY not set, payments are simulated")
		return NewSimulatedHandler(logger, 0)
	}
	return NewStripeHandler(cfg.StripeKey, logger)
}

func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.SessionID == "" {
		return errors.New("missing session ID")
	}
	if len(strings.TrimSpace(req.Currency)) != 3 {
		return errors.New("currency must be a 3-letter code")
	}
	return nil
}

// toCents converts an amount in major units to the smallest currency unit.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
