package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travelsure/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeHandler takes card payments through Stripe PaymentIntents. The client
// confirms the intent with the returned client secret; Confirm then reads the
// intent back to learn whether it succeeded.
type StripeHandler struct {
	intents *paymentintent.Client
	logger  *zap.Logger
}

func NewStripeHandler(key string, logger *zap.Logger) *StripeHandler {
	return &StripeHandler{
		intents: &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: key},
		logger:  logger,
	}
}

func (h *StripeHandler) CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, newPaymentError(CodeInvalidRequest, err.Error(), err)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toCents(req.Amount)),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	params.Context = ctx
	if req.Idempotency != "" {
		params.SetIdempotencyKey(req.Idempotency)
	}
	params.AddMetadata("session_id", req.SessionID)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := h.intents.New(params)
	if err != nil {
		h.logger.Error("Stripe payment intent failed", zap.String("sessionId", req.SessionID), zap.Error(err))
		return nil, gatewayError(err)
	}

	now := time.Now()
	return &models.Invoice{
		InvoiceID:    uuid.New().String(),
		SessionID:    req.SessionID,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Status:       statusFor(pi.Status),
		Method:       "card",
		PaymentID:    pi.ID,
		ClientSecret: pi.ClientSecret,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (h *StripeHandler) Confirm(ctx context.Context, invoice models.Invoice, paymentID string) (*models.Invoice, error) {
	if paymentID == "" {
		paymentID = invoice.PaymentID
	}
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := h.intents.Get(paymentID, params)
	if err != nil {
		return nil, gatewayError(err)
	}
	if sid := pi.Metadata["session_id"]; sid != invoice.SessionID {
		return nil, newPaymentError(CodeMismatch, fmt.Sprintf("payment %s belongs to session %q", pi.ID, sid), nil)
	}

	invoice.PaymentID = pi.ID
	invoice.Status = statusFor(pi.Status)
	invoice.UpdatedAt = time.Now()
	if pi.LastPaymentError != nil {
		invoice.Error = pi.LastPaymentError.Msg
	}
	h.logger.Info("Stripe payment checked",
		zap.String("invoice", invoice.InvoiceID), zap.String("status", string(pi.Status)))
	return &invoice, nil
}

// statusFor maps a PaymentIntent status onto invoice statuses.
func statusFor(s stripe.PaymentIntentStatus) string {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return models.PaymentStatusPaid
	case stripe.PaymentIntentStatusCanceled:
		return models.PaymentStatusFailed
	}
	return models.PaymentStatusPending
}

func gatewayError(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		return newPaymentError(CodeGateway, se.Msg, err)
	}
	return newPaymentError(CodeGateway, err.Error(), err)
}
