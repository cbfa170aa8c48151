package payment

import (
	"context"
	"fmt"
	"time"

	"travelsure/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulatedHandler settles every card payment without a gateway. It is used in
// development and by the chat CLI.
type SimulatedHandler struct {
	logger *zap.Logger
	delay  time.Duration
}

func NewSimulatedHandler(logger *zap.Logger, delay time.Duration) *SimulatedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedHandler{logger: logger, delay: delay}
}

func (h *SimulatedHandler) CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, newPaymentError(CodeInvalidRequest, err.Error(), err)
	}
	now := time.Now()
	paymentID := "pi_sim_" + uuid.New().String()
	inv := &models.Invoice{
		InvoiceID:    uuid.New().String(),
		SessionID:    req.SessionID,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Status:       models.PaymentStatusPending,
		Method:       "card",
		PaymentID:    paymentID,
		ClientSecret: paymentID + "_secret",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	h.logger.Info("Simulated payment intent created",
		zap.String("invoice", inv.InvoiceID), zap.String("sessionId", req.SessionID))
	return inv, nil
}

func (h *SimulatedHandler) Confirm(ctx context.Context, invoice models.Invoice, paymentID string) (*models.Invoice, error) {
	if paymentID != "" && paymentID != invoice.PaymentID {
		return nil, newPaymentError(CodeMismatch, fmt.Sprintf("payment %s does not belong to invoice %s", paymentID, invoice.InvoiceID), nil)
	}
	if h.delay > 0 {
		select {
		case <-time.After(h.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	invoice.Status = models.PaymentStatusPaid
	invoice.UpdatedAt = time.Now()
	h.logger.Info("Card payment successful", zap.String("invoice", invoice.InvoiceID))
	return &invoice, nil
}
