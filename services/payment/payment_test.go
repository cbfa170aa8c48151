package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelsure/config"
	"travelsure/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func validRequest() models.PaymentRequest {
	return models.PaymentRequest{SessionID: "s1", Amount: 100.8, Currency: "usd"}
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))

	bad := validRequest()
	bad.Amount = 0
	assert.Error(t, validateRequest(bad))

	bad = validRequest()
	bad.SessionID = ""
	assert.Error(t, validateRequest(bad))

	bad = validRequest()
	bad.Currency = "dollars"
	assert.Error(t, validateRequest(bad))
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(10080), toCents(100.8))
	assert.Equal(t, int64(1999), toCents(19.99))
}

func TestSimulatedHandler(t *testing.T) {
	h := NewSimulatedHandler(zap.NewNop(), 0)
	ctx := context.Background()

	inv, err := h.CreateIntent(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, inv.Status)
	assert.NotEmpty(t, inv.InvoiceID)
	assert.NotEmpty(t, inv.ClientSecret)

	paid, err := h.Confirm(ctx, *inv, inv.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, paid.Status)
	assert.Equal(t, models.PaymentStatusPending, inv.Status)

	_, err = h.Confirm(ctx, *inv, "pi_other")
	var pe *PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, CodeMismatch, pe.Code)
}

func TestSimulatedHandlerRejectsInvalid(t *testing.T) {
	h := NewSimulatedHandler(nil, 0)
	req := validRequest()
	req.Amount = -1

	_, err := h.CreateIntent(context.Background(), req)
	var pe *PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, CodeInvalidRequest, pe.Code)
}

func TestSimulatedHandlerHonoursContext(t *testing.T) {
	h := NewSimulatedHandler(nil, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Confirm(ctx, models.Invoice{PaymentID: "pi_1"}, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, models.PaymentStatusPaid, statusFor(stripe.PaymentIntentStatusSucceeded))
	assert.Equal(t, models.PaymentStatusFailed, statusFor(stripe.PaymentIntentStatusCanceled))
	assert.Equal(t, models.PaymentStatusPending, statusFor(stripe.PaymentIntentStatusRequiresPaymentMethod))
}

func TestNewHandlerPicksBackend(t *testing.T) {
	_, ok := NewHandler(config.Config{}, zap.NewNop()).(*SimulatedHandler)
	assert.True(t, ok)
	_, ok = NewHandler(config.Config{StripeKey: "sk_test_x"}, zap.NewNop()).(*StripeHandler)
	assert.True(t, ok)
}

func TestGatewayError(t *testing.T) {
	err := gatewayError(&stripe.Error{Msg: "card declined"})
	var pe *PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, CodeGateway, pe.Code)
	assert.Equal(t, "card declined", pe.Message)
}
