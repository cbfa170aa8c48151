package models

import "time"

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// --- PaymentRequest & Invoice ---
type PaymentRequest struct {
	SessionID   string
	Amount      float64
	Currency    string
	Idempotency string
	Metadata    map[string]string
	Description string
}

// Invoice tracks a premium payment from intent creation to settlement.
type Invoice struct {
	InvoiceID    string    `json:"invoiceId" bson:"invoice_id"`
	SessionID    string    `json:"sessionId" bson:"session_id"`
	Amount       float64   `json:"amount" bson:"amount"`
	Currency     string    `json:"currency" bson:"currency"`
	Status       string    `json:"status" bson:"status"`
	Method       string    `json:"method" bson:"method"`
	PaymentID    string    `json:"paymentId" bson:"payment_id"`
	ClientSecret string    `json:"clientSecret,omitempty" bson:"-"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
	Error        string    `json:"error,omitempty" bson:"error,omitempty"`
}
