package payment

import "fmt"

// Payment error codes.
const (
	CodeInvalidRequest = "invalidRequest"
	CodeGateway        = "gateway"
	CodeMismatch       = "paymentMismatch"
)

// PaymentError is returned for requests the gateway or the handler refuse.
type PaymentError struct {
	Code    string
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

func newPaymentError(code, msg string, err error) error {
	return &PaymentError{Code: code, Message: msg, Err: err}
}
