package conversation

import (
	"errors"
	"fmt"

	"travelsure/models"
)

// Error codes carried by ConversationError.
const (
	CodeInvalidTransition = "invalidTransition"
	CodeSessionStore      = "sessionStore"
	CodePayment           = "payment"
)

// ConversationError is returned by the transport-driven operations.
type ConversationError struct {
	Code    string
	Message string
	Err     error
}

func (e *ConversationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ConversationError) Unwrap() error {
	return e.Err
}

func newTransitionError(current, want models.Step) error {
	return &ConversationError{
		Code:    CodeInvalidTransition,
		Message: fmt.Sprintf("session is at %s, operation needs %s", current, want),
		Err:     models.ErrInvalidTransition,
	}
}

func newStoreError(err error) error {
	return &ConversationError{Code: CodeSessionStore, Message: err.Error(), Err: err}
}

// IsInvalidTransition reports whether err rejects an out-of-order operation.
func IsInvalidTransition(err error) bool {
	return errors.Is(err, models.ErrInvalidTransition)
}
