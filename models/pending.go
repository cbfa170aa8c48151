package models

// PendingState tags the PendingQuestion variant.
type PendingState string

const (
	PendingNone     PendingState = ""
	PendingAwaiting PendingState = "awaiting_text"
	PendingCaptured PendingState = "captured"
)

// PendingQuestion is a question the user raised during intake that will be
// answered once the trip details are collected. Text is only set when State is
// PendingCaptured.
type PendingQuestion struct {
	State PendingState `json:"state,omitempty" bson:"state,omitempty"`
	Text  string       `json:"text,omitempty" bson:"text,omitempty"`
}

// AwaitingQuestion marks that the user wants to ask something but has not said what.
func AwaitingQuestion() PendingQuestion {
	return PendingQuestion{State: PendingAwaiting}
}

// CapturedQuestion holds the text of the user's question.
func CapturedQuestion(text string) PendingQuestion {
	if text == "" {
		return AwaitingQuestion()
	}
	return PendingQuestion{State: PendingCaptured, Text: text}
}

func (p PendingQuestion) IsNone() bool     { return p.State == PendingNone }
func (p PendingQuestion) IsAwaiting() bool { return p.State == PendingAwaiting }
func (p PendingQuestion) IsCaptured() bool { return p.State == PendingCaptured && p.Text != "" }

// Exists reports whether any question is pending, captured or not.
func (p PendingQuestion) Exists() bool { return !p.IsNone() }
