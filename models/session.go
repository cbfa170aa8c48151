package models

import (
	"fmt"
	"slices"
	"time"
)

// Roles used in the conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of the conversation history.
type Turn struct {
	Role    string    `json:"role" bson:"role"`
	Content string    `json:"content" bson:"content"`
	At      time.Time `json:"at" bson:"at"`
}

// Session holds the state of one sales conversation.
type Session struct {
	SessionID           string          `json:"sessionId" bson:"session_id"`
	Step                Step            `json:"step" bson:"step"`
	TripData            TripData        `json:"tripData" bson:"trip_data"`
	PendingQuestion     PendingQuestion `json:"pendingQuestion" bson:"pending_question"`
	ConversationHistory []Turn          `json:"conversationHistory" bson:"conversation_history"`
	CreatedAt           time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt           time.Time       `json:"updatedAt" bson:"updated_at"`

	// Later steps.
	Persona          Persona        `json:"persona,omitempty" bson:"persona,omitempty"`
	RecommendedPlans []string       `json:"recommendedPlans,omitempty" bson:"recommended_plans,omitempty"`
	SelectedPlan     string         `json:"selectedPlan,omitempty" bson:"selected_plan,omitempty"`
	OfferedAddOns    []string       `json:"offeredAddOns,omitempty" bson:"offered_add_ons,omitempty"`
	AddOns           []string       `json:"addOns,omitempty" bson:"add_ons,omitempty"`
	Gaps             []CoverageGap  `json:"gaps,omitempty" bson:"gaps,omitempty"`
	Quote            *Quote         `json:"quote,omitempty" bson:"quote,omitempty"`
	Invoice          *Invoice       `json:"invoice,omitempty" bson:"invoice,omitempty"`
	Policy           *PolicySummary `json:"policy,omitempty" bson:"policy,omitempty"`
	DeviceToken      string         `json:"-" bson:"device_token,omitempty"`
}

// NewSession returns a session at the start of trip intake.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		SessionID: id,
		Step:      StepTripIntake,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AppendTurn adds a message to the history.
func (s *Session) AppendTurn(role, content string, at time.Time) {
	s.ConversationHistory = append(s.ConversationHistory, Turn{Role: role, Content: content, At: at})
}

// AdvanceTo moves the session forward. Moving backwards, staying put or naming an
// unknown step returns ErrInvalidTransition.
func (s *Session) AdvanceTo(next Step) error {
	if !next.Valid() || next.Index() <= s.Step.Index() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Step, next)
	}
	s.Step = next
	return nil
}

// Clone returns a deep copy so callers can mutate it without touching stored state.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.TripData = s.TripData.Clone()
	out.ConversationHistory = slices.Clone(s.ConversationHistory)
	out.RecommendedPlans = slices.Clone(s.RecommendedPlans)
	out.OfferedAddOns = slices.Clone(s.OfferedAddOns)
	out.AddOns = slices.Clone(s.AddOns)
	out.Gaps = slices.Clone(s.Gaps)
	if s.Quote != nil {
		q := *s.Quote
		q.Lines = slices.Clone(s.Quote.Lines)
		out.Quote = &q
	}
	if s.Invoice != nil {
		inv := *s.Invoice
		out.Invoice = &inv
	}
	if s.Policy != nil {
		p := *s.Policy
		out.Policy = &p
	}
	return &out
}
