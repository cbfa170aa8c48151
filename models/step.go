package models

import "errors"

// Step is a state of the sales conversation.
type Step string

const (
	StepTripIntake            Step = "trip_intake"
	StepPersonaClassification Step = "persona_classification"
	StepPlanRecommendation    Step = "plan_recommendation"
	StepAddOns                Step = "add_ons"
	StepCoverageGap           Step = "coverage_gap"
	StepBindCheck             Step = "bind_check"
	StepPayment               Step = "payment"
	StepPostPurchase          Step = "post_purchase"
)

// ErrInvalidTransition is returned when a step change would move backwards or
// when an operation is attempted from the wrong step.
var ErrInvalidTransition = errors.New("invalid step transition")

var stepOrder = []Step{
	StepTripIntake,
	StepPersonaClassification,
	StepPlanRecommendation,
	StepAddOns,
	StepCoverageGap,
	StepBindCheck,
	StepPayment,
	StepPostPurchase,
}

// Steps returns the steps in conversation order.
func Steps() []Step {
	out := make([]Step, len(stepOrder))
	copy(out, stepOrder)
	return out
}

// Index returns the position of s in the conversation order, or -1.
func (s Step) Index() int {
	for i, st := range stepOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	return s.Index() >= 0
}

// Next returns the step after s. The last step returns itself.
func (s Step) Next() Step {
	i := s.Index()
	if i < 0 || i == len(stepOrder)-1 {
		return s
	}
	return stepOrder[i+1]
}
