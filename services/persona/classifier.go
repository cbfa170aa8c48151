// Package persona maps collected trip details to a traveller persona with
// deterministic rules. It is the fallback when no language model is configured
// or the model's answer is unusable.
package persona

import (
	"slices"

	"travelsure/models"
)

// Classifier applies the rules in priority order.
type Classifier struct{}

// NewClassifier returns a rule-based classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

var activePursuits = []string{"skiing", "diving", "hiking", "scooter", "adventure"}

// Classify returns the first persona whose rule matches. Health needs outrank
// everything else; a trip with no distinguishing signal is a Value Seeker.
func (c *Classifier) Classify(trip models.TripData) models.Persona {
	switch {
	case len(trip.MedicalConditionsList) > 0 || trip.MedicalConditions != "":
		return models.PersonaHealthConscious
	case trip.NumberOfChildren > 0 || hasMinor(trip.TravellerAges):
		return models.PersonaFamilyPlanner
	case trip.TripStyle == "business":
		return models.PersonaBusinessTraveller
	case trip.TripStyle == "adventure" || slices.ContainsFunc(trip.Activities, isActive):
		return models.PersonaAdventurousExplorer
	case trip.TripStyle == "romantic":
		return models.PersonaRomanticGetaway
	case trip.TripStyle == "relax":
		return models.PersonaRelaxedVacationer
	case trip.Travellers() == 2 && trip.TripDuration >= 7:
		return models.PersonaRelaxedVacationer
	}
	return models.PersonaValueSeeker
}

func isActive(a string) bool {
	return slices.Contains(activePursuits, a)
}

func hasMinor(ages []int) bool {
	return slices.ContainsFunc(ages, func(a int) bool { return a > 0 && a < 18 })
}
