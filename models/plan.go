package models

// Persona is a traveller archetype used to bias plan recommendations.
type Persona string

const (
	PersonaAdventurousExplorer Persona = "Adventurous Explorer"
	PersonaRelaxedVacationer   Persona = "Relaxed Vacationer"
	PersonaBusinessTraveller   Persona = "Business Traveller"
	PersonaFamilyPlanner       Persona = "Family Planner"
	PersonaRomanticGetaway     Persona = "Romantic Getaway"
	PersonaHealthConscious     Persona = "Health-Conscious Traveller"
	PersonaValueSeeker         Persona = "Value Seeker"
)

// Personas lists every known persona label.
func Personas() []Persona {
	return []Persona{
		PersonaAdventurousExplorer,
		PersonaRelaxedVacationer,
		PersonaBusinessTraveller,
		PersonaFamilyPlanner,
		PersonaRomanticGetaway,
		PersonaHealthConscious,
		PersonaValueSeeker,
	}
}

// Plan is an insurance product in the catalogue.
type Plan struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name" bson:"name"`
	Tier         int      `json:"tier" bson:"tier"`
	DailyRate    float64  `json:"dailyRate" bson:"daily_rate"`
	MedicalLimit float64  `json:"medicalLimit" bson:"medical_limit"`
	MaxTripDays  int      `json:"maxTripDays" bson:"max_trip_days"`
	Covers       []string `json:"covers" bson:"covers"`
	Highlights   []string `json:"highlights" bson:"highlights"`
}

// AddOn is an optional cover extension.
type AddOn struct {
	ID        string   `json:"id" bson:"id"`
	Name      string   `json:"name" bson:"name"`
	FlatPrice float64  `json:"flatPrice" bson:"flat_price"`
	Covers    []string `json:"covers" bson:"covers"`
	Keywords  []string `json:"-" bson:"-"`
}

// PlanQuote is a recommended plan with its price for the trip.
type PlanQuote struct {
	Plan        Plan    `json:"plan"`
	Premium     float64 `json:"premium"`
	Currency    string  `json:"currency"`
	Recommended bool    `json:"recommended"`
	Reason      string  `json:"reason,omitempty"`
}

// QuoteLine is one priced component of a quote.
type QuoteLine struct {
	Label  string  `json:"label" bson:"label"`
	Amount float64 `json:"amount" bson:"amount"`
}

// Quote is the final price shown before binding.
type Quote struct {
	PlanID   string      `json:"planId" bson:"plan_id"`
	Lines    []QuoteLine `json:"lines" bson:"lines"`
	Total    float64     `json:"total" bson:"total"`
	Currency string      `json:"currency" bson:"currency"`
}

// CoverageGap describes a risk the chosen cover does not protect against.
type CoverageGap struct {
	Risk        string `json:"risk" bson:"risk"`
	Description string `json:"description" bson:"description"`
	AddOnID     string `json:"addOnId,omitempty" bson:"add_on_id,omitempty"`
}
