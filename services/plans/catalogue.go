package plans

import "travelsure/models"

// Cover tokens. Activities and conditions picked up during intake use the same
// names so gaps can be found by set difference.
const (
	CoverMedical           = "medical"
	CoverEvacuation        = "evacuation"
	CoverTripCancellation  = "trip_cancellation"
	CoverBaggage           = "baggage"
	CoverTripDelay         = "trip_delay"
	CoverLiability         = "personal_liability"
	CoverSkiing            = "skiing"
	CoverDiving            = "diving"
	CoverHiking            = "hiking"
	CoverScooter           = "scooter"
	CoverAdventure         = "adventure"
	CoverMedicalConditions = "medical_conditions"
	CoverBusinessEquipment = "business_equipment"
	CoverGadgets           = "gadgets"
	CoverAnyReason         = "cancel_any_reason"
)

var defaultPlans = []models.Plan{
	{
		ID: "basic", Name: "Basic", Tier: 1, DailyRate: 2.50, MedicalLimit: 25000, MaxTripDays: 31,
		Covers:     []string{CoverMedical, CoverEvacuation},
		Highlights: []string{"Emergency medical up to 25,000", "Medical evacuation"},
	},
	{
		ID: "essential", Name: "Essential", Tier: 2, DailyRate: 4.00, MedicalLimit: 100000, MaxTripDays: 90,
		Covers:     []string{CoverMedical, CoverEvacuation, CoverTripCancellation, CoverBaggage},
		Highlights: []string{"Emergency medical up to 100,000", "Trip cancellation", "Lost baggage"},
	},
	{
		ID: "comprehensive", Name: "Comprehensive", Tier: 3, DailyRate: 6.50, MedicalLimit: 500000, MaxTripDays: 180,
		Covers:     []string{CoverMedical, CoverEvacuation, CoverTripCancellation, CoverBaggage, CoverTripDelay, CoverLiability, CoverHiking},
		Highlights: []string{"Emergency medical up to 500,000", "Cancellation, delay and baggage", "Personal liability", "Hiking and trekking"},
	},
	{
		ID: "premium", Name: "Premium", Tier: 4, DailyRate: 9.00, MedicalLimit: 1000000, MaxTripDays: 365,
		Covers:     []string{CoverMedical, CoverEvacuation, CoverTripCancellation, CoverBaggage, CoverTripDelay, CoverLiability, CoverHiking, CoverMedicalConditions, CoverGadgets},
		Highlights: []string{"Emergency medical up to 1,000,000", "Declared pre-existing conditions", "Gadgets", "Everything in Comprehensive"},
	},
}

var defaultAddOns = []models.AddOn{
	{ID: "winter_sports", Name: "Winter Sports", FlatPrice: 25, Covers: []string{CoverSkiing}, Keywords: []string{"winter", "ski", "snow"}},
	{ID: "scuba", Name: "Scuba Diving", FlatPrice: 20, Covers: []string{CoverDiving}, Keywords: []string{"scuba", "diving", "dive"}},
	{ID: "adventure", Name: "Adventure Activities", FlatPrice: 30, Covers: []string{CoverAdventure, CoverHiking}, Keywords: []string{"adventure", "activities", "extreme"}},
	{ID: "scooter", Name: "Scooter and Moped", FlatPrice: 15, Covers: []string{CoverScooter}, Keywords: []string{"scooter", "moped", "motorbike"}},
	{ID: "pre_existing", Name: "Pre-existing Conditions", FlatPrice: 40, Covers: []string{CoverMedicalConditions}, Keywords: []string{"pre-existing", "pre existing", "medical", "condition"}},
	{ID: "gadget", Name: "Gadget Cover", FlatPrice: 12, Covers: []string{CoverGadgets}, Keywords: []string{"gadget", "phone", "laptop", "camera"}},
	{ID: "business", Name: "Business Equipment", FlatPrice: 18, Covers: []string{CoverBusinessEquipment}, Keywords: []string{"business", "equipment", "work"}},
	{ID: "cancel_any_reason", Name: "Cancel For Any Reason", FlatPrice: 35, Covers: []string{CoverAnyReason}, Keywords: []string{"cancel", "any reason", "cfar"}},
}

// personaPlan is the plan each persona is steered towards.
var personaPlan = map[models.Persona]string{
	models.PersonaValueSeeker:         "basic",
	models.PersonaRelaxedVacationer:   "essential",
	models.PersonaRomanticGetaway:     "essential",
	models.PersonaBusinessTraveller:   "essential",
	models.PersonaAdventurousExplorer: "comprehensive",
	models.PersonaFamilyPlanner:       "comprehensive",
	models.PersonaHealthConscious:     "premium",
}

var personaReason = map[models.Persona]string{
	models.PersonaValueSeeker:         "Solid core protection at the lowest price.",
	models.PersonaRelaxedVacationer:   "Covers the usual holiday mishaps without paying for extras you won't use.",
	models.PersonaRomanticGetaway:     "Protects your plans if something forces you to cancel.",
	models.PersonaBusinessTraveller:   "Cancellation and baggage cover for trips with fixed commitments.",
	models.PersonaAdventurousExplorer: "Higher medical limits and liability for an active trip.",
	models.PersonaFamilyPlanner:       "Higher limits and delay cover for travelling with family.",
	models.PersonaHealthConscious:     "Includes declared pre-existing conditions and the highest medical limit.",
}

// highCostDestinations carry a medical cost loading.
var highCostDestinations = map[string]bool{
	"usa": true, "us": true, "united states": true, "america": true, "canada": true,
	"japan": true, "switzerland": true, "new york": true, "hawaii": true,
}
