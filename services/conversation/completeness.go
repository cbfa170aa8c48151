package conversation

import (
	"travelsure/models"
)

// Field names a piece of trip data the assistant can ask for.
type Field string

const (
	FieldName             Field = "name"
	FieldAge              Field = "age"
	FieldTripType         Field = "trip_type"
	FieldDepartureDate    Field = "departure_date"
	FieldTripDuration     Field = "trip_duration"
	FieldReturnDate       Field = "return_date"
	FieldDepartureCountry Field = "departure_country"
	FieldArrivalCountry   Field = "arrival_country"
	FieldTravellers       Field = "number_of_travellers"
)

// ComputeDerived fills the fields that follow from others: the return date from
// departure plus duration (only while no return date exists), the duration
// from the two dates, the legacy date aliases and the destination synonyms.
// It never overwrites a value and reports whether anything changed.
func ComputeDerived(t *models.TripData) bool {
	changed := false
	fill := func(dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
			changed = true
		}
	}

	fill(&t.DepartureDate, t.TripStartDate)
	fill(&t.TripStartDate, t.DepartureDate)
	fill(&t.ReturnDate, t.TripEndDate)

	if t.ReturnDate == "" && t.TripDuration > 0 && t.DepartureDate != "" {
		if ret, ok := AddDays(t.DepartureDate, t.TripDuration); ok {
			t.ReturnDate = ret
			changed = true
		}
	}
	fill(&t.TripEndDate, t.ReturnDate)

	if t.TripDuration == 0 && t.DepartureDate != "" && t.ReturnDate != "" {
		if days, ok := DaysBetween(t.DepartureDate, t.ReturnDate); ok && days > 0 {
			t.TripDuration = days
			changed = true
		}
	}

	fill(&t.Destination, t.ArrivalCountry)
	fill(&t.ArrivalCountry, t.Destination)
	return changed
}

// IsComplete derives what it can into t, then reports whether the trip has a
// departure date, a return date or duration, a destination and a head count.
func IsComplete(t *models.TripData) bool {
	ComputeDerived(t)
	return t.DepartureDate != "" &&
		(t.ReturnDate != "" || t.TripDuration > 0) &&
		t.DestinationName() != "" &&
		hasTravellers(*t)
}

// MissingFields lists the fields still to ask for, most important first.
func MissingFields(t models.TripData) []Field {
	var missing []Field
	if t.Name == "" {
		missing = append(missing, FieldName)
	}
	if t.Age == 0 {
		missing = append(missing, FieldAge)
	}
	if t.TripType == "" {
		missing = append(missing, FieldTripType)
	}
	departure := firstNonEmpty(t.DepartureDate, t.TripStartDate)
	if departure == "" {
		missing = append(missing, FieldDepartureDate)
	}
	if firstNonEmpty(t.ReturnDate, t.TripEndDate) == "" && t.TripDuration == 0 {
		if departure != "" {
			missing = append(missing, FieldTripDuration)
		} else {
			missing = append(missing, FieldReturnDate)
		}
	}
	if t.DepartureCountry == "" {
		missing = append(missing, FieldDepartureCountry)
	}
	if t.DestinationName() == "" {
		missing = append(missing, FieldArrivalCountry)
	}
	if !hasTravellers(t) {
		missing = append(missing, FieldTravellers)
	}
	return missing
}

func hasTravellers(t models.TripData) bool {
	return t.NumberOfAdults > 0 || t.NumberOfChildren > 0 || t.NumberOfTravellers > 0
}

func fieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}

var fieldPrompts = map[Field]string{
	FieldName:             "Could I start with your name?",
	FieldAge:              "How old are you?",
	FieldTripType:         "Is this a round trip, or a single one-way trip?",
	FieldDepartureDate:    "When do you leave? A date like 15/03/2025 works, or just say today or tomorrow.",
	FieldTripDuration:     "How long will you be away? For example, 10 days or 2 weeks.",
	FieldReturnDate:       "When do you come back?",
	FieldDepartureCountry: "Which country are you travelling from?",
	FieldArrivalCountry:   "Where are you travelling to?",
	FieldTravellers:       "How many people are travelling, and are any of them children?",
}

// PromptFor returns the question asking for f.
func PromptFor(f Field) string {
	return fieldPrompts[f]
}
