package conversation

import (
	"strings"
	"time"

	"travelsure/models"
)

// Extractor turns one free-text message into a partial TripData using an
// ordered list of independent pattern rules.
type Extractor struct {
	now   func() time.Time
	rules []rule
}

type rule struct {
	name  string
	apply func(x *extraction)
}

// NewExtractor returns an extractor resolving relative dates against now.
// A nil now uses the wall clock.
func NewExtractor(now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{
		now: now,
		rules: []rule{
			{"relative_date", extractRelativeDate},
			{"name", extractName},
			{"age", extractAge},
			{"destination", extractDestination},
			{"trip_type", extractTripType},
			{"date_range", extractDateRange},
			{"single_date", extractSingleDate},
			{"duration", extractDuration},
			{"countries", extractCountries},
			{"travellers", extractTravellers},
			{"traveller_ages", extractTravellerAges},
			{"activities", extractActivities},
			{"medical", extractMedical},
			{"trip_style", extractTripStyle},
		},
	}
}

// Extract returns only the fields found in message. known is read to decide
// which rules apply and is never modified.
func (e *Extractor) Extract(message string, known models.TripData) models.TripData {
	x := &extraction{
		msg:   strings.TrimSpace(message),
		known: known,
		now:   e.now(),
	}
	x.lower = strings.ToLower(x.msg)
	if x.msg == "" {
		return models.TripData{}
	}
	for _, r := range e.rules {
		r.apply(x)
	}
	return x.out
}

// RuleNames lists the rules in the order they run.
func (e *Extractor) RuleNames() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.name
	}
	return names
}

// extraction is the working state of one Extract call. Rules read known and
// out together so a field found earlier in the same message counts as known.
type extraction struct {
	msg   string
	lower string
	known models.TripData
	out   models.TripData
	now   time.Time

	nameClaimed     bool
	ageClaimed      bool
	rangeMatched    bool
	travellerPhrase bool
	countryPhrase   bool
}

func (x *extraction) departureDate() string {
	return firstNonEmpty(x.known.DepartureDate, x.known.TripStartDate, x.out.DepartureDate)
}

func (x *extraction) returnDate() string {
	return firstNonEmpty(x.known.ReturnDate, x.known.TripEndDate, x.out.ReturnDate)
}

func (x *extraction) destination() string {
	return firstNonEmpty(x.known.Destination, x.known.ArrivalCountry, x.out.Destination, x.out.ArrivalCountry)
}

func (x *extraction) departureCountry() string {
	return firstNonEmpty(x.known.DepartureCountry, x.out.DepartureCountry)
}

// hasAdultCount ignores children: a known child count still leaves the adults
// to be asked for.
func (x *extraction) hasAdultCount() bool {
	return x.known.NumberOfAdults > 0 || x.known.NumberOfTravellers > 0 ||
		x.out.NumberOfAdults > 0 || x.out.NumberOfTravellers > 0
}

func (x *extraction) setDeparture(date string) {
	x.out.DepartureDate = date
	x.out.TripStartDate = date
}

func (x *extraction) setReturn(date string) {
	x.out.ReturnDate = date
	x.out.TripEndDate = date
}

// asksSomething reports the meta-question phrases that make "to X" unreliable.
func (x *extraction) asksSomething() bool {
	return strings.Contains(x.lower, "want to ask") || strings.Contains(x.lower, "have a question")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
