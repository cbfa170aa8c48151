package conversation

import (
	"testing"
	"time"

	"travelsure/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.January, 10, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func extract(msg string, known models.TripData) models.TripData {
	return NewExtractor(clock).Extract(msg, known)
}

func TestExtract_RelativeDates(t *testing.T) {
	got := extract("today", models.TripData{})
	assert.Equal(t, "2025-01-10", got.DepartureDate)
	assert.Equal(t, "2025-01-10", got.TripStartDate)

	got = extract("leaving tomorrow", models.TripData{})
	assert.Equal(t, "2025-01-11", got.DepartureDate)

	got = extract("today", models.TripData{DepartureDate: "2025-02-01"})
	assert.Empty(t, got.DepartureDate)
}

func TestExtract_TravellerPhrasesBlockBareNumber(t *testing.T) {
	got := extract("2 adults and 1 kid", models.TripData{})
	assert.Equal(t, 2, got.NumberOfAdults)
	assert.Equal(t, 1, got.NumberOfChildren)
	assert.Zero(t, got.NumberOfTravellers)
	assert.Zero(t, got.Age)
}

func TestExtract_Travellers(t *testing.T) {
	got := extract("4 people, 1 child", models.TripData{})
	assert.Equal(t, 4, got.NumberOfTravellers)
	assert.Equal(t, 3, got.NumberOfAdults)
	assert.Equal(t, 1, got.NumberOfChildren)

	got = extract("just me", models.TripData{})
	assert.Equal(t, 1, got.NumberOfTravellers)
	assert.Equal(t, 1, got.NumberOfAdults)

	got = extract("me and my wife", models.TripData{})
	assert.Equal(t, 2, got.NumberOfAdults)
}

func TestExtract_BareNumber(t *testing.T) {
	got := extract("34", models.TripData{})
	assert.Equal(t, 34, got.Age)
	assert.Zero(t, got.NumberOfAdults)

	got = extract("2", models.TripData{Age: 30})
	assert.Zero(t, got.Age)
	assert.Equal(t, 2, got.NumberOfAdults)

	got = extract("34", models.TripData{Age: 30})
	assert.Zero(t, got.NumberOfAdults)

	got = extract("2", models.TripData{Age: 30, NumberOfChildren: 1})
	assert.Equal(t, 2, got.NumberOfAdults)

	got = extract("3", models.TripData{Age: 30, NumberOfTravellers: 4})
	assert.Zero(t, got.NumberOfAdults)
}

func TestExtract_NameAndAge(t *testing.T) {
	got := extract("My name is sarah", models.TripData{})
	assert.Equal(t, "Sarah", got.Name)
	assert.Empty(t, got.DepartureCountry)

	got = extract("I'm 34", models.TripData{})
	assert.Equal(t, 34, got.Age)
	assert.Empty(t, got.Name)

	got = extract("Sarah", models.TripData{})
	assert.Equal(t, "Sarah", got.Name)
	assert.Empty(t, got.DepartureCountry)

	got = extract("hello", models.TripData{})
	assert.Empty(t, got.Name)
}

func TestExtract_DoesNotOverwriteKnownFields(t *testing.T) {
	known := models.TripData{Name: "Alice", Age: 40, Destination: "Spain"}
	got := extract("My name is Bob, I'm 25 and going to Japan", known)
	assert.Empty(t, got.Name)
	assert.Zero(t, got.Age)
	assert.Empty(t, got.Destination)
	assert.Equal(t, "Alice", known.Name)
}

func TestExtract_DestinationAndRange(t *testing.T) {
	got := extract("I'm going to Japan from 15 March to 25 March", models.TripData{})
	assert.Equal(t, "Japan", got.Destination)
	assert.Equal(t, "Japan", got.ArrivalCountry)
	assert.Equal(t, "2025-03-15", got.DepartureDate)
	assert.Equal(t, "2025-03-25", got.ReturnDate)
	assert.Equal(t, "2025-03-25", got.TripEndDate)
	assert.Empty(t, got.DepartureCountry)
}

func TestExtract_RangeCrossingYear(t *testing.T) {
	got := extract("28 Dec to 4 Jan", models.TripData{})
	assert.Equal(t, "2025-12-28", got.DepartureDate)
	assert.Equal(t, "2026-01-04", got.ReturnDate)
}

func TestExtract_NumericRange(t *testing.T) {
	got := extract("01/06/2025 - 14/06/2025", models.TripData{})
	assert.Equal(t, "2025-06-01", got.DepartureDate)
	assert.Equal(t, "2025-06-14", got.ReturnDate)
}

func TestExtract_SingleDates(t *testing.T) {
	got := extract("15/03/2025", models.TripData{})
	assert.Equal(t, "2025-03-15", got.DepartureDate)
	assert.Empty(t, got.ReturnDate)

	got = extract("back on 20/03/2025", models.TripData{DepartureDate: "2025-03-15"})
	assert.Equal(t, "2025-03-20", got.ReturnDate)
}

func TestExtract_Duration(t *testing.T) {
	got := extract("5 days", models.TripData{DepartureDate: "2025-03-15"})
	assert.Equal(t, 5, got.TripDuration)
	assert.Equal(t, "2025-03-20", got.ReturnDate)

	got = extract("2 weeks", models.TripData{DepartureDate: "2025-03-01"})
	assert.Equal(t, 14, got.TripDuration)
	assert.Equal(t, "2025-03-15", got.ReturnDate)

	got = extract("a fortnight", models.TripData{})
	assert.Equal(t, 14, got.TripDuration)
	assert.Empty(t, got.ReturnDate)
}

func TestExtract_TripType(t *testing.T) {
	assert.Equal(t, models.TripTypeSingle, extract("one way", models.TripData{}).TripType)
	assert.Equal(t, models.TripTypeRound, extract("it's a round trip", models.TripData{}).TripType)
}

func TestExtract_Countries(t *testing.T) {
	got := extract("from Kenya", models.TripData{})
	assert.Equal(t, "Kenya", got.DepartureCountry)

	got = extract("Kenya", models.TripData{})
	assert.Equal(t, "Kenya", got.DepartureCountry)
	assert.Empty(t, got.Name)

	got = extract("kenya", models.TripData{DepartureCountry: "UK"})
	assert.Equal(t, "Kenya", got.ArrivalCountry)

	got = extract("UK", models.TripData{})
	assert.Equal(t, "UK", got.DepartureCountry)
}

func TestExtract_Profile(t *testing.T) {
	got := extract("We'll go skiing and scuba diving", models.TripData{})
	assert.Equal(t, []string{"skiing", "diving"}, got.Activities)

	got = extract("I have diabetes and asthma", models.TripData{})
	assert.Equal(t, []string{"diabetes", "asthma"}, got.MedicalConditionsList)
	assert.Equal(t, "diabetes, asthma", got.MedicalConditions)

	got = extract("a relaxing beach honeymoon", models.TripData{})
	assert.Equal(t, "relax", got.TripStyle)

	got = extract("my kids are 8 years old and 12 years old", models.TripData{})
	assert.Equal(t, []int{8, 12}, got.TravellerAges)
}

func TestExtract_QuestionAnnouncementIsNotADestination(t *testing.T) {
	got := extract("I want to ask a question", models.TripData{})
	assert.True(t, got.IsEmpty())
}

func TestExtractorRuleOrder(t *testing.T) {
	names := NewExtractor(clock).RuleNames()
	require.Len(t, names, 14)
	assert.Equal(t, "relative_date", names[0])
	assert.Equal(t, "trip_style", names[13])
}

func TestExtract_NameDoesNotBlockCountryPhrases(t *testing.T) {
	got := extract("My name is Sam and I'm leaving from Kenya", models.TripData{})
	assert.Equal(t, "Sam", got.Name)
	assert.Equal(t, "Kenya", got.DepartureCountry)

	got = extract("I'm Sam, flying from Kenya to Japan", models.TripData{})
	assert.Equal(t, "Sam", got.Name)
	assert.Equal(t, "Kenya", got.DepartureCountry)
	assert.Equal(t, "Japan", got.Destination)

	got = extract("Sarah", models.TripData{})
	assert.Equal(t, "Sarah", got.Name)
	assert.Empty(t, got.DepartureCountry)
	assert.Empty(t, got.ArrivalCountry)
}

func TestExtract_IntroductionNeedsAName(t *testing.T) {
	for _, msg := range []string{
		"I'm taking my family from Kenya to Spain",
		"I am off to Spain next week",
		"I'm Taking the kids along",
		"im really excited about this trip",
		"I'm travelling with my partner",
		"i am looking for cover",
	} {
		assert.Empty(t, extract(msg, models.TripData{}).Name, msg)
	}

	got := extract("I'm taking my family from Kenya to Spain", models.TripData{})
	assert.Equal(t, "Spain", got.Destination)
	assert.Equal(t, "Kenya", got.DepartureCountry)

	assert.Equal(t, "Sam", extract("i'm sam", models.TripData{}).Name)
	assert.Equal(t, "Sam Okoth", extract("I am Sam Okoth", models.TripData{}).Name)
	assert.Equal(t, "Ada", extract("Hi, I'm Ada and I need travel cover", models.TripData{}).Name)
}
