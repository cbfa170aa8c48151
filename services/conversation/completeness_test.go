package conversation

import (
	"fmt"
	"testing"

	"travelsure/models"

	"github.com/stretchr/testify/assert"
)

func TestIsComplete_RequiresAllFour(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		var trip models.TripData
		if mask&1 != 0 {
			trip.DepartureDate = "2025-03-01"
		}
		if mask&2 != 0 {
			trip.ReturnDate = "2025-03-10"
		}
		if mask&4 != 0 {
			trip.Destination = "Japan"
		}
		if mask&8 != 0 {
			trip.NumberOfAdults = 1
		}
		assert.Equal(t, mask == 15, IsComplete(&trip), fmt.Sprintf("mask %04b", mask))
	}
}

func TestIsComplete_DerivesReturnDateOnce(t *testing.T) {
	trip := models.TripData{DepartureDate: "2025-03-01", TripDuration: 5, ArrivalCountry: "Spain", NumberOfChildren: 1}
	assert.True(t, IsComplete(&trip))
	assert.Equal(t, "2025-03-06", trip.ReturnDate)
	assert.Equal(t, "2025-03-06", trip.TripEndDate)
	assert.Equal(t, "Spain", trip.Destination)

	trip.TripDuration = 10
	assert.False(t, ComputeDerived(&trip))
	assert.Equal(t, "2025-03-06", trip.ReturnDate)
}

func TestComputeDerived(t *testing.T) {
	trip := models.TripData{TripStartDate: "2025-03-01", TripEndDate: "2025-03-10"}
	assert.True(t, ComputeDerived(&trip))
	assert.Equal(t, "2025-03-01", trip.DepartureDate)
	assert.Equal(t, "2025-03-10", trip.ReturnDate)
	assert.Equal(t, 9, trip.TripDuration)

	assert.False(t, ComputeDerived(&trip))

	durationOnly := models.TripData{TripDuration: 7}
	assert.False(t, IsComplete(&durationOnly))
	assert.Empty(t, durationOnly.ReturnDate)
}

func TestMissingFields(t *testing.T) {
	assert.Equal(t, []Field{
		FieldName, FieldAge, FieldTripType, FieldDepartureDate, FieldReturnDate,
		FieldDepartureCountry, FieldArrivalCountry, FieldTravellers,
	}, MissingFields(models.TripData{}))

	withDeparture := models.TripData{Name: "Ann", Age: 30, TripType: models.TripTypeRound, DepartureDate: "2025-03-01"}
	assert.Equal(t, []Field{FieldTripDuration, FieldDepartureCountry, FieldArrivalCountry, FieldTravellers},
		MissingFields(withDeparture))

	withDeparture.TripDuration = 4
	withDeparture.DepartureCountry = "UK"
	withDeparture.Destination = "Spain"
	withDeparture.NumberOfTravellers = 2
	assert.Empty(t, MissingFields(withDeparture))
}

func TestPromptFor(t *testing.T) {
	for _, f := range MissingFields(models.TripData{}) {
		assert.NotEmpty(t, PromptFor(f), f)
	}
}
