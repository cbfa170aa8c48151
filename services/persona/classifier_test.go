package persona

import (
	"testing"

	"travelsure/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()
	cases := []struct {
		name string
		trip models.TripData
		want models.Persona
	}{
		{"medical first", models.TripData{MedicalConditionsList: []string{"asthma"}, NumberOfChildren: 2}, models.PersonaHealthConscious},
		{"children", models.TripData{NumberOfAdults: 2, NumberOfChildren: 1, TripStyle: "relax"}, models.PersonaFamilyPlanner},
		{"minor by age", models.TripData{TravellerAges: []int{40, 12}}, models.PersonaFamilyPlanner},
		{"business", models.TripData{TripStyle: "business", Activities: []string{"hiking"}}, models.PersonaBusinessTraveller},
		{"activities", models.TripData{Activities: []string{"diving"}}, models.PersonaAdventurousExplorer},
		{"romantic", models.TripData{TripStyle: "romantic"}, models.PersonaRomanticGetaway},
		{"relax", models.TripData{TripStyle: "relax"}, models.PersonaRelaxedVacationer},
		{"couple week", models.TripData{NumberOfAdults: 2, TripDuration: 10}, models.PersonaRelaxedVacationer},
		{"default", models.TripData{NumberOfAdults: 1, TripDuration: 3}, models.PersonaValueSeeker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.trip))
		})
	}
}
