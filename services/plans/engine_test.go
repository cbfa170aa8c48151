package plans

import (
	"testing"

	"travelsure/models"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soloWeek(dest string) models.TripData {
	return models.TripData{Destination: dest, NumberOfAdults: 1, NumberOfTravellers: 1, TripDuration: 7, Age: 30}
}

func recommended(quotes []models.PlanQuote) string {
	q, _ := lo.Find(quotes, func(q models.PlanQuote) bool { return q.Recommended })
	return q.Plan.ID
}

func TestRecommend_PricesEveryEligiblePlan(t *testing.T) {
	e := NewEngine("USD")
	quotes := e.Recommend(soloWeek("Spain"), models.PersonaValueSeeker)

	require.Len(t, quotes, 4)
	assert.Equal(t, "basic", recommended(quotes))
	assert.InDelta(t, 17.5, quotes[0].Premium, 0.001)
	assert.InDelta(t, 28.0, quotes[1].Premium, 0.001)
	assert.Equal(t, "usd", quotes[0].Currency)
	assert.NotEmpty(t, quotes[0].Reason)
}

func TestRecommend_LongTripDropsShortPlans(t *testing.T) {
	e := NewEngine("usd")
	trip := soloWeek("Spain")
	trip.TripDuration = 40

	quotes := e.Recommend(trip, models.PersonaValueSeeker)
	require.Len(t, quotes, 3)
	assert.Equal(t, "essential", quotes[0].Plan.ID)
	assert.Equal(t, "essential", recommended(quotes))
}

func TestRecommend_MedicalConditionsGoPremium(t *testing.T) {
	e := NewEngine("usd")
	trip := soloWeek("Spain")
	trip.MedicalConditionsList = []string{"diabetes"}

	assert.Equal(t, "premium", recommended(e.Recommend(trip, models.PersonaValueSeeker)))
}

func TestPremiumLoadings(t *testing.T) {
	e := NewEngine("usd")
	basic, _ := e.Plan("basic")

	assert.InDelta(t, 24.5, e.premium(basic, soloWeek("USA")), 0.001)

	senior := soloWeek("Spain")
	senior.Age = 70
	assert.InDelta(t, 26.25, e.premium(basic, senior), 0.001)

	family := models.TripData{Destination: "Spain", NumberOfAdults: 2, NumberOfChildren: 2, TripDuration: 10}
	comp, _ := e.Plan("comprehensive")
	assert.InDelta(t, 195.0, e.premium(comp, family), 0.001)
}

func TestTripDaysFromDates(t *testing.T) {
	trip := models.TripData{DepartureDate: "2025-03-15", ReturnDate: "2025-03-20"}
	assert.Equal(t, 5, tripDays(trip))
	assert.Equal(t, 1, tripDays(models.TripData{}))
}

func TestFindPlan(t *testing.T) {
	e := NewEngine("usd")
	offered := []string{"basic", "essential", "comprehensive"}

	cases := map[string]string{
		"2":                          "essential",
		"I'll take 3":                "comprehensive",
		"the Comprehensive one":      "comprehensive",
		"let's go with the first one": "basic",
	}
	for reply, want := range cases {
		p, ok := e.FindPlan(reply, offered)
		require.True(t, ok, reply)
		assert.Equal(t, want, p.ID, reply)
	}

	_, ok := e.FindPlan("premium please", offered)
	assert.False(t, ok)
	_, ok = e.FindPlan("5", offered)
	assert.False(t, ok)
}

func TestAddOnsFor(t *testing.T) {
	e := NewEngine("usd")
	trip := soloWeek("Egypt")
	trip.Activities = []string{"diving"}

	basic := e.AddOnsFor(trip, "basic")
	require.Len(t, basic, 8)
	assert.Equal(t, "scuba", basic[0].ID)

	ids := lo.Map(e.AddOnsFor(trip, "premium"), func(a models.AddOn, _ int) string { return a.ID })
	assert.Len(t, ids, 6)
	assert.NotContains(t, ids, "pre_existing")
	assert.NotContains(t, ids, "gadget")
	assert.Contains(t, ids, "adventure")

	assert.Nil(t, e.AddOnsFor(trip, "nope"))
}

func TestParseAddOns(t *testing.T) {
	e := NewEngine("usd")
	offered := []string{"scuba", "winter_sports", "gadget"}

	ids, none := e.ParseAddOns("1 and 3", offered)
	assert.False(t, none)
	assert.Equal(t, []string{"scuba", "gadget"}, ids)

	ids, none = e.ParseAddOns("None, thanks", offered)
	assert.True(t, none)
	assert.Empty(t, ids)

	ids, _ = e.ParseAddOns("add scuba diving please", offered)
	assert.Equal(t, []string{"scuba"}, ids)

	ids, _ = e.ParseAddOns("all of them", offered)
	assert.Equal(t, offered, ids)

	ids, none = e.ParseAddOns("hmm", offered)
	assert.False(t, none)
	assert.Empty(t, ids)
}

func TestGaps(t *testing.T) {
	e := NewEngine("usd")
	trip := soloWeek("Austria")
	trip.Activities = []string{"skiing", "hiking"}

	gaps := e.Gaps(trip, "comprehensive", nil)
	require.Len(t, gaps, 1)
	assert.Equal(t, "Skiing", gaps[0].Risk)
	assert.Equal(t, "winter_sports", gaps[0].AddOnID)
	assert.NotEmpty(t, gaps[0].Description)

	assert.Empty(t, e.Gaps(trip, "comprehensive", []string{"winter_sports"}))

	sick := soloWeek("Spain")
	sick.MedicalConditions = "asthma"
	gaps = e.Gaps(sick, "essential", nil)
	require.Len(t, gaps, 1)
	assert.Equal(t, "pre_existing", gaps[0].AddOnID)
}

func TestQuote(t *testing.T) {
	e := NewEngine("usd")

	q, err := e.Quote(soloWeek("Spain"), "basic", []string{"scuba"})
	require.NoError(t, err)
	assert.Equal(t, "basic", q.PlanID)
	require.Len(t, q.Lines, 2)
	assert.Equal(t, "Basic plan, 7 days, 1 traveller", q.Lines[0].Label)
	assert.InDelta(t, 37.5, q.Total, 0.001)
	assert.Equal(t, "usd", q.Currency)

	_, err = e.Quote(soloWeek("Spain"), "gold", nil)
	assert.Error(t, err)
	_, err = e.Quote(soloWeek("Spain"), "basic", []string{"jetpack"})
	assert.Error(t, err)
}
