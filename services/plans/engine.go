package plans

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"travelsure/models"

	"github.com/samber/lo"
)

// Engine recommends and prices plans from a static catalogue.
type Engine struct {
	plans    []models.Plan
	addOns   []models.AddOn
	currency string
}

// NewEngine returns an engine over the default catalogue.
func NewEngine(currency string) *Engine {
	if currency == "" {
		currency = "usd"
	}
	return &Engine{plans: defaultPlans, addOns: defaultAddOns, currency: strings.ToLower(currency)}
}

// Plans returns the catalogue.
func (e *Engine) Plans() []models.Plan {
	return slices.Clone(e.plans)
}

// Plan looks a plan up by id.
func (e *Engine) Plan(id string) (models.Plan, bool) {
	return lo.Find(e.plans, func(p models.Plan) bool { return p.ID == id })
}

// AddOn looks an add-on up by id.
func (e *Engine) AddOn(id string) (models.AddOn, bool) {
	return lo.Find(e.addOns, func(a models.AddOn) bool { return a.ID == id })
}

// AddOnCovering returns the first add-on that extends cover to the given risk.
func (e *Engine) AddOnCovering(cover string) (models.AddOn, bool) {
	return lo.Find(e.addOns, func(a models.AddOn) bool { return slices.Contains(a.Covers, cover) })
}

// Recommend prices every plan long enough for the trip and flags the one that
// suits the persona. Travellers with declared conditions are steered to the
// plan that covers them.
func (e *Engine) Recommend(trip models.TripData, persona models.Persona) []models.PlanQuote {
	days := tripDays(trip)
	eligible := lo.Filter(e.plans, func(p models.Plan, _ int) bool { return p.MaxTripDays >= days })
	if len(eligible) == 0 {
		eligible = e.plans[len(e.plans)-1:]
	}

	target := personaPlan[persona]
	if len(trip.MedicalConditionsList) > 0 || trip.MedicalConditions != "" {
		target = "premium"
	}
	if !lo.ContainsBy(eligible, func(p models.Plan) bool { return p.ID == target }) {
		target = eligible[0].ID
	}

	quotes := make([]models.PlanQuote, 0, len(eligible))
	for _, p := range eligible {
		q := models.PlanQuote{
			Plan:     p,
			Premium:  e.premium(p, trip),
			Currency: e.currency,
		}
		if p.ID == target {
			q.Recommended = true
			q.Reason = personaReason[persona]
		}
		quotes = append(quotes, q)
	}
	return quotes
}

var (
	leadingNumberRe = regexp.MustCompile(`^\D*?(\d+)\b`)
	ordinals        = []string{"first", "second", "third", "fourth"}
)

// FindPlan resolves a reply against the offered plans by position ("2",
// "the second") or by name.
func (e *Engine) FindPlan(reply string, offered []string) (models.Plan, bool) {
	lower := strings.ToLower(strings.TrimSpace(reply))
	if m := leadingNumberRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n >= 1 && n <= len(offered) {
			return e.Plan(offered[n-1])
		}
	}
	for _, id := range offered {
		p, ok := e.Plan(id)
		if ok && containsWord(lower, strings.ToLower(p.Name)) {
			return p, true
		}
	}
	for i, word := range ordinals {
		if containsWord(lower, word) && i < len(offered) {
			return e.Plan(offered[i])
		}
	}
	return models.Plan{}, false
}

// AddOnsFor lists the add-ons the plan does not already include, those
// matching the trip first.
func (e *Engine) AddOnsFor(trip models.TripData, planID string) []models.AddOn {
	plan, ok := e.Plan(planID)
	if !ok {
		return nil
	}
	needs := tripRisks(trip)
	extra := lo.Filter(e.addOns, func(a models.AddOn, _ int) bool {
		return len(lo.Without(a.Covers, plan.Covers...)) > 0
	})
	slices.SortStableFunc(extra, func(a, b models.AddOn) int {
		return relevance(b, needs) - relevance(a, needs)
	})
	return extra
}

func relevance(a models.AddOn, needs []string) int {
	return lo.CountBy(a.Covers, func(c string) bool { return slices.Contains(needs, c) })
}

var noneRe = regexp.MustCompile(`(?i)^\s*(?:none|no|nothing|nope|skip|no thanks|no extras|not needed)\b`)
var numberRe = regexp.MustCompile(`\b(\d+)\b`)

// ParseAddOns reads chosen add-ons by number or name. "all" selects every
// offered add-on and a leading "none" or "no" declines them.
func (e *Engine) ParseAddOns(reply string, offered []string) ([]string, bool) {
	lower := strings.ToLower(reply)
	if noneRe.MatchString(lower) {
		return nil, true
	}
	if containsWord(lower, "all") || containsWord(lower, "everything") {
		return slices.Clone(offered), false
	}

	var ids []string
	for _, m := range numberRe.FindAllStringSubmatch(lower, -1) {
		n, _ := strconv.Atoi(m[1])
		if n >= 1 && n <= len(offered) {
			ids = append(ids, offered[n-1])
		}
	}
	for _, id := range offered {
		a, ok := e.AddOn(id)
		if !ok {
			continue
		}
		if strings.Contains(lower, strings.ToLower(a.Name)) || lo.SomeBy(a.Keywords, func(k string) bool { return containsWord(lower, k) }) {
			ids = append(ids, id)
		}
	}
	return lo.Uniq(ids), false
}

// Gaps lists the trip's risks that neither the plan nor the chosen add-ons
// cover, each with the add-on that would.
func (e *Engine) Gaps(trip models.TripData, planID string, addOns []string) []models.CoverageGap {
	plan, ok := e.Plan(planID)
	if !ok {
		return nil
	}
	covered := slices.Clone(plan.Covers)
	for _, id := range addOns {
		if a, ok := e.AddOn(id); ok {
			covered = append(covered, a.Covers...)
		}
	}

	var gaps []models.CoverageGap
	for _, risk := range tripRisks(trip) {
		if slices.Contains(covered, risk) {
			continue
		}
		gap := models.CoverageGap{Risk: riskLabel(risk), Description: riskDescriptions[risk]}
		if a, ok := lo.Find(e.addOns, func(a models.AddOn) bool { return slices.Contains(a.Covers, risk) }); ok {
			gap.AddOnID = a.ID
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

// Quote prices the plan and add-ons for the trip.
func (e *Engine) Quote(trip models.TripData, planID string, addOns []string) (models.Quote, error) {
	plan, ok := e.Plan(planID)
	if !ok {
		return models.Quote{}, fmt.Errorf("unknown plan %q", planID)
	}

	days := tripDays(trip)
	premium := e.premium(plan, trip)
	lines := []models.QuoteLine{{
		Label:  fmt.Sprintf("%s plan, %d days, %s", plan.Name, days, headcount(trip)),
		Amount: premium,
	}}
	for _, id := range addOns {
		a, ok := e.AddOn(id)
		if !ok {
			return models.Quote{}, fmt.Errorf("unknown add-on %q", id)
		}
		lines = append(lines, models.QuoteLine{Label: a.Name, Amount: a.FlatPrice})
	}

	total := lo.SumBy(lines, func(l models.QuoteLine) float64 { return l.Amount })
	return models.Quote{
		PlanID:   plan.ID,
		Lines:    lines,
		Total:    round2(total),
		Currency: e.currency,
	}, nil
}

// premium is daily rate x days x traveller units, loaded for senior travellers
// and high medical-cost destinations. Children count as half.
func (e *Engine) premium(p models.Plan, trip models.TripData) float64 {
	units := float64(trip.NumberOfAdults) + 0.5*float64(trip.NumberOfChildren)
	if units == 0 {
		units = float64(max(trip.NumberOfTravellers, 1))
	}
	price := p.DailyRate * float64(tripDays(trip)) * units * ageLoading(trip)
	if highCostDestinations[strings.ToLower(trip.DestinationName())] {
		price *= 1.4
	}
	return round2(price)
}

func ageLoading(trip models.TripData) float64 {
	oldest := trip.Age
	for _, a := range trip.TravellerAges {
		oldest = max(oldest, a)
	}
	switch {
	case oldest >= 75:
		return 2.0
	case oldest >= 65:
		return 1.5
	}
	return 1.0
}

func tripDays(trip models.TripData) int {
	if trip.TripDuration > 0 {
		return trip.TripDuration
	}
	start, err1 := time.Parse("2006-01-02", trip.DepartureDate)
	end, err2 := time.Parse("2006-01-02", trip.ReturnDate)
	if err1 == nil && err2 == nil && end.After(start) {
		return int(end.Sub(start).Hours() / 24)
	}
	return 1
}

func headcount(trip models.TripData) string {
	n := trip.Travellers()
	if n <= 1 {
		return "1 traveller"
	}
	return fmt.Sprintf("%d travellers", n)
}

// tripRisks are the cover tokens the trip needs beyond the basics.
func tripRisks(trip models.TripData) []string {
	risks := slices.Clone(trip.Activities)
	if len(trip.MedicalConditionsList) > 0 || trip.MedicalConditions != "" {
		risks = append(risks, CoverMedicalConditions)
	}
	if trip.TripStyle == "business" {
		risks = append(risks, CoverBusinessEquipment)
	}
	return lo.Uniq(risks)
}

var riskDescriptions = map[string]string{
	CoverSkiing:            "Injuries and equipment on the slopes are excluded without winter sports cover.",
	CoverDiving:            "Scuba diving accidents are excluded without diving cover.",
	CoverHiking:            "Trekking and hiking rescues are excluded on this plan.",
	CoverScooter:           "Accidents while riding scooters or mopeds are excluded.",
	CoverAdventure:         "Adventure sports such as bungee jumping or rafting are excluded.",
	CoverMedicalConditions: "Claims linked to your declared medical conditions would not be paid.",
	CoverBusinessEquipment: "Work laptops and equipment are not covered against loss or theft.",
}

func riskLabel(risk string) string {
	switch risk {
	case CoverMedicalConditions:
		return "Pre-existing conditions"
	case CoverBusinessEquipment:
		return "Business equipment"
	}
	if risk == "" {
		return risk
	}
	return strings.ToUpper(risk[:1]) + risk[1:]
}

func containsWord(s, word string) bool {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`).MatchString(s)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
