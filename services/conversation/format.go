package conversation

import (
	"fmt"
	"strings"

	"travelsure/models"
)

func money(amount float64, currency string) string {
	return fmt.Sprintf("%s %.2f", strings.ToUpper(currency), amount)
}

func dateRange(trip models.TripData) string {
	switch {
	case trip.DepartureDate != "" && trip.ReturnDate != "":
		return fmt.Sprintf("from %s to %s", trip.DepartureDate, trip.ReturnDate)
	case trip.TripDuration > 0:
		return fmt.Sprintf("from %s for %d days", trip.DepartureDate, trip.TripDuration)
	}
	return "from " + trip.DepartureDate
}

func travellerSummary(trip models.TripData) string {
	if trip.NumberOfAdults > 0 || trip.NumberOfChildren > 0 {
		var parts []string
		if trip.NumberOfAdults > 0 {
			parts = append(parts, plural(trip.NumberOfAdults, "adult", "adults"))
		}
		if trip.NumberOfChildren > 0 {
			parts = append(parts, plural(trip.NumberOfChildren, "child", "children"))
		}
		return strings.Join(parts, " and ")
	}
	return plural(trip.NumberOfTravellers, "traveller", "travellers")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

func formatPlans(quotes []models.PlanQuote) string {
	var sb strings.Builder
	for i, q := range quotes {
		fmt.Fprintf(&sb, "%d. %s: %s", i+1, q.Plan.Name, money(q.Premium, q.Currency))
		if q.Recommended {
			sb.WriteString(" (recommended)")
		}
		if len(q.Plan.Highlights) > 0 {
			fmt.Fprintf(&sb, "\n   %s", strings.Join(q.Plan.Highlights, ", "))
		}
		if q.Reason != "" {
			fmt.Fprintf(&sb, "\n   %s", q.Reason)
		}
		if i < len(quotes)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func formatAddOns(addOns []models.AddOn) string {
	lines := make([]string, len(addOns))
	for i, a := range addOns {
		lines[i] = fmt.Sprintf("%d. %s (+%.2f)", i+1, a.Name, a.FlatPrice)
	}
	return strings.Join(lines, "\n")
}

func formatGaps(gaps []models.CoverageGap) string {
	lines := make([]string, len(gaps))
	for i, g := range gaps {
		lines[i] = fmt.Sprintf("- %s: %s", g.Risk, g.Description)
	}
	return strings.Join(lines, "\n")
}

func formatQuote(q models.Quote) string {
	var sb strings.Builder
	for _, l := range q.Lines {
		fmt.Fprintf(&sb, "- %s: %s\n", l.Label, money(l.Amount, q.Currency))
	}
	fmt.Fprintf(&sb, "Total: %s", money(q.Total, q.Currency))
	return sb.String()
}
