package policy

import (
	"fmt"
	"strings"

	"travelsure/models"
)

// Certificate renders the plain-text certificate of insurance for a policy.
func Certificate(p models.Policy) string {
	var b strings.Builder
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-18s %s\n", label+":", value)
		}
	}

	b.WriteString("TRAVELSURE CERTIFICATE OF INSURANCE\n")
	b.WriteString(strings.Repeat("=", 36) + "\n\n")
	line("Policy number", p.PolicyNumber)
	line("Policy holder", p.HolderName)
	line("Plan", p.PlanName)
	line("Destination", p.Trip.DestinationName())
	line("Departing from", p.Trip.DepartureCountry)
	line("Cover starts", p.CoverageStart)
	line("Cover ends", p.CoverageEnd)
	if n := p.Trip.Travellers(); n > 0 {
		line("Travellers", fmt.Sprint(n))
	}
	if len(p.Trip.Activities) > 0 {
		line("Activities", strings.Join(p.Trip.Activities, ", "))
	}
	line("Declared medical", p.Trip.MedicalConditions)

	if p.Quote != nil && len(p.Quote.Lines) > 0 {
		b.WriteString("\nPremium breakdown\n")
		for _, l := range p.Quote.Lines {
			fmt.Fprintf(&b, "  %-40s %s %.2f\n", l.Label, strings.ToUpper(p.Currency), l.Amount)
		}
	}
	fmt.Fprintf(&b, "\n%-18s %s %.2f\n", "Total paid:", strings.ToUpper(p.Currency), p.Premium)
	line("Payment reference", p.PaymentID)
	line("Issued", p.IssuedAt.UTC().Format("2006-01-02 15:04 MST"))
	return b.String()
}
