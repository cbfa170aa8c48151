package ai

import (
	"fmt"
	"strings"

	"travelsure/models"
)

const extractionSystemPrompt = `You extract travel insurance details from a customer's chat message.
Reply with a single JSON object and nothing else. Use null for anything the message does not state.
Dates must be YYYY-MM-DD. trip_type is "round_trip" or "single_trip". Counts and ages are integers.`

const personaSystemPrompt = `You classify travellers for a travel insurance assistant.
Reply with exactly one label from the list you are given and nothing else.`

// DefaultReplySystemPrompt is used for free-form replies after purchase.
const DefaultReplySystemPrompt = `You are a friendly travel insurance assistant. The customer has already bought a policy.
Answer briefly and helpfully. Do not invent policy terms; suggest contacting support for claims.`

var fieldHints = map[string]string{
	"name":                 "traveller's name",
	"age":                  "traveller's age in years",
	"trip_type":            `"round_trip" or "single_trip"`,
	"departure_date":       "date the trip starts",
	"return_date":          "date the trip ends",
	"trip_duration":        "length of the trip in days",
	"departure_country":    "country the traveller leaves from",
	"arrival_country":      "country the traveller is going to",
	"number_of_travellers": "how many people are travelling",
}

func extractionPrompt(message string, fields []string) string {
	var sb strings.Builder
	sb.WriteString("Fields to extract:\n")
	for _, f := range fields {
		hint := fieldHints[f]
		if hint == "" {
			hint = strings.ReplaceAll(f, "_", " ")
		}
		fmt.Fprintf(&sb, "- %s: %s\n", f, hint)
	}
	fmt.Fprintf(&sb, "\nMessage: %q\n", message)
	return sb.String()
}

func personaPrompt(trip models.TripData) string {
	labels := make([]string, 0, len(models.Personas()))
	for _, p := range models.Personas() {
		labels = append(labels, string(p))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Labels: %s\n\n", strings.Join(labels, ", "))
	fmt.Fprintf(&sb, "Destination: %s\n", trip.DestinationName())
	fmt.Fprintf(&sb, "Dates: %s to %s (%d days)\n", trip.DepartureDate, trip.ReturnDate, trip.TripDuration)
	fmt.Fprintf(&sb, "Adults: %d, children: %d\n", trip.NumberOfAdults, trip.NumberOfChildren)
	if trip.Age > 0 {
		fmt.Fprintf(&sb, "Age: %d\n", trip.Age)
	}
	if len(trip.Activities) > 0 {
		fmt.Fprintf(&sb, "Activities: %s\n", strings.Join(trip.Activities, ", "))
	}
	if trip.MedicalConditions != "" {
		fmt.Fprintf(&sb, "Medical conditions: %s\n", trip.MedicalConditions)
	}
	if trip.TripStyle != "" {
		fmt.Fprintf(&sb, "Trip style: %s\n", trip.TripStyle)
	}
	return sb.String()
}

func transcript(turns []models.Turn) string {
	var sb strings.Builder
	for _, t := range turns {
		role := "Customer"
		if t.Role == models.RoleAssistant {
			role = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", role, t.Content)
	}
	sb.WriteString("Assistant:")
	return sb.String()
}
