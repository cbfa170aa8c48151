package faq

import (
	"travelsure/services/plans"
)

// Entry is one answer of the built-in knowledge base. When Cover is set the
// answer is followed by whether the traveller's plan includes that cover.
type Entry struct {
	Topic    string
	Keywords []string
	Answer   string
	Cover    string
}

var knowledgeBase = []Entry{
	{
		Topic:    "refund",
		Keywords: []string{"refund", "money back", "cooling off", "cancel my policy", "cancel the policy"},
		Answer:   "You can cancel within 14 days of purchase for a full refund, as long as you haven't started your trip or made a claim. After that, premiums are non-refundable.",
	},
	{
		Topic:    "trip_cancellation",
		Keywords: []string{"cancel my trip", "cancellation", "cancelled", "canceled", "can't travel", "cannot travel"},
		Answer:   "Trip cancellation cover reimburses prepaid, non-refundable travel costs if you have to cancel for a covered reason such as illness, injury or a family emergency.",
		Cover:    plans.CoverTripCancellation,
	},
	{
		Topic:    "medical",
		Keywords: []string{"medical", "hospital", "doctor", "emergency", "sick", "ill", "injury", "injured"},
		Answer:   "Emergency medical cover pays for treatment, hospital stays and medicines abroad if you fall ill or are injured during your trip.",
		Cover:    plans.CoverMedical,
	},
	{
		Topic:    "pre_existing",
		Keywords: []string{"pre-existing", "preexisting", "existing condition", "diabetes", "asthma", "heart"},
		Answer:   "Pre-existing medical conditions are only covered when declared and accepted before you travel. Declared conditions are included on Premium or with the pre-existing conditions add-on.",
		Cover:    plans.CoverMedicalConditions,
	},
	{
		Topic:    "evacuation",
		Keywords: []string{"evacuation", "repatriation", "airlift", "fly me home"},
		Answer:   "Medical evacuation covers transport to the nearest suitable hospital or home when your treating doctor says it is medically necessary.",
		Cover:    plans.CoverEvacuation,
	},
	{
		Topic:    "baggage",
		Keywords: []string{"baggage", "luggage", "suitcase", "belongings", "stolen", "lost bag"},
		Answer:   "Baggage cover pays for lost, stolen or damaged luggage and personal belongings, up to the per-item limits in your policy wording.",
		Cover:    plans.CoverBaggage,
	},
	{
		Topic:    "delay",
		Keywords: []string{"delay", "delayed", "missed connection", "late flight"},
		Answer:   "Travel delay cover pays a benefit for reasonable meals and accommodation when your departure is delayed for more than 12 hours.",
		Cover:    plans.CoverTripDelay,
	},
	{
		Topic:    "winter_sports",
		Keywords: []string{"ski", "skiing", "snowboard", "snowboarding", "winter sports"},
		Answer:   "Skiing and snowboarding on marked pistes are covered with the winter sports add-on.",
		Cover:    plans.CoverSkiing,
	},
	{
		Topic:    "diving",
		Keywords: []string{"scuba", "diving", "dive", "snorkel", "snorkeling"},
		Answer:   "Scuba diving to 30 metres with a qualified instructor or buddy is covered with the scuba add-on.",
		Cover:    plans.CoverDiving,
	},
	{
		Topic:    "scooter",
		Keywords: []string{"scooter", "moped", "motorbike", "motorcycle"},
		Answer:   "Riding a scooter or moped is covered with the scooter add-on, provided you hold a valid licence and wear a helmet.",
		Cover:    plans.CoverScooter,
	},
	{
		Topic:    "adventure",
		Keywords: []string{"bungee", "paragliding", "skydiving", "rafting", "adventure", "climbing", "trekking", "hiking"},
		Answer:   "Adventure activities such as rafting, paragliding and high-altitude trekking need the adventure add-on. Hiking on marked trails is included from Comprehensive upwards.",
		Cover:    plans.CoverAdventure,
	},
	{
		Topic:    "gadgets",
		Keywords: []string{"phone", "laptop", "camera", "gadget", "gadgets", "electronics"},
		Answer:   "Phones, laptops and cameras are covered against loss, theft and accidental damage with the gadget add-on, or on Premium.",
		Cover:    plans.CoverGadgets,
	},
	{
		Topic:    "claims",
		Keywords: []string{"claim", "claims", "file a claim", "make a claim"},
		Answer:   "To make a claim, contact our 24/7 assistance line with your policy number, keep all receipts and medical reports, and submit them within 30 days of returning home.",
	},
	{
		Topic:    "documents",
		Keywords: []string{"certificate", "document", "documents", "download", "proof of insurance", "visa letter"},
		Answer:   "Your certificate of insurance is available to download as soon as your payment is confirmed. It works as proof of insurance for visa applications.",
	},
	{
		Topic:    "exclusions",
		Keywords: []string{"exclusion", "exclusions", "not covered", "excluded", "alcohol", "drunk"},
		Answer:   "Common exclusions are undeclared pre-existing conditions, incidents under the influence of alcohol or drugs, unattended belongings and travel against government advice.",
	},
	{
		Topic:    "age",
		Keywords: []string{"age limit", "old", "senior", "elderly", "years old"},
		Answer:   "There is no upper age limit. Travellers aged 65 and over pay a higher premium, and those 75 and over pay double the base rate.",
	},
	{
		Topic:    "duration",
		Keywords: []string{"how long", "maximum trip", "longest", "extend", "extension"},
		Answer:   "Basic covers trips up to 31 days, Essential up to 90, Comprehensive up to 180 and Premium up to a full year.",
	},
	{
		Topic:    "payment",
		Keywords: []string{"pay", "payment", "card", "price", "cost", "premium", "how much"},
		Answer:   "You pay once, by card, before the policy is issued. The quote shows the plan price and each add-on separately.",
	},
}
