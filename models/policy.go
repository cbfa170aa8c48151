package models

import "time"

// Policy is an issued travel-insurance policy.
type Policy struct {
	PolicyNumber  string    `json:"policyNumber" bson:"policy_number"`
	SessionID     string    `json:"sessionId" bson:"session_id"`
	HolderName    string    `json:"holderName" bson:"holder_name"`
	Trip          TripData  `json:"trip" bson:"trip"`
	Persona       Persona   `json:"persona" bson:"persona"`
	PlanID        string    `json:"planId" bson:"plan_id"`
	PlanName      string    `json:"planName" bson:"plan_name"`
	AddOns        []string  `json:"addOns,omitempty" bson:"add_ons,omitempty"`
	Premium       float64   `json:"premium" bson:"premium"`
	Currency      string    `json:"currency" bson:"currency"`
	InvoiceID     string    `json:"invoiceId" bson:"invoice_id"`
	PaymentID     string    `json:"paymentId" bson:"payment_id"`
	DocumentURL   string    `json:"documentUrl,omitempty" bson:"document_url,omitempty"`
	CoverageStart string    `json:"coverageStart" bson:"coverage_start"`
	CoverageEnd   string    `json:"coverageEnd" bson:"coverage_end"`
	ReminderSent  bool      `json:"reminderSent" bson:"reminder_sent"`
	Transcript    []Turn    `json:"-" bson:"transcript,omitempty"`
	IssuedAt      time.Time `json:"issuedAt" bson:"issued_at"`
	Status        string    `json:"status" bson:"status"`
	Quote         *Quote    `json:"quote,omitempty" bson:"quote,omitempty"`
}

// PolicyStatusActive marks a policy in force.
const PolicyStatusActive = "active"

// PolicySummary is the slice of an issued policy kept on the session.
type PolicySummary struct {
	PolicyNumber string `json:"policyNumber" bson:"policy_number"`
	DocumentURL  string `json:"documentUrl,omitempty" bson:"document_url,omitempty"`
	AccessToken  string `json:"accessToken,omitempty" bson:"-"`
}

// PolicyContext is what the FAQ service knows about the user's situation when
// answering a question.
type PolicyContext struct {
	Step     Step     `json:"step"`
	Trip     TripData `json:"trip"`
	PlanID   string   `json:"planId,omitempty"`
	AddOns   []string `json:"addOns,omitempty"`
	Persona  Persona  `json:"persona,omitempty"`
	PolicyNo string   `json:"policyNumber,omitempty"`
}

// ReminderPayload is the queued pre-departure reminder for a policy holder.
type ReminderPayload struct {
	PolicyNumber string `json:"policyNumber"`
	SessionID    string `json:"sessionId"`
	DeviceToken  string `json:"deviceToken,omitempty"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	FireDate     string `json:"fireDate"`
}
