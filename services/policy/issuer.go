package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	policyRepo "travelsure/database/repository/policy"
	"travelsure/models"
	"travelsure/services/notification"
	"travelsure/services/storage"
	"travelsure/services/tasks"
	"travelsure/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlanCatalogue resolves plan ids to catalogue entries.
type PlanCatalogue interface {
	Plan(id string) (models.Plan, bool)
}

// Deps are the collaborators of an Issuer. Documents, Notifier and Scheduler are
// optional; issuance succeeds without them.
type Deps struct {
	Repo      policyRepo.PolicyRepository
	Plans     PlanCatalogue
	Documents storage.DocumentStore
	Notifier  notification.Notifier
	Scheduler tasks.Scheduler
	TokenTTL  time.Duration
	Logger    *zap.Logger
	Now       func() time.Time
}

// Issuer turns a paid session into a stored policy with a certificate, an access
// token, a confirmation push and a pre-departure reminder.
type Issuer struct {
	Deps
}

func NewIssuer(deps Deps) (*Issuer, error) {
	if deps.Repo == nil || deps.Plans == nil {
		return nil, fmt.Errorf("policy issuer initialization error: repository or plan catalogue is nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.TokenTTL <= 0 {
		deps.TokenTTL = 30 * 24 * time.Hour
	}
	return &Issuer{Deps: deps}, nil
}

// Issue is idempotent per session: a second call returns the policy already issued.
func (i *Issuer) Issue(ctx context.Context, s *models.Session) (*models.PolicySummary, error) {
	existing, err := i.Repo.GetBySession(ctx, s.SessionID)
	switch {
	case err == nil:
		return i.summary(existing)
	case !errors.Is(err, policyRepo.ErrPolicyNotFound):
		return nil, fmt.Errorf("Issue: %w", err)
	}

	p, err := i.build(s)
	if err != nil {
		return nil, err
	}

	if i.Documents != nil {
		_, url, err := i.Documents.UploadDocument(ctx, utils.PolicyDocumentFolder, p.PolicyNumber+".txt", []byte(Certificate(*p)))
		if err != nil {
			i.Logger.Warn("Policy certificate upload failed", zap.String("policy", p.PolicyNumber), zap.Error(err))
		} else {
			p.DocumentURL = url
		}
	}

	if err := i.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("Issue: %w", err)
	}
	i.Logger.Info("Policy issued",
		zap.String("policy", p.PolicyNumber),
		zap.String("session", p.SessionID),
		zap.String("plan", p.PlanID))

	i.scheduleReminder(ctx, p, s.DeviceToken)
	i.notifyIssued(ctx, p, s.DeviceToken)

	return i.summary(p)
}

// Policy returns an issued policy by number.
func (i *Issuer) Policy(ctx context.Context, policyNumber string) (*models.Policy, error) {
	return i.Repo.GetByNumber(ctx, policyNumber)
}

func (i *Issuer) build(s *models.Session) (*models.Policy, error) {
	if s.Invoice == nil || s.Invoice.Status != models.PaymentStatusPaid {
		return nil, fmt.Errorf("Issue: session %s has no paid invoice", s.SessionID)
	}
	if s.Quote == nil {
		return nil, fmt.Errorf("Issue: session %s has no quote", s.SessionID)
	}
	plan, ok := i.Plans.Plan(s.Quote.PlanID)
	if !ok {
		return nil, fmt.Errorf("Issue: unknown plan %q", s.Quote.PlanID)
	}

	now := i.Now()
	start, end := coverage(s.TripData)
	quote := *s.Quote
	return &models.Policy{
		PolicyNumber:  newPolicyNumber(now),
		SessionID:     s.SessionID,
		HolderName:    holderName(s.TripData),
		Trip:          s.TripData.Clone(),
		Persona:       s.Persona,
		PlanID:        plan.ID,
		PlanName:      plan.Name,
		AddOns:        append([]string(nil), s.AddOns...),
		Premium:       quote.Total,
		Currency:      quote.Currency,
		InvoiceID:     s.Invoice.InvoiceID,
		PaymentID:     s.Invoice.PaymentID,
		CoverageStart: start,
		CoverageEnd:   end,
		Transcript:    append([]models.Turn(nil), s.ConversationHistory...),
		IssuedAt:      now,
		Status:        models.PolicyStatusActive,
		Quote:         &quote,
	}, nil
}

func (i *Issuer) summary(p *models.Policy) (*models.PolicySummary, error) {
	token, err := utils.GeneratePolicyToken(p.PolicyNumber, p.SessionID, i.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("Issue: failed to sign policy token: %w", err)
	}
	return &models.PolicySummary{
		PolicyNumber: p.PolicyNumber,
		DocumentURL:  p.DocumentURL,
		AccessToken:  token,
	}, nil
}

func (i *Issuer) scheduleReminder(ctx context.Context, p *models.Policy, deviceToken string) {
	if i.Scheduler == nil || deviceToken == "" {
		return
	}
	fireAt, ok := tasks.ReminderFireTime(p.CoverageStart, i.Now())
	if !ok {
		return
	}
	payload := models.ReminderPayload{
		PolicyNumber: p.PolicyNumber,
		SessionID:    p.SessionID,
		DeviceToken:  deviceToken,
		Title:        "Your trip is almost here",
		Body:         fmt.Sprintf("Your %s cover (%s) starts on %s. Safe travels!", p.PlanName, p.PolicyNumber, p.CoverageStart),
		FireDate:     fireAt.Format(time.RFC3339),
	}
	if err := i.Scheduler.ScheduleReminder(ctx, payload, fireAt); err != nil {
		i.Logger.Warn("Reminder scheduling failed", zap.String("policy", p.PolicyNumber), zap.Error(err))
	}
}

func (i *Issuer) notifyIssued(ctx context.Context, p *models.Policy, deviceToken string) {
	if i.Notifier == nil || deviceToken == "" {
		return
	}
	body := fmt.Sprintf("Policy %s is active. Your certificate is ready to download.", p.PolicyNumber)
	data := map[string]string{"type": "policy_issued", "policyNumber": p.PolicyNumber}
	if err := i.Notifier.Push(ctx, deviceToken, "You're covered", body, data); err != nil {
		i.Logger.Warn("Policy push failed", zap.String("policy", p.PolicyNumber), zap.Error(err))
	}
}

// newPolicyNumber returns "TS-YYYYMMDD-XXXXXX".
func newPolicyNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("TS-%s-%s", now.Format("20060102"), suffix)
}

func holderName(t models.TripData) string {
	if t.Name != "" {
		return t.Name
	}
	return "Policy holder"
}

func coverage(t models.TripData) (string, string) {
	start := t.DepartureDate
	if start == "" {
		start = t.TripStartDate
	}
	end := t.ReturnDate
	if end == "" {
		end = t.TripEndDate
	}
	if end == "" && start != "" && t.TripDuration > 0 {
		if d, err := time.Parse("2006-01-02", start); err == nil {
			end = d.AddDate(0, 0, t.TripDuration).Format("2006-01-02")
		}
	}
	return start, end
}
