package conversation

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"travelsure/models"
	ai "travelsure/services/intelligence"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const welcome = "Hi! I'm your travel insurance assistant. I'll ask a few quick questions about your trip and find the right cover for you."

func (m *Manager) intakeStep(t *turn) reply {
	s := t.s
	if IsComplete(&s.TripData) {
		if hasAskIntent(t.lower) && s.PendingQuestion.IsNone() {
			s.PendingQuestion = models.AwaitingQuestion()
		}
		trip := s.TripData
		text := fmt.Sprintf(m.phraser().Pick(confirmations), trip.DestinationName(), dateRange(trip), travellerSummary(trip))
		if s.PendingQuestion.Exists() {
			text += " I haven't forgotten your question, I'll answer it right after you confirm."
		}
		m.advance(s, models.StepPersonaClassification)
		return reply{text: text, data: trip}
	}

	var opener string
	switch {
	case len(t.filled) > 0:
		opener = m.phraser().Pick(acknowledgements)
	case len(s.ConversationHistory) <= 1:
		opener = welcome
	default:
		opener = m.phraser().Pick(nothingNewReplies)
	}

	var note string
	inlineAsk := hasSoftAsk(t.lower) || len(t.filled) == 0 && strings.Contains(t.msg, "?")
	if inlineAsk && !s.PendingQuestion.IsCaptured() {
		if q, ok := extractQuestion(t.msg); ok {
			s.PendingQuestion = models.CapturedQuestion(q)
			note = m.phraser().Pick(capturedQuestionReplies)
		}
	}
	return reply{text: joinText(opener, note, nextPrompt(s.TripData))}
}

func (m *Manager) personaStep(t *turn) reply {
	s := t.s
	var parts []string
	switch {
	case s.PendingQuestion.IsCaptured():
		q := s.PendingQuestion.Text
		parts = append(parts, fmt.Sprintf("First, your question (%s): %s", q, m.askFAQ(t.ctx, q, s)))
	case s.PendingQuestion.IsAwaiting():
		parts = append(parts, "You mentioned you had a question, feel free to ask it at any point.")
	}
	s.PendingQuestion = models.PendingQuestion{}

	persona := m.classify(t.ctx, s.TripData)
	quotes := m.Plans.Recommend(s.TripData, persona)
	s.Persona = persona
	s.RecommendedPlans = lo.Map(quotes, func(q models.PlanQuote, _ int) string { return q.Plan.ID })
	m.advance(s, models.StepPlanRecommendation)

	parts = append(parts,
		fmt.Sprintf("Based on your trip, you look like a %s. Here are the plans I'd suggest:", persona),
		formatPlans(quotes),
		"Reply with the number or name of the plan you'd like.",
	)
	return reply{text: strings.Join(parts, "\n\n"), data: quotes}
}

func (m *Manager) classify(ctx context.Context, trip models.TripData) models.Persona {
	if m.LLM != nil {
		ctx, cancel := context.WithTimeout(ctx, m.timeout())
		defer cancel()
		p, err := m.LLM.ClassifyPersona(ctx, trip)
		if err == nil && slices.Contains(models.Personas(), p) {
			return p
		}
		m.logger().Debug("persona classification fell back to rules", zap.Error(err))
	}
	return m.Personas.Classify(trip)
}

func (m *Manager) planStep(t *turn) reply {
	s := t.s
	plan, ok := m.Plans.FindPlan(t.msg, s.RecommendedPlans)
	if !ok {
		return reply{text: fmt.Sprintf("Which plan would you like? Reply with a number from 1 to %d, or the plan's name.", len(s.RecommendedPlans))}
	}
	s.SelectedPlan = plan.ID
	addOns := m.Plans.AddOnsFor(s.TripData, plan.ID)
	s.OfferedAddOns = lo.Map(addOns, func(a models.AddOn, _ int) string { return a.ID })
	m.advance(s, models.StepAddOns)

	chosen := fmt.Sprintf("Great choice, %s it is.", plan.Name)
	if len(addOns) == 0 {
		return m.afterAddOns(t, chosen)
	}
	text := fmt.Sprintf("%s You can add any of these extras:\n%s\nReply with the ones you want, or say none.", chosen, formatAddOns(addOns))
	return reply{text: text, data: addOns}
}

func (m *Manager) addOnsStep(t *turn) reply {
	s := t.s
	ids, none := m.Plans.ParseAddOns(t.msg, s.OfferedAddOns)
	if len(ids) == 0 && !none {
		return reply{text: "Which extras would you like? Reply with their names or numbers, or say none."}
	}
	s.AddOns = ids
	prefix := "No extras, got it."
	if len(ids) > 0 {
		prefix = fmt.Sprintf("Added %s.", strings.Join(ids, ", "))
	}
	return m.afterAddOns(t, prefix)
}

func (m *Manager) afterAddOns(t *turn, prefix string) reply {
	s := t.s
	gaps := m.Plans.Gaps(s.TripData, s.SelectedPlan, s.AddOns)
	s.Gaps = gaps
	if len(gaps) == 0 {
		return m.toBindCheck(t, prefix)
	}
	m.advance(s, models.StepCoverageGap)
	text := fmt.Sprintf("%s\n\nBefore you decide, there are a few things this cover would not protect:\n%s\n\nSay add to include the suggested extras, or continue to go ahead without them.",
		prefix, formatGaps(gaps))
	return reply{text: text, data: gaps}
}

func (m *Manager) coverageGapStep(t *turn) reply {
	s := t.s
	var prefix string
	switch {
	case wantsToContinue(t.lower) || isNegative(t.lower):
		prefix = "No problem, continuing without them."
	case strings.Contains(t.lower, "add") || isAffirmative(t.lower):
		for _, g := range s.Gaps {
			if g.AddOnID != "" {
				s.AddOns = append(s.AddOns, g.AddOnID)
			}
		}
		s.AddOns = lo.Uniq(s.AddOns)
		prefix = "Done, I've added the suggested extras."
	default:
		return reply{text: "Would you like me to add the suggested extras? Say add, or continue to skip them.", data: s.Gaps}
	}
	return m.toBindCheck(t, prefix)
}

func (m *Manager) toBindCheck(t *turn, prefix string) reply {
	s := t.s
	q, err := m.Plans.Quote(s.TripData, s.SelectedPlan, s.AddOns)
	if err != nil {
		m.logger().Error("failed to price quote", zap.String("sessionId", s.SessionID), zap.Error(err))
		return reply{text: joinText(prefix, "Sorry, I couldn't price that just now. Could you try again?")}
	}
	s.Quote = &q
	m.advance(s, models.StepBindCheck)
	text := fmt.Sprintf("%s\n\nHere's your quote:\n%s\n\nShall I go ahead and put this cover in place?", prefix, formatQuote(q))
	return reply{text: text, data: q}
}

func (m *Manager) bindStep(t *turn) reply {
	switch {
	case isAffirmative(t.lower):
		return m.startPayment(t)
	case isNegative(t.lower):
		return reply{text: "No problem. Your quote is saved, just say yes whenever you're ready."}
	}
	return reply{text: "Would you like me to go ahead with this cover? Please reply yes or no.", data: t.s.Quote}
}

func (m *Manager) startPayment(t *turn) reply {
	s := t.s
	if s.Quote == nil {
		m.logger().Error("bind check without a quote", zap.String("sessionId", s.SessionID))
		return reply{text: apology}
	}
	q := *s.Quote

	ctx, cancel := context.WithTimeout(t.ctx, m.timeout())
	defer cancel()
	inv, err := m.Payments.CreateIntent(ctx, models.PaymentRequest{
		SessionID:   s.SessionID,
		Amount:      q.Total,
		Currency:    q.Currency,
		Idempotency: fmt.Sprintf("%s-%s-%d", s.SessionID, q.PlanID, int64(math.Round(q.Total*100))),
		Metadata:    map[string]string{"session_id": s.SessionID, "plan_id": q.PlanID},
		Description: fmt.Sprintf("Travel insurance to %s", s.TripData.DestinationName()),
	})
	if err != nil {
		m.logger().Warn("failed to create payment", zap.String("sessionId", s.SessionID), zap.Error(err))
		return reply{text: "Sorry, I couldn't start the payment just now. Please confirm again in a moment."}
	}
	s.Invoice = inv
	m.advance(s, models.StepPayment)
	text := fmt.Sprintf("Great! Your total is %s. Please complete the payment in the secure form, then let me know once it's done.", money(q.Total, q.Currency))
	return reply{text: text, data: inv}
}

func (m *Manager) paymentStep(t *turn) reply {
	if saysPaid(t.lower) {
		return m.settle(t, "")
	}
	return reply{text: "Once you've completed the payment, just let me know and I'll issue your policy.", data: t.s.Invoice}
}

// settle checks the payment and issues the policy once it has gone through.
func (m *Manager) settle(t *turn, paymentID string) reply {
	s := t.s
	if s.Invoice == nil {
		m.logger().Error("payment step without an invoice", zap.String("sessionId", s.SessionID))
		return reply{text: apology}
	}

	ctx, cancel := context.WithTimeout(t.ctx, m.timeout())
	defer cancel()
	inv, err := m.Payments.Confirm(ctx, *s.Invoice, paymentID)
	if err != nil {
		m.logger().Warn("failed to confirm payment", zap.String("sessionId", s.SessionID), zap.Error(err))
		return reply{text: "I couldn't check your payment right now. Please try again in a moment.", data: s.Invoice}
	}
	s.Invoice = inv
	if inv.Status != models.PaymentStatusPaid {
		return reply{text: "Your payment hasn't come through yet. Once it has, let me know and I'll issue your policy.", data: inv}
	}

	issueCtx, cancelIssue := context.WithTimeout(t.ctx, m.timeout())
	defer cancelIssue()
	summary, err := m.Issuer.Issue(issueCtx, s)
	if err != nil {
		m.logger().Error("failed to issue policy", zap.String("sessionId", s.SessionID), zap.Error(err))
		return reply{text: "Your payment went through, but I couldn't issue the policy just yet. Say done to try again.", data: inv}
	}
	s.Policy = summary
	m.advance(s, models.StepPostPurchase)

	text := fmt.Sprintf("Payment received, thank you! Your policy number is %s.", summary.PolicyNumber)
	if summary.DocumentURL != "" {
		text += " You can download your certificate here: " + summary.DocumentURL
	}
	return reply{text: text, data: summary}
}

func (m *Manager) postPurchaseStep(t *turn) reply {
	s := t.s
	fallback := "You're all set. Ask me anything about your cover, or download your certificate any time."
	if s.Policy != nil {
		fallback = fmt.Sprintf("Your policy %s is active. Ask me anything about your cover, or download your certificate any time.", s.Policy.PolicyNumber)
	}
	if m.LLM == nil {
		return reply{text: fallback}
	}

	ctx, cancel := context.WithTimeout(t.ctx, m.timeout())
	defer cancel()
	history := s.ConversationHistory
	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	text, err := m.LLM.GenerateReply(ctx, history, ai.DefaultReplySystemPrompt)
	if err != nil {
		m.logger().Debug("reply generation fell back", zap.Error(err))
		return reply{text: fallback}
	}
	return reply{text: text}
}

var (
	yesWords        = toSet("yes", "yeah", "yep", "yup", "sure", "ok", "okay", "confirm", "confirmed", "proceed", "absolutely", "definitely", "y")
	noWords         = toSet("no", "nope", "nah", "n", "cancel", "stop")
	yesPhrases      = []string{"go ahead", "let's do it", "lets do it", "sounds good", "do it", "bind it", "i'm ready", "please do"}
	noPhrases       = []string{"not now", "not yet", "don't", "do not", "maybe later", "hold on", "wait"}
	continuePhrases = []string{"continue", "skip", "without", "no thanks", "carry on", "move on"}
	paidPhrases     = []string{"paid", "done", "complete", "finished", "went through", "payed"}
	notPaidPhrases  = []string{"not paid", "haven't paid", "not done", "not yet"}
)

func firstWord(lower string) string {
	return wordRe.FindString(lower)
}

func isAffirmative(lower string) bool {
	if isNegative(lower) {
		return false
	}
	return yesWords[firstWord(lower)] || containsAny(lower, yesPhrases)
}

func isNegative(lower string) bool {
	first := firstWord(lower)
	if yesWords[first] {
		return false
	}
	return noWords[first] || containsAny(lower, noPhrases)
}

func wantsToContinue(lower string) bool {
	return containsAny(lower, continuePhrases)
}

func saysPaid(lower string) bool {
	return !containsAny(lower, notPaidPhrases) && containsAny(lower, paidPhrases)
}
