package conversation

import (
	"context"
	"errors"
	"strings"
	"time"

	"travelsure/models"
	ai "travelsure/services/intelligence"
	"travelsure/services/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 8 * time.Second
	apology        = "Sorry, something went wrong on my side. Could you send that again?"
	faqApology     = "Sorry, I couldn't look that up right now. Could you ask me again in a moment?"
)

// Manager runs the sales conversation. Messages for one session are processed
// one at a time; each turn works on a copy of the session that is stored with a
// single Update once the reply is ready.
type Manager struct {
	Store     session.Store
	Extractor *Extractor
	LLM       ai.TextGenerator
	FAQ       FAQService
	Personas  PersonaClassifier
	Plans     PlanEngine
	Payments  PaymentHandler
	Issuer    PolicyIssuer
	Phraser   Phraser
	Timeout   time.Duration
	Now       func() time.Time
	Logger    *zap.Logger

	locks session.Locks
}

// turn is the working state of one inbound message.
type turn struct {
	ctx    context.Context
	s      *models.Session
	msg    string
	lower  string
	now    time.Time
	filled []string
}

type reply struct {
	text string
	data any
}

// ProcessMessage handles one user message and always returns a reply. Failures
// of collaborators degrade to conversational fallbacks; a failure to load or
// store the session yields an apology and leaves stored state untouched.
func (m *Manager) ProcessMessage(ctx context.Context, sessionID, message string) (res *ProcessResult) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	unlock := m.locks.Lock(sessionID)
	defer unlock()

	step := models.StepTripIntake
	defer func() {
		if r := recover(); r != nil {
			m.logger().Error("panic while processing message",
				zap.String("sessionId", sessionID), zap.Any("panic", r))
			res = &ProcessResult{SessionID: sessionID, Response: apology, Step: string(step)}
		}
	}()

	stored, err := m.Store.GetOrCreate(ctx, sessionID)
	if err != nil {
		m.logger().Error("failed to load session", zap.String("sessionId", sessionID), zap.Error(err))
		return &ProcessResult{SessionID: sessionID, Response: apology, Step: string(step)}
	}
	step = stored.Step

	s := stored.Clone()
	t := m.newTurn(ctx, s, message)
	s.AppendTurn(models.RoleUser, t.msg, t.now)

	r := m.respond(t)
	if err := m.commit(ctx, s, r, t.now); err != nil {
		m.logger().Error("failed to store session", zap.String("sessionId", sessionID), zap.Error(err))
		return &ProcessResult{SessionID: sessionID, Response: apology, Step: string(step)}
	}
	return resultFor(s, r)
}

// ConfirmBinding is the button equivalent of answering "yes" at bind_check.
func (m *Manager) ConfirmBinding(ctx context.Context, sessionID string) (*ProcessResult, error) {
	return m.transition(ctx, sessionID, models.StepBindCheck, m.startPayment)
}

// CompletePayment settles the session's invoice once the card flow finishes.
func (m *Manager) CompletePayment(ctx context.Context, sessionID, paymentID string) (*ProcessResult, error) {
	return m.transition(ctx, sessionID, models.StepPayment, func(t *turn) reply {
		return m.settle(t, paymentID)
	})
}

// GetSession returns a copy of the stored session.
func (m *Manager) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return m.Store.Get(ctx, sessionID)
}

// RegisterDevice attaches a push token to the session, creating it if needed.
func (m *Manager) RegisterDevice(ctx context.Context, sessionID, token string) error {
	token = strings.TrimSpace(token)
	if sessionID == "" || token == "" {
		return nil
	}
	unlock := m.locks.Lock(sessionID)
	defer unlock()

	stored, err := m.Store.GetOrCreate(ctx, sessionID)
	if err != nil {
		return newStoreError(err)
	}
	if stored.DeviceToken == token {
		return nil
	}
	s := stored.Clone()
	s.DeviceToken = token
	s.UpdatedAt = m.now()
	if err := m.Store.Update(ctx, s); err != nil {
		return newStoreError(err)
	}
	return nil
}

// EvictSession drops a session from the store.
func (m *Manager) EvictSession(ctx context.Context, sessionID string) error {
	unlock := m.locks.Lock(sessionID)
	defer unlock()
	return m.Store.Evict(ctx, sessionID)
}

func (m *Manager) transition(ctx context.Context, sessionID string, want models.Step, fn func(*turn) reply) (*ProcessResult, error) {
	unlock := m.locks.Lock(sessionID)
	defer unlock()

	stored, err := m.Store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, err
		}
		return nil, newStoreError(err)
	}
	if stored.Step != want {
		return nil, newTransitionError(stored.Step, want)
	}

	s := stored.Clone()
	t := m.newTurn(ctx, s, "")
	r := fn(t)
	if err := m.commit(ctx, s, r, t.now); err != nil {
		return nil, newStoreError(err)
	}
	return resultFor(s, r), nil
}

func (m *Manager) newTurn(ctx context.Context, s *models.Session, message string) *turn {
	msg := strings.TrimSpace(message)
	return &turn{ctx: ctx, s: s, msg: msg, lower: strings.ToLower(msg), now: m.now()}
}

func (m *Manager) commit(ctx context.Context, s *models.Session, r reply, now time.Time) error {
	s.AppendTurn(models.RoleAssistant, r.text, now)
	s.UpdatedAt = now
	return m.Store.Update(ctx, s)
}

func resultFor(s *models.Session, r reply) *ProcessResult {
	return &ProcessResult{
		SessionID:      s.SessionID,
		Response:       r.text,
		Step:           string(s.Step),
		Data:           r.data,
		RequiresAction: actionFor(s.Step),
	}
}

// actionFor names the UI affordance the client should render at step.
func actionFor(step models.Step) string {
	switch step {
	case models.StepPlanRecommendation:
		return models.ActionSelectPlan
	case models.StepAddOns:
		return models.ActionSelectAddOns
	case models.StepBindCheck:
		return models.ActionConfirmBinding
	case models.StepPayment:
		return models.ActionPayment
	case models.StepPostPurchase:
		return models.ActionDownloadPolicy
	}
	return ""
}

// respond runs extraction, the interrupt checks and finally the step handler.
func (m *Manager) respond(t *turn) reply {
	s := t.s
	if t.msg == "" {
		return reply{text: "I didn't get any text there. " + m.stepHint(s)}
	}

	switch s.Step {
	case models.StepTripIntake:
		partial := m.extractor().Extract(t.msg, s.TripData)
		if partial.IsEmpty() {
			partial = m.llmExtract(t.ctx, t.msg, MissingFields(s.TripData))
		}
		t.filled = s.TripData.Merge(partial)
	case models.StepPersonaClassification:
		t.filled = s.TripData.Merge(profileFields(m.extractor().Extract(t.msg, s.TripData)))
	}
	complete := IsComplete(&s.TripData)

	if s.Step == models.StepTripIntake && !complete {
		if hasAskIntent(t.lower) {
			return m.interrupt(t)
		}
		if s.PendingQuestion.IsAwaiting() && isQuestionLike(t.msg) {
			return m.capturePending(t)
		}
	}
	if (s.Step != models.StepTripIntake || complete) && isQuestionLike(t.msg) && !m.claims(t) {
		return m.answerQuestion(t)
	}

	switch s.Step {
	case models.StepTripIntake:
		return m.intakeStep(t)
	case models.StepPersonaClassification:
		return m.personaStep(t)
	case models.StepPlanRecommendation:
		return m.planStep(t)
	case models.StepAddOns:
		return m.addOnsStep(t)
	case models.StepCoverageGap:
		return m.coverageGapStep(t)
	case models.StepBindCheck:
		return m.bindStep(t)
	case models.StepPayment:
		return m.paymentStep(t)
	case models.StepPostPurchase:
		return m.postPurchaseStep(t)
	}
	m.logger().Error("session in unknown step", zap.String("sessionId", s.SessionID), zap.String("step", string(s.Step)))
	return reply{text: apology}
}

// profileFields keeps what a message can still add once intake is confirmed.
func profileFields(p models.TripData) models.TripData {
	return models.TripData{
		TravellerAges:         p.TravellerAges,
		Activities:            p.Activities,
		MedicalConditions:     p.MedicalConditions,
		MedicalConditionsList: p.MedicalConditionsList,
		TripStyle:             p.TripStyle,
	}
}

// claims reports whether the current step reads the message as a direct answer,
// so it is not mistaken for a question. A question mark always means a question.
func (m *Manager) claims(t *turn) bool {
	if strings.Contains(t.msg, "?") {
		return false
	}
	s := t.s
	switch s.Step {
	case models.StepPlanRecommendation:
		_, ok := m.Plans.FindPlan(t.msg, s.RecommendedPlans)
		return ok
	case models.StepAddOns:
		ids, none := m.Plans.ParseAddOns(t.msg, s.OfferedAddOns)
		return len(ids) > 0 || none
	case models.StepCoverageGap, models.StepBindCheck:
		return isAffirmative(t.lower) || isNegative(t.lower) || wantsToContinue(t.lower)
	case models.StepPayment:
		return saysPaid(t.lower)
	}
	return false
}

func (m *Manager) interrupt(t *turn) reply {
	s := t.s
	var text string
	if q, ok := extractQuestion(t.msg); ok {
		s.PendingQuestion = models.CapturedQuestion(q)
		text = m.phraser().Pick(collectFirstReplies)
	} else {
		if !s.PendingQuestion.IsCaptured() {
			s.PendingQuestion = models.AwaitingQuestion()
		}
		text = m.phraser().Pick(awaitingQuestionReplies)
	}
	return reply{text: joinText(text, nextPrompt(s.TripData))}
}

func (m *Manager) capturePending(t *turn) reply {
	s := t.s
	q, ok := extractQuestion(t.msg)
	if !ok {
		q = normaliseQuestion(t.msg)
	}
	s.PendingQuestion = models.CapturedQuestion(q)
	return reply{text: joinText(m.phraser().Pick(capturedQuestionReplies), nextPrompt(s.TripData))}
}

func (m *Manager) answerQuestion(t *turn) reply {
	q, ok := extractQuestion(t.msg)
	if !ok {
		q = t.msg
	}
	return reply{text: m.askFAQ(t.ctx, q, t.s)}
}

func (m *Manager) askFAQ(ctx context.Context, question string, s *models.Session) string {
	if m.FAQ == nil {
		return faqApology
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout())
	defer cancel()

	answer, err := m.FAQ.Answer(ctx, question, policyContext(s))
	if err != nil || strings.TrimSpace(answer) == "" {
		m.logger().Warn("faq answer failed", zap.String("sessionId", s.SessionID), zap.Error(err))
		return faqApology
	}
	return answer
}

func policyContext(s *models.Session) models.PolicyContext {
	pc := models.PolicyContext{
		Step:    s.Step,
		Trip:    s.TripData.Clone(),
		PlanID:  s.SelectedPlan,
		AddOns:  s.AddOns,
		Persona: s.Persona,
	}
	if s.Policy != nil {
		pc.PolicyNo = s.Policy.PolicyNumber
	}
	return pc
}

func (m *Manager) advance(s *models.Session, next models.Step) {
	if err := s.AdvanceTo(next); err != nil {
		m.logger().Error("rejected step change", zap.String("sessionId", s.SessionID), zap.Error(err))
	}
}

func nextPrompt(trip models.TripData) string {
	missing := MissingFields(trip)
	if len(missing) == 0 {
		return ""
	}
	return PromptFor(missing[0])
}

func (m *Manager) stepHint(s *models.Session) string {
	switch s.Step {
	case models.StepTripIntake:
		return nextPrompt(s.TripData)
	case models.StepPlanRecommendation:
		return "Which plan would you like?"
	case models.StepAddOns:
		return "Which add-ons would you like, if any?"
	case models.StepBindCheck:
		return "Shall I go ahead with this cover?"
	case models.StepPayment:
		return "Let me know once your payment is complete."
	}
	return "How can I help?"
}

func (m *Manager) extractor() *Extractor {
	if m.Extractor == nil {
		return NewExtractor(m.Now)
	}
	return m.Extractor
}

func (m *Manager) phraser() Phraser {
	if m.Phraser == nil {
		return RandomPhraser{}
	}
	return m.Phraser
}

func (m *Manager) timeout() time.Duration {
	if m.Timeout <= 0 {
		return defaultTimeout
	}
	return m.Timeout
}

func (m *Manager) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

func (m *Manager) logger() *zap.Logger {
	if m.Logger == nil {
		return zap.NewNop()
	}
	return m.Logger
}

func joinText(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
