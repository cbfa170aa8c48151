package faq

import (
	"context"
	"fmt"
	"strings"

	"travelsure/models"
	ai "travelsure/services/intelligence"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	wordingPassages = 3
	fallbackAnswer  = "I don't have a specific answer to that yet. Our policy wording covers every detail, and our support team is happy to help with anything else."
)

const systemPrompt = `You are TravelSure's travel insurance assistant. Answer the customer's question in at most three short sentences, using only the reference material provided. If the material does not answer the question, say so and suggest contacting support. Never invent prices, limits or cover.`

// Catalogue is the part of the plan engine the FAQ uses to personalise answers.
type Catalogue interface {
	Plan(id string) (models.Plan, bool)
	AddOnCovering(cover string) (models.AddOn, bool)
}

// Service answers coverage questions from the knowledge base, the policy wording
// and, when configured, a language model grounded on both.
type Service struct {
	plans   Catalogue
	wording *Wording
	llm     ai.TextGenerator
	logger  *zap.Logger
}

func NewService(plans Catalogue, wording *Wording, llm ai.TextGenerator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{plans: plans, wording: wording, llm: llm, logger: logger}
}

// Answer never fails on a missing match; it only returns an error for an empty question.
func (s *Service) Answer(ctx context.Context, question string, pc models.PolicyContext) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("faq: empty question")
	}

	entry, found := match(question)
	kbAnswer := ""
	if found {
		kbAnswer = s.personalise(entry, pc)
	}
	passages := s.wording.Search(question, wordingPassages)

	if s.llm != nil && (found || len(passages) > 0) {
		reply, err := s.llm.GenerateReply(ctx, []models.Turn{{Role: models.RoleUser, Content: question}}, s.prompt(kbAnswer, passages, pc))
		if err == nil && strings.TrimSpace(reply) != "" {
			return reply, nil
		}
		s.logger.Debug("FAQ generation unavailable, using knowledge base", zap.Error(err))
	}

	switch {
	case found:
		return kbAnswer, nil
	case len(passages) > 0:
		return "From the policy wording: " + passages[0], nil
	default:
		return fallbackAnswer, nil
	}
}

// match returns the entry whose keywords best fit the question.
func match(question string) (Entry, bool) {
	q := " " + strings.ToLower(question) + " "
	best, bestScore := Entry{}, 0
	for _, e := range knowledgeBase {
		score := lo.SumBy(e.Keywords, func(k string) int {
			if containsPhrase(q, k) {
				return len(strings.Fields(k))
			}
			return 0
		})
		if score > bestScore {
			best, bestScore = e, score
		}
	}
	return best, bestScore > 0
}

// containsPhrase matches whole words only, so "ill" does not hit "will".
func containsPhrase(padded, phrase string) bool {
	idx := strings.Index(padded, phrase)
	for idx >= 0 {
		before := padded[idx-1]
		end := idx + len(phrase)
		if !isLetter(before) && (end >= len(padded) || !isLetter(padded[end])) {
			return true
		}
		next := strings.Index(padded[idx+1:], phrase)
		if next < 0 {
			return false
		}
		idx += next + 1
	}
	return false
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func (s *Service) personalise(e Entry, pc models.PolicyContext) string {
	if e.Cover == "" || pc.PlanID == "" || s.plans == nil {
		return e.Answer
	}
	plan, ok := s.plans.Plan(pc.PlanID)
	if !ok {
		return e.Answer
	}
	if lo.Contains(plan.Covers, e.Cover) {
		return fmt.Sprintf("%s Your %s plan includes this.", e.Answer, plan.Name)
	}
	if addOn, ok := s.plans.AddOnCovering(e.Cover); ok {
		if lo.Contains(pc.AddOns, addOn.ID) {
			return fmt.Sprintf("%s You're covered through the %s add-on.", e.Answer, addOn.Name)
		}
		return fmt.Sprintf("%s Your %s plan doesn't include this, but the %s add-on does.", e.Answer, plan.Name, addOn.Name)
	}
	return fmt.Sprintf("%s Your %s plan doesn't include this.", e.Answer, plan.Name)
}

func (s *Service) prompt(kbAnswer string, passages []string, pc models.PolicyContext) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nCustomer context:\n")
	fmt.Fprintf(&b, "- conversation step: %s\n", pc.Step)
	if dest := pc.Trip.DestinationName(); dest != "" {
		fmt.Fprintf(&b, "- destination: %s\n", dest)
	}
	if pc.PlanID != "" {
		fmt.Fprintf(&b, "- selected plan: %s\n", pc.PlanID)
	}
	if len(pc.AddOns) > 0 {
		fmt.Fprintf(&b, "- add-ons: %s\n", strings.Join(pc.AddOns, ", "))
	}
	if pc.PolicyNo != "" {
		fmt.Fprintf(&b, "- policy number: %s\n", pc.PolicyNo)
	}
	if kbAnswer != "" {
		b.WriteString("\nReference answer:\n")
		b.WriteString(kbAnswer)
		b.WriteString("\n")
	}
	if len(passages) > 0 {
		b.WriteString("\nPolicy wording extracts:\n")
		for _, p := range passages {
			b.WriteString("- ")
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	return b.String()
}
