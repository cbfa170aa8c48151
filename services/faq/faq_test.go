package faq

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travelsure/models"
	"travelsure/services/plans"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWording = `Section 4 Baggage. We will pay for baggage that is lost, stolen or damaged. The most we will pay for any single item is 500.
Section 7 Claims. All claims must be notified within 30 days of your return. You must provide original receipts.
Section 9 Hazardous pursuits. Bungee jumping is excluded unless the adventure extension is shown on your schedule.`

type fakeLLM struct {
	reply  string
	err    error
	system string
}

func (f *fakeLLM) ExtractFields(context.Context, string, []string) (map[string]any, error) {
	return nil, errors.New("unused")
}

func (f *fakeLLM) ClassifyPersona(context.Context, models.TripData) (models.Persona, error) {
	return "", errors.New("unused")
}

func (f *fakeLLM) GenerateReply(_ context.Context, _ []models.Turn, system string) (string, error) {
	f.system = system
	return f.reply, f.err
}

func TestAnswerFromKnowledgeBase(t *testing.T) {
	svc := NewService(plans.NewEngine("usd"), nil, nil, nil)

	answer, err := svc.Answer(context.Background(), "Can I get a refund?", models.PolicyContext{})
	require.NoError(t, err)
	assert.Contains(t, answer, "14 days")
}

func TestAnswerPersonalisedByPlan(t *testing.T) {
	svc := NewService(plans.NewEngine("usd"), nil, nil, nil)
	ctx := context.Background()

	answer, err := svc.Answer(ctx, "Am I covered for skiing?", models.PolicyContext{PlanID: "basic"})
	require.NoError(t, err)
	assert.Contains(t, answer, "Your Basic plan doesn't include this, but the Winter Sports add-on does.")

	answer, err = svc.Answer(ctx, "Am I covered for skiing?", models.PolicyContext{PlanID: "basic", AddOns: []string{"winter_sports"}})
	require.NoError(t, err)
	assert.Contains(t, answer, "through the Winter Sports add-on")

	answer, err = svc.Answer(ctx, "What if my luggage is lost?", models.PolicyContext{PlanID: "essential"})
	require.NoError(t, err)
	assert.Contains(t, answer, "Your Essential plan includes this.")
}

func TestAnswerUsesWordingWhenKnowledgeBaseMisses(t *testing.T) {
	svc := NewService(plans.NewEngine("usd"), NewWording(sampleWording), nil, nil)

	answer, err := svc.Answer(context.Background(), "What does hazardous pursuits mean?", models.PolicyContext{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(answer, "From the policy wording: "))
	assert.Contains(t, answer, "Section 9 Hazardous pursuits")
}

func TestAnswerFallback(t *testing.T) {
	svc := NewService(nil, nil, nil, nil)

	answer, err := svc.Answer(context.Background(), "Why is the sky blue?", models.PolicyContext{})
	require.NoError(t, err)
	assert.Equal(t, fallbackAnswer, answer)

	_, err = svc.Answer(context.Background(), "  ", models.PolicyContext{})
	assert.Error(t, err)
}

func TestAnswerWithLLM(t *testing.T) {
	llm := &fakeLLM{reply: "Yes, lost bags are covered up to 500 per item."}
	svc := NewService(plans.NewEngine("usd"), NewWording(sampleWording), llm, nil)

	answer, err := svc.Answer(context.Background(), "Is lost baggage covered?", models.PolicyContext{Step: models.StepPostPurchase, PolicyNo: "TS-1"})
	require.NoError(t, err)
	assert.Equal(t, llm.reply, answer)
	assert.Contains(t, llm.system, "policy number: TS-1")
	assert.Contains(t, llm.system, "Section 4 Baggage")

	llm.err = errors.New("quota")
	answer, err = svc.Answer(context.Background(), "Is lost baggage covered?", models.PolicyContext{})
	require.NoError(t, err)
	assert.Contains(t, answer, "Baggage cover pays")
}

func TestMatchWholeWords(t *testing.T) {
	_, ok := match("Will it work?")
	assert.False(t, ok)

	e, ok := match("I have diabetes, is that a pre-existing condition?")
	require.True(t, ok)
	assert.Equal(t, "pre_existing", e.Topic)
}

func TestWordingSearch(t *testing.T) {
	w := NewWording(sampleWording)
	assert.Equal(t, 3, w.Len())

	hits := w.Search("how do I make claims", 2)
	require.NotEmpty(t, hits)
	assert.Contains(t, hits[0], "Section 7 Claims")

	assert.Empty(t, w.Search("the and you", 2))
	var empty *Wording
	assert.Empty(t, empty.Search("claims", 2))
}
