package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travelsure/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	out        string
	err        error
	lastSystem string
	lastPrompt string
	lastJSON   bool
}

func (s *stubCompleter) complete(_ context.Context, system, prompt string, jsonOutput bool) (string, error) {
	s.lastSystem, s.lastPrompt, s.lastJSON = system, prompt, jsonOutput
	return s.out, s.err
}

func TestExtractFieldsKeepsRequestedNonNull(t *testing.T) {
	stub := &stubCompleter{out: "```json\n{\"departure_date\": \"2025-03-15\", \"age\": null, \"name\": \"unknown\", \"secret\": 1, \"number_of_travellers\": 2}\n```"}
	g := generator{llm: stub}

	got, err := g.ExtractFields(context.Background(), "leaving mid march with my wife", []string{"departure_date", "age", "name", "number_of_travellers"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"departure_date": "2025-03-15", "number_of_travellers": float64(2)}, got)
	assert.True(t, stub.lastJSON)
	assert.Contains(t, stub.lastPrompt, "departure_date")
}

func TestExtractFieldsNoFieldsSkipsCall(t *testing.T) {
	stub := &stubCompleter{err: errors.New("should not be called")}
	got, err := generator{llm: stub}.ExtractFields(context.Background(), "hi", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, stub.lastPrompt)
}

func TestExtractFieldsRejectsProse(t *testing.T) {
	stub := &stubCompleter{out: "Sorry, I can't help with that."}
	_, err := generator{llm: stub}.ExtractFields(context.Background(), "hi", []string{"name"})
	assert.Error(t, err)
}

func TestClassifyPersona(t *testing.T) {
	stub := &stubCompleter{out: "  Family Planner.\n"}
	p, err := generator{llm: stub}.ClassifyPersona(context.Background(), models.TripData{Destination: "Spain", NumberOfChildren: 2})
	require.NoError(t, err)
	assert.Equal(t, models.PersonaFamilyPlanner, p)
	assert.Contains(t, stub.lastPrompt, "Spain")

	stub.out = "Space Cowboy"
	_, err = generator{llm: stub}.ClassifyPersona(context.Background(), models.TripData{})
	assert.Error(t, err)
}

func TestGenerateReply(t *testing.T) {
	stub := &stubCompleter{out: "Assistant: Happy travels!"}
	turns := []models.Turn{
		{Role: models.RoleUser, Content: "thanks"},
	}
	reply, err := generator{llm: stub}.GenerateReply(context.Background(), turns, DefaultReplySystemPrompt)
	require.NoError(t, err)
	assert.Equal(t, "Happy travels!", reply)
	assert.True(t, strings.HasPrefix(stub.lastPrompt, "Customer: thanks"))

	stub.out = "   "
	_, err = generator{llm: stub}.GenerateReply(context.Background(), turns, "")
	assert.ErrorIs(t, err, errEmptyOutput)
}

func TestNopGenerator(t *testing.T) {
	_, err := NopGenerator{}.ExtractFields(context.Background(), "x", []string{"name"})
	assert.ErrorIs(t, err, ErrNoGenerator)
}

type closingCompleter struct {
	stubCompleter
	closed int
}

func (c *closingCompleter) Close() error {
	c.closed++
	return nil
}

func TestCloseReleasesProviderClient(t *testing.T) {
	c := &closingCompleter{}
	require.NoError(t, Close(generator{llm: c}))
	assert.Equal(t, 1, c.closed)

	assert.NoError(t, Close(generator{llm: &stubCompleter{}}))
	assert.NoError(t, Close(NopGenerator{}))
}
