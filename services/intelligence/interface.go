// File: services/intelligence/interface.go
package ai

import (
	"context"
	"errors"
	"io"

	"travelsure/models"
)

// ErrNoGenerator is returned by NopGenerator so callers take their rule-based path.
var ErrNoGenerator = errors.New("text generation is not configured")

// TextGenerator is the language-model surface the conversation relies on.
// Every method may fail; callers treat failure as "use the rule-based default".
type TextGenerator interface {
	// ExtractFields asks the model for values of exactly the named trip fields.
	ExtractFields(ctx context.Context, message string, fields []string) (map[string]any, error)
	// ClassifyPersona returns one of the models.Personas labels.
	ClassifyPersona(ctx context.Context, trip models.TripData) (models.Persona, error)
	// GenerateReply continues the conversation under the given system prompt.
	GenerateReply(ctx context.Context, turns []models.Turn, systemPrompt string) (string, error)
}

// completer is the single call a provider has to implement; the prompt building
// and output parsing are shared.
type completer interface {
	complete(ctx context.Context, system, prompt string, jsonOutput bool) (string, error)
}

// generator implements TextGenerator on top of a completer.
type generator struct {
	llm completer
}

func (g generator) ExtractFields(ctx context.Context, message string, fields []string) (map[string]any, error) {
	if len(fields) == 0 {
		return map[string]any{}, nil
	}
	out, err := g.llm.complete(ctx, extractionSystemPrompt, extractionPrompt(message, fields), true)
	if err != nil {
		return nil, err
	}
	return parseFieldMap(out, fields)
}

func (g generator) ClassifyPersona(ctx context.Context, trip models.TripData) (models.Persona, error) {
	out, err := g.llm.complete(ctx, personaSystemPrompt, personaPrompt(trip), false)
	if err != nil {
		return "", err
	}
	return parsePersona(out)
}

func (g generator) GenerateReply(ctx context.Context, turns []models.Turn, systemPrompt string) (string, error) {
	out, err := g.llm.complete(ctx, systemPrompt, transcript(turns), false)
	if err != nil {
		return "", err
	}
	return cleanReply(out)
}

// Close releases the provider client behind gen when it holds one.
func Close(gen TextGenerator) error {
	g, ok := gen.(generator)
	if !ok {
		return nil
	}
	if c, ok := g.llm.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// NopGenerator is used when no provider is configured.
type NopGenerator struct{}

func (NopGenerator) ExtractFields(context.Context, string, []string) (map[string]any, error) {
	return nil, ErrNoGenerator
}

func (NopGenerator) ClassifyPersona(context.Context, models.TripData) (models.Persona, error) {
	return "", ErrNoGenerator
}

func (NopGenerator) GenerateReply(context.Context, []models.Turn, string) (string, error) {
	return "", ErrNoGenerator
}
