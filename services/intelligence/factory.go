package ai

import (
	"context"
	"fmt"
	"strings"

	"travelsure/config"

	"go.uber.org/zap"
)

// NewTextGenerator builds the generator named by LLM_PROVIDER. A provider without
// an API key, or "none", yields NopGenerator.
func NewTextGenerator(ctx context.Context, cfg config.Config, logger *zap.Logger) (TextGenerator, error) {
	switch strings.ToLower(cfg.LLMProvider) {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY not set, language model disabled")
			return NopGenerator{}, nil
		}
		client, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return generator{llm: client}, nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			logger.Warn("OPENAI_API_KEY not set, language model disabled")
			return NopGenerator{}, nil
		}
		return generator{llm: NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)}, nil
	case "", "none":
		return NopGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
