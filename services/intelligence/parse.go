package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"travelsure/models"
)

var errEmptyOutput = errors.New("model returned no text")

// parseFieldMap pulls the first JSON object out of the model output and keeps
// only the requested, non-null fields.
func parseFieldMap(out string, fields []string) (map[string]any, error) {
	raw := extractJSONObject(out)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in model output: %q", truncate(out, 80))
	}
	var all map[string]any
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		return nil, fmt.Errorf("decode model output: %w", err)
	}

	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}
	result := make(map[string]any)
	for k, v := range all {
		if !wanted[k] || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			s = strings.TrimSpace(s)
			switch strings.ToLower(s) {
			case "", "null", "none", "unknown", "n/a":
				continue
			}
			v = s
		}
		result[k] = v
	}
	return result, nil
}

func extractJSONObject(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// parsePersona maps the model's answer onto a known persona label.
func parsePersona(out string) (models.Persona, error) {
	answer := strings.ToLower(strings.Trim(strings.TrimSpace(out), `."'*`))
	if answer == "" {
		return "", errEmptyOutput
	}
	for _, p := range models.Personas() {
		if strings.Contains(answer, strings.ToLower(string(p))) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown persona %q", truncate(out, 40))
}

func cleanReply(out string) (string, error) {
	out = strings.TrimSpace(out)
	out = strings.TrimPrefix(out, "Assistant:")
	out = strings.TrimSpace(out)
	if out == "" {
		return "", errEmptyOutput
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
