package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelsure/models"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// llmExtract asks the text generator for the missing fields when the rules
// found nothing. Any failure yields an empty result.
func (m *Manager) llmExtract(ctx context.Context, message string, missing []Field) models.TripData {
	if m.LLM == nil || len(missing) == 0 {
		return models.TripData{}
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout())
	defer cancel()

	fields := fieldNames(missing)
	raw, err := m.LLM.ExtractFields(ctx, message, fields)
	if err != nil {
		m.logger().Debug("language model extraction failed", zap.Error(err))
		return models.TripData{}
	}
	out, err := decodeFields(raw, fields, m.now())
	if err != nil {
		m.logger().Warn("discarding language model extraction", zap.Error(err))
		return models.TripData{}
	}
	return out
}

// fieldAliases widens a requested field to the keys that may carry it.
var fieldAliases = map[string][]string{
	string(FieldArrivalCountry): {"destination"},
	string(FieldTravellers):     {"number_of_adults", "number_of_children"},
	string(FieldDepartureDate):  {"trip_start_date"},
	string(FieldReturnDate):     {"trip_end_date"},
}

// decodeFields maps generator output onto TripData, keeping only requested
// fields and normalising dates, trip type and place names.
func decodeFields(raw map[string]any, fields []string, now time.Time) (models.TripData, error) {
	allowed := make(map[string]bool)
	for _, f := range fields {
		allowed[f] = true
		for _, alias := range fieldAliases[f] {
			allowed[alias] = true
		}
	}
	input := make(map[string]any)
	for k, v := range raw {
		if allowed[k] && v != nil {
			input[k] = v
		}
	}

	var out models.TripData
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return models.TripData{}, err
	}
	if err := decoder.Decode(input); err != nil {
		return models.TripData{}, fmt.Errorf("decode extracted fields: %w", err)
	}

	normaliseDate := func(s *string) {
		if *s == "" {
			return
		}
		if d, ok := NormalizeDate(*s, now); ok {
			*s = d
		} else {
			*s = ""
		}
	}
	normaliseDate(&out.DepartureDate)
	normaliseDate(&out.TripStartDate)
	normaliseDate(&out.ReturnDate)
	normaliseDate(&out.TripEndDate)

	switch tt := strings.ToLower(strings.ReplaceAll(string(out.TripType), " ", "_")); {
	case tt == "":
	case strings.Contains(tt, "round") || strings.Contains(tt, "return"):
		out.TripType = models.TripTypeRound
	case strings.Contains(tt, "single") || strings.Contains(tt, "one"):
		out.TripType = models.TripTypeSingle
	default:
		out.TripType = ""
	}

	if out.Name != "" {
		out.Name = titleCaser.String(strings.ToLower(strings.TrimSpace(out.Name)))
	}
	for _, p := range []*string{&out.Destination, &out.ArrivalCountry, &out.DepartureCountry} {
		if *p != "" {
			*p = placeName(*p)
		}
	}
	if !validAge(out.Age) {
		out.Age = 0
	}
	if out.TripDuration < 0 || out.TripDuration > 365 {
		out.TripDuration = 0
	}
	return out, nil
}
