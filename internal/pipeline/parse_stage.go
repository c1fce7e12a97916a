package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"specmaster/constants"
	"specmaster/internal/classify"
	"specmaster/internal/entity"
	"specmaster/internal/parse"
	"specmaster/internal/units"
)

// ParseStage maps the lines of one extracted document to candidate spec
// variants: classify the line, pull out value+unit, normalize into the
// parameter's canonical unit.
type ParseStage struct {
	classifier *classify.Classifier
	logger     *slog.Logger
}

func NewParseStage(classifier *classify.Classifier, logger *slog.Logger) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{classifier: classifier, logger: logger}
}

// Run yields candidate variants keyed by parameter, in line order. Lines
// that are blank, unclassifiable, or carry no extractable value are skipped.
func (s *ParseStage) Run(ctx context.Context, rawText string, st constants.SourceType, origin string, extractionID uuid.UUID) map[string][]entity.SpecVariant {
	candidates := make(map[string][]entity.SpecVariant)
	priority := constants.PriorityForSource(st)

	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		param, score, ok := s.classifier.Classify(ctx, line)
		if !ok {
			s.logger.Debug("line discarded", "origin", origin, "param", param, "score", score)
			continue
		}

		value, unit, ok := parse.ExtractValueUnit(line)
		if !ok {
			continue
		}

		if target, hasTarget := units.TargetForParam(param); hasTarget {
			norm, err := units.Normalize(value, unit, target)
			if err != nil {
				// fallback token that is not numeric for a numeric parameter
				s.logger.Debug("line skipped, value not normalizable",
					"origin", origin, "param", param, "value", value, "error", err)
				continue
			}
			value = norm
		}

		meta, _ := json.Marshal(map[string]any{"score": score})
		eid := extractionID
		candidates[param] = append(candidates[param], entity.SpecVariant{
			Param:        param,
			Value:        value,
			Unit:         unit,
			Raw:          line,
			Source:       st,
			Origin:       origin,
			Priority:     priority,
			ExtractionID: &eid,
			Meta:         meta,
		})
	}
	return candidates
}
