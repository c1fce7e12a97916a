// Package classify maps free-text specification lines to canonical
// parameters via an external similarity scorer.
package classify

import (
	"context"
	"log/slog"
)

// DefaultThreshold is the acceptance floor for similarity scores.
const DefaultThreshold = 0.55

// Classifier applies the acceptance floor on top of a Matcher. Matcher
// failures degrade to "no match" so a flaky scoring service never aborts
// a processing run.
type Classifier struct {
	matcher   Matcher
	threshold float64
	logger    *slog.Logger
}

func NewClassifier(matcher Matcher, threshold float64, logger *slog.Logger) *Classifier {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{matcher: matcher, threshold: threshold, logger: logger}
}

// Classify returns the best-matching parameter for line, or ok=false when
// the score falls below the floor or the matcher is unavailable.
func (c *Classifier) Classify(ctx context.Context, line string) (param string, score float64, ok bool) {
	param, score, err := c.matcher.BestMatch(ctx, line)
	if err != nil {
		c.logger.Warn("similarity match failed, treating line as no match", "error", err)
		return "", 0, false
	}
	if param == "" || score < c.threshold {
		return param, score, false
	}
	return param, score, true
}
