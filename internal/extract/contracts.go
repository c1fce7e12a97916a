package extract

import (
	"context"
	"time"

	"specmaster/constants"
)

// TextExtractor turns one document into a single text blob. Implementations
// must never fail on unsupported content; an empty Text is a valid
// "no text found" result.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, content []byte) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	SourceType constants.SourceType
	Duration   time.Duration
	Warnings   []string
}
