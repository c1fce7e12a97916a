package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"specmaster/constants"
)

// PlainTextExtractor reads document bytes as UTF-8 text. It is the local
// fallback behind the TextExtractor contract: PDF, DOCX and image OCR live
// in an external extraction service, and documents of those types come back
// empty (with a warning) when only this extractor is wired.
type PlainTextExtractor struct {
	logger *slog.Logger
}

func NewPlainTextExtractor(logger *slog.Logger) *PlainTextExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlainTextExtractor{logger: logger}
}

func (e *PlainTextExtractor) Extract(_ context.Context, filename string, content []byte) (TextExtractionResult, error) {
	start := time.Now()
	st := constants.SourceTypeForFilename(filename)

	res := TextExtractionResult{SourceType: st}
	switch st {
	case constants.SourcePDF, constants.SourceDOCX, constants.SourceImage:
		res.Warnings = append(res.Warnings,
			"no extraction service configured for "+string(st)+" content")
		e.logger.Warn("text extraction skipped", "origin", filename, "source_type", st)
	default:
		if !utf8.Valid(content) {
			res.Warnings = append(res.Warnings, "content is not valid UTF-8")
			e.logger.Warn("text extraction found non-UTF-8 content", "origin", filename)
			break
		}
		res.Text = strings.TrimSpace(string(content))
	}
	res.Duration = time.Since(start)
	return res, nil
}
