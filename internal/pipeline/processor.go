// Package pipeline coordinates text extraction and line parsing for one
// document and produces the candidate variants a processing run persists.
package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"specmaster/internal/entity"
	"specmaster/internal/extract"
)

// Document is one uploaded file: its original name plus raw bytes.
type Document struct {
	Filename string
	Content  []byte
}

// DocumentResult is everything extraction produced for one document: the
// landing record and the candidate variants that reference it. Nothing is
// persisted yet; the caller commits all documents of a run in one
// transaction.
type DocumentResult struct {
	Extraction entity.RawExtraction
	Candidates map[string][]entity.SpecVariant
	Warnings   []string
}

// Processor runs the extract stage then the parse stage for a document.
type Processor struct {
	extractor extract.TextExtractor
	parse     *ParseStage
	logger    *slog.Logger
}

func NewProcessor(extractor extract.TextExtractor, parse *ParseStage, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{extractor: extractor, parse: parse, logger: logger}
}

// ProcessDocument extracts text from doc, records the raw extraction, and
// parses each line into candidate variants.
func (p *Processor) ProcessDocument(ctx context.Context, doc Document) (*DocumentResult, error) {
	res, err := p.extractor.Extract(ctx, doc.Filename, doc.Content)
	if err != nil {
		p.logger.Error("text extraction failed", "origin", doc.Filename, "error", err)
		return nil, err
	}
	p.logger.Info("text extracted",
		"origin", doc.Filename,
		"source_type", res.SourceType,
		"chars", len(res.Text),
		"warnings", len(res.Warnings),
	)

	meta, _ := json.Marshal(map[string]any{"type": res.SourceType, "warnings": res.Warnings})
	extraction := entity.RawExtraction{
		ID:         uuid.New(),
		Origin:     doc.Filename,
		SourceType: res.SourceType,
		RawText:    res.Text,
		Meta:       meta,
	}

	candidates := p.parse.Run(ctx, res.Text, res.SourceType, doc.Filename, extraction.ID)
	p.logger.Debug("document parsed", "origin", doc.Filename, "params_matched", len(candidates))

	return &DocumentResult{
		Extraction: extraction,
		Candidates: candidates,
		Warnings:   res.Warnings,
	}, nil
}
