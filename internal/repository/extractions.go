package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"specmaster/gen/ent"
	"specmaster/internal/common"
	"specmaster/internal/entity"
	"specmaster/internal/utils"
)

// ExtractionRepository stores the immutable landing record of each
// processed document.
type ExtractionRepository interface {
	Create(ctx context.Context, e *entity.RawExtraction) (*entity.RawExtraction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RawExtraction, error)
}

type extractionRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewExtractionRepository(entc *ent.Client, logger *slog.Logger) ExtractionRepository {
	return &extractionRepo{ent: entc, logger: logger}
}

func (r *extractionRepo) Create(ctx context.Context, e *entity.RawExtraction) (*entity.RawExtraction, error) {
	create := r.ent.RawExtraction.Create().
		SetOrigin(e.Origin).
		SetSourceType(string(e.SourceType)).
		SetRawText(e.RawText).
		SetMeta(utils.MetaToMap(e.Meta))
	if e.ID != uuid.Nil {
		create = create.SetID(e.ID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("raw extraction insert failed", "origin", e.Origin, "error", err)
		return nil, err
	}
	r.logger.Info("raw extraction stored", "id", row.ID, "origin", e.Origin, "chars", len(e.RawText))
	return utils.ToRawExtraction(row), nil
}

func (r *extractionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.RawExtraction, error) {
	row, err := r.ent.RawExtraction.Get(ctx, id)
	switch {
	case ent.IsNotFound(err):
		return nil, fmt.Errorf("raw extraction %s: %w", id, common.ErrNotFound)
	case err != nil:
		return nil, err
	}
	return utils.ToRawExtraction(row), nil
}
