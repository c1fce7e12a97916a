package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"specmaster/constants"
	"specmaster/gen/ent"
	entvariant "specmaster/gen/ent/specvariant"
	"specmaster/internal/entity"
	"specmaster/internal/utils"
)

// VariantRepository is the variant store: every extracted or manually
// entered observation, upserted on the (param, source, raw) identity.
type VariantRepository interface {
	// Upsert inserts a candidate variant or refreshes the row matching
	// (param, source, raw) in place. Returns the stored row and whether a
	// new row was created.
	Upsert(ctx context.Context, v *entity.SpecVariant) (*entity.SpecVariant, bool, error)
	// UpsertOverride writes a USER-sourced variant with priority 0,
	// replacing any existing USER row for the parameter.
	UpsertOverride(ctx context.Context, param, value, unit string, source constants.SourceType) (*entity.SpecVariant, error)
	ListAll(ctx context.Context) ([]entity.SpecVariant, error)
	ListByParam(ctx context.Context, param string) ([]entity.SpecVariant, error)
}

type variantRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewVariantRepository(entc *ent.Client, logger *slog.Logger) VariantRepository {
	return &variantRepo{ent: entc, logger: logger}
}

func (r *variantRepo) Upsert(ctx context.Context, v *entity.SpecVariant) (*entity.SpecVariant, bool, error) {
	existing, err := r.ent.SpecVariant.Query().
		Where(
			entvariant.Param(v.Param),
			entvariant.Source(string(v.Source)),
			entvariant.Raw(v.Raw),
		).Only(ctx)
	switch {
	case err == nil:
		update := existing.Update().
			SetValue(v.Value).
			SetUnit(v.Unit).
			SetOrigin(v.Origin).
			SetPriority(v.Priority).
			SetMeta(utils.MetaToMap(v.Meta))
		// a re-run re-points the variant at its fresh landing record
		if v.ExtractionID != nil {
			update = update.SetExtractionID(*v.ExtractionID)
		}
		row, err := update.Save(ctx)
		if err != nil {
			r.logger.Error("spec variant update failed", "param", v.Param, "source", v.Source, "error", err)
			return nil, false, err
		}
		return utils.ToSpecVariant(row), false, nil
	case ent.IsNotFound(err):
		create := r.ent.SpecVariant.Create().
			SetParam(v.Param).
			SetValue(v.Value).
			SetUnit(v.Unit).
			SetRaw(v.Raw).
			SetSource(string(v.Source)).
			SetOrigin(v.Origin).
			SetPriority(v.Priority).
			SetMeta(utils.MetaToMap(v.Meta))
		if v.ExtractionID != nil {
			create = create.SetExtractionID(*v.ExtractionID)
		}
		row, err := create.Save(ctx)
		if err != nil {
			r.logger.Error("spec variant insert failed", "param", v.Param, "source", v.Source, "error", err)
			return nil, false, err
		}
		return utils.ToSpecVariant(row), true, nil
	default:
		r.logger.Error("spec variant lookup failed", "param", v.Param, "source", v.Source, "error", err)
		return nil, false, err
	}
}

func (r *variantRepo) UpsertOverride(ctx context.Context, param, value, unit string, source constants.SourceType) (*entity.SpecVariant, error) {
	if source == "" {
		source = constants.SourceUser
	}
	meta := map[string]any{"updated_via": "api"}

	existing, err := r.ent.SpecVariant.Query().
		Where(
			entvariant.Param(param),
			entvariant.Source(string(constants.SourceUser)),
		).Only(ctx)
	switch {
	case err == nil:
		// an override without a unit keeps the prior one
		if unit == "" {
			unit = existing.Unit
		}
		row, uerr := existing.Update().
			SetValue(value).
			SetUnit(unit).
			SetRaw(overrideRaw(value, unit)).
			SetPriority(constants.PriorityUser).
			SetMeta(meta).
			Save(ctx)
		if uerr != nil {
			r.logger.Error("override update failed", "param", param, "error", uerr)
			return nil, uerr
		}
		r.logger.Info("override replaced", "param", param)
		return utils.ToSpecVariant(row), nil
	case ent.IsNotFound(err):
		row, cerr := r.ent.SpecVariant.Create().
			SetParam(param).
			SetValue(value).
			SetUnit(unit).
			SetRaw(overrideRaw(value, unit)).
			SetSource(string(source)).
			SetPriority(constants.PriorityUser).
			SetMeta(meta).
			Save(ctx)
		if cerr != nil {
			r.logger.Error("override insert failed", "param", param, "error", cerr)
			return nil, cerr
		}
		r.logger.Info("override created", "param", param)
		return utils.ToSpecVariant(row), nil
	default:
		r.logger.Error("override lookup failed", "param", param, "error", err)
		return nil, err
	}
}

// overrideRaw is the stored raw form of a manual edit.
func overrideRaw(value, unit string) string {
	return strings.TrimSpace(fmt.Sprintf("USER_EDIT:%s %s", value, unit))
}

func (r *variantRepo) ListAll(ctx context.Context) ([]entity.SpecVariant, error) {
	rows, err := r.ent.SpecVariant.Query().
		Order(entvariant.ByParam(), entvariant.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list spec variants", "error", err)
		return nil, err
	}
	out := make([]entity.SpecVariant, len(rows))
	for i, row := range rows {
		out[i] = *utils.ToSpecVariant(row)
	}
	return out, nil
}

func (r *variantRepo) ListByParam(ctx context.Context, param string) ([]entity.SpecVariant, error) {
	rows, err := r.ent.SpecVariant.Query().
		Where(entvariant.Param(param)).
		Order(entvariant.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list spec variants", "param", param, "error", err)
		return nil, err
	}
	out := make([]entity.SpecVariant, len(rows))
	for i, row := range rows {
		out[i] = *utils.ToSpecVariant(row)
	}
	return out, nil
}
