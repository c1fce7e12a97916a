// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"specmaster/gen/ent/predicate"
	"specmaster/gen/ent/specvariant"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SpecVariantDelete is the builder for deleting a SpecVariant entity.
type SpecVariantDelete struct {
	config
	hooks    []Hook
	mutation *SpecVariantMutation
}

// Where appends a list predicates to the SpecVariantDelete builder.
func (_d *SpecVariantDelete) Where(ps ...predicate.SpecVariant) *SpecVariantDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SpecVariantDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SpecVariantDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SpecVariantDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(specvariant.Table, sqlgraph.NewFieldSpec(specvariant.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SpecVariantDeleteOne is the builder for deleting a single SpecVariant entity.
type SpecVariantDeleteOne struct {
	_d *SpecVariantDelete
}

// Where appends a list predicates to the SpecVariantDelete builder.
func (_d *SpecVariantDeleteOne) Where(ps ...predicate.SpecVariant) *SpecVariantDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SpecVariantDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{specvariant.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SpecVariantDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
