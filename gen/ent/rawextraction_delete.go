// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"specmaster/gen/ent/predicate"
	"specmaster/gen/ent/rawextraction"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RawExtractionDelete is the builder for deleting a RawExtraction entity.
type RawExtractionDelete struct {
	config
	hooks    []Hook
	mutation *RawExtractionMutation
}

// Where appends a list predicates to the RawExtractionDelete builder.
func (_d *RawExtractionDelete) Where(ps ...predicate.RawExtraction) *RawExtractionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RawExtractionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RawExtractionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RawExtractionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(rawextraction.Table, sqlgraph.NewFieldSpec(rawextraction.FieldID, field.TypeUUID))
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

// RawExtractionDeleteOne is the builder for deleting a single RawExtraction entity.
type RawExtractionDeleteOne struct {
	_d *RawExtractionDelete
}

// Where appends a list predicates to the RawExtractionDelete builder.
func (_d *RawExtractionDeleteOne) Where(ps ...predicate.RawExtraction) *RawExtractionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RawExtractionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{rawextraction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RawExtractionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
