// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"specmaster/gen/ent/predicate"
	"specmaster/gen/ent/rawextraction"
	"specmaster/gen/ent/specvariant"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// RawExtractionUpdate is the builder for updating RawExtraction entities.
type RawExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *RawExtractionMutation
}

// Where appends a list predicates to the RawExtractionUpdate builder.
func (_u *RawExtractionUpdate) Where(ps ...predicate.RawExtraction) *RawExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *RawExtractionUpdate) SetOrigin(v string) *RawExtractionUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *RawExtractionUpdate) SetNillableOrigin(v *string) *RawExtractionUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *RawExtractionUpdate) SetSourceType(v string) *RawExtractionUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *RawExtractionUpdate) SetNillableSourceType(v *string) *RawExtractionUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *RawExtractionUpdate) SetRawText(v string) *RawExtractionUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *RawExtractionUpdate) SetNillableRawText(v *string) *RawExtractionUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetMeta sets the "meta" field.
func (_u *RawExtractionUpdate) SetMeta(v map[string]interface{}) *RawExtractionUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *RawExtractionUpdate) ClearMeta() *RawExtractionUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// AddVariantIDs adds the "variants" edge to the SpecVariant entity by IDs.
func (_u *RawExtractionUpdate) AddVariantIDs(ids ...uuid.UUID) *RawExtractionUpdate {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the SpecVariant entity.
func (_u *RawExtractionUpdate) AddVariants(v ...*SpecVariant) *RawExtractionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// Mutation returns the RawExtractionMutation object of the builder.
func (_u *RawExtractionUpdate) Mutation() *RawExtractionMutation {
	return _u.mutation
}

// ClearVariants clears all "variants" edges to the SpecVariant entity.
func (_u *RawExtractionUpdate) ClearVariants() *RawExtractionUpdate {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to SpecVariant entities by IDs.
func (_u *RawExtractionUpdate) RemoveVariantIDs(ids ...uuid.UUID) *RawExtractionUpdate {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to SpecVariant entities.
func (_u *RawExtractionUpdate) RemoveVariants(v ...*SpecVariant) *RawExtractionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RawExtractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RawExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RawExtractionUpdate) check() error {
	if v, ok := _u.mutation.Origin(); ok {
		if err := rawextraction.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "RawExtraction.origin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := rawextraction.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "RawExtraction.source_type": %w`, err)}
		}
	}
	return nil
}

func (_u *RawExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rawextraction.Table, rawextraction.Columns, sqlgraph.NewFieldSpec(rawextraction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(rawextraction.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(rawextraction.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(rawextraction.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(rawextraction.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(rawextraction.FieldMeta, field.TypeJSON)
	}
	if _u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawextraction.VariantsTable,
			Columns: []string{rawextraction.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specvariant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariantsIDs(); len(nodes) > 0 && !_u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawextraction.VariantsTable,
			Columns: []string{rawextraction.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specvariant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawextraction.VariantsTable,
			Columns: []string{rawextraction.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specvariant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawextraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RawExtractionUpdateOne is the builder for updating a single RawExtraction entity.
type RawExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RawExtractionMutation
}

// SetOrigin sets the "origin" field.
func (_u *RawExtractionUpdateOne) SetOrigin(v string) *RawExtractionUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *RawExtractionUpdateOne) SetNillableOrigin(v *string) *RawExtractionUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *RawExtractionUpdateOne) SetSourceType(v string) *RawExtractionUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *RawExtractionUpdateOne) SetNillableSourceType(v *string) *RawExtractionUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *RawExtractionUpdateOne) SetRawText(v string) *RawExtractionUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *RawExtractionUpdateOne) SetNillableRawText(v *string) *RawExtractionUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetMeta sets the "meta" field.
func (_u *RawExtractionUpdateOne) SetMeta(v map[string]interface{}) *RawExtractionUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *RawExtractionUpdateOne) ClearMeta() *RawExtractionUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// AddVariantIDs adds the "variants" edge to the SpecVariant entity by IDs.
func (_u *RawExtractionUpdateOne) AddVariantIDs(ids ...uuid.UUID) *RawExtractionUpdateOne {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the SpecVariant entity.
func (_u *RawExtractionUpdateOne) AddVariants(v ...*SpecVariant) *RawExtractionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// Mutation returns the RawExtractionMutation object of the builder.
func (_u *RawExtractionUpdateOne) Mutation() *RawExtractionMutation {
	return _u.mutation
}

// ClearVariants clears all "variants" edges to the SpecVariant entity.
func (_u *RawExtractionUpdateOne) ClearVariants() *RawExtractionUpdateOne {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to SpecVariant entities by IDs.
func (_u *RawExtractionUpdateOne) RemoveVariantIDs(ids ...uuid.UUID) *RawExtractionUpdateOne {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to SpecVariant entities.
func (_u *RawExtractionUpdateOne) RemoveVariants(v ...*SpecVariant) *RawExtractionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// Where appends a list predicates to the RawExtractionUpdate builder.
func (_u *RawExtractionUpdateOne) Where(ps ...predicate.RawExtraction) *RawExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RawExtractionUpdateOne) Select(field string, fields ...string) *RawExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RawExtraction entity.
func (_u *RawExtractionUpdateOne) Save(ctx context.Context) (*RawExtraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawExtractionUpdateOne) SaveX(ctx context.Context) *RawExtraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RawExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RawExtractionUpdateOne) check() error {
	if v, ok := _u.mutation.Origin(); ok {
		if err := rawextraction.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "RawExtraction.origin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := rawextraction.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "RawExtraction.source_type": %w`, err)}
		}
	}
	return nil
}

func (_u *RawExtractionUpdateOne) sqlSave(ctx context.Context) (_node *RawExtraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rawextraction.Table, rawextraction.Columns, sqlgraph.NewFieldSpec(rawextraction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RawExtraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rawextraction.FieldID)
		for _, f := range fields {
			if !rawextraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rawextraction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(rawextraction.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(rawextraction.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(rawextraction.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(rawextraction.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(rawextraction.FieldMeta, field.TypeJSON)
	}
	if _u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawextraction.VariantsTable,
			Columns: []string{rawextraction.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specvariant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariantsIDs(); len(nodes) > 0 && !_u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawextraction.VariantsTable,
			Columns: []string{rawextraction.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specvariant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawextraction.VariantsTable,
			Columns: []string{rawextraction.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specvariant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RawExtraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawextraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
