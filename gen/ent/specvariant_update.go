// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"specmaster/gen/ent/predicate"
	"specmaster/gen/ent/rawextraction"
	"specmaster/gen/ent/specvariant"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SpecVariantUpdate is the builder for updating SpecVariant entities.
type SpecVariantUpdate struct {
	config
	hooks    []Hook
	mutation *SpecVariantMutation
}

// Where appends a list predicates to the SpecVariantUpdate builder.
func (_u *SpecVariantUpdate) Where(ps ...predicate.SpecVariant) *SpecVariantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParam sets the "param" field.
func (_u *SpecVariantUpdate) SetParam(v string) *SpecVariantUpdate {
	_u.mutation.SetParam(v)
	return _u
}

// SetNillableParam sets the "param" field if the given value is not nil.
func (_u *SpecVariantUpdate) SetNillableParam(v *string) *SpecVariantUpdate {
	if v != nil {
		_u.SetParam(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SpecVariantUpdate) SetValue(v string) *SpecVariantUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SpecVariantUpdate) SetNillableValue(v *string) *SpecVariantUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *SpecVariantUpdate) SetUnit(v string) *SpecVariantUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *SpecVariantUpdate) SetNillableUnit(v *string) *SpecVariantUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetRaw sets the "raw" field.
func (_u *SpecVariantUpdate) SetRaw(v string) *SpecVariantUpdate {
	_u.mutation.SetRaw(v)
	return _u
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_u *SpecVariantUpdate) SetNillableRaw(v *string) *SpecVariantUpdate {
	if v != nil {
		_u.SetRaw(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SpecVariantUpdate) SetSource(v string) *SpecVariantUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SpecVariantUpdate) SetNillableSource(v *string) *SpecVariantUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *SpecVariantUpdate) SetOrigin(v string) *SpecVariantUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *SpecVariantUpdate) SetNillableOrigin(v *string) *SpecVariantUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// ClearOrigin clears the value of the "origin" field.
func (_u *SpecVariantUpdate) ClearOrigin() *SpecVariantUpdate {
	_u.mutation.ClearOrigin()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SpecVariantUpdate) SetPriority(v int) *SpecVariantUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SpecVariantUpdate) SetNillablePriority(v *int) *SpecVariantUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SpecVariantUpdate) AddPriority(v int) *SpecVariantUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *SpecVariantUpdate) SetExtractionID(v uuid.UUID) *SpecVariantUpdate {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *SpecVariantUpdate) SetNillableExtractionID(v *uuid.UUID) *SpecVariantUpdate {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// ClearExtractionID clears the value of the "extraction_id" field.
func (_u *SpecVariantUpdate) ClearExtractionID() *SpecVariantUpdate {
	_u.mutation.ClearExtractionID()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *SpecVariantUpdate) SetMeta(v map[string]interface{}) *SpecVariantUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *SpecVariantUpdate) ClearMeta() *SpecVariantUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SpecVariantUpdate) SetUploadedAt(v time.Time) *SpecVariantUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SpecVariantUpdate) SetNillableUploadedAt(v *time.Time) *SpecVariantUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetExtraction sets the "extraction" edge to the RawExtraction entity.
func (_u *SpecVariantUpdate) SetExtraction(v *RawExtraction) *SpecVariantUpdate {
	return _u.SetExtractionID(v.ID)
}

// Mutation returns the SpecVariantMutation object of the builder.
func (_u *SpecVariantUpdate) Mutation() *SpecVariantMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the RawExtraction entity.
func (_u *SpecVariantUpdate) ClearExtraction() *SpecVariantUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpecVariantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecVariantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpecVariantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecVariantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecVariantUpdate) check() error {
	if v, ok := _u.mutation.Param(); ok {
		if err := specvariant.ParamValidator(v); err != nil {
			return &ValidationError{Name: "param", err: fmt.Errorf(`ent: validator failed for field "SpecVariant.param": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := specvariant.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SpecVariant.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := specvariant.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "SpecVariant.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *SpecVariantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specvariant.Table, specvariant.Columns, sqlgraph.NewFieldSpec(specvariant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Param(); ok {
		_spec.SetField(specvariant.FieldParam, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(specvariant.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(specvariant.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(specvariant.FieldRaw, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(specvariant.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(specvariant.FieldOrigin, field.TypeString, value)
	}
	if _u.mutation.OriginCleared() {
		_spec.ClearField(specvariant.FieldOrigin, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(specvariant.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(specvariant.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(specvariant.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(specvariant.FieldMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(specvariant.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specvariant.ExtractionTable,
			Columns: []string{specvariant.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawextraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specvariant.ExtractionTable,
			Columns: []string{specvariant.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawextraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpecVariantUpdateOne is the builder for updating a single SpecVariant entity.
type SpecVariantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpecVariantMutation
}

// SetParam sets the "param" field.
func (_u *SpecVariantUpdateOne) SetParam(v string) *SpecVariantUpdateOne {
	_u.mutation.SetParam(v)
	return _u
}

// SetNillableParam sets the "param" field if the given value is not nil.
func (_u *SpecVariantUpdateOne) SetNillableParam(v *string) *SpecVariantUpdateOne {
	if v != nil {
		_u.SetParam(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SpecVariantUpdateOne) SetValue(v string) *SpecVariantUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SpecVariantUpdateOne) SetNillableValue(v *string) *SpecVariantUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *SpecVariantUpdateOne) SetUnit(v string) *SpecVariantUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *SpecVariantUpdateOne) SetNillableUnit(v *string) *SpecVariantUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetRaw sets the "raw" field.
func (_u *SpecVariantUpdateOne) SetRaw(v string) *SpecVariantUpdateOne {
	_u.mutation.SetRaw(v)
	return _u
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_u *SpecVariantUpdateOne) SetNillableRaw(v *string) *SpecVariantUpdateOne {
	if v != nil {
		_u.SetRaw(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SpecVariantUpdateOne) SetSource(v string) *SpecVariantUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SpecVariantUpdateOne) SetNillableSource(v *string) *SpecVariantUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *SpecVariantUpdateOne) SetOrigin(v string) *SpecVariantUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *SpecVariantUpdateOne) SetNillableOrigin(v *string) *SpecVariantUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// ClearOrigin clears the value of the "origin" field.
func (_u *SpecVariantUpdateOne) ClearOrigin() *SpecVariantUpdateOne {
	_u.mutation.ClearOrigin()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SpecVariantUpdateOne) SetPriority(v int) *SpecVariantUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SpecVariantUpdateOne) SetNillablePriority(v *int) *SpecVariantUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SpecVariantUpdateOne) AddPriority(v int) *SpecVariantUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *SpecVariantUpdateOne) SetExtractionID(v uuid.UUID) *SpecVariantUpdateOne {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *SpecVariantUpdateOne) SetNillableExtractionID(v *uuid.UUID) *SpecVariantUpdateOne {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// ClearExtractionID clears the value of the "extraction_id" field.
func (_u *SpecVariantUpdateOne) ClearExtractionID() *SpecVariantUpdateOne {
	_u.mutation.ClearExtractionID()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *SpecVariantUpdateOne) SetMeta(v map[string]interface{}) *SpecVariantUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *SpecVariantUpdateOne) ClearMeta() *SpecVariantUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SpecVariantUpdateOne) SetUploadedAt(v time.Time) *SpecVariantUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SpecVariantUpdateOne) SetNillableUploadedAt(v *time.Time) *SpecVariantUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetExtraction sets the "extraction" edge to the RawExtraction entity.
func (_u *SpecVariantUpdateOne) SetExtraction(v *RawExtraction) *SpecVariantUpdateOne {
	return _u.SetExtractionID(v.ID)
}

// Mutation returns the SpecVariantMutation object of the builder.
func (_u *SpecVariantUpdateOne) Mutation() *SpecVariantMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the RawExtraction entity.
func (_u *SpecVariantUpdateOne) ClearExtraction() *SpecVariantUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// Where appends a list predicates to the SpecVariantUpdate builder.
func (_u *SpecVariantUpdateOne) Where(ps ...predicate.SpecVariant) *SpecVariantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpecVariantUpdateOne) Select(field string, fields ...string) *SpecVariantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpecVariant entity.
func (_u *SpecVariantUpdateOne) Save(ctx context.Context) (*SpecVariant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecVariantUpdateOne) SaveX(ctx context.Context) *SpecVariant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpecVariantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecVariantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecVariantUpdateOne) check() error {
	if v, ok := _u.mutation.Param(); ok {
		if err := specvariant.ParamValidator(v); err != nil {
			return &ValidationError{Name: "param", err: fmt.Errorf(`ent: validator failed for field "SpecVariant.param": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := specvariant.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SpecVariant.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := specvariant.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "SpecVariant.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *SpecVariantUpdateOne) sqlSave(ctx context.Context) (_node *SpecVariant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specvariant.Table, specvariant.Columns, sqlgraph.NewFieldSpec(specvariant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpecVariant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, specvariant.FieldID)
		for _, f := range fields {
			if !specvariant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != specvariant.FieldID {
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
	if value, ok := _u.mutation.Param(); ok {
		_spec.SetField(specvariant.FieldParam, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(specvariant.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(specvariant.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(specvariant.FieldRaw, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(specvariant.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(specvariant.FieldOrigin, field.TypeString, value)
	}
	if _u.mutation.OriginCleared() {
		_spec.ClearField(specvariant.FieldOrigin, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(specvariant.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(specvariant.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(specvariant.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(specvariant.FieldMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(specvariant.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specvariant.ExtractionTable,
			Columns: []string{specvariant.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawextraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specvariant.ExtractionTable,
			Columns: []string{specvariant.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawextraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SpecVariant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
