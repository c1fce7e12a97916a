// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"specmaster/gen/ent/rawextraction"
	"specmaster/gen/ent/specvariant"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SpecVariantCreate is the builder for creating a SpecVariant entity.
type SpecVariantCreate struct {
	config
	mutation *SpecVariantMutation
	hooks    []Hook
}

// SetParam sets the "param" field.
func (_c *SpecVariantCreate) SetParam(v string) *SpecVariantCreate {
	_c.mutation.SetParam(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *SpecVariantCreate) SetValue(v string) *SpecVariantCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *SpecVariantCreate) SetUnit(v string) *SpecVariantCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetRaw sets the "raw" field.
func (_c *SpecVariantCreate) SetRaw(v string) *SpecVariantCreate {
	_c.mutation.SetRaw(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *SpecVariantCreate) SetSource(v string) *SpecVariantCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *SpecVariantCreate) SetOrigin(v string) *SpecVariantCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_c *SpecVariantCreate) SetNillableOrigin(v *string) *SpecVariantCreate {
	if v != nil {
		_c.SetOrigin(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *SpecVariantCreate) SetPriority(v int) *SpecVariantCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetExtractionID sets the "extraction_id" field.
func (_c *SpecVariantCreate) SetExtractionID(v uuid.UUID) *SpecVariantCreate {
	_c.mutation.SetExtractionID(v)
	return _c
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_c *SpecVariantCreate) SetNillableExtractionID(v *uuid.UUID) *SpecVariantCreate {
	if v != nil {
		_c.SetExtractionID(*v)
	}
	return _c
}

// SetMeta sets the "meta" field.
func (_c *SpecVariantCreate) SetMeta(v map[string]interface{}) *SpecVariantCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *SpecVariantCreate) SetUploadedAt(v time.Time) *SpecVariantCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *SpecVariantCreate) SetNillableUploadedAt(v *time.Time) *SpecVariantCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpecVariantCreate) SetID(v uuid.UUID) *SpecVariantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SpecVariantCreate) SetNillableID(v *uuid.UUID) *SpecVariantCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExtraction sets the "extraction" edge to the RawExtraction entity.
func (_c *SpecVariantCreate) SetExtraction(v *RawExtraction) *SpecVariantCreate {
	return _c.SetExtractionID(v.ID)
}

// Mutation returns the SpecVariantMutation object of the builder.
func (_c *SpecVariantCreate) Mutation() *SpecVariantMutation {
	return _c.mutation
}

// Save creates the SpecVariant in the database.
func (_c *SpecVariantCreate) Save(ctx context.Context) (*SpecVariant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpecVariantCreate) SaveX(ctx context.Context) *SpecVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecVariantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecVariantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpecVariantCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := specvariant.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := specvariant.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpecVariantCreate) check() error {
	if _, ok := _c.mutation.Param(); !ok {
		return &ValidationError{Name: "param", err: errors.New(`ent: missing required field "SpecVariant.param"`)}
	}
	if v, ok := _c.mutation.Param(); ok {
		if err := specvariant.ParamValidator(v); err != nil {
			return &ValidationError{Name: "param", err: fmt.Errorf(`ent: validator failed for field "SpecVariant.param": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "SpecVariant.value"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "SpecVariant.unit"`)}
	}
	if _, ok := _c.mutation.Raw(); !ok {
		return &ValidationError{Name: "raw", err: errors.New(`ent: missing required field "SpecVariant.raw"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "SpecVariant.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := specvariant.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SpecVariant.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "SpecVariant.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := specvariant.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "SpecVariant.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "SpecVariant.uploaded_at"`)}
	}
	return nil
}

func (_c *SpecVariantCreate) sqlSave(ctx context.Context) (*SpecVariant, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpecVariantCreate) createSpec() (*SpecVariant, *sqlgraph.CreateSpec) {
	var (
		_node = &SpecVariant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(specvariant.Table, sqlgraph.NewFieldSpec(specvariant.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Param(); ok {
		_spec.SetField(specvariant.FieldParam, field.TypeString, value)
		_node.Param = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(specvariant.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(specvariant.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Raw(); ok {
		_spec.SetField(specvariant.FieldRaw, field.TypeString, value)
		_node.Raw = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(specvariant.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(specvariant.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(specvariant.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(specvariant.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(specvariant.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
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
		_node.ExtractionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SpecVariantCreateBulk is the builder for creating many SpecVariant entities in bulk.
type SpecVariantCreateBulk struct {
	config
	err      error
	builders []*SpecVariantCreate
}

// Save creates the SpecVariant entities in the database.
func (_c *SpecVariantCreateBulk) Save(ctx context.Context) ([]*SpecVariant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpecVariant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpecVariantMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SpecVariantCreateBulk) SaveX(ctx context.Context) []*SpecVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecVariantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecVariantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
