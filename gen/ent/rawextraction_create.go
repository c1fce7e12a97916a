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

// RawExtractionCreate is the builder for creating a RawExtraction entity.
type RawExtractionCreate struct {
	config
	mutation *RawExtractionMutation
	hooks    []Hook
}

// SetOrigin sets the "origin" field.
func (_c *RawExtractionCreate) SetOrigin(v string) *RawExtractionCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *RawExtractionCreate) SetSourceType(v string) *RawExtractionCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *RawExtractionCreate) SetRawText(v string) *RawExtractionCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetMeta sets the "meta" field.
func (_c *RawExtractionCreate) SetMeta(v map[string]interface{}) *RawExtractionCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RawExtractionCreate) SetCreatedAt(v time.Time) *RawExtractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RawExtractionCreate) SetNillableCreatedAt(v *time.Time) *RawExtractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RawExtractionCreate) SetID(v uuid.UUID) *RawExtractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RawExtractionCreate) SetNillableID(v *uuid.UUID) *RawExtractionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddVariantIDs adds the "variants" edge to the SpecVariant entity by IDs.
func (_c *RawExtractionCreate) AddVariantIDs(ids ...uuid.UUID) *RawExtractionCreate {
	_c.mutation.AddVariantIDs(ids...)
	return _c
}

// AddVariants adds the "variants" edges to the SpecVariant entity.
func (_c *RawExtractionCreate) AddVariants(v ...*SpecVariant) *RawExtractionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVariantIDs(ids...)
}

// Mutation returns the RawExtractionMutation object of the builder.
func (_c *RawExtractionCreate) Mutation() *RawExtractionMutation {
	return _c.mutation
}

// Save creates the RawExtraction in the database.
func (_c *RawExtractionCreate) Save(ctx context.Context) (*RawExtraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RawExtractionCreate) SaveX(ctx context.Context) *RawExtraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RawExtractionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rawextraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := rawextraction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RawExtractionCreate) check() error {
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "RawExtraction.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := rawextraction.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "RawExtraction.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "RawExtraction.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := rawextraction.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "RawExtraction.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "RawExtraction.raw_text"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RawExtraction.created_at"`)}
	}
	return nil
}

func (_c *RawExtractionCreate) sqlSave(ctx context.Context) (*RawExtraction, error) {
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

func (_c *RawExtractionCreate) createSpec() (*RawExtraction, *sqlgraph.CreateSpec) {
	var (
		_node = &RawExtraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rawextraction.Table, sqlgraph.NewFieldSpec(rawextraction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(rawextraction.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(rawextraction.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(rawextraction.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(rawextraction.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rawextraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.VariantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RawExtractionCreateBulk is the builder for creating many RawExtraction entities in bulk.
type RawExtractionCreateBulk struct {
	config
	err      error
	builders []*RawExtractionCreate
}

// Save creates the RawExtraction entities in the database.
func (_c *RawExtractionCreateBulk) Save(ctx context.Context) ([]*RawExtraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RawExtraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RawExtractionMutation)
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
func (_c *RawExtractionCreateBulk) SaveX(ctx context.Context) []*RawExtraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
