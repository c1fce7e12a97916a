// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"specmaster/gen/ent/predicate"
	"specmaster/gen/ent/rawextraction"
	"specmaster/gen/ent/specvariant"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeRawExtraction = "RawExtraction"
	TypeSpecVariant   = "SpecVariant"
)

// RawExtractionMutation represents an operation that mutates the RawExtraction nodes in the graph.
type RawExtractionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	origin          *string
	source_type     *string
	raw_text        *string
	meta            *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	variants        map[uuid.UUID]struct{}
	removedvariants map[uuid.UUID]struct{}
	clearedvariants bool
	done            bool
	oldValue        func(context.Context) (*RawExtraction, error)
	predicates      []predicate.RawExtraction
}

var _ ent.Mutation = (*RawExtractionMutation)(nil)

// rawextractionOption allows management of the mutation configuration using functional options.
type rawextractionOption func(*RawExtractionMutation)

// newRawExtractionMutation creates new mutation for the RawExtraction entity.
func newRawExtractionMutation(c config, op Op, opts ...rawextractionOption) *RawExtractionMutation {
	m := &RawExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeRawExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRawExtractionID sets the ID field of the mutation.
func withRawExtractionID(id uuid.UUID) rawextractionOption {
	return func(m *RawExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *RawExtraction
		)
		m.oldValue = func(ctx context.Context) (*RawExtraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RawExtraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRawExtraction sets the old RawExtraction of the mutation.
func withRawExtraction(node *RawExtraction) rawextractionOption {
	return func(m *RawExtractionMutation) {
		m.oldValue = func(context.Context) (*RawExtraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RawExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RawExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RawExtraction entities.
func (m *RawExtractionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RawExtractionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RawExtractionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RawExtraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrigin sets the "origin" field.
func (m *RawExtractionMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *RawExtractionMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the RawExtraction entity.
// If the RawExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawExtractionMutation) OldOrigin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *RawExtractionMutation) ResetOrigin() {
	m.origin = nil
}

// SetSourceType sets the "source_type" field.
func (m *RawExtractionMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *RawExtractionMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the RawExtraction entity.
// If the RawExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawExtractionMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *RawExtractionMutation) ResetSourceType() {
	m.source_type = nil
}

// SetRawText sets the "raw_text" field.
func (m *RawExtractionMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *RawExtractionMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the RawExtraction entity.
// If the RawExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawExtractionMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *RawExtractionMutation) ResetRawText() {
	m.raw_text = nil
}

// SetMeta sets the "meta" field.
func (m *RawExtractionMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *RawExtractionMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the RawExtraction entity.
// If the RawExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawExtractionMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *RawExtractionMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[rawextraction.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *RawExtractionMutation) MetaCleared() bool {
	_, ok := m.clearedFields[rawextraction.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *RawExtractionMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, rawextraction.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *RawExtractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RawExtractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RawExtraction entity.
// If the RawExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawExtractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RawExtractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddVariantIDs adds the "variants" edge to the SpecVariant entity by ids.
func (m *RawExtractionMutation) AddVariantIDs(ids ...uuid.UUID) {
	if m.variants == nil {
		m.variants = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.variants[ids[i]] = struct{}{}
	}
}

// ClearVariants clears the "variants" edge to the SpecVariant entity.
func (m *RawExtractionMutation) ClearVariants() {
	m.clearedvariants = true
}

// VariantsCleared reports if the "variants" edge to the SpecVariant entity was cleared.
func (m *RawExtractionMutation) VariantsCleared() bool {
	return m.clearedvariants
}

// RemoveVariantIDs removes the "variants" edge to the SpecVariant entity by IDs.
func (m *RawExtractionMutation) RemoveVariantIDs(ids ...uuid.UUID) {
	if m.removedvariants == nil {
		m.removedvariants = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.variants, ids[i])
		m.removedvariants[ids[i]] = struct{}{}
	}
}

// RemovedVariants returns the removed IDs of the "variants" edge to the SpecVariant entity.
func (m *RawExtractionMutation) RemovedVariantsIDs() (ids []uuid.UUID) {
	for id := range m.removedvariants {
		ids = append(ids, id)
	}
	return
}

// VariantsIDs returns the "variants" edge IDs in the mutation.
func (m *RawExtractionMutation) VariantsIDs() (ids []uuid.UUID) {
	for id := range m.variants {
		ids = append(ids, id)
	}
	return
}

// ResetVariants resets all changes to the "variants" edge.
func (m *RawExtractionMutation) ResetVariants() {
	m.variants = nil
	m.clearedvariants = false
	m.removedvariants = nil
}

// Where appends a list predicates to the RawExtractionMutation builder.
func (m *RawExtractionMutation) Where(ps ...predicate.RawExtraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RawExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RawExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RawExtraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RawExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RawExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RawExtraction).
func (m *RawExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RawExtractionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.origin != nil {
		fields = append(fields, rawextraction.FieldOrigin)
	}
	if m.source_type != nil {
		fields = append(fields, rawextraction.FieldSourceType)
	}
	if m.raw_text != nil {
		fields = append(fields, rawextraction.FieldRawText)
	}
	if m.meta != nil {
		fields = append(fields, rawextraction.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, rawextraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RawExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rawextraction.FieldOrigin:
		return m.Origin()
	case rawextraction.FieldSourceType:
		return m.SourceType()
	case rawextraction.FieldRawText:
		return m.RawText()
	case rawextraction.FieldMeta:
		return m.Meta()
	case rawextraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RawExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rawextraction.FieldOrigin:
		return m.OldOrigin(ctx)
	case rawextraction.FieldSourceType:
		return m.OldSourceType(ctx)
	case rawextraction.FieldRawText:
		return m.OldRawText(ctx)
	case rawextraction.FieldMeta:
		return m.OldMeta(ctx)
	case rawextraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RawExtraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rawextraction.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case rawextraction.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case rawextraction.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case rawextraction.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case rawextraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RawExtraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RawExtractionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RawExtractionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RawExtraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RawExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rawextraction.FieldMeta) {
		fields = append(fields, rawextraction.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RawExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RawExtractionMutation) ClearField(name string) error {
	switch name {
	case rawextraction.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown RawExtraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RawExtractionMutation) ResetField(name string) error {
	switch name {
	case rawextraction.FieldOrigin:
		m.ResetOrigin()
		return nil
	case rawextraction.FieldSourceType:
		m.ResetSourceType()
		return nil
	case rawextraction.FieldRawText:
		m.ResetRawText()
		return nil
	case rawextraction.FieldMeta:
		m.ResetMeta()
		return nil
	case rawextraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RawExtraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RawExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.variants != nil {
		edges = append(edges, rawextraction.EdgeVariants)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RawExtractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rawextraction.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.variants))
		for id := range m.variants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RawExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedvariants != nil {
		edges = append(edges, rawextraction.EdgeVariants)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RawExtractionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case rawextraction.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.removedvariants))
		for id := range m.removedvariants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RawExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvariants {
		edges = append(edges, rawextraction.EdgeVariants)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RawExtractionMutation) EdgeCleared(name string) bool {
	switch name {
	case rawextraction.EdgeVariants:
		return m.clearedvariants
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RawExtractionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RawExtraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RawExtractionMutation) ResetEdge(name string) error {
	switch name {
	case rawextraction.EdgeVariants:
		m.ResetVariants()
		return nil
	}
	return fmt.Errorf("unknown RawExtraction edge %s", name)
}

// SpecVariantMutation represents an operation that mutates the SpecVariant nodes in the graph.
type SpecVariantMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	param             *string
	value             *string
	unit              *string
	raw               *string
	source            *string
	origin            *string
	priority          *int
	addpriority       *int
	meta              *map[string]interface{}
	uploaded_at       *time.Time
	clearedFields     map[string]struct{}
	extraction        *uuid.UUID
	clearedextraction bool
	done              bool
	oldValue          func(context.Context) (*SpecVariant, error)
	predicates        []predicate.SpecVariant
}

var _ ent.Mutation = (*SpecVariantMutation)(nil)

// specvariantOption allows management of the mutation configuration using functional options.
type specvariantOption func(*SpecVariantMutation)

// newSpecVariantMutation creates new mutation for the SpecVariant entity.
func newSpecVariantMutation(c config, op Op, opts ...specvariantOption) *SpecVariantMutation {
	m := &SpecVariantMutation{
		config:        c,
		op:            op,
		typ:           TypeSpecVariant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpecVariantID sets the ID field of the mutation.
func withSpecVariantID(id uuid.UUID) specvariantOption {
	return func(m *SpecVariantMutation) {
		var (
			err   error
			once  sync.Once
			value *SpecVariant
		)
		m.oldValue = func(ctx context.Context) (*SpecVariant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SpecVariant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpecVariant sets the old SpecVariant of the mutation.
func withSpecVariant(node *SpecVariant) specvariantOption {
	return func(m *SpecVariantMutation) {
		m.oldValue = func(context.Context) (*SpecVariant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpecVariantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpecVariantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SpecVariant entities.
func (m *SpecVariantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpecVariantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpecVariantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SpecVariant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParam sets the "param" field.
func (m *SpecVariantMutation) SetParam(s string) {
	m.param = &s
}

// Param returns the value of the "param" field in the mutation.
func (m *SpecVariantMutation) Param() (r string, exists bool) {
	v := m.param
	if v == nil {
		return
	}
	return *v, true
}

// OldParam returns the old "param" field's value of the SpecVariant entity.
// If the SpecVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecVariantMutation) OldParam(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParam: %w", err)
	}
	return oldValue.Param, nil
}

// ResetParam resets all changes to the "param" field.
func (m *SpecVariantMutation) ResetParam() {
	m.param = nil
}

// SetValue sets the "value" field.
func (m *SpecVariantMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SpecVariantMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the SpecVariant entity.
// If the SpecVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecVariantMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SpecVariantMutation) ResetValue() {
	m.value = nil
}

// SetUnit sets the "unit" field.
func (m *SpecVariantMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *SpecVariantMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the SpecVariant entity.
// If the SpecVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecVariantMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *SpecVariantMutation) ResetUnit() {
	m.unit = nil
}

// SetRaw sets the "raw" field.
func (m *SpecVariantMutation) SetRaw(s string) {
	m.raw = &s
}

// Raw returns the value of the "raw" field in the mutation.
func (m *SpecVariantMutation) Raw() (r string, exists bool) {
	v := m.raw
	if v == nil {
		return
	}
	return *v, true
}

// OldRaw returns the old "raw" field's value of the SpecVariant entity.
// If the SpecVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecVariantMutation) OldRaw(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRaw: %w", err)
	}
	return oldValue.Raw, nil
}

// ResetRaw resets all changes to the "raw" field.
func (m *SpecVariantMutation) ResetRaw() {
	m.raw = nil
}

// SetSource sets the "source" field.
func (m *SpecVariantMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SpecVariantMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the SpecVariant entity.
// If the SpecVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecVariantMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *SpecVariantMutation) ResetSource() {
	m.source = nil
}

// SetOrigin sets the "origin" field.
func (m *SpecVariantMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *SpecVariantMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the SpecVariant entity.
// If the SpecVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecVariantMutation) OldOrigin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ClearOrigin clears the value of the "origin" field.
func (m *SpecVariantMutation) ClearOrigin() {
	m.origin = nil
	m.clearedFields[specvariant.FieldOrigin] = struct{}{}
}

// OriginCleared returns if the "origin" field was cleared in this mutation.
func (m *SpecVariantMutation) OriginCleared() bool {
	_, ok := m.clearedFields[specvariant.FieldOrigin]
	return ok
}

// ResetOrigin resets all changes to the "origin" field.
func (m *SpecVariantMutation) ResetOrigin() {
	m.origin = nil
	delete(m.clearedFields, specvariant.FieldOrigin)
}

// SetPriority sets the "priority" field.
func (m *SpecVariantMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *SpecVariantMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the SpecVariant entity.
// If the SpecVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecVariantMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *SpecVariantMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *SpecVariantMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *SpecVariantMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetExtractionID sets the "extraction_id" field.
func (m *SpecVariantMutation) SetExtractionID(u uuid.UUID) {
	m.extraction = &u
}

// ExtractionID returns the value of the "extraction_id" field in the mutation.
func (m *SpecVariantMutation) ExtractionID() (r uuid.UUID, exists bool) {
	v := m.extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionID returns the old "extraction_id" field's value of the SpecVariant entity.
// If the SpecVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecVariantMutation) OldExtractionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionID: %w", err)
	}
	return oldValue.ExtractionID, nil
}

// ClearExtractionID clears the value of the "extraction_id" field.
func (m *SpecVariantMutation) ClearExtractionID() {
	m.extraction = nil
	m.clearedFields[specvariant.FieldExtractionID] = struct{}{}
}

// ExtractionIDCleared returns if the "extraction_id" field was cleared in this mutation.
func (m *SpecVariantMutation) ExtractionIDCleared() bool {
	_, ok := m.clearedFields[specvariant.FieldExtractionID]
	return ok
}

// ResetExtractionID resets all changes to the "extraction_id" field.
func (m *SpecVariantMutation) ResetExtractionID() {
	m.extraction = nil
	delete(m.clearedFields, specvariant.FieldExtractionID)
}

// SetMeta sets the "meta" field.
func (m *SpecVariantMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *SpecVariantMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the SpecVariant entity.
// If the SpecVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecVariantMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *SpecVariantMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[specvariant.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *SpecVariantMutation) MetaCleared() bool {
	_, ok := m.clearedFields[specvariant.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *SpecVariantMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, specvariant.FieldMeta)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *SpecVariantMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *SpecVariantMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the SpecVariant entity.
// If the SpecVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecVariantMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *SpecVariantMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearExtraction clears the "extraction" edge to the RawExtraction entity.
func (m *SpecVariantMutation) ClearExtraction() {
	m.clearedextraction = true
	m.clearedFields[specvariant.FieldExtractionID] = struct{}{}
}

// ExtractionCleared reports if the "extraction" edge to the RawExtraction entity was cleared.
func (m *SpecVariantMutation) ExtractionCleared() bool {
	return m.ExtractionIDCleared() || m.clearedextraction
}

// ExtractionIDs returns the "extraction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractionID instead. It exists only for internal usage by the builders.
func (m *SpecVariantMutation) ExtractionIDs() (ids []uuid.UUID) {
	if id := m.extraction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtraction resets all changes to the "extraction" edge.
func (m *SpecVariantMutation) ResetExtraction() {
	m.extraction = nil
	m.clearedextraction = false
}

// Where appends a list predicates to the SpecVariantMutation builder.
func (m *SpecVariantMutation) Where(ps ...predicate.SpecVariant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpecVariantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpecVariantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SpecVariant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpecVariantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpecVariantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SpecVariant).
func (m *SpecVariantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpecVariantMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.param != nil {
		fields = append(fields, specvariant.FieldParam)
	}
	if m.value != nil {
		fields = append(fields, specvariant.FieldValue)
	}
	if m.unit != nil {
		fields = append(fields, specvariant.FieldUnit)
	}
	if m.raw != nil {
		fields = append(fields, specvariant.FieldRaw)
	}
	if m.source != nil {
		fields = append(fields, specvariant.FieldSource)
	}
	if m.origin != nil {
		fields = append(fields, specvariant.FieldOrigin)
	}
	if m.priority != nil {
		fields = append(fields, specvariant.FieldPriority)
	}
	if m.extraction != nil {
		fields = append(fields, specvariant.FieldExtractionID)
	}
	if m.meta != nil {
		fields = append(fields, specvariant.FieldMeta)
	}
	if m.uploaded_at != nil {
		fields = append(fields, specvariant.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpecVariantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case specvariant.FieldParam:
		return m.Param()
	case specvariant.FieldValue:
		return m.Value()
	case specvariant.FieldUnit:
		return m.Unit()
	case specvariant.FieldRaw:
		return m.Raw()
	case specvariant.FieldSource:
		return m.Source()
	case specvariant.FieldOrigin:
		return m.Origin()
	case specvariant.FieldPriority:
		return m.Priority()
	case specvariant.FieldExtractionID:
		return m.ExtractionID()
	case specvariant.FieldMeta:
		return m.Meta()
	case specvariant.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpecVariantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case specvariant.FieldParam:
		return m.OldParam(ctx)
	case specvariant.FieldValue:
		return m.OldValue(ctx)
	case specvariant.FieldUnit:
		return m.OldUnit(ctx)
	case specvariant.FieldRaw:
		return m.OldRaw(ctx)
	case specvariant.FieldSource:
		return m.OldSource(ctx)
	case specvariant.FieldOrigin:
		return m.OldOrigin(ctx)
	case specvariant.FieldPriority:
		return m.OldPriority(ctx)
	case specvariant.FieldExtractionID:
		return m.OldExtractionID(ctx)
	case specvariant.FieldMeta:
		return m.OldMeta(ctx)
	case specvariant.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SpecVariant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecVariantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case specvariant.FieldParam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParam(v)
		return nil
	case specvariant.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case specvariant.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case specvariant.FieldRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRaw(v)
		return nil
	case specvariant.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case specvariant.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case specvariant.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case specvariant.FieldExtractionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionID(v)
		return nil
	case specvariant.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case specvariant.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SpecVariant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpecVariantMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, specvariant.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpecVariantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case specvariant.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecVariantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case specvariant.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown SpecVariant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpecVariantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(specvariant.FieldOrigin) {
		fields = append(fields, specvariant.FieldOrigin)
	}
	if m.FieldCleared(specvariant.FieldExtractionID) {
		fields = append(fields, specvariant.FieldExtractionID)
	}
	if m.FieldCleared(specvariant.FieldMeta) {
		fields = append(fields, specvariant.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpecVariantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpecVariantMutation) ClearField(name string) error {
	switch name {
	case specvariant.FieldOrigin:
		m.ClearOrigin()
		return nil
	case specvariant.FieldExtractionID:
		m.ClearExtractionID()
		return nil
	case specvariant.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown SpecVariant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpecVariantMutation) ResetField(name string) error {
	switch name {
	case specvariant.FieldParam:
		m.ResetParam()
		return nil
	case specvariant.FieldValue:
		m.ResetValue()
		return nil
	case specvariant.FieldUnit:
		m.ResetUnit()
		return nil
	case specvariant.FieldRaw:
		m.ResetRaw()
		return nil
	case specvariant.FieldSource:
		m.ResetSource()
		return nil
	case specvariant.FieldOrigin:
		m.ResetOrigin()
		return nil
	case specvariant.FieldPriority:
		m.ResetPriority()
		return nil
	case specvariant.FieldExtractionID:
		m.ResetExtractionID()
		return nil
	case specvariant.FieldMeta:
		m.ResetMeta()
		return nil
	case specvariant.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown SpecVariant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpecVariantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.extraction != nil {
		edges = append(edges, specvariant.EdgeExtraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpecVariantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case specvariant.EdgeExtraction:
		if id := m.extraction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpecVariantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpecVariantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpecVariantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedextraction {
		edges = append(edges, specvariant.EdgeExtraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpecVariantMutation) EdgeCleared(name string) bool {
	switch name {
	case specvariant.EdgeExtraction:
		return m.clearedextraction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpecVariantMutation) ClearEdge(name string) error {
	switch name {
	case specvariant.EdgeExtraction:
		m.ClearExtraction()
		return nil
	}
	return fmt.Errorf("unknown SpecVariant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpecVariantMutation) ResetEdge(name string) error {
	switch name {
	case specvariant.EdgeExtraction:
		m.ResetExtraction()
		return nil
	}
	return fmt.Errorf("unknown SpecVariant edge %s", name)
}
