// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"specmaster/gen/ent/rawextraction"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// RawExtraction is the model entity for the RawExtraction schema.
type RawExtraction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Origin holds the value of the "origin" field.
	Origin string `json:"origin,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType string `json:"source_type,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// Meta holds the value of the "meta" field.
	Meta map[string]interface{} `json:"meta,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RawExtractionQuery when eager-loading is set.
	Edges        RawExtractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RawExtractionEdges holds the relations/edges for other nodes in the graph.
type RawExtractionEdges struct {
	// Variants holds the value of the variants edge.
	Variants []*SpecVariant `json:"variants,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VariantsOrErr returns the Variants value or an error if the edge
// was not loaded in eager-loading.
func (e RawExtractionEdges) VariantsOrErr() ([]*SpecVariant, error) {
	if e.loadedTypes[0] {
		return e.Variants, nil
	}
	return nil, &NotLoadedError{edge: "variants"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RawExtraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rawextraction.FieldMeta:
			values[i] = new([]byte)
		case rawextraction.FieldOrigin, rawextraction.FieldSourceType, rawextraction.FieldRawText:
			values[i] = new(sql.NullString)
		case rawextraction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case rawextraction.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RawExtraction fields.
func (_m *RawExtraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rawextraction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case rawextraction.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = value.String
			}
		case rawextraction.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case rawextraction.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case rawextraction.FieldMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Meta); err != nil {
					return fmt.Errorf("unmarshal field meta: %w", err)
				}
			}
		case rawextraction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RawExtraction.
// This includes values selected through modifiers, order, etc.
func (_m *RawExtraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVariants queries the "variants" edge of the RawExtraction entity.
func (_m *RawExtraction) QueryVariants() *SpecVariantQuery {
	return NewRawExtractionClient(_m.config).QueryVariants(_m)
}

// Update returns a builder for updating this RawExtraction.
// Note that you need to call RawExtraction.Unwrap() before calling this method if this RawExtraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RawExtraction) Update() *RawExtractionUpdateOne {
	return NewRawExtractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RawExtraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RawExtraction) Unwrap() *RawExtraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RawExtraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RawExtraction) String() string {
	var builder strings.Builder
	builder.WriteString("RawExtraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("origin=")
	builder.WriteString(_m.Origin)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meta))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RawExtractions is a parsable slice of RawExtraction.
type RawExtractions []*RawExtraction
