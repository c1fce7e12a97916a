// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"specmaster/gen/ent/rawextraction"
	"specmaster/gen/ent/specvariant"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// SpecVariant is the model entity for the SpecVariant schema.
type SpecVariant struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Param holds the value of the "param" field.
	Param string `json:"param,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// Raw holds the value of the "raw" field.
	Raw string `json:"raw,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Origin holds the value of the "origin" field.
	Origin string `json:"origin,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// ExtractionID holds the value of the "extraction_id" field.
	ExtractionID *uuid.UUID `json:"extraction_id,omitempty"`
	// Meta holds the value of the "meta" field.
	Meta map[string]interface{} `json:"meta,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpecVariantQuery when eager-loading is set.
	Edges        SpecVariantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SpecVariantEdges holds the relations/edges for other nodes in the graph.
type SpecVariantEdges struct {
	// Extraction holds the value of the extraction edge.
	Extraction *RawExtraction `json:"extraction,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExtractionOrErr returns the Extraction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpecVariantEdges) ExtractionOrErr() (*RawExtraction, error) {
	if e.Extraction != nil {
		return e.Extraction, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rawextraction.Label}
	}
	return nil, &NotLoadedError{edge: "extraction"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SpecVariant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case specvariant.FieldExtractionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case specvariant.FieldMeta:
			values[i] = new([]byte)
		case specvariant.FieldPriority:
			values[i] = new(sql.NullInt64)
		case specvariant.FieldParam, specvariant.FieldValue, specvariant.FieldUnit, specvariant.FieldRaw, specvariant.FieldSource, specvariant.FieldOrigin:
			values[i] = new(sql.NullString)
		case specvariant.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case specvariant.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SpecVariant fields.
func (_m *SpecVariant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case specvariant.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case specvariant.FieldParam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field param", values[i])
			} else if value.Valid {
				_m.Param = value.String
			}
		case specvariant.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case specvariant.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case specvariant.FieldRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw", values[i])
			} else if value.Valid {
				_m.Raw = value.String
			}
		case specvariant.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case specvariant.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = value.String
			}
		case specvariant.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case specvariant.FieldExtractionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_id", values[i])
			} else if value.Valid {
				_m.ExtractionID = new(uuid.UUID)
				*_m.ExtractionID = *value.S.(*uuid.UUID)
			}
		case specvariant.FieldMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Meta); err != nil {
					return fmt.Errorf("unmarshal field meta: %w", err)
				}
			}
		case specvariant.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the SpecVariant.
// This includes values selected through modifiers, order, etc.
func (_m *SpecVariant) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExtraction queries the "extraction" edge of the SpecVariant entity.
func (_m *SpecVariant) QueryExtraction() *RawExtractionQuery {
	return NewSpecVariantClient(_m.config).QueryExtraction(_m)
}

// Update returns a builder for updating this SpecVariant.
// Note that you need to call SpecVariant.Unwrap() before calling this method if this SpecVariant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SpecVariant) Update() *SpecVariantUpdateOne {
	return NewSpecVariantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SpecVariant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SpecVariant) Unwrap() *SpecVariant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SpecVariant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SpecVariant) String() string {
	var builder strings.Builder
	builder.WriteString("SpecVariant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("param=")
	builder.WriteString(_m.Param)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("raw=")
	builder.WriteString(_m.Raw)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("origin=")
	builder.WriteString(_m.Origin)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.ExtractionID; v != nil {
		builder.WriteString("extraction_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meta))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SpecVariants is a parsable slice of SpecVariant.
type SpecVariants []*SpecVariant
