// Code generated by ent, DO NOT EDIT.

package specvariant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the specvariant type in the database.
	Label = "spec_variant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldParam holds the string denoting the param field in the database.
	FieldParam = "param"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldRaw holds the string denoting the raw field in the database.
	FieldRaw = "raw"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldExtractionID holds the string denoting the extraction_id field in the database.
	FieldExtractionID = "extraction_id"
	// FieldMeta holds the string denoting the meta field in the database.
	FieldMeta = "meta"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// EdgeExtraction holds the string denoting the extraction edge name in mutations.
	EdgeExtraction = "extraction"
	// Table holds the table name of the specvariant in the database.
	Table = "spec_variants"
	// ExtractionTable is the table that holds the extraction relation/edge.
	ExtractionTable = "spec_variants"
	// ExtractionInverseTable is the table name for the RawExtraction entity.
	// It exists in this package in order to avoid circular dependency with the "rawextraction" package.
	ExtractionInverseTable = "raw_extractions"
	// ExtractionColumn is the table column denoting the extraction relation/edge.
	ExtractionColumn = "extraction_id"
)

// Columns holds all SQL columns for specvariant fields.
var Columns = []string{
	FieldID,
	FieldParam,
	FieldValue,
	FieldUnit,
	FieldRaw,
	FieldSource,
	FieldOrigin,
	FieldPriority,
	FieldExtractionID,
	FieldMeta,
	FieldUploadedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ParamValidator is a validator for the "param" field. It is called by the builders before save.
	ParamValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SpecVariant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParam orders the results by the param field.
func ByParam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParam, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByRaw orders the results by the raw field.
func ByRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRaw, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByExtractionID orders the results by the extraction_id field.
func ByExtractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionID, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByExtractionField orders the results by extraction field.
func ByExtractionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionStep(), sql.OrderByField(field, opts...))
	}
}
func newExtractionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
	)
}
