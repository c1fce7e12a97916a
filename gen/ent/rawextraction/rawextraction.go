// Code generated by ent, DO NOT EDIT.

package rawextraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the rawextraction type in the database.
	Label = "raw_extraction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldMeta holds the string denoting the meta field in the database.
	FieldMeta = "meta"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeVariants holds the string denoting the variants edge name in mutations.
	EdgeVariants = "variants"
	// Table holds the table name of the rawextraction in the database.
	Table = "raw_extractions"
	// VariantsTable is the table that holds the variants relation/edge.
	VariantsTable = "spec_variants"
	// VariantsInverseTable is the table name for the SpecVariant entity.
	// It exists in this package in order to avoid circular dependency with the "specvariant" package.
	VariantsInverseTable = "spec_variants"
	// VariantsColumn is the table column denoting the variants relation/edge.
	VariantsColumn = "extraction_id"
)

// Columns holds all SQL columns for rawextraction fields.
var Columns = []string{
	FieldID,
	FieldOrigin,
	FieldSourceType,
	FieldRawText,
	FieldMeta,
	FieldCreatedAt,
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
	// OriginValidator is a validator for the "origin" field. It is called by the builders before save.
	OriginValidator func(string) error
	// SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	SourceTypeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RawExtraction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByVariantsCount orders the results by variants count.
func ByVariantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVariantsStep(), opts...)
	}
}

// ByVariants orders the results by variants terms.
func ByVariants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVariantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVariantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VariantsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VariantsTable, VariantsColumn),
	)
}
