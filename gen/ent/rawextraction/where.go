// Code generated by ent, DO NOT EDIT.

package rawextraction

import (
	"specmaster/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldLTE(FieldID, id))
}

// Origin applies equality check predicate on the "origin" field. It's identical to OriginEQ.
func Origin(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEQ(FieldOrigin, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEQ(FieldSourceType, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEQ(FieldRawText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEQ(FieldCreatedAt, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNotIn(FieldOrigin, vs...))
}

// OriginGT applies the GT predicate on the "origin" field.
func OriginGT(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldGT(FieldOrigin, v))
}

// OriginGTE applies the GTE predicate on the "origin" field.
func OriginGTE(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldGTE(FieldOrigin, v))
}

// OriginLT applies the LT predicate on the "origin" field.
func OriginLT(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldLT(FieldOrigin, v))
}

// OriginLTE applies the LTE predicate on the "origin" field.
func OriginLTE(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldLTE(FieldOrigin, v))
}

// OriginContains applies the Contains predicate on the "origin" field.
func OriginContains(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldContains(FieldOrigin, v))
}

// OriginHasPrefix applies the HasPrefix predicate on the "origin" field.
func OriginHasPrefix(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldHasPrefix(FieldOrigin, v))
}

// OriginHasSuffix applies the HasSuffix predicate on the "origin" field.
func OriginHasSuffix(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldHasSuffix(FieldOrigin, v))
}

// OriginEqualFold applies the EqualFold predicate on the "origin" field.
func OriginEqualFold(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEqualFold(FieldOrigin, v))
}

// OriginContainsFold applies the ContainsFold predicate on the "origin" field.
func OriginContainsFold(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldContainsFold(FieldOrigin, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldContainsFold(FieldSourceType, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldContainsFold(FieldRawText, v))
}

// MetaIsNil applies the IsNil predicate on the "meta" field.
func MetaIsNil() predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldIsNull(FieldMeta))
}

// MetaNotNil applies the NotNil predicate on the "meta" field.
func MetaNotNil() predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNotNull(FieldMeta))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RawExtraction {
	return predicate.RawExtraction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasVariants applies the HasEdge predicate on the "variants" edge.
func HasVariants() predicate.RawExtraction {
	return predicate.RawExtraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VariantsTable, VariantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVariantsWith applies the HasEdge predicate on the "variants" edge with a given conditions (other predicates).
func HasVariantsWith(preds ...predicate.SpecVariant) predicate.RawExtraction {
	return predicate.RawExtraction(func(s *sql.Selector) {
		step := newVariantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RawExtraction) predicate.RawExtraction {
	return predicate.RawExtraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RawExtraction) predicate.RawExtraction {
	return predicate.RawExtraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RawExtraction) predicate.RawExtraction {
	return predicate.RawExtraction(sql.NotPredicates(p))
}
