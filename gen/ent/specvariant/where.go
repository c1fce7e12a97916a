// Code generated by ent, DO NOT EDIT.

package specvariant

import (
	"specmaster/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLTE(FieldID, id))
}

// Param applies equality check predicate on the "param" field. It's identical to ParamEQ.
func Param(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldParam, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldUnit, v))
}

// Raw applies equality check predicate on the "raw" field. It's identical to RawEQ.
func Raw(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldRaw, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldSource, v))
}

// Origin applies equality check predicate on the "origin" field. It's identical to OriginEQ.
func Origin(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldOrigin, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldPriority, v))
}

// ExtractionID applies equality check predicate on the "extraction_id" field. It's identical to ExtractionIDEQ.
func ExtractionID(v uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldExtractionID, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldUploadedAt, v))
}

// ParamEQ applies the EQ predicate on the "param" field.
func ParamEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldParam, v))
}

// ParamNEQ applies the NEQ predicate on the "param" field.
func ParamNEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNEQ(FieldParam, v))
}

// ParamIn applies the In predicate on the "param" field.
func ParamIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIn(FieldParam, vs...))
}

// ParamNotIn applies the NotIn predicate on the "param" field.
func ParamNotIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotIn(FieldParam, vs...))
}

// ParamGT applies the GT predicate on the "param" field.
func ParamGT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGT(FieldParam, v))
}

// ParamGTE applies the GTE predicate on the "param" field.
func ParamGTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGTE(FieldParam, v))
}

// ParamLT applies the LT predicate on the "param" field.
func ParamLT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLT(FieldParam, v))
}

// ParamLTE applies the LTE predicate on the "param" field.
func ParamLTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLTE(FieldParam, v))
}

// ParamContains applies the Contains predicate on the "param" field.
func ParamContains(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContains(FieldParam, v))
}

// ParamHasPrefix applies the HasPrefix predicate on the "param" field.
func ParamHasPrefix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasPrefix(FieldParam, v))
}

// ParamHasSuffix applies the HasSuffix predicate on the "param" field.
func ParamHasSuffix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasSuffix(FieldParam, v))
}

// ParamEqualFold applies the EqualFold predicate on the "param" field.
func ParamEqualFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEqualFold(FieldParam, v))
}

// ParamContainsFold applies the ContainsFold predicate on the "param" field.
func ParamContainsFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContainsFold(FieldParam, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContainsFold(FieldValue, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContainsFold(FieldUnit, v))
}

// RawEQ applies the EQ predicate on the "raw" field.
func RawEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldRaw, v))
}

// RawNEQ applies the NEQ predicate on the "raw" field.
func RawNEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNEQ(FieldRaw, v))
}

// RawIn applies the In predicate on the "raw" field.
func RawIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIn(FieldRaw, vs...))
}

// RawNotIn applies the NotIn predicate on the "raw" field.
func RawNotIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotIn(FieldRaw, vs...))
}

// RawGT applies the GT predicate on the "raw" field.
func RawGT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGT(FieldRaw, v))
}

// RawGTE applies the GTE predicate on the "raw" field.
func RawGTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGTE(FieldRaw, v))
}

// RawLT applies the LT predicate on the "raw" field.
func RawLT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLT(FieldRaw, v))
}

// RawLTE applies the LTE predicate on the "raw" field.
func RawLTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLTE(FieldRaw, v))
}

// RawContains applies the Contains predicate on the "raw" field.
func RawContains(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContains(FieldRaw, v))
}

// RawHasPrefix applies the HasPrefix predicate on the "raw" field.
func RawHasPrefix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasPrefix(FieldRaw, v))
}

// RawHasSuffix applies the HasSuffix predicate on the "raw" field.
func RawHasSuffix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasSuffix(FieldRaw, v))
}

// RawEqualFold applies the EqualFold predicate on the "raw" field.
func RawEqualFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEqualFold(FieldRaw, v))
}

// RawContainsFold applies the ContainsFold predicate on the "raw" field.
func RawContainsFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContainsFold(FieldRaw, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContainsFold(FieldSource, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotIn(FieldOrigin, vs...))
}

// OriginGT applies the GT predicate on the "origin" field.
func OriginGT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGT(FieldOrigin, v))
}

// OriginGTE applies the GTE predicate on the "origin" field.
func OriginGTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGTE(FieldOrigin, v))
}

// OriginLT applies the LT predicate on the "origin" field.
func OriginLT(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLT(FieldOrigin, v))
}

// OriginLTE applies the LTE predicate on the "origin" field.
func OriginLTE(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLTE(FieldOrigin, v))
}

// OriginContains applies the Contains predicate on the "origin" field.
func OriginContains(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContains(FieldOrigin, v))
}

// OriginHasPrefix applies the HasPrefix predicate on the "origin" field.
func OriginHasPrefix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasPrefix(FieldOrigin, v))
}

// OriginHasSuffix applies the HasSuffix predicate on the "origin" field.
func OriginHasSuffix(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldHasSuffix(FieldOrigin, v))
}

// OriginIsNil applies the IsNil predicate on the "origin" field.
func OriginIsNil() predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIsNull(FieldOrigin))
}

// OriginNotNil applies the NotNil predicate on the "origin" field.
func OriginNotNil() predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotNull(FieldOrigin))
}

// OriginEqualFold applies the EqualFold predicate on the "origin" field.
func OriginEqualFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEqualFold(FieldOrigin, v))
}

// OriginContainsFold applies the ContainsFold predicate on the "origin" field.
func OriginContainsFold(v string) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldContainsFold(FieldOrigin, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLTE(FieldPriority, v))
}

// ExtractionIDEQ applies the EQ predicate on the "extraction_id" field.
func ExtractionIDEQ(v uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldExtractionID, v))
}

// ExtractionIDNEQ applies the NEQ predicate on the "extraction_id" field.
func ExtractionIDNEQ(v uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNEQ(FieldExtractionID, v))
}

// ExtractionIDIn applies the In predicate on the "extraction_id" field.
func ExtractionIDIn(vs ...uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIn(FieldExtractionID, vs...))
}

// ExtractionIDNotIn applies the NotIn predicate on the "extraction_id" field.
func ExtractionIDNotIn(vs ...uuid.UUID) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotIn(FieldExtractionID, vs...))
}

// ExtractionIDIsNil applies the IsNil predicate on the "extraction_id" field.
func ExtractionIDIsNil() predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIsNull(FieldExtractionID))
}

// ExtractionIDNotNil applies the NotNil predicate on the "extraction_id" field.
func ExtractionIDNotNil() predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotNull(FieldExtractionID))
}

// MetaIsNil applies the IsNil predicate on the "meta" field.
func MetaIsNil() predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIsNull(FieldMeta))
}

// MetaNotNil applies the NotNil predicate on the "meta" field.
func MetaNotNil() predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotNull(FieldMeta))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.SpecVariant {
	return predicate.SpecVariant(sql.FieldLTE(FieldUploadedAt, v))
}

// HasExtraction applies the HasEdge predicate on the "extraction" edge.
func HasExtraction() predicate.SpecVariant {
	return predicate.SpecVariant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionWith applies the HasEdge predicate on the "extraction" edge with a given conditions (other predicates).
func HasExtractionWith(preds ...predicate.RawExtraction) predicate.SpecVariant {
	return predicate.SpecVariant(func(s *sql.Selector) {
		step := newExtractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SpecVariant) predicate.SpecVariant {
	return predicate.SpecVariant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SpecVariant) predicate.SpecVariant {
	return predicate.SpecVariant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SpecVariant) predicate.SpecVariant {
	return predicate.SpecVariant(sql.NotPredicates(p))
}
