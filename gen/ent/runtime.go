// Code generated by ent, DO NOT EDIT.

package ent

import (
	"specmaster/db/ent/schema"
	"specmaster/gen/ent/rawextraction"
	"specmaster/gen/ent/specvariant"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	rawextractionFields := schema.RawExtraction{}.Fields()
	_ = rawextractionFields
	// rawextractionDescOrigin is the schema descriptor for origin field.
	rawextractionDescOrigin := rawextractionFields[1].Descriptor()
	// rawextraction.OriginValidator is a validator for the "origin" field. It is called by the builders before save.
	rawextraction.OriginValidator = rawextractionDescOrigin.Validators[0].(func(string) error)
	// rawextractionDescSourceType is the schema descriptor for source_type field.
	rawextractionDescSourceType := rawextractionFields[2].Descriptor()
	// rawextraction.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	rawextraction.SourceTypeValidator = rawextractionDescSourceType.Validators[0].(func(string) error)
	// rawextractionDescCreatedAt is the schema descriptor for created_at field.
	rawextractionDescCreatedAt := rawextractionFields[5].Descriptor()
	// rawextraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	rawextraction.DefaultCreatedAt = rawextractionDescCreatedAt.Default.(func() time.Time)
	// rawextractionDescID is the schema descriptor for id field.
	rawextractionDescID := rawextractionFields[0].Descriptor()
	// rawextraction.DefaultID holds the default value on creation for the id field.
	rawextraction.DefaultID = rawextractionDescID.Default.(func() uuid.UUID)
	specvariantFields := schema.SpecVariant{}.Fields()
	_ = specvariantFields
	// specvariantDescParam is the schema descriptor for param field.
	specvariantDescParam := specvariantFields[1].Descriptor()
	// specvariant.ParamValidator is a validator for the "param" field. It is called by the builders before save.
	specvariant.ParamValidator = specvariantDescParam.Validators[0].(func(string) error)
	// specvariantDescSource is the schema descriptor for source field.
	specvariantDescSource := specvariantFields[5].Descriptor()
	// specvariant.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	specvariant.SourceValidator = specvariantDescSource.Validators[0].(func(string) error)
	// specvariantDescPriority is the schema descriptor for priority field.
	specvariantDescPriority := specvariantFields[7].Descriptor()
	// specvariant.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	specvariant.PriorityValidator = specvariantDescPriority.Validators[0].(func(int) error)
	// specvariantDescUploadedAt is the schema descriptor for uploaded_at field.
	specvariantDescUploadedAt := specvariantFields[10].Descriptor()
	// specvariant.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	specvariant.DefaultUploadedAt = specvariantDescUploadedAt.Default.(func() time.Time)
	// specvariantDescID is the schema descriptor for id field.
	specvariantDescID := specvariantFields[0].Descriptor()
	// specvariant.DefaultID holds the default value on creation for the id field.
	specvariant.DefaultID = specvariantDescID.Default.(func() uuid.UUID)
}
