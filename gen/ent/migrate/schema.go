// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RawExtractionsColumns holds the columns for the "raw_extractions" table.
	RawExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "origin", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeString},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// RawExtractionsTable holds the schema information for the "raw_extractions" table.
	RawExtractionsTable = &schema.Table{
		Name:       "raw_extractions",
		Columns:    RawExtractionsColumns,
		PrimaryKey: []*schema.Column{RawExtractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rawextraction_origin_created_at",
				Unique:  false,
				Columns: []*schema.Column{RawExtractionsColumns[1], RawExtractionsColumns[5]},
			},
		},
	}
	// SpecVariantsColumns holds the columns for the "spec_variants" table.
	SpecVariantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "param", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "unit", Type: field.TypeString},
		{Name: "raw", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "origin", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "extraction_id", Type: field.TypeUUID, Nullable: true},
	}
	// SpecVariantsTable holds the schema information for the "spec_variants" table.
	SpecVariantsTable = &schema.Table{
		Name:       "spec_variants",
		Columns:    SpecVariantsColumns,
		PrimaryKey: []*schema.Column{SpecVariantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spec_variants_raw_extractions_variants",
				Columns:    []*schema.Column{SpecVariantsColumns[10]},
				RefColumns: []*schema.Column{RawExtractionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "specvariant_param_source_raw",
				Unique:  true,
				Columns: []*schema.Column{SpecVariantsColumns[1], SpecVariantsColumns[5], SpecVariantsColumns[4]},
			},
			{
				Name:    "specvariant_param",
				Unique:  false,
				Columns: []*schema.Column{SpecVariantsColumns[1]},
			},
			{
				Name:    "specvariant_param_priority",
				Unique:  false,
				Columns: []*schema.Column{SpecVariantsColumns[1], SpecVariantsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RawExtractionsTable,
		SpecVariantsTable,
	}
)

func init() {
	RawExtractionsTable.Annotation = &entsql.Annotation{
		Table: "raw_extractions",
	}
	SpecVariantsTable.ForeignKeys[0].RefTable = RawExtractionsTable
	SpecVariantsTable.Annotation = &entsql.Annotation{
		Table: "spec_variants",
	}
}
