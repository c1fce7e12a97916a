package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// RawExtraction is the landing record for one ingested document: the full
// text blob the extraction service returned. Immutable once written.
type RawExtraction struct{ ent.Schema }

func (RawExtraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "raw_extractions"},
	}
}

func (RawExtraction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("origin").NotEmpty(),
		field.String("source_type").NotEmpty(),
		field.Text("raw_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("meta", map[string]any{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
	}
}

func (RawExtraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("variants", SpecVariant.Type),
	}
}

func (RawExtraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("origin", "created_at"),
	}
}
