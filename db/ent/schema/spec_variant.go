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

// SpecVariant is one candidate value for one canonical parameter, extracted
// from one line of one document (or entered manually). History is retained:
// rows are upserted on (param, source, raw), never deleted by normal flow.
type SpecVariant struct{ ent.Schema }

func (SpecVariant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "spec_variants"},
	}
}

func (SpecVariant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("param").NotEmpty(),
		field.String("value"),
		field.String("unit"),
		field.String("raw"),
		field.String("source").NotEmpty(),
		field.String("origin").Optional(),
		field.Int("priority").NonNegative(),
		// explicit FK so the edge stays optional (manual overrides have no extraction)
		field.UUID("extraction_id", uuid.UUID{}).Optional().Nillable(),
		field.JSON("meta", map[string]any{}).Optional(),
		field.Time("uploaded_at").Default(time.Now).
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
	}
}

func (SpecVariant) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY variants -> ONE raw extraction
		edge.From("extraction", RawExtraction.Type).
			Ref("variants").
			Field("extraction_id").
			Unique(),
	}
}

func (SpecVariant) Indexes() []ent.Index {
	return []ent.Index{
		// the upsert identity
		index.Fields("param", "source", "raw").Unique(),
		index.Fields("param"),
		index.Fields("param", "priority"),
	}
}
