package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Citation holds the schema definition for the Citation entity: a quoted
// passage inside a report. Positions within a report are contiguous from 0.
type Citation struct {
	ent.Schema
}

// Fields of the Citation.
func (Citation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("citation_id").
			Unique().
			Immutable(),
		field.String("report_id"),
		field.String("source_id").
			Optional().
			Nillable(),
		field.Text("quote"),
		field.Text("context").
			Optional(),
		field.Int("position").
			Comment("0-based index within the report's citation order"),
		field.Text("url").
			Optional().
			Comment("Resolved link when the citation came from an inline markdown link"),
	}
}

// Edges of the Citation.
func (Citation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("citations").
			Field("report_id").
			Unique().
			Required(),
		edge.From("source", Source.Type).
			Ref("citations").
			Field("source_id").
			Unique(),
	}
}

// Annotations of the Citation.
func (Citation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "citations"},
	}
}

// Indexes of the Citation.
func (Citation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "position").Unique(),
	}
}
