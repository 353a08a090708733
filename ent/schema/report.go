package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Report holds the schema definition for the Report entity.
// Exactly one report exists per successfully completed session; the unique
// session_id index is what makes completion idempotent on job redelivery.
type Report struct {
	ent.Schema
}

// Fields of the Report.
func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique(),
		field.Text("content").
			Comment("Full markdown report"),
		field.Text("summary").
			Optional().
			Comment("Executive Summary section text"),
		field.JSON("key_findings", []string{}).
			Optional(),
		field.Int("word_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Report.
func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ResearchSession.Type).
			Ref("generated_report").
			Field("session_id").
			Unique().
			Required(),
		edge.To("citations", Citation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Annotations of the Report.
func (Report) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reports"},
	}
}

// Indexes of the Report.
func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
