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

// ResearchQuery holds the schema definition for the ResearchQuery entity:
// one web query issued by the research stage, recorded for the session's
// query history and the get_summary tool action.
type ResearchQuery struct {
	ent.Schema
}

// Fields of the ResearchQuery.
func (ResearchQuery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("query_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.Text("query"),
		field.Int("result_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ResearchQuery.
func (ResearchQuery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ResearchSession.Type).
			Ref("queries").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Annotations of the ResearchQuery.
func (ResearchQuery) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "research_queries"},
	}
}

// Indexes of the ResearchQuery.
func (ResearchQuery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
