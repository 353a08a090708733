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

// ResearchData holds the schema definition for the ResearchData entity,
// the durable per-session scratchpad agents hand off through between
// pipeline stages. Rows are created only while the session is processing
// and purged after a grace period once the session reaches a terminal
// status.
type ResearchData struct {
	ent.Schema
}

// Fields of the ResearchData.
func (ResearchData) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("data_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.Enum("data_type").
			Values("search_results", "extracted_content", "analysis", "game_plan", "source_content"),
		field.Text("query").
			Optional(),
		field.Text("title").
			Optional(),
		field.Text("content"),
		field.String("content_hash").
			Comment("sha256 of content; (session_id, data_type, content_hash) dedupes silently"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Float("relevance_score").
			Default(0.5),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ResearchData.
func (ResearchData) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ResearchSession.Type).
			Ref("research_data").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Annotations of the ResearchData.
func (ResearchData) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "research_data"},
	}
}

// Indexes of the ResearchData.
func (ResearchData) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "data_type", "content_hash").Unique(),
		index.Fields("session_id", "data_type"),
		index.Fields("session_id", "relevance_score"),
	}
}
