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

// ResearchSession holds the schema definition for the ResearchSession entity.
// A session is the unit of work: one user-initiated research request and all
// of its derived state (report, sources, citations, scratchpad rows).
type ResearchSession struct {
	ent.Schema
}

// Fields of the ResearchSession.
func (ResearchSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Comment("Owning user"),
		field.Text("topic").
			Comment("Natural-language research topic (3..500 chars, validated in service layer)"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("parameters", map[string]interface{}{}).
			Optional().
			Comment("ResearchParameters blob: max_sources, min_sources, depth, report_length, language, domain filters, date_range"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the session (pending -> processing)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.String("report_id").
			Optional().
			Nillable().
			Comment("Set iff status=completed"),
		field.String("retried_from").
			Optional().
			Nillable().
			Comment("Session id this one was cloned from via retry"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Worker heartbeat, for orphan detection"),
	}
}

// Edges of the ResearchSession.
func (ResearchSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("generated_report", Report.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sources", Source.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("research_data", ResearchData.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("queries", ResearchQuery.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Annotations of the ResearchSession.
func (ResearchSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "research_sessions"},
	}
}

// Indexes of the ResearchSession.
func (ResearchSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("user_id", "status"),
		index.Fields("status", "last_interaction_at"),
	}
}
