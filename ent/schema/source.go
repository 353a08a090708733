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

// Source holds the schema definition for the Source entity: an extracted
// web document used during a session. (session_id, url) is unique.
type Source struct {
	ent.Schema
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("source_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.Text("url"),
		field.Text("title").
			Optional(),
		field.Text("content").
			Optional().
			Comment("Cleaned readable text"),
		field.Text("summary").
			Optional(),
		field.Float("relevance_score").
			Default(0.5).
			Comment("In [0,1]; 0.5 when unknown"),
		field.Time("accessed_at").
			Default(time.Now),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("author, published_date, engine, snippet, ..."),
	}
}

// Edges of the Source.
func (Source) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ResearchSession.Type).
			Ref("sources").
			Field("session_id").
			Unique().
			Required(),
		edge.To("citations", Citation.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Annotations of the Source.
func (Source) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sources"},
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "url").Unique(),
		index.Fields("session_id", "relevance_score"),
	}
}
