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

// SearchHistory holds the schema definition for the SearchHistory entity:
// one row per passthrough search issued via POST /search.
type SearchHistory struct {
	ent.Schema
}

// Fields of the SearchHistory.
func (SearchHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("history_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.Text("query"),
		field.Int("result_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SearchHistory.
func (SearchHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("search_history").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Annotations of the SearchHistory.
func (SearchHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "search_history"},
	}
}

// Indexes of the SearchHistory.
func (SearchHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
