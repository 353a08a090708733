package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// UserSetting holds the schema definition for the UserSetting entity.
// Preferences are a JSON blob so new settings need no migration.
type UserSetting struct {
	ent.Schema
}

// Fields of the UserSetting.
func (UserSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("setting_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Unique(),
		field.JSON("preferences", map[string]interface{}{}).
			Optional().
			Comment("default model, report length, language, theme, ..."),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Annotations of the UserSetting.
func (UserSetting) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "user_settings"},
	}
}

// Edges of the UserSetting.
func (UserSetting) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("settings").
			Field("user_id").
			Unique().
			Required(),
	}
}
