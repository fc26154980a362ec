package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snippet is a saved code fragment owned by one learner.
type Snippet struct {
	ent.Schema
}

func (Snippet) Fields() []ent.Field {
	return []ent.Field{
		field.String("snippet_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("uid").
			Immutable().
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("language").
			NotEmpty(),
		field.Text("code"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Snippet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uid"),
		index.Fields("snippet_id"),
	}
}
