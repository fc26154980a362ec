package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records an AI code-review call.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").NotEmpty(),
		field.String("model").NotEmpty(),
		field.String("language").Optional(),
		field.Int("input_tokens"),
		field.Int("output_tokens"),
		field.Int64("latency_ms"),
		field.Bool("success"),
		field.String("error_message").Optional(),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
	}
}
