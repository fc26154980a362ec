package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserRecord is the per-learner document: identity fields plus the full
// progress snapshot as JSON. The revision column backs the optimistic
// compare-and-swap discipline used for every progress write.
type UserRecord struct {
	ent.Schema
}

func (UserRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Opaque stable user identifier, never reused"),
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("display_name").
			NotEmpty(),
		field.String("photo_url").
			Optional(),
		field.String("password_hash").
			Sensitive().
			Optional().
			Comment("Empty for CLI-only accounts that never sign in over HTTP"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_login_at").
			Default(time.Now),
		field.Int64("revision").
			Default(1).
			Comment("Incremented on every successful write; CAS guard"),
		field.Int("total_xp").
			Default(0).
			Comment("Mirrors the snapshot XP total for leaderboard ordering"),
		field.JSON("data", map[string]any{}).
			Comment("Full progress snapshot as JSON"),
	}
}

func (UserRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uid"),
		index.Fields("email"),
		index.Fields("total_xp"),
	}
}
