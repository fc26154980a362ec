// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "problem_id", Type: field.TypeString},
		{Name: "verdict", Type: field.TypeString},
		{Name: "xp_awarded", Type: field.TypeInt},
		{Name: "newly_solved", Type: field.TypeBool},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_uid",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_problem_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_uid",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_provider",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
		},
	}
	// SnippetsColumns holds the columns for the "snippets" table.
	SnippetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "snippet_id", Type: field.TypeString, Unique: true},
		{Name: "uid", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "code", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SnippetsTable holds the schema information for the "snippets" table.
	SnippetsTable = &schema.Table{
		Name:       "snippets",
		Columns:    SnippetsColumns,
		PrimaryKey: []*schema.Column{SnippetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snippet_uid",
				Unique:  false,
				Columns: []*schema.Column{SnippetsColumns[2]},
			},
			{
				Name:    "snippet_snippet_id",
				Unique:  false,
				Columns: []*schema.Column{SnippetsColumns[1]},
			},
		},
	}
	// UserRecordsColumns holds the columns for the "user_records" table.
	UserRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "photo_url", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_login_at", Type: field.TypeTime},
		{Name: "revision", Type: field.TypeInt64, Default: 1},
		{Name: "total_xp", Type: field.TypeInt, Default: 0},
		{Name: "data", Type: field.TypeJSON},
	}
	// UserRecordsTable holds the schema information for the "user_records" table.
	UserRecordsTable = &schema.Table{
		Name:       "user_records",
		Columns:    UserRecordsColumns,
		PrimaryKey: []*schema.Column{UserRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userrecord_uid",
				Unique:  false,
				Columns: []*schema.Column{UserRecordsColumns[1]},
			},
			{
				Name:    "userrecord_email",
				Unique:  false,
				Columns: []*schema.Column{UserRecordsColumns[2]},
			},
			{
				Name:    "userrecord_total_xp",
				Unique:  false,
				Columns: []*schema.Column{UserRecordsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		ReviewEventsTable,
		SnippetsTable,
		UserRecordsTable,
	}
)

func init() {
}
