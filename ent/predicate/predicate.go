// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// Snippet is the predicate function for snippet builders.
type Snippet func(*sql.Selector)

// UserRecord is the predicate function for userrecord builders.
type UserRecord func(*sql.Selector)
