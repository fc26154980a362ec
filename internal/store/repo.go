package store

import (
	"context"
	"errors"
	"time"

	"github.com/codeace-app/codeace/internal/progress"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrConflict is returned when a compare-and-swap write lost the
	// race. The caller re-fetches and reapplies; the ledger's pure
	// functions are safe to reapply.
	ErrConflict = errors.New("store: revision conflict")
)

// User is one learner's account record: identity fields plus the full
// progress snapshot.
type User struct {
	UID          string
	Email        string
	DisplayName  string
	PhotoURL     string
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  time.Time

	// Revision guards compare-and-swap writes. Zero means "not yet
	// persisted".
	Revision int64

	Progress progress.Snapshot
}

// UserRepo manages learner records.
type UserRepo interface {
	// Create persists a new user. The progress snapshot should come
	// from progress.NewSnapshot().
	Create(ctx context.Context, u *User) error

	// ByUID returns the user with the given id, or ErrNotFound.
	ByUID(ctx context.Context, uid string) (*User, error)

	// ByEmail returns the user with the given email, or ErrNotFound.
	ByEmail(ctx context.Context, email string) (*User, error)

	// CompareAndPut writes the user's mutable fields if and only if
	// the stored revision still matches u.Revision. On success the
	// revision is incremented (also on u); otherwise ErrConflict.
	CompareAndPut(ctx context.Context, u *User) error

	// UpdateProgress runs the read-apply-write cycle for one user:
	// fetch the snapshot, apply fn, CAS the result back, retrying the
	// whole cycle on conflict. Returns the user as written.
	UpdateProgress(ctx context.Context, uid string, fn func(progress.Snapshot) (progress.Snapshot, error)) (*User, error)

	// TouchLogin updates the last-login timestamp.
	TouchLogin(ctx context.Context, uid string, at time.Time) error

	// Leaderboard returns the top users ordered by total XP.
	Leaderboard(ctx context.Context, limit int) ([]*User, error)
}

// Snippet is a saved code fragment.
type Snippet struct {
	ID        string    `json:"id"`
	UID       string    `json:"-"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SnippetRepo manages per-user snippets.
type SnippetRepo interface {
	Add(ctx context.Context, snip *Snippet) error
	ByUser(ctx context.Context, uid string) ([]*Snippet, error)
	Update(ctx context.Context, uid, id string, title, language, code string) error
	Delete(ctx context.Context, uid, id string) error
}

// AttemptEventData captures one graded submission.
type AttemptEventData struct {
	UID         string
	ProblemID   string
	Verdict     string
	XPAwarded   int
	NewlySolved bool
}

// ReviewEventData captures one AI code-review call.
type ReviewEventData struct {
	UID          string
	Provider     string
	Model        string
	Language     string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to the domain event log.
type EventRepo interface {
	// AppendAttempt records a graded submission.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendReview records an AI review call.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// PruneBefore deletes events older than cutoff and reports how
	// many rows were removed.
	PruneBefore(ctx context.Context, cutoff time.Time) (int, error)
}
