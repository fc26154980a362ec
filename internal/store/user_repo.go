package store

import (
	"context"
	"fmt"
	"time"

	"github.com/codeace-app/codeace/ent"
	"github.com/codeace-app/codeace/ent/userrecord"
	"github.com/codeace-app/codeace/internal/progress"
)

// casAttempts bounds the read-apply-write retry loop. Conflicts are
// rare (a user double-submitting), so a handful of retries is plenty.
const casAttempts = 5

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, u *User) error {
	doc, err := encodeProgress(u.Progress)
	if err != nil {
		return err
	}

	created, err := r.client.UserRecord.Create().
		SetUID(u.UID).
		SetEmail(u.Email).
		SetDisplayName(u.DisplayName).
		SetPhotoURL(u.PhotoURL).
		SetPasswordHash(u.PasswordHash).
		SetCreatedAt(u.CreatedAt).
		SetLastLoginAt(u.LastLoginAt).
		SetTotalXp(u.Progress.TotalXP).
		SetData(doc).
		Save(ctx)
	if err != nil {
		// A unique violation on uid or email is a caller-visible
		// conflict, not an internal failure.
		if ent.IsConstraintError(err) {
			return fmt.Errorf("create user %s: %w", u.UID, ErrConflict)
		}
		return fmt.Errorf("create user %s: %w", u.UID, err)
	}

	u.Revision = created.Revision
	return nil
}

func (r *userRepo) ByUID(ctx context.Context, uid string) (*User, error) {
	rec, err := r.client.UserRecord.Query().
		Where(userrecord.UID(uid)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user %s: %w", uid, err)
	}
	return recordToUser(rec)
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*User, error) {
	rec, err := r.client.UserRecord.Query().
		Where(userrecord.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return recordToUser(rec)
}

func (r *userRepo) CompareAndPut(ctx context.Context, u *User) error {
	doc, err := encodeProgress(u.Progress)
	if err != nil {
		return err
	}

	n, err := r.client.UserRecord.Update().
		Where(
			userrecord.UID(u.UID),
			userrecord.Revision(u.Revision),
		).
		SetDisplayName(u.DisplayName).
		SetPhotoURL(u.PhotoURL).
		SetLastLoginAt(u.LastLoginAt).
		SetTotalXp(u.Progress.TotalXP).
		SetData(doc).
		SetRevision(u.Revision + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("write user %s: %w", u.UID, err)
	}
	if n == 0 {
		return ErrConflict
	}

	u.Revision++
	return nil
}

func (r *userRepo) UpdateProgress(ctx context.Context, uid string, fn func(progress.Snapshot) (progress.Snapshot, error)) (*User, error) {
	var lastErr error
	for attempt := 0; attempt < casAttempts; attempt++ {
		u, err := r.ByUID(ctx, uid)
		if err != nil {
			return nil, err
		}

		next, err := fn(u.Progress)
		if err != nil {
			return nil, err
		}
		u.Progress = next

		if err := r.CompareAndPut(ctx, u); err != nil {
			if err == ErrConflict {
				lastErr = err
				continue
			}
			return nil, err
		}
		return u, nil
	}
	return nil, fmt.Errorf("update progress for %s: gave up after %d attempts: %w", uid, casAttempts, lastErr)
}

func (r *userRepo) TouchLogin(ctx context.Context, uid string, at time.Time) error {
	n, err := r.client.UserRecord.Update().
		Where(userrecord.UID(uid)).
		SetLastLoginAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch login for %s: %w", uid, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepo) Leaderboard(ctx context.Context, limit int) ([]*User, error) {
	recs, err := r.client.UserRecord.Query().
		Order(ent.Desc(userrecord.FieldTotalXp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}

	users := make([]*User, 0, len(recs))
	for _, rec := range recs {
		u, err := recordToUser(rec)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// recordToUser converts an ent record to a store User, validating the
// progress document at the boundary.
func recordToUser(rec *ent.UserRecord) (*User, error) {
	snap, err := decodeProgress(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", rec.UID, err)
	}
	return &User{
		UID:          rec.UID,
		Email:        rec.Email,
		DisplayName:  rec.DisplayName,
		PhotoURL:     rec.PhotoURL,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
		LastLoginAt:  rec.LastLoginAt,
		Revision:     rec.Revision,
		Progress:     snap,
	}, nil
}
