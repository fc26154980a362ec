package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/codeace-app/codeace/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testUser(uid, email string) *User {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &User{
		UID:         uid,
		Email:       email,
		DisplayName: "tester",
		CreatedAt:   now,
		LastLoginAt: now,
		Progress:    progress.NewSnapshot(),
	}
}

func TestCreateAndFetchUser(t *testing.T) {
	users := openTestStore(t).Users()
	ctx := context.Background()

	u := testUser("uid-1", "ada@example.com")
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Revision != 1 {
		t.Errorf("revision after create = %d, want 1", u.Revision)
	}

	got, err := users.ByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if got.UID != "uid-1" {
		t.Errorf("uid = %q, want uid-1", got.UID)
	}
	if !got.Progress.HasBadge(progress.BadgeWelcomeCoder) {
		t.Error("stored snapshot lost the WelcomeCoder badge")
	}

	if _, err := users.ByUID(ctx, "no-such-uid"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing uid: want ErrNotFound, got %v", err)
	}
}

func TestCreateDuplicateEmailIsConflict(t *testing.T) {
	users := openTestStore(t).Users()
	ctx := context.Background()

	if err := users.Create(ctx, testUser("uid-1", "ada@example.com")); err != nil {
		t.Fatalf("create first: %v", err)
	}

	err := users.Create(ctx, testUser("uid-2", "ada@example.com"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email: want ErrConflict, got %v", err)
	}
}

func TestCompareAndPutDetectsStaleRevision(t *testing.T) {
	users := openTestStore(t).Users()
	ctx := context.Background()

	if err := users.Create(ctx, testUser("uid-1", "ada@example.com")); err != nil {
		t.Fatalf("create: %v", err)
	}

	a, err := users.ByUID(ctx, "uid-1")
	if err != nil {
		t.Fatalf("fetch a: %v", err)
	}
	b, err := users.ByUID(ctx, "uid-1")
	if err != nil {
		t.Fatalf("fetch b: %v", err)
	}

	a.DisplayName = "first writer"
	if err := users.CompareAndPut(ctx, a); err != nil {
		t.Fatalf("first write: %v", err)
	}

	b.DisplayName = "second writer"
	if err := users.CompareAndPut(ctx, b); !errors.Is(err, ErrConflict) {
		t.Fatalf("stale write: want ErrConflict, got %v", err)
	}
}
