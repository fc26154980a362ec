package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codeace-app/codeace/internal/identity"
	"github.com/codeace-app/codeace/internal/progress"
	"github.com/codeace-app/codeace/internal/store"
)

// localUser resolves the account the CLI commands act on. Accounts
// are normally created through the API; for purely local use the
// first submit creates one on the fly with no password, which keeps
// it unusable for API sign-in.
func localUser(ctx context.Context, users store.UserRepo, email string, create bool) (*store.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("an account email is required (--user)")
	}

	user, err := users.ByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) || !create {
		return nil, err
	}

	now := time.Now().UTC()
	user = &store.User{
		UID:         identity.NewUID(),
		Email:       email,
		DisplayName: strings.SplitN(email, "@", 2)[0],
		CreatedAt:   now,
		LastLoginAt: now,
		Progress:    progress.NewSnapshot(),
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create local account: %w", err)
	}
	return user, nil
}
