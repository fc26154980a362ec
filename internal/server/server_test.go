package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeace-app/codeace/internal/catalog"
	"github.com/codeace-app/codeace/internal/config"
	"github.com/codeace-app/codeace/internal/grader"
	"github.com/codeace-app/codeace/internal/llm"
	"github.com/codeace-app/codeace/internal/progress"
	"github.com/codeace-app/codeace/internal/review"
	"github.com/codeace-app/codeace/internal/store"
)

// In-memory repos stand in for the SQLite-backed ones. They keep the
// same CAS semantics so UpdateProgress behaves as in production.

type memUsers struct {
	mu    sync.Mutex
	byUID map[string]*store.User
}

func newMemUsers() *memUsers {
	return &memUsers{byUID: make(map[string]*store.User)}
}

func cloneUser(u *store.User) *store.User {
	c := *u
	c.Progress = u.Progress.Clone()
	return &c
}

func (r *memUsers) Create(_ context.Context, u *store.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byUID {
		if existing.Email == u.Email {
			return store.ErrConflict
		}
	}
	u.Revision = 1
	r.byUID[u.UID] = cloneUser(u)
	return nil
}

func (r *memUsers) ByUID(_ context.Context, uid string) (*store.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byUID[uid]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *memUsers) ByEmail(_ context.Context, email string) (*store.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byUID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *memUsers) CompareAndPut(_ context.Context, u *store.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byUID[u.UID]
	if !ok {
		return store.ErrNotFound
	}
	if stored.Revision != u.Revision {
		return store.ErrConflict
	}
	u.Revision++
	r.byUID[u.UID] = cloneUser(u)
	return nil
}

func (r *memUsers) UpdateProgress(ctx context.Context, uid string, fn func(progress.Snapshot) (progress.Snapshot, error)) (*store.User, error) {
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
		return nil, err
	}
	return u, nil
}

func (r *memUsers) TouchLogin(_ context.Context, uid string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byUID[uid]
	if !ok {
		return store.ErrNotFound
	}
	u.LastLoginAt = at
	return nil
}

func (r *memUsers) Leaderboard(_ context.Context, limit int) ([]*store.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*store.User, 0, len(r.byUID))
	for _, u := range r.byUID {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Progress.TotalXP > users[j].Progress.TotalXP
	})
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type memSnippets struct {
	mu   sync.Mutex
	rows map[string]*store.Snippet
}

func newMemSnippets() *memSnippets {
	return &memSnippets{rows: make(map[string]*store.Snippet)}
}

func (r *memSnippets) Add(_ context.Context, snip *store.Snippet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *snip
	r.rows[snip.ID] = &c
	return nil
}

func (r *memSnippets) ByUser(_ context.Context, uid string) ([]*store.Snippet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Snippet
	for _, s := range r.rows {
		if s.UID == uid {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memSnippets) Update(_ context.Context, uid, id, title, language, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[id]
	if !ok || s.UID != uid {
		return store.ErrNotFound
	}
	s.Title, s.Language, s.Code = title, language, code
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memSnippets) Delete(_ context.Context, uid, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[id]
	if !ok || s.UID != uid {
		return store.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type memEvents struct {
	mu       sync.Mutex
	attempts []store.AttemptEventData
	reviews  []store.ReviewEventData
}

func (r *memEvents) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, data)
	return nil
}

func (r *memEvents) AppendReview(_ context.Context, data store.ReviewEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, data)
	return nil
}

func (r *memEvents) PruneBefore(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

type testEnv struct {
	srv    *Server
	users  *memUsers
	events *memEvents
}

func newTestEnv(t *testing.T, g grader.Grader, provider llm.Provider) *testEnv {
	t.Helper()
	if g == nil {
		g = grader.Fixed(grader.Correct)
	}
	if provider == nil {
		provider = llm.NewMockProvider(llm.MockResponse{Text: "Looks fine."})
	}

	users := newMemUsers()
	events := &memEvents{}
	srv := New(Deps{
		Config:   &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour},
		Users:    users,
		Snippets: newMemSnippets(),
		Events:   events,
		Problems: catalog.Default(),
		Reviewer: review.NewService(provider, review.DefaultConfig()),
		Grader:   g,
		Logger:   log.New(io.Discard, "", 0),
	})
	return &testEnv{srv: srv, users: users, events: events}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, map[string]json.RawMessage) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	return resp.StatusCode, envelope
}

func (e *testEnv) signUp(t *testing.T, email string) string {
	t.Helper()
	status, envelope := e.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    email,
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, status)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestSignUpAndSignIn(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.signUp(t, "ada@example.com")

	status, envelope := env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
		"email":    "ada@example.com",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "true", string(envelope["success"]))

	status, _ = env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.signUp(t, "ada@example.com")

	status, _ := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "ada@example.com",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestProgressRequiresAuth(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	status, _ := env.do(t, http.MethodGet, "/api/progress", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = env.do(t, http.MethodGet, "/api/progress", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSubmitAttemptAwardsXP(t *testing.T) {
	env := newTestEnv(t, grader.Fixed(grader.Correct), nil)
	token := env.signUp(t, "ada@example.com")

	status, envelope := env.do(t, http.MethodPost, "/api/attempts", token, map[string]string{
		"problemId": "two-sum",
		"code":      "function twoSum() {}",
		"language":  "javascript",
	})
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Verdict      string            `json:"verdict"`
		XPAwarded    int               `json:"xpAwarded"`
		NewlySolved  bool              `json:"newlySolved"`
		BadgesEarned []progress.Badge  `json:"badgesEarned"`
		Progress     progress.Snapshot `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))

	assert.Equal(t, "correct", data.Verdict)
	assert.Equal(t, progress.XPEasy, data.XPAwarded)
	assert.True(t, data.NewlySolved)
	assert.Contains(t, data.BadgesEarned, progress.BadgeFirstSolve)
	assert.Equal(t, progress.XPEasy, data.Progress.TotalXP)
	assert.Equal(t, 1, data.Progress.Streak.Current)

	// The attempt is in the event log.
	require.Len(t, env.events.attempts, 1)
	assert.Equal(t, "two-sum", env.events.attempts[0].ProblemID)
	assert.True(t, env.events.attempts[0].NewlySolved)

	// Submitting the same problem again awards nothing more.
	status, envelope = env.do(t, http.MethodPost, "/api/attempts", token, map[string]string{
		"problemId": "two-sum",
		"code":      "function twoSum() {}",
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, 0, data.XPAwarded)
	assert.False(t, data.NewlySolved)
	assert.Equal(t, progress.XPEasy, data.Progress.TotalXP)
}

func TestSubmitAttemptIncorrect(t *testing.T) {
	env := newTestEnv(t, grader.Fixed(grader.Incorrect), nil)
	token := env.signUp(t, "ada@example.com")

	status, envelope := env.do(t, http.MethodPost, "/api/attempts", token, map[string]string{
		"problemId": "two-sum",
		"code":      "function twoSum() {}",
	})
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Verdict   string            `json:"verdict"`
		XPAwarded int               `json:"xpAwarded"`
		Progress  progress.Snapshot `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, "incorrect", data.Verdict)
	assert.Zero(t, data.XPAwarded)
	assert.Zero(t, data.Progress.TotalXP)
	assert.Equal(t, "two-sum", data.Progress.LastProblemID)
}

func TestSubmitAttemptWithFeedback(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: "Nice use of a map."})
	env := newTestEnv(t, grader.Fixed(grader.Correct), provider)
	token := env.signUp(t, "ada@example.com")

	status, envelope := env.do(t, http.MethodPost, "/api/attempts", token, map[string]any{
		"problemId":    "two-sum",
		"code":         "function twoSum() {}",
		"withFeedback": true,
	})
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Feedback string `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, "Nice use of a map.", data.Feedback)
}

func TestSubmitAttemptFeedbackFailureDoesNotBlock(t *testing.T) {
	// Empty mock queue makes the provider fail; the attempt must still
	// be recorded and returned.
	provider := llm.NewMockProvider()
	env := newTestEnv(t, grader.Fixed(grader.Correct), provider)
	token := env.signUp(t, "ada@example.com")

	status, envelope := env.do(t, http.MethodPost, "/api/attempts", token, map[string]any{
		"problemId":    "two-sum",
		"code":         "function twoSum() {}",
		"withFeedback": true,
	})
	require.Equal(t, http.StatusOK, status)

	var data struct {
		XPAwarded int    `json:"xpAwarded"`
		Feedback  string `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, progress.XPEasy, data.XPAwarded)
	assert.Empty(t, data.Feedback)
}

func TestSubmitAttemptUnknownProblem(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	token := env.signUp(t, "ada@example.com")

	status, _ := env.do(t, http.MethodPost, "/api/attempts", token, map[string]string{
		"problemId": "no-such-problem",
		"code":      "x",
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestReviewEndpoint(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: "Consider a hash map for O(n)."})
	env := newTestEnv(t, nil, provider)
	token := env.signUp(t, "ada@example.com")

	status, envelope := env.do(t, http.MethodPost, "/api/review", token, map[string]string{
		"code":     "for (;;) {}",
		"language": "javascript",
	})
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Feedback string `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, "Consider a hash map for O(n).", data.Feedback)
	assert.Equal(t, 1, provider.CallCount())
}

func TestReviewRejectsEmptyCode(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	token := env.signUp(t, "ada@example.com")

	status, _ := env.do(t, http.MethodPost, "/api/review", token, map[string]string{
		"code": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	token := env.signUp(t, "ada@example.com")

	status, envelope := env.do(t, http.MethodPut, "/api/profile", token, map[string]any{
		"displayName": "Ada L.",
		"bio":         "Analyst",
	})
	require.Equal(t, http.StatusOK, status)

	var data progress.Profile
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, "Ada L.", data.DisplayName)
	assert.Equal(t, "Analyst", data.Bio)

	status, _ = env.do(t, http.MethodPut, "/api/profile", token, map[string]any{
		"displayName": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSnippetLifecycle(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	token := env.signUp(t, "ada@example.com")

	status, envelope := env.do(t, http.MethodPost, "/api/snippets/", token, map[string]string{
		"title":    "binary search",
		"language": "go",
		"code":     "func search() {}",
	})
	require.Equal(t, http.StatusCreated, status)

	var created store.Snippet
	require.NoError(t, json.Unmarshal(envelope["data"], &created))
	require.NotEmpty(t, created.ID)

	status, envelope = env.do(t, http.MethodGet, "/api/snippets/", token, nil)
	require.Equal(t, http.StatusOK, status)
	var list []store.Snippet
	require.NoError(t, json.Unmarshal(envelope["data"], &list))
	assert.Len(t, list, 1)

	status, _ = env.do(t, http.MethodDelete, "/api/snippets/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, status)

	status, envelope = env.do(t, http.MethodGet, "/api/snippets/", token, nil)
	require.Equal(t, http.StatusOK, status)
	list = nil
	require.NoError(t, json.Unmarshal(envelope["data"], &list))
	assert.Empty(t, list)
}

func TestLeaderboardOrdering(t *testing.T) {
	env := newTestEnv(t, grader.Fixed(grader.Correct), nil)
	ada := env.signUp(t, "ada@example.com")
	bob := env.signUp(t, "bob@example.com")

	// Ada solves an easy and a hard problem, Bob only the easy one.
	for _, id := range []string{"two-sum", "n-queens"} {
		status, _ := env.do(t, http.MethodPost, "/api/attempts", ada, map[string]string{
			"problemId": id, "code": "x",
		})
		require.Equal(t, http.StatusOK, status)
	}
	status, _ := env.do(t, http.MethodPost, "/api/attempts", bob, map[string]string{
		"problemId": "two-sum", "code": "x",
	})
	require.Equal(t, http.StatusOK, status)

	status, envelope := env.do(t, http.MethodGet, "/api/leaderboard", ada, nil)
	require.Equal(t, http.StatusOK, status)

	var entries []struct {
		Rank        int    `json:"rank"`
		DisplayName string `json:"displayName"`
		TotalXP     int    `json:"xp"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "ada", entries[0].DisplayName)
	assert.Equal(t, progress.XPEasy+progress.XPHard, entries[0].TotalXP)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, progress.XPEasy, entries[1].TotalXP)
}
