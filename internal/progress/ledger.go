package progress

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codeace-app/codeace/internal/catalog"
	"github.com/codeace-app/codeace/internal/grader"
)

// ErrBadInput marks rejections of caller-supplied values, as opposed
// to corrupted snapshots.
var ErrBadInput = errors.New("bad input")

// AttemptResult reports what a recorded attempt changed.
type AttemptResult struct {
	Snapshot     Snapshot
	XPAwarded    int
	NewlySolved  bool
	BadgesEarned []Badge
}

// RecordAttempt turns one graded attempt into a new, internally
// consistent snapshot. It never performs I/O; durably saving the result
// is the caller's job (see store.UserRepo.UpdateProgress).
//
// Incorrect attempts award nothing: only LastProblemID moves, so the AI
// feedback path can still point back at the problem. Re-solving a
// problem already in SolvedProblems is idempotent for XP, mastery and
// solved membership, but still counts as streak activity for the day.
func RecordAttempt(snap Snapshot, problem catalog.Problem, verdict grader.Verdict, now time.Time) (AttemptResult, error) {
	if problem.ID == "" {
		return AttemptResult{}, fmt.Errorf("progress: attempt with empty problem id")
	}
	if err := Validate(snap); err != nil {
		return AttemptResult{}, fmt.Errorf("progress: input snapshot invalid: %w", err)
	}

	out := snap.Clone()
	out.LastProblemID = problem.ID

	if verdict != grader.Correct {
		return AttemptResult{Snapshot: out}, nil
	}

	_, alreadySolved := out.SolvedProblems[problem.ID]

	// Streak credit is about activity on the day, not novelty.
	out.Streak = advanceStreak(out.Streak, now)

	if alreadySolved {
		// Duplicates never touch the badge set: only LastProblemID and
		// streak bookkeeping may change on this path, so a badge whose
		// condition a duplicate satisfies (a streak threshold, say) is
		// granted on the next new solve.
		return AttemptResult{Snapshot: out}, nil
	}

	// Single computed update: the same award flows into the total and
	// the topic counter so the two can never drift apart.
	award := XPForDifficulty(problem.Difficulty)
	out.TotalXP += award
	out.SolvedProblems[problem.ID] = now.UTC()

	tm := out.TopicMastery[problem.Topic]
	tm.SolvedCount++
	tm.XPEarned += award
	tm.Level = LevelForSolved(tm.SolvedCount)
	out.TopicMastery[problem.Topic] = tm

	var earned []Badge
	out.Badges, earned = evaluateBadges(out)

	return AttemptResult{
		Snapshot:     out,
		XPAwarded:    award,
		NewlySolved:  true,
		BadgesEarned: earned,
	}, nil
}

// ProfilePatch carries optional profile edits. Nil fields are left
// untouched.
type ProfilePatch struct {
	DisplayName        *string  `json:"displayName"`
	Bio                *string  `json:"bio"`
	Location           *string  `json:"location"`
	PreferredLanguages []string `json:"preferredLanguages"`
}

// UpdateProfile merges a profile patch into the snapshot. Progress
// fields are never touched. A supplied display name must be non-empty.
func UpdateProfile(snap Snapshot, patch ProfilePatch) (Snapshot, error) {
	if patch.DisplayName != nil && strings.TrimSpace(*patch.DisplayName) == "" {
		return Snapshot{}, fmt.Errorf("progress: display name cannot be empty: %w", ErrBadInput)
	}

	out := snap.Clone()
	if patch.DisplayName != nil {
		out.Profile.DisplayName = *patch.DisplayName
	}
	if patch.Bio != nil {
		out.Profile.Bio = *patch.Bio
	}
	if patch.Location != nil {
		out.Profile.Location = *patch.Location
	}
	if patch.PreferredLanguages != nil {
		out.Profile.PreferredLanguages = append([]string(nil), patch.PreferredLanguages...)
	}
	return out, nil
}

// UpdateSetting merges one setting (e.g. "theme") into the snapshot.
func UpdateSetting(snap Snapshot, key, value string) (Snapshot, error) {
	if key == "" {
		return Snapshot{}, fmt.Errorf("progress: setting key cannot be empty: %w", ErrBadInput)
	}
	out := snap.Clone()
	if out.Settings == nil {
		out.Settings = make(map[string]string)
	}
	out.Settings[key] = value
	return out, nil
}
