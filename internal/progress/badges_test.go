package progress

import (
	"fmt"
	"testing"

	"github.com/codeace-app/codeace/internal/catalog"
	"github.com/codeace-app/codeace/internal/grader"
)

func TestNewSnapshotHasWelcomeBadge(t *testing.T) {
	snap := NewSnapshot()
	if !snap.HasBadge(BadgeWelcomeCoder) {
		t.Error("new accounts should hold WelcomeCoder")
	}
	if err := Validate(snap); err != nil {
		t.Errorf("new snapshot violates invariants: %v", err)
	}
}

func TestBadgeGrantIsIdempotent(t *testing.T) {
	snap := NewSnapshot()
	snap.Badges = append(snap.Badges, BadgeFirstSolve)

	badges, granted := evaluateBadges(snap)
	for _, b := range granted {
		if b == BadgeFirstSolve {
			t.Error("FirstSolve granted twice")
		}
	}
	seen := make(map[Badge]int)
	for _, b := range badges {
		seen[b]++
		if seen[b] > 1 {
			t.Errorf("badge %s appears %d times", b, seen[b])
		}
	}
}

// A duplicate solve may push the streak across a badge threshold, but
// the badge set stays untouched until the next new solve.
func TestStreakBadgeNotGrantedByDuplicateSolve(t *testing.T) {
	snap := NewSnapshot()
	for i := 0; i < 6; i++ {
		p := catalog.Problem{
			ID:         fmt.Sprintf("arr-%d", i),
			Topic:      "Arrays",
			Difficulty: catalog.Easy,
		}
		res, err := RecordAttempt(snap, p, grader.Correct, day(i))
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		snap = res.Snapshot
	}

	// Day 7 activity is a re-solve: the streak reaches 7 but badges
	// stay as they were.
	dup := catalog.Problem{ID: "arr-0", Topic: "Arrays", Difficulty: catalog.Easy}
	res, err := RecordAttempt(snap, dup, grader.Correct, day(6))
	if err != nil {
		t.Fatalf("duplicate attempt: %v", err)
	}
	snap = res.Snapshot
	if snap.Streak.Current != 7 {
		t.Fatalf("streak = %d, want 7", snap.Streak.Current)
	}
	if snap.HasBadge(BadgeStreakWeek) {
		t.Error("StreakWeek granted by a duplicate solve")
	}

	// The next new solve evaluates badges and picks it up.
	fresh := catalog.Problem{ID: "arr-new", Topic: "Arrays", Difficulty: catalog.Easy}
	res, err = RecordAttempt(snap, fresh, grader.Correct, day(6))
	if err != nil {
		t.Fatalf("new attempt: %v", err)
	}
	if !res.Snapshot.HasBadge(BadgeStreakWeek) {
		t.Error("StreakWeek not granted on the next new solve")
	}
}

func TestTenSolvedAndTopicExpertBadges(t *testing.T) {
	snap := NewSnapshot()
	for i := 0; i < 10; i++ {
		p := catalog.Problem{
			ID:         fmt.Sprintf("arr-%d", i),
			Topic:      "Arrays",
			Difficulty: catalog.Easy,
		}
		res, err := RecordAttempt(snap, p, grader.Correct, day(i))
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		snap = res.Snapshot
	}

	if !snap.HasBadge(BadgeTenSolved) {
		t.Error("TenSolved not granted at 10 solved problems")
	}
	if !snap.HasBadge(BadgeTopicExpert) {
		t.Error("TopicExpert not granted when a topic reaches Expert")
	}
	if !snap.HasBadge(BadgeStreakWeek) {
		t.Error("StreakWeek not granted after a 10-day streak")
	}
	if got := snap.TopicMastery["Arrays"].Level; got != Expert {
		t.Errorf("Arrays level = %s, want Expert", got)
	}
}
