package progress

import (
	"reflect"
	"testing"
	"time"

	"github.com/codeace-app/codeace/internal/catalog"
	"github.com/codeace-app/codeace/internal/grader"
)

var (
	easyArrays = catalog.Problem{ID: "p1", Title: "Two Sum", Topic: "Arrays", Difficulty: catalog.Easy}
	medArrays  = catalog.Problem{ID: "p2", Title: "Max Subarray", Topic: "Arrays", Difficulty: catalog.Medium}
	hardRec    = catalog.Problem{ID: "p3", Title: "N-Queens", Topic: "Recursion", Difficulty: catalog.Hard}
)

func mustRecord(t *testing.T, snap Snapshot, p catalog.Problem, v grader.Verdict, now time.Time) AttemptResult {
	t.Helper()
	res, err := RecordAttempt(snap, p, v, now)
	if err != nil {
		t.Fatalf("RecordAttempt(%s, %s): %v", p.ID, v, err)
	}
	if err := Validate(res.Snapshot); err != nil {
		t.Fatalf("snapshot invariants violated after %s/%s: %v", p.ID, v, err)
	}
	return res
}

func TestRecordAttemptEmptyProblemID(t *testing.T) {
	_, err := RecordAttempt(NewSnapshot(), catalog.Problem{}, grader.Correct, day(0))
	if err == nil {
		t.Fatal("expected error for empty problem id")
	}
}

func TestRecordAttemptRejectsInvalidSnapshot(t *testing.T) {
	bad := NewSnapshot()
	bad.TotalXP = 99 // no topic backs this XP
	_, err := RecordAttempt(bad, easyArrays, grader.Correct, day(0))
	if err == nil {
		t.Fatal("expected error for invalid input snapshot")
	}
}

// Scenario A: first correct solve on an empty account.
func TestRecordAttemptFirstSolve(t *testing.T) {
	res := mustRecord(t, NewSnapshot(), easyArrays, grader.Correct, day(0))
	snap := res.Snapshot

	if snap.TotalXP != 10 {
		t.Errorf("TotalXP = %d, want 10", snap.TotalXP)
	}
	if _, ok := snap.SolvedProblems["p1"]; !ok {
		t.Error("p1 missing from solved problems")
	}
	tm := snap.TopicMastery["Arrays"]
	if tm.SolvedCount != 1 || tm.XPEarned != 10 || tm.Level != Beginner {
		t.Errorf("Arrays mastery = %+v, want {1 10 Beginner}", tm)
	}
	if snap.Streak.Current != 1 || snap.Streak.Longest != 1 {
		t.Errorf("streak = %d/%d, want 1/1", snap.Streak.Current, snap.Streak.Longest)
	}
	if !snap.HasBadge(BadgeFirstSolve) {
		t.Error("FirstSolve badge not granted")
	}
	if !snap.HasBadge(BadgeWelcomeCoder) {
		t.Error("WelcomeCoder badge lost")
	}
	if res.XPAwarded != 10 || !res.NewlySolved {
		t.Errorf("result = {xp:%d newlySolved:%v}, want {10 true}", res.XPAwarded, res.NewlySolved)
	}
}

// Scenario B: second solve in the same topic the next day.
func TestRecordAttemptSecondSolveNextDay(t *testing.T) {
	snap := mustRecord(t, NewSnapshot(), easyArrays, grader.Correct, day(0)).Snapshot
	snap = mustRecord(t, snap, medArrays, grader.Correct, day(1)).Snapshot

	if snap.TotalXP != 35 {
		t.Errorf("TotalXP = %d, want 35", snap.TotalXP)
	}
	tm := snap.TopicMastery["Arrays"]
	if tm.SolvedCount != 2 || tm.Level != Intermediate {
		t.Errorf("Arrays mastery = %+v, want solved=2 level=Intermediate", tm)
	}
	if snap.Streak.Current != 2 || snap.Streak.Longest != 2 {
		t.Errorf("streak = %d/%d, want 2/2", snap.Streak.Current, snap.Streak.Longest)
	}
}

// Scenario C: duplicate solve awards nothing but still counts as
// streak activity for the day.
func TestRecordAttemptDuplicateSolve(t *testing.T) {
	snap := mustRecord(t, NewSnapshot(), easyArrays, grader.Correct, day(0)).Snapshot
	snap = mustRecord(t, snap, medArrays, grader.Correct, day(1)).Snapshot

	res := mustRecord(t, snap, easyArrays, grader.Correct, day(2))
	got := res.Snapshot

	if got.TotalXP != 35 {
		t.Errorf("TotalXP = %d, want unchanged 35", got.TotalXP)
	}
	if !reflect.DeepEqual(got.TopicMastery, snap.TopicMastery) {
		t.Errorf("topic mastery changed on duplicate solve: %+v", got.TopicMastery)
	}
	if got.Streak.Current != 3 {
		t.Errorf("streak.Current = %d, want 3 (streak is novelty-independent)", got.Streak.Current)
	}
	if res.NewlySolved || res.XPAwarded != 0 {
		t.Errorf("duplicate reported as new solve: %+v", res)
	}
}

// Scenario D: a gap of more than one day resets the streak but keeps
// the high-water mark.
func TestRecordAttemptStreakGap(t *testing.T) {
	snap := mustRecord(t, NewSnapshot(), easyArrays, grader.Correct, day(0)).Snapshot
	snap = mustRecord(t, snap, medArrays, grader.Correct, day(1)).Snapshot
	snap = mustRecord(t, snap, hardRec, grader.Correct, day(5)).Snapshot

	if snap.TotalXP != 85 {
		t.Errorf("TotalXP = %d, want 85", snap.TotalXP)
	}
	if snap.Streak.Current != 1 {
		t.Errorf("streak.Current = %d, want 1 after gap", snap.Streak.Current)
	}
	if snap.Streak.Longest != 2 {
		t.Errorf("streak.Longest = %d, want 2", snap.Streak.Longest)
	}
	tm := snap.TopicMastery["Recursion"]
	if tm.SolvedCount != 1 || tm.XPEarned != 50 || tm.Level != Beginner {
		t.Errorf("Recursion mastery = %+v, want {1 50 Beginner}", tm)
	}
}

func TestRecordAttemptIncorrectAwardsNothing(t *testing.T) {
	start := mustRecord(t, NewSnapshot(), easyArrays, grader.Correct, day(0)).Snapshot

	res := mustRecord(t, start, hardRec, grader.Incorrect, day(1))
	got := res.Snapshot

	if got.TotalXP != start.TotalXP {
		t.Errorf("TotalXP changed on incorrect attempt: %d", got.TotalXP)
	}
	if !reflect.DeepEqual(got.SolvedProblems, start.SolvedProblems) {
		t.Error("solved problems changed on incorrect attempt")
	}
	if !reflect.DeepEqual(got.TopicMastery, start.TopicMastery) {
		t.Error("topic mastery changed on incorrect attempt")
	}
	if !reflect.DeepEqual(got.Streak, start.Streak) {
		t.Error("streak changed on incorrect attempt")
	}
	if got.LastProblemID != "p3" {
		t.Errorf("LastProblemID = %q, want p3", got.LastProblemID)
	}
}

// Applying the same correct attempt twice changes nothing on the
// second application.
func TestRecordAttemptIdempotence(t *testing.T) {
	once := mustRecord(t, NewSnapshot(), easyArrays, grader.Correct, day(0)).Snapshot
	twice := mustRecord(t, once, easyArrays, grader.Correct, day(0)).Snapshot

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("reapplication changed snapshot:\n first: %+v\nsecond: %+v", once, twice)
	}
}

func TestRecordAttemptDoesNotMutateInput(t *testing.T) {
	start := NewSnapshot()
	_ = mustRecord(t, start, easyArrays, grader.Correct, day(0))

	if start.TotalXP != 0 || len(start.SolvedProblems) != 0 {
		t.Errorf("input snapshot mutated: %+v", start)
	}
}

func TestRecordAttemptInvariantsOverSequence(t *testing.T) {
	problems := []catalog.Problem{easyArrays, medArrays, hardRec, easyArrays, medArrays}
	verdicts := []grader.Verdict{grader.Correct, grader.Incorrect, grader.Correct, grader.Correct, grader.Correct}

	snap := NewSnapshot()
	longest := 0
	for i := range problems {
		snap = mustRecord(t, snap, problems[i], verdicts[i], day(i)).Snapshot
		if snap.Streak.Longest < longest {
			t.Fatalf("longest streak decreased at step %d", i)
		}
		longest = snap.Streak.Longest
	}
}

func TestUpdateProfile(t *testing.T) {
	name := "Ada"
	bio := "Compilers and coffee."
	snap, err := UpdateProfile(NewSnapshot(), ProfilePatch{
		DisplayName:        &name,
		Bio:                &bio,
		PreferredLanguages: []string{"go", "python"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if snap.Profile.DisplayName != "Ada" || snap.Profile.Bio != bio {
		t.Errorf("profile = %+v", snap.Profile)
	}
	if !reflect.DeepEqual(snap.Profile.PreferredLanguages, []string{"go", "python"}) {
		t.Errorf("preferred languages = %v", snap.Profile.PreferredLanguages)
	}
	if snap.TotalXP != 0 || len(snap.SolvedProblems) != 0 {
		t.Error("profile update touched progress fields")
	}
}

func TestUpdateProfileRejectsEmptyDisplayName(t *testing.T) {
	empty := "   "
	_, err := UpdateProfile(NewSnapshot(), ProfilePatch{DisplayName: &empty})
	if err == nil {
		t.Fatal("expected error for blank display name")
	}
}

func TestUpdateSetting(t *testing.T) {
	snap, err := UpdateSetting(NewSnapshot(), "theme", "dark")
	if err != nil {
		t.Fatalf("UpdateSetting: %v", err)
	}
	if snap.Settings["theme"] != "dark" {
		t.Errorf("theme = %q, want dark", snap.Settings["theme"])
	}

	if _, err := UpdateSetting(snap, "", "x"); err == nil {
		t.Fatal("expected error for empty setting key")
	}
}
