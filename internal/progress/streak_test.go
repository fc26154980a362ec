package progress

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestAdvanceStreakFirstActivity(t *testing.T) {
	s := advanceStreak(StreakState{}, day(0))
	if s.Current != 1 || s.Longest != 1 {
		t.Errorf("first activity: current=%d longest=%d, want 1/1", s.Current, s.Longest)
	}
	if s.LastActivityDate == nil || !s.LastActivityDate.Equal(dayOf(day(0))) {
		t.Errorf("LastActivityDate = %v, want %v", s.LastActivityDate, dayOf(day(0)))
	}
}

func TestAdvanceStreakSameDayRepeat(t *testing.T) {
	s := advanceStreak(StreakState{}, day(0))
	s = advanceStreak(s, day(0).Add(3*time.Hour))
	if s.Current != 1 {
		t.Errorf("same-day repeat extended streak: current=%d, want 1", s.Current)
	}
}

func TestAdvanceStreakConsecutiveDays(t *testing.T) {
	var s StreakState
	for i := 0; i < 5; i++ {
		s = advanceStreak(s, day(i))
	}
	if s.Current != 5 || s.Longest != 5 {
		t.Errorf("after 5 consecutive days: current=%d longest=%d, want 5/5", s.Current, s.Longest)
	}
}

func TestAdvanceStreakGapResets(t *testing.T) {
	s := advanceStreak(StreakState{}, day(0))
	s = advanceStreak(s, day(1))
	s = advanceStreak(s, day(5))
	if s.Current != 1 {
		t.Errorf("gap > 1 day: current=%d, want 1", s.Current)
	}
	if s.Longest != 2 {
		t.Errorf("gap > 1 day: longest=%d, want 2 (high-water mark)", s.Longest)
	}
}

func TestAdvanceStreakDayBoundaryIsUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	// 23:30 UTC and 01:30 UTC next day are different UTC days even
	// though both are the same evening in EST.
	first := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	second := time.Date(2024, 3, 2, 1, 30, 0, 0, time.UTC).In(est)

	s := advanceStreak(StreakState{}, first)
	s = advanceStreak(s, second)
	if s.Current != 2 {
		t.Errorf("UTC day boundary: current=%d, want 2", s.Current)
	}
}

func TestAdvanceStreakLongestNeverDecreases(t *testing.T) {
	var s StreakState
	offsets := []int{0, 1, 2, 10, 11, 20, 21, 22, 23, 40}
	longest := 0
	for _, off := range offsets {
		s = advanceStreak(s, day(off))
		if s.Longest < longest {
			t.Fatalf("longest decreased from %d to %d at day offset %d", longest, s.Longest, off)
		}
		longest = s.Longest
	}
}
