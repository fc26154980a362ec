package progress

import "time"

// Streak days are bounded in UTC. Event timestamps are stored in UTC,
// so a fixed boundary keeps streak outcomes deterministic regardless of
// where a request was served.

// dayOf truncates a timestamp to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from a to b (both already
// day-truncated).
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// advanceStreak applies one qualifying activity event at time now.
//
//	no prior activity, or same day  → streak holds (at least 1)
//	exactly the next day            → streak extends
//	a gap of more than one day      → streak restarts at 1
//
// Longest is a high-water mark and never decreases.
func advanceStreak(s StreakState, now time.Time) StreakState {
	day := dayOf(now)

	switch {
	case s.LastActivityDate == nil:
		s.Current = max(s.Current, 1)
	default:
		switch gap := daysBetween(dayOf(*s.LastActivityDate), day); {
		case gap <= 0:
			// Same-day repeat (or clock skew backwards): no extension.
			s.Current = max(s.Current, 1)
		case gap == 1:
			s.Current++
		default:
			s.Current = 1
		}
	}

	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastActivityDate = &day
	return s
}
