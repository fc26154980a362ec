package progress

import "fmt"

// Validate checks the snapshot invariants. A violation means the
// snapshot was corrupted outside the ledger (or the ledger has a bug);
// callers treat it as fatal, not as user error.
func Validate(s Snapshot) error {
	if s.TotalXP < 0 {
		return fmt.Errorf("progress: negative total XP %d", s.TotalXP)
	}
	if s.Streak.Current < 0 || s.Streak.Longest < 0 {
		return fmt.Errorf("progress: negative streak (current=%d longest=%d)",
			s.Streak.Current, s.Streak.Longest)
	}
	if s.Streak.Longest < s.Streak.Current {
		return fmt.Errorf("progress: longest streak %d below current %d",
			s.Streak.Longest, s.Streak.Current)
	}

	var xpSum, solvedSum int
	for topic, tm := range s.TopicMastery {
		if tm.SolvedCount < 0 || tm.XPEarned < 0 {
			return fmt.Errorf("progress: negative counters in topic %q", topic)
		}
		if want := LevelForSolved(tm.SolvedCount); tm.Level != want {
			return fmt.Errorf("progress: topic %q level %s does not match solved count %d (want %s)",
				topic, tm.Level, tm.SolvedCount, want)
		}
		xpSum += tm.XPEarned
		solvedSum += tm.SolvedCount
	}

	if s.TotalXP != xpSum {
		return fmt.Errorf("progress: total XP %d does not equal topic sum %d", s.TotalXP, xpSum)
	}
	if len(s.SolvedProblems) != solvedSum {
		return fmt.Errorf("progress: %d solved problems but topic counts sum to %d",
			len(s.SolvedProblems), solvedSum)
	}

	return nil
}
