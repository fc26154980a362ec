package progress

// badgeRule grants a badge when its predicate holds over the snapshot.
// Rules are evaluated after every successful attempt; granting a badge
// already held is a no-op.
type badgeRule struct {
	Badge Badge
	Holds func(Snapshot) bool
}

var badgeRules = []badgeRule{
	{
		Badge: BadgeFirstSolve,
		Holds: func(s Snapshot) bool { return s.SolvedCount() >= 1 },
	},
	{
		Badge: BadgeTenSolved,
		Holds: func(s Snapshot) bool { return s.SolvedCount() >= 10 },
	},
	{
		Badge: BadgeStreakWeek,
		Holds: func(s Snapshot) bool { return s.Streak.Current >= 7 },
	},
	{
		Badge: BadgeTopicExpert,
		Holds: func(s Snapshot) bool {
			for _, tm := range s.TopicMastery {
				if tm.Level == Expert {
					return true
				}
			}
			return false
		},
	},
}

// evaluateBadges grants every rule badge whose predicate holds and that
// the snapshot does not already have. Returns the updated badge list
// and the newly granted badges.
func evaluateBadges(s Snapshot) ([]Badge, []Badge) {
	held := make(map[Badge]bool, len(s.Badges))
	for _, b := range s.Badges {
		held[b] = true
	}

	badges := s.Badges
	var granted []Badge
	for _, rule := range badgeRules {
		if held[rule.Badge] || !rule.Holds(s) {
			continue
		}
		badges = append(badges, rule.Badge)
		granted = append(granted, rule.Badge)
		held[rule.Badge] = true
	}
	return badges, granted
}
