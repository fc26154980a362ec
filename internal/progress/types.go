// Package progress owns the authoritative progress record for one
// learner: XP totals, topic mastery, solved-problem membership, streaks
// and badges. Every operation is a pure transformation over a Snapshot
// value; persistence and grading live behind collaborator interfaces.
package progress

import "time"

// MasteryLevel is the ordered label summarizing how far a learner has
// progressed in a topic. Novice < Beginner < Intermediate < Advanced < Expert.
type MasteryLevel string

const (
	Novice       MasteryLevel = "Novice"
	Beginner     MasteryLevel = "Beginner"
	Intermediate MasteryLevel = "Intermediate"
	Advanced     MasteryLevel = "Advanced"
	Expert       MasteryLevel = "Expert"
)

// rank orders mastery levels for comparison.
func (m MasteryLevel) rank() int {
	switch m {
	case Novice:
		return 0
	case Beginner:
		return 1
	case Intermediate:
		return 2
	case Advanced:
		return 3
	case Expert:
		return 4
	}
	return -1
}

// AtLeast reports whether m is at or above other in the mastery order.
func (m MasteryLevel) AtLeast(other MasteryLevel) bool {
	return m.rank() >= other.rank()
}

// TopicMastery tracks a learner's standing in a single topic.
// SolvedCount and XPEarned only ever grow; Level is derived from
// SolvedCount and never set directly.
type TopicMastery struct {
	SolvedCount int          `json:"solved"`
	XPEarned    int          `json:"xp"`
	Level       MasteryLevel `json:"masteryLevel"`
}

// StreakState is the consecutive-day activity counter.
type StreakState struct {
	Current          int        `json:"current"`
	Longest          int        `json:"longest"`
	LastActivityDate *time.Time `json:"lastActivityDate,omitempty"`
}

// Badge identifies an achievement held by a learner.
type Badge string

const (
	BadgeWelcomeCoder Badge = "WelcomeCoder"
	BadgeFirstSolve   Badge = "FirstSolve"
	BadgeTenSolved    Badge = "TenSolved"
	BadgeStreakWeek   Badge = "StreakWeek"
	BadgeTopicExpert  Badge = "TopicExpert"
)

// Profile holds the editable profile sub-fields. It never interacts
// with progress state.
type Profile struct {
	DisplayName        string   `json:"displayName,omitempty"`
	Bio                string   `json:"bio,omitempty"`
	Location           string   `json:"location,omitempty"`
	PreferredLanguages []string `json:"preferredLanguages,omitempty"`
}

// Snapshot is the complete progress record for one learner at a point
// in time.
type Snapshot struct {
	TotalXP        int                     `json:"xp"`
	SolvedProblems map[string]time.Time    `json:"solvedProblems"`
	TopicMastery   map[string]TopicMastery `json:"topicMastery"`
	Streak         StreakState             `json:"streaks"`
	Badges         []Badge                 `json:"badges"`
	LastProblemID  string                  `json:"lastProblemId,omitempty"`

	Profile  Profile           `json:"profile"`
	Settings map[string]string `json:"settings"`
}

// NewSnapshot returns the all-zero snapshot created at account
// creation. New accounts hold the WelcomeCoder badge from the start.
func NewSnapshot() Snapshot {
	return Snapshot{
		SolvedProblems: make(map[string]time.Time),
		TopicMastery:   make(map[string]TopicMastery),
		Badges:         []Badge{BadgeWelcomeCoder},
		Settings:       map[string]string{"theme": "system"},
		Profile: Profile{
			PreferredLanguages: []string{"javascript"},
		},
	}
}

// HasBadge reports whether the snapshot holds the given badge.
func (s Snapshot) HasBadge(b Badge) bool {
	for _, held := range s.Badges {
		if held == b {
			return true
		}
	}
	return false
}

// SolvedCount returns the number of distinct solved problems.
func (s Snapshot) SolvedCount() int {
	return len(s.SolvedProblems)
}

// Clone returns a deep copy of the snapshot so mutations never leak
// into the caller's value.
func (s Snapshot) Clone() Snapshot {
	out := s

	out.SolvedProblems = make(map[string]time.Time, len(s.SolvedProblems))
	for id, ts := range s.SolvedProblems {
		out.SolvedProblems[id] = ts
	}

	out.TopicMastery = make(map[string]TopicMastery, len(s.TopicMastery))
	for topic, tm := range s.TopicMastery {
		out.TopicMastery[topic] = tm
	}

	out.Badges = make([]Badge, len(s.Badges))
	copy(out.Badges, s.Badges)

	out.Settings = make(map[string]string, len(s.Settings))
	for k, v := range s.Settings {
		out.Settings[k] = v
	}

	out.Profile.PreferredLanguages = make([]string, len(s.Profile.PreferredLanguages))
	copy(out.Profile.PreferredLanguages, s.Profile.PreferredLanguages)

	if s.Streak.LastActivityDate != nil {
		d := *s.Streak.LastActivityDate
		out.Streak.LastActivityDate = &d
	}

	return out
}
