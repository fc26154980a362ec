package progress

import (
	"fmt"

	"github.com/codeace-app/codeace/internal/catalog"
)

// XP awarded per solved problem by difficulty.
const (
	XPEasy   = 10
	XPMedium = 25
	XPHard   = 50
)

// DefaultTopicSize is assumed when the catalog does not know how many
// problems a topic holds. Used only for display fractions.
const DefaultTopicSize = 5

// XPForDifficulty returns the XP award for a difficulty tier.
// An unknown difficulty means the catalog and the ledger disagree,
// which is a programming error, so it panics rather than degrading.
func XPForDifficulty(d catalog.Difficulty) int {
	switch d {
	case catalog.Easy:
		return XPEasy
	case catalog.Medium:
		return XPMedium
	case catalog.Hard:
		return XPHard
	}
	panic(fmt.Sprintf("progress: unknown difficulty %q", d))
}

// LevelForSolved maps a topic's solved count to its mastery level.
// The step function is total and monotonic:
//
//	0 → Novice, 1 → Beginner, 2–4 → Intermediate, 5–9 → Advanced, 10+ → Expert
func LevelForSolved(solved int) MasteryLevel {
	switch {
	case solved <= 0:
		return Novice
	case solved == 1:
		return Beginner
	case solved <= 4:
		return Intermediate
	case solved <= 9:
		return Advanced
	default:
		return Expert
	}
}

// MasteryProgressFraction returns how far along a topic is toward full
// coverage, in [0,1]. topicTotal comes from the catalog; when it is
// unknown (<= 0) the DefaultTopicSize fallback applies. Display only,
// never used for gating.
func MasteryProgressFraction(solved, topicTotal int) float64 {
	if topicTotal <= 0 {
		topicTotal = DefaultTopicSize
	}
	if solved <= 0 {
		return 0
	}
	f := float64(solved) / float64(topicTotal)
	if f > 1 {
		return 1
	}
	return f
}
