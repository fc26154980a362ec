package progress

import (
	"testing"

	"github.com/codeace-app/codeace/internal/catalog"
)

func TestXPForDifficulty(t *testing.T) {
	tests := []struct {
		difficulty catalog.Difficulty
		want       int
	}{
		{catalog.Easy, 10},
		{catalog.Medium, 25},
		{catalog.Hard, 50},
	}

	for _, tt := range tests {
		got := XPForDifficulty(tt.difficulty)
		if got != tt.want {
			t.Errorf("XPForDifficulty(%s) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}

func TestXPForDifficultyPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown difficulty")
		}
	}()
	XPForDifficulty(catalog.Difficulty("Impossible"))
}

func TestLevelForSolved(t *testing.T) {
	tests := []struct {
		solved int
		want   MasteryLevel
	}{
		{0, Novice},
		{1, Beginner},
		{2, Intermediate},
		{4, Intermediate},
		{5, Advanced},
		{9, Advanced},
		{10, Expert},
		{100, Expert},
	}

	for _, tt := range tests {
		got := LevelForSolved(tt.solved)
		if got != tt.want {
			t.Errorf("LevelForSolved(%d) = %s, want %s", tt.solved, got, tt.want)
		}
	}
}

func TestLevelForSolvedMonotonic(t *testing.T) {
	prev := LevelForSolved(0)
	for n := 1; n <= 30; n++ {
		cur := LevelForSolved(n)
		if !cur.AtLeast(prev) {
			t.Fatalf("LevelForSolved(%d) = %s below LevelForSolved(%d) = %s", n, cur, n-1, prev)
		}
		prev = cur
	}
}

func TestMasteryProgressFraction(t *testing.T) {
	tests := []struct {
		solved, total int
		want          float64
	}{
		{0, 10, 0},
		{5, 10, 0.5},
		{10, 10, 1},
		{12, 10, 1}, // clamped
		{2, 0, 0.4}, // unknown topic size falls back to 5
		{7, -1, 1},  // fallback plus clamp
	}

	for _, tt := range tests {
		got := MasteryProgressFraction(tt.solved, tt.total)
		if got != tt.want {
			t.Errorf("MasteryProgressFraction(%d, %d) = %v, want %v", tt.solved, tt.total, got, tt.want)
		}
	}
}
