package catalog

import (
	"errors"
	"testing"
)

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	c := Default()
	problems := c.Problems()
	if len(problems) == 0 {
		t.Fatal("default catalog is empty")
	}

	seen := make(map[string]bool)
	for _, p := range problems {
		if p.ID == "" || p.Title == "" || p.Topic == "" {
			t.Errorf("problem %+v missing required fields", p)
		}
		if !p.Difficulty.Valid() {
			t.Errorf("problem %s has invalid difficulty %q", p.ID, p.Difficulty)
		}
		if seen[p.ID] {
			t.Errorf("duplicate problem id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestGetUnknownProblem(t *testing.T) {
	_, err := Default().Get("no-such-problem")
	var unknown *ErrUnknownProblem
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownProblem, got %v", err)
	}
	if unknown.ID != "no-such-problem" {
		t.Errorf("error carries id %q", unknown.ID)
	}
}

func TestCountInTopic(t *testing.T) {
	c := NewStatic([]Problem{
		{ID: "a", Title: "A", Topic: "arrays", Difficulty: Easy},
		{ID: "b", Title: "B", Topic: "arrays", Difficulty: Medium},
		{ID: "c", Title: "C", Topic: "graphs", Difficulty: Hard},
	})

	if got := c.CountInTopic("arrays"); got != 2 {
		t.Errorf("CountInTopic(arrays) = %d, want 2", got)
	}
	if got := c.CountInTopic("unknown"); got != 0 {
		t.Errorf("CountInTopic(unknown) = %d, want 0", got)
	}
}

func TestFilter(t *testing.T) {
	problems := []Problem{
		{ID: "a", Title: "Two Sum", Topic: "arrays", Difficulty: Easy},
		{ID: "b", Title: "Max Subarray", Topic: "arrays", Difficulty: Medium},
		{ID: "c", Title: "Word Ladder", Topic: "graphs", Difficulty: Hard},
	}

	tests := []struct {
		name       string
		topic      string
		difficulty Difficulty
		search     string
		wantIDs    []string
	}{
		{"no filters", "", "", "", []string{"a", "b", "c"}},
		{"by topic", "arrays", "", "", []string{"a", "b"}},
		{"by difficulty", "", Hard, "", []string{"c"}},
		{"by search", "", "", "sum", []string{"a"}},
		{"topic and difficulty", "arrays", Medium, "", []string{"b"}},
		{"no match", "graphs", Easy, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(problems, tt.topic, tt.difficulty, tt.search)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d problems, want %d", len(got), len(tt.wantIDs))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("result[%d] = %s, want %s", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}
