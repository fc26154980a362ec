package catalog

import "fmt"

// Difficulty is the problem difficulty tier.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Problem is an immutable catalog entry.
type Problem struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Topic        string            `json:"topic"`
	Difficulty   Difficulty        `json:"difficulty"`
	Description  string            `json:"description"`
	InputFormat  string            `json:"inputFormat,omitempty"`
	OutputFormat string            `json:"outputFormat,omitempty"`
	Constraints  []string          `json:"constraints,omitempty"`
	SampleInput  string            `json:"sampleInput,omitempty"`
	SampleOutput string            `json:"sampleOutput,omitempty"`
	DefaultCode  map[string]string `json:"defaultCode,omitempty"`
}

// Catalog is the read-only problem collection the ledger and API consult.
type Catalog interface {
	// Problems returns all problems in catalog order.
	Problems() []Problem

	// Get returns the problem with the given id.
	Get(id string) (Problem, error)

	// Topics returns the distinct topic names in first-seen order.
	Topics() []string

	// CountInTopic returns the number of problems in a topic.
	// Returns 0 for unknown topics.
	CountInTopic(topic string) int
}

// ErrUnknownProblem is returned by Get for ids not in the catalog.
type ErrUnknownProblem struct {
	ID string
}

func (e *ErrUnknownProblem) Error() string {
	return fmt.Sprintf("unknown problem: %q", e.ID)
}

// Filter narrows a problem list by topic, difficulty and a free-text
// search term. Empty criteria match everything.
func Filter(problems []Problem, topic string, difficulty Difficulty, search string) []Problem {
	out := make([]Problem, 0, len(problems))
	for _, p := range problems {
		if topic != "" && p.Topic != topic {
			continue
		}
		if difficulty != "" && p.Difficulty != difficulty {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
