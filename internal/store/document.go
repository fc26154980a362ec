package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/codeace-app/codeace/internal/progress"
)

// The progress document is the only loosely-typed data crossing the
// store boundary, so it is checked against a JSON Schema on read.
// A document that fails validation is rejected outright rather than
// trusted shape-by-shape at every use site.

var progressSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"xp", "solvedProblems", "topicMastery", "streaks", "badges"},
	"properties": map[string]any{
		"xp": map[string]any{"type": "integer", "minimum": 0},
		"solvedProblems": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
		"topicMastery": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"solved", "xp", "masteryLevel"},
				"properties": map[string]any{
					"solved":       map[string]any{"type": "integer", "minimum": 0},
					"xp":           map[string]any{"type": "integer", "minimum": 0},
					"masteryLevel": map[string]any{"type": "string"},
				},
			},
		},
		"streaks": map[string]any{
			"type":     "object",
			"required": []any{"current", "longest"},
			"properties": map[string]any{
				"current":          map[string]any{"type": "integer", "minimum": 0},
				"longest":          map[string]any{"type": "integer", "minimum": 0},
				"lastActivityDate": map[string]any{"type": "string"},
			},
		},
		"badges": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"lastProblemId": map[string]any{"type": "string"},
		"profile":       map[string]any{"type": "object"},
		"settings": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func progressSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		b, err := json.Marshal(progressSchemaDef)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://progress-document.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// encodeProgress converts a snapshot to the map form ent stores as JSON.
func encodeProgress(snap progress.Snapshot) (map[string]any, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal progress snapshot: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("remarshal progress snapshot: %w", err)
	}
	return m, nil
}

// decodeProgress validates a stored document and converts it to a
// typed snapshot.
func decodeProgress(doc map[string]any) (progress.Snapshot, error) {
	schema, err := progressSchema()
	if err != nil {
		return progress.Snapshot{}, err
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return progress.Snapshot{}, fmt.Errorf("marshal stored document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return progress.Snapshot{}, fmt.Errorf("parse stored document: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return progress.Snapshot{}, fmt.Errorf("progress document rejected: %w", err)
	}

	var snap progress.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return progress.Snapshot{}, fmt.Errorf("unmarshal progress snapshot: %w", err)
	}

	// Maps omitted from old documents come back nil; normalize so the
	// ledger can always index into them.
	if snap.SolvedProblems == nil {
		snap.SolvedProblems = make(map[string]time.Time)
	}
	if snap.TopicMastery == nil {
		snap.TopicMastery = make(map[string]progress.TopicMastery)
	}
	if snap.Settings == nil {
		snap.Settings = make(map[string]string)
	}

	return snap, nil
}
