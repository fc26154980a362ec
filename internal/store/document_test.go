package store

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/codeace-app/codeace/internal/catalog"
	"github.com/codeace-app/codeace/internal/grader"
	"github.com/codeace-app/codeace/internal/progress"
)

func TestProgressDocumentRoundTrip(t *testing.T) {
	snap := progress.NewSnapshot()
	problem := catalog.Problem{ID: "two-sum", Topic: "arrays", Difficulty: catalog.Easy}
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	result, err := progress.RecordAttempt(snap, problem, grader.Correct, now)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	snap = result.Snapshot

	doc, err := encodeProgress(snap)
	if err != nil {
		t.Fatalf("encodeProgress: %v", err)
	}
	got, err := decodeProgress(doc)
	if err != nil {
		t.Fatalf("decodeProgress: %v", err)
	}

	if !reflect.DeepEqual(snap, got) {
		t.Errorf("round trip changed snapshot:\n before: %+v\n after:  %+v", snap, got)
	}
	if err := progress.Validate(got); err != nil {
		t.Errorf("decoded snapshot invalid: %v", err)
	}
}

func TestDecodeProgressRejectsMissingFields(t *testing.T) {
	doc, err := encodeProgress(progress.NewSnapshot())
	if err != nil {
		t.Fatalf("encodeProgress: %v", err)
	}
	delete(doc, "xp")

	if _, err := decodeProgress(doc); err == nil {
		t.Fatal("expected validation error for document without xp")
	} else if !strings.Contains(err.Error(), "rejected") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDecodeProgressRejectsNegativeXP(t *testing.T) {
	doc, err := encodeProgress(progress.NewSnapshot())
	if err != nil {
		t.Fatalf("encodeProgress: %v", err)
	}
	doc["xp"] = -10

	if _, err := decodeProgress(doc); err == nil {
		t.Fatal("expected validation error for negative xp")
	}
}

func TestDecodeProgressNormalizesNilMaps(t *testing.T) {
	// Documents written before settings existed carry no such key.
	doc := map[string]any{
		"xp":             0,
		"solvedProblems": map[string]any{},
		"topicMastery":   map[string]any{},
		"streaks":        map[string]any{"current": 0, "longest": 0},
		"badges":         []any{},
	}

	snap, err := decodeProgress(doc)
	if err != nil {
		t.Fatalf("decodeProgress: %v", err)
	}
	if snap.SolvedProblems == nil || snap.TopicMastery == nil || snap.Settings == nil {
		t.Error("expected all maps to be non-nil after decode")
	}
}
