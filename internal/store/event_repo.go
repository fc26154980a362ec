package store

import (
	"context"
	"fmt"
	"time"

	"github.com/codeace-app/codeace/ent"
	"github.com/codeace-app/codeace/ent/attemptevent"
	"github.com/codeace-app/codeace/ent/reviewevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	_, err := r.client.AttemptEvent.Create().
		SetUID(data.UID).
		SetProblemID(data.ProblemID).
		SetVerdict(data.Verdict).
		SetXpAwarded(data.XPAwarded).
		SetNewlySolved(data.NewlySolved).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	_, err := r.client.ReviewEvent.Create().
		SetUID(data.UID).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetLanguage(data.Language).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

func (r *eventRepo) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	attempts, err := r.client.AttemptEvent.Delete().
		Where(attemptevent.TimestampLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune attempt events: %w", err)
	}

	reviews, err := r.client.ReviewEvent.Delete().
		Where(reviewevent.TimestampLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return attempts, fmt.Errorf("prune review events: %w", err)
	}

	return attempts + reviews, nil
}
