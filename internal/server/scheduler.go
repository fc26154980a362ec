package server

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/codeace-app/codeace/internal/store"
)

// StartPruner runs a daily job that trims old rows from the event
// log. Stop the returned scheduler when shutting down.
func StartPruner(events store.EventRepo, retention time.Duration, logger *log.Logger) *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)

	scheduler.Every(1).Day().At("03:00").Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		cutoff := time.Now().UTC().Add(-retention)
		removed, err := events.PruneBefore(ctx, cutoff)
		if err != nil {
			logger.Printf("prune events: %v", err)
			return
		}
		if removed > 0 {
			logger.Printf("pruned %d events older than %s", removed, cutoff.Format(time.DateOnly))
		}
	})

	scheduler.StartAsync()
	return scheduler
}
