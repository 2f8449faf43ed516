package cron

import (
	"context"
	"log"
	"time"
)

// Purger removes form documents soft-deleted longer than retention ago.
type Purger interface {
	PurgeDeleted(ctx context.Context, retention time.Duration) (int64, error)
}

// StartPurgeTask runs one purge immediately and then every interval until
// ctx is cancelled.
func StartPurgeTask(ctx context.Context, purger Purger, retention, interval time.Duration) {
	go func() {
		log.Printf("Starting background purge task (retention: %s)", retention)

		runPurge(ctx, purger, retention)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runPurge(ctx, purger, retention)
			}
		}
	}()
}

func runPurge(ctx context.Context, purger Purger, retention time.Duration) {
	n, err := purger.PurgeDeleted(ctx, retention)
	if err != nil {
		log.Printf("Failed to purge deleted form documents: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Purged %d deleted form documents", n)
	}
}
