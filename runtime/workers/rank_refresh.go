package workers

import (
	"context"
	"log/slog"
	"time"

	"brewbot/services"
)

// RankRefreshWorker recomputes the leaderboard on a fixed schedule.
// This is also the retry path for aggregation failures: a recompute
// that fails after a round completion is simply picked up on the next
// pass here instead of being retried inline.
type RankRefreshWorker struct {
	log      *slog.Logger
	ranks    services.IRankService
	interval time.Duration
}

func NewRankRefreshWorker(log *slog.Logger, ranks services.IRankService, interval time.Duration) *RankRefreshWorker {
	return &RankRefreshWorker{log: log, ranks: ranks, interval: interval}
}

func (w *RankRefreshWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.ranks.Recompute(); err != nil {
				w.log.Error("Scheduled rank recompute failed", "err", err)
			}
		}
	}
}
