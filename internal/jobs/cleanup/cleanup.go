package cleanup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const defaultRetention = 30 * 24 * time.Hour

type staleSelectionCleaner interface {
	DeleteSelectionsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Job prunes class selections that were picked but never paid for. A
// selection row either gets settled by a payment or eventually ages out
// here.
type Job struct {
	selections staleSelectionCleaner
	retention  time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

func New(selections staleSelectionCleaner, retention time.Duration, logger *zap.Logger) *Job {
	if retention <= 0 {
		retention = defaultRetention
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Job{
		selections: selections,
		retention:  retention,
		now:        time.Now,
		logger:     logger,
	}
}

func (j *Job) Run(ctx context.Context) error {
	if j.selections == nil {
		return nil
	}

	cutoff := j.now().Add(-j.retention)
	rows, err := j.selections.DeleteSelectionsOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("cleanup stale selections: %w", err)
	}
	if rows > 0 {
		j.logger.Info("cleanup stale selections completed", zap.Int64("deleted", rows))
	}

	return nil
}
