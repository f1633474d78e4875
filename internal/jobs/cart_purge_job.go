package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CartPurgeJobName is the name of the abandoned cart purge job
const CartPurgeJobName = "cart_purge"

// RecordPurger deletes persisted records not written since a cutoff.
// Implemented by storage.DatabaseStorage.
type RecordPurger interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// CartPurgeJob deletes persisted carts whose session has not written them within the retention period
type CartPurgeJob struct {
	purger    RecordPurger
	retention time.Duration
	timeout   time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewCartPurgeJob creates a new abandoned cart purge job.
// The timeout controls how long a single purge is allowed to run.
func NewCartPurgeJob(purger RecordPurger, retention, timeout time.Duration, logger *zap.Logger) *CartPurgeJob {
	return &CartPurgeJob{
		purger:    purger,
		retention: retention,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

// Run executes one purge pass
func (j *CartPurgeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	cutoff := j.now().Add(-j.retention)

	purged, err := j.purger.PurgeBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("abandoned cart purge failed",
			zap.Error(err),
			zap.Time("cutoff", cutoff),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("abandoned cart purge completed",
		zap.Int64("purged", purged),
		zap.Time("cutoff", cutoff),
		zap.Duration("duration", time.Since(start)))
}

// RegisterCartPurgeJob registers the abandoned cart purge job with the scheduler
func RegisterCartPurgeJob(scheduler *Scheduler, purger RecordPurger, retention time.Duration, logger *zap.Logger, cronExpr string, timeout time.Duration) error {
	job := NewCartPurgeJob(purger, retention, timeout, logger)
	return scheduler.AddJob(CartPurgeJobName, cronExpr, job.Run)
}
