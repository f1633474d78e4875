package jobs

import (
	"time"

	"go.uber.org/zap"
)

// SessionEvictionJobName is the name of the idle cart eviction job
const SessionEvictionJobName = "session_eviction"

// SessionEvicter drops idle carts from memory. Implemented by session.Manager.
type SessionEvicter interface {
	EvictIdle(now time.Time) int
	Len() int
}

// SessionEvictionJob unloads carts that have not been touched for the idle TTL.
// Persisted carts are untouched and reload on the next request of their session.
type SessionEvictionJob struct {
	sessions SessionEvicter
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionEvictionJob creates a new idle cart eviction job
func NewSessionEvictionJob(sessions SessionEvicter, logger *zap.Logger) *SessionEvictionJob {
	return &SessionEvictionJob{
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes one eviction pass
func (j *SessionEvictionJob) Run() {
	evicted := j.sessions.EvictIdle(j.now())
	if evicted == 0 {
		return
	}

	j.logger.Info("idle cart sessions evicted",
		zap.Int("evicted", evicted),
		zap.Int("remaining", j.sessions.Len()))
}

// RegisterSessionEvictionJob registers the idle cart eviction job with the scheduler
func RegisterSessionEvictionJob(scheduler *Scheduler, sessions SessionEvicter, logger *zap.Logger, cronExpr string) error {
	job := NewSessionEvictionJob(sessions, logger)
	return scheduler.AddJob(SessionEvictionJobName, cronExpr, job.Run)
}
