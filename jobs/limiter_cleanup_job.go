// File: /jobs/limiter_cleanup_job.go
package jobs

import (
	"time"

	"github.com/sirupsen/logrus"

	"socialnet-api/services"
)

// LimiterCleanupJob periodically evicts idle per-user send limiters so the
// limiter map does not grow with every user that ever sent a friend request.
type LimiterCleanupJob struct {
	limiter  *services.SendLimiter
	idleFor  time.Duration
	interval time.Duration
	ticker   *time.Ticker
	done     chan bool
}

func NewLimiterCleanupJob(limiter *services.SendLimiter, interval, idleFor time.Duration) *LimiterCleanupJob {
	return &LimiterCleanupJob{
		limiter:  limiter,
		idleFor:  idleFor,
		interval: interval,
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
	}
}

// Start begins the cleanup job
func (j *LimiterCleanupJob) Start() {
	logrus.Info("Send limiter cleanup job started")

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				return
			}
		}
	}()
}

// Stop halts the cleanup job
func (j *LimiterCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
	logrus.Info("Send limiter cleanup job stopped")
}

func (j *LimiterCleanupJob) cleanup() {
	removed := j.limiter.CleanupIdle(j.idleFor)
	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": j.limiter.Size(),
		}).Debug("evicted idle send limiters")
	}
}
