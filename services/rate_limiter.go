package services

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SendLimiter caps how often a user may issue outbound friend requests. Each
// user gets a token bucket holding maxRequestsPerWindow tokens that refills
// over windowSeconds, which approximates a sliding window over the configured
// interval.
type SendLimiter struct {
	limiters map[string]*userLimiter
	mutex    sync.Mutex
	rate     rate.Limit
	burst    int
}

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewSendLimiter(windowSeconds, maxRequestsPerWindow int) *SendLimiter {
	if windowSeconds <= 0 {
		windowSeconds = 60
	}
	if maxRequestsPerWindow <= 0 {
		maxRequestsPerWindow = 1
	}

	window := time.Duration(windowSeconds) * time.Second

	return &SendLimiter{
		limiters: make(map[string]*userLimiter),
		rate:     rate.Every(window / time.Duration(maxRequestsPerWindow)),
		burst:    maxRequestsPerWindow,
	}
}

// Allow records one outbound request for the user and reports whether it is
// within the cap. Lookup and increment-and-check happen under the same lock,
// so concurrent callers for the same user cannot both sneak past the limit.
func (sl *SendLimiter) Allow(userID string) bool {
	sl.mutex.Lock()
	defer sl.mutex.Unlock()

	entry, exists := sl.limiters[userID]
	if !exists {
		entry = &userLimiter{limiter: rate.NewLimiter(sl.rate, sl.burst)}
		sl.limiters[userID] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

// CleanupIdle removes per-user buckets not used since the cutoff, to keep the
// map from growing with every user that ever sent a request.
func (sl *SendLimiter) CleanupIdle(idleFor time.Duration) int {
	sl.mutex.Lock()
	defer sl.mutex.Unlock()

	cutoff := time.Now().Add(-idleFor)
	removed := 0

	for userID, entry := range sl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(sl.limiters, userID)
			removed++
		}
	}

	return removed
}

// Size reports how many users currently hold a bucket.
func (sl *SendLimiter) Size() int {
	sl.mutex.Lock()
	defer sl.mutex.Unlock()
	return len(sl.limiters)
}
