package jobs

import (
	"github.com/padraicob/lotto-backend/shared"
	"github.com/sirupsen/logrus"
)

type LimiterSweepJob struct {
	RateLimiter *shared.FixedWindowRateLimiter
}

func NewLimiterSweepJob(limiter *shared.FixedWindowRateLimiter) *LimiterSweepJob {
	return &LimiterSweepJob{RateLimiter: limiter}
}

func (j *LimiterSweepJob) Run() {
	evicted := j.RateLimiter.Sweep()
	if evicted > 0 {
		logrus.WithField("evicted", evicted).Debug("Rate limiter sweep job completed")
	}
}
