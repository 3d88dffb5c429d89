package jobs

import (
	"context"
	"time"

	"github.com/padraicob/lotto-backend/services"
	"github.com/sirupsen/logrus"
)

type CacheCleanupJob struct {
	CacheService *services.CacheService
}

func NewCacheCleanupJob(cacheService *services.CacheService) *CacheCleanupJob {
	return &CacheCleanupJob{CacheService: cacheService}
}

func (j *CacheCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed := j.CacheService.CleanupExpired(ctx)
	logrus.WithField("removed", removed).Info("Cache cleanup job completed")
}
