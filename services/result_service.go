package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/padraicob/lotto-backend/models"
	"github.com/padraicob/lotto-backend/shared"
	"github.com/sirupsen/logrus"
)

// DrawFinder is the read-only store contract the results service
// depends on. database.DrawStore satisfies it; tests supply fakes.
type DrawFinder interface {
	FindByDateKey(ctx context.Context, dateKey string) (*models.DrawResult, error)
	FindLatest(ctx context.Context) (*models.DrawResult, error)
	FindPastExcluding(ctx context.Context, dateKey string, limit int) ([]models.DrawResult, error)
	FindPage(ctx context.Context, page, pageSize int) ([]models.DrawResult, int64, error)
}

// DrawLookup is the state-aware outcome of a by-date lookup: exactly
// one of Result (available) or Pending (coming soon) is set, or neither
// (not found).
type DrawLookup struct {
	State   models.DrawState
	Result  *models.DrawResult
	Pending *models.PendingDraw
}

// ResultService orchestrates the store, cache, classifier and schedule
// for the results surfaces.
type ResultService struct {
	store    DrawFinder
	cache    *CacheService
	clock    *ClockService
	schedule *ScheduleService
	state    *StateService
	metrics  *shared.ServiceMetrics
}

// NewResultService creates a ResultService.
func NewResultService(store DrawFinder, cache *CacheService, clock *ClockService, schedule *ScheduleService, state *StateService) *ResultService {
	return &ResultService{
		store:    store,
		cache:    cache,
		clock:    clock,
		schedule: schedule,
		state:    state,
		metrics:  shared.NewServiceMetrics("ResultService"),
	}
}

// Metrics exposes the service's request metrics for the admin surface.
func (s *ResultService) Metrics() *shared.ServiceMetrics {
	return s.metrics
}

// GetByDate looks up the draw for a date key and classifies the outcome.
// Malformed keys fail validation; store failures surface as retryable
// database errors so the handler can answer "data unavailable" instead
// of a hard not-found.
func (s *ResultService) GetByDate(ctx context.Context, dateKey string) (*DrawLookup, error) {
	started := time.Now()

	requested, err := s.clock.ParseDateKey(dateKey)
	if err != nil {
		s.metrics.RecordRequest(false, time.Since(started))
		return nil, shared.WrapError(err, shared.ErrorCategoryValidation, "INVALID_DATE_KEY", "ResultService", "GetByDate", false)
	}

	result, err := s.findByDateCached(ctx, dateKey)
	if err != nil {
		s.metrics.RecordRequest(false, time.Since(started))
		return nil, err
	}
	if result != nil {
		s.metrics.RecordRequest(true, time.Since(started))
		return &DrawLookup{State: models.StateAvailable, Result: result}, nil
	}

	latest, err := s.latestCached(ctx)
	if err != nil {
		s.metrics.RecordRequest(false, time.Since(started))
		return nil, err
	}

	var latestDate *time.Time
	if latest != nil {
		parsed, perr := s.clock.ParseDateKey(latest.ID)
		if perr != nil {
			// A stored document with a broken key should not take the
			// whole lookup down; treat the archive as empty and log it.
			logrus.WithFields(logrus.Fields{
				"date_key": latest.ID,
			}).Warn("Latest draw document has a malformed date key")
		} else {
			latestDate = &parsed
		}
	}

	lookup := &DrawLookup{State: s.state.Classify(requested, latestDate, false)}
	if lookup.State == models.StatePending {
		lookup.Pending = s.pendingPayload(requested, dateKey)
	}

	s.metrics.RecordRequest(true, time.Since(started))
	return lookup, nil
}

// pendingPayload resolves the countdown target for a pending date. A
// requested day that has not passed counts down to its own draw hour;
// a stale-archive gap counts down to the next scheduled draw instead.
func (s *ResultService) pendingPayload(requested time.Time, dateKey string) *models.PendingDraw {
	now := s.clock.Now()

	target := s.schedule.DrawInstantOn(requested)
	if target.Before(now) && !s.clock.SameCivilDay(requested, now) {
		target = s.schedule.NextDrawInstant(now)
	}

	return &models.PendingDraw{
		State:         models.StatePending.String(),
		RequestedDate: dateKey,
		NextDrawDate:  s.clock.DateKey(s.schedule.NextDrawDate(now)),
		TargetInstant: target,
	}
}

// GetLatest returns the newest draw in the archive.
func (s *ResultService) GetLatest(ctx context.Context) (*models.DrawResult, error) {
	started := time.Now()

	latest, err := s.latestCached(ctx)
	if err != nil {
		s.metrics.RecordRequest(false, time.Since(started))
		return nil, err
	}
	if latest == nil {
		s.metrics.RecordRequest(false, time.Since(started))
		return nil, shared.NewServiceError(shared.ErrorCategoryNotFound, "NO_DRAWS", "no draw results in the archive", "ResultService", "GetLatest", false, nil)
	}

	s.metrics.RecordRequest(true, time.Since(started))
	return latest, nil
}

// GetPast returns up to limit draws before and excluding the given date
// key, newest first.
func (s *ResultService) GetPast(ctx context.Context, dateKey string, limit int) ([]models.DrawResult, error) {
	started := time.Now()

	if _, err := s.clock.ParseDateKey(dateKey); err != nil {
		s.metrics.RecordRequest(false, time.Since(started))
		return nil, shared.WrapError(err, shared.ErrorCategoryValidation, "INVALID_DATE_KEY", "ResultService", "GetPast", false)
	}

	results, err := s.store.FindPastExcluding(ctx, dateKey, limit)
	if err != nil {
		s.metrics.RecordRequest(false, time.Since(started))
		return nil, err
	}

	s.metrics.RecordRequest(true, time.Since(started))
	return results, nil
}

// GetArchivePage returns one page of the historical archive.
func (s *ResultService) GetArchivePage(ctx context.Context, page, pageSize int) (*models.ArchivePage, error) {
	started := time.Now()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 10
	}

	cacheKey := fmt.Sprintf("archive:%d:%d", page, pageSize)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if pageData, ok := cached.(*models.ArchivePage); ok {
			s.metrics.IncrementCustomCounter("cache_hits")
			s.metrics.RecordRequest(true, time.Since(started))
			return pageData, nil
		}
	}

	results, total, err := s.store.FindPage(ctx, page, pageSize)
	if err != nil {
		s.metrics.RecordRequest(false, time.Since(started))
		return nil, err
	}

	pageData := &models.ArchivePage{
		Results:    results,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}
	s.cache.Set(cacheKey, pageData)

	s.metrics.RecordRequest(true, time.Since(started))
	return pageData, nil
}

func (s *ResultService) findByDateCached(ctx context.Context, dateKey string) (*models.DrawResult, error) {
	cacheKey := "result:" + dateKey
	if cached, ok := s.cache.Get(cacheKey); ok {
		s.metrics.IncrementCustomCounter("cache_hits")
		if result, ok := cached.(*models.DrawResult); ok {
			return result, nil
		}
	}

	result, err := s.store.FindByDateKey(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	if result != nil {
		// Absent documents are not cached: a pending draw's result
		// should appear as soon as it is ingested.
		s.cache.Set(cacheKey, result)
	}
	return result, nil
}

func (s *ResultService) latestCached(ctx context.Context) (*models.DrawResult, error) {
	if cached, ok := s.cache.Get("latest"); ok {
		s.metrics.IncrementCustomCounter("cache_hits")
		if result, ok := cached.(*models.DrawResult); ok {
			return result, nil
		}
	}

	latest, err := s.store.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		s.cache.Set("latest", latest)
	}
	return latest, nil
}
