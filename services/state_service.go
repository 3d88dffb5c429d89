package services

import (
	"time"

	"github.com/padraicob/lotto-backend/models"
)

// StateService decides whether a requested draw date should show final
// results, a countdown, or nothing. It is a pure decision function over
// three caller-supplied facts; the store lookups themselves happen in
// the results service.
type StateService struct {
	clock     *ClockService
	drawHour  int
	staleDays int
}

// NewStateService creates a StateService. staleDays is how far the
// newest stored draw may lag behind today before the archive is treated
// as stale rather than complete.
func NewStateService(clock *ClockService, drawHour, staleDays int) *StateService {
	if drawHour <= 0 || drawHour > 23 {
		drawHour = 20
	}
	if staleDays <= 0 {
		staleDays = 2
	}
	return &StateService{clock: clock, drawHour: drawHour, staleDays: staleDays}
}

// Classify applies the ordered rules:
//  1. a stored result exists for the requested date -> available
//  2. the store is empty -> not found, pending cannot be reasoned about
//  3. the requested civil day is in the future -> pending
//  4. the requested day is today and the draw hour has not passed -> pending
//  5. the newest stored draw is staleDays or more behind today and the
//     requested day is after it -> pending, assume results not yet ingested
//  6. otherwise -> not found
//
// latest is nil when the store holds no draws at all. exists is trusted
// as supplied: a physically present document reported as exists=false
// still classifies pending before the draw hour on draw day.
func (s *StateService) Classify(requested time.Time, latest *time.Time, exists bool) models.DrawState {
	if exists {
		return models.StateAvailable
	}
	if latest == nil {
		return models.StateNotFound
	}

	now := s.clock.Now()

	if s.clock.DaysBetween(now, requested) > 0 {
		return models.StatePending
	}
	if s.clock.SameCivilDay(requested, now) && now.Hour() < s.drawHour {
		return models.StatePending
	}
	if s.clock.DaysBetween(*latest, now) >= s.staleDays && s.clock.DaysBetween(*latest, requested) > 0 {
		return models.StatePending
	}

	return models.StateNotFound
}
