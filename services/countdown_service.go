package services

import (
	"time"

	"github.com/padraicob/lotto-backend/models"
)

// CountdownService computes time remaining until a draw cutoff. It is
// recomputed from absolute instants on every call so repeated polling
// cannot accumulate drift.
type CountdownService struct {
	clock          *ClockService
	drawHour       int
	forceShowGrace time.Duration
}

// NewCountdownService creates a CountdownService. forceShowGrace bounds
// how long a force-shown countdown keeps reporting zeros after its
// target passes; zero means it never auto-expires.
func NewCountdownService(clock *ClockService, drawHour int, forceShowGrace time.Duration) *CountdownService {
	if drawHour <= 0 || drawHour > 23 {
		drawHour = 20
	}
	return &CountdownService{clock: clock, drawHour: drawHour, forceShowGrace: forceShowGrace}
}

// Remaining breaks the time from now until target into days, hours,
// minutes and seconds. Hours, minutes and seconds are remainders within
// their parent unit.
//
// When the target falls on today's civil date and the draw hour has not
// passed, the countdown is anchored to today's draw cutoff instead of
// the target's own time-of-day, so a midnight-keyed target still counts
// down to the actual draw.
//
// A reached target reports expired with zeroed components unless
// forceShow is set, in which case the clamped zero breakdown is
// returned un-expired so the display can hold at zero through the
// window around the draw.
func (s *CountdownService) Remaining(target, now time.Time, forceShow bool) models.CountdownState {
	target = s.clock.ToCivil(target)
	now = s.clock.ToCivil(now)

	if s.clock.SameCivilDay(target, now) && now.Hour() < s.drawHour {
		target = s.clock.AtHour(now, s.drawHour)
	}

	diff := target.Sub(now)
	if diff <= 0 {
		if !forceShow || s.graceElapsed(target, now) {
			return models.CountdownState{Expired: true}
		}
		return models.CountdownState{}
	}

	totalSeconds := int64(diff / time.Second)
	return models.CountdownState{
		Days:    int(totalSeconds / 86400),
		Hours:   int(totalSeconds % 86400 / 3600),
		Minutes: int(totalSeconds % 3600 / 60),
		Seconds: int(totalSeconds % 60),
	}
}

func (s *CountdownService) graceElapsed(target, now time.Time) bool {
	if s.forceShowGrace <= 0 {
		return false
	}
	return now.Sub(target) > s.forceShowGrace
}

// Timer builds the full timer surface payload for the given target.
// ServerInstant carries the authoritative clock so clients can correct
// local drift between resyncs.
func (s *CountdownService) Timer(target time.Time, forceShow bool) models.TimerResponse {
	now := s.clock.Now()
	state := s.Remaining(target, now, forceShow)
	return models.TimerResponse{
		Expired:       state.Expired,
		TimeLeft:      state,
		ServerInstant: now,
		TargetInstant: s.clock.ToCivil(target),
		IsToday:       s.clock.SameCivilDay(target, now),
	}
}
