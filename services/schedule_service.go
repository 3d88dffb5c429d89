package services

import "time"

// ScheduleService computes the next scheduled draw date. Draws happen
// every Wednesday and Saturday at the configured hour, civil time.
type ScheduleService struct {
	clock    *ClockService
	drawHour int
}

// NewScheduleService creates a ScheduleService over the given clock.
func NewScheduleService(clock *ClockService, drawHour int) *ScheduleService {
	if drawHour <= 0 || drawHour > 23 {
		drawHour = 20
	}
	return &ScheduleService{clock: clock, drawHour: drawHour}
}

// NextDrawDate returns the next draw date strictly after the given
// date's civil day. Time-of-day is ignored.
//
// From a Wednesday the next draw is the coming Saturday. From a
// Saturday the search starts one day later so it lands on next week's
// Wednesday and can never degenerate to the Saturday itself. From any
// other day it is whichever of the next Wednesday or Saturday comes
// first.
func (s *ScheduleService) NextDrawDate(from time.Time) time.Time {
	day := s.clock.CivilMidnight(from)

	switch day.Weekday() {
	case time.Wednesday:
		return day.AddDate(0, 0, 3)
	case time.Saturday:
		day = day.AddDate(0, 0, 1)
		for day.Weekday() != time.Wednesday {
			day = day.AddDate(0, 0, 1)
		}
		return day
	default:
		day = day.AddDate(0, 0, 1)
		for day.Weekday() != time.Wednesday && day.Weekday() != time.Saturday {
			day = day.AddDate(0, 0, 1)
		}
		return day
	}
}

// NextDrawInstant returns the draw cutoff instant (civil draw hour) of
// the next draw date after from.
func (s *ScheduleService) NextDrawInstant(from time.Time) time.Time {
	return s.clock.AtHour(s.NextDrawDate(from), s.drawHour)
}

// DrawInstantOn returns the draw cutoff instant on the given date's
// civil day, regardless of whether that day is a scheduled draw day.
func (s *ScheduleService) DrawInstantOn(date time.Time) time.Time {
	return s.clock.AtHour(date, s.drawHour)
}

// IsDrawDay reports whether the given date's civil day is a scheduled
// draw day.
func (s *ScheduleService) IsDrawDay(date time.Time) bool {
	wd := s.clock.ToCivil(date).Weekday()
	return wd == time.Wednesday || wd == time.Saturday
}
