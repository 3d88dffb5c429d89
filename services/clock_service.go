package services

import (
	"fmt"
	"math"
	"time"

	"github.com/padraicob/lotto-backend/models"
)

// DateKeyLayout is the canonical draw date key format. The same string
// is the store primary key and appears in URLs, so parsing a key and
// reformatting it must reproduce it exactly.
const DateKeyLayout = "2006-01-02"

// ClockService produces "now" and converts arbitrary instants into the
// fixed civil timezone the draw schedule is defined in. Every date
// comparison in the system goes through this service; raw UTC instants
// are never compared directly because draw cutoffs are wall-clock times.
type ClockService struct {
	location *time.Location
	now      func() time.Time // injectable for tests
}

// NewClockService resolves the civil timezone. An unresolvable timezone
// is a configuration error; the caller should refuse to start.
func NewClockService(timezone string) (*ClockService, error) {
	if timezone == "" {
		timezone = "Europe/Dublin"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &ClockService{location: loc, now: time.Now}, nil
}

// NewClockServiceAt returns a clock pinned to a fixed instant, for tests.
func NewClockServiceAt(timezone string, at time.Time) (*ClockService, error) {
	clock, err := NewClockService(timezone)
	if err != nil {
		return nil, err
	}
	clock.now = func() time.Time { return at }
	return clock, nil
}

// Location returns the civil timezone.
func (c *ClockService) Location() *time.Location {
	return c.location
}

// Now returns the current instant in the civil timezone.
func (c *ClockService) Now() time.Time {
	return c.ToCivil(c.now())
}

// ToCivil converts any instant into the civil timezone.
func (c *ClockService) ToCivil(t time.Time) time.Time {
	return t.In(c.location)
}

// DateKey formats an instant's civil calendar date as yyyy-MM-dd.
func (c *ClockService) DateKey(t time.Time) string {
	return c.ToCivil(t).Format(DateKeyLayout)
}

// ParseDateKey parses a yyyy-MM-dd key into civil midnight of that date.
func (c *ClockService) ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", models.ErrInvalidDateKey, key)
	}
	// Reject inputs the layout parses but does not round-trip, like
	// "2024-1-2" zero-padding variants.
	if t.Format(DateKeyLayout) != key {
		return time.Time{}, fmt.Errorf("%w: %q", models.ErrInvalidDateKey, key)
	}
	return t, nil
}

// CivilMidnight truncates an instant to civil midnight of its date.
func (c *ClockService) CivilMidnight(t time.Time) time.Time {
	ct := c.ToCivil(t)
	return time.Date(ct.Year(), ct.Month(), ct.Day(), 0, 0, 0, 0, c.location)
}

// SameCivilDay reports whether two instants fall on the same civil date.
func (c *ClockService) SameCivilDay(a, b time.Time) bool {
	ca, cb := c.ToCivil(a), c.ToCivil(b)
	return ca.Year() == cb.Year() && ca.YearDay() == cb.YearDay()
}

// DaysBetween returns the number of whole civil days from a to b,
// negative when b precedes a. Rounding absorbs the 23h/25h days around
// DST transitions.
func (c *ClockService) DaysBetween(a, b time.Time) int {
	ma, mb := c.CivilMidnight(a), c.CivilMidnight(b)
	return int(math.Round(mb.Sub(ma).Hours() / 24))
}

// AtHour returns the instant at the given civil hour on t's civil date.
func (c *ClockService) AtHour(t time.Time, hour int) time.Time {
	ct := c.ToCivil(t)
	return time.Date(ct.Year(), ct.Month(), ct.Day(), hour, 0, 0, 0, c.location)
}
