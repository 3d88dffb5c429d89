package models

import "time"

// CountdownState is a broken-down time-to-draw. Hours, minutes and
// seconds are remainders within their parent unit, not totals.
type CountdownState struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// TimerResponse is the timer query surface payload. ServerInstant lets
// clients compute a clock offset and keep local ticks honest between
// resyncs.
type TimerResponse struct {
	Expired       bool           `json:"expired"`
	TimeLeft      CountdownState `json:"time_left"`
	ServerInstant time.Time      `json:"server_instant"`
	TargetInstant time.Time      `json:"target_instant"`
	IsToday       bool           `json:"is_today"`
}

// DrawState classifies a requested draw date against the archive.
type DrawState int

const (
	StateNotFound DrawState = iota
	StateAvailable
	StatePending
)

func (s DrawState) String() string {
	switch s {
	case StateAvailable:
		return "available"
	case StatePending:
		return "pending"
	default:
		return "not_found"
	}
}

// PendingDraw is the payload returned for a draw date classified as
// pending: the resolved next draw date plus the instant a countdown
// should target.
type PendingDraw struct {
	State         string    `json:"state"`
	RequestedDate string    `json:"requested_date"`
	NextDrawDate  string    `json:"next_draw_date"`
	TargetInstant time.Time `json:"target_instant"`
}
