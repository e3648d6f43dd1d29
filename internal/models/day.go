package models

import "time"

// DayLog holds one calendar day's events and the worked time derived from them.
// Only valid days carry meaningful durations.
type DayLog struct {
	Date          time.Time     `json:"date"`
	Events        []ClockEvent  `json:"events"`
	FirstIncoming time.Time     `json:"first_incoming"`
	LastOutgoing  time.Time     `json:"last_outgoing"`
	TotalOnSite   time.Duration `json:"total_on_site"`
	TotalBreak    time.Duration `json:"total_break"`
	Deducted      time.Duration `json:"deducted"`
	ActualWorked  time.Duration `json:"actual_worked"`
	Valid         bool          `json:"valid"`
}

// Negative reports whether a valid day ended up with less than zero worked time,
// which happens when the time on site is shorter than the deduction.
func (d DayLog) Negative() bool {
	return d.Valid && d.ActualWorked < 0
}
