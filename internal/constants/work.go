package constants

import "time"

const (
	// DailyTarget is the expected worked time for one working day.
	DailyTarget = 7*time.Hour + 30*time.Minute

	// MandatoryDeduction is the minimum break charged against every valid day,
	// whether or not a break was clocked.
	MandatoryDeduction = 30 * time.Minute

	StatusAhead = "Ahead"
	StatusOwing = "Owing"
)
