package models

import (
	"time"

	"github.com/julianstephens/clockings/internal/constants"
)

// MonthlySummary aggregates the valid days of one month against the monthly target.
type MonthlySummary struct {
	Year             int           `json:"year"`
	Month            time.Month    `json:"month"`
	Leave            int           `json:"leave"`
	WorkingDays      int           `json:"working_days"`
	DailyTarget      time.Duration `json:"daily_target"`
	MonthlyTarget    time.Duration `json:"monthly_target"`
	WorkedDays       int           `json:"worked_days"`
	ExpectedSoFar    time.Duration `json:"expected_so_far"`
	ExpectedDeducted time.Duration `json:"expected_deducted"`
	TotalOnSite      time.Duration `json:"total_on_site"`
	TotalDeducted    time.Duration `json:"total_deducted"`
	ActualWorked     time.Duration `json:"actual_worked"`
	Variance         time.Duration `json:"variance"`
	IncompleteDays   int           `json:"incomplete_days"`
	NegativeDays     int           `json:"negative_days"`
	Days             []DayLog      `json:"days"`
}

// Status is "Ahead" when more time was worked than expected so far, otherwise "Owing".
func (s MonthlySummary) Status() string {
	if s.Variance > 0 {
		return constants.StatusAhead
	}
	return constants.StatusOwing
}

// ValidDays returns the days that count towards the monthly totals.
func (s MonthlySummary) ValidDays() []DayLog {
	var days []DayLog
	for _, d := range s.Days {
		if d.Valid {
			days = append(days, d)
		}
	}
	return days
}
