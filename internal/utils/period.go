package utils

import (
	"fmt"
	"time"
)

// The report and the extractor both close a month on the 1st of the next one:
// run on the 1st, they target the whole previous month, otherwise the
// current month so far.

// ReportingPeriod returns the month a report generated on today belongs to.
func ReportingPeriod(today time.Time) (int, time.Month) {
	first := FirstOfMonth(today)
	if today.Day() == 1 {
		prev := first.AddDate(0, -1, 0)
		return prev.Year(), prev.Month()
	}
	return first.Year(), first.Month()
}

// ExtractionRange returns the inclusive date range of clockings to keep when
// extracting on today: the whole previous month on the 1st, otherwise the
// 1st of the current month through yesterday.
func ExtractionRange(today time.Time) (time.Time, time.Time) {
	first := FirstOfMonth(today)
	if today.Day() == 1 {
		end := first.AddDate(0, 0, -1)
		return FirstOfMonth(end), end
	}
	return first, DateOnly(today).AddDate(0, 0, -1)
}

// ReportFilename is the output file name for a reporting period, e.g. "March - 2024.txt".
func ReportFilename(year int, month time.Month, ext string) string {
	return fmt.Sprintf("%s - %d%s", month, year, ext)
}
