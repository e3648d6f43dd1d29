// Package notifier raises desktop notifications for finished reports.
package notifier

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/julianstephens/clockings/internal/logger"
	"github.com/julianstephens/clockings/internal/models"
	"github.com/julianstephens/clockings/internal/report"
)

// send is replaced in tests.
var send = func(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Notify shows a desktop notification. A failure is logged and reported as
// false; it never stops the caller.
func Notify(title, body string) bool {
	if err := send(title, body); err != nil {
		logger.Warn("Failed to send desktop notification", "title", title, "error", err)
		return false
	}
	return true
}

// Message builds the notification for a written report.
func Message(filename string, s models.MonthlySummary) (string, string) {
	title := fmt.Sprintf("%s %d: %s", s.Month, s.Year, s.Status())
	body := fmt.Sprintf("%s %s over %d worked days. Saved to %s",
		report.FormatDuration(s.Variance.Abs()), s.Status(), s.WorkedDays, filename)
	if s.IncompleteDays > 0 {
		body += fmt.Sprintf(" (%d incomplete)", s.IncompleteDays)
	}
	return title, body
}

// NotifyReport is Message followed by Notify.
func NotifyReport(filename string, s models.MonthlySummary) bool {
	title, body := Message(filename, s)
	return Notify(title, body)
}
