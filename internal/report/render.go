package report

import (
	"fmt"
	"strings"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/models"
)

// Summary field labels, shared with the spreadsheet export.
const (
	LabelMonth            = "Month"
	LabelWorkingDays      = "Working Days"
	LabelTargetPerDay     = "Target per Day"
	LabelMonthlyTarget    = "Monthly Target"
	LabelWorkedDays       = "Worked Days Logged"
	LabelExpectedTime     = "Expected Time"
	LabelTotalOnSite      = "Total Time on Site"
	LabelExpectedDeducted = "Expected Deducted Time"
	LabelTotalDeducted    = "Total Deducted Time"
	LabelActualWorked     = "Actual Time Worked"
	LabelDifference       = "Difference"
	LabelIncompleteDays   = "Incomplete Days"
	LabelNegativeDays     = "Negative Days"
)

const labelWidth = 24

// StatusIcon decorates a summary status for display.
func StatusIcon(status string) string {
	if status == constants.StatusAhead {
		return "🟢 " + status
	}
	return "🔴 " + status
}

// Render produces the text report: the monthly summary followed by one block
// per day in ascending date order. The output depends only on s.
func Render(s models.MonthlySummary) string {
	var b strings.Builder

	b.WriteString("📅 Monthly Work Target Summary\n")
	field(&b, LabelMonth, fmt.Sprintf("%s %d", s.Month, s.Year))
	field(&b, LabelWorkingDays, fmt.Sprintf("%d", s.WorkingDays))
	field(&b, LabelTargetPerDay, FormatDuration(s.DailyTarget))
	field(&b, LabelMonthlyTarget, FormatDuration(s.MonthlyTarget))
	b.WriteString("\n")

	b.WriteString("📊 Progress Summary (So Far)\n")
	field(&b, LabelWorkedDays, fmt.Sprintf("%d", s.WorkedDays))
	field(&b, LabelExpectedTime, FormatDuration(s.ExpectedSoFar))
	field(&b, LabelTotalOnSite, FormatDuration(s.TotalOnSite))
	field(&b, LabelExpectedDeducted, FormatDuration(s.ExpectedDeducted))
	field(&b, LabelTotalDeducted, FormatDuration(s.TotalDeducted))
	field(&b, LabelActualWorked, FormatDuration(s.ActualWorked))
	field(&b, LabelDifference, fmt.Sprintf("%s %s", FormatDuration(s.Variance.Abs()), StatusIcon(s.Status())))
	field(&b, LabelIncompleteDays, fmt.Sprintf("%d", s.IncompleteDays))
	if s.NegativeDays > 0 {
		field(&b, LabelNegativeDays, fmt.Sprintf("%d ⚠️  included in totals", s.NegativeDays))
	}
	b.WriteString("\n")

	for _, d := range s.Days {
		b.WriteString(RenderDay(d))
	}
	return b.String()
}

// RenderDay produces the log block for a single day.
func RenderDay(d models.DayLog) string {
	date := d.Date.Format(constants.DateFormat)
	if !d.Valid {
		return fmt.Sprintf("%s: Incomplete or invalid data\n\n", date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", date)
	fmt.Fprintf(&b, "  ⏱️  Start Time:         %s\n", d.FirstIncoming.Format(constants.TimeFormat))
	fmt.Fprintf(&b, "  🛑  End Time:           %s\n", d.LastOutgoing.Format(constants.TimeFormat))
	fmt.Fprintf(&b, "  🕒  Total Time On Site: %s\n", FormatDuration(d.TotalOnSite))
	fmt.Fprintf(&b, "  🧘  Breaks Taken:       %s\n", FormatDuration(d.TotalBreak))
	fmt.Fprintf(&b, "  ⛔  Deducted Time:      %s\n", FormatDuration(d.Deducted))
	fmt.Fprintf(&b, "  ✅  Actual Worked Time: %s\n", FormatDuration(d.ActualWorked))
	if d.Negative() {
		b.WriteString("  ⚠️  Negative worked time: time on site is shorter than the mandatory deduction\n")
	}
	b.WriteString("\n")
	return b.String()
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-*s%s\n", labelWidth, label+":", value)
}
