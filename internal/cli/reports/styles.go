package reports

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/report"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(22)

	aheadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	owingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Summary renders the short console version of a written report.
func Summary(res report.Result, path string) string {
	s := res.Summary

	statusStyle := owingStyle
	if s.Status() == constants.StatusAhead {
		statusStyle = aheadStyle
	}
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s %d", s.Month, s.Year)),
		row(report.LabelWorkedDays, fmt.Sprintf("%d of %d", s.WorkedDays, s.WorkingDays)),
		row(report.LabelExpectedTime, report.FormatDuration(s.ExpectedSoFar)),
		row(report.LabelActualWorked, report.FormatDuration(s.ActualWorked)),
		row(report.LabelDifference, statusStyle.Render(fmt.Sprintf("%s %s", report.FormatDuration(s.Variance.Abs()), report.StatusIcon(s.Status())))),
	}
	if s.IncompleteDays > 0 {
		lines = append(lines, warningStyle.Render(fmt.Sprintf("%d incomplete day(s) not counted", s.IncompleteDays)))
	}
	if s.NegativeDays > 0 {
		lines = append(lines, warningStyle.Render(fmt.Sprintf("%d day(s) with negative worked time", s.NegativeDays)))
	}
	lines = append(lines, pathStyle.Render(path))

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n"
}
