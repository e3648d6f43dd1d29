package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/report"
	"github.com/julianstephens/clockings/internal/tui/components/chart"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDays:
		content = m.viewDays()
	case StateChart:
		content = m.viewChart()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewHeader(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHeader() string {
	s := m.result.Summary

	status := aheadStyle.Render(report.StatusIcon(s.Status()))
	if s.Status() != constants.StatusAhead {
		status = dangerStyle.Render(report.StatusIcon(s.Status()))
	}

	line := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-20s", label+":")) + value
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s %d", s.Month, s.Year)) + labelStyle.Render("  "+m.result.Filename),
		line(report.LabelWorkedDays, fmt.Sprintf("%d of %d", s.WorkedDays, s.WorkingDays)),
		line(report.LabelActualWorked, fmt.Sprintf("%s / %s expected", report.FormatDuration(s.ActualWorked), report.FormatDuration(s.ExpectedSoFar))),
		line(report.LabelDifference, fmt.Sprintf("%s %s", report.FormatDuration(s.Variance.Abs()), status)),
	}
	if s.IncompleteDays > 0 || s.NegativeDays > 0 {
		lines = append(lines, warningStyle.Render(fmt.Sprintf("%d incomplete, %d negative", s.IncompleteDays, s.NegativeDays)))
	}
	return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewDays() string {
	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.daysModel.View(),
		"",
		m.detailModel.View(),
	))
}

func (m Model) viewChart() string {
	width := m.width - 12
	height := m.height - chromeHeight - 4
	return docStyle.Render(chart.Render(m.result.Summary, width, height))
}
