package days

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/models"
	"github.com/julianstephens/clockings/internal/report"
)

// SelectDayMsg is sent when the cursor moves to a different day.
type SelectDayMsg struct {
	Day models.DayLog
}

type KeyMap struct {
	Up   key.Binding
	Down key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev day"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next day"),
		),
	}
}

var columns = []table.Column{
	{Title: "Date", Width: 12},
	{Title: "Start", Width: 10},
	{Title: "End", Width: 10},
	{Title: "On Site", Width: 10},
	{Title: "Breaks", Width: 10},
	{Title: "Deducted", Width: 10},
	{Title: "Worked", Width: 10},
	{Title: "Note", Width: 12},
}

type Model struct {
	table table.Model
	keys  KeyMap
	days  []models.DayLog
}

func New(days []models.DayLog, width, height int) Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("205")).
		Background(lipgloss.Color("236")).
		Bold(true)
	t.SetStyles(s)

	m := Model{table: t, keys: DefaultKeyMap()}
	m.SetDays(days)
	return m
}

// Rows converts day logs to table rows. Invalid days only show their date.
func Rows(days []models.DayLog) []table.Row {
	rows := make([]table.Row, 0, len(days))
	for _, d := range days {
		date := d.Date.Format(constants.DateFormat)
		if !d.Valid {
			rows = append(rows, table.Row{date, "", "", "", "", "", "", "incomplete"})
			continue
		}
		note := ""
		if d.Negative() {
			note = "negative"
		}
		rows = append(rows, table.Row{
			date,
			d.FirstIncoming.Format(constants.TimeFormat),
			d.LastOutgoing.Format(constants.TimeFormat),
			report.FormatDuration(d.TotalOnSite),
			report.FormatDuration(d.TotalBreak),
			report.FormatDuration(d.Deducted),
			report.FormatDuration(d.ActualWorked),
			note,
		})
	}
	return rows
}

func (m *Model) SetDays(days []models.DayLog) {
	m.days = days
	m.table.SetRows(Rows(days))
	if m.table.Cursor() >= len(days) {
		m.table.SetCursor(0)
	}
}

// Selected returns the day under the cursor.
func (m Model) Selected() (models.DayLog, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.days) {
		return models.DayLog{}, false
	}
	return m.days[i], true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	before := m.table.Cursor()

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	if m.table.Cursor() != before {
		if d, ok := m.Selected(); ok {
			return m, tea.Batch(cmd, func() tea.Msg { return SelectDayMsg{Day: d} })
		}
	}
	return m, cmd
}

func (m Model) View() string {
	if len(m.days) == 0 {
		return "\n  No clockings for this month."
	}
	return m.table.View()
}

func (m *Model) SetSize(width, height int) {
	m.table.SetWidth(width)
	m.table.SetHeight(height)
}

func (m Model) Keys() KeyMap {
	return m.keys
}
