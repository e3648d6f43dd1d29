package detail

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/models"
	"github.com/julianstephens/clockings/internal/report"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)

	directionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Width(10)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)
)

// Model shows the log block and the raw swipes of one day.
type Model struct {
	viewport viewport.Model
	Day      *models.DayLog
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Day == nil {
		return "No day selected."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetDay(day models.DayLog) {
	m.Day = &day
	m.Render()
}

func (m *Model) Render() {
	if m.Day == nil {
		m.viewport.SetContent("No day selected.")
		return
	}

	var b strings.Builder
	b.WriteString(report.RenderDay(*m.Day))
	for _, e := range m.Day.Events {
		b.WriteString(timeStyle.Render(e.Timestamp.Format(constants.TimeFormat)))
		b.WriteString(directionStyle.Render(e.Direction.String()))
		b.WriteString(descriptionStyle.Render(e.Description))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}
