package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/clockings/internal/report"
	"github.com/julianstephens/clockings/internal/tui/components/days"
	"github.com/julianstephens/clockings/internal/tui/components/detail"
)

type SessionState int

const (
	StateDays SessionState = iota
	StateChart
)

var tabTitles = []string{"Days", "Chart"}

// Model is the read-only viewer for one generated report.
type Model struct {
	result      report.Result
	state       SessionState
	keys        KeyMap
	help        help.Model
	daysModel   days.Model
	detailModel detail.Model
	quitting    bool
	width       int
	height      int
}

func NewModel(result report.Result) Model {
	dm := days.New(result.Summary.Days, 0, 10)
	det := detail.New(0, 0)
	if d, ok := dm.Selected(); ok {
		det.SetDay(d)
	}

	return Model{
		result:      result,
		state:       StateDays,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		daysModel:   dm,
		detailModel: det,
	}
}

// Run starts the viewer on the alternate screen and blocks until it exits.
func Run(result report.Result) error {
	p := tea.NewProgram(NewModel(result), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) State() SessionState {
	return m.state
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Chart, m.keys.Quit, m.keys.Help}
	if m.state == StateDays {
		keys = append(keys, m.keys.Up, m.keys.Down)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Chart, m.keys.Quit, m.keys.Help}
	var navigation []key.Binding
	if m.state == StateDays {
		navigation = []key.Binding{m.keys.Up, m.keys.Down}
	}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return m.daysModel.Init()
}
