package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/clockings/internal/tui/components/days"
)

// Rows reserved for tabs, the summary header and the help bar.
const chromeHeight = 12

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		body := max(msg.Height-chromeHeight, 4)
		m.daysModel.SetSize(msg.Width-4, body/2)
		m.detailModel.SetSize(msg.Width-4, body-body/2)
		return m, nil

	case days.SelectDayMsg:
		m.detailModel.SetDay(msg.Day)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Chart):
			if m.state == StateChart {
				m.state = StateDays
			} else {
				m.state = StateChart
			}
			return m, nil
		}
	}

	if m.state == StateDays {
		m.daysModel, cmd = m.daysModel.Update(msg)
	}
	return m, cmd
}
