package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/clockings/internal/classifier"
	"github.com/julianstephens/clockings/internal/report"
	"github.com/julianstephens/clockings/internal/tui/components/days"
)

const input = "2024/03/04 Mon 08:00:00\tHO Main Staff IN\n" +
	"2024/03/04 Mon 12:00:00\tCanteen Entry from Stairs\n" +
	"2024/03/04 Mon 12:30:00\tCanteen Exit to Stairs\n" +
	"2024/03/04 Mon 17:00:00\tHO Main Staff OUT\n" +
	"2024/03/05 Tue 08:00:00\tHO Main Staff IN\n" +
	"2024/03/06 Wed 08:00:00\tHO Main Staff IN\n" +
	"2024/03/06 Wed 16:00:00\tHO Main Staff OUT\n"

func testResult(t *testing.T) report.Result {
	t.Helper()
	today := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)
	res, err := report.Generate(strings.NewReader(input), classifier.Default(), 0, today)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return res
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestNewModel(t *testing.T) {
	m := NewModel(testResult(t))
	if m.State() != StateDays {
		t.Errorf("initial state = %v, want StateDays", m.State())
	}
	if m.detailModel.Day == nil || m.detailModel.Day.Date.Day() != 4 {
		t.Error("first day should be shown in the detail pane")
	}
}

func TestTabSwitching(t *testing.T) {
	m := NewModel(testResult(t))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.State() != StateChart {
		t.Errorf("after tab state = %v, want StateChart", m.State())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.State() != StateDays {
		t.Errorf("tab should wrap around, state = %v", m.State())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.State() != StateChart {
		t.Errorf("after shift+tab state = %v, want StateChart", m.State())
	}
}

func TestChartToggle(t *testing.T) {
	m := NewModel(testResult(t))
	m, _ = update(t, m, keyRune('c'))
	if m.State() != StateChart {
		t.Fatalf("c should open the chart")
	}
	m, _ = update(t, m, keyRune('c'))
	if m.State() != StateDays {
		t.Errorf("c should close the chart")
	}
}

func TestHelpToggle(t *testing.T) {
	m := NewModel(testResult(t))
	m, _ = update(t, m, keyRune('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(testResult(t))
	m, cmd := update(t, m, keyRune('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSelectingDayUpdatesDetail(t *testing.T) {
	m := NewModel(testResult(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if cmd == nil {
		t.Fatal("moving the cursor should emit a command")
	}

	var selected *days.SelectDayMsg
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if s, ok := c().(days.SelectDayMsg); ok {
				selected = &s
			}
		}
	} else if s, ok := msg.(days.SelectDayMsg); ok {
		selected = &s
	}
	if selected == nil {
		t.Fatal("no SelectDayMsg emitted")
	}
	if selected.Day.Date.Day() != 5 {
		t.Errorf("selected day = %v, want March 5", selected.Day.Date)
	}

	m, _ = update(t, m, *selected)
	if m.detailModel.Day == nil || m.detailModel.Day.Date.Day() != 5 {
		t.Error("detail pane should show March 5")
	}
}

func TestView(t *testing.T) {
	m := NewModel(testResult(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	for _, want := range []string{"Days", "Chart", "March 2024", "March - 2024.txt", "2024-03-04", "incomplete"} {
		if !strings.Contains(view, want) {
			t.Errorf("days view missing %q", want)
		}
	}

	m, _ = update(t, m, keyRune('c'))
	if view := m.View(); !strings.Contains(view, "Hours worked per day") {
		t.Error("chart view missing caption")
	}
}
