package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/rose"
	"github.com/gogpu/rose/internal/rosetest"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
		if m.err != nil {
			t.Fatalf("render after %v: %v", msg, m.err)
		}
	}
	return m
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name  string
		msgs  []tea.Msg
		check func(t *testing.T, m model)
	}{
		{"first arrow hovers slot 0", []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}}, func(t *testing.T, m model) {
			if m.state.Hovered() != 0 {
				t.Errorf("Hovered() = %d, want 0", m.state.Hovered())
			}
		}},
		{"left wraps", []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyLeft}}, func(t *testing.T, m model) {
			if m.state.Hovered() != 23 {
				t.Errorf("Hovered() = %d, want 23", m.state.Hovered())
			}
		}},
		{"enter toggles selection", []tea.Msg{runes("l"), runes("l"), tea.KeyMsg{Type: tea.KeyEnter}}, func(t *testing.T, m model) {
			if m.state.Selected() != 1 || m.frame.Overlay.Detail == nil {
				t.Errorf("Selected() = %d, detail %v", m.state.Selected(), m.frame.Overlay.Detail)
			}
		}},
		{"esc clears selection", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc}}, func(t *testing.T, m model) {
			if m.state.Selected() != rose.NoIndex {
				t.Errorf("Selected() = %d", m.state.Selected())
			}
		}},
		{"view cycles", []tea.Msg{runes("v")}, func(t *testing.T, m model) {
			if m.state.View() != rose.ViewBlocks || m.slotCount() != 6 {
				t.Errorf("view %v with %d slots", m.state.View(), m.slotCount())
			}
		}},
		{"view wraps", []tea.Msg{runes("v"), runes("v"), runes("v")}, func(t *testing.T, m model) {
			if m.state.View() != rose.ViewHourly {
				t.Errorf("view %v", m.state.View())
			}
		}},
		{"day cycles back to all", []tea.Msg{runes("v"), runes("v"), runes("d"), runes("d"), runes("d"), runes("d")}, func(t *testing.T, m model) {
			if m.state.Day() != rose.AllDays {
				t.Errorf("Day() = %d", m.state.Day())
			}
		}},
		{"day selects", []tea.Msg{runes("v"), runes("v"), runes("d"), runes("d")}, func(t *testing.T, m model) {
			if m.frame.Overlay.Title != "Activity by Hour (2tue)" {
				t.Errorf("title %q", m.frame.Overlay.Title)
			}
		}},
		{"scheme and labels", []tea.Msg{runes("s"), runes("t")}, func(t *testing.T, m model) {
			if m.state.Scheme() != rose.SchemePurples || m.state.LabelsVisible() {
				t.Errorf("scheme %v labels %v", m.state.Scheme(), m.state.LabelsVisible())
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, send(t, newModel(rosetest.Dataset()), tt.msgs...))
		})
	}
}

func TestQuit(t *testing.T) {
	_, cmd := newModel(rosetest.Dataset()).Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

// cellOf finds a grid cell whose centre falls inside the given slot.
func cellOf(t *testing.T, m model, slot int) (int, int) {
	t.Helper()
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			if m.frame.Scene.HitTest(cellCenter(col, row)) == slot {
				return col, row
			}
		}
	}
	t.Fatalf("no cell inside slot %d", slot)
	return 0, 0
}

func TestMouse(t *testing.T) {
	m := newModel(rosetest.Dataset())
	col, row := cellOf(t, m, rosetest.PeakHour)

	m = send(t, m, tea.MouseMsg{X: col, Y: row + headerRows, Action: tea.MouseActionMotion})
	if m.state.Hovered() != rosetest.PeakHour || m.frame.Overlay.Tooltip == nil {
		t.Fatalf("hover: Hovered() = %d", m.state.Hovered())
	}

	m = send(t, m, tea.MouseMsg{X: col, Y: row + headerRows, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.state.Selected() != rosetest.PeakHour {
		t.Errorf("click: Selected() = %d", m.state.Selected())
	}

	m = send(t, m, tea.MouseMsg{X: 0, Y: headerRows, Action: tea.MouseActionMotion})
	if m.state.Hovered() != rose.NoIndex {
		t.Errorf("moving off the chart: Hovered() = %d", m.state.Hovered())
	}
}

func TestView(t *testing.T) {
	m := send(t, newModel(rosetest.Dataset()), tea.KeyMsg{Type: tea.KeyEnter})
	out := m.View()
	for _, want := range []string{"Overall Activity by Hour", "Statistics", "12am-1am Details", "q quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("view lacks %q", want)
		}
	}
	if !strings.Contains(out, wedgeGlyph) {
		t.Error("view draws no wedges")
	}
}

func TestDrawRoseSize(t *testing.T) {
	m := newModel(rosetest.Dataset())
	grid := drawRose(m.frame.Scene, gridCols, gridRows)
	if got := strings.Count(grid, "\n") + 1; got != gridRows {
		t.Errorf("grid has %d rows, want %d", got, gridRows)
	}
}
