package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/rose"
)

// The chart grid. A terminal cell is about twice as tall as it is wide,
// so the chart canvas is twice as tall in units as the grid is in rows.
const (
	gridCols   = 64
	gridRows   = 32
	gridMargin = 2
	headerRows = 2 // title and blank line above the grid
)

var viewCycle = []rose.ViewKind{rose.ViewHourly, rose.ViewBlocks, rose.ViewDaily}

type model struct {
	ds     *rose.Dataset
	chart  *rose.Chart
	state  rose.State
	frame  rose.Frame
	err    error
	cursor int // keyboard slot cursor
}

func newModel(ds *rose.Dataset) model {
	m := model{
		ds:    ds,
		chart: rose.New(gridCols, 2*gridRows, rose.WithMargin(gridMargin)),
		state: rose.NewState(),
	}
	m.render()
	return m
}

func (m *model) render() {
	m.frame, m.err = m.chart.Render(m.ds, m.state)
}

func (m *model) apply(ev rose.Event) {
	m.state.Apply(ev)
	m.render()
}

func (m model) slotCount() int {
	return len(m.frame.View.Slots)
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Prev):
		m.moveCursor(-1)
	case key.Matches(msg, keys.Next):
		m.moveCursor(1)
	case key.Matches(msg, keys.Select):
		m.apply(rose.ClickEvent{Index: m.cursor})
	case key.Matches(msg, keys.Clear):
		if sel := m.state.Selected(); sel != rose.NoIndex {
			m.apply(rose.ClickEvent{Index: sel})
		}
	case key.Matches(msg, keys.View):
		m.apply(rose.SetViewEvent{View: nextView(m.state.View())})
		m.cursor = 0
	case key.Matches(msg, keys.Day):
		m.apply(rose.SetDayEvent{Day: m.nextDay()})
		m.cursor = 0
	case key.Matches(msg, keys.Scheme):
		m.apply(rose.SetSchemeEvent{Scheme: nextScheme(m.state.Scheme())})
	case key.Matches(msg, keys.Labels):
		m.apply(rose.ToggleLabelsEvent{})
	}
	return m, nil
}

func (m *model) moveCursor(delta int) {
	n := m.slotCount()
	if n == 0 {
		return
	}
	if m.state.Hovered() != rose.NoIndex {
		m.cursor = ((m.cursor+delta)%n + n) % n
	}
	m.apply(rose.HoverEvent{Index: m.cursor})
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	p := cellCenter(msg.X, msg.Y-headerRows)
	slot := m.frame.Scene.HitTest(p)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if slot != rose.NoIndex {
			m.cursor = slot
			m.apply(rose.ClickEvent{Index: slot})
		}
	case msg.Action == tea.MouseActionMotion:
		if slot != m.state.Hovered() {
			if slot != rose.NoIndex {
				m.cursor = slot
			}
			m.apply(rose.HoverEvent{Index: slot})
		}
	}
}

// nextDay cycles All days, day 0, day 1, ... and back.
func (m model) nextDay() rose.DayFilter {
	d := m.state.Day() + 1
	if int(d) >= len(m.ds.Days) {
		return rose.AllDays
	}
	return d
}

func nextView(k rose.ViewKind) rose.ViewKind {
	for i, v := range viewCycle {
		if v == k {
			return viewCycle[(i+1)%len(viewCycle)]
		}
	}
	return rose.ViewHourly
}

func nextScheme(s rose.Scheme) rose.Scheme {
	for i, v := range rose.Schemes {
		if v == s {
			return rose.Schemes[(i+1)%len(rose.Schemes)]
		}
	}
	return rose.SchemeBlues
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#444444"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#dddddd")).
			Padding(0, 1).
			Width(36)
	headStyle = lipgloss.NewStyle().Bold(true)
)

// View implements tea.Model.
func (m model) View() string {
	if m.err != nil {
		return errorStyle.Render("error: "+m.err.Error()) + "\n" + helpView()
	}
	ov := m.frame.Overlay

	var b strings.Builder
	b.WriteString(titleStyle.Render(ov.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		drawRose(m.frame.Scene, gridCols, gridRows),
		"  ",
		m.sidePanels(ov),
	))
	b.WriteString("\n")
	b.WriteString(helpView())
	return b.String()
}

func (m model) sidePanels(ov rose.Overlay) string {
	var panels []string

	s := ov.Stats
	panels = append(panels, panelStyle.Render(strings.Join([]string{
		headStyle.Render("Statistics"),
		"Mean time: " + s.MeanTime,
		"Concentration (R): " + s.Concentration,
		"Circular variance: " + s.Variance,
		"Total: " + s.Total,
		"Peak hour: " + s.Peak,
		"Peak block: " + s.PeakBlock,
		s.Uniformity,
	}, "\n")))

	if t := ov.Tooltip; t != nil {
		panels = append(panels, panelStyle.Render(strings.Join([]string{
			headStyle.Render(t.Title), t.Body, helpStyle.Render(t.Hint),
		}, "\n")))
	}
	if d := ov.Detail; d != nil {
		lines := []string{headStyle.Render(d.Title), d.Occurrences, d.Share}
		for _, dc := range d.Breakdown {
			lines = append(lines, dc.Day+": "+dc.Text)
		}
		panels = append(panels, panelStyle.Render(strings.Join(lines, "\n")))
	}

	lg := ov.Legend
	mode := "view: " + m.state.View().String() + "  scheme: " + m.state.Scheme().String()
	panels = append(panels, helpStyle.Render(mode+"  "+lg.Footer))
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func helpView() string {
	parts := make([]string, len(helpBindings))
	for i, b := range helpBindings {
		h := b.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
