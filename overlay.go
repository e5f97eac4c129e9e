package rose

import (
	"fmt"
	"sort"
)

// Overlay is the auxiliary content drawn over or beside the scene.
type Overlay struct {
	Title   string
	Legend  Legend
	Tooltip *Tooltip // nil unless a slot is hovered
	Detail  *Detail  // nil unless a slot is selected
	Stats   StatsPanel
}

// LegendSwatch is the marker drawn next to a legend entry.
type LegendSwatch uint8

const (
	SwatchDot LegendSwatch = iota
	SwatchMeanLine
	SwatchSquare
	SwatchDashed
)

// LegendEntry is one row of the legend.
type LegendEntry struct {
	Swatch LegendSwatch
	Color  RGBA
	Label  string
}

// Legend is the boxed key in the lower-right corner of the chart.
type Legend struct {
	Origin  Point
	Width   float64
	Height  float64
	Title   string
	Entries []LegendEntry
	Footer  string
}

// Tooltip describes the hovered slot.
type Tooltip struct {
	Index int
	Title string
	Body  string
	Hint  string
}

// Detail describes the selected slot.
type Detail struct {
	Index       int
	Title       string
	Count       uint
	Occurrences string
	Share       string

	// Breakdown lists the same hour on every day. Only the hourly view
	// fills it.
	Breakdown []DayCount
}

// DayCount is the count of one day for the selected hour.
type DayCount struct {
	Day   string
	Count uint
	Text  string
}

// StatsPanel summarizes the active view.
type StatsPanel struct {
	MeanTime      string
	Concentration string
	Variance      string
	Total         string
	Peak          string
	PeakBlock     string
	Uniformity    string
}

// Legend geometry.
const (
	legendWidth   = 100
	legendHeight  = 130
	legendMarginX = 110
	legendMarginY = 140
)

// significance is the p-value below which uniformity is rejected.
const significance = 0.05

type overlayComposer struct {
	ds    *Dataset
	view  View
	state State
	num   numberPrinter
}

func (c overlayComposer) compose(width, height float64) Overlay {
	return Overlay{
		Title:   c.view.Title,
		Legend:  c.legend(width, height),
		Tooltip: c.tooltip(),
		Detail:  c.detail(),
		Stats:   c.statsPanel(),
	}
}

func (c overlayComposer) legend(width, height float64) Legend {
	selected := "Selected hour"
	if c.view.Mode.Kind == ViewBlocks {
		selected = "Selected block"
	}
	return Legend{
		Origin: Pt(width-legendMarginX, height-legendMarginY),
		Width:  legendWidth,
		Height: legendHeight,
		Title:  "Legend",
		Entries: []LegendEntry{
			{Swatch: SwatchDot, Color: wedgeStroke, Label: "Data point"},
			{Swatch: SwatchMeanLine, Color: meanColor, Label: "Mean direction"},
			{Swatch: SwatchSquare, Color: c.state.Scheme().Highlight(), Label: selected},
			{Swatch: SwatchDashed, Color: gridStroke, Label: "Count levels"},
		},
		Footer: fmt.Sprintf("R=%.2f", c.view.Stats.Concentration),
	}
}

// slot returns the slot at index i, or false when i is out of range.
func (c overlayComposer) slot(i int) (TimeSlot, bool) {
	if i < 0 || i >= len(c.view.Slots) {
		return TimeSlot{}, false
	}
	return c.view.Slots[i], true
}

func (c overlayComposer) tooltip() *Tooltip {
	s, ok := c.slot(c.state.Hovered())
	if !ok {
		return nil
	}
	body := c.num.occurrences(s.Count)
	if s.Percentage != nil {
		body += " (" + formatPercent(*s.Percentage) + "%)"
	}
	return &Tooltip{
		Index: c.state.Hovered(),
		Title: s.Label,
		Body:  body,
		Hint:  "Click for details",
	}
}

func (c overlayComposer) detail() *Detail {
	i := c.state.Selected()
	s, ok := c.slot(i)
	if !ok {
		return nil
	}
	var share float64
	if c.view.Stats.Total > 0 {
		share = float64(s.Count) / float64(c.view.Stats.Total) * 100
	}
	d := &Detail{
		Index:       i,
		Title:       s.Label + " Details",
		Count:       s.Count,
		Occurrences: "Total occurrences: " + c.num.count(s.Count),
		Share:       fmt.Sprintf("This represents %.1f%% of all activity", share),
	}
	if c.view.Mode.Kind == ViewHourly {
		d.Breakdown = c.breakdown(s.Hour)
	}
	return d
}

// breakdown finds the slot at the same hour on each day; days without one
// report zero.
func (c overlayComposer) breakdown(hour float64) []DayCount {
	out := make([]DayCount, len(c.ds.Days))
	for i, day := range c.ds.Days {
		var n uint
		for _, s := range day.Hourly {
			if s.Hour == hour {
				n = s.Count
				break
			}
		}
		out[i] = DayCount{Day: day.Label, Count: n, Text: c.num.occurrences(n)}
	}
	return out
}

func (c overlayComposer) statsPanel() StatsPanel {
	st := c.view.Stats
	p := StatsPanel{
		MeanTime:      FormatClock(st.MeanTimeHour),
		Concentration: fmt.Sprintf("%.3f", st.Concentration),
		Variance:      fmt.Sprintf("%.3f", st.Variance),
		Total:         c.num.count(st.Total),
		Uniformity:    uniformityVerdict(c.ds.Analysis),
	}
	if peaks := hourlyPeaks(c.ds.Hourly, 1); len(peaks) > 0 {
		p.Peak = fmt.Sprintf("%s (%s)", peaks[0].Label, c.num.count(peaks[0].Count))
	}
	if b, ok := peakBlock(c.ds.Blocks); ok {
		p.PeakBlock = b.Label
	}
	return p
}

func uniformityVerdict(a Analysis) string {
	if !a.HasTests() {
		return "Not tested"
	}
	if a.Rayleigh.PValue < significance {
		return "Non-uniform distribution (p < 0.05)"
	}
	return "Uniform distribution"
}

// HasTests reports whether the upstream source supplied uniformity tests.
func (a Analysis) HasTests() bool {
	return a.Rayleigh != (RayleighTest{}) || a.HodgesAjne != (HodgesAjneTest{})
}

// hourlyPeaks returns the n busiest hourly slots, busiest first. Ties keep
// clock order.
func hourlyPeaks(hourly []TimeSlot, n int) []TimeSlot {
	sorted := make([]TimeSlot, len(hourly))
	copy(sorted, hourly)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func peakBlock(blocks []Block) (Block, bool) {
	if len(blocks) == 0 {
		return Block{}, false
	}
	best := blocks[0]
	for _, b := range blocks[1:] {
		if b.Count > best.Count {
			best = b
		}
	}
	return best, true
}
