package svg

import (
	"html"

	"github.com/gogpu/rose"
)

// Overlay layout, shared with the raster backend's look.
const (
	titleBaseline = 20
	panelPad      = 10
	lineHeight    = 15
	panelMargin   = 10
	detailWidth   = 220
	tooltipWidth  = 180
	statsWidth    = 230
)

var (
	panelText  = rose.Hex("#444444")
	legendText = rose.Hex("#666666")
)

func (e *encoder) overlay(ov rose.Overlay, sc rose.Scene) {
	if ov.Title != "" {
		e.printf(`<text class="title" x="%s" y="%d" font-family="%s" font-size="16" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`+"\n",
			num(sc.Width/2), titleBaseline, fontFamily, panelText.Hex(), html.EscapeString(ov.Title))
	}
	e.legend(ov.Legend)

	stats := statsLines(ov.Stats)
	h := panelHeight(len(stats))
	e.panel("stats", rose.Pt(panelMargin, sc.Height-panelMargin-h), statsWidth, stats)
	if d := ov.Detail; d != nil {
		lines := []string{d.Title, d.Occurrences, d.Share}
		for _, dc := range d.Breakdown {
			lines = append(lines, dc.Day+": "+dc.Text)
		}
		e.panel("detail", rose.Pt(panelMargin, titleBaseline+panelMargin), detailWidth, lines)
	}
	if t := ov.Tooltip; t != nil {
		e.panel("tooltip", rose.Pt(sc.Width-tooltipWidth-panelMargin, titleBaseline+panelMargin), tooltipWidth,
			[]string{t.Title, t.Body, t.Hint})
	}
}

func panelHeight(lines int) float64 {
	return float64(lines)*lineHeight + panelPad
}

// panel writes a boxed group of lines; the first line is the heading.
func (e *encoder) panel(class string, at rose.Point, width float64, lines []string) {
	if len(lines) == 0 {
		return
	}
	e.printf(`<g class="%s" transform="translate(%s,%s)">`+"\n", class, num(at.X), num(at.Y))
	e.printf(`<rect width="%s" height="%s" rx="5" fill="#ffffff" fill-opacity="0.9" stroke="#dddddd"/>`+"\n",
		num(width), num(panelHeight(len(lines))))
	for i, l := range lines {
		st := rose.TextStyle{Color: panelText, Size: 10}
		if i == 0 {
			st.Size, st.Bold = 12, true
		}
		e.text(rose.Pt(panelPad, float64(i+1)*lineHeight), l, st)
	}
	e.printf("</g>\n")
}

func (e *encoder) legend(lg rose.Legend) {
	if lg.Width <= 0 || lg.Height <= 0 {
		return
	}
	e.printf(`<g class="legend" transform="translate(%s,%s)">`+"\n", num(lg.Origin.X), num(lg.Origin.Y))
	e.printf(`<rect width="%s" height="%s" rx="5" fill="#ffffff" fill-opacity="0.9" stroke="#dddddd"/>`+"\n",
		num(lg.Width), num(lg.Height))
	e.text(rose.Pt(10, 20), lg.Title, rose.TextStyle{Color: panelText, Size: 12, Bold: true})
	y := 40.0
	for _, en := range lg.Entries {
		e.swatch(en, rose.Pt(15, y-4))
		e.text(rose.Pt(30, y), en.Label, rose.TextStyle{Color: legendText, Size: 10})
		y += 20
	}
	if lg.Footer != "" {
		e.text(rose.Pt(10, y), lg.Footer, rose.TextStyle{Color: legendText, Size: 10})
	}
	e.printf("</g>\n")
}

func (e *encoder) swatch(en rose.LegendEntry, c rose.Point) {
	switch en.Swatch {
	case rose.SwatchDot:
		e.printf(`<circle cx="%s" cy="%s" r="4" fill="%s"/>`+"\n", num(c.X), num(c.Y), en.Color.Hex())
	case rose.SwatchMeanLine:
		e.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`+"\n",
			num(c.X-10), num(c.Y), num(c.X+10), num(c.Y), en.Color.Hex())
	case rose.SwatchSquare:
		e.printf(`<rect x="%s" y="%s" width="10" height="10" fill="%s"/>`+"\n", num(c.X-5), num(c.Y-5), en.Color.Hex())
	case rose.SwatchDashed:
		e.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-dasharray="4,4"/>`+"\n",
			num(c.X-10), num(c.Y), num(c.X+10), num(c.Y), en.Color.Hex())
	}
}

func statsLines(s rose.StatsPanel) []string {
	lines := []string{"Statistics"}
	for _, r := range []struct{ k, v string }{
		{"Mean time", s.MeanTime},
		{"Concentration (R)", s.Concentration},
		{"Circular variance", s.Variance},
		{"Total events", s.Total},
		{"Peak hour", s.Peak},
		{"Peak block", s.PeakBlock},
	} {
		if r.v != "" {
			lines = append(lines, r.k+": "+r.v)
		}
	}
	return append(lines, s.Uniformity)
}
