package raster

import (
	"github.com/gogpu/rose"
)

// Overlay layout.
const (
	titleBaseline = 20
	titleSize     = 16
	panelPad      = 10
	lineHeight    = 15
	panelMargin   = 10
	detailWidth   = 220
	tooltipWidth  = 180
	statsWidth    = 230
	cornerRadius  = 5
)

var (
	panelFill   = rose.White.WithAlpha(0.9)
	panelBorder = rose.Hex("#dddddd")
	panelText   = rose.Hex("#444444")
	legendText  = rose.Hex("#666666")
)

type panelLine struct {
	text string
	bold bool
	size float64
}

func (p *painter) overlay(ov rose.Overlay, sc rose.Scene) {
	if p.err != nil {
		return
	}
	if ov.Title != "" {
		p.text(ov.Title, rose.Pt(sc.Width/2, titleBaseline), rose.TextStyle{
			Color: panelText, Size: titleSize, Bold: true, Anchor: rose.AnchorMiddle,
		})
	}
	p.legend(ov.Legend)
	p.panel(rose.Pt(panelMargin, sc.Height-panelMargin), statsWidth, statsLines(ov.Stats), true)
	if d := ov.Detail; d != nil {
		p.panel(rose.Pt(panelMargin, titleBaseline+panelMargin), detailWidth, detailLines(d), false)
	}
	if t := ov.Tooltip; t != nil {
		p.panel(rose.Pt(sc.Width-tooltipWidth-panelMargin, titleBaseline+panelMargin), tooltipWidth, []panelLine{
			{text: t.Title, bold: true, size: 12},
			{text: t.Body, size: 10},
			{text: t.Hint, size: 9},
		}, false)
	}
}

// panel draws a boxed block of lines. With bottom set, at is the lower-left
// corner; otherwise it is the upper-left one.
func (p *painter) panel(at rose.Point, width float64, lines []panelLine, bottom bool) {
	if len(lines) == 0 {
		return
	}
	height := float64(len(lines))*lineHeight + panelPad
	if bottom {
		at.Y -= height
	}
	p.box(at, width, height)
	for i, l := range lines {
		p.text(l.text, rose.Pt(at.X+panelPad, at.Y+float64(i+1)*lineHeight), rose.TextStyle{
			Color: panelText, Size: l.size, Bold: l.bold,
		})
	}
}

func (p *painter) box(at rose.Point, width, height float64) {
	p.dc.DrawRoundedRectangle(at.X, at.Y, width, height, cornerRadius)
	p.paint(rose.Style{Fill: panelFill, Stroke: panelBorder, StrokeWidth: 1, Opacity: 1})
}

func (p *painter) legend(lg rose.Legend) {
	if lg.Width <= 0 || lg.Height <= 0 {
		return
	}
	o := lg.Origin
	p.box(o, lg.Width, lg.Height)
	p.text(lg.Title, rose.Pt(o.X+10, o.Y+20), rose.TextStyle{Color: panelText, Size: 12, Bold: true})

	y := o.Y + 40
	for _, e := range lg.Entries {
		p.swatch(e, rose.Pt(o.X+15, y-4))
		p.text(e.Label, rose.Pt(o.X+30, y), rose.TextStyle{Color: legendText, Size: 10})
		y += 20
	}
	if lg.Footer != "" {
		p.text(lg.Footer, rose.Pt(o.X+10, y), rose.TextStyle{Color: legendText, Size: 10})
	}
}

// swatch draws a legend marker centred on c.
func (p *painter) swatch(e rose.LegendEntry, c rose.Point) {
	switch e.Swatch {
	case rose.SwatchDot:
		p.dc.DrawCircle(c.X, c.Y, 4)
		p.paint(rose.Style{Fill: e.Color, Opacity: 1})
	case rose.SwatchMeanLine:
		p.dc.DrawLine(c.X-10, c.Y, c.X+10, c.Y)
		p.stroke(rose.Style{Stroke: e.Color, StrokeWidth: 2, Opacity: 1})
	case rose.SwatchSquare:
		p.dc.DrawRectangle(c.X-5, c.Y-5, 10, 10)
		p.paint(rose.Style{Fill: e.Color, Opacity: 1})
	case rose.SwatchDashed:
		p.dc.DrawLine(c.X-10, c.Y, c.X+10, c.Y)
		p.stroke(rose.Style{Stroke: e.Color, StrokeWidth: 1, Opacity: 1, Dash: []float64{4, 4}})
	}
}

func statsLines(s rose.StatsPanel) []panelLine {
	rows := []struct{ k, v string }{
		{"Mean time", s.MeanTime},
		{"Concentration (R)", s.Concentration},
		{"Circular variance", s.Variance},
		{"Total events", s.Total},
		{"Peak hour", s.Peak},
		{"Peak block", s.PeakBlock},
	}
	lines := []panelLine{{text: "Statistics", bold: true, size: 12}}
	for _, r := range rows {
		if r.v == "" {
			continue
		}
		lines = append(lines, panelLine{text: r.k + ": " + r.v, size: 10})
	}
	return append(lines, panelLine{text: s.Uniformity, size: 10})
}

func detailLines(d *rose.Detail) []panelLine {
	lines := []panelLine{
		{text: d.Title, bold: true, size: 12},
		{text: d.Occurrences, size: 10},
		{text: d.Share, size: 10},
	}
	for _, dc := range d.Breakdown {
		lines = append(lines, panelLine{text: dc.Day + ": " + dc.Text, size: 10})
	}
	return lines
}
