package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/rose"
)

const (
	wedgeGlyph = "█"
	ringGlyph  = "·"
	meanGlyph  = "•"
	hubGlyph   = "+"
)

var (
	ringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#dddddd"))
	meanStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4081"))
	hubStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#667eea")).Bold(true)
)

// cellCenter maps a grid cell to the chart canvas point at its centre.
func cellCenter(col, row int) rose.Point {
	return rose.Pt(float64(col)+0.5, 2*float64(row)+1)
}

// drawRose rasterizes the scene onto a character grid: wedges by hit
// testing each cell, grid rings and the mean direction as dots.
func drawRose(sc rose.Scene, cols, rows int) string {
	wedgeStyles := map[int]lipgloss.Style{}
	var rings []float64
	var meanTip *rose.Point
	for _, it := range sc.Items {
		switch v := it.(type) {
		case rose.WedgeItem:
			st := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Style.Fill.Hex()))
			if v.Style.Opacity < 0.9 {
				st = st.Faint(true)
			}
			wedgeStyles[v.Slot] = st
		case rose.CircleItem:
			if v.Layer == rose.LayerAxis {
				rings = append(rings, v.Radius)
			}
		case rose.LineItem:
			if v.Layer == rose.LayerMean {
				tip := v.To
				meanTip = &tip
			}
		}
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			p := cellCenter(col, row)
			local := p.Sub(sc.Center)
			switch {
			case local.Length() < 1:
				b.WriteString(hubStyle.Render(hubGlyph))
			case meanTip != nil && onSegment(local, *meanTip):
				b.WriteString(meanStyle.Render(meanGlyph))
			default:
				if slot := sc.HitTest(p); slot != rose.NoIndex {
					b.WriteString(wedgeStyles[slot].Render(wedgeGlyph))
				} else if onRing(local.Length(), rings) {
					b.WriteString(ringStyle.Render(ringGlyph))
				} else {
					b.WriteByte(' ')
				}
			}
		}
	}
	return b.String()
}

func onRing(d float64, rings []float64) bool {
	for _, r := range rings {
		if math.Abs(d-r) < 0.6 {
			return true
		}
	}
	return false
}

// onSegment reports whether p lies within a cell of the segment from the
// centre to tip.
func onSegment(p, tip rose.Point) bool {
	l := tip.Length()
	if l == 0 {
		return false
	}
	t := (p.X*tip.X + p.Y*tip.Y) / (l * l)
	if t < 0 || t > 1 {
		return false
	}
	closest := rose.Pt(tip.X*t, tip.Y*t)
	return math.Abs(p.X-closest.X) < 0.5 && math.Abs(p.Y-closest.Y) < 1
}
