// Package svg writes rose chart frames as standalone SVG documents. The
// scene is emitted inside a group translated to the chart centre, one
// nested group per layer, so the output mirrors the structure of the
// interactive chart.
package svg

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/rose"
)

const fontFamily = "sans-serif"

// Encode writes f to w as an SVG document.
func Encode(w io.Writer, f rose.Frame) error {
	bw := bufio.NewWriter(w)
	enc := encoder{w: bw}
	enc.frame(f)
	if enc.err != nil {
		return fmt.Errorf("svg: %w", enc.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	return nil
}

// String returns f as an SVG document.
func String(f rose.Frame) string {
	var b strings.Builder
	_ = Encode(&b, f) // strings.Builder never fails
	return b.String()
}

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *encoder) frame(f rose.Frame) {
	sc := f.Scene
	e.printf(`<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	e.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(sc.Width), num(sc.Height), num(sc.Width), num(sc.Height))
	e.printf(`<rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")

	e.printf(`<g class="chart" transform="translate(%s,%s)">`+"\n", num(sc.Center.X), num(sc.Center.Y))
	open := false
	var layer rose.Layer
	for _, it := range sc.Items {
		if tag := rose.TagOf(it); !open || tag.Layer != layer {
			if open {
				e.printf("</g>\n")
			}
			layer, open = tag.Layer, true
			e.printf(`<g class="%s">`+"\n", layer)
		}
		e.item(it)
	}
	if open {
		e.printf("</g>\n")
	}
	e.printf("</g>\n")

	e.overlay(f.Overlay, sc)
	e.printf("</svg>\n")
}

func (e *encoder) item(it rose.Item) {
	switch v := it.(type) {
	case rose.WedgeItem:
		e.printf(`<path class="segment" data-slot="%d" d="%s"%s/>`+"\n", v.Slot, v.Path.SVG(), paint(v.Style))
	case rose.CircleItem:
		e.printf(`<circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
			num(v.Center.X), num(v.Center.Y), num(v.Radius), paint(v.Style))
	case rose.LineItem:
		e.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
			num(v.From.X), num(v.From.Y), num(v.To.X), num(v.To.Y), paint(v.Style))
	case rose.TextItem:
		e.text(v.At, v.Text, v.Style)
	}
}

func (e *encoder) text(at rose.Point, s string, st rose.TextStyle) {
	var attrs strings.Builder
	if st.Anchor == rose.AnchorMiddle {
		attrs.WriteString(` text-anchor="middle"`)
	}
	if st.Bold {
		attrs.WriteString(` font-weight="bold"`)
	}
	e.printf(`<text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s"%s>%s</text>`+"\n",
		num(at.X), num(at.Y), fontFamily, num(st.Size), st.Color.Hex(), attrs.String(), html.EscapeString(s))
}

// paint renders the fill and stroke attributes of a style.
func paint(st rose.Style) string {
	var b strings.Builder
	if st.Fill.A > 0 {
		fmt.Fprintf(&b, ` fill="%s"`, st.Fill.Hex())
		if a := st.Fill.A * st.Opacity; a < 1 {
			fmt.Fprintf(&b, ` fill-opacity="%s"`, num(a))
		}
	} else {
		b.WriteString(` fill="none"`)
	}
	if st.StrokeWidth > 0 && st.Stroke.A > 0 {
		fmt.Fprintf(&b, ` stroke="%s" stroke-width="%s"`, st.Stroke.Hex(), num(st.StrokeWidth))
		if a := st.Stroke.A * st.Opacity; a < 1 {
			fmt.Fprintf(&b, ` stroke-opacity="%s"`, num(a))
		}
		if len(st.Dash) > 0 {
			parts := make([]string, len(st.Dash))
			for i, d := range st.Dash {
				parts[i] = num(d)
			}
			fmt.Fprintf(&b, ` stroke-dasharray="%s"`, strings.Join(parts, ","))
		}
	}
	return b.String()
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
