// Package raster draws rose chart frames into images with gogpu/gg and
// encodes them as PNG.
//
// Usage:
//
//	r, err := raster.NewRenderer()
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//	err = r.WritePNG(w, frame)
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/rose"
)

// Renderer rasterizes frames. It owns the label fonts; a Renderer is not
// safe for concurrent use.
type Renderer struct {
	fonts *fontSet
}

// NewRenderer loads the label fonts and returns a Renderer.
func NewRenderer() (*Renderer, error) {
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: fonts}, nil
}

// Close releases the fonts.
func (r *Renderer) Close() error {
	return r.fonts.close()
}

// Render draws the frame and returns the resulting image.
func (r *Renderer) Render(f rose.Frame) (image.Image, error) {
	dc, err := r.draw(f)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG draws the frame and writes it to w as PNG.
func (r *Renderer) WritePNG(w io.Writer, f rose.Frame) error {
	img, err := r.Render(f)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Render draws a single frame with a throwaway Renderer.
func Render(f rose.Frame) (image.Image, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Render(f)
}

// WritePNG draws a single frame with a throwaway Renderer and writes it
// to w as PNG.
func WritePNG(w io.Writer, f rose.Frame) error {
	r, err := NewRenderer()
	if err != nil {
		return err
	}
	defer r.Close()
	return r.WritePNG(w, f)
}

func (r *Renderer) draw(f rose.Frame) (*gg.Context, error) {
	sc := f.Scene
	w, h := int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid canvas %vx%v", sc.Width, sc.Height)
	}

	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.White)

	p := painter{dc: dc, fonts: r.fonts, origin: sc.Center}
	for _, it := range sc.Items {
		p.item(it)
	}
	p.overlay(f.Overlay, sc)

	if p.err != nil {
		dc.Close()
		return nil, fmt.Errorf("raster: %w", p.err)
	}
	rose.Logger().Debug("raster: frame drawn",
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Int("items", len(sc.Items)),
	)
	return dc, nil
}

// painter replays scene items onto a gg context. The first drawing error
// is kept and later calls become no-ops.
type painter struct {
	dc     *gg.Context
	fonts  *fontSet
	origin rose.Point
	err    error
}

func (p *painter) item(it rose.Item) {
	if p.err != nil {
		return
	}
	switch v := it.(type) {
	case rose.WedgeItem:
		p.path(v.Path)
		p.paint(v.Style)
	case rose.CircleItem:
		c := p.origin.Add(v.Center)
		p.dc.DrawCircle(c.X, c.Y, v.Radius)
		p.paint(v.Style)
	case rose.LineItem:
		a, b := p.origin.Add(v.From), p.origin.Add(v.To)
		p.dc.DrawLine(a.X, a.Y, b.X, b.Y)
		p.stroke(v.Style)
	case rose.TextItem:
		p.text(v.Text, p.origin.Add(v.At), v.Style)
	}
}

// path appends a scene path, offset by the origin, to the current path.
func (p *painter) path(path *rose.Path) {
	for _, elem := range path.Translate(p.origin).Elements() {
		switch e := elem.(type) {
		case rose.MoveTo:
			p.dc.MoveTo(e.Point.X, e.Point.Y)
		case rose.LineTo:
			p.dc.LineTo(e.Point.X, e.Point.Y)
		case rose.ArcTo:
			for _, c := range e.Cubics() {
				p.dc.CubicTo(c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y)
			}
		case rose.Close:
			p.dc.ClosePath()
		}
	}
}

// paint fills and then strokes the current path, skipping whichever the
// style leaves empty.
func (p *painter) paint(st rose.Style) {
	hasFill := st.Fill.A > 0
	hasStroke := st.StrokeWidth > 0 && st.Stroke.A > 0
	switch {
	case hasFill && hasStroke:
		p.dc.SetColor(withOpacity(st.Fill, st.Opacity))
		p.check(p.dc.FillPreserve())
		p.stroke(st)
	case hasFill:
		p.dc.SetColor(withOpacity(st.Fill, st.Opacity))
		p.check(p.dc.Fill())
	case hasStroke:
		p.stroke(st)
	default:
		p.dc.ClearPath()
	}
}

func (p *painter) stroke(st rose.Style) {
	p.dc.SetColor(withOpacity(st.Stroke, st.Opacity))
	p.dc.SetLineWidth(st.StrokeWidth)
	if len(st.Dash) > 0 {
		p.dc.SetDash(st.Dash...)
	} else {
		p.dc.ClearDash()
	}
	p.check(p.dc.Stroke())
	p.dc.ClearDash()
}

// text draws s with its baseline at at.
func (p *painter) text(s string, at rose.Point, st rose.TextStyle) {
	p.dc.SetFont(p.fonts.face(st.Size, st.Bold))
	p.dc.SetColor(st.Color)
	if st.Anchor == rose.AnchorMiddle {
		p.dc.DrawStringAnchored(s, at.X, at.Y, 0.5, 0)
		return
	}
	p.dc.DrawString(s, at.X, at.Y)
}

func (p *painter) check(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}

func withOpacity(c rose.RGBA, opacity float64) rose.RGBA {
	return c.WithAlpha(c.A * opacity)
}
