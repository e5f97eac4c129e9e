package rose

import (
	"log/slog"
	"math"
)

// Chart renders frames of a rose chart on a fixed canvas. A Chart holds no
// per-frame state and may be shared between goroutines.
type Chart struct {
	width  float64
	height float64
	center Point
	radius float64
	opts   options
}

// Frame is everything a backend needs to draw one render pass.
type Frame struct {
	View    View
	Scene   Scene
	Overlay Overlay
}

// New creates a chart for a width x height canvas.
func New(width, height float64, opts ...Option) *Chart {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chart{
		width:  width,
		height: height,
		center: Pt(width/2, height/2),
		opts:   o,
	}
	c.radius = o.radius
	if c.radius <= 0 {
		c.radius = math.Max(math.Min(c.center.X, c.center.Y)-o.margin, 1)
	}
	return c
}

// Size returns the canvas size.
func (c *Chart) Size() (width, height float64) {
	return c.width, c.height
}

// Radius returns the outer grid radius.
func (c *Chart) Radius() float64 {
	return c.radius
}

// Render resolves, lays out and composes one frame. The dataset is
// validated first; input contract violations are returned before any
// geometry is computed.
func (c *Chart) Render(ds *Dataset, st State) (Frame, error) {
	if err := ds.Validate(); err != nil {
		return Frame{}, err
	}

	view, err := Resolve(ds, st.Mode())
	if err != nil {
		return Frame{}, err
	}

	geom := Layout(view.Slots, view.WedgeAngle, c.radius)
	Logger().Debug("rose: frame",
		slog.String("view", view.Mode.Kind.String()),
		slog.Int("day", int(view.Mode.Day)),
		slog.Int("slots", len(view.Slots)),
		slog.Uint64("max_count", uint64(geom.MaxCount)),
		slog.Bool("degenerate", geom.Degenerate),
		slog.Int("selected", st.Selected()),
		slog.Int("hovered", st.Hovered()),
	)

	scene := buildScene(sceneInput{
		view:   view,
		geom:   geom,
		state:  st,
		width:  c.width,
		height: c.height,
		center: c.center,
	})
	overlay := overlayComposer{
		ds:    ds,
		view:  view,
		state: st,
		num:   newNumberPrinter(c.opts.locale),
	}.compose(c.width, c.height)

	return Frame{View: view, Scene: scene, Overlay: overlay}, nil
}
