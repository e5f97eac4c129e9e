// Package rose renders 24-hour rose charts: circular charts of event
// counts by time of day.
//
// # Overview
//
// rose is the engine shared by every front end of the chart. It turns a
// dataset of hourly, block and per-day counts plus the current interaction
// state into an abstract scene of wedges, circles, lines and text, and an
// overlay of legend, tooltip, detail and statistics content. Drawing the
// scene is left to a backend: see the raster (PNG via gogpu/gg) and svg
// sub-packages.
//
// # Quick Start
//
//	c := rose.New(700, 700)
//	st := rose.NewState()
//
//	frame, err := c.Render(ds, st)
//	if err != nil {
//	    return err
//	}
//	img, err := raster.Render(frame)
//
// Input events go through State:
//
//	st.SetView(rose.ViewBlocks)
//	st.Click(frame.Scene.HitTest(rose.Pt(x, y)))
//	frame, err = c.Render(ds, st) // full re-render, no incremental patching
//
// # Architecture
//
// Components, leaves first:
//   - Resolve: dataset + view selection -> ordered slots and their stats
//   - Layout: slots -> wedge geometry (angles, radius, sector path)
//   - WedgeStyle / Scheme / Intensity: count and state -> fill and stroke
//   - State / Event: hover, select, view, day, scheme, label transitions
//   - Chart.Render: the per-frame pipeline, plus overlay composition
//
// # Coordinate System
//
// Scene items use centre-relative coordinates with Y increasing down.
// Chart angles start at 12 o'clock (midnight) and increase clockwise, so
// an hour h sits at angle h/24 * 2π and point (sin θ·r, −cos θ·r).
//
// # Radius Scaling
//
// Wedge radius is proportional to count. The sector area therefore grows
// with the square of the count; the chart is not area-true.
package rose

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
