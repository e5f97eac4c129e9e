package rose

import "math"

// HitTest returns the slot index of the wedge under p, or NoIndex.
// p is in canvas coordinates (the same space as Scene.Center). Hosts feed
// the result to State.Hover or State.Click.
func (sc Scene) HitTest(p Point) int {
	local := p.Sub(sc.Center)
	dist := local.Length()
	bearing := local.Bearing()

	// Topmost first.
	for i := len(sc.Items) - 1; i >= 0; i-- {
		w, ok := sc.Items[i].(WedgeItem)
		if !ok || w.Radius == 0 || dist > w.Radius {
			continue
		}
		if angleWithin(bearing, w.StartAngle, w.EndAngle) {
			return w.Slot
		}
	}
	return NoIndex
}

// angleWithin reports whether a lies in the clockwise sweep [start, end),
// with all angles taken modulo 2π.
func angleWithin(a, start, end float64) bool {
	const twoPi = 2 * math.Pi
	sweep := end - start
	if sweep >= twoPi {
		return true
	}
	d := math.Mod(a-start, twoPi)
	if d < 0 {
		d += twoPi
	}
	return d < sweep
}
