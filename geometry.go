package rose

// Radius fractions of the variable-radius rose. Wedge radius is linear in
// count (not area-true); the outer tenth is left for hour labels.
const (
	wedgeScale = 0.9
	labelScale = 0.5
)

// Wedge is the geometry of one slot.
type Wedge struct {
	Index      int
	Slot       TimeSlot
	StartAngle float64
	EndAngle   float64
	Radius     float64

	// Path is the closed sector: centre, straight edge, clockwise arc,
	// straight edge back to centre.
	Path *Path

	// LabelAt is where the count label is anchored.
	LabelAt Point
}

// Geometry is the result of Layout, in centre-relative coordinates.
type Geometry struct {
	MaxRadius  float64
	WedgeAngle float64

	// MaxCount is the largest slot count, or 1 when every count is zero.
	MaxCount uint

	// Degenerate reports that every count was zero.
	Degenerate bool

	Wedges []Wedge
}

// Layout converts slots into wedge geometry. It is a pure function: equal
// inputs produce deep-equal outputs.
func Layout(slots []TimeSlot, wedgeAngle, maxRadius float64) Geometry {
	g := Geometry{
		MaxRadius:  maxRadius,
		WedgeAngle: wedgeAngle,
		MaxCount:   maxCount(slots),
		Wedges:     make([]Wedge, len(slots)),
	}
	if g.MaxCount == 0 {
		g.MaxCount = 1
		g.Degenerate = true
	}

	for i, s := range slots {
		mid := Angle(s.Hour)
		start := mid - wedgeAngle/2
		end := start + wedgeAngle
		frac := float64(s.Count) / float64(g.MaxCount)
		r := frac * maxRadius * wedgeScale

		path := NewPath()
		path.MoveTo(Point{})
		path.LineTo(Polar(start, r))
		path.ArcTo(Point{}, r, start, end)
		path.Close()

		g.Wedges[i] = Wedge{
			Index:      i,
			Slot:       s,
			StartAngle: start,
			EndAngle:   end,
			Radius:     r,
			Path:       path,
			LabelAt:    Polar(mid, frac*maxRadius*labelScale),
		}
	}
	return g
}

func maxCount(slots []TimeSlot) uint {
	var m uint
	for _, s := range slots {
		m = max(m, s.Count)
	}
	return m
}
