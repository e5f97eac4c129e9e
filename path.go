package rose

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a clockwise circular arc around Center from the current
// point to Point. Angles are chart angles (0 at 12 o'clock, clockwise).
type ArcTo struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Point      Point
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 4),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// ArcTo draws a clockwise arc of radius r around center, ending at
// chart angle endAngle. startAngle must match the current point.
func (p *Path) ArcTo(center Point, r, startAngle, endAngle float64) {
	pt := center.Add(Polar(endAngle, r))
	p.elements = append(p.elements, ArcTo{
		Center:     center,
		Radius:     r,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Point:      pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Translate returns a copy of the path moved by d.
func (p *Path) Translate(d Point) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(e.Point.Add(d))
		case LineTo:
			result.LineTo(e.Point.Add(d))
		case ArcTo:
			result.ArcTo(e.Center.Add(d), e.Radius, e.StartAngle, e.EndAngle)
		case Close:
			result.Close()
		}
	}
	return result
}

// Cubic is one cubic Bezier segment, starting at the previous point.
type Cubic struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Cubics approximates the arc with cubic Bezier segments of at most 90
// degrees each, for backends without a native arc primitive.
func (a ArcTo) Cubics() []Cubic {
	sweep := a.EndAngle - a.StartAngle
	if sweep <= 0 || a.Radius == 0 {
		return nil
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil(sweep / maxAngle))
	step := sweep / float64(n)

	// Chart angles run clockwise from 12 o'clock; in screen space (Y down)
	// that is the standard angle minus a quarter turn.
	out := make([]Cubic, 0, n)
	for i := 0; i < n; i++ {
		a1 := a.StartAngle + float64(i)*step - math.Pi/2
		a2 := a1 + step
		out = append(out, arcSegment(a.Center, a.Radius, a1, a2))
	}
	return out
}

// arcSegment returns the cubic for a single screen-space arc segment.
// Control points sit on the end tangents at k·r, k = 4/3·tan(θ/4).
func arcSegment(c Point, r, a1, a2 float64) Cubic {
	k := 4.0 / 3 * math.Tan((a2-a1)/4)

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := c.X+r*cos1, c.Y+r*sin1
	x2, y2 := c.X+r*cos2, c.Y+r*sin2

	return Cubic{
		Control1: Pt(x1-k*r*sin1, y1+k*r*cos1),
		Control2: Pt(x2+k*r*sin2, y2-k*r*cos2),
		Point:    Pt(x2, y2),
	}
}

// SVG returns the path as SVG path data. Arcs use the elliptical arc
// command with the sweep flag set (clockwise on screen).
func (p *Path) SVG() string {
	var b strings.Builder
	for _, elem := range p.elements {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			b.WriteString("M")
			writePoint(&b, e.Point)
		case LineTo:
			b.WriteString("L")
			writePoint(&b, e.Point)
		case ArcTo:
			large := "0"
			if e.EndAngle-e.StartAngle > math.Pi {
				large = "1"
			}
			r := formatFloat(e.Radius)
			b.WriteString("A" + r + "," + r + " 0 " + large + ",1 ")
			writePoint(&b, e.Point)
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(formatFloat(pt.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(pt.Y))
}

func formatFloat(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
