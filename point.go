package rose

import "math"

// Point represents a 2D point in chart coordinates: origin at the chart
// centre, X to the right, Y down.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the distance of the point from the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Angle converts an hour of day to a chart angle in radians.
// Angle 0 is 12 o'clock (midnight) and angles increase clockwise.
func Angle(hour float64) float64 {
	return hour / HoursPerDay * 2 * math.Pi
}

// Polar returns the point at chart angle theta and radius r.
func Polar(theta, r float64) Point {
	return Point{
		X: math.Sin(theta) * r,
		Y: -math.Cos(theta) * r,
	}
}

// Bearing returns the chart angle of p in [0, 2π), measured clockwise
// from 12 o'clock. It is the inverse of Polar.
func (p Point) Bearing() float64 {
	a := math.Atan2(p.X, -p.Y)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
