package rose

// Style describes how a shape is filled and stroked.
// A zero Fill or Stroke alpha means "not painted".
type Style struct {
	Fill        RGBA
	Stroke      RGBA
	StrokeWidth float64
	Opacity     float64
	Dash        []float64
}

// Anchor is the horizontal alignment of a text run.
type Anchor uint8

const (
	AnchorStart Anchor = iota
	AnchorMiddle
)

// TextStyle describes a text run.
type TextStyle struct {
	Color  RGBA
	Size   float64
	Bold   bool
	Anchor Anchor
}

// Opacity values for wedges.
const (
	opacityNormal = 0.95
	opacityDimmed = 0.6
	opacityHover  = 1.0

	hoverBoost = 40
)

// WedgeStyle returns the style of wedge index among the current slots.
// selected and hovered are NoIndex when nothing is selected or hovered.
func WedgeStyle(scheme Scheme, index int, count, maxCount uint, selected, hovered int) Style {
	intensity := Intensity(count, maxCount)
	st := Style{
		Fill:        scheme.Base(intensity),
		Stroke:      wedgeStroke,
		StrokeWidth: 1,
		Opacity:     opacityNormal,
	}

	switch {
	case index == selected:
		st.Fill = scheme.Highlight()
		st.Stroke = selectedStroke
		st.StrokeWidth = 2
	case index == hovered:
		st.Fill = scheme.Base(intensity + hoverBoost)
		st.Opacity = opacityHover
	}

	if selected != NoIndex && index != selected {
		st.Opacity = opacityDimmed
	}
	return st
}
