package rose

import (
	"math"
	"strconv"
)

// Layer groups scene items the way a backend stacks them.
type Layer uint8

const (
	LayerAxis Layer = iota
	LayerMean
	LayerSegments
)

// String returns the layer name, used as a class by the SVG backend.
func (l Layer) String() string {
	switch l {
	case LayerAxis:
		return "axis"
	case LayerMean:
		return "mean-direction"
	case LayerSegments:
		return "segments"
	default:
		return "layer"
	}
}

// Tag identifies an item for stacking and hit testing. Slot is the slot
// index the item belongs to, or NoIndex.
type Tag struct {
	Layer Layer
	Slot  int
}

func (t Tag) tag() Tag { return t }

// Item is a drawable primitive of a Scene: one of WedgeItem, CircleItem,
// LineItem or TextItem.
type Item interface {
	tag() Tag
}

// TagOf returns the tag of any scene item.
func TagOf(it Item) Tag { return it.tag() }

// WedgeItem is a filled sector.
type WedgeItem struct {
	Tag
	Path       *Path
	StartAngle float64
	EndAngle   float64
	Radius     float64
	Style      Style
}

// CircleItem is a circle, filled and/or stroked.
type CircleItem struct {
	Tag
	Center Point
	Radius float64
	Style  Style
}

// LineItem is a straight stroked segment.
type LineItem struct {
	Tag
	From  Point
	To    Point
	Style Style
}

// TextItem is a text run anchored at At (on its baseline).
type TextItem struct {
	Tag
	At    Point
	Text  string
	Style TextStyle
}

// Scene is the ordered list of primitives for one frame. Item coordinates
// are relative to Center.
type Scene struct {
	Width  float64
	Height float64
	Center Point
	Radius float64
	Items  []Item
}

// Scene layout constants.
const (
	gridRings       = 4
	hourLabelOffset = 10
	meanPointRadius = 4
	meanLabelLift   = 15
	centerDotRadius = 4
	countLabelShare = 0.2
	percentLineGap  = 14
)

// sceneInput gathers everything buildScene reads.
type sceneInput struct {
	view   View
	geom   Geometry
	state  State
	width  float64
	height float64
	center Point
}

func buildScene(in sceneInput) Scene {
	sc := Scene{
		Width:  in.width,
		Height: in.height,
		Center: in.center,
		Radius: in.geom.MaxRadius,
	}
	sc.Items = appendAxis(sc.Items, in)
	sc.Items = appendHourMarkers(sc.Items, in)
	if in.view.Mode.Kind != ViewBlocks {
		sc.Items = appendMeanIndicator(sc.Items, in)
	}
	sc.Items = appendWedges(sc.Items, in)
	sc.Items = append(sc.Items, CircleItem{
		Tag:    Tag{Layer: LayerSegments, Slot: NoIndex},
		Radius: centerDotRadius,
		Style:  Style{Fill: wedgeStroke, Opacity: 1},
	})
	return sc
}

func appendAxis(items []Item, in sceneInput) []Item {
	axis := Tag{Layer: LayerAxis, Slot: NoIndex}
	for k := 1; k <= gridRings; k++ {
		frac := float64(k) / gridRings
		r := in.geom.MaxRadius * frac
		items = append(items, CircleItem{
			Tag:    axis,
			Radius: r,
			Style:  Style{Stroke: gridStroke, StrokeWidth: 1, Opacity: 1, Dash: []float64{4, 4}},
		})
		if in.state.LabelsVisible() {
			value := uint(math.Ceil(float64(in.geom.MaxCount) * frac))
			items = append(items, TextItem{
				Tag:   axis,
				At:    Pt(5, -r-5),
				Text:  strconv.FormatUint(uint64(value), 10),
				Style: TextStyle{Color: mutedText, Size: 10},
			})
		}
	}
	return items
}

// hourStep is the spacing of hour markers for a view.
func hourStep(k ViewKind) int {
	if k == ViewBlocks {
		return HoursPerDay / BlockCount
	}
	return 1
}

func appendHourMarkers(items []Item, in sceneInput) []Item {
	if !in.state.LabelsVisible() {
		return items
	}
	step := hourStep(in.view.Mode.Kind)
	r := in.geom.MaxRadius + hourLabelOffset
	for h := 0; h < HoursPerDay; h += step {
		st := TextStyle{Color: inactiveHour, Size: 11, Anchor: AnchorMiddle}
		if markerActive(in.view.Slots, float64(h), float64(step)/2) {
			st.Color = activeHour
			st.Bold = true
		}
		items = append(items, TextItem{
			Tag:   Tag{Layer: LayerAxis, Slot: NoIndex},
			At:    Polar(Angle(float64(h)), r),
			Text:  FormatHour(h),
			Style: st,
		})
	}
	return items
}

// markerActive reports whether some slot lies strictly within tolerance
// hours of the marker, measured around the circle.
func markerActive(slots []TimeSlot, hour, tolerance float64) bool {
	for _, s := range slots {
		d := math.Abs(s.Hour - hour)
		d = math.Min(d, HoursPerDay-d)
		if d < tolerance {
			return true
		}
	}
	return false
}

func appendMeanIndicator(items []Item, in sceneInput) []Item {
	mean := Tag{Layer: LayerMean, Slot: NoIndex}
	tip := Polar(Angle(in.view.Stats.MeanTimeHour), in.geom.MaxRadius)
	return append(items,
		LineItem{
			Tag: mean,
			To:  tip,
			Style: Style{
				Stroke:      meanColor,
				StrokeWidth: 2,
				Opacity:     1,
				Dash:        []float64{5, 5},
			},
		},
		CircleItem{
			Tag:    mean,
			Center: tip,
			Radius: meanPointRadius,
			Style:  Style{Fill: meanColor, Opacity: 1},
		},
		TextItem{
			Tag:   mean,
			At:    Pt(tip.X, tip.Y-meanLabelLift),
			Text:  FormatClock(in.view.Stats.MeanTimeHour),
			Style: TextStyle{Color: meanColor, Size: 11, Bold: true, Anchor: AnchorMiddle},
		},
	)
}

func appendWedges(items []Item, in sceneInput) []Item {
	st := in.state
	blocks := in.view.Mode.Kind == ViewBlocks
	threshold := float64(in.geom.MaxCount) * countLabelShare

	for _, w := range in.geom.Wedges {
		tag := Tag{Layer: LayerSegments, Slot: w.Index}
		items = append(items, WedgeItem{
			Tag:        tag,
			Path:       w.Path,
			StartAngle: w.StartAngle,
			EndAngle:   w.EndAngle,
			Radius:     w.Radius,
			Style:      WedgeStyle(st.Scheme(), w.Index, w.Slot.Count, in.geom.MaxCount, st.Selected(), st.Hovered()),
		})

		selected := w.Index == st.Selected()
		if float64(w.Slot.Count) <= threshold && !selected && !blocks {
			continue
		}
		size := 10.0
		if selected {
			size = 12
		}
		items = append(items, TextItem{
			Tag:   tag,
			At:    w.LabelAt,
			Text:  strconv.FormatUint(uint64(w.Slot.Count), 10),
			Style: TextStyle{Color: White, Size: size, Bold: true, Anchor: AnchorMiddle},
		})
		if blocks && w.Slot.Percentage != nil {
			items = append(items, TextItem{
				Tag:   tag,
				At:    Pt(w.LabelAt.X, w.LabelAt.Y+percentLineGap),
				Text:  "(" + formatPercent(*w.Slot.Percentage) + "%)",
				Style: TextStyle{Color: White, Size: 9, Anchor: AnchorMiddle},
			})
		}
	}
	return items
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
