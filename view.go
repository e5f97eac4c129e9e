package rose

import (
	"fmt"
	"math"
)

// ViewKind selects which slice of the dataset the chart shows.
type ViewKind uint8

const (
	// ViewHourly shows the 24 global hourly counts.
	ViewHourly ViewKind = iota
	// ViewBlocks shows the 6 four-hour blocks.
	ViewBlocks
	// ViewDaily shows one day's hourly counts, or all days combined.
	ViewDaily
)

// String returns the view name accepted by ParseViewKind.
func (k ViewKind) String() string {
	switch k {
	case ViewHourly:
		return "hourly"
	case ViewBlocks:
		return "blocks"
	case ViewDaily:
		return "daily"
	default:
		return fmt.Sprintf("ViewKind(%d)", uint8(k))
	}
}

// ParseViewKind converts a view name to a ViewKind.
func ParseViewKind(s string) (ViewKind, error) {
	switch s {
	case "hourly", "overall":
		return ViewHourly, nil
	case "blocks", "timeBlocks":
		return ViewBlocks, nil
	case "daily":
		return ViewDaily, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// DayFilter picks a day for the Daily view. AllDays combines every day.
type DayFilter int

// AllDays is the DayFilter that shows the global hourly distribution.
const AllDays DayFilter = -1

// ViewMode is the resolved view selection.
type ViewMode struct {
	Kind ViewKind
	// Day is consulted only when Kind is ViewDaily.
	Day DayFilter
}

// WedgeAngle returns the angular width of one wedge in radians.
func (m ViewMode) WedgeAngle() float64 {
	if m.Kind == ViewBlocks {
		return 2 * math.Pi / BlockCount
	}
	return 2 * math.Pi / HoursPerDay
}

// View is the output of Resolve: the ordered slots and the statistics for
// the active view. Every other component consumes a View rather than the
// raw Dataset.
type View struct {
	Mode       ViewMode
	Slots      []TimeSlot
	Stats      Stats
	WedgeAngle float64
	Title      string
}

// Resolve turns a dataset and view selection into slot records.
// A Daily view naming a missing day fails with ErrInvalidDayIndex.
func Resolve(ds *Dataset, mode ViewMode) (View, error) {
	v := View{
		Mode:       mode,
		Stats:      ds.Summary,
		WedgeAngle: mode.WedgeAngle(),
	}

	switch mode.Kind {
	case ViewHourly:
		v.Slots = ds.Hourly
		v.Title = "Overall Activity by Hour"
	case ViewBlocks:
		v.Slots = blockSlots(ds.Blocks)
		v.Title = "Activity by 4-Hour Blocks"
	case ViewDaily:
		if mode.Day == AllDays {
			v.Slots = ds.Hourly
			v.Title = "Activity by Hour (All Days)"
			break
		}
		if mode.Day < 0 || int(mode.Day) >= len(ds.Days) {
			return View{}, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidDayIndex, mode.Day, len(ds.Days))
		}
		day := ds.Days[mode.Day]
		v.Slots = day.Hourly
		v.Stats = day.Stats
		v.Title = fmt.Sprintf("Activity by Hour (%s)", day.Label)
	default:
		return View{}, fmt.Errorf("%w: %v", ErrUnknownView, mode.Kind)
	}
	return v, nil
}

// blockSlots positions each block at the midpoint of its span.
func blockSlots(blocks []Block) []TimeSlot {
	slots := make([]TimeSlot, len(blocks))
	for i, b := range blocks {
		pct := b.Percentage
		slots[i] = TimeSlot{
			Hour:       b.Midpoint(),
			Label:      b.Label,
			Count:      b.Count,
			Percentage: &pct,
		}
	}
	return slots
}
