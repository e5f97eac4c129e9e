package rose

import (
	"fmt"
	"math"
	"sort"
)

// Record counts fixed by the chart layout.
const (
	HoursPerDay = 24
	BlockCount  = 6
)

// TimeSlot is one count bucket positioned on the 24-hour circle.
type TimeSlot struct {
	// Hour is the angular position in hours, in [0, 24).
	Hour float64

	// Label is the display name, e.g. "8pm-9pm".
	Label string

	Count uint

	// Percentage is set only for block-aggregated slots.
	Percentage *float64
}

// Block is a contiguous span of the day aggregated into one count.
// EndHour may be smaller than StartHour when the span wraps midnight.
type Block struct {
	StartHour  float64
	EndHour    float64
	Label      string
	Count      uint
	Percentage float64
}

// Span returns the block length in hours, accounting for wraparound.
func (b Block) Span() float64 {
	return math.Mod(b.EndHour-b.StartHour+HoursPerDay, HoursPerDay)
}

// Midpoint returns the hour at the middle of the block.
// A block from 20 to 0 has span 4 and midpoint 22.
func (b Block) Midpoint() float64 {
	return math.Mod(b.StartHour+b.Span()/2, HoursPerDay)
}

// Stats are the circular statistics the chart displays for a view.
// They are computed upstream and consumed verbatim.
type Stats struct {
	MeanTimeHour  float64
	Concentration float64
	Variance      float64
	Total         uint
}

// Day holds the per-day breakdown.
type Day struct {
	Label string
	Stats
	Hourly []TimeSlot
}

// Dataset is the fully materialized input of the chart. The engine never
// modifies it.
type Dataset struct {
	Summary Stats
	Hourly  []TimeSlot
	Blocks  []Block
	Days    []Day

	// Analysis carries optional upstream results shown by Report.
	Analysis Analysis
}

// Analysis holds circular-statistics results beyond the per-view Stats.
// The zero value means the upstream source did not supply them.
type Analysis struct {
	MeanRadians         float64
	CircularStdDevHours float64

	// ConfidenceLow and ConfidenceHigh bound the 95% interval of the mean
	// direction, in hours.
	ConfidenceLow  float64
	ConfidenceHigh float64

	Symmetry   Symmetry
	Rayleigh   RayleighTest
	HodgesAjne HodgesAjneTest
}

// Symmetry compares the mass on either side of the mean direction.
type Symmetry struct {
	Ratio        float64
	CountsBefore uint
	CountsAfter  uint
}

// RayleighTest is the Rayleigh test for circular uniformity.
type RayleighTest struct {
	Z      float64
	PValue float64
}

// HodgesAjneTest is the Hodges-Ajne test for circular uniformity.
type HodgesAjneTest struct {
	M     uint
	Ratio float64
}

// Validate checks the input contract. It is called before any layout so
// that a bad document fails loudly instead of producing a misleading chart.
func (d *Dataset) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil dataset", ErrMalformedDataset)
	}
	if err := validateStats("summary", d.Summary); err != nil {
		return err
	}
	if err := validateHourly("hourly", d.Hourly); err != nil {
		return err
	}

	var sum uint
	for _, s := range d.Hourly {
		sum += s.Count
	}
	if sum != d.Summary.Total {
		return fmt.Errorf("%w: hourly counts sum to %d, summary total is %d",
			ErrMalformedDataset, sum, d.Summary.Total)
	}

	if err := validateBlocks(d.Blocks); err != nil {
		return err
	}

	for i, day := range d.Days {
		name := fmt.Sprintf("day %d (%s)", i, day.Label)
		if err := validateStats(name, day.Stats); err != nil {
			return err
		}
		if err := validateHourly(name, day.Hourly); err != nil {
			return err
		}
	}
	return nil
}

func validateStats(name string, s Stats) error {
	for _, v := range []float64{s.MeanTimeHour, s.Concentration, s.Variance} {
		if !isFinite(v) {
			return fmt.Errorf("%w: %s has a non-finite statistic", ErrMalformedDataset, name)
		}
	}
	if s.MeanTimeHour < 0 || s.MeanTimeHour >= HoursPerDay {
		return fmt.Errorf("%w: %s mean time %.3f outside [0,24)", ErrMalformedDataset, name, s.MeanTimeHour)
	}
	return nil
}

func validateHourly(name string, slots []TimeSlot) error {
	if len(slots) != HoursPerDay {
		return fmt.Errorf("%w: %s has %d hourly records, want %d",
			ErrMalformedDataset, name, len(slots), HoursPerDay)
	}
	for i, s := range slots {
		if !isFinite(s.Hour) || s.Hour < 0 || s.Hour >= HoursPerDay {
			return fmt.Errorf("%w: %s record %d hour %v outside [0,24)", ErrMalformedDataset, name, i, s.Hour)
		}
	}
	return nil
}

// validateBlocks requires BlockCount spans of positive length that chain
// end-to-start around the circle and sum to exactly one day.
func validateBlocks(blocks []Block) error {
	if len(blocks) != BlockCount {
		return fmt.Errorf("%w: %d blocks, want %d", ErrMalformedDataset, len(blocks), BlockCount)
	}

	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	for _, b := range sorted {
		if !isFinite(b.StartHour) || !isFinite(b.EndHour) ||
			b.StartHour < 0 || b.StartHour >= HoursPerDay ||
			b.EndHour < 0 || b.EndHour > HoursPerDay {
			return fmt.Errorf("%w: block %q has bounds [%v,%v)", ErrMalformedBlockSpan, b.Label, b.StartHour, b.EndHour)
		}
		if b.Span() == 0 {
			return fmt.Errorf("%w: block %q is empty", ErrMalformedBlockSpan, b.Label)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartHour < sorted[j].StartHour })

	var total float64
	for i, b := range sorted {
		total += b.Span()
		next := sorted[(i+1)%len(sorted)]
		end := math.Mod(b.EndHour, HoursPerDay)
		if math.Abs(end-next.StartHour) > hourEpsilon {
			return fmt.Errorf("%w: block %q ends at %v but next block %q starts at %v",
				ErrMalformedBlockSpan, b.Label, b.EndHour, next.Label, next.StartHour)
		}
	}
	if math.Abs(total-HoursPerDay) > hourEpsilon {
		return fmt.Errorf("%w: spans cover %v hours", ErrMalformedBlockSpan, total)
	}
	return nil
}

const hourEpsilon = 1e-9

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
