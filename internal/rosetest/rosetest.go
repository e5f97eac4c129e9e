// Package rosetest provides fixtures for tests of the backends and hosts.
package rosetest

import "github.com/gogpu/rose"

// Hourly holds the fixture's hourly counts. They sum to 558 and peak at
// 8pm-9pm with 49.
var Hourly = [rose.HoursPerDay]uint{
	11, 8, 6, 5, 4, 3, 5, 9, 14, 18, 20, 22,
	32, 33, 34, 35, 36, 30, 35, 42, 49, 45, 38, 24,
}

// PeakHour is the index of the busiest hourly slot.
const PeakHour = 20

// DayLabels are the fixture's day labels.
var DayLabels = []string{"1mon", "2tue", "3wed"}

// Dataset returns a fresh valid dataset.
func Dataset() *rose.Dataset {
	ds := &rose.Dataset{
		Summary: rose.Stats{MeanTimeHour: 17.5, Concentration: 0.198, Variance: 0.802, Total: 558},
		Hourly:  slots(func(h int) uint { return Hourly[h] }),
		Blocks: []rose.Block{
			{StartHour: 22, EndHour: 2, Label: "10pm-2am", Count: 81, Percentage: 14.5},
			{StartHour: 2, EndHour: 6, Label: "2am-6am", Count: 18, Percentage: 3.2},
			{StartHour: 6, EndHour: 10, Label: "6am-10am", Count: 46, Percentage: 8.2},
			{StartHour: 10, EndHour: 14, Label: "10am-2pm", Count: 107, Percentage: 19.2},
			{StartHour: 14, EndHour: 18, Label: "2pm-6pm", Count: 135, Percentage: 24.2},
			{StartHour: 18, EndHour: 22, Label: "6pm-10pm", Count: 171, Percentage: 30.6},
		},
		Analysis: rose.Analysis{
			MeanRadians:         4.58,
			CircularStdDevHours: 6.84,
			ConfidenceLow:       16.9,
			ConfidenceHigh:      18.1,
			Symmetry:            rose.Symmetry{Ratio: 0.91, CountsBefore: 290, CountsAfter: 268},
			Rayleigh:            rose.RayleighTest{Z: 21.87, PValue: 3.2e-10},
			HodgesAjne:          rose.HodgesAjneTest{M: 180, Ratio: 0.65},
		},
	}
	for i, label := range DayLabels {
		hourly := slots(func(h int) uint { return uint((h+i)%5 + 1) })
		var total uint
		for _, s := range hourly {
			total += s.Count
		}
		ds.Days = append(ds.Days, rose.Day{
			Label:  label,
			Stats:  rose.Stats{MeanTimeHour: float64(10 + i), Concentration: 0.1, Variance: 0.9, Total: total},
			Hourly: hourly,
		})
	}
	return ds
}

func slots(count func(h int) uint) []rose.TimeSlot {
	out := make([]rose.TimeSlot, rose.HoursPerDay)
	for h := range out {
		out[h] = rose.TimeSlot{Hour: float64(h), Label: rose.SlotLabel(h), Count: count(h)}
	}
	return out
}
