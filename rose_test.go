package rose

import (
	"math"
	"testing"
)

// sampleHourly sums to 558 with the global peak of 49 at 8pm-9pm.
var sampleHourly = [HoursPerDay]uint{
	11, 8, 6, 5, 4, 3, 5, 9, 14, 18, 20, 22,
	32, 33, 34, 35, 36, 30, 35, 42, 49, 45, 38, 24,
}

var sampleDays = []struct {
	label         string
	concentration float64
}{
	{"1mon", 0.212},
	{"2tue", 0.184},
	{"3wed", 0.305},
	{"4thu", 0.147},
	{"5hb", 0.061},
}

func hourlySlots(counts func(h int) uint) []TimeSlot {
	slots := make([]TimeSlot, HoursPerDay)
	for h := range slots {
		slots[h] = TimeSlot{Hour: float64(h), Label: SlotLabel(h), Count: counts(h)}
	}
	return slots
}

// sampleDataset returns a valid dataset shaped like the upstream
// circular-statistics output: 24 hours, 6 blocks starting at 10pm, 5 days.
func sampleDataset() *Dataset {
	ds := &Dataset{
		Summary: Stats{MeanTimeHour: 17.5, Concentration: 0.198, Variance: 0.802, Total: 558},
		Hourly:  hourlySlots(func(h int) uint { return sampleHourly[h] }),
		Blocks: []Block{
			{StartHour: 22, EndHour: 2, Label: "10pm-2am", Count: 81, Percentage: 14.5},
			{StartHour: 2, EndHour: 6, Label: "2am-6am", Count: 18, Percentage: 3.2},
			{StartHour: 6, EndHour: 10, Label: "6am-10am", Count: 46, Percentage: 8.2},
			{StartHour: 10, EndHour: 14, Label: "10am-2pm", Count: 107, Percentage: 19.2},
			{StartHour: 14, EndHour: 18, Label: "2pm-6pm", Count: 135, Percentage: 24.2},
			{StartHour: 18, EndHour: 22, Label: "6pm-10pm", Count: 171, Percentage: 30.6},
		},
		Analysis: Analysis{
			MeanRadians:         4.58,
			CircularStdDevHours: 6.84,
			ConfidenceLow:       16.9,
			ConfidenceHigh:      18.1,
			Symmetry:            Symmetry{Ratio: 0.91, CountsBefore: 290, CountsAfter: 268},
			Rayleigh:            RayleighTest{Z: 21.87, PValue: 3.2e-10},
			HodgesAjne:          HodgesAjneTest{M: 180, Ratio: 0.65},
		},
	}
	for i, d := range sampleDays {
		var total uint
		hourly := hourlySlots(func(h int) uint { return uint((h*(i+1))%7 + i) })
		for _, s := range hourly {
			total += s.Count
		}
		ds.Days = append(ds.Days, Day{
			Label:  d.label,
			Stats:  Stats{MeanTimeHour: float64(12 + i), Concentration: d.concentration, Variance: 1 - d.concentration, Total: total},
			Hourly: hourly,
		})
	}
	return ds
}

// floatEqual compares with an absolute tolerance.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSampleDatasetIsValid(t *testing.T) {
	if err := sampleDataset().Validate(); err != nil {
		t.Fatalf("sample dataset invalid: %v", err)
	}
}

// TestEndToEnd_HourlyPeak covers the 8pm-9pm wedge of the hourly view.
func TestEndToEnd_HourlyPeak(t *testing.T) {
	c := New(700, 700)
	frame, err := c.Render(sampleDataset(), NewState())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if frame.View.Stats.Total != 558 {
		t.Errorf("total = %d, want 558", frame.View.Stats.Total)
	}

	var wedge *WedgeItem
	labeled := false
	for _, it := range frame.Scene.Items {
		switch v := it.(type) {
		case WedgeItem:
			if v.Slot == 20 {
				w := v
				wedge = &w
			}
		case TextItem:
			if v.Slot == 20 && v.Text == "49" {
				labeled = true
			}
		}
	}
	if wedge == nil {
		t.Fatal("no wedge for slot 20")
	}
	if want := c.Radius() * 0.9; !floatEqual(wedge.Radius, want) {
		t.Errorf("wedge 20 radius = %v, want %v", wedge.Radius, want)
	}
	if !labeled {
		t.Error("wedge 20 has no count label")
	}
	if frame.View.Slots[20].Label != "8pm-9pm" {
		t.Errorf("slot 20 label = %q, want 8pm-9pm", frame.View.Slots[20].Label)
	}
}

// TestEndToEnd_DailyDay covers Daily(4): per-day stats and slots.
func TestEndToEnd_DailyDay(t *testing.T) {
	ds := sampleDataset()
	st := NewState()
	st.SetView(ViewDaily)
	st.SetDay(4)

	frame, err := New(700, 700).Render(ds, st)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if frame.View.Stats.Concentration != 0.061 {
		t.Errorf("concentration = %v, want 0.061", frame.View.Stats.Concentration)
	}
	if frame.Overlay.Legend.Footer != "R=0.06" {
		t.Errorf("legend footer = %q, want R=0.06", frame.Overlay.Legend.Footer)
	}
	if &frame.View.Slots[0] != &ds.Days[4].Hourly[0] {
		t.Error("daily view does not read days[4].hourly")
	}
	if frame.Overlay.Title != "Activity by Hour (5hb)" {
		t.Errorf("title = %q", frame.Overlay.Title)
	}
}
