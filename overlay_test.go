package rose

import (
	"testing"

	"golang.org/x/text/language"
)

func renderOverlay(t *testing.T, ds *Dataset, st State, opts ...Option) Overlay {
	t.Helper()
	frame, err := New(600, 600, opts...).Render(ds, st)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return frame.Overlay
}

func TestOverlay_Tooltip(t *testing.T) {
	tests := []struct {
		name      string
		view      ViewKind
		hover     int
		wantTitle string
		wantBody  string
	}{
		{"hourly", ViewHourly, 20, "8pm-9pm", "49 occurrences"},
		{"blocks carry percentage", ViewBlocks, 5, "6pm-10pm", "171 occurrences (30.6%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			st.SetView(tt.view)
			st.Hover(tt.hover)
			tip := renderOverlay(t, sampleDataset(), st).Tooltip
			if tip == nil {
				t.Fatal("no tooltip for hovered slot")
			}
			if tip.Title != tt.wantTitle || tip.Body != tt.wantBody || tip.Hint != "Click for details" {
				t.Errorf("tooltip = %+v", *tip)
			}
		})
	}

	if tip := renderOverlay(t, sampleDataset(), NewState()).Tooltip; tip != nil {
		t.Errorf("tooltip without hover: %+v", *tip)
	}
}

func TestOverlay_Detail(t *testing.T) {
	st := NewState()
	st.Click(20)
	d := renderOverlay(t, sampleDataset(), st).Detail
	if d == nil {
		t.Fatal("no detail for selected slot")
	}
	if d.Title != "8pm-9pm Details" || d.Count != 49 {
		t.Errorf("detail = %+v", *d)
	}
	if d.Occurrences != "Total occurrences: 49" {
		t.Errorf("Occurrences = %q", d.Occurrences)
	}
	// 49 / 558
	if d.Share != "This represents 8.8% of all activity" {
		t.Errorf("Share = %q", d.Share)
	}
	if len(d.Breakdown) != len(sampleDays) {
		t.Fatalf("breakdown has %d days, want %d", len(d.Breakdown), len(sampleDays))
	}
	for i, dc := range d.Breakdown {
		if dc.Day != sampleDays[i].label || dc.Count != 6 || dc.Text != "6 occurrences" {
			t.Errorf("breakdown[%d] = %+v", i, dc)
		}
	}
}

func TestOverlay_DetailBlocksHasNoBreakdown(t *testing.T) {
	st := NewState()
	st.SetView(ViewBlocks)
	st.Click(0)
	d := renderOverlay(t, sampleDataset(), st).Detail
	if d == nil {
		t.Fatal("no detail")
	}
	if d.Breakdown != nil {
		t.Errorf("blocks detail has a breakdown: %+v", d.Breakdown)
	}
	if d.Share != "This represents 14.5% of all activity" {
		t.Errorf("Share = %q", d.Share)
	}
}

func TestOverlay_Legend(t *testing.T) {
	ov := renderOverlay(t, sampleDataset(), NewState())
	lg := ov.Legend
	if lg.Origin != Pt(490, 460) || lg.Width != 100 || lg.Height != 130 {
		t.Errorf("legend box = %v %vx%v", lg.Origin, lg.Width, lg.Height)
	}
	if lg.Footer != "R=0.20" {
		t.Errorf("Footer = %q", lg.Footer)
	}
	want := []string{"Data point", "Mean direction", "Selected hour", "Count levels"}
	for i, e := range lg.Entries {
		if e.Label != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Label, want[i])
		}
	}

	st := NewState()
	st.SetView(ViewBlocks)
	st.SetScheme(SchemeGreens)
	lg = renderOverlay(t, sampleDataset(), st).Legend
	if e := lg.Entries[2]; e.Label != "Selected block" || e.Color != SchemeGreens.Highlight() {
		t.Errorf("selection entry = %+v", e)
	}
}

func TestOverlay_StatsPanel(t *testing.T) {
	p := renderOverlay(t, sampleDataset(), NewState()).Stats
	want := StatsPanel{
		MeanTime:      "5:30pm",
		Concentration: "0.198",
		Variance:      "0.802",
		Total:         "558",
		Peak:          "8pm-9pm (49)",
		PeakBlock:     "6pm-10pm",
		Uniformity:    "Non-uniform distribution (p < 0.05)",
	}
	if p != want {
		t.Errorf("stats = %+v\nwant    %+v", p, want)
	}
}

func TestOverlay_UniformityVerdicts(t *testing.T) {
	tests := []struct {
		name string
		a    Analysis
		want string
	}{
		{"untested", Analysis{}, "Not tested"},
		{"uniform", Analysis{Rayleigh: RayleighTest{Z: 0.4, PValue: 0.67}}, "Uniform distribution"},
		{"non-uniform", Analysis{Rayleigh: RayleighTest{Z: 9, PValue: 0.001}}, "Non-uniform distribution (p < 0.05)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uniformityVerdict(tt.a); got != tt.want {
				t.Errorf("uniformityVerdict = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverlay_LocalizedTotal(t *testing.T) {
	ds := sampleDataset()
	ds.Hourly[0].Count += 1000
	ds.Summary.Total += 1000
	p := renderOverlay(t, ds, NewState(), WithLocale(language.German)).Stats
	if p.Total != "1.558" {
		t.Errorf("Total = %q, want 1.558", p.Total)
	}
	if p.Peak != "12am-1am (1.011)" {
		t.Errorf("Peak = %q", p.Peak)
	}
}

func TestHourlyPeaksStable(t *testing.T) {
	slots := hourlySlots(func(h int) uint {
		if h == 3 || h == 7 {
			return 5
		}
		return 1
	})
	got := hourlyPeaks(slots, 3)
	if got[0].Hour != 3 || got[1].Hour != 7 || got[2].Hour != 0 {
		t.Errorf("peaks = %v, %v, %v", got[0].Hour, got[1].Hour, got[2].Hour)
	}
}
