package rose

import (
	"fmt"
	"math"
)

// Report is the statistical summary of a whole dataset: descriptive
// circular statistics, uniformity and symmetry verdicts, peaks and the
// block table. Every number is taken from the dataset; nothing is
// estimated here.
type Report struct {
	Descriptive []ReportRow
	Uniformity  []TestRow
	Symmetry    SymmetryRow
	Peaks       []PeakRow
	Blocks      []BlockRow
	Findings    []string
}

// ReportRow is one descriptive statistic.
type ReportRow struct {
	Name        string
	Value       string
	Description string
}

// TestRow is one uniformity test.
type TestRow struct {
	Test      string
	Statistic string
	PValue    string
	Verdict   string
}

// SymmetryRow describes the balance around the mean direction.
type SymmetryRow struct {
	Ratio     string
	Verdict   string
	Before    string
	After     string
	Direction string
}

// PeakRow is one of the busiest hours.
type PeakRow struct {
	Label string
	Count uint
	Share string
}

// BlockRow is one block of the block table.
type BlockRow struct {
	Label      string
	Count      uint
	Percentage string
	Peak       bool
}

// Report thresholds.
const (
	reportPeaks          = 4
	hodgesAjneUniformity = 0.75
	symmetryTolerance    = 0.2
)

// Report builds the statistical summary of ds.
func (c *Chart) Report(ds *Dataset) (Report, error) {
	if err := ds.Validate(); err != nil {
		return Report{}, err
	}
	num := newNumberPrinter(c.opts.locale)
	sum := ds.Summary
	a := ds.Analysis

	r := Report{
		Descriptive: []ReportRow{
			{"Mean Direction", fmt.Sprintf("%s (%.2f radians)", FormatClock(sum.MeanTimeHour), a.MeanRadians), "Average time of activity"},
			{"Mean Resultant Length (R)", fmt.Sprintf("%.4f", sum.Concentration), "Measure of concentration (0-1)"},
			{"Circular Variance", fmt.Sprintf("%.4f", sum.Variance), "Dispersion around the mean"},
			{"Circular Standard Deviation", fmt.Sprintf("%.2f hours", a.CircularStdDevHours), "Standard deviation in hours"},
			{"95% Confidence Interval", FormatClock(a.ConfidenceLow) + " - " + FormatClock(a.ConfidenceHigh), "Interval for mean direction"},
		},
		Symmetry: symmetryRow(a.Symmetry, num),
	}

	if a.HasTests() {
		r.Uniformity = []TestRow{
			{
				Test:      "Rayleigh Test",
				Statistic: fmt.Sprintf("Z = %.4f", a.Rayleigh.Z),
				PValue:    fmt.Sprintf("p = %.4e", a.Rayleigh.PValue),
				Verdict:   rayleighVerdict(a.Rayleigh),
			},
			{
				Test:      "Hodges-Ajne Test",
				Statistic: fmt.Sprintf("m = %d", a.HodgesAjne.M),
				PValue:    fmt.Sprintf("ratio = %.4f", a.HodgesAjne.Ratio),
				Verdict:   hodgesAjneVerdict(a.HodgesAjne),
			},
		}
	}

	for _, p := range hourlyPeaks(ds.Hourly, reportPeaks) {
		r.Peaks = append(r.Peaks, PeakRow{
			Label: p.Label,
			Count: p.Count,
			Share: fmt.Sprintf("%.1f%%", share(p.Count, sum.Total)),
		})
	}

	peak, _ := peakBlock(ds.Blocks)
	for _, b := range ds.Blocks {
		r.Blocks = append(r.Blocks, BlockRow{
			Label:      b.Label,
			Count:      b.Count,
			Percentage: formatPercent(b.Percentage) + "%",
			Peak:       b.Label == peak.Label,
		})
	}

	r.Findings = findings(ds, r, num)
	return r, nil
}

func share(n, total uint) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func rayleighVerdict(t RayleighTest) string {
	if t.PValue < significance {
		return "Reject uniformity (p < 0.05)"
	}
	return "Cannot reject uniformity"
}

func hodgesAjneVerdict(t HodgesAjneTest) string {
	if t.Ratio < hodgesAjneUniformity {
		return "Suggests non-uniformity"
	}
	return "Suggests uniformity"
}

func symmetryRow(s Symmetry, num numberPrinter) SymmetryRow {
	row := SymmetryRow{
		Ratio:     fmt.Sprintf("%.4f", s.Ratio),
		Verdict:   "Asymmetric",
		Before:    num.count(s.CountsBefore),
		After:     num.count(s.CountsAfter),
		Direction: "More counts before mean time",
	}
	if math.Abs(s.Ratio-1) < symmetryTolerance {
		row.Verdict = "Approximately symmetric"
	}
	if s.CountsAfter > s.CountsBefore {
		row.Direction = "More counts after mean time"
	}
	return row
}

func findings(ds *Dataset, r Report, num numberPrinter) []string {
	var out []string
	a := ds.Analysis
	if a.HasTests() && a.Rayleigh.PValue < significance {
		out = append(out, fmt.Sprintf(
			"Based on the Rayleigh test (p = %.4e), the hypothesis of uniform distribution of events throughout the day is rejected.",
			a.Rayleigh.PValue))
	}
	out = append(out,
		fmt.Sprintf("The mean time of %s is where activity tends to cluster.", FormatClock(ds.Summary.MeanTimeHour)),
		fmt.Sprintf("The concentration parameter (R) is %.3f.", ds.Summary.Concentration),
	)
	if len(r.Peaks) > 0 {
		p := r.Peaks[0]
		out = append(out, fmt.Sprintf("The highest hourly peak is at %s with %s occurrences (%s of total).",
			p.Label, num.count(p.Count), p.Share))
	}
	for _, b := range r.Blocks {
		if b.Peak {
			out = append(out, fmt.Sprintf("The time block from %s accounts for %s of all occurrences.", b.Label, b.Percentage))
		}
	}
	return out
}
