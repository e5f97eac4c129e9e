// Package statsjson reads the circular-statistics JSON document produced by
// the upstream analysis job and converts it into a rose.Dataset.
package statsjson

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/gogpu/rose"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMalformedTime reports a time string that is not "7pm" or "7:56pm"
// shaped, or a range that is not "7pm-8pm" shaped.
var ErrMalformedTime = errors.New("statsjson: malformed time")

// Document mirrors the JSON document.
type Document struct {
	Metadata           Metadata         `json:"metadata"`
	Summary            Summary          `json:"summary"`
	HourlyDistribution []SlotRecord     `json:"hourlyDistribution"`
	TimeBlocks         []BlockRecord    `json:"timeBlocks"`
	DayStats           []DayRecord      `json:"dayStats"`
	PeakActivity       PeakActivity     `json:"peakActivity"`
	UniformityTests    *UniformityTests `json:"uniformityTests,omitempty"`
}

type Metadata struct {
	DataSource        string `json:"dataSource"`
	AnalysisDate      string `json:"analysisDate"`
	TotalObservations uint   `json:"totalObservations"`
}

type Summary struct {
	MeanDirection struct {
		Time    string  `json:"time"`
		Radians float64 `json:"radians"`
	} `json:"meanDirection"`
	Concentration struct {
		MeanResultantLength float64 `json:"meanResultantLength"`
	} `json:"concentration"`
	Variance struct {
		CircularVariance          float64 `json:"circularVariance"`
		CircularStandardDeviation struct {
			Hours float64 `json:"hours"`
		} `json:"circularStandardDeviation"`
	} `json:"variance"`
	ConfidenceInterval struct {
		LowerBound string `json:"lowerBound"`
		UpperBound string `json:"upperBound"`
	} `json:"confidenceInterval"`
	Symmetry struct {
		Ratio        float64 `json:"ratio"`
		CountsBefore uint    `json:"countsBefore"`
		CountsAfter  uint    `json:"countsAfter"`
	} `json:"symmetry"`
}

// SlotRecord is one hourly bucket, e.g. {"timeSlot": "8pm-9pm", "count": 49}.
type SlotRecord struct {
	TimeSlot string `json:"timeSlot"`
	Count    uint   `json:"count"`
}

// BlockRecord is one four-hour block, e.g. {"timeBlock": "10pm-2am", ...}.
type BlockRecord struct {
	TimeBlock  string  `json:"timeBlock"`
	Count      uint    `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DayRecord struct {
	Day             string       `json:"day"`
	MeanTime        string       `json:"meanTime"`
	Concentration   float64      `json:"concentration"`
	Variance        float64      `json:"variance"`
	Total           uint         `json:"total"`
	HourlyBreakdown []SlotRecord `json:"hourlyBreakdown"`
}

type PeakActivity struct {
	HourlyPeaks []SlotRecord `json:"hourlyPeaks"`
	BlockPeak   string       `json:"blockPeak"`
}

type UniformityTests struct {
	Rayleigh struct {
		ZStatistic float64 `json:"zStatistic"`
		PValue     float64 `json:"pValue"`
	} `json:"rayleigh"`
	HodgesAjne struct {
		MStatistic uint    `json:"mStatistic"`
		Ratio      float64 `json:"ratio"`
	} `json:"hodgesAjne"`
}

// Decode reads a document from r and returns the validated dataset.
func Decode(r io.Reader) (*rose.Dataset, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("statsjson: decode: %w", err)
	}
	return doc.Dataset()
}

// Parse decodes a document held in memory.
func Parse(data []byte) (*rose.Dataset, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("statsjson: decode: %w", err)
	}
	return doc.Dataset()
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (*rose.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("statsjson: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Dataset converts the document and validates the result.
func (d *Document) Dataset() (*rose.Dataset, error) {
	mean, err := parseClock(d.Summary.MeanDirection.Time)
	if err != nil {
		return nil, fieldError("summary.meanDirection.time", err)
	}
	hourly, err := convertSlots(d.HourlyDistribution)
	if err != nil {
		return nil, fieldError("hourlyDistribution", err)
	}
	blocks, err := convertBlocks(d.TimeBlocks)
	if err != nil {
		return nil, fieldError("timeBlocks", err)
	}
	analysis, err := d.analysis()
	if err != nil {
		return nil, err
	}

	ds := &rose.Dataset{
		Summary: rose.Stats{
			MeanTimeHour:  mean,
			Concentration: d.Summary.Concentration.MeanResultantLength,
			Variance:      d.Summary.Variance.CircularVariance,
			Total:         d.Metadata.TotalObservations,
		},
		Hourly:   hourly,
		Blocks:   blocks,
		Analysis: analysis,
	}
	for i, rec := range d.DayStats {
		day, err := convertDay(rec)
		if err != nil {
			return nil, fieldError(fmt.Sprintf("dayStats[%d]", i), err)
		}
		ds.Days = append(ds.Days, day)
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("statsjson: %w", err)
	}
	rose.Logger().Debug("statsjson: dataset decoded",
		slog.String("source", d.Metadata.DataSource),
		slog.Uint64("total", uint64(ds.Summary.Total)),
		slog.Int("days", len(ds.Days)),
		slog.Bool("uniformity_tests", d.UniformityTests != nil),
	)
	return ds, nil
}

func (d *Document) analysis() (rose.Analysis, error) {
	s := d.Summary
	a := rose.Analysis{
		MeanRadians:         s.MeanDirection.Radians,
		CircularStdDevHours: s.Variance.CircularStandardDeviation.Hours,
		Symmetry: rose.Symmetry{
			Ratio:        s.Symmetry.Ratio,
			CountsBefore: s.Symmetry.CountsBefore,
			CountsAfter:  s.Symmetry.CountsAfter,
		},
	}
	var err error
	if ci := s.ConfidenceInterval.LowerBound; ci != "" {
		if a.ConfidenceLow, err = parseClock(ci); err != nil {
			return a, fieldError("summary.confidenceInterval.lowerBound", err)
		}
	}
	if ci := s.ConfidenceInterval.UpperBound; ci != "" {
		if a.ConfidenceHigh, err = parseClock(ci); err != nil {
			return a, fieldError("summary.confidenceInterval.upperBound", err)
		}
	}
	if u := d.UniformityTests; u != nil {
		a.Rayleigh = rose.RayleighTest{Z: u.Rayleigh.ZStatistic, PValue: u.Rayleigh.PValue}
		a.HodgesAjne = rose.HodgesAjneTest{M: u.HodgesAjne.MStatistic, Ratio: u.HodgesAjne.Ratio}
	}
	return a, nil
}

func convertSlots(recs []SlotRecord) ([]rose.TimeSlot, error) {
	out := make([]rose.TimeSlot, len(recs))
	for i, r := range recs {
		start, _, err := parseRange(r.TimeSlot)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = rose.TimeSlot{Hour: start, Label: r.TimeSlot, Count: r.Count}
	}
	return out, nil
}

func convertBlocks(recs []BlockRecord) ([]rose.Block, error) {
	out := make([]rose.Block, len(recs))
	for i, r := range recs {
		start, end, err := parseRange(r.TimeBlock)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = rose.Block{
			StartHour:  start,
			EndHour:    end,
			Label:      r.TimeBlock,
			Count:      r.Count,
			Percentage: r.Percentage,
		}
	}
	return out, nil
}

func convertDay(rec DayRecord) (rose.Day, error) {
	mean, err := parseClock(rec.MeanTime)
	if err != nil {
		return rose.Day{}, fmt.Errorf("meanTime: %w", err)
	}
	hourly, err := convertSlots(rec.HourlyBreakdown)
	if err != nil {
		return rose.Day{}, fmt.Errorf("hourlyBreakdown%w", err)
	}
	return rose.Day{
		Label: rec.Day,
		Stats: rose.Stats{
			MeanTimeHour:  mean,
			Concentration: rec.Concentration,
			Variance:      rec.Variance,
			Total:         rec.Total,
		},
		Hourly: hourly,
	}, nil
}

// fieldError marks a conversion failure as a dataset contract violation.
func fieldError(field string, err error) error {
	return fmt.Errorf("statsjson: %s: %w: %w", field, rose.ErrMalformedDataset, err)
}
