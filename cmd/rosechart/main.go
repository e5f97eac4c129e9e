// Command rosechart renders a rose chart of a circular-statistics document
// to PNG or SVG.
//
// Usage:
//
//	rosechart -input stats.json -output rose.png -view blocks -scheme greens
//	rosechart -input stats.json -output day2.svg -view daily -day 2 -select 20
//	rosechart -input stats.json -report
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/gogpu/rose"
	"github.com/gogpu/rose/internal/statsjson"
	"github.com/gogpu/rose/raster"
	"github.com/gogpu/rose/svg"
)

type config struct {
	input    string
	output   string
	format   string
	width    int
	height   int
	view     string
	day      int
	scheme   string
	selected int
	hovered  int
	noLabels bool
	report   bool
	verbose  bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "input", "", "circular-statistics JSON document (required)")
	flag.StringVar(&cfg.output, "output", "rose.png", "output file")
	flag.StringVar(&cfg.format, "format", "", "png or svg (default: from the output extension)")
	flag.IntVar(&cfg.width, "width", 700, "image width")
	flag.IntVar(&cfg.height, "height", 700, "image height")
	flag.StringVar(&cfg.view, "view", "hourly", "hourly, blocks or daily")
	flag.IntVar(&cfg.day, "day", int(rose.AllDays), "day index for the daily view (-1 for all days)")
	flag.StringVar(&cfg.scheme, "scheme", "blues", "blues, purples, greens or oranges")
	flag.IntVar(&cfg.selected, "select", rose.NoIndex, "slot to select")
	flag.IntVar(&cfg.hovered, "hover", rose.NoIndex, "slot to hover")
	flag.BoolVar(&cfg.noLabels, "no-labels", false, "hide count and hour labels")
	flag.BoolVar(&cfg.report, "report", false, "print the statistics report instead of drawing")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "rosechart",
		Level:           log.InfoLevel,
	})
	if cfg.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	rose.SetLogger(slog.New(logger))

	if err := run(cfg, os.Stdout); err != nil {
		logger.Fatal("failed", "err", err)
	}
}

func run(cfg config, stdout io.Writer) error {
	if cfg.input == "" {
		return errors.New("-input is required")
	}
	ds, err := statsjson.ReadFile(cfg.input)
	if err != nil {
		return err
	}

	chart := rose.New(float64(cfg.width), float64(cfg.height))
	if cfg.report {
		r, err := chart.Report(ds)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, formatReport(r))
		return err
	}

	st, err := cfg.state()
	if err != nil {
		return err
	}
	frame, err := chart.Render(ds, st)
	if err != nil {
		return err
	}
	n := len(frame.View.Slots)
	if err := checkSlot("select", cfg.selected, n); err != nil {
		return err
	}
	if err := checkSlot("hover", cfg.hovered, n); err != nil {
		return err
	}
	return write(cfg, frame)
}

var errSlotOutOfRange = errors.New("slot index out of range")

// checkSlot rejects an index outside the resolved view's slots.
func checkSlot(flagName string, i, n int) error {
	if i == rose.NoIndex || (i >= 0 && i < n) {
		return nil
	}
	return fmt.Errorf("-%s %d: %w (view has %d slots)", flagName, i, errSlotOutOfRange, n)
}

// state builds the interaction state from the flags, in the order a user
// would click through the controls.
func (cfg config) state() (rose.State, error) {
	kind, err := rose.ParseViewKind(cfg.view)
	if err != nil {
		return rose.State{}, err
	}
	scheme, err := rose.ParseScheme(cfg.scheme)
	if err != nil {
		return rose.State{}, err
	}

	st := rose.NewState()
	for _, ev := range []rose.Event{
		rose.SetViewEvent{View: kind},
		rose.SetDayEvent{Day: rose.DayFilter(cfg.day)},
		rose.SetSchemeEvent{Scheme: scheme},
		rose.SetLabelsEvent{Visible: !cfg.noLabels},
		rose.HoverEvent{Index: cfg.hovered},
	} {
		st.Apply(ev)
	}
	if cfg.selected != rose.NoIndex {
		st.Apply(rose.ClickEvent{Index: cfg.selected})
	}
	return st, nil
}

func outputFormat(cfg config) (string, error) {
	f := strings.ToLower(cfg.format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(cfg.output)), ".")
	}
	switch f {
	case "png", "svg":
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}

func write(cfg config, frame rose.Frame) (err error) {
	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}
	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case "svg":
		err = svg.Encode(f, frame)
	default:
		err = raster.WritePNG(f, frame)
	}
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		return err
	}
	rose.Logger().Info("chart saved",
		"file", cfg.output,
		"size", humanize.Bytes(uint64(info.Size())),
		"view", frame.View.Mode.Kind.String(),
		"title", frame.View.Title,
	)
	return nil
}
