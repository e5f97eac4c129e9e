// Command roseterm is an interactive terminal rose chart.
//
// Usage:
//
//	roseterm -input stats.json
//	roseterm -input stats.json -log roseterm.log
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/gogpu/rose"
	"github.com/gogpu/rose/internal/statsjson"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		input   = flag.String("input", "", "circular-statistics JSON document (required)")
		logPath = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "roseterm: -input is required")
		flag.Usage()
		return 2
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "roseterm: open log: %v\n", err)
			return 1
		}
		defer f.Close()
		rose.SetLogger(slog.New(log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Level:           log.DebugLevel,
			Prefix:          "roseterm",
		})))
	}

	ds, err := statsjson.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roseterm: %v\n", err)
		return 1
	}

	p := tea.NewProgram(newModel(ds), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "roseterm: %v\n", err)
		return 1
	}
	return 0
}
