package rose

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatHour returns the 12-hour label of a whole hour, e.g. "12am", "8pm".
func FormatHour(hour int) string {
	hour = ((hour % HoursPerDay) + HoursPerDay) % HoursPerDay
	h := hour % 12
	if h == 0 {
		h = 12
	}
	if hour < 12 {
		return fmt.Sprintf("%dam", h)
	}
	return fmt.Sprintf("%dpm", h)
}

// SlotLabel returns the label of the one-hour slot starting at hour,
// e.g. "8pm-9pm".
func SlotLabel(hour int) string {
	return FormatHour(hour) + "-" + FormatHour(hour+1)
}

// FormatClock formats a fractional hour as a clock time, e.g. 19.9333
// becomes "7:56pm".
func FormatClock(hour float64) string {
	minutes := int(math.Round(hour*60)) % (HoursPerDay * 60)
	if minutes < 0 {
		minutes += HoursPerDay * 60
	}
	hh, mm := minutes/60, minutes%60
	h := hh % 12
	if h == 0 {
		h = 12
	}
	suffix := "am"
	if hh >= 12 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d%s", h, mm, suffix)
}

// numberPrinter formats counts with locale grouping ("1,234").
type numberPrinter struct {
	p *message.Printer
}

func newNumberPrinter(tag language.Tag) numberPrinter {
	return numberPrinter{p: message.NewPrinter(tag)}
}

func (n numberPrinter) count(c uint) string {
	return n.p.Sprintf("%d", c)
}

func (n numberPrinter) occurrences(c uint) string {
	return n.p.Sprintf("%d occurrences", c)
}
