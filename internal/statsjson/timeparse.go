package statsjson

import (
	"fmt"
	"strconv"
	"strings"
)

// parseClock converts "7:56pm" or "8pm" to a fractional hour in [0,24).
func parseClock(s string) (float64, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	var pm bool
	switch {
	case strings.HasSuffix(t, "pm"):
		pm = true
	case strings.HasSuffix(t, "am"):
	default:
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	t = strings.TrimSpace(t[:len(t)-2])

	hh, mm, hasMinutes := strings.Cut(t, ":")
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minute := 0
	if hasMinutes {
		minute, err = strconv.Atoi(mm)
		if err != nil || len(mm) != 2 || minute < 0 || minute > 59 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
		}
	}

	hour %= 12
	if pm {
		hour += 12
	}
	return float64(hour) + float64(minute)/60, nil
}

// parseRange splits "10pm-2am" into its start and end hours.
func parseRange(s string) (start, end float64, err error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not a range", ErrMalformedTime, s)
	}
	if start, err = parseClock(a); err != nil {
		return 0, 0, err
	}
	if end, err = parseClock(b); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
