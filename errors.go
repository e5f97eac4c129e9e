package rose

import "errors"

// Sentinel errors returned by the rose package. Callers match them with
// errors.Is; the returned errors wrap them with the offending value.
var (
	// ErrInvalidDayIndex is returned when a Daily view names a day outside
	// the dataset. The index is never clamped.
	ErrInvalidDayIndex = errors.New("rose: day index out of range")

	// ErrMalformedBlockSpan is returned when the block spans do not
	// partition the 24-hour circle exactly once.
	ErrMalformedBlockSpan = errors.New("rose: block spans do not partition the day")

	// ErrMalformedDataset is returned for any other input contract
	// violation (wrong record counts, non-finite numbers, total mismatch).
	ErrMalformedDataset = errors.New("rose: malformed dataset")

	// ErrUnknownScheme is returned by ParseScheme for unrecognized names.
	ErrUnknownScheme = errors.New("rose: unknown color scheme")

	// ErrUnknownView is returned by ParseViewKind for unrecognized names.
	ErrUnknownView = errors.New("rose: unknown view")
)
