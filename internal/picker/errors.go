package picker

import "errors"

// Configuration errors, reported at construction time. Scroll-driven
// operation never returns errors; stale or out-of-range input is recovered
// by clamping.
var (
	// ErrEmptyLayout indicates a calendar layout with no columns
	ErrEmptyLayout = errors.New("layout has no columns")

	// ErrUnknownLayoutToken indicates an unrecognized layout character
	ErrUnknownLayoutToken = errors.New("unknown layout token")

	// ErrDuplicateKind indicates the same field appearing twice in a layout
	ErrDuplicateKind = errors.New("duplicate column kind in layout")

	// ErrBadMonthTable indicates a month-name table without exactly twelve entries
	ErrBadMonthTable = errors.New("month-name table must have exactly 12 entries")

	// ErrBadAMPMTable indicates an am/pm table without exactly two entries
	ErrBadAMPMTable = errors.New("am/pm table must have exactly 2 entries")

	// ErrBadMinuteInterval indicates a minute interval that does not divide 60
	ErrBadMinuteInterval = errors.New("minute interval must divide 60")
)
