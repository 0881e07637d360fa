package locale

import "errors"

// Registration errors. A failed registration never corrupts
// already-registered tables.
var (
	// ErrEmptyLocaleName indicates a registration without a locale name
	ErrEmptyLocaleName = errors.New("locale name cannot be empty")

	// ErrBadMonthTable indicates a month table without exactly twelve non-empty entries
	ErrBadMonthTable = errors.New("month table must have exactly 12 non-empty entries")

	// ErrBadAMPMTable indicates an am/pm table without exactly two non-empty entries
	ErrBadAMPMTable = errors.New("am/pm table must have exactly 2 non-empty entries")
)
