package picker

import "fmt"

// Kind identifies which date-time field a calendar column displays.
type Kind int

const (
	KindYear Kind = iota
	KindMonth
	KindDay
	KindHour
	KindMinute
	KindSecond
	KindAMPM
	KindHour12
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindYear:
		return "year"
	case KindMonth:
		return "month"
	case KindDay:
		return "day"
	case KindHour:
		return "hour"
	case KindMinute:
		return "minute"
	case KindSecond:
		return "second"
	case KindAMPM:
		return "ampm"
	case KindHour12:
		return "hour12"
	}
	return "unknown"
}

// Layout is the ordered sequence of kinds mapping column positions 0..N-1
// to date-time fields. Duplicate kinds are not supported.
type Layout []Kind

// ParseLayout parses a compact layout string, one character per column:
//
//	y year    m month   d day
//	H hour    M minute  S second
//	a am/pm   h 12-hour hour
//
// "dmy" is a day-month-year date picker, "ymdHM" a date-time picker down
// to the minute, "ahM" a 12-hour clock with the am/pm column first.
func ParseLayout(s string) (Layout, error) {
	if s == "" {
		return nil, ErrEmptyLayout
	}
	layout := make(Layout, 0, len(s))
	for _, c := range s {
		var k Kind
		switch c {
		case 'y':
			k = KindYear
		case 'm':
			k = KindMonth
		case 'd':
			k = KindDay
		case 'H':
			k = KindHour
		case 'M':
			k = KindMinute
		case 'S':
			k = KindSecond
		case 'a':
			k = KindAMPM
		case 'h':
			k = KindHour12
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownLayoutToken, string(c))
		}
		layout = append(layout, k)
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}
	return layout, nil
}

// Position returns the column index of a kind, or IndexNotFound when the
// layout does not contain it.
func (l Layout) Position(k Kind) int {
	for i, v := range l {
		if v == k {
			return i
		}
	}
	return IndexNotFound
}

// validate rejects empty layouts and duplicate kinds.
func (l Layout) validate() error {
	if len(l) == 0 {
		return ErrEmptyLayout
	}
	var seen [8]bool
	for _, k := range l {
		if k < KindYear || k > KindHour12 {
			return fmt.Errorf("%w: %d", ErrUnknownLayoutToken, int(k))
		}
		if seen[k] {
			return fmt.Errorf("%w: %s", ErrDuplicateKind, k)
		}
		seen[k] = true
	}
	return nil
}

// needsPrevRebuild reports whether the day column sits left of both the
// month and year columns, in which case a month or year change can
// silently invalidate an already rendered day column.
func (l Layout) needsPrevRebuild() bool {
	day := l.Position(KindDay)
	if day == IndexNotFound {
		return false
	}
	month := l.Position(KindMonth)
	year := l.Position(KindYear)
	if month != IndexNotFound && day < month {
		return true
	}
	if year != IndexNotFound && day < year {
		return true
	}
	return false
}

// ampmBeforeHour12 reports whether the am/pm column sits left of the
// 12-hour hour column.
func (l Layout) ampmBeforeHour12() bool {
	ampm := l.Position(KindAMPM)
	hour := l.Position(KindHour12)
	return ampm != IndexNotFound && hour != IndexNotFound && ampm < hour
}
