package picker

import (
	"fmt"
	"time"
)

// Formatter renders the numeric value of one calendar column kind.
type Formatter func(value int) string

// ItemRenderer optionally overrides the label for any (column, row) pair.
// An empty return falls back to the adapter's own formatting.
type ItemRenderer func(col, row int) string

// Default picker bounds when no explicit year range or min/max value is
// configured.
const (
	DefaultYearBegin = 1900
	DefaultYearEnd   = 2100
)

var defaultAMPM = []string{"AM", "PM"}

// CalendarConfig configures a CalendarAdapter. The zero value of every
// field is a usable default: layout is required, everything else falls
// back (value = now, years 1900..2100, hours unbounded, interval 1,
// zero-padded numeric labels).
type CalendarConfig struct {
	Layout Layout
	Value  time.Time

	// Explicit bounds. When zero they are derived from the year range and
	// hour bounds below.
	Min time.Time
	Max time.Time

	YearBegin int
	YearEnd   int

	// Hour bounds for the hour and 12-hour columns. MaxHour <= 0 means
	// unbounded (23).
	MinHour int
	MaxHour int

	// MinuteInterval narrows the minute column to 60/interval items. Must
	// divide 60; values below 1 mean 1.
	MinuteInterval int

	TwoDigitYear bool

	// Localization tables, injected by the host. MonthNames must have
	// exactly 12 entries when present, AMPM exactly 2.
	MonthNames []string
	AMPM       []string

	// Suffixes are appended to labels per column kind.
	Suffixes map[Kind]string

	// Formatters override the default label rendering per column kind.
	Formatters map[Kind]Formatter

	// Renderer overrides the label for individual items.
	Renderer ItemRenderer
}

// CalendarAdapter maps a single date-time value onto an ordered set of
// columns. Every Select replaces the value wholesale with a new clamped,
// calendar-valid one and reports which columns went stale.
type CalendarAdapter struct {
	layout Layout
	value  time.Time
	min    time.Time
	max    time.Time

	yearBegin      int
	yearEnd        int
	minHour        int
	maxHour        int
	hourBounded    bool
	minuteInterval int
	twoDigitYear   bool

	// Numeric column ranges, derived once from the bounds above.
	years   Range
	hours   Range
	minutes Range

	months     []string
	ampm       []string
	suffixes   map[Kind]string
	formatters map[Kind]Formatter
	renderer   ItemRenderer

	selected []int

	// Derived once from the layout: whether a month/year change can
	// invalidate a day column rendered to its left, and whether an am/pm
	// change can invalidate a 12-hour column to its right.
	needsPrevRebuild bool
	ampmBefore       bool
}

// NewCalendarAdapter validates the configuration and builds an adapter
// whose value is clamped into bounds and whose selection vector is synced.
// Only configuration mistakes are errors; an out-of-bounds initial value
// silently clamps to the nearest bound.
func NewCalendarAdapter(cfg CalendarConfig) (*CalendarAdapter, error) {
	if err := cfg.Layout.validate(); err != nil {
		return nil, err
	}
	if len(cfg.MonthNames) != 0 && len(cfg.MonthNames) != 12 {
		return nil, ErrBadMonthTable
	}
	if len(cfg.AMPM) != 0 && len(cfg.AMPM) != 2 {
		return nil, ErrBadAMPMTable
	}
	interval := cfg.MinuteInterval
	if interval < 1 {
		interval = 1
	}
	if 60%interval != 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMinuteInterval, interval)
	}

	a := &CalendarAdapter{
		layout:           append(Layout(nil), cfg.Layout...),
		minuteInterval:   interval,
		twoDigitYear:     cfg.TwoDigitYear,
		months:           cfg.MonthNames,
		suffixes:         cfg.Suffixes,
		formatters:       cfg.Formatters,
		renderer:         cfg.Renderer,
		selected:         make([]int, len(cfg.Layout)),
		needsPrevRebuild: cfg.Layout.needsPrevRebuild(),
		ampmBefore:       cfg.Layout.ampmBeforeHour12(),
	}

	a.ampm = cfg.AMPM
	if len(a.ampm) == 0 {
		a.ampm = defaultAMPM
	}

	a.minHour = cfg.MinHour
	if a.minHour < 0 {
		a.minHour = 0
	}
	a.maxHour = cfg.MaxHour
	if a.maxHour <= 0 || a.maxHour > 23 {
		a.maxHour = 23
	}
	a.hourBounded = a.minHour > 0 || a.maxHour < 23

	a.yearBegin = cfg.YearBegin
	if a.yearBegin == 0 {
		a.yearBegin = DefaultYearBegin
	}
	a.yearEnd = cfg.YearEnd
	if a.yearEnd == 0 {
		a.yearEnd = DefaultYearEnd
	}
	if !cfg.Min.IsZero() {
		a.yearBegin = cfg.Min.Year()
	}
	if !cfg.Max.IsZero() {
		a.yearEnd = cfg.Max.Year()
	}
	if a.yearEnd < a.yearBegin {
		a.yearEnd = a.yearBegin
	}

	a.years = NewRange(a.yearBegin, a.yearEnd)
	a.hours = NewRange(a.minHour, a.maxHour)
	a.minutes = NewSteppedRange(0, 59, interval)

	value := cfg.Value
	if value.IsZero() {
		value = time.Now()
	}
	loc := value.Location()

	a.min = cfg.Min
	if a.min.IsZero() {
		a.min = time.Date(a.yearBegin, time.January, 1, a.minHour, 0, 0, 0, loc)
	}
	a.max = cfg.Max
	if a.max.IsZero() {
		a.max = time.Date(a.yearEnd, time.December, 31, a.maxHour, 59, 59, 0, loc)
	}

	a.value = a.clamp(value.Truncate(time.Second))
	a.syncFromValue()
	return a, nil
}

// Columns returns the number of columns in the layout.
func (a *CalendarAdapter) Columns() int { return len(a.layout) }

// Linked reports false: calendar columns are interdependent through the
// value, not through left-neighbor item lists.
func (a *CalendarAdapter) Linked() bool { return false }

// Value returns the current date-time.
func (a *CalendarAdapter) Value() time.Time { return a.value }

// SetValue replaces the value before the first render, clamping into
// bounds and resyncing every column. Calling it mid-interaction bypasses
// rebuild signaling and is unsupported.
func (a *CalendarAdapter) SetValue(t time.Time) {
	a.value = a.clamp(t.Truncate(time.Second))
	a.syncFromValue()
}

// Layout returns the adapter's column layout.
func (a *CalendarAdapter) Layout() Layout { return a.layout }

// Count returns the item count of a column, derived from its kind and the
// current value (day counts follow the selected year and month).
func (a *CalendarAdapter) Count(col int) int {
	if col < 0 || col >= len(a.layout) {
		return 0
	}
	switch a.layout[col] {
	case KindYear:
		return a.years.Count()
	case KindMonth:
		return 12
	case KindDay:
		return daysInMonth(a.value.Year(), a.value.Month())
	case KindHour:
		return a.hours.Count()
	case KindMinute:
		return a.minutes.Count()
	case KindSecond:
		return 60
	case KindAMPM:
		return 2
	case KindHour12:
		if !a.hourBounded {
			return 12
		}
		lo, hi := a.hour12Bounds()
		if hi < lo {
			return 0
		}
		return hi - lo + 1
	}
	return 0
}

// Label renders the display text for one item: the injected per-item
// renderer wins when it returns a non-empty string, then a per-kind
// formatter, then zero-padded numerals (with month names and am/pm strings
// when tables are configured). A configured suffix is appended last.
func (a *CalendarAdapter) Label(col, row int) string {
	if col < 0 || col >= len(a.layout) {
		return ""
	}
	if a.renderer != nil {
		if s := a.renderer(col, row); s != "" {
			return s
		}
	}
	kind := a.layout[col]
	v := a.itemValue(kind, row)
	var s string
	if f, ok := a.formatters[kind]; ok && f != nil {
		s = f(v)
	} else {
		s = a.defaultLabel(kind, row, v)
	}
	return s + a.suffixes[kind]
}

// SelectedIndex returns the column's selected row.
func (a *CalendarAdapter) SelectedIndex(col int) int {
	if col < 0 || col >= len(a.selected) {
		return 0
	}
	return a.selected[col]
}

// Select applies a settled selection: the chosen field is recomputed from
// the kind and row, the day is clamped to the new month's length, and a
// fresh value replaces the old one after clamping into [min, max] and the
// configured hour bounds. The returned change flags a wholesale clamp
// (full resync) or a day-count shift (the day column alone went stale).
func (a *CalendarAdapter) Select(col, row int) Change {
	if col < 0 || col >= len(a.layout) || row < 0 {
		return Change{}
	}

	year, month, day := a.value.Date()
	hour, minute, sec := a.value.Clock()
	oldDays := daysInMonth(year, month)

	switch a.layout[col] {
	case KindYear:
		year = a.years.ValueAt(row)
	case KindMonth:
		month = time.Month(row + 1)
	case KindDay:
		day = row + 1
	case KindHour:
		hour = a.hours.ValueAt(row)
	case KindMinute:
		minute = a.minutes.ValueAt(row)
	case KindSecond:
		sec = row
	case KindAMPM:
		hour = foldAMPM(hour, minute, row == 1)
	case KindHour12:
		if a.hourBounded {
			lo, hi := a.hour12Bounds()
			if h := lo + row; h <= hi {
				hour = h
			}
		} else {
			hour = foldAMPM(row+1, minute, hour >= 12)
		}
	}

	days := daysInMonth(year, month)
	if day > days {
		day = days
	}

	next := time.Date(year, month, day, hour, minute, sec, 0, a.value.Location())
	clamped := a.clamp(next)
	a.value = clamped
	a.syncFromValue()

	if !clamped.Equal(next) {
		return Change{Clamped: true}
	}
	if days != oldDays {
		if dayCol := a.layout.Position(KindDay); dayCol != IndexNotFound {
			return Change{Stale: []int{dayCol}}
		}
	}
	return Change{}
}

// NeedsRebuild reports whether col's rendered content is stale after a
// change in column changed. That happens when the day column sits left of
// month/year, the month now showing is February and the change was to the
// month or year column; or symmetrically when the am/pm column sits left
// of the 12-hour column and was the one changed. When true, the host must
// rebuild every column, including the changed one.
func (a *CalendarAdapter) NeedsRebuild(col, changed int) bool {
	if changed < 0 || changed >= len(a.layout) {
		return false
	}
	kind := a.layout[changed]
	if a.needsPrevRebuild && a.value.Month() == time.February &&
		(kind == KindMonth || kind == KindYear) {
		return true
	}
	if a.ampmBefore && kind == KindAMPM {
		return true
	}
	return false
}

// syncFromValue recomputes every column's selected index from the current
// value. Runs at construction and after every Select, so the selection
// vector is never stale between events.
func (a *CalendarAdapter) syncFromValue() {
	for col, kind := range a.layout {
		var idx int
		switch kind {
		case KindYear:
			idx = a.years.IndexOf(a.value.Year())
		case KindMonth:
			idx = int(a.value.Month()) - 1
		case KindDay:
			idx = a.value.Day() - 1
		case KindHour:
			idx = a.hours.IndexOf(a.value.Hour())
		case KindMinute:
			// Off-grid minutes settle on the nearest lower tick.
			idx = a.value.Minute() / a.minuteInterval
		case KindSecond:
			idx = a.value.Second()
		case KindAMPM:
			if a.value.Hour() >= 12 {
				idx = 1
			}
		case KindHour12:
			if a.hourBounded {
				lo, _ := a.hour12Bounds()
				idx = a.value.Hour() - lo
			} else {
				idx = clock12(a.value.Hour()) - 1
			}
		}
		a.selected[col] = clampIndex(idx, a.Count(col))
	}
}

// itemValue returns the numeric value an item displays.
func (a *CalendarAdapter) itemValue(kind Kind, row int) int {
	switch kind {
	case KindYear:
		return a.years.ValueAt(row)
	case KindMonth:
		return row + 1
	case KindDay:
		return row + 1
	case KindHour:
		return a.hours.ValueAt(row)
	case KindMinute:
		return a.minutes.ValueAt(row)
	case KindSecond:
		return row
	case KindAMPM:
		return row
	case KindHour12:
		if a.hourBounded {
			lo, _ := a.hour12Bounds()
			return clock12(lo + row)
		}
		return row + 1
	}
	return 0
}

// defaultLabel renders the built-in label for a kind.
func (a *CalendarAdapter) defaultLabel(kind Kind, row, v int) string {
	switch kind {
	case KindYear:
		if a.twoDigitYear {
			return fmt.Sprintf("%02d", v%100)
		}
		return fmt.Sprintf("%d", v)
	case KindMonth:
		if len(a.months) == 12 {
			return a.months[v-1]
		}
		return fmt.Sprintf("%02d", v)
	case KindAMPM:
		return a.ampm[row&1]
	default:
		return fmt.Sprintf("%02d", v)
	}
}

// hour12Bounds returns the inclusive internal-hour bounds of the 12-hour
// column for the currently selected am/pm half, narrowed by the configured
// hour bounds.
func (a *CalendarAdapter) hour12Bounds() (lo, hi int) {
	base := 0
	if a.value.Hour() >= 12 {
		base = 12
	}
	lo, hi = base, base+11
	if a.minHour > lo {
		lo = a.minHour
	}
	if a.maxHour < hi {
		hi = a.maxHour
	}
	return lo, hi
}

// clamp forces t into [min, max] and, when hour bounds are configured,
// forces the hour of day into [minHour, maxHour]. An am/pm fold can land
// on an hour the bounds never offer; without the hour clamp the value and
// the selection vector would disagree after the resync.
func (a *CalendarAdapter) clamp(t time.Time) time.Time {
	if t.Before(a.min) {
		return a.min
	}
	if t.After(a.max) {
		return a.max
	}
	if a.hourBounded {
		if h := t.Hour(); h < a.minHour || h > a.maxHour {
			hh := a.minHour
			if h > a.maxHour {
				hh = a.maxHour
			}
			year, month, day := t.Date()
			_, minute, sec := t.Clock()
			return time.Date(year, month, day, hh, minute, sec, 0, t.Location())
		}
	}
	return t
}

// foldAMPM converts an hour to the other (or same) half of a 12-hour
// clock. The hour passed in may be an internal 0-23 hour or a 1-12 clock
// face hour. The midnight/noon branches are deliberately asymmetric
// between the halves; the minute threshold decides whether 12 and 0 swap.
func foldAMPM(hour, minute int, pm bool) int {
	if pm {
		switch {
		case hour >= 1 && hour <= 11:
			return hour + 12
		case hour == 12 && minute > 0:
			return 0
		case hour == 0 && minute == 0:
			return 12
		}
		return hour
	}
	switch {
	case hour == 12:
		return 0
	case hour == 0 && minute > 0:
		return 12
	case hour > 12:
		return hour - 12
	}
	return hour
}

// clock12 maps an internal 0-23 hour to the 1-12 clock face.
func clock12(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}

// daysInMonth returns the number of days in a month, leap-year aware
// (divisible by 4 and either not by 100 or by 400).
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// clampIndex forces an index into [0, count-1]; an empty column pins it
// at zero.
func clampIndex(idx, count int) int {
	if idx < 0 || count <= 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	return idx
}
