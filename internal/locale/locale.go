// Package locale holds the display-string tables the picker's calendar
// columns are localized with: month names, am/pm markers and button
// labels. Tables are registered by name; lookups fall back to English so
// the core never renders an empty label.
package locale

import "fmt"

// Table is one locale's display strings.
type Table struct {
	Months  [12]string
	AMPM    [2]string
	Confirm string
	Cancel  string
}

// DefaultLocale is used when a requested locale is not registered.
const DefaultLocale = "en"

var registry = map[string]Table{
	"en": {
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		AMPM:    [2]string{"AM", "PM"},
		Confirm: "Confirm",
		Cancel:  "Cancel",
	},
	"es": {
		Months: [12]string{
			"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
			"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
		},
		AMPM:    [2]string{"AM", "PM"},
		Confirm: "Confirmar",
		Cancel:  "Cancelar",
	},
	"ja": {
		Months: [12]string{
			"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月",
		},
		AMPM:    [2]string{"午前", "午後"},
		Confirm: "確定",
		Cancel:  "キャンセル",
	},
}

// Get returns the table for a locale, falling back to English when the
// locale is unknown.
func Get(name string) Table {
	if t, ok := registry[name]; ok {
		return t
	}
	return registry[DefaultLocale]
}

// Names returns the registered locale names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a locale's full table. The table must carry
// twelve non-empty month names and two non-empty am/pm markers; a
// malformed table fails the call and leaves the registry untouched.
func Register(name string, t Table) error {
	if name == "" {
		return ErrEmptyLocaleName
	}
	for i, m := range t.Months {
		if m == "" {
			return fmt.Errorf("%w: month %d is empty", ErrBadMonthTable, i+1)
		}
	}
	for i, s := range t.AMPM {
		if s == "" {
			return fmt.Errorf("%w: entry %d is empty", ErrBadAMPMTable, i)
		}
	}
	registry[name] = t
	return nil
}

// RegisterMonths replaces one locale's month names. Exactly twelve entries
// are required; anything else fails without touching the locale.
func RegisterMonths(name string, months []string) error {
	if len(months) != 12 {
		return fmt.Errorf("%w: got %d", ErrBadMonthTable, len(months))
	}
	t := Get(name)
	copy(t.Months[:], months)
	return Register(name, t)
}

// RegisterAMPM replaces one locale's am/pm markers. Exactly two entries
// are required.
func RegisterAMPM(name string, ampm []string) error {
	if len(ampm) != 2 {
		return fmt.Errorf("%w: got %d", ErrBadAMPMTable, len(ampm))
	}
	t := Get(name)
	copy(t.AMPM[:], ampm)
	return Register(name, t)
}

// Months returns a locale's month names as a slice, ready for injection
// into a calendar adapter.
func Months(name string) []string {
	t := Get(name)
	return append([]string(nil), t.Months[:]...)
}

// AMPM returns a locale's am/pm markers as a slice.
func AMPM(name string) []string {
	t := Get(name)
	return append([]string(nil), t.AMPM[:]...)
}
