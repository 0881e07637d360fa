package tui

import (
	"log/slog"
	"time"

	"github.com/octologs/wheelpicker/internal/config"
	"github.com/octologs/wheelpicker/internal/locale"
	"github.com/octologs/wheelpicker/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

// Tab is one demo picker: a controller plus the adapter behind it.
type Tab struct {
	Title      string
	Controller *picker.Controller

	// Exactly one of these is set, depending on the tab's adapter.
	Calendar *picker.CalendarAdapter
	Array    *picker.ArrayAdapter
}

// Model represents the application state for the TUI
type Model struct {
	cfg  *config.Config
	keys KeyMap

	tabs   []Tab
	active int
	column int

	width  int
	height int

	showHelp bool

	// lastRebuilt summarizes the rebuild requests the last scroll event
	// produced, shown in the status bar.
	lastRebuilt string
}

// InitialModel creates the TUI model with the three demo pickers. The
// linked picker uses the given forest; when it is empty a small built-in
// sample is used instead.
func InitialModel(cfg *config.Config, forest []*picker.Option) Model {
	if len(forest) == 0 {
		forest = sampleForest()
	}

	m := Model{
		cfg:  cfg,
		keys: DefaultKeyMap(),
	}

	if tab, ok := dateTimeTab(cfg); ok {
		m.tabs = append(m.tabs, tab)
	}

	linked := picker.NewLinkedAdapter(forest)
	var opts []picker.ControllerOption
	if cfg.Picker.ResetDescendants {
		opts = append(opts, picker.WithResetDescendants())
	}
	m.tabs = append(m.tabs, Tab{
		Title:      "Location",
		Controller: picker.NewController(linked, opts...),
		Array:      linked,
	})

	independent := picker.NewArrayAdapter(sampleColumns())
	m.tabs = append(m.tabs, Tab{
		Title:      "Options",
		Controller: picker.NewController(independent),
		Array:      independent,
	})

	return m
}

// dateTimeTab builds the calendar picker tab from the configured defaults.
func dateTimeTab(cfg *config.Config) (Tab, bool) {
	layout, err := picker.ParseLayout(cfg.Picker.Layout)
	if err != nil {
		slog.Error("invalid picker layout, falling back to ymd",
			"layout", cfg.Picker.Layout, "error", err)
		layout, _ = picker.ParseLayout("ymd")
	}

	calCfg := picker.CalendarConfig{
		Layout:         layout,
		Value:          time.Now(),
		YearBegin:      cfg.Picker.YearBegin,
		YearEnd:        cfg.Picker.YearEnd,
		MinuteInterval: cfg.Picker.MinuteInterval,
		TwoDigitYear:   cfg.Picker.TwoDigitYear,
		AMPM:           locale.AMPM(cfg.Picker.Locale),
	}
	if cfg.Picker.MonthNames {
		calCfg.MonthNames = locale.Months(cfg.Picker.Locale)
	}

	calendar, err := picker.NewCalendarAdapter(calCfg)
	if err != nil {
		slog.Error("failed to build calendar adapter", "error", err)
		return Tab{}, false
	}

	return Tab{
		Title:      "Date & Time",
		Controller: picker.NewController(calendar),
		Calendar:   calendar,
	}, true
}

// currentTab returns the active tab.
func (m Model) currentTab() *Tab {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil
	}
	return &m.tabs[m.active]
}

// sampleForest is the fallback linked data when no dataset is stored.
func sampleForest() []*picker.Option {
	return []*picker.Option{
		picker.NewOption("America",
			picker.NewOption("Mexico",
				picker.NewOption("Guadalajara"),
				picker.NewOption("Monterrey"),
			),
			picker.NewOption("Canada",
				picker.NewOption("Toronto"),
				picker.NewOption("Vancouver"),
			),
		),
		picker.NewOption("Europe",
			picker.NewOption("Spain",
				picker.NewOption("Madrid"),
				picker.NewOption("Sevilla"),
			),
			picker.NewOption("Norway",
				picker.NewOption("Oslo"),
			),
		),
	}
}

// sampleColumns are the independent demo columns.
func sampleColumns() []*picker.Option {
	return []*picker.Option{
		picker.NewOption("size",
			picker.NewOption("S"), picker.NewOption("M"),
			picker.NewOption("L"), picker.NewOption("XL"),
		),
		picker.NewOption("color",
			picker.NewOption("red"), picker.NewOption("green"),
			picker.NewOption("blue"),
		),
		picker.NewOption("material",
			picker.NewOption("cotton"), picker.NewOption("linen"),
			picker.NewOption("wool"),
		),
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	// No initial commands needed yet
	return nil
}
