package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	ColorScheme ColorScheme    `yaml:"theme"`
	Picker      PickerDefaults `yaml:"picker"`
}

// PickerDefaults configures the demo pickers
type PickerDefaults struct {
	// Layout is the compact date-time layout string, e.g. "ymd" or "dmyHM"
	Layout string `yaml:"layout"`

	// Locale selects the month-name and am/pm tables
	Locale string `yaml:"locale"`

	YearBegin      int  `yaml:"year_begin"`
	YearEnd        int  `yaml:"year_end"`
	MinuteInterval int  `yaml:"minute_interval"`
	TwoDigitYear   bool `yaml:"two_digit_year"`

	// MonthNames switches the month column from numerals to names
	MonthNames bool `yaml:"month_names"`

	// ResetDescendants resets linked columns right of a change to their
	// first item
	ResetDescendants bool `yaml:"reset_descendants"`

	// Dataset is the stored dataset name the linked picker loads
	Dataset string `yaml:"dataset"`
}

// DefaultPickerDefaults returns the built-in picker defaults
func DefaultPickerDefaults() PickerDefaults {
	return PickerDefaults{
		Layout:         "ymd",
		Locale:         "en",
		YearBegin:      1900,
		YearEnd:        2100,
		MinuteInterval: 1,
		MonthNames:     true,
		Dataset:        "locations",
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return &Config{
			ColorScheme: DefaultColorScheme(),
			Picker:      DefaultPickerDefaults(),
		}, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{
			ColorScheme: DefaultColorScheme(),
			Picker:      DefaultPickerDefaults(),
		}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "wheelpicker", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "wheelpicker", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.ColorScheme.ApplyDefaults()
	d := DefaultPickerDefaults()
	if c.Picker.Layout == "" {
		c.Picker.Layout = d.Layout
	}
	if c.Picker.Locale == "" {
		c.Picker.Locale = d.Locale
	}
	if c.Picker.YearBegin == 0 {
		c.Picker.YearBegin = d.YearBegin
	}
	if c.Picker.YearEnd == 0 {
		c.Picker.YearEnd = d.YearEnd
	}
	if c.Picker.MinuteInterval == 0 {
		c.Picker.MinuteInterval = d.MinuteInterval
	}
	if c.Picker.Dataset == "" {
		c.Picker.Dataset = d.Dataset
	}
}
