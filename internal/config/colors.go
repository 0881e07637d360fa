package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (selected items, titles)
	Accent string `yaml:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	SelectedBg     string `yaml:"selected_bg"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
}

// DefaultColorScheme returns the default preset
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "default",
		Accent:         "170",
		ColumnBorder:   "240",
		SelectedBg:     "236",
		SelectedBorder: "170",
		Title:          "231",
		Subtle:         "240",
		Normal:         "252",
	}
}

// Monochrome returns a grayscale preset
func Monochrome() ColorScheme {
	return ColorScheme{
		Preset:         "monochrome",
		Accent:         "255",
		ColumnBorder:   "240",
		SelectedBg:     "238",
		SelectedBorder: "255",
		Title:          "255",
		Subtle:         "244",
		Normal:         "250",
	}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return DefaultColorScheme()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.ColumnBorder == "" {
		c.ColumnBorder = preset.ColumnBorder
	}
	if c.SelectedBg == "" {
		c.SelectedBg = preset.SelectedBg
	}
	if c.SelectedBorder == "" {
		c.SelectedBorder = preset.SelectedBorder
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
}
