package theme

import "github.com/octologs/wheelpicker/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	ColumnBorder   string
	SelectedBg     string
	SelectedBorder string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	ColumnBorder = colors.ColumnBorder
	SelectedBg = colors.SelectedBg
	SelectedBorder = colors.SelectedBorder
}
