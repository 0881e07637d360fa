package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/octologs/wheelpicker/internal/tui/theme"
)

// wheelRows is the number of visible rows per column (odd, selection
// centered).
const wheelRows = 7

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
}

func tabStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Padding(0, 1)
}

func activeTabStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight)).Padding(0, 1)
}

func columnStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1)
}

func activeColumnStyle() lipgloss.Style {
	return columnStyle().BorderForeground(lipgloss.Color(theme.SelectedBorder))
}

func itemStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
}

func dimItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func selectedItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Background(lipgloss.Color(theme.SelectedBg))
}

func statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}
