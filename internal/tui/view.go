package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/octologs/wheelpicker/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	tab := m.currentTab()
	if tab == nil {
		return "No pickers configured"
	}

	var b strings.Builder

	b.WriteString(titleStyle().Render("wheelpicker") + "\n\n")
	b.WriteString(m.renderTabs() + "\n\n")
	b.WriteString(m.renderColumns(tab) + "\n\n")
	b.WriteString(m.renderStatus(tab))

	return b.String()
}

// renderTabs renders the picker tab bar
func (m Model) renderTabs() string {
	parts := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.active {
			parts[i] = activeTabStyle().Render("[" + tab.Title + "]")
		} else {
			parts[i] = tabStyle().Render(tab.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderColumns renders the active picker's wheels side by side
func (m Model) renderColumns(tab *Tab) string {
	c := tab.Controller
	columns := make([]string, 0, c.Columns())

	for col := 0; col < c.Columns(); col++ {
		wheel := m.renderWheel(tab, col)
		if col == m.column {
			columns = append(columns, activeColumnStyle().Render(wheel))
		} else {
			columns = append(columns, columnStyle().Render(wheel))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, columns...)
}

// renderWheel renders one column as a fixed window of rows centered on
// the selection
func (m Model) renderWheel(tab *Tab, col int) string {
	c := tab.Controller
	count := c.Count(col)
	selected := c.SelectedIndex(col)
	half := wheelRows / 2

	// Column width follows the widest label
	width := 2
	for row := 0; row < count; row++ {
		if w := lipgloss.Width(c.Label(col, row)); w > width {
			width = w
		}
	}

	var rows []string
	for offset := -half; offset <= half; offset++ {
		row := selected + offset
		if row < 0 || row >= count {
			rows = append(rows, strings.Repeat(" ", width))
			continue
		}

		label := padTo(c.Label(col, row), width)
		switch {
		case row == selected:
			rows = append(rows, selectedItemStyle().Render(label))
		case offset == -half || offset == half:
			// Edge rows fade out like a wheel curving away
			rows = append(rows, dimItemStyle().Render(label))
		default:
			rows = append(rows, itemStyle().Render(label))
		}
	}

	return strings.Join(rows, "\n")
}

// padTo right-pads a label to the column width
func padTo(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderStatus renders the current selection summary and the last
// rebuild-request note
func (m Model) renderStatus(tab *Tab) string {
	var summary string
	switch {
	case tab.Calendar != nil:
		summary = tab.Calendar.Value().Format("2006-01-02 15:04:05")
	case tab.Array != nil:
		values := tab.Array.SelectedValues()
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf("%v", v)
		}
		summary = strings.Join(parts, " / ")
	}

	status := "selected: " + summary
	if m.lastRebuilt != "" {
		status += "   " + m.lastRebuilt
	}
	status += "\n" + "tab: switch picker  h/l: column  j/k: scroll  ?: help  q: quit"

	return statusStyle().Render(status)
}

// renderHelp renders the markdown help overlay
func (m Model) renderHelp() string {
	width := m.width - 4
	if width > 76 {
		width = 76
	}
	return components.RenderMarkdown(helpText, width)
}

const helpText = `# wheelpicker

A multi-column wheel selector.

## Keys

| Key | Action |
| --- | ------ |
| h / l | move between columns |
| j / k | scroll the active column |
| tab | switch picker |
| ? | toggle this help |
| q | quit |

## Pickers

* **Date & Time** — columns follow the configured layout string; day
  counts track the selected month and year.
* **Location** — linked columns; changing a column swaps every column to
  its right.
* **Options** — independent columns.
`
