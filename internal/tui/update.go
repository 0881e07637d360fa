package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey routes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.active = (m.active + 1) % len(m.tabs)
		m.clampColumn()
		m.lastRebuilt = ""
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
		m.clampColumn()
		m.lastRebuilt = ""
		return m, nil

	case key.Matches(msg, m.keys.PrevColumn):
		if m.column > 0 {
			m.column--
		}
		return m, nil

	case key.Matches(msg, m.keys.NextColumn):
		if tab := m.currentTab(); tab != nil && m.column < tab.Controller.Columns()-1 {
			m.column++
		}
		return m, nil

	case key.Matches(msg, m.keys.RowUp):
		return m.scroll(-1), nil

	case key.Matches(msg, m.keys.RowDown):
		return m.scroll(1), nil
	}

	return m, nil
}

// scroll moves the active column's selection and forwards the settled
// index into the controller, then drains the rebuild requests it produced.
func (m Model) scroll(delta int) Model {
	tab := m.currentTab()
	if tab == nil {
		return m
	}

	c := tab.Controller
	row := c.SelectedIndex(m.column) + delta
	if row < 0 || row >= c.Count(m.column) {
		return m
	}

	c.OnColumnChanged(m.column, row)

	all, cols := c.TakeRebuilds()
	switch {
	case all:
		m.lastRebuilt = "rebuilt: all columns"
	case len(cols) > 0:
		parts := make([]string, len(cols))
		for i, col := range cols {
			parts[i] = fmt.Sprintf("%d", col)
		}
		m.lastRebuilt = "rebuilt: " + strings.Join(parts, ", ")
	default:
		m.lastRebuilt = ""
	}

	return m
}

// clampColumn keeps the active column valid across tab switches.
func (m *Model) clampColumn() {
	tab := m.currentTab()
	if tab == nil {
		m.column = 0
		return
	}
	if max := tab.Controller.Columns() - 1; m.column > max {
		m.column = max
	}
	if m.column < 0 {
		m.column = 0
	}
}
