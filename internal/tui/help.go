package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	// HelpOverlayStyle defines the style for the expanded help box.
	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("36")).
		Padding(0, 2).
		MarginTop(1)
)

// HelpModel wraps the bubbles help component.
type HelpModel struct {
	help   help.Model
	keymap KeyMap
}

// NewHelpModel creates a help model for keymap.
func NewHelpModel(keymap KeyMap) HelpModel {
	return HelpModel{
		help:   help.New(),
		keymap: keymap,
	}
}

// View renders either the one-line help or the expanded overlay.
func (m HelpModel) View(width int, full bool) string {
	if !full {
		m.help.ShowAll = false
		m.help.Width = width
		return HelpStyle.Render(m.help.View(m.keymap))
	}
	m.help.ShowAll = true
	m.help.Width = width - 6 // Account for padding and border
	return HelpOverlayStyle.Render(m.help.View(m.keymap))
}
