package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/1broseidon/appswitch/internal/bindings"
)

var (
	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	appStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// RenderTable renders the registry as a four-column table: the binding
// list is split into two vertical halves shown side by side, so each row
// carries two key/application pairs. The layout depends only on the
// registry contents; rendering the same registry twice yields identical
// output.
func RenderTable(registry *bindings.Registry) string {
	entries := registry.Entries()
	half := (len(entries) + 1) / 2

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col%2 == 0 {
				return keyStyle
			}
			return appStyle
		}).
		Headers("Key", "Application", "Key", "Application")

	for i := 0; i < half; i++ {
		left := entries[i]
		var rightKey, rightApp string
		if j := i + half; j < len(entries) {
			rightKey = entries[j].Key
			rightApp = entries[j].App
		}
		t.Row(left.Key, left.App, rightKey, rightApp)
	}

	return t.String()
}
