package field

import "github.com/charmbracelet/lipgloss"

// Style controls the field's rendering.
type Style struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	PasteTag    lipgloss.Style
	Cursor      lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Faint(true),
		PasteTag:    lipgloss.NewStyle().Faint(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}
