package field

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// pasteTagFormat is the collapsed-paste token; the count is the paste's
// length in runes, not its rendered width.
const pasteTagFormat = "(Pasted: %d chars)"

func (m *Model) displayUnits() []Unit {
	ph := m.cfg.Placeholder
	if w := m.viewport.Width; w > 0 && runewidth.StringWidth(ph) > w {
		// Keep the hint on one line instead of letting it wrap.
		ph = runewidth.Truncate(ph, w, "")
	}

	return projectUnits(displayState{
		Text:        m.buf.Runes(),
		Cursor:      m.buf.Cursor(),
		Segments:    m.buf.Segments(),
		Placeholder: ph,
		Mask:        m.cfg.Mask,
		ShowCursor:  !m.cfg.HideCursor && m.focused,
		Highlight:   m.cfg.HighlightPastedText,
	})
}

func (m *Model) renderContent() string {
	st := m.cfg.Style

	var sb strings.Builder
	for _, u := range m.displayUnits() {
		switch u.Kind {
		case UnitPasted:
			sb.WriteString(st.PasteTag.Render(fmt.Sprintf(pasteTagFormat, u.Length)))
		case UnitCursor:
			sb.WriteString(st.Cursor.Render(u.Text))
		case UnitPlaceholder:
			sb.WriteString(renderRun(st.Placeholder, u.Text))
		default:
			sb.WriteString(renderRun(st.Text, u.Text))
		}
	}
	return sb.String()
}

// cursorDisplayRow returns the display row carrying the cursor cell, for
// viewport following. Collapsed pastes occupy a single row regardless of the
// newlines inside them.
func (m *Model) cursorDisplayRow() int {
	row := 0
	for _, u := range m.displayUnits() {
		if u.Kind == UnitCursor {
			return row
		}
		row += strings.Count(u.Text, "\n")
	}
	return row
}

// renderRun styles a run that may span display lines. Newlines are emitted
// bare so styling never bleeds across rows.
func renderRun(style lipgloss.Style, text string) string {
	if !strings.Contains(text, "\n") {
		return style.Render(text)
	}
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		if p != "" {
			parts[i] = style.Render(p)
		}
	}
	return strings.Join(parts, "\n")
}
