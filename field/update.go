package field

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/promptfield/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Up), key.Matches(msg, km.Down),
		key.Matches(msg, km.Tab), key.Matches(msg, km.ShiftTab),
		key.Matches(msg, km.Interrupt):
		// No editing semantics; state, callbacks, and content stay untouched.
		return m, nil

	case key.Matches(msg, km.Submit):
		if m.cfg.OnSubmit != nil {
			m.cfg.OnSubmit(SubmitEvent{Value: m.buf.Text()})
		}
		return m, nil

	case key.Matches(msg, km.Backspace):
		m.mutate(func() { m.buf.DeleteBackward() })
		return m, nil

	case key.Matches(msg, km.Left):
		if !m.cfg.HideCursor {
			m.buf.Move(buffer.DirLeft)
			m.syncFromBuffer()
		}
		return m, nil

	case key.Matches(msg, km.Right):
		if !m.cfg.HideCursor {
			m.buf.Move(buffer.DirRight)
			m.syncFromBuffer()
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insert(string(msg.Runes))
		}
		return m, nil
	}
}

func (m *Model) insert(s string) {
	m.mutate(func() { m.buf.Insert(s) })
}

// mutate runs op, refreshes the view when anything changed, and fires
// OnChange only when the buffer content itself changed. Rejected edits stay
// silent.
func (m *Model) mutate(op func()) {
	verBefore := m.buf.Version()
	op()
	m.syncFromBuffer()

	ch, ok := m.buf.LastChange()
	if !ok || ch.VersionAfter <= verBefore {
		return
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}
