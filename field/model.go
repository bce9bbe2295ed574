package field

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/promptfield/buffer"
)

// Model is a Bubble Tea component wrapping one prompt-field session.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model

	lastVersion uint64
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Value, buffer.Options{PasteThreshold: cfg.PasteThreshold}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	if cfg.CursorOffset != nil {
		m.buf.SetCursor(*cfg.CursorOffset)
	}
	m.lastVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

// Buffer exposes the session state. Hosts may drive edits through it
// directly; the model resyncs on the next Update.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Value returns the current text.
func (m Model) Value() string { return m.buf.Text() }

// CursorOffset returns the insertion point in runes.
func (m Model) CursorOffset() int { return m.buf.Cursor().Offset }

// SetValue replaces the content with the cursor at the end. Tracked paste
// segments do not survive: the new value has no paste provenance.
func (m Model) SetValue(s string) Model {
	m.buf = buffer.New(s, buffer.Options{PasteThreshold: m.cfg.PasteThreshold})
	m.lastVersion = m.buf.Version()
	m.rebuildContent()
	m.followCursor()
	return m
}

// Reset clears the field.
func (m Model) Reset() Model { return m.SetValue("") }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Resync in case the host mutated the buffer outside the field.
		m.syncFromBuffer()
		return m, cmd
	default:
		m.syncFromBuffer()
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) syncFromBuffer() {
	if m.buf == nil {
		return
	}
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	m.rebuildContent()
	m.followCursor()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	row := m.cursorDisplayRow()
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
