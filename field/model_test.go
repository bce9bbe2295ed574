package field

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNew_InitialCursorDefaultsToEnd(t *testing.T) {
	m := New(Config{Value: "hello"})
	if got, want := m.CursorOffset(), 5; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestNew_InitialCursorOverrideIsClamped(t *testing.T) {
	offset := 2
	m := New(Config{Value: "hello", CursorOffset: &offset})
	if got, want := m.CursorOffset(), 2; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	big := 99
	m = New(Config{Value: "hi", CursorOffset: &big})
	if got, want := m.CursorOffset(), 2; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestSetValue_DropsSegments(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(keyPaste(strings.Repeat("X", 200)))
	if got := len(m.Buffer().Segments()); got != 1 {
		t.Fatalf("segments=%d, want 1", got)
	}

	m = m.SetValue("fresh")
	if got, want := m.Value(), "fresh"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if got := m.Buffer().Segments(); len(got) != 0 {
		t.Fatalf("segments=%v, want none", got)
	}
	if got, want := m.CursorOffset(), 5; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestReset_ClearsValue(t *testing.T) {
	m := New(Config{Value: "something"})
	m = m.Reset()
	if got := m.Value(); got != "" {
		t.Fatalf("value=%q, want empty", got)
	}
}

func TestFocusBlur(t *testing.T) {
	m := New(Config{})
	if !m.Focused() {
		t.Fatalf("expected new model focused")
	}
	m = m.Blur()
	if m.Focused() {
		t.Fatalf("expected blurred")
	}
	m = m.Focus()
	if !m.Focused() {
		t.Fatalf("expected focused again")
	}
}

func TestView_ScrollsToCursorRow(t *testing.T) {
	m := New(Config{Value: "l1\nl2\nl3\nl4\nl5"})
	m = m.SetSize(10, 2)

	// Cursor is at the end, on the last logical row.
	view := m.View()
	if !strings.Contains(view, "l5") {
		t.Fatalf("expected view to follow cursor to last row, got %q", view)
	}
}

func TestUpdate_WindowSizeMsgResizes(t *testing.T) {
	m := New(Config{Value: "abc"})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 3})
	if got := m.viewport.Width; got != 20 {
		t.Fatalf("width=%d, want 20", got)
	}
	if got := m.viewport.Height; got != 3 {
		t.Fatalf("height=%d, want 3", got)
	}
}

func TestUpdate_ResyncsAfterHostMutation(t *testing.T) {
	m := New(Config{Value: "abc"})
	m = m.SetSize(20, 2)
	m.Buffer().Insert("!")

	m, _ = m.Update(struct{}{})
	if !strings.Contains(m.View(), "abc!") {
		t.Fatalf("view did not pick up host mutation: %q", m.View())
	}
}
