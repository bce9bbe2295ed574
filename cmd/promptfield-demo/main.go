package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/promptfield/field"
)

type eventState struct {
	changes   int
	last      field.ChangeEvent
	submitted string
}

func (s *eventState) handleChange(ev field.ChangeEvent) {
	s.changes++
	s.last = ev
}

func (s *eventState) handleSubmit(ev field.SubmitEvent) {
	s.submitted = ev.Value
}

type model struct {
	field  field.Model
	events *eventState
}

func newModel() model {
	state := &eventState{}
	cfg := field.Config{
		Placeholder:         "Type, paste, submit with enter. Ctrl+Q quits.",
		HighlightPastedText: true,
		Style:               field.DefaultStyle(),
		OnChange:            state.handleChange,
		OnSubmit:            state.handleSubmit,
	}
	return model{field: field.New(cfg), events: state}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.field = m.field.SetSize(msg.Width, fieldHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := strings.Join([]string{
		"",
		fmt.Sprintf("changes: %d", m.events.changes),
		fmt.Sprintf("value runes: %d", len([]rune(m.field.Value()))),
		fmt.Sprintf("segments: %d", len(m.events.last.Segments)),
		fmt.Sprintf("last submit: %q", m.events.submitted),
	}, "\n")

	return m.field.View() + status
}

func fieldHeight(total int) int {
	h := total - 5
	if h < 0 {
		return 0
	}
	return h
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
