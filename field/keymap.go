package field

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the field key bindings.
//
// The ignored bindings are consumed while focused but carry no editing
// semantics; hosts that want them (tab to change focus, ctrl+c to quit)
// should handle the keys before forwarding to the field.
type KeyMap struct {
	Left, Right key.Binding
	Backspace   key.Binding
	Submit      key.Binding

	Up, Down  key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	Interrupt key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		// Both erase keys delete leftward in a one-line prompt.
		Backspace: key.NewBinding(key.WithKeys("backspace", "delete", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),

		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		Tab:       key.NewBinding(key.WithKeys("tab")),
		ShiftTab:  key.NewBinding(key.WithKeys("shift+tab")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 &&
		len(km.Right.Keys()) == 0 &&
		len(km.Backspace.Keys()) == 0 &&
		len(km.Submit.Keys()) == 0
}
