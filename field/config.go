package field

// Config configures the field Model.
type Config struct {
	// Value is the initial text for the internal buffer.
	Value string

	// CursorOffset optionally overrides the initial cursor position, in
	// runes. Nil places the cursor at the end of Value; out-of-range values
	// are clamped.
	CursorOffset *int

	// Placeholder is hint text rendered while the value is empty.
	Placeholder string

	// Mask, when non-zero, replaces every value rune in the rendered output.
	// Masked fields never reveal paste boundaries.
	Mask rune

	// HideCursor suppresses the cursor cell and disables arrow-key movement.
	HideCursor bool

	// HighlightPastedText extends the cursor highlight over the whole of a
	// just-inserted multi-rune run.
	HighlightPastedText bool

	// PasteThreshold is the run length, in runes, at which one insert
	// collapses into a placeholder token. 0 uses buffer.DefaultPasteThreshold.
	PasteThreshold int

	// KeyMap overrides the default key bindings. The zero value means
	// DefaultKeyMap().
	KeyMap KeyMap

	// Style controls rendering; DefaultStyle() is a usable starting point.
	Style Style

	// OnChange fires after every effective value mutation. Movement and
	// rejected edits never fire it.
	OnChange func(ChangeEvent)

	// OnSubmit fires on the submit key; the value itself is untouched.
	OnSubmit func(SubmitEvent)
}
