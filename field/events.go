package field

import "github.com/iw2rmb/promptfield/buffer"

// ChangeEvent is delivered to Config.OnChange after an effective mutation.
type ChangeEvent struct {
	Version  uint64
	Value    string
	Cursor   buffer.Cursor
	Segments []buffer.Segment
}

// SubmitEvent is delivered to Config.OnSubmit when the submit key fires.
type SubmitEvent struct {
	Value string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	return ChangeEvent{
		Version:  b.Version(),
		Value:    b.Text(),
		Cursor:   b.Cursor(),
		Segments: b.Segments(),
	}
}
