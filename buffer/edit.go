package buffer

import "github.com/iw2rmb/promptfield/internal/runeutil"

// Insert splices a run of text at the cursor.
//
// Every carriage return in the run is normalized to a newline first. A run of
// two or more runes marks the cursor with the run's length for paste
// highlighting; a run at or above the paste threshold additionally becomes a
// tracked segment, superseding any segment it lands on. Single-rune inserts
// never create segments.
func (b *Buffer) Insert(text string) {
	run := runeutil.NormalizeNewlines([]rune(text))
	if len(run) == 0 {
		return
	}

	prev := b.snapshot()
	at := clampInt(b.cursor.Offset, 0, len(b.text))

	next := make([]rune, 0, len(b.text)+len(run))
	next = append(next, b.text[:at]...)
	next = append(next, run...)
	next = append(next, b.text[at:]...)
	b.text = next

	n := len(run)
	width := 0
	if n > 1 {
		width = n
	}
	if n > 1 && n >= b.pasteThreshold() {
		b.store.registerLargeInsert(at, n)
	} else {
		b.store.shiftForInsert(at, n)
	}

	b.cursor = Cursor{Offset: at + n, Width: width}
	b.version++
	b.recordChange(prev, at, string(run), "")
}

// DeleteBackward applies backspace semantics.
//
// A cursor sitting exactly at a segment's right edge deletes the entire
// segment in one step. A deletion that would start strictly inside a segment
// is rejected: a tracked paste cannot be partially erased. Otherwise exactly
// one rune to the left of the cursor is removed.
func (b *Buffer) DeleteBackward() {
	off := clampInt(b.cursor.Offset, 0, len(b.text))
	if off == 0 {
		b.clearWidth()
		return
	}

	if seg, ok := b.store.endingAt(off); ok {
		prev := b.snapshot()
		deleted := string(b.text[seg.Start:off])
		b.text = append(b.text[:seg.Start], b.text[off:]...)
		b.store.remove(seg.ID)
		b.store.shiftForDelete(seg.Start, seg.Length)
		b.cursor = Cursor{Offset: seg.Start}
		b.version++
		b.recordChange(prev, seg.Start, "", deleted)
		return
	}

	if _, ok := b.store.containing(off - 1); ok {
		// Mid-segment backspace is a deliberate no-op.
		b.clearWidth()
		return
	}

	prev := b.snapshot()
	deleted := string(b.text[off-1 : off])
	b.text = append(b.text[:off-1], b.text[off:]...)
	b.store.shiftForDelete(off-1, 1)
	b.cursor = Cursor{Offset: off - 1}
	b.version++
	b.recordChange(prev, off-1, "", deleted)
}

// clearWidth drops the transient paste-highlight width without treating the
// operation as a mutation.
func (b *Buffer) clearWidth() {
	if b.cursor.Width == 0 {
		return
	}
	b.cursor.Width = 0
	b.version++
}
