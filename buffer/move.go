package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
)

// Move shifts the cursor one rune left or right, clamped to the text bounds.
//
// A tracked paste behaves as one atomic unit under movement: when the step
// lands strictly inside a segment, the cursor snaps to the segment's near
// boundary instead.
func (b *Buffer) Move(dir MoveDir) {
	off := clampInt(b.cursor.Offset, 0, len(b.text))
	switch dir {
	case DirLeft:
		off--
	case DirRight:
		off++
	default:
		return
	}
	off = clampInt(off, 0, len(b.text))

	if seg, ok := b.store.containing(off); ok && off > seg.Start {
		if dir == DirLeft {
			off = seg.Start
		} else {
			off = seg.End()
		}
	}

	next := Cursor{Offset: off}
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}
