package buffer

// Cursor is the insertion point in rune offsets.
//
// Width is transient: it holds the length of the most recent multi-rune
// insert and is cleared by every other operation. The field layer uses it to
// highlight a just-pasted run.
type Cursor struct {
	Offset int
	Width  int
}

// Segment marks a contiguous region of the buffer that was inserted by a
// single large paste. Segments never overlap, and Start always tracks the
// region's left edge in the current text.
//
// ID is assigned once at creation and never reused, so it stays a stable
// identity across the positional shifts that later edits apply.
type Segment struct {
	Start  int
	Length int
	ID     int
}

// End returns the offset one past the segment's last rune.
func (s Segment) End() int { return s.Start + s.Length }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
