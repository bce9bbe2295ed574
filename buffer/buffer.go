package buffer

// DefaultPasteThreshold is the run length, in runes, at which a single insert
// becomes a tracked paste segment.
const DefaultPasteThreshold = 200

type Options struct {
	// PasteThreshold overrides DefaultPasteThreshold when > 0.
	PasteThreshold int
}

// Buffer is the pure session state: text, cursor, and paste segments.
type Buffer struct {
	text    []rune
	version uint64

	cursor Cursor
	store  segmentStore

	opt Options

	lastChange    Change
	hasLastChange bool
}

// New creates a buffer holding text with the cursor at the end of it.
func New(text string, opt Options) *Buffer {
	if opt.PasteThreshold <= 0 {
		opt.PasteThreshold = DefaultPasteThreshold
	}
	b := &Buffer{
		text: []rune(text),
		opt:  opt,
	}
	b.cursor = Cursor{Offset: len(b.text)}
	return b
}

func (b *Buffer) Text() string { return string(b.text) }

// Runes returns a copy of the text as runes.
func (b *Buffer) Runes() []rune {
	return append([]rune(nil), b.text...)
}

// Len returns the text length in runes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Cursor { return b.cursor }

// SetCursor moves the insertion point, clamped to [0, Len]. The paste
// highlight width is cleared.
func (b *Buffer) SetCursor(offset int) {
	next := Cursor{Offset: clampInt(offset, 0, len(b.text))}
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// Segments returns the tracked paste segments ordered by Start.
func (b *Buffer) Segments() []Segment {
	return b.store.sorted()
}

// SegmentContaining returns the segment with Start <= offset < End, if any.
func (b *Buffer) SegmentContaining(offset int) (Segment, bool) {
	return b.store.containing(offset)
}

// SegmentEndingAt returns the segment whose right edge is exactly offset, if
// any.
func (b *Buffer) SegmentEndingAt(offset int) (Segment, bool) {
	return b.store.endingAt(offset)
}

// RemoveSegment forgets a tracked paste by identity. The text itself is left
// alone; the region simply stops rendering as a placeholder.
func (b *Buffer) RemoveSegment(id int) bool {
	if !b.store.remove(id) {
		return false
	}
	b.version++
	return true
}

func (b *Buffer) pasteThreshold() int { return b.opt.PasteThreshold }
