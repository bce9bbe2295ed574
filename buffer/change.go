package buffer

// Change is a normalized payload describing the most recent effective
// mutation. Movement and rejected edits never produce one.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Cursor
	CursorAfter   Cursor

	// Offset is where the edit applied, in the pre-edit text.
	Offset int

	// InsertedText is the spliced run after newline normalization; empty for
	// deletions.
	InsertedText string

	// DeletedText is the removed run; empty for inserts.
	DeletedText string
}

type stateSnapshot struct {
	version uint64
	cursor  Cursor
}

// LastChange returns the most recent effective mutation.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) snapshot() stateSnapshot {
	return stateSnapshot{version: b.version, cursor: b.cursor}
}

func (b *Buffer) recordChange(prev stateSnapshot, offset int, inserted, deleted string) {
	b.lastChange = Change{
		VersionBefore: prev.version,
		VersionAfter:  b.version,
		CursorBefore:  prev.cursor,
		CursorAfter:   b.cursor,
		Offset:        offset,
		InsertedText:  inserted,
		DeletedText:   deleted,
	}
	b.hasLastChange = true
}
