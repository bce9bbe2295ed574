package field

import (
	"github.com/iw2rmb/promptfield/buffer"
	"github.com/iw2rmb/promptfield/internal/runeutil"
)

// UnitKind classifies one renderable chunk of the field's content.
type UnitKind uint8

const (
	// UnitText is a run of value text.
	UnitText UnitKind = iota
	// UnitPlaceholder is a run of hint text shown while the value is empty.
	UnitPlaceholder
	// UnitPasted is a collapsed paste rendered as a "(Pasted: N chars)" tag.
	UnitPasted
	// UnitCursor is an inverse-styled cell.
	UnitCursor
)

// Unit is one display unit. The renderer maps kinds to styles and never
// re-reads session state.
type Unit struct {
	Kind UnitKind
	Text string

	// Length is the rune count of the collapsed paste for UnitPasted.
	Length int
}

// displayState is everything the projection reads. It is assembled by the
// Model and never mutated here.
type displayState struct {
	Text        []rune
	Cursor      buffer.Cursor
	Segments    []buffer.Segment // ordered by Start
	Placeholder string
	Mask        rune
	ShowCursor  bool
	Highlight   bool
}

// projectUnits derives the ordered display units from session state.
//
// Masking replaces the whole value and bypasses paste placeholders. A cursor
// inside a segment renders as a trailing cell after that segment's tag; the
// cursor never visually enters a collapsed region. Plain text is scanned
// rune by rune for the cursor highlight, which is O(len) per call.
func projectUnits(st displayState) []Unit {
	text := st.Text
	segs := st.Segments
	if st.Mask != 0 {
		text = runeutil.Repeat(st.Mask, len(text))
		segs = nil
	}

	if len(text) == 0 {
		return emptyUnits(st)
	}

	offset := runeutil.Clamp(st.Cursor.Offset, 0, len(text))

	// The highlight span is [offset-width, offset]; width participates only
	// when paste highlighting is on.
	hlLo, hlHi := offset, offset
	if st.Highlight {
		hlLo = offset - st.Cursor.Width
	}

	inSeg, cursorInSeg := buffer.Segment{}, false
	if st.ShowCursor {
		inSeg, cursorInSeg = segmentContaining(segs, offset)
	}
	mark := st.ShowCursor && !cursorInSeg

	var units []Unit
	pos := 0
	for _, seg := range segs {
		units = appendPlainRun(units, text, pos, seg.Start, hlLo, hlHi, mark)
		units = append(units, Unit{Kind: UnitPasted, Length: seg.Length})
		if cursorInSeg && seg.ID == inSeg.ID {
			units = append(units, Unit{Kind: UnitCursor, Text: " "})
		}
		pos = seg.End()
	}
	units = appendPlainRun(units, text, pos, len(text), hlLo, hlHi, mark)

	if mark && offset == len(text) {
		units = append(units, Unit{Kind: UnitCursor, Text: " "})
	}
	return units
}

// emptyUnits renders the empty-value state: the placeholder when configured,
// with the cursor over its first rune, or a lone cursor cell.
func emptyUnits(st displayState) []Unit {
	if st.Placeholder == "" {
		if st.ShowCursor {
			return []Unit{{Kind: UnitCursor, Text: " "}}
		}
		return nil
	}

	if !st.ShowCursor {
		return []Unit{{Kind: UnitPlaceholder, Text: st.Placeholder}}
	}

	ph := []rune(st.Placeholder)
	units := []Unit{{Kind: UnitCursor, Text: string(ph[0])}}
	if len(ph) > 1 {
		units = append(units, Unit{Kind: UnitPlaceholder, Text: string(ph[1:])})
	}
	return units
}

// appendPlainRun emits the text in [lo, hi) as plain runs, carving out
// inverse cursor cells for runes inside the highlight span. A highlighted
// newline gets an inverse blank before it so the highlight owns a visible
// grid cell.
func appendPlainRun(units []Unit, text []rune, lo, hi, hlLo, hlHi int, mark bool) []Unit {
	if lo >= hi {
		return units
	}
	if !mark {
		return append(units, Unit{Kind: UnitText, Text: string(text[lo:hi])})
	}

	runStart := lo
	flush := func(end int) {
		if runStart < end {
			units = append(units, Unit{Kind: UnitText, Text: string(text[runStart:end])})
		}
	}

	for i := lo; i < hi; i++ {
		if i < hlLo || i > hlHi {
			continue
		}
		flush(i)
		if text[i] == '\n' {
			units = append(units,
				Unit{Kind: UnitCursor, Text: " "},
				Unit{Kind: UnitText, Text: "\n"})
		} else {
			units = append(units, Unit{Kind: UnitCursor, Text: string(text[i])})
		}
		runStart = i + 1
	}
	flush(hi)
	return units
}

func segmentContaining(segs []buffer.Segment, offset int) (buffer.Segment, bool) {
	for _, s := range segs {
		if s.Start <= offset && offset < s.End() {
			return s, true
		}
	}
	return buffer.Segment{}, false
}
