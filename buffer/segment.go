package buffer

import "sort"

// segmentStore maintains the non-overlapping segment set as the surrounding
// text mutates. Callers pass offsets in the coordinates of the text *before*
// the edit being reported.
type segmentStore struct {
	segs   []Segment
	nextID int
}

// shiftForInsert keeps segments positioned after an insert of n runes at
// offset at. Segments starting at or after the insertion point slide right;
// lengths never change here because typed input is routed around segment
// interiors by the cursor rules.
func (st *segmentStore) shiftForInsert(at, n int) {
	if n <= 0 {
		return
	}
	for i := range st.segs {
		if st.segs[i].Start >= at {
			st.segs[i].Start += n
		}
	}
}

// shiftForDelete keeps segments positioned after a deletion of n runes
// starting at offset at.
func (st *segmentStore) shiftForDelete(at, n int) {
	if n <= 0 {
		return
	}
	for i := range st.segs {
		if st.segs[i].Start >= at+n {
			st.segs[i].Start -= n
		}
	}
}

// registerLargeInsert records a new tracked paste of n runes at offset at.
// Any existing segment overlapping [at, at+n) is superseded by the new one;
// segments past the insertion point slide right.
func (st *segmentStore) registerLargeInsert(at, n int) Segment {
	kept := st.segs[:0]
	for _, s := range st.segs {
		if s.Start < at+n && s.End() > at {
			continue
		}
		if s.Start > at {
			s.Start += n
		}
		kept = append(kept, s)
	}

	seg := Segment{Start: at, Length: n, ID: st.nextID}
	st.nextID++
	st.segs = append(kept, seg)
	return seg
}

// containing returns the segment with Start <= offset < End, if any.
func (st *segmentStore) containing(offset int) (Segment, bool) {
	for _, s := range st.segs {
		if s.Start <= offset && offset < s.End() {
			return s, true
		}
	}
	return Segment{}, false
}

// endingAt returns the segment whose End equals offset, if any.
func (st *segmentStore) endingAt(offset int) (Segment, bool) {
	for _, s := range st.segs {
		if s.End() == offset {
			return s, true
		}
	}
	return Segment{}, false
}

// remove deletes a segment by identity without any positional shifting.
func (st *segmentStore) remove(id int) bool {
	for i, s := range st.segs {
		if s.ID == id {
			st.segs = append(st.segs[:i], st.segs[i+1:]...)
			return true
		}
	}
	return false
}

// sorted returns a copy of the segment set ordered by Start.
func (st *segmentStore) sorted() []Segment {
	if len(st.segs) == 0 {
		return nil
	}
	out := append([]Segment(nil), st.segs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
