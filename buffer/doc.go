// Package buffer holds the pure state of one prompt-field session: the text
// value, the cursor, and the set of collapsed paste segments.
//
// All offsets are Unicode scalar (rune) offsets, never display columns. Every
// operation is total: out-of-range positions are clamped and disallowed edits
// are no-ops, so no operation can fail.
package buffer
