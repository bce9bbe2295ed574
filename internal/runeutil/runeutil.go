package runeutil

// NormalizeNewlines maps every carriage return in text to a newline.
//
// Pasted text may arrive with CR-only or CRLF line endings depending on the
// terminal and platform; the buffer stores newlines only, so the mapping is
// applied per scalar before any splice.
func NormalizeNewlines(text []rune) []rune {
	out := text
	copied := false
	for i, r := range text {
		if r != '\r' {
			continue
		}
		if !copied {
			out = append([]rune(nil), text...)
			copied = true
		}
		out[i] = '\n'
	}
	return out
}

// Clamp limits v to [min, max].
func Clamp(v, min, max int) int {
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

// Repeat returns a rune slice holding r repeated n times.
func Repeat(r rune, n int) []rune {
	if n <= 0 {
		return nil
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return out
}
