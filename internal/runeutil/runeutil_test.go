package runeutil

import "testing"

func TestNormalizeNewlines(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "abc", want: "abc"},
		{in: "a\rb", want: "a\nb"},
		{in: "a\r\nb", want: "a\n\nb"},
		{in: "\r\r", want: "\n\n"},
	}

	for _, tc := range cases {
		got := string(NormalizeNewlines([]rune(tc.in)))
		if got != tc.want {
			t.Fatalf("NormalizeNewlines(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeNewlines_NoCopyWithoutCR(t *testing.T) {
	in := []rune("abc")
	out := NormalizeNewlines(in)
	if &in[0] != &out[0] {
		t.Fatalf("expected input slice to be returned unchanged")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max, want int
	}{
		{v: 5, min: 0, max: 10, want: 5},
		{v: -1, min: 0, max: 10, want: 0},
		{v: 11, min: 0, max: 10, want: 10},
		{v: 3, min: 4, max: 2, want: 4},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.min, tc.max); got != tc.want {
			t.Fatalf("Clamp(%d, %d, %d): got %d, want %d", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestRepeat(t *testing.T) {
	if got, want := string(Repeat('*', 3)), "***"; got != want {
		t.Fatalf("Repeat: got %q, want %q", got, want)
	}
	if got := Repeat('*', 0); got != nil {
		t.Fatalf("Repeat(0): got %q, want nil", string(got))
	}
}
