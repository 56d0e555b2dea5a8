package valid

import "testing"

type color string

const (
	red  color = "red"
	blue color = "blue"
)

func TestIsBool(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, true},
		{"true", false},
		{1, false},
		{nil, false},
		{(*bool)(nil), false},
	}
	for _, c := range cases {
		if got := IsBool(c.in); got != c.want {
			t.Fatalf("IsBool(%#v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValueOf(t *testing.T) {
	t.Parallel()

	if !IsValueOf(red, red, blue) {
		t.Fatalf("expected red to be a member")
	}
	if IsValueOf(color("green"), red, blue) {
		t.Fatalf("green is not a member")
	}
	if IsValueOf("red", red, blue) {
		t.Fatalf("untyped string must not match a named type")
	}
	if IsValueOf(nil, red, blue) {
		t.Fatalf("nil is not a member")
	}
	if IsValueOf[color](red) {
		t.Fatalf("empty value set has no members")
	}
}
