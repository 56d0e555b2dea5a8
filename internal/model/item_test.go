package model

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		got, err := ParseStatus(string(s))
		if err != nil || got != s {
			t.Fatalf("ParseStatus(%q) = %q, %v", s, got, err)
		}
		if got, err := ParseStatus(s); err != nil || got != s {
			t.Fatalf("ParseStatus(Status %q) = %q, %v", s, got, err)
		}
	}

	for _, bad := range []any{"pending", "ARCHIVED", Status("nope"), 1, nil, true} {
		_, err := ParseStatus(bad)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("ParseStatus(%#v): expected ErrInvalidStatus, got %v", bad, err)
		}
	}
}

func TestNewItemDefaults(t *testing.T) {
	t.Parallel()

	it := NewItem("id-1", "Buy milk")
	if it.Status != StatusPending || !it.Visible || it.Text != "Buy milk" || it.ID != "id-1" {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestApplyTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		from Status
		act  Action
		want Status
	}{
		{"done from pending", StatusPending, ToggleDone{}, StatusDone},
		{"pending from done", StatusDone, ToggleDone{}, StatusPending},
		{"done from cancelled", StatusCancelled, ToggleDone{}, StatusDone},
		{"cancel pending", StatusPending, Cancel{}, StatusCancelled},
		{"cancel done", StatusDone, Cancel{}, StatusCancelled},
		{"cancel cancelled", StatusCancelled, Cancel{}, StatusCancelled},
		{"destroy", StatusCancelled, Destroy{}, StatusDestroyed},
		{"set status", StatusPending, SetStatus{StatusDone}, StatusDone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := Item{ID: "x", Text: "t", Status: c.from, Visible: true}
			out, err := Apply(in, c.act)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if out.Status != c.want {
				t.Fatalf("status = %s, want %s", out.Status, c.want)
			}
			if in.Status != c.from {
				t.Fatalf("input mutated")
			}
		})
	}
}

func TestApplyRejectsInvalidStatus(t *testing.T) {
	t.Parallel()

	in := NewItem("x", "t")
	out, err := Apply(in, SetStatus{Status("ARCHIVED")})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if out != in {
		t.Fatalf("state changed on error: %+v", out)
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	a := NewItem("x", "a")
	b, _ := Apply(a, SetText{"b"})
	b, _ = Apply(b, SetVisible{false})

	c := Diff(a, b)
	if !c.Has(ChangedText) || !c.Has(ChangedVisible) || c.Has(ChangedStatus) {
		t.Fatalf("unexpected diff %b", c)
	}
	if Diff(a, a) != 0 {
		t.Fatalf("expected empty diff")
	}
}
