package ident

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewIsV4AndUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New()
		u, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("parse %q: %v", id, err)
		}
		if u.Version() != 4 {
			t.Fatalf("expected v4, got %d", u.Version())
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}
