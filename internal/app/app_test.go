package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/todolist/internal/dom"
	"github.com/idilsaglam/todolist/internal/model"
)

func TestNewPageMountsList(t *testing.T) {
	t.Parallel()

	a, err := NewPage(Options{})
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	out := a.Doc.HTML()
	for _, want := range []string{`<ul style="list-style: none;">`, `name="new-item"`, `Create New Item`, `hide-cancelled`} {
		if !strings.Contains(out, want) {
			t.Fatalf("page missing %q:\n%s", want, out)
		}
	}
}

func TestNewFailsOnMissingSelectors(t *testing.T) {
	t.Parallel()

	doc, _ := dom.ParseString(`<div class="todo-list"></div>`)
	before := doc.HTML()
	if _, err := New(doc, Options{}); !errors.Is(err, dom.ErrNoElement) {
		t.Fatalf("missing toggle: expected ErrNoElement, got %v", err)
	}
	if after := doc.HTML(); after != before {
		t.Fatalf("failed mount changed the document:\n%s", after)
	}
	doc, _ = dom.ParseString(`<button class="hide-cancelled"></button>`)
	if _, err := New(doc, Options{}); !errors.Is(err, dom.ErrNoElement) {
		t.Fatalf("missing list: expected ErrNoElement, got %v", err)
	}
}

func TestToggleOnlyFlipsCancelled(t *testing.T) {
	t.Parallel()

	a, err := NewPage(Options{})
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	visible := a.List.CreateItem("a")
	hidden := a.List.CreateItem("b")
	pending := a.List.CreateItem("c")
	visible.Cancel()
	hidden.Cancel()
	hidden.SetVisible(false)

	a.Toggle.Click()

	if visible.Visible() || !hidden.Visible() {
		t.Fatalf("cancelled items not flipped: a=%v b=%v", visible.Visible(), hidden.Visible())
	}
	if !pending.Visible() || pending.Status() != model.StatusPending {
		t.Fatalf("pending item touched: %+v", pending.State())
	}
	if !visible.View().Hidden() || hidden.View().Hidden() {
		t.Fatalf("views out of sync")
	}

	if n := a.ToggleCancelled(); n != 2 {
		t.Fatalf("flipped %d, want 2", n)
	}
	if !visible.Visible() || hidden.Visible() {
		t.Fatalf("second toggle did not flip back")
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	a, _ := NewPage(Options{})
	a.List.CreateItem("a").ToggleDone()
	c := a.List.CreateItem("b")
	c.Cancel()
	c.SetVisible(false)
	a.List.CreateItem("c")

	got := Stats(a.List.Items())
	want := Counts{Pending: 1, Done: 1, Cancelled: 1, Hidden: 1}
	if got != want || got.Total() != 3 {
		t.Fatalf("stats = %+v", got)
	}
}

func TestOpenCustomPage(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "page.html")
	page := `<main id="todos"></main><a class="toggle">toggle</a>`
	if err := os.WriteFile(p, []byte(page), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	a, err := Open(p, Options{ListSelector: "#todos", ToggleSelector: "a.toggle"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if a.List.Root().Parent().Tag() != "main" || a.Toggle.Tag() != "a" {
		t.Fatalf("mounted on the wrong elements:\n%s", a.Doc.HTML())
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.html"), Options{}); err == nil {
		t.Fatalf("expected error for a missing page")
	}
}
