package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/model"
)

func newModel(t *testing.T) (Model, *app.App) {
	t.Helper()
	a, err := app.NewPage(app.Options{})
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	return New(a, nil), a
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestStartsOnCreationInput(t *testing.T) {
	m, _ := newModel(t)
	f := m.Focused()
	if f == nil || attr(f, "name") != "new-item" {
		t.Fatalf("focused = %v", f)
	}
}

func TestCreateItemFromKeys(t *testing.T) {
	m, a := newModel(t)
	m = send(t, m, runes("Buy milk"), enter)

	if a.List.Len() != 1 {
		t.Fatalf("items = %d", a.List.Len())
	}
	it := a.List.At(0)
	if it.Text() != "Buy milk" || it.Status() != model.StatusPending || !it.Visible() {
		t.Fatalf("unexpected item %+v", it.State())
	}
	if attr(m.Focused(), "name") != "new-item" || m.ti.Value() != "" {
		t.Fatalf("input not cleared/refocused: %q", m.ti.Value())
	}
	if !strings.Contains(m.View(), "Buy milk") {
		t.Fatalf("view missing item:\n%s", m.View())
	}
}

func TestLongItemTextIsKept(t *testing.T) {
	m, a := newModel(t)
	text := strings.Repeat("x", 500)
	send(t, m, runes(text), enter)

	if a.List.Len() != 1 || a.List.At(0).Text() != text {
		t.Fatalf("long text not kept whole: %d items", a.List.Len())
	}
}

func TestEmptySubmitIsBlocked(t *testing.T) {
	m, a := newModel(t)
	m = send(t, m, enter)
	if a.List.Len() != 0 {
		t.Fatalf("empty submit created an item")
	}
	if !strings.Contains(m.View(), "Please fill out this field.") {
		t.Fatalf("missing validation message:\n%s", m.View())
	}
}

func TestDoneAndCancelFromKeys(t *testing.T) {
	m, a := newModel(t)
	m = send(t, m, runes("Buy milk"), enter)
	it := a.List.At(0)

	// done, cancel, edit, input: three steps back lands on done
	m = send(t, m, up, up, up)
	if m.Focused().TextContent() != "Mark as Done" {
		t.Fatalf("focused %q", m.Focused().TextContent())
	}
	m = send(t, m, enter)
	if it.Status() != model.StatusDone || m.Focused().TextContent() != "Mark as Pending" {
		t.Fatalf("status %s, label %q", it.Status(), m.Focused().TextContent())
	}
	m = send(t, m, enter)
	if it.Status() != model.StatusPending {
		t.Fatalf("status %s", it.Status())
	}

	m = send(t, m, down, enter)
	if it.Status() != model.StatusCancelled {
		t.Fatalf("status %s", it.Status())
	}
}

func TestEditFromKeys(t *testing.T) {
	m, a := newModel(t)
	m = send(t, m, runes("Buy milk"), enter, up)
	if m.Focused().TextContent() != "Edit" {
		t.Fatalf("focused %q", m.Focused().TextContent())
	}
	m = send(t, m, enter)
	if attr(m.Focused(), "name") != "item" || m.ti.Value() != "Buy milk" {
		t.Fatalf("edit input not focused: %v %q", m.Focused(), m.ti.Value())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlU}, runes("Buy bread"), enter)
	it := a.List.At(0)
	if it.Text() != "Buy bread" || it.Editing() {
		t.Fatalf("text %q editing %v", it.Text(), it.Editing())
	}
	if m.Focused().TextContent() != "Edit" {
		t.Fatalf("focus should return to the edit control, got %q", m.Focused().TextContent())
	}
}

func TestToggleCancelledKey(t *testing.T) {
	m, a := newModel(t)
	a.List.CreateItem("a").Cancel()
	keep := a.List.CreateItem("b")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if a.List.At(0).Visible() || !keep.Visible() {
		t.Fatalf("toggle flipped the wrong items")
	}
	if strings.Contains(m.View(), " a  [") {
		t.Fatalf("hidden item still drawn:\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)

	// q typed into the input is text, not a quit
	m = send(t, m, runes("q"))
	if m.ti.Value() != "q" || m.Focused().Value() != "q" {
		t.Fatalf("q not typed: %q", m.ti.Value())
	}

	m = send(t, m, down)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}
