package tui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/dom"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

func (m Model) View() string {
	t := ui.Current()
	c := app.Stats(m.app.List.Items())

	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.GlyphDone), c.Done,
		t.Pending.Render(t.GlyphPending), c.Pending,
		t.Cancelled.Render(t.GlyphCancelled), c.Cancelled,
		t.Accent.Render("Total"), c.Total(),
	)
	lines := []string{header, t.Muted.Render(ui.ProgressBar(c.Done, c.Done+c.Pending, 28)), ""}

	if body := m.app.Doc.Body(); body != nil {
		for _, el := range body.Children() {
			lines = append(lines, m.render(el, 0)...)
		}
	}
	if m.invalid != "" {
		lines = append(lines, "", t.Error.Render(m.invalid))
	}
	lines = append(lines, "", m.help.View(m.keys))
	return ui.PanelString(lines)
}

// render draws el and its subtree as lines. Hidden elements draw nothing.
func (m Model) render(el *dom.Element, depth int) []string {
	if el.Hidden() {
		return nil
	}
	t := ui.Current()
	indent := strings.Repeat("  ", depth)

	switch el.Tag() {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return []string{indent + t.Title.Render(strings.TrimSpace(el.TextContent()))}
	case "li":
		return m.renderItem(el, depth)
	case "form":
		return []string{indent + m.inline(el)}
	case "button", "input":
		return []string{indent + m.control(el)}
	case "ul", "ol":
		var out []string
		for _, c := range el.Children() {
			out = append(out, m.render(c, depth)...)
		}
		if len(out) == 0 {
			out = append(out, indent+t.Muted.Render("no items"))
		}
		return out
	}

	var out []string
	for _, c := range el.Children() {
		out = append(out, m.render(c, depth)...)
	}
	return out
}

// renderItem draws "☐ text  [Mark as Done] [Cancel] [Edit]" with any open
// edit form on the following line.
func (m Model) renderItem(li *dom.Element, depth int) []string {
	t := ui.Current()
	indent := strings.Repeat("  ", depth)

	status, err := model.ParseStatus(li.Data("todoStatus"))
	if err != nil {
		status = model.StatusPending
	}
	line := indent + t.Glyph(status) + " " + t.Text(status, strings.TrimSpace(li.OwnText()))

	var forms []string
	for _, c := range li.Children() {
		if c.Hidden() {
			continue
		}
		switch {
		case c.Tag() == "form":
			forms = append(forms, indent+"    "+m.inline(c))
		default:
			if s := m.inline(c); s != "" {
				line += "  " + s
			}
		}
	}
	return append([]string{line}, forms...)
}

// inline draws the visible controls under el on one line.
func (m Model) inline(el *dom.Element) string {
	els, _ := el.QuerySelectorAll("button, input")
	parts := make([]string, 0, len(els))
	for _, c := range els {
		if c.Hidden() {
			continue
		}
		parts = append(parts, m.control(c))
	}
	return strings.Join(parts, " ")
}

func (m Model) control(el *dom.Element) string {
	t := ui.Current()
	focused := el == m.focused

	if el.Tag() == "input" {
		if focused {
			return m.ti.View()
		}
		if v := el.Value(); v != "" {
			return "  " + v
		}
		return "  " + t.Muted.Render(attr(el, "placeholder"))
	}

	label := "[" + strings.TrimSpace(el.TextContent()) + "]"
	if focused {
		return t.Selected.Render(label)
	}
	return t.Accent.Render(label)
}
