package todo

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/dom"
)

const (
	NewItemField       = "new-item"
	NewItemPlaceholder = "New Todo Item"
	LabelCreate        = "Create New Item"
)

// List owns the ordered items of one page section, the <ul> they are drawn
// into and the creation form below it. Items are only ever appended.
type List struct {
	doc   *dom.Document
	opts  []Option
	log   *log.Logger
	items []*Item

	root *dom.Element
	form *dom.Element
}

// NewList mounts an empty list and its creation form under the element
// matching selector. It fails when nothing matches.
func NewList(doc *dom.Document, selector string, opts ...Option) (*List, error) {
	container, err := doc.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("mount list: %w", err)
	}

	l := &List{
		doc:  doc,
		opts: opts,
		log:  buildOptions(opts).logger,
	}

	l.root = doc.CreateElement("ul")
	l.root.SetStyle("list-style", "none")
	container.AppendChild(l.root)

	l.form = l.buildForm()
	container.AppendChild(l.form)
	l.form.AddEventListener("submit", l.onSubmit)

	l.log.Debug("list mounted", "selector", selector)
	return l, nil
}

//	<form class="controls">
//	  <input type="text" required name="new-item" placeholder="New Todo Item">
//	  <button type="submit">Create New Item</button>
//	</form>
func (l *List) buildForm() *dom.Element {
	form := l.doc.CreateElement("form")
	form.AddClass("controls")

	input := l.doc.CreateElement("input")
	input.SetAttr("type", "text")
	input.SetAttr("required", "")
	input.SetAttr("name", NewItemField)
	input.SetAttr("placeholder", NewItemPlaceholder)

	submit := l.doc.CreateElement("button")
	submit.SetAttr("type", "submit")
	submit.SetText(LabelCreate)

	form.AppendChild(input)
	form.AppendChild(submit)
	return form
}

func (l *List) onSubmit(ev *dom.Event) {
	ev.PreventDefault()
	ev.StopPropagation()

	input := l.form.FormElement(NewItemField)
	if input == nil {
		return
	}
	l.CreateItem(input.Value())
	l.form.Reset()
}

// CreateItem appends a new item and draws it at the end of the list.
// Duplicate text is allowed.
func (l *List) CreateItem(text string) *Item {
	it := NewItem(l.doc, text, l.opts...)
	l.items = append(l.items, it)
	l.root.AppendChild(it.View())
	l.log.Debug("item created", "id", it.ID(), "text", text)
	return it
}

// Items returns the items in display order.
func (l *List) Items() []*Item {
	out := make([]*Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Len() int { return len(l.items) }

// At returns the item at a zero-based position, or nil.
func (l *List) At(i int) *Item {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Find looks an item up by id.
func (l *List) Find(id string) *Item {
	for _, it := range l.items {
		if it.ID() == id {
			return it
		}
	}
	return nil
}

// Root is the <ul> holding item views.
func (l *List) Root() *dom.Element { return l.root }

// Form is the creation form.
func (l *List) Form() *dom.Element { return l.form }
