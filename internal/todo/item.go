// Package todo binds todo items and lists to a dom.Document. State changes go
// through the pure transitions in package model; the controllers only patch
// the view they own with whatever changed.
package todo

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/dom"
	"github.com/idilsaglam/todolist/internal/ident"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/valid"
)

// ErrInvalidVisibility is returned when visibility is assigned a non-bool.
var ErrInvalidVisibility = errors.New("invalid visibility")

const (
	LabelMarkDone    = "Mark as Done"
	LabelMarkPending = "Mark as Pending"
	LabelCancel      = "Cancel"
	LabelEdit        = "Edit"
	LabelSave        = "Save"
)

// Option configures items and lists.
type Option func(*options)

type options struct {
	newID  ident.Func
	tag    string
	logger *log.Logger
}

func buildOptions(opts []Option) options {
	o := options{newID: ident.New, tag: "li"}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}

// WithIDFunc overrides the identifier generator.
func WithIDFunc(fn ident.Func) Option { return func(o *options) { o.newID = fn } }

// WithTag sets the element tag an item materializes as. Default "li".
func WithTag(tag string) Option { return func(o *options) { o.tag = tag } }

func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }

// Item controls one todo entry and the element that shows it.
type Item struct {
	doc   *dom.Document
	tag   string
	log   *log.Logger
	state model.Item

	// nil until View is first called
	view     *dom.Element
	doneBtn  *dom.Element
	editBtn  *dom.Element
	editForm *dom.Element

	// display value saved while hidden
	stashedDisplay string
}

// NewItem creates a pending, visible item with a fresh id. Nothing is drawn
// until View is called.
func NewItem(doc *dom.Document, text string, opts ...Option) *Item {
	o := buildOptions(opts)
	return &Item{
		doc:   doc,
		tag:   o.tag,
		log:   o.logger,
		state: model.NewItem(o.newID(), text),
	}
}

func (it *Item) ID() string             { return it.state.ID }
func (it *Item) Text() string           { return it.state.Text }
func (it *Item) Status() model.Status   { return it.state.Status }
func (it *Item) Visible() bool          { return it.state.Visible }
func (it *Item) State() model.Item      { return it.state }
func (it *Item) Editing() bool          { return it.editForm != nil }
func (it *Item) Materialized() bool     { return it.view != nil }
func (it *Item) EditForm() *dom.Element { return it.editForm }

// SetStatus assigns s. Values outside the Status set are rejected and leave
// the item unchanged.
func (it *Item) SetStatus(s model.Status) error {
	return it.apply(model.SetStatus{Status: s})
}

// SetStatusValue is SetStatus for untyped input.
func (it *Item) SetStatusValue(v any) error {
	s, err := model.ParseStatus(v)
	if err != nil {
		return err
	}
	return it.SetStatus(s)
}

// SetVisible hides or shows the item.
func (it *Item) SetVisible(v bool) {
	_ = it.apply(model.SetVisible{Visible: v})
}

// SetVisibleValue is SetVisible for untyped input; only a bool is accepted.
func (it *Item) SetVisibleValue(v any) error {
	if !valid.IsBool(v) {
		return fmt.Errorf("%v is not a valid boolean: %w", v, ErrInvalidVisibility)
	}
	it.SetVisible(v.(bool))
	return nil
}

// ToggleDone is the done control: DONE goes back to PENDING, anything else
// becomes DONE.
func (it *Item) ToggleDone() { _ = it.apply(model.ToggleDone{}) }

// Cancel marks the item cancelled. It stays in its list.
func (it *Item) Cancel() { _ = it.apply(model.Cancel{}) }

// Rename replaces the text in place, keeping the controls.
func (it *Item) Rename(text string) { _ = it.apply(model.SetText{Text: text}) }

// Destroy detaches the view from its parent and marks the item destroyed.
// No control is wired to it.
func (it *Item) Destroy() {
	if it.view != nil {
		it.view.Remove()
	}
	_ = it.apply(model.Destroy{})
}

func (it *Item) apply(a model.Action) error {
	next, err := model.Apply(it.state, a)
	if err != nil {
		return err
	}
	prev := it.state
	it.state = next
	change := model.Diff(prev, next)
	if change == 0 {
		return nil
	}
	it.patch(change)
	it.log.Debug("item changed", "id", next.ID, "status", next.Status, "visible", next.Visible)
	return nil
}

// patch brings an existing view in line with the current state.
func (it *Item) patch(c model.Change) {
	if it.view == nil {
		return
	}
	if c.Has(model.ChangedStatus) {
		it.view.SetData("todoStatus", string(it.state.Status))
		it.doneBtn.SetText(doneLabel(it.state.Status))
	}
	if c.Has(model.ChangedText) {
		it.view.SetLeadingText(it.state.Text)
	}
	if c.Has(model.ChangedVisible) {
		it.applyVisibility()
	}
}

func (it *Item) applyVisibility() {
	if it.state.Visible {
		it.view.SetStyle("display", it.stashedDisplay)
		return
	}
	it.stashedDisplay = it.view.Style("display")
	it.view.SetStyle("display", "none")
}

func doneLabel(s model.Status) string {
	if s == model.StatusPending {
		return LabelMarkDone
	}
	return LabelMarkPending
}
