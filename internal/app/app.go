// Package app assembles the page: one todo list plus the global control that
// shows and hides cancelled items.
package app

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/dom"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/todo"
)

//go:embed page.html
var DefaultPage string

const (
	DefaultListSelector   = ".todo-list"
	DefaultToggleSelector = ".hide-cancelled"
)

// Options selects the mount points. Zero values fall back to the defaults.
type Options struct {
	ListSelector   string
	ToggleSelector string
	Logger         *log.Logger
	ItemOptions    []todo.Option
}

// App is a mounted page.
type App struct {
	Doc    *dom.Document
	List   *todo.List
	Toggle *dom.Element

	log *log.Logger
}

// NewPage parses DefaultPage and mounts an App on it.
func NewPage(opt Options) (*App, error) {
	doc, err := dom.ParseString(DefaultPage)
	if err != nil {
		return nil, err
	}
	return New(doc, opt)
}

// Open parses the HTML page at path and mounts an App on it.
func Open(path string, opt Options) (*App, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, err
	}
	return New(doc, opt)
}

// New mounts a list on doc and wires the cancelled toggle.
func New(doc *dom.Document, opt Options) (*App, error) {
	if opt.ListSelector == "" {
		opt.ListSelector = DefaultListSelector
	}
	if opt.ToggleSelector == "" {
		opt.ToggleSelector = DefaultToggleSelector
	}
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Resolve the toggle first so a miss leaves doc untouched.
	toggle, err := doc.QuerySelector(opt.ToggleSelector)
	if err != nil {
		return nil, fmt.Errorf("mount toggle: %w", err)
	}
	itemOpts := append([]todo.Option{todo.WithLogger(logger)}, opt.ItemOptions...)
	list, err := todo.NewList(doc, opt.ListSelector, itemOpts...)
	if err != nil {
		return nil, err
	}

	a := &App{Doc: doc, List: list, Toggle: toggle, log: logger}
	toggle.OnClick(func(*dom.Event) { a.ToggleCancelled() })
	logger.Info("page mounted", "list", opt.ListSelector, "toggle", opt.ToggleSelector)
	return a, nil
}

// ToggleCancelled flips the visibility of each cancelled item on its own and
// returns how many were flipped. Other items are left alone.
func (a *App) ToggleCancelled() int {
	n := 0
	for _, it := range a.List.Items() {
		if it.Status() == model.StatusCancelled {
			it.SetVisible(!it.Visible())
			n++
		}
	}
	a.log.Debug("toggled cancelled", "count", n)
	return n
}

// Counts tallies items per status.
type Counts struct {
	Pending, Done, Cancelled, Destroyed, Hidden int
}

func (c Counts) Total() int { return c.Pending + c.Done + c.Cancelled + c.Destroyed }

func Stats(items []*todo.Item) Counts {
	var c Counts
	for _, it := range items {
		switch it.Status() {
		case model.StatusPending:
			c.Pending++
		case model.StatusDone:
			c.Done++
		case model.StatusCancelled:
			c.Cancelled++
		case model.StatusDestroyed:
			c.Destroyed++
		}
		if !it.Visible() {
			c.Hidden++
		}
	}
	return c
}
