// Package tui hosts the todo page in a terminal. The Bubble Tea loop plays
// the browser: it draws the document and turns key presses into clicks and
// form submits on it, one message at a time.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/dom"
)

// Options tune the program.
type Options struct {
	AltScreen bool
	Logger    *log.Logger
}

type Model struct {
	app  *app.App
	log  *log.Logger
	keys keyMap
	help help.Model

	// focused control, and its position for when it disappears
	focused  *dom.Element
	focusIdx int

	ti      textinput.Model // bound to the focused input element, if any
	invalid string          // last blocked submit

	width, height int
}

// New builds a model with focus on the first text input.
func New(a *app.App, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		app:    a,
		log:    logger,
		keys:   defaultKeys(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 0 // item text is unbounded

	els := m.focusables()
	for i, el := range els {
		if isTextInput(el) {
			m.setFocus(els, i)
			return m
		}
	}
	if len(els) > 0 {
		m.setFocus(els, 0)
	}
	return m
}

// Run starts the program and blocks until the user quits.
func Run(a *app.App, opts Options) error {
	var popts []tea.ProgramOption
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(a, opts.Logger), popts...)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Focused returns the focused control, or nil.
func (m Model) Focused() *dom.Element { return m.focused }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		typing := m.focused != nil && isTextInput(m.focused)

		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit) && !typing:
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.Leave):
			if typing {
				m.move(1)
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.app.Toggle.Click()
			m.refocus(nil)
			return m, nil
		case key.Matches(msg, m.keys.Activate):
			m.activate()
			return m, nil
		}

		if typing {
			var cmd tea.Cmd
			m.ti, cmd = m.ti.Update(msg)
			m.focused.SetValue(m.ti.Value())
			m.invalid = ""
			return m, cmd
		}
	}

	if m.ti.Focused() {
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	return m, nil
}

// activate clicks the focused button or submits the focused input's form.
func (m *Model) activate() {
	el := m.focused
	if el == nil {
		return
	}
	before := m.focusables()

	if isTextInput(el) {
		el.SetValue(m.ti.Value())
		form := el.Form()
		if form == nil {
			return
		}
		if !form.RequestSubmit() {
			m.invalid = "Please fill out this field."
			return
		}
		m.log.Debug("form submitted", "class", attr(form, "class"))
	} else {
		el.Click()
		m.log.Debug("clicked", "label", el.TextContent())
	}
	m.invalid = ""
	m.refocus(before)
}

// refocus keeps focus on the same control when it is still there. A text
// input that just appeared (an edit form) takes focus instead.
func (m *Model) refocus(before []*dom.Element) {
	els := m.focusables()
	if before != nil {
		seen := make(map[*dom.Element]bool, len(before))
		for _, el := range before {
			seen[el] = true
		}
		for i, el := range els {
			if !seen[el] && isTextInput(el) {
				m.setFocus(els, i)
				return
			}
		}
	}
	if i := indexOf(els, m.focused); i >= 0 {
		m.setFocus(els, i)
		return
	}
	m.setFocus(els, m.focusIdx)
}

func (m *Model) move(delta int) {
	els := m.focusables()
	if len(els) == 0 {
		return
	}
	i := indexOf(els, m.focused)
	if i < 0 {
		i = m.focusIdx
	} else {
		i += delta
	}
	i = (i%len(els) + len(els)) % len(els)
	m.setFocus(els, i)
}

func (m *Model) setFocus(els []*dom.Element, i int) {
	if len(els) == 0 {
		m.focused, m.focusIdx = nil, 0
		m.ti.Blur()
		return
	}
	if i >= len(els) {
		i = len(els) - 1
	}
	if i < 0 {
		i = 0
	}
	m.focused, m.focusIdx = els[i], i
	if isTextInput(m.focused) {
		m.ti.SetValue(m.focused.Value())
		m.ti.Placeholder = attr(m.focused, "placeholder")
		m.ti.CursorEnd()
		m.ti.Focus()
		return
	}
	m.ti.Blur()
}

// focusables lists visible buttons and text inputs in document order.
func (m Model) focusables() []*dom.Element {
	body := m.app.Doc.Body()
	if body == nil {
		return nil
	}
	els, _ := body.QuerySelectorAll("button, input")
	out := make([]*dom.Element, 0, len(els))
	for _, el := range els {
		if el.Hidden() {
			continue
		}
		if el.Tag() == "input" && !isTextInput(el) {
			continue
		}
		out = append(out, el)
	}
	return out
}

func isTextInput(el *dom.Element) bool {
	if el.Tag() != "input" {
		return false
	}
	t := attr(el, "type")
	return t == "" || t == "text"
}

func attr(el *dom.Element, key string) string {
	v, _ := el.Attr(key)
	return v
}

func indexOf(els []*dom.Element, target *dom.Element) int {
	for i, el := range els {
		if el == target {
			return i
		}
	}
	return -1
}
