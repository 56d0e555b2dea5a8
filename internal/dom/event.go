package dom

import "strings"

// Handler reacts to a dispatched event.
type Handler func(*Event)

// Event is passed to handlers during dispatch.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

func (ev *Event) PreventDefault()        { ev.defaultPrevented = true }
func (ev *Event) StopPropagation()       { ev.stopped = true }
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// OnClick sets the click property handler, replacing any previous one.
func (e *Element) OnClick(h Handler) { e.setProp("click", h) }

// OnSubmit sets the submit property handler, replacing any previous one.
func (e *Element) OnSubmit(h Handler) { e.setProp("submit", h) }

func (e *Element) setProp(typ string, h Handler) {
	if e.props == nil {
		e.props = make(map[string]Handler)
	}
	if h == nil {
		delete(e.props, typ)
		return
	}
	e.props[typ] = h
}

// AddEventListener appends a listener for typ.
func (e *Element) AddEventListener(typ string, h Handler) {
	if e.listeners == nil {
		e.listeners = make(map[string][]Handler)
	}
	e.listeners[typ] = append(e.listeners[typ], h)
}

// Dispatch fires an event at e and bubbles it up the ancestors.
func (e *Element) Dispatch(typ string) *Event {
	ev := &Event{Type: typ, Target: e}
	path := []*Element{e}
	for p := e.Parent(); p != nil; p = p.Parent() {
		path = append(path, p)
	}
	for _, el := range path {
		ev.CurrentTarget = el
		if h := el.props[typ]; h != nil {
			h(ev)
		}
		for _, h := range el.listeners[typ] {
			h(ev)
		}
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil
	return ev
}

// Click dispatches a click. A submit button inside a form then requests a
// submit of that form, unless a handler prevented the default.
func (e *Element) Click() {
	ev := e.Dispatch("click")
	if ev.DefaultPrevented() || !e.isSubmitter() {
		return
	}
	if f := e.Form(); f != nil {
		f.RequestSubmit()
	}
}

func (e *Element) isSubmitter() bool {
	switch e.Tag() {
	case "button":
		t, _ := e.Attr("type")
		t = strings.ToLower(t)
		return t == "" || t == "submit"
	case "input":
		t, _ := e.Attr("type")
		return strings.ToLower(t) == "submit"
	}
	return false
}

// RequestSubmit validates required controls and, if all pass, dispatches a
// submit event at the form. It reports whether the event was dispatched.
func (e *Element) RequestSubmit() bool {
	if e.Tag() != "form" {
		return false
	}
	for _, c := range e.controls() {
		if c.Required() && c.Tag() != "button" && c.Value() == "" {
			return false
		}
	}
	e.Dispatch("submit")
	return true
}
