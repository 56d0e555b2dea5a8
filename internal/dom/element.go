package dom

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Element is a handle to one element node. The same node always maps to the
// same *Element.
type Element struct {
	doc  *Document
	node *html.Node

	// property handlers (onclick, onsubmit) and added listeners
	props     map[string]Handler
	listeners map[string][]Handler

	value   string
	touched bool

	// Set while e heads a removed subtree: the wrappers of its descendants,
	// held here instead of in the document so they go when e does.
	orphans map[*html.Node]*Element
	// owner is the removed subtree head holding e, if any.
	owner *Element
}

func (e *Element) Tag() string { return e.node.Data }

// Node exposes the underlying html node for read-only walks.
func (e *Element) Node() *html.Node { return e.node }

func (e *Element) Document() *Document { return e.doc }

func (e *Element) Parent() *Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.wrap(p)
}

// Children returns the element children in order.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.wrap(c))
		}
	}
	return out
}

// AppendChild moves child under e, detaching it from any previous parent.
func (e *Element) AppendChild(child *Element) {
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
	e.doc.release(child)
	e.doc.adopt(child, e.detachedHead())
}

func (e *Element) RemoveChild(child *Element) error {
	if child.node.Parent != e.node {
		return fmt.Errorf("remove <%s>: not a child of <%s>", child.Tag(), e.Tag())
	}
	e.node.RemoveChild(child.node)
	e.doc.release(child)
	return nil
}

// Remove detaches e from its parent. It is a no-op on detached elements.
func (e *Element) Remove() {
	if e.node.Parent == nil {
		return
	}
	e.node.Parent.RemoveChild(e.node)
	e.doc.release(e)
}

// detachedHead returns the removed subtree head e belongs to, or nil when e
// is registered with the document.
func (e *Element) detachedHead() *Element {
	if e == nil {
		return nil
	}
	if e.orphans != nil {
		return e
	}
	return e.owner
}

// wrap resolves n against the cache e lives in.
func (e *Element) wrap(n *html.Node) *Element {
	head := e.detachedHead()
	if head == nil {
		return e.doc.wrap(n)
	}
	if n == head.node {
		return head
	}
	if el, ok := head.orphans[n]; ok {
		return el
	}
	el := &Element{doc: e.doc, node: n, owner: head}
	head.orphans[n] = el
	return el
}

func (e *Element) Contains(other *Element) bool {
	for n := other.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

func (e *Element) RemoveAttr(key string) {
	out := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	e.node.Attr = out
}

func (e *Element) HasAttr(key string) bool {
	_, ok := e.Attr(key)
	return ok
}

// SetData sets a data-* attribute; key is camelCase like element.dataset.
func (e *Element) SetData(key, val string) { e.SetAttr(dataAttr(key), val) }

func (e *Element) Data(key string) string {
	v, _ := e.Attr(dataAttr(key))
	return v
}

func dataAttr(key string) string {
	var b strings.Builder
	b.WriteString("data-")
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (e *Element) AddClass(names ...string) {
	cur, _ := e.Attr("class")
	fields := strings.Fields(cur)
	for _, n := range names {
		if !e.HasClass(n) {
			fields = append(fields, n)
		}
	}
	e.SetAttr("class", strings.Join(fields, " "))
}

func (e *Element) HasClass(name string) bool {
	cur, _ := e.Attr("class")
	for _, f := range strings.Fields(cur) {
		if f == name {
			return true
		}
	}
	return false
}

// Style returns one inline style declaration, or "" when unset.
func (e *Element) Style(prop string) string {
	for _, d := range e.styles() {
		if d[0] == prop {
			return d[1]
		}
	}
	return ""
}

// SetStyle sets an inline style declaration. An empty value removes it.
func (e *Element) SetStyle(prop, val string) {
	decls := e.styles()
	out := decls[:0]
	found := false
	for _, d := range decls {
		if d[0] == prop {
			found = true
			if val == "" {
				continue
			}
			d[1] = val
		}
		out = append(out, d)
	}
	if !found && val != "" {
		out = append(out, [2]string{prop, val})
	}
	if len(out) == 0 {
		e.RemoveAttr("style")
		return
	}
	parts := make([]string, 0, len(out))
	for _, d := range out {
		parts = append(parts, d[0]+": "+d[1])
	}
	e.SetAttr("style", strings.Join(parts, "; ")+";")
}

func (e *Element) styles() [][2]string {
	raw, _ := e.Attr("style")
	var out [][2]string
	for _, decl := range strings.Split(raw, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k != "" {
			out = append(out, [2]string{k, v})
		}
	}
	return out
}

// Hidden reports whether e or an ancestor has display: none.
func (e *Element) Hidden() bool {
	for el := e; el != nil; el = el.Parent() {
		if el.Style("display") == "none" {
			return true
		}
	}
	return false
}

// SetText replaces all children with a single text node, like innerText.
func (e *Element) SetText(s string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// SetLeadingText rewrites the first child text node, inserting one when the
// first child is an element. Following children are left alone.
func (e *Element) SetLeadingText(s string) {
	if c := e.node.FirstChild; c != nil && c.Type == html.TextNode {
		c.Data = s
		return
	}
	t := &html.Node{Type: html.TextNode, Data: s}
	if e.node.FirstChild == nil {
		e.node.AppendChild(t)
		return
	}
	e.node.InsertBefore(t, e.node.FirstChild)
}

// OwnText joins the text nodes directly under e.
func (e *Element) OwnText() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// TextContent joins every descendant text node.
func (e *Element) TextContent() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

// Value is the current value of a form control. Until SetValue is called it
// falls back to the value attribute.
func (e *Element) Value() string {
	if e.touched {
		return e.value
	}
	v, _ := e.Attr("value")
	return v
}

func (e *Element) SetValue(v string) {
	e.value = v
	e.touched = true
}

func (e *Element) Required() bool { return e.HasAttr("required") }

// Form returns the nearest enclosing form, or nil.
func (e *Element) Form() *Element {
	for el := e.Parent(); el != nil; el = el.Parent() {
		if el.Tag() == "form" {
			return el
		}
	}
	return nil
}

// FormElement finds a named control under e, like form.elements[name].
func (e *Element) FormElement(name string) *Element {
	for _, el := range e.controls() {
		if v, _ := el.Attr("name"); v == name {
			return el
		}
	}
	return nil
}

// Reset returns every control under e to its default value.
func (e *Element) Reset() {
	for _, el := range e.controls() {
		el.value, el.touched = "", false
	}
}

func (e *Element) controls() []*Element {
	els, _ := e.QuerySelectorAll("input, button, select, textarea")
	return els
}

func (e *Element) QuerySelector(sel string) (*Element, error) {
	s, err := compile(sel)
	if err != nil {
		return nil, err
	}
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if n := s.MatchFirst(c); n != nil {
			return e.wrap(n), nil
		}
	}
	return nil, fmt.Errorf("%q: %w", sel, ErrNoElement)
}

// QuerySelectorAll returns descendants matching sel in document order.
func (e *Element) QuerySelectorAll(sel string) ([]*Element, error) {
	s, err := compile(sel)
	if err != nil {
		return nil, err
	}
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		for _, n := range s.MatchAll(c) {
			out = append(out, e.wrap(n))
		}
	}
	return out, nil
}

func (e *Element) Render(w io.Writer) error {
	return html.Render(w, e.node)
}

// HTML is the outer HTML of e.
func (e *Element) HTML() string {
	var b strings.Builder
	_ = e.Render(&b)
	return b.String()
}
