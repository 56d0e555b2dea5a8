// Package dom is a small live document tree with event dispatch, built on the
// x/net/html node tree. It is the rendering surface the todo controllers
// draw into; hosts (the TUI, the script runner) read it back and feed it
// clicks and submits.
package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoElement is returned when a selector matches nothing.
var ErrNoElement = errors.New("no element matches selector")

// Document owns a node tree and the Element wrappers for its nodes.
type Document struct {
	root  *html.Node
	elems map[*html.Node]*Element
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root, elems: make(map[*html.Node]*Element)}, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Body returns the <body> element. Parsed documents always have one.
func (d *Document) Body() *Element {
	if el, err := d.QuerySelector("body"); err == nil {
		return el
	}
	return nil
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	return d.wrap(n)
}

func (d *Document) QuerySelector(sel string) (*Element, error) {
	return d.wrap(d.root).QuerySelector(sel)
}

func (d *Document) QuerySelectorAll(sel string) ([]*Element, error) {
	return d.wrap(d.root).QuerySelectorAll(sel)
}

// Render serializes the whole document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) HTML() string {
	var b strings.Builder
	_ = d.Render(&b)
	return b.String()
}

// wrap returns the single Element for n, so identity comparisons hold.
func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elems[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elems[n] = el
	return el
}

// release takes the wrappers of e's subtree out of the cache they live in
// (the document's, or the removed subtree e was part of) and parks them on e,
// so they are dropped together with e.
func (d *Document) release(e *Element) {
	src := d.elems
	if e.owner != nil {
		src = e.owner.orphans
	}
	delete(src, e.node)
	e.owner = nil
	orphans := make(map[*html.Node]*Element)
	for _, el := range e.orphans {
		if e.Contains(el) {
			orphans[el.node] = el
		}
	}
	eachDescendant(e.node, func(n *html.Node) {
		if el, ok := src[n]; ok {
			delete(src, n)
			orphans[n] = el
		}
	})
	for _, el := range orphans {
		el.owner = e
	}
	e.orphans = orphans
}

// adopt moves e and its parked wrappers into the document cache, or into
// head's when e was appended inside a removed subtree.
func (d *Document) adopt(e *Element, head *Element) {
	dst := d.elems
	if head != nil {
		dst = head.orphans
	}
	for n, el := range e.orphans {
		el.owner = head
		dst[n] = el
	}
	e.orphans = nil
	e.owner = head
	dst[e.node] = e
}

func eachDescendant(n *html.Node, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fn(c)
		eachDescendant(c, fn)
	}
}

func compile(sel string) (cascadia.Selector, error) {
	s, err := cascadia.Compile(sel)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", sel, err)
	}
	return s, nil
}
