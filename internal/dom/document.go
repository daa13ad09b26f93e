// SPDX-License-Identifier: MIT

// Package dom is a minimal document model: the root and body elements with
// their attributes and inline styles, rendered as HTML.
package dom

import (
	"html"
	"strings"
	"sync"
)

// Element is the root or body of a Document. Each write is atomic with
// respect to the other element and to Render.
type Element struct {
	tag    string
	mu     *sync.RWMutex
	writes *int

	attrNames []string
	attrs     map[string]string

	styleNames []string
	styles     map[string]string
}

func newElement(tag string, mu *sync.RWMutex, writes *int) *Element {
	return &Element{
		tag:    tag,
		mu:     mu,
		writes: writes,
		attrs:  make(map[string]string),
		styles: make(map[string]string),
	}
}

// SetAttribute sets name to value. Writing the current value is a no-op and
// reports false.
func (e *Element) SetAttribute(name, value string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return set(&e.attrNames, e.attrs, name, value, e.writes)
}

// Attribute returns the value of name.
func (e *Element) Attribute(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.attrs[name]
	return v, ok
}

// SetStyle sets an inline style property. Writing the current value is a
// no-op and reports false.
func (e *Element) SetStyle(property, value string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return set(&e.styleNames, e.styles, property, value, e.writes)
}

// Style returns an inline style property, or "" when unset.
func (e *Element) Style(property string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.styles[property]
}

func set(names *[]string, values map[string]string, key, value string, writes *int) bool {
	if cur, ok := values[key]; ok && cur == value {
		return false
	}
	if _, ok := values[key]; !ok {
		*names = append(*names, key)
	}
	values[key] = value
	*writes++
	return true
}

// Writer edits one element inside Document.Update. It is only valid for the
// duration of the callback.
type Writer struct {
	e *Element
}

// SetAttribute is Element.SetAttribute without taking the lock.
func (w Writer) SetAttribute(name, value string) bool {
	return set(&w.e.attrNames, w.e.attrs, name, value, w.e.writes)
}

// SetStyle is Element.SetStyle without taking the lock.
func (w Writer) SetStyle(property, value string) bool {
	return set(&w.e.styleNames, w.e.styles, property, value, w.e.writes)
}

// openTag renders the start tag. Callers hold the read lock.
func (e *Element) openTag() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.tag)
	for _, name := range e.attrNames {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(e.attrs[name]))
		b.WriteString(`"`)
	}
	if len(e.styleNames) > 0 {
		decls := make([]string, 0, len(e.styleNames))
		for _, p := range e.styleNames {
			decls = append(decls, p+": "+e.styles[p])
		}
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(strings.Join(decls, "; ")))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	return b.String()
}

// Document holds the html root and body elements.
type Document struct {
	mu     sync.RWMutex
	writes int
	root   *Element
	body   *Element
}

// New returns an empty document.
func New() *Document {
	d := &Document{}
	d.root = newElement("html", &d.mu, &d.writes)
	d.body = newElement("body", &d.mu, &d.writes)
	return d
}

// Root returns the html element.
func (d *Document) Root() *Element { return d.root }

// Body returns the body element.
func (d *Document) Body() *Element { return d.body }

// Writes returns how many writes changed the document.
func (d *Document) Writes() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.writes
}

// Update runs fn with exclusive access to both elements, so readers see
// either none or all of its writes. It returns the number of writes that
// changed the document.
func (d *Document) Update(fn func(root, body Writer)) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	before := d.writes
	fn(Writer{e: d.root}, Writer{e: d.body})
	return d.writes - before
}

// Render serializes the document with head and content inserted verbatim.
func (d *Document) Render(head, content string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(d.root.openTag())
	b.WriteString("\n<head>\n")
	b.WriteString(head)
	b.WriteString("\n</head>\n")
	b.WriteString(d.body.openTag())
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
