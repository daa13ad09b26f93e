// SPDX-License-Identifier: MIT
package adapters

import (
	"html"
	"sort"
	"strings"
)

// Attr is a rendered attribute on a provider node.
type Attr struct {
	Name  string
	Value string
}

// Node is a piece of rendered content. Provider nodes come from adapters and
// may set ambient properties that every descendant inherits unless a nearer
// provider sets the same property.
type Node struct {
	Provider string
	Attrs    []Attr
	Ambient  map[string]string
	Children []*Node
	// HTML is raw markup for leaf content.
	HTML string
}

// Content returns a leaf node holding raw markup.
func Content(markup string) *Node {
	return &Node{HTML: markup}
}

// Text returns a leaf node holding escaped text.
func Text(s string) *Node {
	return &Node{HTML: html.EscapeString(s)}
}

// Provider returns a provider node wrapping children.
func Provider(name string, ambient map[string]string, attrs []Attr, children ...*Node) *Node {
	return &Node{Provider: name, Ambient: ambient, Attrs: attrs, Children: children}
}

// Find returns the first provider named name in depth-first order.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Provider == name {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// IsAncestor reports whether the provider outer contains the provider inner.
func (n *Node) IsAncestor(outer, inner string) bool {
	o := n.Find(outer)
	if o == nil {
		return false
	}
	for _, c := range o.Children {
		if c.Find(inner) != nil {
			return true
		}
	}
	return false
}

// AmbientAt returns the value of property as seen by the first leaf content
// under n: the value set by the nearest enclosing provider.
func (n *Node) AmbientAt(property string) string {
	var value string
	for cur := n; cur != nil; {
		if v, ok := cur.Ambient[property]; ok {
			value = v
		}
		if len(cur.Children) == 0 {
			break
		}
		cur = cur.Children[0]
	}
	return value
}

// Render serializes n as HTML. Providers become div elements carrying their
// attributes and ambient properties as inline style.
func (n *Node) Render() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Provider == "" {
		b.WriteString(n.HTML)
		for _, c := range n.Children {
			c.render(b)
		}
		return
	}
	b.WriteString(`<div data-provider="`)
	b.WriteString(html.EscapeString(n.Provider))
	b.WriteString(`"`)
	for _, a := range n.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteString(`"`)
	}
	if len(n.Ambient) > 0 {
		props := make([]string, 0, len(n.Ambient))
		for p := range n.Ambient {
			props = append(props, p)
		}
		sort.Strings(props)
		decls := make([]string, 0, len(props))
		for _, p := range props {
			decls = append(decls, p+": "+n.Ambient[p])
		}
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(strings.Join(decls, "; ")))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	for _, c := range n.Children {
		c.render(b)
	}
	b.WriteString("</div>")
}
