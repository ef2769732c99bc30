// Package doctree presents parsed XML and HTML documents as a uniform
// read-only element tree. Extraction code works against Node and never
// sees which backend produced the tree.
package doctree

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

// Node is one element in a parsed document.
type Node interface {
	// Tag returns the element name.
	Tag() string
	// Attr looks up an attribute by name. The second result reports
	// whether the attribute is present.
	Attr(name string) (string, bool)
	// Text returns the text directly inside the element, before its
	// first child element.
	Text() string
	// Children returns the element children in document order. Text and
	// comment nodes are not included.
	Children() []Node
}

// Document is a parsed tree with a single top-level element.
type Document struct {
	root Node
}

// NewDocument wraps a top-level element.
func NewDocument(root Node) *Document {
	return &Document{root: root}
}

// Root returns the document's top-level element.
func (d *Document) Root() Node {
	return d.root
}

// --- XML backend (etree) ---

type xmlNode struct {
	el *etree.Element
}

// FromXML wraps an etree document. Returns nil if the document has no
// root element.
func FromXML(doc *etree.Document) *Document {
	root := doc.Root()
	if root == nil {
		return nil
	}
	return NewDocument(xmlNode{el: root})
}

func (n xmlNode) Tag() string { return n.el.Tag }

func (n xmlNode) Attr(name string) (string, bool) {
	if a := n.el.SelectAttr(name); a != nil {
		return a.Value, true
	}
	return "", false
}

func (n xmlNode) Text() string { return n.el.Text() }

func (n xmlNode) Children() []Node {
	kids := n.el.ChildElements()
	out := make([]Node, len(kids))
	for i, c := range kids {
		out[i] = xmlNode{el: c}
	}
	return out
}

// --- HTML backend (x/net/html) ---

type htmlNode struct {
	n *html.Node
}

// FromHTML wraps a parsed HTML tree. The top-level element is the
// first element node reachable from n, normally <html>.
func FromHTML(n *html.Node) *Document {
	root := firstElement(n)
	if root == nil {
		return nil
	}
	return NewDocument(htmlNode{n: root})
}

func firstElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if el := firstElement(c); el != nil {
			return el
		}
	}
	return nil
}

func (h htmlNode) Tag() string { return h.n.Data }

func (h htmlNode) Attr(name string) (string, bool) {
	for _, a := range h.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Text follows the same convention as the XML backend: only the text
// preceding the first element child counts.
func (h htmlNode) Text() string {
	var b strings.Builder
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			break
		}
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func (h htmlNode) Children() []Node {
	var out []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, htmlNode{n: c})
		}
	}
	return out
}
