package doctree

import "strings"

// Path queries are slash-separated tag steps. A leading ".//" (or "//")
// makes the first step match at any depth below the search root; without
// it every step, including the first, is a direct-child match. The first
// match in depth-first preorder wins.

// FindPath resolves path against the children of start. It returns nil
// when nothing matches or the path is empty.
func FindPath(start Node, path string) Node {
	steps, anyDepth := splitPath(path)
	if len(steps) == 0 {
		return nil
	}
	if !anyDepth {
		for _, c := range start.Children() {
			if r := matchSteps(c, steps); r != nil {
				return r
			}
		}
		return nil
	}
	var walk func(n Node) Node
	walk = func(n Node) Node {
		for _, c := range n.Children() {
			if r := matchSteps(c, steps); r != nil {
				return r
			}
			if r := walk(c); r != nil {
				return r
			}
		}
		return nil
	}
	return walk(start)
}

// Find resolves path starting at the document level rather than at the
// top-level element, so an any-depth query can match the top-level
// element itself.
func (d *Document) Find(path string) Node {
	return FindPath(docNode{root: d.root}, path)
}

// docNode is the virtual parent of the top-level element.
type docNode struct {
	root Node
}

func (docNode) Tag() string                { return "" }
func (docNode) Attr(string) (string, bool) { return "", false }
func (docNode) Text() string               { return "" }
func (d docNode) Children() []Node         { return []Node{d.root} }

func splitPath(path string) (steps []string, anyDepth bool) {
	p := path
	switch {
	case strings.HasPrefix(p, ".//"):
		anyDepth = true
		p = p[len(".//"):]
	case strings.HasPrefix(p, "//"):
		anyDepth = true
		p = p[len("//"):]
	}
	if p == "" {
		return nil, anyDepth
	}
	for _, s := range strings.Split(p, "/") {
		if s == "" {
			return nil, anyDepth
		}
		steps = append(steps, s)
	}
	return steps, anyDepth
}

// matchSteps anchors steps at n: n must carry the first tag and the
// remaining steps must resolve through direct children.
func matchSteps(n Node, steps []string) Node {
	if n.Tag() != steps[0] {
		return nil
	}
	if len(steps) == 1 {
		return n
	}
	for _, c := range n.Children() {
		if r := matchSteps(c, steps[1:]); r != nil {
			return r
		}
	}
	return nil
}
