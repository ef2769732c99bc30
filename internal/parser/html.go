package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/dxform/internal/doctree"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader) (*doctree.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	tree := doctree.FromHTML(doc)
	if tree == nil {
		return nil, fmt.Errorf("parse html: document has no elements")
	}
	return tree, nil
}
