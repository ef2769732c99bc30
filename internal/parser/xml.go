package parser

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/dgallion1/dxform/internal/doctree"
)

// XMLParser handles XML files.
type XMLParser struct{}

func (p *XMLParser) Parse(r io.Reader) (*doctree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	tree := doctree.FromXML(doc)
	if tree == nil {
		return nil, fmt.Errorf("parse xml: document has no root element")
	}
	return tree, nil
}
