// Package transform flattens a sequence of sibling elements into
// tabular records.
package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dgallion1/dxform/internal/doctree"
	"github.com/dgallion1/dxform/internal/extract"
)

// RootNotFoundError reports a root path that matched no element.
type RootNotFoundError struct {
	Path string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("root path %q: no matching element", e.Path)
}

// Record is one output row: field name to formatted value, including
// the index field.
type Record map[string]string

// DocTransformer walks the direct children of a root element, producing
// one Record per child in document order.
type DocTransformer struct {
	indexField string
	fields     []*extract.FieldExtractor
	rootPath   string
}

// New builds a transformer from field specification strings. A bad spec
// fails construction entirely; there is no partial transformer.
//
// A non-empty rootPath is normalized to an any-depth query, so a bare
// tag name matches at any depth rather than as a direct child.
func New(indexField string, fieldSpecs []string, rootPath string) (*DocTransformer, error) {
	fields := make([]*extract.FieldExtractor, 0, len(fieldSpecs))
	for _, spec := range fieldSpecs {
		f, err := extract.FromSpec(spec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if rootPath != "" && !strings.HasPrefix(rootPath, ".//") && !strings.HasPrefix(rootPath, "//") {
		rootPath = ".//" + rootPath
	}
	return &DocTransformer{
		indexField: indexField,
		fields:     fields,
		rootPath:   rootPath,
	}, nil
}

// FieldNames returns the output column order: the index field first,
// then each field in declared order.
func (t *DocTransformer) FieldNames() []string {
	names := make([]string, 0, len(t.fields)+1)
	names = append(names, t.indexField)
	for _, f := range t.fields {
		names = append(names, f.Name())
	}
	return names
}

// Transform extracts one Record per direct child of the root element.
// Every child counts toward the zero-based index regardless of tag.
// Any extraction failure aborts the whole transform; there are no
// partial results.
func (t *DocTransformer) Transform(doc *doctree.Document) ([]Record, error) {
	root := doc.Root()
	if t.rootPath != "" {
		// Search from the document level so the top element itself can
		// match the any-depth query.
		root = doc.Find(t.rootPath)
		if root == nil {
			return nil, &RootNotFoundError{Path: t.rootPath}
		}
	}

	var records []Record
	for i, child := range root.Children() {
		rec := Record{t.indexField: strconv.Itoa(i)}
		for _, f := range t.fields {
			value, err := f.Extract(child)
			if err != nil {
				return nil, err
			}
			rec[f.Name()] = value
		}
		records = append(records, rec)
	}
	return records, nil
}
