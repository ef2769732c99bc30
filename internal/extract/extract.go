// Package extract pulls single scalar values out of document elements
// according to declarative field specifications.
//
// A field specification has the form <source>:<name>[:<format>], where
// source is "attrib" (an attribute of the element) or "text" (the text
// of a child element found by path), and format is an optional directive
// in the format mini-language.
package extract

import (
	"fmt"
	"strings"

	"github.com/dgallion1/dxform/internal/doctree"
	"github.com/dgallion1/dxform/internal/format"
)

// Source identifies where a field's value comes from.
type Source string

const (
	SourceAttrib Source = "attrib"
	SourceText   Source = "text"
)

// ConfigError reports a malformed field specification. It is always
// detected at construction time, never during extraction.
type ConfigError struct {
	Spec   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("field spec %q: %s", e.Spec, e.Reason)
}

// FieldNotFoundError reports a required child element missing from a
// record element.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q: no matching child element", e.Field)
}

// FieldExtractor extracts one field from an element. Immutable after
// construction.
type FieldExtractor struct {
	source Source
	name   string
	format format.Spec
}

// FromSpec parses a field specification string. The format part may
// itself contain colons; only the first two separators split.
func FromSpec(fieldSpec string) (*FieldExtractor, error) {
	parts := strings.SplitN(fieldSpec, ":", 3)
	if len(parts) < 2 || parts[1] == "" {
		return nil, &ConfigError{Spec: fieldSpec, Reason: "missing field name"}
	}
	source := Source(parts[0])
	if source != SourceAttrib && source != SourceText {
		return nil, &ConfigError{Spec: fieldSpec, Reason: fmt.Sprintf("invalid value source %q", parts[0])}
	}
	directive := ""
	if len(parts) == 3 {
		directive = parts[2]
	}
	spec, err := format.ParseSpec(directive)
	if err != nil {
		return nil, &ConfigError{Spec: fieldSpec, Reason: err.Error()}
	}
	return &FieldExtractor{source: source, name: parts[1], format: spec}, nil
}

// Name returns the field name: an attribute name for attrib sources, a
// child element path for text sources.
func (x *FieldExtractor) Name() string {
	return x.name
}

// Extract returns the formatted field value of n.
//
// A missing attribute is not an error: it extracts as the empty string,
// and the format directive still applies. A missing child element is a
// hard error.
func (x *FieldExtractor) Extract(n doctree.Node) (string, error) {
	var value string
	switch x.source {
	case SourceAttrib:
		value, _ = n.Attr(x.name)
	case SourceText:
		child := doctree.FindPath(n, x.name)
		if child == nil {
			return "", &FieldNotFoundError{Field: x.name}
		}
		value = child.Text()
	}
	return x.format.Apply(value), nil
}
