// Package parser converts raw document bytes into a doctree.Document.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/dxform/internal/doctree"
)

// Parser converts a raw document into an element tree.
type Parser interface {
	Parse(r io.Reader) (*doctree.Document, error)
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".xml":  true,
	".html": true,
	".htm":  true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xml":
		return &XMLParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// ForFormat returns the parser for an explicit format name.
func ForFormat(name string) (Parser, error) {
	switch strings.ToLower(name) {
	case "xml":
		return &XMLParser{}, nil
	case "html":
		return &HTMLParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", name)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
