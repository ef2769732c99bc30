// Package format implements the field formatting mini-language used in
// field specifications: [[fill]align][width][.precision][type].
//
//	align ∈ {<, >, ^}
//	type  ∈ {s, d, f}
//
// A width pads the value to a minimum number of runes. A precision
// truncates strings (type s or none) or sets the number of decimal
// places (type f). Type d truncates numeric values to an integer.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Align is the padding alignment of a directive.
type Align int

const (
	AlignDefault Align = iota // left for strings, right for numbers
	AlignLeft
	AlignRight
	AlignCenter
)

// Verb is the conversion type of a directive.
type Verb int

const (
	VerbNone Verb = iota
	VerbString
	VerbInt
	VerbFloat
)

// Spec is a parsed format directive. ParseSpec("") yields the identity
// transform.
type Spec struct {
	Fill      rune
	Align     Align
	Width     int
	Precision int // -1 when absent
	Verb      Verb
}

// ParseSpec parses a directive string. An empty directive parses to the
// identity Spec.
func ParseSpec(directive string) (Spec, error) {
	s := Spec{Precision: -1}
	r := []rune(directive)

	// [[fill]align]
	if len(r) >= 2 {
		if a, ok := alignOf(r[1]); ok {
			s.Fill = r[0]
			s.Align = a
			r = r[2:]
		}
	}
	if s.Align == AlignDefault && len(r) >= 1 {
		if a, ok := alignOf(r[0]); ok {
			s.Align = a
			r = r[1:]
		}
	}

	// [width]
	i := 0
	for i < len(r) && r[i] >= '0' && r[i] <= '9' {
		i++
	}
	if i > 0 {
		w, err := strconv.Atoi(string(r[:i]))
		if err != nil {
			return Spec{}, fmt.Errorf("invalid width in format %q", directive)
		}
		s.Width = w
		r = r[i:]
	}

	// [.precision]
	if len(r) > 0 && r[0] == '.' {
		r = r[1:]
		i = 0
		for i < len(r) && r[i] >= '0' && r[i] <= '9' {
			i++
		}
		if i == 0 {
			return Spec{}, fmt.Errorf("format %q: missing precision digits", directive)
		}
		p, err := strconv.Atoi(string(r[:i]))
		if err != nil {
			return Spec{}, fmt.Errorf("invalid precision in format %q", directive)
		}
		s.Precision = p
		r = r[i:]
	}

	// [type]
	if len(r) > 0 {
		switch r[0] {
		case 's':
			s.Verb = VerbString
		case 'd':
			s.Verb = VerbInt
		case 'f':
			s.Verb = VerbFloat
		default:
			return Spec{}, fmt.Errorf("format %q: unsupported conversion type %q", directive, string(r[0]))
		}
		r = r[1:]
	}
	if len(r) > 0 {
		return Spec{}, fmt.Errorf("format %q: trailing characters %q", directive, string(r))
	}
	if s.Verb == VerbInt && s.Precision >= 0 {
		return Spec{}, fmt.Errorf("format %q: precision not allowed with type d", directive)
	}
	return s, nil
}

func alignOf(r rune) (Align, bool) {
	switch r {
	case '<':
		return AlignLeft, true
	case '>':
		return AlignRight, true
	case '^':
		return AlignCenter, true
	}
	return AlignDefault, false
}

// Apply formats value according to the directive. Values that do not
// parse as numbers under a numeric conversion pass through unconverted;
// width and padding still apply.
func (s Spec) Apply(value string) string {
	out := value
	numeric := false

	switch s.Verb {
	case VerbFloat:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			p := s.Precision
			if p < 0 {
				p = 6
			}
			out = strconv.FormatFloat(f, 'f', p, 64)
			numeric = true
		}
	case VerbInt:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			out = strconv.FormatInt(n, 10)
			numeric = true
		} else if f, err := strconv.ParseFloat(value, 64); err == nil {
			out = strconv.FormatInt(int64(f), 10)
			numeric = true
		}
	default:
		if s.Precision >= 0 {
			out = truncate(out, s.Precision)
		}
	}

	if s.Width > 0 {
		out = pad(out, s.Width, s.fill(), s.align(numeric))
	}
	return out
}

func (s Spec) fill() rune {
	if s.Fill == 0 {
		return ' '
	}
	return s.Fill
}

func (s Spec) align(numeric bool) Align {
	if s.Align != AlignDefault {
		return s.Align
	}
	if numeric {
		return AlignRight
	}
	return AlignLeft
}

func truncate(v string, n int) string {
	if utf8.RuneCountInString(v) <= n {
		return v
	}
	return string([]rune(v)[:n])
}

func pad(v string, width int, fill rune, a Align) string {
	gap := width - utf8.RuneCountInString(v)
	if gap <= 0 {
		return v
	}
	switch a {
	case AlignRight:
		return strings.Repeat(string(fill), gap) + v
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(string(fill), left) + v + strings.Repeat(string(fill), gap-left)
	default:
		return v + strings.Repeat(string(fill), gap)
	}
}
