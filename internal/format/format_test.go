package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/dxform/internal/format"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		directive string
		want      format.Spec
	}{
		{"", format.Spec{Precision: -1}},
		{"s", format.Spec{Precision: -1, Verb: format.VerbString}},
		{"d", format.Spec{Precision: -1, Verb: format.VerbInt}},
		{"f", format.Spec{Precision: -1, Verb: format.VerbFloat}},
		{".3s", format.Spec{Precision: 3, Verb: format.VerbString}},
		{".2f", format.Spec{Precision: 2, Verb: format.VerbFloat}},
		{"8", format.Spec{Width: 8, Precision: -1}},
		{"10.3s", format.Spec{Width: 10, Precision: 3, Verb: format.VerbString}},
		{">8", format.Spec{Align: format.AlignRight, Width: 8, Precision: -1}},
		{"^6s", format.Spec{Align: format.AlignCenter, Width: 6, Precision: -1, Verb: format.VerbString}},
		{"*<4", format.Spec{Fill: '*', Align: format.AlignLeft, Width: 4, Precision: -1}},
		{"0>5d", format.Spec{Fill: '0', Align: format.AlignRight, Width: 5, Precision: -1, Verb: format.VerbInt}},
	}
	for _, tt := range tests {
		t.Run(tt.directive, func(t *testing.T) {
			got, err := format.ParseSpec(tt.directive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpec_Invalid(t *testing.T) {
	for _, directive := range []string{
		"x",    // unknown type
		".s",   // precision without digits
		".3d",  // precision with integer type
		"3sQ",  // trailing characters
		"8.2q", // unknown type after precision
	} {
		t.Run(directive, func(t *testing.T) {
			_, err := format.ParseSpec(directive)
			require.Error(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		value     string
		want      string
	}{
		{"identity", "", "hello", "hello"},
		{"string truncation", ".3s", "hello", "hel"},
		{"truncation shorter than value", ".10s", "hi", "hi"},
		{"width pads left-aligned", "8", "ab", "ab      "},
		{"width right-aligned", ">8", "ab", "      ab"},
		{"width centered", "^6", "ab", "  ab  "},
		{"custom fill", "*<5", "ab", "ab***"},
		{"zero-padded int", "0>5d", "42", "00042"},
		{"float precision", ".2f", "3.14159", "3.14"},
		{"float default precision", "f", "1.5", "1.500000"},
		{"int from float truncates", "d", "9.99", "9"},
		{"numbers right-align by default", "6d", "42", "    42"},
		{"non-numeric float passes through", ".2f", "n/a", "n/a"},
		{"non-numeric still pads", "5d", "abc", "abc  "},
		{"empty value pads to width", "4", "", "    "},
		{"truncate then pad", "6.3s", "abcdef", "abc   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := format.ParseSpec(tt.directive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Apply(tt.value))
		})
	}
}
