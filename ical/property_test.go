package ical

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertySerialize(t *testing.T) {
	testCases := []struct {
		name     string
		property BaseProperty
		expected string
	}{
		{
			name:     "no parameters",
			property: BaseProperty{IANAToken: "SUMMARY", Value: "Team sync"},
			expected: "SUMMARY:Team sync\r\n",
		},
		{
			name: "single parameter",
			property: BaseProperty{
				IANAToken:      "DTSTART",
				ICalParameters: map[string][]string{"TZID": {"America/New_York"}},
				Value:          "19980119T020000",
			},
			expected: "DTSTART;TZID=America/New_York:19980119T020000\r\n",
		},
		{
			name: "parameters in sorted order",
			property: BaseProperty{
				IANAToken: "ATTACH",
				ICalParameters: map[string][]string{
					"VALUE":    {"BINARY"},
					"ENCODING": {"BASE64"},
				},
				Value: "AAECAwQ=",
			},
			expected: "ATTACH;ENCODING=BASE64;VALUE=BINARY:AAECAwQ=\r\n",
		},
		{
			name: "multi valued parameter",
			property: BaseProperty{
				IANAToken:      "X-SLOTS",
				ICalParameters: map[string][]string{"MEMBER": {"a", "b"}},
				Value:          "x",
			},
			expected: "X-SLOTS;MEMBER=a,b:x\r\n",
		},
		{
			name: "parameter values with separators get quoted",
			property: BaseProperty{
				IANAToken:      "X-REF",
				ICalParameters: map[string][]string{"ALTREP": {"http://example.org/a,b"}},
				Value:          "x",
			},
			expected: "X-REF;ALTREP=\"http://example.org/a,b\":x\r\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &strings.Builder{}
			err := tc.property.serialize(b, defaultSerializationOptions())
			require.NoError(t, err)
			assert.Equal(t, tc.expected, b.String())
		})
	}
}

func TestEscapeText(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Team sync", want: "Team sync"},
		{name: "backslash", input: `C:\temp`, want: `C:\\temp`},
		{name: "newline", input: "line one\nline two", want: `line one\nline two`},
		{name: "carriage return newline", input: "line one\r\nline two", want: `line one\nline two`},
		{name: "semicolon", input: "a;b", want: `a\;b`},
		{name: "comma", input: "a,b", want: `a\,b`},
		{name: "mixed", input: "a,b;c\nd\\e", want: `a\,b\;c\nd\\e`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EscapeText(tc.input))
		})
	}
}

func TestUnescapeText(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Team sync", want: "Team sync"},
		{name: "backslash", input: `C:\\temp`, want: `C:\temp`},
		{name: "lower newline", input: `one\ntwo`, want: "one\ntwo"},
		{name: "upper newline", input: `one\Ntwo`, want: "one\ntwo"},
		{name: "separators", input: `a\,b\;c`, want: "a,b;c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UnescapeText(tc.input))
		})
	}
}

func TestEscapeTextRoundTrip(t *testing.T) {
	inputs := []string{
		"Team sync",
		`C:\temp`,
		"line one\nline two",
		"a;b,c",
		"éé界世界",
	}
	for _, input := range inputs {
		assert.Equal(t, input, UnescapeText(EscapeText(input)), "input %q", input)
	}
}
