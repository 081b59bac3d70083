package ical

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// BaseProperty is a single content line: a property name, optional parameters
// and a value (RFC 5545 section 3.1).
//
// Example:
//
//	DTSTART;TZID=America/New_York:19980119T020000
//
// has IANAToken "DTSTART", the parameter TZID with the single value
// "America/New_York", and the value "19980119T020000".
type BaseProperty struct {
	IANAToken      string
	ICalParameters map[string][]string
	Value          string
}

// PropertyParameter supplies one parameter key and its values for a content
// line.
type PropertyParameter interface {
	KeyValue() (string, []string)
}

// KeyValues is the plain PropertyParameter implementation.
type KeyValues struct {
	Key   string
	Value []string
}

// KeyValue returns the key and values unchanged.
func (kv *KeyValues) KeyValue() (string, []string) {
	return kv.Key, kv.Value
}

// WithEncoding returns an ENCODING parameter, e.g. "BASE64" for inline
// binary attachments.
func WithEncoding(encType string) PropertyParameter {
	return &KeyValues{Key: string(ParameterEncoding), Value: []string{encType}}
}

// WithFmtType returns a FMTTYPE media type parameter.
func WithFmtType(contentType string) PropertyParameter {
	return &KeyValues{Key: string(ParameterFmttype), Value: []string{contentType}}
}

// WithValue returns a VALUE data type parameter, e.g. "DATE" or "BINARY".
func WithValue(kind string) PropertyParameter {
	return &KeyValues{Key: string(ParameterValue), Value: []string{kind}}
}

// WithTZID returns a TZID time zone identifier parameter.
func WithTZID(tzid string) PropertyParameter {
	return &KeyValues{Key: string(ParameterTzid), Value: []string{tzid}}
}

func (property *BaseProperty) serialize(w io.Writer, serialConfig *SerializationConfiguration) error {
	b := bytes.NewBufferString("")
	fmt.Fprint(b, property.IANAToken)
	for _, k := range property.parameterKeys() {
		fmt.Fprint(b, ";", k, "=")
		for vi, v := range property.ICalParameters[k] {
			if vi > 0 {
				fmt.Fprint(b, ",")
			}
			if strings.ContainsAny(v, ";:,") {
				v = `"` + v + `"`
			}
			fmt.Fprint(b, v)
		}
	}
	fmt.Fprint(b, ":", property.Value)
	return foldLine(w, b.String(), serialConfig)
}

// parameterKeys returns the parameter names in lexicographic order so a
// property always serializes to the same text.
func (property *BaseProperty) parameterKeys() []string {
	if len(property.ICalParameters) == 0 {
		return nil
	}
	keys := make([]string, 0, len(property.ICalParameters))
	for k := range property.ICalParameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// foldLine writes one logical content line, folded so that no physical line
// exceeds the configured octet limit (RFC 5545 section 3.1). Continuation
// lines start with a single space, folds prefer the last space inside the
// limit, and multi-octet runes are never split.
func foldLine(w io.Writer, r string, serialConfig *SerializationConfiguration) error {
	maxLength := serialConfig.MaxLength
	contLength := maxLength - 1
	if contLength < 1 {
		contLength = 1
	}
	if len(r) > maxLength {
		l := trimUTF8StringUpTo(maxLength, r)
		if _, err := fmt.Fprint(w, l, serialConfig.NewLine); err != nil {
			return err
		}
		r = r[len(l):]

		for len(r) > contLength {
			l := trimUTF8StringUpTo(contLength, r)
			if _, err := fmt.Fprint(w, " ", l, serialConfig.NewLine); err != nil {
				return err
			}
			r = r[len(l):]
		}
		if _, err := fmt.Fprint(w, " "); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, r, serialConfig.NewLine)
	return err
}

// trimUTF8StringUpTo returns the longest prefix of s that fits in maxLength
// octets, backed up to the last space seen so words survive folding. At least
// one rune is returned so folding always makes progress.
func trimUTF8StringUpTo(maxLength int, s string) string {
	length := 0
	lastSpace := -1
	for i, r := range s {
		if r == ' ' {
			lastSpace = i
		}

		newLength := length + utf8.RuneLen(r)
		if newLength > maxLength {
			break
		}
		length = newLength
	}
	if lastSpace > 0 {
		return s[:lastSpace]
	}
	if length == 0 {
		_, n := utf8.DecodeRuneInString(s)
		return s[:n]
	}

	return s[:length]
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
	`;`, `\;`,
	`,`, `\,`,
)

// EscapeText escapes a value for use in a TEXT property (RFC 5545 section
// 3.3.11): backslash, line breaks, semicolon and comma. Line breaks of any
// style come out as the two characters `\n`.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

var textUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\N`, "\n",
	`\;`, `;`,
	`\,`, `,`,
)

// UnescapeText reverses EscapeText.
func UnescapeText(s string) string {
	return textUnescaper.Replace(s)
}
