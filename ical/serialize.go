package ical

import (
	"fmt"
	"reflect"
)

// WithLineLength overrides the maximum physical line length in octets.
type WithLineLength int

// WithNewLine overrides the sequence written at the end of each physical line.
type WithNewLine string

// RFC 5545 section 3.1 requires content lines to be delimited by CRLF.
// The LF variant is offered for hosts that post-process the output.
const (
	// WithNewLineUnix uses LF line endings.
	WithNewLineUnix WithNewLine = "\n"
	// WithNewLineWindows uses CRLF line endings as RFC 5545 requires.
	WithNewLineWindows WithNewLine = "\r\n"
)

// SerializationConfiguration controls how a component tree is written out.
// MaxLength is the physical line limit from RFC 5545 section 3.1; NewLine is
// the line delimiter.
type SerializationConfiguration struct {
	MaxLength int
	NewLine   string
}

// parseSerializeOps interprets the optional arguments accepted by Serialize
// and SerializeTo. Supported values are WithLineLength, WithNewLine and a
// complete *SerializationConfiguration, which short-circuits the rest.
func parseSerializeOps(ops []any) (*SerializationConfiguration, error) {
	serializeConfig := defaultSerializationOptions()
	for opi, op := range ops {
		switch op := op.(type) {
		case WithLineLength:
			serializeConfig.MaxLength = int(op)
		case WithNewLine:
			serializeConfig.NewLine = string(op)
		case *SerializationConfiguration:
			return op, nil
		case error:
			return nil, op
		default:
			return nil, fmt.Errorf("unknown op %d of type %s", opi, reflect.TypeOf(op))
		}
	}
	return serializeConfig, nil
}

func defaultSerializationOptions() *SerializationConfiguration {
	return &SerializationConfiguration{
		MaxLength: 75,
		NewLine:   string(WithNewLineWindows),
	}
}
