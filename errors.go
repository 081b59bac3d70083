package icsfeed

import (
	"errors"
)

var (
	// ErrorInvalidFieldValue is the error returned when an event field value
	// has no text rendering. The whole render fails; no partial document is
	// produced.
	ErrorInvalidFieldValue = errors.New("invalid field value")
)
