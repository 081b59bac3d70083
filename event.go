package icsfeed

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Event is one record to render as a VEVENT. Keys follow the same naming
// convention as Properties; values are raw text or one of the Go types the
// renderer can convert.
type Event map[string]any

// icalTimestampFormatUtc is the DATE-TIME form with UTC designator from
// RFC 5545 section 3.3.5.
const icalTimestampFormatUtc = "20060102T150405Z"

// normalizeEvent converts a record to wire-form field names with text values.
// Source keys are visited in lexicographic order so colliding spellings
// resolve the same way every time.
func normalizeEvent(event Event) (map[string]string, error) {
	keys := make([]string, 0, len(event))
	for k := range event {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(map[string]string, len(event))
	for _, k := range keys {
		v, err := fieldText(event[k])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		fields[NormalizeKey(k)] = v
	}
	return fields, nil
}

// fieldText renders one field value as text. Times are written in the compact
// UTC timestamp form; values without an obvious text form are rejected.
func fieldText(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case time.Time:
		return v.UTC().Format(icalTimestampFormatUtc), nil
	case int:
		return strconv.Itoa(v), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer:
		return v.String(), nil
	case nil:
		return "", fmt.Errorf("%w: nil", ErrorInvalidFieldValue)
	default:
		return "", fmt.Errorf("%w: cannot render %T", ErrorInvalidFieldValue, value)
	}
}
