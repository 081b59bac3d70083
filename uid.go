package icsfeed

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/icsfeed/icsfeed/ical"
)

// eventDigest derives a stable identifier from an event's rendered fields.
// Field names are sorted and DTSTAMP is left out, so the digest does not
// change with the rendering time. The name=value pairs are joined with ":"
// and hashed with SHA-256; the first 32 hex characters form the identifier.
func eventDigest(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == string(ical.PropertyDtstamp) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+fields[name])
	}
	sum := sha256.Sum256([]byte(strings.Join(pairs, ":")))
	return hex.EncodeToString(sum[:])[:32]
}
