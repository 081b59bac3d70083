package icsfeed

import (
	"sort"
	"strings"

	"github.com/icsfeed/icsfeed/ical"
)

// Properties maps calendar-level property names to raw text values. Names may
// be given in snake form ("x_wr_calname") or wire form ("X-WR-CALNAME").
type Properties map[string]string

// Configure builds the base property set a feed serves with. Every calendar
// gets CALSCALE, METHOD, PRODID, VERSION, X-WR-CALDESC, X-WR-CALNAME and
// X-WR-TIMEZONE; a default is skipped when defaultProperties already carries
// the same property under any spelling. Call it once at startup and hand the
// result to New.
func Configure(defaultProperties Properties, applicationIdentifier, hostName, localTimezone string) Properties {
	base := make(Properties, len(defaultProperties)+7)
	seen := make(map[string]struct{}, len(defaultProperties))
	for k, v := range defaultProperties {
		base[k] = v
		seen[NormalizeKey(k)] = struct{}{}
	}

	defaults := []struct{ key, value string }{
		{"calscale", "GREGORIAN"},
		{"method", string(ical.MethodPublish)},
		{"prodid", "-//" + hostName + "//NONSGML " + applicationIdentifier + "//EN"},
		{"version", "2.0"},
		{"x_wr_caldesc", ""},
		{"x_wr_calname", applicationIdentifier},
		{"x_wr_timezone", localTimezone},
	}
	for _, d := range defaults {
		if _, ok := seen[NormalizeKey(d.key)]; ok {
			continue
		}
		base[d.key] = d.value
	}
	return base
}

// NormalizeKey maps a property or field name to its iCalendar wire form: a
// name starting with a lowercase ASCII letter is uppercased with underscores
// turned into hyphens, so "x_wr_calname" becomes "X-WR-CALNAME". Any other
// name passes through unchanged, which makes the mapping idempotent.
func NormalizeKey(key string) string {
	if key == "" {
		return key
	}
	if c := key[0]; c < 'a' || c > 'z' {
		return key
	}
	return strings.ToUpper(strings.ReplaceAll(key, "_", "-"))
}

// normalizeProperties rewrites every key to wire form. Source keys are
// visited in lexicographic order, so when two spellings collide on the same
// wire name the later source key wins.
func normalizeProperties(p Properties) Properties {
	out := make(Properties, len(p))
	for _, k := range sortedKeys(p) {
		out[NormalizeKey(k)] = p[k]
	}
	return out
}

// mergeProperties layers request overrides over the configured base set. A
// non-empty override replaces the base value; an empty override keeps the
// base value when the base has one, and otherwise passes through empty.
func mergeProperties(base, overrides Properties) Properties {
	merged := normalizeProperties(base)
	for k, v := range normalizeProperties(overrides) {
		if v == "" {
			if _, ok := merged[k]; ok {
				continue
			}
		}
		merged[k] = v
	}
	return merged
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
