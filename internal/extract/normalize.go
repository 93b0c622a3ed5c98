package extract

import (
	"fmt"
	"strings"

	"github.com/rosterize/rosterize/internal/roster"
)

// NormalizedRecord covers every schema field with a non-empty single-line
// string value. Missing or invalid candidate values become the sentinel, so
// downstream consumers never see an empty cell.
type NormalizedRecord map[string]string

// Normalize fills every schema field from the candidate record.
//
// Per field: absent, nil, or empty-after-trim values become the sentinel;
// list values are stringified and joined with ", "; everything else is
// stringified and trimmed. Embedded newlines collapse to single spaces so a
// record value always fits one spreadsheet cell. Normalize is total over any
// candidate, including the empty one; extraneous candidate keys are ignored.
func Normalize(candidate CandidateRecord, schema *roster.Schema) NormalizedRecord {
	out := make(NormalizedRecord, schema.Len())
	for _, key := range schema.Keys() {
		out[key] = normalizeValue(candidate[key])
	}
	return out
}

func normalizeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return roster.Sentinel
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = singleLine(stringify(item))
		}
		return orSentinel(strings.Join(parts, ", "))
	case string:
		return orSentinel(singleLine(strings.TrimSpace(val)))
	default:
		return orSentinel(singleLine(strings.TrimSpace(stringify(val))))
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers arrive as float64; render integral values without the
		// trailing ".0" so NPIs and TINs survive round-tripping.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '\r' || r == '\n' })
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return strings.Join(fields, " ")
}

func orSentinel(s string) string {
	if strings.TrimSpace(s) == "" {
		return roster.Sentinel
	}
	return s
}
