// Package extract turns raw model output into normalized roster rows. It is
// the boundary between untrusted generated text and the rest of the system:
// every function here is total and degrades to the sentinel instead of
// failing.
package extract

import (
	"encoding/json"
	"strings"
)

// CandidateRecord is a best-effort structured parse of model output. It may
// be incomplete, carry extraneous keys, or be empty; it is never nil.
type CandidateRecord map[string]any

// Interpret extracts a JSON object from raw model output.
//
// The span from the first '{' to the first '}' is parsed as JSON. If no such
// span exists, the span is not an object, or parsing fails even after one
// repair pass (single quotes rewritten to double quotes), an empty record is
// returned. Interpret never returns an error: absent or malformed structured
// output is a recoverable condition handled downstream by normalization.
//
// The span is not balance-scanned: a value containing '}' before the real
// closing brace truncates the candidate JSON. See ExtractSpan.
func Interpret(raw string) CandidateRecord {
	span, ok := ExtractSpan(raw)
	if !ok {
		return CandidateRecord{}
	}
	if rec, ok := parseObject(span); ok {
		return rec
	}
	// Repair pass: models frequently emit Python-style single quotes.
	if rec, ok := parseObject(strings.ReplaceAll(span, "'", `"`)); ok {
		return rec
	}
	return CandidateRecord{}
}

// ExtractSpan returns the substring from the first '{' through the first
// '}' inclusive. The second return is false when either brace is absent or
// the closing brace precedes the opening brace.
func ExtractSpan(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.Index(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func parseObject(span string) (CandidateRecord, bool) {
	var parsed any
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return nil, false
	}
	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, false
	}
	return CandidateRecord(obj), true
}
