package extract

import (
	"testing"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected CandidateRecord
	}{
		{
			name:     "plain JSON object",
			raw:      `{"provider_name": "Jane Doe"}`,
			expected: CandidateRecord{"provider_name": "Jane Doe"},
		},
		{
			name:     "JSON surrounded by prose",
			raw:      "Sure, here is the extraction:\n{\"tin\": \"123456789\"}\nLet me know if you need more.",
			expected: CandidateRecord{"tin": "123456789"},
		},
		{
			name:     "no json at all",
			raw:      "no json here",
			expected: CandidateRecord{},
		},
		{
			name:     "empty input",
			raw:      "",
			expected: CandidateRecord{},
		},
		{
			name:     "single quotes repaired",
			raw:      `{'a': 1}`,
			expected: CandidateRecord{"a": float64(1)},
		},
		{
			name:     "closing brace before opening brace",
			raw:      "} nothing useful {",
			expected: CandidateRecord{},
		},
		{
			name:     "unparseable span",
			raw:      `{not valid json at all}`,
			expected: CandidateRecord{},
		},
		{
			name:     "empty object yields empty record",
			raw:      `leading text {} trailing`,
			expected: CandidateRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.raw)
			if got == nil {
				t.Fatal("Interpret returned nil record")
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d keys, want %d: %v", len(got), len(tt.expected), got)
			}
			for k, want := range tt.expected {
				if got[k] != want {
					t.Errorf("key %q: got %v, want %v", k, got[k], want)
				}
			}
		})
	}
}

func TestInterpretFirstSpanOnly(t *testing.T) {
	// Two separate objects: only the first brace-to-brace span is parsed.
	raw := `{"first": "yes"} {"second": "no"}`
	got := Interpret(raw)
	if got["first"] != "yes" {
		t.Errorf("first object not parsed: %v", got)
	}
	if _, ok := got["second"]; ok {
		t.Errorf("second object should not be parsed: %v", got)
	}
}

func TestInterpretNestedObjectTruncates(t *testing.T) {
	// The span ends at the first '}', so a nested object truncates the
	// candidate JSON and the parse falls through to empty.
	raw := `{"outer": {"inner": "v"}}`
	got := Interpret(raw)
	if len(got) != 0 {
		t.Errorf("nested object should yield empty record, got %v", got)
	}
}

func TestExtractSpan(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		span string
		ok   bool
	}{
		{"simple", `{"a":1}`, `{"a":1}`, true},
		{"embedded", `x{"a":1}y`, `{"a":1}`, true},
		{"missing open", `a":1}`, "", false},
		{"missing close", `{"a":1`, "", false},
		{"inverted", `}{`, "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := ExtractSpan(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if span != tt.span {
				t.Errorf("span: got %q, want %q", span, tt.span)
			}
		})
	}
}
