package extract

import (
	"testing"

	"github.com/rosterize/rosterize/internal/roster"
)

func testSchema(t *testing.T) *roster.Schema {
	t.Helper()
	s, err := roster.NewSchema([]roster.Field{
		{Key: "provider_name", Format: "string"},
		{Key: "tin", Format: "digits"},
		{Key: "ppg_id", Format: "string (single or comma-separated)"},
	})
	if err != nil {
		t.Fatalf("failed to build schema: %v", err)
	}
	return s
}

func TestNormalizeTotality(t *testing.T) {
	schema := testSchema(t)

	tests := []struct {
		name      string
		candidate CandidateRecord
	}{
		{"empty candidate", CandidateRecord{}},
		{"nil-ish values", CandidateRecord{"provider_name": nil, "tin": "   "}},
		{"extra unknown keys", CandidateRecord{"bogus": "x", "provider_name": "Jane"}},
		{"list values", CandidateRecord{"ppg_id": []any{"A", "B"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.candidate, schema)
			if len(got) != schema.Len() {
				t.Fatalf("key count: got %d, want %d", len(got), schema.Len())
			}
			for _, key := range schema.Keys() {
				v, ok := got[key]
				if !ok {
					t.Errorf("missing schema key %q", key)
				}
				if v == "" {
					t.Errorf("key %q has empty value", key)
				}
			}
			for k := range got {
				if !schema.Has(k) {
					t.Errorf("unexpected key %q in normalized record", k)
				}
			}
		})
	}
}

func TestNormalizeValues(t *testing.T) {
	schema := testSchema(t)

	tests := []struct {
		name      string
		candidate CandidateRecord
		key       string
		want      string
	}{
		{"missing field", CandidateRecord{}, "tin", roster.Sentinel},
		{"nil value", CandidateRecord{"tin": nil}, "tin", roster.Sentinel},
		{"empty after trim", CandidateRecord{"tin": "  "}, "tin", roster.Sentinel},
		{"trimmed string", CandidateRecord{"provider_name": "  Jane Doe "}, "provider_name", "Jane Doe"},
		{"list collapsed", CandidateRecord{"ppg_id": []any{"A", "B"}}, "ppg_id", "A, B"},
		{"empty list", CandidateRecord{"ppg_id": []any{}}, "ppg_id", roster.Sentinel},
		{"integral number", CandidateRecord{"tin": float64(123456789)}, "tin", "123456789"},
		{"boolean stringified", CandidateRecord{"tin": true}, "tin", "true"},
		{"multiline flattened", CandidateRecord{"provider_name": "Jane\nDoe"}, "provider_name", "Jane Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.candidate, schema)
			if got[tt.key] != tt.want {
				t.Errorf("got %q, want %q", got[tt.key], tt.want)
			}
		})
	}
}

func TestNormalizeSentinelIdempotent(t *testing.T) {
	schema := testSchema(t)

	candidate := CandidateRecord{}
	for _, key := range schema.Keys() {
		candidate[key] = roster.Sentinel
	}

	first := Normalize(candidate, schema)
	second := Normalize(CandidateRecord{}, schema)
	recycled := CandidateRecord{}
	for k, v := range first {
		recycled[k] = v
	}
	third := Normalize(recycled, schema)

	for _, key := range schema.Keys() {
		if first[key] != roster.Sentinel {
			t.Errorf("key %q: got %q, want sentinel", key, first[key])
		}
		if second[key] != first[key] || third[key] != first[key] {
			t.Errorf("key %q: normalization not idempotent", key)
		}
	}
}
