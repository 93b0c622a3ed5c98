package extract

import (
	"testing"

	"github.com/rosterize/rosterize/internal/roster"
)

func TestMapRow(t *testing.T) {
	mapping := roster.HeaderMapping{
		"Provider Name": "provider_name",
		"TIN":           "tin",
	}
	record := NormalizedRecord{
		"provider_name": "Jane Doe",
		"tin":           "123456789",
	}

	headers := []string{"Provider Name", "Unknown Col", "TIN"}
	row := MapRow(record, headers, mapping)

	want := []string{"Jane Doe", roster.Sentinel, "123456789"}
	if len(row) != len(headers) {
		t.Fatalf("row length: got %d, want %d", len(row), len(headers))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("column %d: got %q, want %q", i, row[i], want[i])
		}
	}
}

func TestMapRowPreservesOrder(t *testing.T) {
	mapping := roster.DefaultHeaderMapping()
	schema := roster.DefaultSchema()
	record := Normalize(CandidateRecord{}, schema)

	headers := []string{"TIN", "Provider Name", "Effective Date"}
	row := MapRow(record, headers, mapping)

	if len(row) != 3 {
		t.Fatalf("row length: got %d, want 3", len(row))
	}
	for i, v := range row {
		if v != roster.Sentinel {
			t.Errorf("column %d: got %q, want sentinel", i, v)
		}
	}
}

func TestMapRowEmptyHeaders(t *testing.T) {
	row := MapRow(NormalizedRecord{}, nil, roster.HeaderMapping{})
	if len(row) != 0 {
		t.Errorf("expected empty row, got %v", row)
	}
}
