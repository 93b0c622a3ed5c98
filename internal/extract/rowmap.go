package extract

import "github.com/rosterize/rosterize/internal/roster"

// MapRow projects a normalized record into the template's column order.
//
// Each header resolves to a schema key through the mapping; unrecognized
// headers degrade to the sentinel so an edited template never breaks a run.
// The returned row has exactly one value per header, in header order.
func MapRow(record NormalizedRecord, headers []string, mapping roster.HeaderMapping) []string {
	row := make([]string, len(headers))
	for i, header := range headers {
		key := mapping.Resolve(header)
		if key == "" {
			row[i] = roster.Sentinel
			continue
		}
		if v, ok := record[key]; ok {
			row[i] = v
		} else {
			row[i] = roster.Sentinel
		}
	}
	return row
}
