// Package roster defines the fixed extraction schema for provider roster
// emails and the mapping between spreadsheet template headers and schema
// fields. The schema is constructed once at startup and passed explicitly
// into the pipeline components.
package roster

import (
	"encoding/json"
	"fmt"
)

// Sentinel is the literal value standing in for "no value could be
// determined". It appears verbatim in prompts, normalized records, and
// output cells; downstream consumers match on the exact string.
const Sentinel = "Information not found"

// Field is one extraction target: a JSON key the model must return and a
// human-readable description of the expected value format.
type Field struct {
	Key    string
	Format string
}

// Schema is the ordered set of extraction fields. Order matters for prompt
// serialization so identical inputs produce identical prompts.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema builds a schema from an ordered field list.
// Duplicate keys are rejected.
func NewSchema(fields []Field) (*Schema, error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Key == "" {
			return nil, fmt.Errorf("schema field %d has empty key", i)
		}
		if _, ok := index[f.Key]; ok {
			return nil, fmt.Errorf("duplicate schema field %q", f.Key)
		}
		index[f.Key] = i
	}
	return &Schema{fields: fields, index: index}, nil
}

// Fields returns the fields in schema order. Callers must not mutate the
// returned slice.
func (s *Schema) Fields() []Field {
	return s.fields
}

// Keys returns the field keys in schema order.
func (s *Schema) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.Key
	}
	return keys
}

// Has reports whether key is a schema field.
func (s *Schema) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Len returns the number of schema fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// MarshalIndentJSON serializes the schema as an ordered JSON object of
// key -> format description, the shape embedded in extraction prompts.
func (s *Schema) MarshalIndentJSON() string {
	buf := []byte("{\n")
	for i, f := range s.fields {
		key, _ := json.Marshal(f.Key)
		val, _ := json.Marshal(f.Format)
		buf = append(buf, "  "...)
		buf = append(buf, key...)
		buf = append(buf, ": "...)
		buf = append(buf, val...)
		if i < len(s.fields)-1 {
			buf = append(buf, ',')
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, '}')
	return string(buf)
}

// DefaultSchema returns the 17-field provider roster schema. Format
// descriptions double as model-facing instructions, so wording changes
// affect extraction behavior.
func DefaultSchema() *Schema {
	s, err := NewSchema([]Field{
		{Key: "transaction_type", Format: "Add | Update | Term | " + Sentinel},
		{Key: "transaction_attribute", Format: "string or '" + Sentinel + "'"},
		{Key: "effective_date", Format: "MM/DD/YYYY or '" + Sentinel + "'"},
		{Key: "term_date", Format: "MM/DD/YYYY or '" + Sentinel + "'"},
		{Key: "term_reason", Format: "string or '" + Sentinel + "'"},
		{Key: "provider_name", Format: "string or '" + Sentinel + "' Only output the name not their designation"},
		{Key: "provider_npi", Format: "digits or '" + Sentinel + "'"},
		{Key: "provider_specialty", Format: "string or '" + Sentinel + "'"},
		{Key: "state_license", Format: "string or '" + Sentinel + "'"},
		{Key: "organization_name", Format: "string or '" + Sentinel + "'"},
		{Key: "tin", Format: "digits or '" + Sentinel + "'(It is the Tax Id No.)"},
		{Key: "group_npi", Format: "digits or '" + Sentinel + "' (It is NPI of Default Provider)"},
		{Key: "complete_address", Format: "string or '" + Sentinel + "'"},
		{Key: "phone_number", Format: "digits or '" + Sentinel + "'"},
		{Key: "fax_number", Format: "digits or '" + Sentinel + "'"},
		{Key: "ppg_id", Format: "string (single or comma-separated) or '" + Sentinel + "'"},
		{Key: "line_of_business", Format: "'Medicare' or 'Commercial' or 'Medical' or '" + Sentinel + "'  Only these strings should be the output"},
	})
	if err != nil {
		panic(err)
	}
	return s
}
