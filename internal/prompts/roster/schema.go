package roster

import (
	"encoding/json"

	"github.com/rosterize/rosterize/internal/providers"
	"github.com/rosterize/rosterize/internal/roster"
)

// ExtractionSchema builds the JSON schema response format for roster
// extraction. Providers that support structured output use it to constrain
// generation; the interpreter never assumes it was honored.
func ExtractionSchema(schema *roster.Schema) map[string]any {
	properties := make(map[string]any, schema.Len())
	required := make([]string, 0, schema.Len())
	for _, f := range schema.Fields() {
		properties[f.Key] = map[string]any{
			"type":        "string",
			"description": f.Format,
		}
		required = append(required, f.Key)
	}
	return map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   "roster_record",
			"strict": true,
			"schema": map[string]any{
				"type":                 "object",
				"properties":           properties,
				"required":             required,
				"additionalProperties": false,
			},
		},
	}
}

// ExtractionSchemaJSON returns ExtractionSchema serialized for a
// ChatRequest response format.
func ExtractionSchemaJSON(schema *roster.Schema) json.RawMessage {
	raw, err := json.Marshal(ExtractionSchema(schema))
	if err != nil {
		return nil
	}
	return raw
}

// ResponseFormat builds the structured-output request format for roster
// extraction. The payload is the inner json_schema object, which is what
// providers expect under response_format.
func ResponseFormat(schema *roster.Schema) *providers.ResponseFormat {
	jsonSchema, _ := json.Marshal(ExtractionSchema(schema)["json_schema"])
	return &providers.ResponseFormat{
		Type:       "json_schema",
		JSONSchema: jsonSchema,
	}
}
