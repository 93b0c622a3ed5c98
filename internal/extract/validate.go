package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validate checks a candidate record against a JSON schema document. It is
// diagnostic only: the pipeline proceeds through normalization regardless,
// and callers log the returned issue in verbose runs. The schema may be a
// raw schema or an OpenAI-style {"type":"json_schema","json_schema":
// {"schema":...}} wrapper.
func Validate(candidate CandidateRecord, schemaRaw json.RawMessage) error {
	if len(schemaRaw) == 0 || len(candidate) == 0 {
		return nil
	}

	coreSchema, err := unwrapSchema(schemaRaw)
	if err != nil {
		return err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(coreSchema)); err != nil {
		return fmt.Errorf("failed to load roster schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile roster schema: %w", err)
	}

	// Round-trip keeps validation on plain JSON types.
	doc := make(map[string]any, len(candidate))
	for k, v := range candidate {
		doc[k] = v
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("candidate record does not match schema: %w", err)
	}
	return nil
}

func unwrapSchema(schemaRaw json.RawMessage) (json.RawMessage, error) {
	var root any
	if err := json.Unmarshal(schemaRaw, &root); err != nil {
		return nil, fmt.Errorf("invalid roster schema JSON: %w", err)
	}

	rootMap, ok := root.(map[string]any)
	if !ok {
		return schemaRaw, nil
	}
	if inner, ok := rootMap["json_schema"]; ok {
		if innerMap, ok := inner.(map[string]any); ok {
			if innerSchema, ok := innerMap["schema"]; ok {
				b, err := json.Marshal(innerSchema)
				if err != nil {
					return nil, fmt.Errorf("failed to serialize json_schema.schema: %w", err)
				}
				return b, nil
			}
		}
	}
	if inner, ok := rootMap["schema"]; ok {
		b, err := json.Marshal(inner)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize inner schema: %w", err)
		}
		return b, nil
	}
	return schemaRaw, nil
}
