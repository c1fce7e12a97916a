package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const catalogSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["id", "labels"],
    "properties": {
      "id": {"type": "string", "minLength": 1, "pattern": "^[a-z0-9_]+$"},
      "labels": {
        "type": "array",
        "minItems": 1,
        "items": {"type": "string", "minLength": 1}
      }
    },
    "additionalProperties": false
  }
}`

var compiledCatalogSchema = mustCompile(catalogSchema)

func mustCompile(schema string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader([]byte(schema))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("schema.json")
}

// Parse decodes and validates a JSON catalog document.
func Parse(data []byte) (*Catalog, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if err := compiledCatalogSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("catalog does not match schema: %w", err)
	}
	var params []Parameter
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return New(params)
}
