package schema

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonschema"
)

// -----------------------------------------------------------------------------
// Schema
// -----------------------------------------------------------------------------

// Schema is a JSON-schema document in map form. The structural schema for a
// model config is assembled dynamically from the live registry, so its shape
// follows whatever encoders/decoders are registered.
type Schema map[string]any

type Result = jsonschema.EvaluationResult

func (s *Schema) String() string {
	bytes, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(bytes)
}

func (s *Schema) Compile() (*jsonschema.Schema, error) {
	if s == nil {
		return nil, nil
	}
	bytes, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiled, err := compiler.Compile(bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled, nil
}

// Validate evaluates value against the compiled schema and returns the
// failing result formatted as an error.
func (s *Schema) Validate(value any) (*Result, error) {
	compiled, err := s.Compile()
	if err != nil {
		return nil, err
	}
	if compiled == nil {
		return nil, nil
	}
	result := compiled.Validate(value)
	if result.Valid {
		return result, nil
	}
	return nil, fmt.Errorf("schema validation failed: %v", result.Errors)
}
