package validation

import (
	"sort"

	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/registry"
	"github.com/ludwig-ai/ludwig-go/engine/schema"
)

// BuildSchema assembles the structural JSON schema for a resolved config from
// the live registry: enumerations follow whatever components are registered,
// so extending the registry extends the accepted shape without touching this
// code.
func BuildSchema(reg *registry.Registry) schema.Schema {
	return schema.Schema{
		"type": "object",
		"properties": map[string]any{
			core.KeyModelType: map[string]any{
				"type": "string",
				"enum": []any{core.ModelECD, core.ModelGBM},
			},
			core.SectionInputFeatures: map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    featureSchema(core.InputFeatureTypes()),
			},
			core.SectionOutputFeatures: map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    featureSchema(core.OutputFeatureTypes()),
			},
			core.SectionCombiner: map[string]any{
				"type": "object",
				"properties": map[string]any{
					core.KeyType: map[string]any{
						"type": "string",
						"enum": toAnySlice(sorted(reg.CombinerNames())),
					},
				},
				"required": []any{core.KeyType},
			},
			core.SectionTrainer: map[string]any{
				"type": "object",
				"properties": map[string]any{
					core.KeyType: map[string]any{"type": "string"},
					"early_stop": map[string]any{"type": "integer", "minimum": -1},
				},
			},
			core.SectionPreprocessing: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"sample_ratio": map[string]any{
						"type":             "number",
						"exclusiveMinimum": 0,
						"maximum":          1,
					},
					core.SectionSplit: map[string]any{
						"type": "object",
						"properties": map[string]any{
							core.KeyType: map[string]any{
								"type": "string",
								"enum": toAnySlice(sorted(reg.SplitterNames())),
							},
						},
					},
				},
			},
			core.SectionDefaults: map[string]any{"type": "object"},
			core.SectionHyperopt: map[string]any{"type": "object"},
			core.SectionBackend:  map[string]any{"type": "object"},
		},
		"required": []any{core.SectionInputFeatures, core.SectionOutputFeatures},
		// GBM models decode a single output from the boosted trees.
		"if": map[string]any{
			"properties": map[string]any{
				core.KeyModelType: map[string]any{"const": core.ModelGBM},
			},
			"required": []any{core.KeyModelType},
		},
		"then": map[string]any{
			"properties": map[string]any{
				core.SectionOutputFeatures: map[string]any{"maxItems": 1},
			},
		},
	}
}

func featureSchema(validTypes []string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			core.KeyName: map[string]any{"type": "string", "minLength": 1},
			core.KeyType: map[string]any{
				"type": "string",
				"enum": toAnySlice(validTypes),
			},
			core.KeyColumn:     map[string]any{"type": "string"},
			core.KeyProcColumn: map[string]any{"type": "string"},
			core.KeyActive:     map[string]any{"type": "boolean"},
		},
		"required": []any{core.KeyName, core.KeyType},
	}
}

func sorted(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
