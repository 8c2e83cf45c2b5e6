package config

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
)

// enforceGBM applies the GBM model-type rules after feature parsing: input
// features are restricted to the tree-representable types, and every encoder
// is forced to a passthrough since GBM consumes raw feature values rather
// than learned representations. The single-output-feature rule is enforced by
// the validation checks alongside the structural schema.
func (c *ModelConfig) enforceGBM() error {
	for _, feature := range c.InputFeatures {
		common := feature.Common()
		switch common.Type {
		case core.TypeBinary:
			feature.SetEncoder(encoders.NewBinaryPassthrough())
		case core.TypeCategory, core.TypeNumber:
			feature.SetEncoder(encoders.NewPassthrough())
		default:
			return core.NewErrorf(core.ErrCodeSemantic,
				"GBM models only support binary, category and number input features, "+
					"but input feature '%s' has type '%s'.",
				common.Name, common.Type)
		}
	}
	return nil
}
