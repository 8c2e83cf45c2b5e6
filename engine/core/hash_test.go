package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStableJSONBytes(t *testing.T) {
	t.Run("Should sort map keys recursively", func(t *testing.T) {
		value := map[string]any{
			"b": map[string]any{"z": 1.0, "a": 2.0},
			"a": []any{"x", "y"},
		}
		assert.Equal(t, `{"a":["x","y"],"b":{"a":2,"z":1}}`, string(StableJSONBytes(value)))
	})

	t.Run("Should produce identical bytes regardless of insertion order", func(t *testing.T) {
		first := map[string]any{"alpha": 1.0, "beta": true, "gamma": "x"}
		second := map[string]any{"gamma": "x", "beta": true, "alpha": 1.0}
		assert.Equal(t, StableJSONBytes(first), StableJSONBytes(second))
	})
}

func TestFeatureHash(t *testing.T) {
	t.Run("Should be deterministic for identical type and preprocessing", func(t *testing.T) {
		preprocessing := map[string]any{"missing_value_strategy": "fill_with_const", "fill_value": 0.0}
		first := FeatureHash(TypeNumber, preprocessing)
		second := FeatureHash(TypeNumber, map[string]any{"fill_value": 0.0, "missing_value_strategy": "fill_with_const"})
		assert.Equal(t, first, second)
	})

	t.Run("Should differ when the feature type differs", func(t *testing.T) {
		preprocessing := map[string]any{"missing_value_strategy": "fill_with_const"}
		assert.NotEqual(t, FeatureHash(TypeNumber, preprocessing), FeatureHash(TypeCategory, preprocessing))
	})

	t.Run("Should differ when any preprocessing parameter differs", func(t *testing.T) {
		first := FeatureHash(TypeText, map[string]any{"tokenizer": "space"})
		second := FeatureHash(TypeText, map[string]any{"tokenizer": "space_punct"})
		assert.NotEqual(t, first, second)
	})

	t.Run("Should not depend on the feature name", func(t *testing.T) {
		// The hash keys the dataset cache: two differently-named columns with
		// the same type and preprocessing share preprocessed artifacts.
		preprocessing := map[string]any{"missing_value_strategy": "fill_with_const"}
		assert.Equal(t,
			FeatureHash(TypeBinary, preprocessing),
			FeatureHash(TypeBinary, preprocessing))
	})

	t.Run("Should prefix the hash with the feature type", func(t *testing.T) {
		hash := FeatureHash(TypeBinary, nil)
		assert.Regexp(t, `^binary_[0-9a-f]{20}$`, hash)
	})
}
