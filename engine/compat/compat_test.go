package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgrade(t *testing.T) {
	t.Run("Should rename the training section to trainer", func(t *testing.T) {
		upgraded := Upgrade(map[string]any{
			"training": map[string]any{"learning_rate": 0.1},
		})
		assert.NotContains(t, upgraded, "training")
		trainer, ok := upgraded["trainer"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 0.1, trainer["learning_rate"])
	})

	t.Run("Should rename the numerical feature type to number", func(t *testing.T) {
		upgraded := Upgrade(map[string]any{
			"input_features": []any{
				map[string]any{"name": "age", "type": "numerical"},
			},
		})
		feature := upgraded["input_features"].([]any)[0].(map[string]any)
		assert.Equal(t, "number", feature["type"])
	})

	t.Run("Should expand scalar encoder shorthand into a typed section", func(t *testing.T) {
		upgraded := Upgrade(map[string]any{
			"input_features": []any{
				map[string]any{"name": "title", "type": "text", "encoder": "rnn"},
			},
		})
		feature := upgraded["input_features"].([]any)[0].(map[string]any)
		assert.Equal(t, map[string]any{"type": "rnn"}, feature["encoder"])
	})

	t.Run("Should migrate legacy missing value strategies", func(t *testing.T) {
		upgraded := Upgrade(map[string]any{
			"input_features": []any{
				map[string]any{
					"name": "age", "type": "number",
					"preprocessing": map[string]any{"missing_value_strategy": "backfill"},
				},
			},
		})
		feature := upgraded["input_features"].([]any)[0].(map[string]any)
		preprocessing := feature["preprocessing"].(map[string]any)
		assert.Equal(t, "bfill", preprocessing["missing_value_strategy"])
	})

	t.Run("Should migrate legacy split keys into a split section", func(t *testing.T) {
		upgraded := Upgrade(map[string]any{
			"preprocessing": map[string]any{
				"stratify":            "label",
				"split_probabilities": []any{0.8, 0.1, 0.1},
			},
		})
		preprocessing := upgraded["preprocessing"].(map[string]any)
		assert.NotContains(t, preprocessing, "stratify")
		assert.NotContains(t, preprocessing, "split_probabilities")
		splitSection, ok := preprocessing["split"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "stratify", splitSection["type"])
		assert.Equal(t, "label", splitSection["column"])
		assert.Equal(t, []any{0.8, 0.1, 0.1}, splitSection["probabilities"])
	})

	t.Run("Should fold the hyperopt sampler into the executor", func(t *testing.T) {
		upgraded := Upgrade(map[string]any{
			"hyperopt": map[string]any{
				"sampler":  map[string]any{"num_samples": 4.0, "search_alg": map[string]any{"type": "hyperopt"}},
				"executor": map[string]any{"type": "ray"},
			},
		})
		hyperopt := upgraded["hyperopt"].(map[string]any)
		assert.NotContains(t, hyperopt, "sampler")
		executor := hyperopt["executor"].(map[string]any)
		assert.Equal(t, 4.0, executor["num_samples"])
		assert.Equal(t, map[string]any{"type": "hyperopt"}, executor["search_alg"])
	})

	t.Run("Should rename hyperopt parameter references to the trainer section", func(t *testing.T) {
		upgraded := Upgrade(map[string]any{
			"hyperopt": map[string]any{
				"parameters": map[string]any{
					"training.learning_rate": map[string]any{"space": "loguniform"},
				},
			},
		})
		parameters := upgraded["hyperopt"].(map[string]any)["parameters"].(map[string]any)
		assert.NotContains(t, parameters, "training.learning_rate")
		assert.Contains(t, parameters, "trainer.learning_rate")
	})

	t.Run("Should rename fc_size to output_size at any depth", func(t *testing.T) {
		upgraded := Upgrade(map[string]any{
			"combiner": map[string]any{"type": "concat", "fc_size": 64.0},
		})
		combiner := upgraded["combiner"].(map[string]any)
		assert.NotContains(t, combiner, "fc_size")
		assert.Equal(t, 64.0, combiner["output_size"])
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		raw := map[string]any{
			"training": map[string]any{"learning_rate": 0.1},
			"input_features": []any{
				map[string]any{"name": "age", "type": "numerical", "encoder": "dense"},
			},
			"preprocessing": map[string]any{"force_split": true},
		}
		once := Upgrade(raw)
		twice := Upgrade(once)
		assert.Equal(t, once, twice)
	})

	t.Run("Should not mutate the input dict", func(t *testing.T) {
		raw := map[string]any{
			"training": map[string]any{"learning_rate": 0.1},
		}
		Upgrade(raw)
		assert.Contains(t, raw, "training")
		assert.NotContains(t, raw, "trainer")
	})

	t.Run("Should pass unknown legacy shapes through unchanged", func(t *testing.T) {
		raw := map[string]any{"input_features": "not-a-list"}
		upgraded := Upgrade(raw)
		assert.Equal(t, "not-a-list", upgraded["input_features"])
	})
}
