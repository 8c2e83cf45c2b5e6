package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/trainer"
)

func minimalConfig() map[string]any {
	return map[string]any{
		"input_features": []any{
			map[string]any{"name": "age", "type": "number"},
			map[string]any{"name": "city", "type": "category"},
		},
		"output_features": []any{
			map[string]any{"name": "label", "type": "binary"},
		},
	}
}

func TestFromDict(t *testing.T) {
	t.Run("Should resolve a minimal config with all defaults", func(t *testing.T) {
		c, err := FromDict(minimalConfig())
		require.NoError(t, err)
		assert.Equal(t, core.ModelECD, c.ModelType)
		assert.Equal(t, "concat", c.Combiner.CombinerType())
		assert.Equal(t, "trainer", c.Trainer.TrainerType())
		require.Len(t, c.InputFeatures, 2)
		require.Len(t, c.OutputFeatures, 1)
		for _, feature := range c.InputFeatures {
			common := feature.Common()
			assert.Equal(t, common.Name, common.Column)
			assert.NotEmpty(t, common.ProcColumn)
		}
		label := c.OutputFeatures[0].Common()
		assert.Equal(t, "label", label.Column)
		assert.NotEmpty(t, label.ProcColumn)
	})

	t.Run("Should fill default encoders per feature type", func(t *testing.T) {
		c, err := FromDict(minimalConfig())
		require.NoError(t, err)
		assert.Equal(t, "passthrough", c.InputFeatures[0].GetEncoder().EncoderType())
		assert.Equal(t, "dense", c.InputFeatures[1].GetEncoder().EncoderType())
		assert.Equal(t, "regressor", c.OutputFeatures[0].GetDecoder().DecoderType())
		assert.Equal(t, "binary_weighted_cross_entropy", c.OutputFeatures[0].GetLoss().LossType())
	})

	t.Run("Should reject features without a name", func(t *testing.T) {
		raw := minimalConfig()
		raw["input_features"] = []any{map[string]any{"type": "number"}}
		_, err := FromDict(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must have a name")
	})

	t.Run("Should reject unknown encoder types with alternatives", func(t *testing.T) {
		raw := minimalConfig()
		raw["input_features"] = []any{
			map[string]any{"name": "age", "type": "number",
				"encoder": map[string]any{"type": "resnet"}},
		}
		_, err := FromDict(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Encoder type 'resnet' for input feature 'age'")
		assert.Contains(t, err.Error(), "must be one of:")
	})
}

func TestRoundTrip(t *testing.T) {
	t.Run("Should reproduce an equivalent dict after re-resolution", func(t *testing.T) {
		c, err := FromDict(minimalConfig())
		require.NoError(t, err)
		first, err := c.ToDict()
		require.NoError(t, err)

		again, err := FromDict(first)
		require.NoError(t, err)
		second, err := again.ToDict()
		require.NoError(t, err)

		assert.Equal(t, core.Fingerprint(first), core.Fingerprint(second))
	})

	t.Run("Should keep proc_column stable across repeated resolutions", func(t *testing.T) {
		first, err := FromDict(minimalConfig())
		require.NoError(t, err)
		second, err := FromDict(minimalConfig())
		require.NoError(t, err)
		assert.Equal(t,
			first.InputFeatures[0].Common().ProcColumn,
			second.InputFeatures[0].Common().ProcColumn)
	})
}

func TestDefaultsLayering(t *testing.T) {
	t.Run("Should apply global per-type defaults to features without overrides", func(t *testing.T) {
		raw := minimalConfig()
		raw["defaults"] = map[string]any{
			"number": map[string]any{
				"preprocessing": map[string]any{"missing_value_strategy": "fill_with_mean"},
			},
		}
		c, err := FromDict(raw)
		require.NoError(t, err)
		dict, err := core.AsMap(c.InputFeatures[0].GetPreprocessing())
		require.NoError(t, err)
		assert.Equal(t, "fill_with_mean", dict["missing_value_strategy"])
	})

	t.Run("Should let per-feature overrides win over global defaults", func(t *testing.T) {
		raw := minimalConfig()
		raw["defaults"] = map[string]any{
			"number": map[string]any{
				"preprocessing": map[string]any{"missing_value_strategy": "fill_with_mean"},
			},
		}
		raw["input_features"] = []any{
			map[string]any{"name": "age", "type": "number",
				"preprocessing": map[string]any{"missing_value_strategy": "drop_row"}},
			map[string]any{"name": "city", "type": "category"},
		}
		c, err := FromDict(raw)
		require.NoError(t, err)
		dict, err := core.AsMap(c.InputFeatures[0].GetPreprocessing())
		require.NoError(t, err)
		assert.Equal(t, "drop_row", dict["missing_value_strategy"])
	})

	t.Run("Should not leak decoder defaults onto input features", func(t *testing.T) {
		raw := minimalConfig()
		raw["defaults"] = map[string]any{
			"binary": map[string]any{
				"encoder": map[string]any{"type": "dense", "output_size": 32},
			},
		}
		raw["input_features"] = []any{
			map[string]any{"name": "flag", "type": "binary"},
			map[string]any{"name": "city", "type": "category"},
		}
		c, err := FromDict(raw)
		require.NoError(t, err)
		// Input binary feature draws the encoder default.
		assert.Equal(t, "dense", c.InputFeatures[0].GetEncoder().EncoderType())
		// Output binary feature keeps its own decoder untouched by encoder defaults.
		assert.Equal(t, "regressor", c.OutputFeatures[0].GetDecoder().DecoderType())
	})

	t.Run("Should reject defaults blocks for unknown feature types", func(t *testing.T) {
		raw := minimalConfig()
		raw["defaults"] = map[string]any{"tensor": map[string]any{}}
		_, err := FromDict(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Feature type 'tensor'")
	})
}

func TestReplaceOnTypeChange(t *testing.T) {
	t.Run("Should drop the old encoder's fields when the type changes", func(t *testing.T) {
		raw := map[string]any{
			"input_features": []any{
				map[string]any{"name": "title", "type": "text",
					"encoder": map[string]any{"type": "passthrough"}},
			},
			"output_features": []any{
				map[string]any{"name": "label", "type": "binary"},
			},
		}
		c, err := FromDict(raw)
		require.NoError(t, err)
		assert.Equal(t, "passthrough", c.InputFeatures[0].GetEncoder().EncoderType())
		dict, err := core.AsMap(c.InputFeatures[0].GetEncoder())
		require.NoError(t, err)
		// The default text encoder is parallel_cnn; none of its fields survive.
		assert.NotContains(t, dict, "num_filters")
	})

	t.Run("Should merge fields when the type is unchanged", func(t *testing.T) {
		raw := minimalConfig()
		raw["combiner"] = map[string]any{"output_size": 512}
		c, err := FromDict(raw)
		require.NoError(t, err)
		dict, err := core.AsMap(c.Combiner)
		require.NoError(t, err)
		assert.Equal(t, "concat", dict["type"])
		assert.Equal(t, 512.0, dict["output_size"])
		// Untouched defaults survive the merge.
		assert.Equal(t, "relu", dict["activation"])
	})

	t.Run("Should replace the optimizer wholesale on type change", func(t *testing.T) {
		raw := minimalConfig()
		raw["trainer"] = map[string]any{
			"optimizer": map[string]any{"type": "sgd", "momentum": 0.9},
		}
		c, err := FromDict(raw)
		require.NoError(t, err)
		ecd := c.Trainer.(*trainer.ECDTrainer)
		assert.Equal(t, "sgd", ecd.Optimizer.OptimizerType())
		dict, err := core.AsMap(ecd.Optimizer)
		require.NoError(t, err)
		assert.Equal(t, 0.9, dict["momentum"])
		assert.NotContains(t, dict, "betas")
	})
}

func TestGBM(t *testing.T) {
	t.Run("Should force the lightgbm trainer and passthrough encoders", func(t *testing.T) {
		raw := minimalConfig()
		raw["model_type"] = "gbm"
		c, err := FromDict(raw)
		require.NoError(t, err)
		assert.Equal(t, "lightgbm_trainer", c.Trainer.TrainerType())
		assert.Nil(t, c.Combiner)
		for _, feature := range c.InputFeatures {
			assert.Equal(t, "passthrough", feature.GetEncoder().EncoderType())
		}
	})

	t.Run("Should reject a declared trainer type other than lightgbm_trainer", func(t *testing.T) {
		raw := minimalConfig()
		raw["model_type"] = "gbm"
		raw["trainer"] = map[string]any{"type": "trainer"}
		_, err := FromDict(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lightgbm_trainer")
	})

	t.Run("Should reject more than one output feature", func(t *testing.T) {
		raw := minimalConfig()
		raw["model_type"] = "gbm"
		raw["output_features"] = []any{
			map[string]any{"name": "label", "type": "binary"},
			map[string]any{"name": "score", "type": "number"},
		}
		_, err := FromDict(raw)
		require.Error(t, err)
	})

	t.Run("Should reject unsupported input feature types", func(t *testing.T) {
		raw := minimalConfig()
		raw["model_type"] = "gbm"
		raw["input_features"] = []any{
			map[string]any{"name": "picture", "type": "image"},
		}
		_, err := FromDict(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input feature 'picture' has type 'image'")
	})
}

func TestTiedFeatures(t *testing.T) {
	t.Run("Should reject a tied reference to a missing feature", func(t *testing.T) {
		raw := minimalConfig()
		raw["input_features"] = []any{
			map[string]any{"name": "a", "type": "number", "tied": "b"},
		}
		_, err := FromDict(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tied to 'b'")
	})

	t.Run("Should accept a tied reference to an existing feature", func(t *testing.T) {
		raw := minimalConfig()
		raw["input_features"] = []any{
			map[string]any{"name": "a", "type": "number", "tied": "b"},
			map[string]any{"name": "b", "type": "number"},
		}
		_, err := FromDict(raw)
		require.NoError(t, err)
	})
}

func TestTaggerReduceInput(t *testing.T) {
	t.Run("Should null reduce_input when the decoder is a tagger", func(t *testing.T) {
		raw := map[string]any{
			"input_features": []any{
				map[string]any{"name": "tokens", "type": "sequence"},
			},
			"output_features": []any{
				map[string]any{"name": "tags", "type": "sequence",
					"decoder": map[string]any{"type": "tagger"}},
			},
		}
		c, err := FromDict(raw)
		require.NoError(t, err)
		assert.Nil(t, c.OutputFeatures[0].Common().ReduceInput)
	})
}

func TestHyperoptReconciliation(t *testing.T) {
	t.Run("Should disable early stopping when a scheduler is present", func(t *testing.T) {
		raw := minimalConfig()
		raw["hyperopt"] = map[string]any{
			"executor": map[string]any{
				"scheduler": map[string]any{"type": "async_hyperband"},
			},
		}
		raw["trainer"] = map[string]any{"epochs": 5}
		c, err := FromDict(raw)
		require.NoError(t, err)
		assert.Equal(t, -1, c.Trainer.GetEarlyStop())
	})

	t.Run("Should set unbounded epochs for a time-budget scheduler", func(t *testing.T) {
		raw := minimalConfig()
		raw["hyperopt"] = map[string]any{
			"executor": map[string]any{
				"scheduler": map[string]any{"max_t": 10, "time_attr": "time_total_s"},
			},
		}
		raw["trainer"] = map[string]any{}
		c, err := FromDict(raw)
		require.NoError(t, err)
		ecd := c.Trainer.(*trainer.ECDTrainer)
		require.NotNil(t, ecd.Epochs)
		assert.Equal(t, unboundedEpochs, *ecd.Epochs)
		assert.Equal(t, -1, ecd.EarlyStop)
	})

	t.Run("Should adopt max_t as epochs for an iteration scheduler", func(t *testing.T) {
		raw := minimalConfig()
		raw["hyperopt"] = map[string]any{
			"executor": map[string]any{
				"scheduler": map[string]any{"max_t": 10, "time_attr": "training_iteration"},
			},
		}
		c, err := FromDict(raw)
		require.NoError(t, err)
		ecd := c.Trainer.(*trainer.ECDTrainer)
		require.NotNil(t, ecd.Epochs)
		assert.Equal(t, 10, *ecd.Epochs)
	})

	t.Run("Should reject conflicting epochs and max_t", func(t *testing.T) {
		raw := minimalConfig()
		raw["hyperopt"] = map[string]any{
			"executor": map[string]any{
				"scheduler": map[string]any{"max_t": 10, "time_attr": "training_iteration"},
			},
		}
		raw["trainer"] = map[string]any{"epochs": 20}
		_, err := FromDict(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_t")
	})

	t.Run("Should back-fill max_t from epochs when the scheduler has none", func(t *testing.T) {
		raw := minimalConfig()
		raw["hyperopt"] = map[string]any{
			"executor": map[string]any{
				"scheduler": map[string]any{"type": "async_hyperband"},
			},
		}
		raw["trainer"] = map[string]any{"epochs": 7}
		c, err := FromDict(raw)
		require.NoError(t, err)
		executor := c.Hyperopt["executor"].(map[string]any)
		scheduler := executor["scheduler"].(map[string]any)
		assert.Equal(t, 7, scheduler["max_t"])
	})

	t.Run("Should default the executor type to ray", func(t *testing.T) {
		raw := minimalConfig()
		raw["hyperopt"] = map[string]any{"parameters": map[string]any{}}
		c, err := FromDict(raw)
		require.NoError(t, err)
		executor := c.Hyperopt["executor"].(map[string]any)
		assert.Equal(t, "ray", executor["type"])
	})
}

func TestUpdateWithDict(t *testing.T) {
	t.Run("Should patch only the keys present in the delta", func(t *testing.T) {
		c, err := FromDict(minimalConfig())
		require.NoError(t, err)
		ecd := c.Trainer.(*trainer.ECDTrainer)
		originalBatchSize := ecd.BatchSize

		err = c.UpdateWithDict(map[string]any{
			"trainer": map[string]any{"learning_rate": 0.01},
		})
		require.NoError(t, err)
		assert.Equal(t, 0.01, ecd.LearningRate)
		assert.Equal(t, originalBatchSize, ecd.BatchSize)
	})

	t.Run("Should patch existing features without resetting their sections", func(t *testing.T) {
		raw := minimalConfig()
		raw["input_features"] = []any{
			map[string]any{"name": "age", "type": "number",
				"preprocessing": map[string]any{"missing_value_strategy": "fill_with_mean"}},
			map[string]any{"name": "city", "type": "category"},
		}
		c, err := FromDict(raw)
		require.NoError(t, err)

		err = c.UpdateWithDict(map[string]any{
			"input_features": []any{
				map[string]any{"name": "age", "type": "number",
					"encoder": map[string]any{"type": "dense"}},
			},
		})
		require.NoError(t, err)
		age := c.findInputFeature("age")
		assert.Equal(t, "dense", age.GetEncoder().EncoderType())
		dict, err := core.AsMap(age.GetPreprocessing())
		require.NoError(t, err)
		assert.Equal(t, "fill_with_mean", dict["missing_value_strategy"])
	})

	t.Run("Should default the type from the existing feature when omitted", func(t *testing.T) {
		c, err := FromDict(minimalConfig())
		require.NoError(t, err)
		err = c.UpdateWithDict(map[string]any{
			"input_features": []any{
				map[string]any{"name": "city",
					"encoder": map[string]any{"type": "sparse"}},
			},
		})
		require.NoError(t, err)
		city := c.findInputFeature("city")
		assert.Equal(t, "category", city.Common().Type)
		assert.Equal(t, "sparse", city.GetEncoder().EncoderType())
	})

	t.Run("Should still require a type for unknown feature names", func(t *testing.T) {
		c, err := FromDict(minimalConfig())
		require.NoError(t, err)
		err = c.UpdateWithDict(map[string]any{
			"input_features": []any{
				map[string]any{"name": "ghost"},
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must have a type")
	})

	t.Run("Should add unknown features as fresh fully-defaulted objects", func(t *testing.T) {
		c, err := FromDict(minimalConfig())
		require.NoError(t, err)
		err = c.UpdateWithDict(map[string]any{
			"input_features": []any{
				map[string]any{"name": "bio", "type": "text"},
			},
		})
		require.NoError(t, err)
		bio := c.findInputFeature("bio")
		require.NotNil(t, bio)
		assert.Equal(t, "parallel_cnn", bio.GetEncoder().EncoderType())
	})
}

func TestEnableDisable(t *testing.T) {
	t.Run("Should exclude disabled features from the projected dict", func(t *testing.T) {
		c, err := FromDict(minimalConfig())
		require.NoError(t, err)
		require.NoError(t, c.Disable("city"))

		dict, err := c.ToDict()
		require.NoError(t, err)
		inputs := dict["input_features"].([]any)
		require.Len(t, inputs, 1)
		assert.Equal(t, "age", inputs[0].(map[string]any)["name"])

		require.NoError(t, c.Enable("city"))
		dict, err = c.ToDict()
		require.NoError(t, err)
		assert.Len(t, dict["input_features"].([]any), 2)
	})

	t.Run("Should keep the resolved sections across a disable and re-enable", func(t *testing.T) {
		c, err := FromDict(minimalConfig())
		require.NoError(t, err)
		city := c.findInputFeature("city")
		encoderBefore := city.GetEncoder()
		require.NoError(t, c.Disable("city"))
		require.NoError(t, c.Enable("city"))
		assert.Same(t, encoderBefore, c.findInputFeature("city").GetEncoder())
	})

	t.Run("Should error for unknown feature names", func(t *testing.T) {
		c, err := FromDict(minimalConfig())
		require.NoError(t, err)
		require.Error(t, c.Disable("ghost"))
	})
}

func TestSequenceCombiner(t *testing.T) {
	t.Run("Should resolve the nested encoder through the sequence family", func(t *testing.T) {
		raw := map[string]any{
			"input_features": []any{
				map[string]any{"name": "tokens", "type": "sequence"},
			},
			"output_features": []any{
				map[string]any{"name": "label", "type": "binary"},
			},
			"combiner": map[string]any{
				"type":    "sequence",
				"encoder": map[string]any{"type": "transformer"},
			},
		}
		c, err := FromDict(raw)
		require.NoError(t, err)
		assert.Equal(t, "sequence", c.Combiner.CombinerType())
	})

	t.Run("Should reject non-sequence encoders in the sequence combiner", func(t *testing.T) {
		raw := map[string]any{
			"input_features": []any{
				map[string]any{"name": "tokens", "type": "sequence"},
			},
			"output_features": []any{
				map[string]any{"name": "label", "type": "binary"},
			},
			"combiner": map[string]any{
				"type":    "sequence",
				"encoder": map[string]any{"type": "resnet"},
			},
		}
		_, err := FromDict(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Encoder type 'resnet'")
	})
}
