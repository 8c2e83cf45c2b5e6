package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwig-ai/ludwig-go/engine/registry"
)

func validDict() map[string]any {
	return map[string]any{
		"model_type": "ecd",
		"input_features": []any{
			map[string]any{"name": "age", "type": "number"},
		},
		"output_features": []any{
			map[string]any{"name": "label", "type": "binary"},
		},
	}
}

func TestValidate(t *testing.T) {
	validator := New(registry.Default())

	t.Run("Should accept a minimal valid dict", func(t *testing.T) {
		require.NoError(t, validator.Validate(validDict()))
	})

	t.Run("Should fail structurally without output features", func(t *testing.T) {
		dict := validDict()
		delete(dict, "output_features")
		err := validator.Validate(dict)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "structural validation")
	})

	t.Run("Should stop at the first failing check", func(t *testing.T) {
		// Duplicate names and a dangling tied reference: only the uniqueness
		// error surfaces because checks run in order and fail fast.
		dict := validDict()
		dict["input_features"] = []any{
			map[string]any{"name": "age", "type": "number", "tied": "ghost"},
			map[string]any{"name": "age", "type": "number"},
		}
		err := validator.Validate(dict)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "appears more than once")
		assert.NotContains(t, err.Error(), "tied")
	})
}

func TestUniqueFeatureNames(t *testing.T) {
	t.Run("Should reject a name shared across input and output sections", func(t *testing.T) {
		dict := validDict()
		dict["output_features"] = []any{
			map[string]any{"name": "age", "type": "binary"},
		}
		err := checkUniqueFeatureNames(dict, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'age'")
	})
}

func TestTiedFeaturesCheck(t *testing.T) {
	t.Run("Should reject references to missing input features", func(t *testing.T) {
		dict := validDict()
		dict["input_features"] = []any{
			map[string]any{"name": "a", "type": "number", "tied": "b"},
		}
		err := checkTiedFeatures(dict, nil)
		require.Error(t, err)
		assert.Equal(t,
			"Input feature 'a' is tied to 'b', but no input feature with that name exists.",
			err.Error())
	})

	t.Run("Should not resolve ties against output feature names", func(t *testing.T) {
		dict := validDict()
		dict["input_features"] = []any{
			map[string]any{"name": "a", "type": "number", "tied": "label"},
		}
		require.Error(t, checkTiedFeatures(dict, nil))
	})
}

func TestCheckpointExclusivity(t *testing.T) {
	t.Run("Should reject both checkpoint cadences at once", func(t *testing.T) {
		dict := validDict()
		dict["trainer"] = map[string]any{
			"checkpoints_per_epoch": 2.0,
			"steps_per_checkpoint":  100.0,
		}
		require.Error(t, checkCheckpointExclusivity(dict, nil))
	})

	t.Run("Should accept either cadence alone", func(t *testing.T) {
		dict := validDict()
		dict["trainer"] = map[string]any{"steps_per_checkpoint": 100.0}
		require.NoError(t, checkCheckpointExclusivity(dict, nil))
	})
}

func TestGBMChecks(t *testing.T) {
	t.Run("Should reject the horovod backend for gbm models", func(t *testing.T) {
		dict := validDict()
		dict["model_type"] = "gbm"
		dict["backend"] = map[string]any{"type": "horovod"}
		err := checkGBMHorovod(dict, nil)
		require.Error(t, err)
		assert.Equal(t, "The Horovod backend does not support GBM models.", err.Error())
	})

	t.Run("Should ignore the backend for ecd models", func(t *testing.T) {
		dict := validDict()
		dict["backend"] = map[string]any{"type": "horovod"}
		require.NoError(t, checkGBMHorovod(dict, nil))
	})

	t.Run("Should reject multiple gbm outputs", func(t *testing.T) {
		dict := validDict()
		dict["model_type"] = "gbm"
		dict["output_features"] = []any{
			map[string]any{"name": "label", "type": "binary"},
			map[string]any{"name": "score", "type": "number"},
		}
		require.Error(t, checkGBMSingleOutput(dict, nil))
	})

	t.Run("Should reject non-tabular gbm inputs", func(t *testing.T) {
		dict := validDict()
		dict["model_type"] = "gbm"
		dict["input_features"] = []any{
			map[string]any{"name": "bio", "type": "text"},
		}
		err := checkGBMFeatureTypes(dict, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input feature 'bio' has type 'text'")
	})
}

func TestRayInMemory(t *testing.T) {
	t.Run("Should reject lazy image loading on the ray backend", func(t *testing.T) {
		dict := validDict()
		dict["backend"] = map[string]any{"type": "ray"}
		dict["input_features"] = []any{
			map[string]any{"name": "picture", "type": "image",
				"preprocessing": map[string]any{"in_memory": false}},
		}
		err := checkRayInMemoryPreprocessing(dict, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input feature 'picture'")
	})

	t.Run("Should check every feature, not just the first", func(t *testing.T) {
		dict := validDict()
		dict["backend"] = map[string]any{"type": "ray"}
		dict["input_features"] = []any{
			map[string]any{"name": "age", "type": "number"},
			map[string]any{"name": "clip", "type": "audio",
				"preprocessing": map[string]any{"in_memory": false}},
		}
		require.Error(t, checkRayInMemoryPreprocessing(dict, nil))
	})

	t.Run("Should ignore other backends", func(t *testing.T) {
		dict := validDict()
		dict["input_features"] = []any{
			map[string]any{"name": "picture", "type": "image",
				"preprocessing": map[string]any{"in_memory": false}},
		}
		require.NoError(t, checkRayInMemoryPreprocessing(dict, nil))
	})
}

func TestSequenceCombinerInputs(t *testing.T) {
	t.Run("Should require a sequential input feature", func(t *testing.T) {
		dict := validDict()
		dict["combiner"] = map[string]any{"type": "sequence_concat"}
		err := checkSequenceCombinerInputs(dict, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sequence_concat combiner requires")
	})

	t.Run("Should accept set inputs as sequential", func(t *testing.T) {
		dict := validDict()
		dict["combiner"] = map[string]any{"type": "sequence_concat"}
		dict["input_features"] = []any{
			map[string]any{"name": "tags", "type": "set"},
		}
		require.NoError(t, checkSequenceCombinerInputs(dict, nil))
	})

	t.Run("Should not count timeseries inputs as sequential", func(t *testing.T) {
		dict := validDict()
		dict["combiner"] = map[string]any{"type": "sequence_concat"}
		dict["input_features"] = []any{
			map[string]any{"name": "readings", "type": "timeseries"},
		}
		require.Error(t, checkSequenceCombinerInputs(dict, nil))
	})

	t.Run("Should not constrain the sequence combiner", func(t *testing.T) {
		dict := validDict()
		dict["combiner"] = map[string]any{"type": "sequence"}
		require.NoError(t, checkSequenceCombinerInputs(dict, nil))
	})
}

func TestComparatorEntities(t *testing.T) {
	t.Run("Should reject entity members that are not input features", func(t *testing.T) {
		dict := validDict()
		dict["combiner"] = map[string]any{
			"type":     "comparator",
			"entity_1": []any{"age"},
			"entity_2": []any{"ghost"},
		}
		err := checkComparatorEntities(dict, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entity_2 references 'ghost'")
	})
}

func TestClassBalancing(t *testing.T) {
	t.Run("Should reject balancing with a non-binary output", func(t *testing.T) {
		dict := validDict()
		dict["preprocessing"] = map[string]any{"oversample_minority": 0.5}
		dict["output_features"] = []any{
			map[string]any{"name": "score", "type": "number"},
		}
		require.Error(t, checkClassBalancing(dict, nil))
	})

	t.Run("Should accept balancing with a single binary output", func(t *testing.T) {
		dict := validDict()
		dict["preprocessing"] = map[string]any{"oversample_minority": 0.5}
		require.NoError(t, checkClassBalancing(dict, nil))
	})

	t.Run("Should reject oversampling and undersampling together", func(t *testing.T) {
		dict := validDict()
		dict["preprocessing"] = map[string]any{
			"oversample_minority":  0.5,
			"undersample_majority": 0.5,
		}
		err := checkSamplingExclusivity(dict, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only one method")
	})
}

func TestValidationMetric(t *testing.T) {
	reg := registry.Default()

	t.Run("Should reject a field that is neither combined nor an output", func(t *testing.T) {
		dict := validDict()
		dict["trainer"] = map[string]any{"validation_field": "age"}
		err := checkValidationMetric(dict, reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'age'")
	})

	t.Run("Should reject metrics not computed for the field's type", func(t *testing.T) {
		dict := validDict()
		dict["trainer"] = map[string]any{
			"validation_field":  "label",
			"validation_metric": "jaccard",
		}
		err := checkValidationMetric(dict, reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Valid metrics are:")
	})

	t.Run("Should accept combined loss", func(t *testing.T) {
		dict := validDict()
		dict["trainer"] = map[string]any{
			"validation_field":  "combined",
			"validation_metric": "loss",
		}
		require.NoError(t, checkValidationMetric(dict, reg))
	})

	t.Run("Should accept a type-specific metric on an output field", func(t *testing.T) {
		dict := validDict()
		dict["trainer"] = map[string]any{
			"validation_field":  "label",
			"validation_metric": "roc_auc",
		}
		require.NoError(t, checkValidationMetric(dict, reg))
	})
}

func TestSplitCheck(t *testing.T) {
	reg := registry.Default()

	t.Run("Should reject a stratify column of the wrong type", func(t *testing.T) {
		dict := validDict()
		dict["input_features"] = []any{
			map[string]any{"name": "age", "type": "number", "column": "age"},
		}
		dict["preprocessing"] = map[string]any{
			"split": map[string]any{"type": "stratify", "column": "age"},
		}
		err := checkSplit(dict, reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "binary or category")
	})

	t.Run("Should reject unknown split strategies", func(t *testing.T) {
		dict := validDict()
		dict["preprocessing"] = map[string]any{
			"split": map[string]any{"type": "leave_one_out"},
		}
		require.Error(t, checkSplit(dict, reg))
	})

	t.Run("Should skip when no split section is present", func(t *testing.T) {
		require.NoError(t, checkSplit(validDict(), reg))
	})
}
