package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	t.Run("Should accept the default probabilities", func(t *testing.T) {
		require.NoError(t, NewRandom().Validate(nil))
	})

	t.Run("Should reject probabilities that do not sum to one", func(t *testing.T) {
		strategy := NewRandom()
		strategy.Probabilities = []float64{0.5, 0.5, 0.5}
		err := strategy.Validate(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "summing to 1")
	})

	t.Run("Should reject negative probabilities", func(t *testing.T) {
		strategy := NewRandom()
		strategy.Probabilities = []float64{1.2, -0.1, -0.1}
		require.Error(t, strategy.Validate(nil))
	})

	t.Run("Should require exactly three probabilities", func(t *testing.T) {
		strategy := NewRandom()
		strategy.Probabilities = []float64{0.8, 0.2}
		require.Error(t, strategy.Validate(nil))
	})
}

func TestFixed(t *testing.T) {
	t.Run("Should default to the split column", func(t *testing.T) {
		strategy := NewFixed()
		assert.Equal(t, "split", strategy.Column)
		require.NoError(t, strategy.Validate(nil))
	})

	t.Run("Should require a column", func(t *testing.T) {
		strategy := NewFixed()
		strategy.Column = ""
		require.Error(t, strategy.Validate(nil))
	})
}

func TestStratify(t *testing.T) {
	configWith := func(featureType string) map[string]any {
		return map[string]any{
			"output_features": []any{
				map[string]any{"name": "label", "type": featureType, "column": "label"},
			},
		}
	}

	t.Run("Should require a column", func(t *testing.T) {
		strategy := NewStratify()
		require.Error(t, strategy.Validate(configWith("binary")))
	})

	t.Run("Should accept binary and category stratify columns", func(t *testing.T) {
		strategy := NewStratify()
		strategy.Column = "label"
		require.NoError(t, strategy.Validate(configWith("binary")))
		require.NoError(t, strategy.Validate(configWith("category")))
	})

	t.Run("Should reject continuous stratify columns", func(t *testing.T) {
		strategy := NewStratify()
		strategy.Column = "label"
		err := strategy.Validate(configWith("number"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a binary or category feature")
	})

	t.Run("Should tolerate columns that only exist in the dataset", func(t *testing.T) {
		strategy := NewStratify()
		strategy.Column = "cohort"
		require.NoError(t, strategy.Validate(configWith("number")))
	})
}

func TestDateTimeAndHash(t *testing.T) {
	t.Run("Should require a column for datetime splits", func(t *testing.T) {
		strategy := NewDateTime()
		require.Error(t, strategy.Validate(nil))
		strategy.Column = "created_at"
		require.NoError(t, strategy.Validate(nil))
	})

	t.Run("Should require a column for hash splits", func(t *testing.T) {
		strategy := NewHash()
		require.Error(t, strategy.Validate(nil))
		strategy.Column = "user_id"
		require.NoError(t, strategy.Validate(nil))
	})
}
