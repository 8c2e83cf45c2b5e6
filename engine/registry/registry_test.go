package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwig-ai/ludwig-go/engine/core"
)

func TestRegistryLookups(t *testing.T) {
	reg := Default()

	t.Run("Should return fresh instances on every lookup", func(t *testing.T) {
		first, err := reg.Encoder(core.TypeText, "rnn", "")
		require.NoError(t, err)
		second, err := reg.Encoder(core.TypeText, "rnn", "")
		require.NoError(t, err)
		assert.NotSame(t, first, second)
	})

	t.Run("Should scope encoder families by feature type", func(t *testing.T) {
		_, err := reg.Encoder(core.TypeBinary, "rnn", "input feature 'flag'")
		require.Error(t, err)
		validationErr, ok := err.(*core.ConfigValidationError)
		require.True(t, ok)
		assert.Equal(t, core.ErrCodeUnsupported, validationErr.Code)
		assert.Contains(t, validationErr.Message, "Encoder type 'rnn' for input feature 'flag'")
		assert.Contains(t, validationErr.Message, "passthrough")
	})

	t.Run("Should enumerate alternatives for unknown decoders", func(t *testing.T) {
		_, err := reg.Decoder(core.TypeCategory, "generator", "output feature 'label'")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of: [classifier]")
	})

	t.Run("Should resolve trainers by model type", func(t *testing.T) {
		ecd, err := reg.Trainer(core.ModelECD)
		require.NoError(t, err)
		assert.Equal(t, "trainer", ecd.TrainerType())

		gbm, err := reg.Trainer(core.ModelGBM)
		require.NoError(t, err)
		assert.Equal(t, "lightgbm_trainer", gbm.TrainerType())
	})

	t.Run("Should reject unknown model types", func(t *testing.T) {
		_, err := reg.Trainer("linear")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Model type 'linear'")
	})

	t.Run("Should build output features only for output-capable types", func(t *testing.T) {
		_, err := reg.OutputFeature(core.TypeImage, "output feature 'picture'")
		require.Error(t, err)
		_, err = reg.OutputFeature(core.TypeBinary, "output feature 'label'")
		require.NoError(t, err)
	})
}

func TestRegistryMetrics(t *testing.T) {
	reg := Default()

	t.Run("Should expose default validation metrics per feature type", func(t *testing.T) {
		assert.Equal(t, "roc_auc", reg.DefaultMetric(core.TypeBinary))
		assert.Equal(t, "accuracy", reg.DefaultMetric(core.TypeCategory))
		assert.Equal(t, "loss", reg.DefaultMetric(core.CombinedField))
	})

	t.Run("Should report metric membership", func(t *testing.T) {
		assert.True(t, reg.HasMetric(core.TypeBinary, "roc_auc"))
		assert.False(t, reg.HasMetric(core.TypeBinary, "jaccard"))
		assert.True(t, reg.HasMetric(core.CombinedField, "loss"))
	})
}

func TestRegistryExtension(t *testing.T) {
	t.Run("Should allow registering custom components on a fabricated registry", func(t *testing.T) {
		reg := New()
		reg.RegisterSplitter("random", Default().splitters["random"])
		strategy, err := reg.Splitter("random")
		require.NoError(t, err)
		assert.Equal(t, "random", strategy.SplitType())

		_, err = reg.Splitter("fixed")
		require.Error(t, err)
	})
}
