package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ludwig-ai/ludwig-go/engine/core"
)

const fixtureYAML = `
model_type: ecd
input_features:
  - name: age
    type: number
  - name: bio
    type: text
    encoder:
      type: rnn
output_features:
  - name: label
    type: binary
trainer:
  learning_rate: 0.01
`

func TestFromYAML(t *testing.T) {
	t.Run("Should resolve a config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))

		c, err := FromYAML(path)
		require.NoError(t, err)
		assert.Equal(t, "rnn", c.InputFeatures[1].GetEncoder().EncoderType())
	})

	t.Run("Should resolve identically to the dict form of the same document", func(t *testing.T) {
		var raw map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(fixtureYAML), &raw))
		fromDict, err := FromDict(raw)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))
		fromFile, err := FromYAML(path)
		require.NoError(t, err)

		first, err := fromDict.ToDict()
		require.NoError(t, err)
		second, err := fromFile.ToDict()
		require.NoError(t, err)
		assert.Equal(t, core.Fingerprint(first), core.Fingerprint(second))
	})

	t.Run("Should fail with a structural error for missing files", func(t *testing.T) {
		_, err := FromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		validationErr, ok := err.(*core.ConfigValidationError)
		require.True(t, ok)
		assert.Equal(t, core.ErrCodeStructural, validationErr.Code)
	})
}
