package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnsupportedError(t *testing.T) {
	t.Run("Should enumerate valid alternatives in sorted order", func(t *testing.T) {
		err := NewUnsupportedError("decoder", "projector", "output feature 'label'",
			[]string{"regressor", "classifier"})
		assert.Equal(t,
			"Decoder type 'projector' for output feature 'label' must be one of: [classifier, regressor]",
			err.Error())
		assert.Equal(t, ErrCodeUnsupported, err.Code)
	})

	t.Run("Should omit the context clause when empty", func(t *testing.T) {
		err := NewUnsupportedError("optimizer", "lamb", "", []string{"adam", "sgd"})
		assert.Equal(t, "Optimizer type 'lamb' must be one of: [adam, sgd]", err.Error())
	})
}

func TestNewErrorf(t *testing.T) {
	t.Run("Should format the message and carry the code", func(t *testing.T) {
		err := NewErrorf(ErrCodeSemantic, "Feature '%s' must have a type.", "age")
		assert.Equal(t, "Feature 'age' must have a type.", err.Error())
		assert.Equal(t, ErrCodeSemantic, err.Code)
	})
}
