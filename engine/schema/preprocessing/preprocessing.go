package preprocessing

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/split"
)

// Config is the global preprocessing section: dataset-level sampling and the
// train/validation/test split strategy.
type Config struct {
	SampleRatio         float64      `json:"sample_ratio"          yaml:"sample_ratio" validate:"gt=0,lte=1"`
	OversampleMinority  *float64     `json:"oversample_minority"   yaml:"oversample_minority"  validate:"omitempty,gt=0"`
	UndersampleMajority *float64     `json:"undersample_majority"  yaml:"undersample_majority" validate:"omitempty,gt=0"`
	Split               split.Config `json:"split"                 yaml:"split"`
}

func NewConfig() *Config {
	return &Config{
		SampleRatio: 1.0,
		Split:       split.NewRandom(),
	}
}

// Validate checks sampling exclusivity and delegates split validation to the
// configured strategy.
func (c *Config) Validate(config map[string]any) error {
	if c.OversampleMinority != nil && c.UndersampleMajority != nil {
		return core.NewError(core.ErrCodeSemantic,
			"Cannot balance data if both oversampling an undersampling are specified in the config. "+
				"Must specify only one method.")
	}
	if c.Split != nil {
		return c.Split.Validate(config)
	}
	return nil
}
