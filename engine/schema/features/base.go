package features

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/decoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/lossfns"
)

// Preprocessing is implemented by every per-feature-type preprocessing
// schema. The resolved parameters feed the proc_column fingerprint, and the
// computed_fill_value slot carries fill values computed externally from data
// back into the config.
type Preprocessing interface {
	FeatureType() string
}

// InputCommon holds the fields shared by every input feature config.
type InputCommon struct {
	Active     bool    `json:"active"      yaml:"active"`
	Name       string  `json:"name"        yaml:"name"       validate:"required"`
	Type       string  `json:"type"        yaml:"type"       validate:"required"`
	Column     string  `json:"column"      yaml:"column"`
	ProcColumn string  `json:"proc_column" yaml:"proc_column"`
	Tied       *string `json:"tied"        yaml:"tied"`
}

// Enable includes the feature in the effective config. The feature stays in
// the object graph either way, so re-enabling does not re-resolve defaults.
func (c *InputCommon) Enable() { c.Active = true }

// Disable excludes the feature from the effective config.
func (c *InputCommon) Disable() { c.Active = false }

// OutputCommon holds the fields shared by every output feature config.
type OutputCommon struct {
	Active                  bool     `json:"active"                    yaml:"active"`
	Name                    string   `json:"name"                      yaml:"name" validate:"required"`
	Type                    string   `json:"type"                      yaml:"type" validate:"required"`
	Column                  string   `json:"column"                    yaml:"column"`
	ProcColumn              string   `json:"proc_column"               yaml:"proc_column"`
	ReduceInput             *string  `json:"reduce_input"              yaml:"reduce_input" validate:"omitempty,oneof=sum mean avg max concat last"`
	Dependencies            []string `json:"dependencies"              yaml:"dependencies"`
	ReduceDependencies      string   `json:"reduce_dependencies"       yaml:"reduce_dependencies" validate:"oneof=sum mean avg max concat last"`
	DefaultValidationMetric string   `json:"default_validation_metric" yaml:"default_validation_metric"`
}

func (c *OutputCommon) Enable()  { c.Active = true }
func (c *OutputCommon) Disable() { c.Active = false }

func newInputCommon(featureType string) InputCommon {
	return InputCommon{Active: true, Type: featureType}
}

func newOutputCommon(featureType, defaultMetric string) OutputCommon {
	reduce := "sum"
	return OutputCommon{
		Active:                  true,
		Type:                    featureType,
		ReduceInput:             &reduce,
		Dependencies:            []string{},
		ReduceDependencies:      "sum",
		DefaultValidationMetric: defaultMetric,
	}
}

// InputFeature is the typed per-feature config for one model input. Concrete
// implementations exist per feature type; the registry hands out fresh
// default-initialized instances.
type InputFeature interface {
	Common() *InputCommon
	GetEncoder() encoders.Config
	SetEncoder(encoders.Config)
	GetPreprocessing() Preprocessing
	SetPreprocessing(Preprocessing) error
}

// OutputFeature is the typed per-feature config for one model output.
type OutputFeature interface {
	Common() *OutputCommon
	GetDecoder() decoders.Config
	SetDecoder(decoders.Config)
	GetLoss() lossfns.Config
	SetLoss(lossfns.Config)
	GetPreprocessing() Preprocessing
	SetPreprocessing(Preprocessing) error
}

func preprocessingMismatch(featureType string, got Preprocessing) error {
	return core.NewErrorf(core.ErrCodeConversion,
		"preprocessing for feature type '%s' cannot be set from '%s' parameters",
		featureType, got.FeatureType())
}
