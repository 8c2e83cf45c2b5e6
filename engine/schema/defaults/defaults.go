package defaults

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/decoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/features"
	"github.com/ludwig-ai/ludwig-go/engine/schema/lossfns"
)

// TypeDefaults holds the global per-feature-type default sections. Input
// features draw preprocessing and encoder from it, output features draw
// decoder and loss.
type TypeDefaults struct {
	Preprocessing features.Preprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config        `json:"encoder"       yaml:"encoder"`
	Decoder       decoders.Config        `json:"decoder"       yaml:"decoder"`
	Loss          lossfns.Config         `json:"loss"          yaml:"loss"`
}

// Config is the defaults section of a model config: one block per feature
// type.
type Config struct {
	Audio      *TypeDefaults `json:"audio"      yaml:"audio"`
	Bag        *TypeDefaults `json:"bag"        yaml:"bag"`
	Binary     *TypeDefaults `json:"binary"     yaml:"binary"`
	Category   *TypeDefaults `json:"category"   yaml:"category"`
	Date       *TypeDefaults `json:"date"       yaml:"date"`
	H3         *TypeDefaults `json:"h3"         yaml:"h3"`
	Image      *TypeDefaults `json:"image"      yaml:"image"`
	Number     *TypeDefaults `json:"number"     yaml:"number"`
	Sequence   *TypeDefaults `json:"sequence"   yaml:"sequence"`
	Set        *TypeDefaults `json:"set"        yaml:"set"`
	Text       *TypeDefaults `json:"text"       yaml:"text"`
	Timeseries *TypeDefaults `json:"timeseries" yaml:"timeseries"`
	Vector     *TypeDefaults `json:"vector"     yaml:"vector"`
}

// NewConfig builds the baseline defaults for every feature type. Each block
// mirrors the constructors the per-type feature configs use, so a feature
// resolved purely from defaults matches a feature constructed directly.
func NewConfig() *Config {
	return &Config{
		Audio: &TypeDefaults{
			Preprocessing: features.NewAudioPreprocessing(),
			Encoder:       encoders.NewParallelCNN(),
		},
		Bag: &TypeDefaults{
			Preprocessing: features.NewBagPreprocessing(),
			Encoder:       encoders.NewBagEmbed(),
		},
		Binary: &TypeDefaults{
			Preprocessing: features.NewBinaryPreprocessing(),
			Encoder:       encoders.NewBinaryPassthrough(),
			Decoder:       decoders.NewRegressor(),
			Loss:          lossfns.NewBinaryWeightedCrossEntropy(),
		},
		Category: &TypeDefaults{
			Preprocessing: features.NewCategoryPreprocessing(),
			Encoder:       encoders.NewCategoricalEmbed(),
			Decoder:       decoders.NewClassifier(),
			Loss:          lossfns.NewSoftmaxCrossEntropy(),
		},
		Date: &TypeDefaults{
			Preprocessing: features.NewDatePreprocessing(),
			Encoder:       encoders.NewDateEmbed(),
		},
		H3: &TypeDefaults{
			Preprocessing: features.NewH3Preprocessing(),
			Encoder:       encoders.NewH3Embed(),
		},
		Image: &TypeDefaults{
			Preprocessing: features.NewImagePreprocessing(),
			Encoder:       encoders.NewImageStackedCNN(),
		},
		Number: &TypeDefaults{
			Preprocessing: features.NewNumberPreprocessing(),
			Encoder:       encoders.NewPassthrough(),
			Decoder:       decoders.NewRegressor(),
			Loss:          lossfns.NewMeanSquaredError(),
		},
		Sequence: &TypeDefaults{
			Preprocessing: features.NewSequencePreprocessing(),
			Encoder:       encoders.NewSequenceEmbed(),
			Decoder:       decoders.NewGenerator(),
			Loss:          lossfns.NewSequenceSoftmaxCrossEntropy(),
		},
		Set: &TypeDefaults{
			Preprocessing: features.NewSetPreprocessing(),
			Encoder:       encoders.NewSetEmbed(),
			Decoder:       decoders.NewClassifier(),
			Loss:          lossfns.NewSigmoidCrossEntropy(),
		},
		Text: &TypeDefaults{
			Preprocessing: features.NewTextPreprocessing(),
			Encoder:       encoders.NewParallelCNN(),
			Decoder:       decoders.NewGenerator(),
			Loss:          lossfns.NewSequenceSoftmaxCrossEntropy(),
		},
		Timeseries: &TypeDefaults{
			Preprocessing: features.NewTimeseriesPreprocessing(),
			Encoder:       encoders.NewParallelCNN(),
		},
		Vector: &TypeDefaults{
			Preprocessing: features.NewVectorPreprocessing(),
			Encoder:       encoders.NewDense(),
			Decoder:       decoders.NewProjector(),
			Loss:          lossfns.NewMeanSquaredError(),
		},
	}
}

// ForType returns the defaults block for a feature type, or nil when the type
// is unknown.
func (c *Config) ForType(featureType string) *TypeDefaults {
	switch featureType {
	case core.TypeAudio:
		return c.Audio
	case core.TypeBag:
		return c.Bag
	case core.TypeBinary:
		return c.Binary
	case core.TypeCategory:
		return c.Category
	case core.TypeDate:
		return c.Date
	case core.TypeH3:
		return c.H3
	case core.TypeImage:
		return c.Image
	case core.TypeNumber:
		return c.Number
	case core.TypeSequence:
		return c.Sequence
	case core.TypeSet:
		return c.Set
	case core.TypeText:
		return c.Text
	case core.TypeTimeseries:
		return c.Timeseries
	case core.TypeVector:
		return c.Vector
	}
	return nil
}
