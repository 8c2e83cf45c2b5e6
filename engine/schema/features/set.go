package features

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/decoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/lossfns"
)

// SetPreprocessing configures tokenization for set columns.
type SetPreprocessing struct {
	MissingValueStrategy string `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode bfill ffill drop_row"`
	FillValue            string `json:"fill_value"             yaml:"fill_value"`
	ComputedFillValue    any    `json:"computed_fill_value"    yaml:"computed_fill_value"`
	Tokenizer            string `json:"tokenizer"              yaml:"tokenizer" validate:"required"`
	Lowercase            bool   `json:"lowercase"              yaml:"lowercase"`
	MostCommon           int    `json:"most_common"            yaml:"most_common" validate:"gte=1"`
}

func NewSetPreprocessing() *SetPreprocessing {
	return &SetPreprocessing{
		MissingValueStrategy: "fill_with_const",
		Tokenizer:            "space",
		MostCommon:           10000,
	}
}

func NewSetOutputPreprocessing() *SetPreprocessing {
	p := NewSetPreprocessing()
	p.MissingValueStrategy = "drop_row"
	return p
}

func (p *SetPreprocessing) FeatureType() string { return core.TypeSet }

// SetInput configures a set input feature.
type SetInput struct {
	InputCommon
	Preprocessing *SetPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config   `json:"encoder"       yaml:"encoder"`
}

func NewSetInput() *SetInput {
	return &SetInput{
		InputCommon:   newInputCommon(core.TypeSet),
		Preprocessing: NewSetPreprocessing(),
		Encoder:       encoders.NewSetEmbed(),
	}
}

func (f *SetInput) Common() *InputCommon            { return &f.InputCommon }
func (f *SetInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *SetInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *SetInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *SetInput) SetPreprocessing(p Preprocessing) error {
	sp, ok := p.(*SetPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeSet, p)
	}
	f.Preprocessing = sp
	return nil
}

// SetOutput configures a set output feature. Threshold is the sigmoid cutoff
// for including an element in the predicted set.
type SetOutput struct {
	OutputCommon
	Threshold     float64           `json:"threshold"     yaml:"threshold" validate:"gte=0,lte=1"`
	Preprocessing *SetPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Decoder       decoders.Config   `json:"decoder"       yaml:"decoder"`
	Loss          lossfns.Config    `json:"loss"          yaml:"loss"`
}

func NewSetOutput() *SetOutput {
	return &SetOutput{
		OutputCommon:  newOutputCommon(core.TypeSet, "jaccard"),
		Threshold:     0.5,
		Preprocessing: NewSetOutputPreprocessing(),
		Decoder:       decoders.NewClassifier(),
		Loss:          lossfns.NewSigmoidCrossEntropy(),
	}
}

func (f *SetOutput) Common() *OutputCommon           { return &f.OutputCommon }
func (f *SetOutput) GetDecoder() decoders.Config     { return f.Decoder }
func (f *SetOutput) SetDecoder(d decoders.Config)    { f.Decoder = d }
func (f *SetOutput) GetLoss() lossfns.Config         { return f.Loss }
func (f *SetOutput) SetLoss(l lossfns.Config)        { f.Loss = l }
func (f *SetOutput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *SetOutput) SetPreprocessing(p Preprocessing) error {
	sp, ok := p.(*SetPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeSet, p)
	}
	f.Preprocessing = sp
	return nil
}

// BagPreprocessing configures tokenization for bag (multiset) columns.
type BagPreprocessing struct {
	MissingValueStrategy string `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode bfill ffill drop_row"`
	FillValue            string `json:"fill_value"             yaml:"fill_value"`
	ComputedFillValue    any    `json:"computed_fill_value"    yaml:"computed_fill_value"`
	Tokenizer            string `json:"tokenizer"              yaml:"tokenizer" validate:"required"`
	Lowercase            bool   `json:"lowercase"              yaml:"lowercase"`
	MostCommon           int    `json:"most_common"            yaml:"most_common" validate:"gte=1"`
}

func NewBagPreprocessing() *BagPreprocessing {
	return &BagPreprocessing{
		MissingValueStrategy: "fill_with_const",
		Tokenizer:            "space",
		MostCommon:           10000,
	}
}

func (p *BagPreprocessing) FeatureType() string { return core.TypeBag }

// BagInput configures a bag input feature.
type BagInput struct {
	InputCommon
	Preprocessing *BagPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config   `json:"encoder"       yaml:"encoder"`
}

func NewBagInput() *BagInput {
	return &BagInput{
		InputCommon:   newInputCommon(core.TypeBag),
		Preprocessing: NewBagPreprocessing(),
		Encoder:       encoders.NewBagEmbed(),
	}
}

func (f *BagInput) Common() *InputCommon            { return &f.InputCommon }
func (f *BagInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *BagInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *BagInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *BagInput) SetPreprocessing(p Preprocessing) error {
	bp, ok := p.(*BagPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeBag, p)
	}
	f.Preprocessing = bp
	return nil
}
