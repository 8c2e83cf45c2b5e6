package features

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/decoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/lossfns"
)

// CategoryPreprocessing configures vocabulary building for category columns.
type CategoryPreprocessing struct {
	MissingValueStrategy string `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode bfill ffill drop_row"`
	FillValue            string `json:"fill_value"             yaml:"fill_value"`
	ComputedFillValue    any    `json:"computed_fill_value"    yaml:"computed_fill_value"`
	Lowercase            bool   `json:"lowercase"              yaml:"lowercase"`
	MostCommon           int    `json:"most_common"            yaml:"most_common" validate:"gte=1"`
}

func NewCategoryPreprocessing() *CategoryPreprocessing {
	return &CategoryPreprocessing{
		MissingValueStrategy: "fill_with_const",
		FillValue:            "<UNK>",
		MostCommon:           10000,
	}
}

func NewCategoryOutputPreprocessing() *CategoryPreprocessing {
	return &CategoryPreprocessing{
		MissingValueStrategy: "drop_row",
		FillValue:            "<UNK>",
		MostCommon:           10000,
	}
}

func (p *CategoryPreprocessing) FeatureType() string { return core.TypeCategory }

// CategoryInput configures a category input feature.
type CategoryInput struct {
	InputCommon
	Preprocessing *CategoryPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config        `json:"encoder"       yaml:"encoder"`
}

func NewCategoryInput() *CategoryInput {
	return &CategoryInput{
		InputCommon:   newInputCommon(core.TypeCategory),
		Preprocessing: NewCategoryPreprocessing(),
		Encoder:       encoders.NewCategoricalEmbed(),
	}
}

func (f *CategoryInput) Common() *InputCommon            { return &f.InputCommon }
func (f *CategoryInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *CategoryInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *CategoryInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *CategoryInput) SetPreprocessing(p Preprocessing) error {
	cp, ok := p.(*CategoryPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeCategory, p)
	}
	f.Preprocessing = cp
	return nil
}

// CategoryOutput configures a category output feature.
type CategoryOutput struct {
	OutputCommon
	TopK          int                    `json:"top_k"         yaml:"top_k" validate:"gte=1"`
	Calibration   bool                   `json:"calibration"   yaml:"calibration"`
	Preprocessing *CategoryPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Decoder       decoders.Config        `json:"decoder"       yaml:"decoder"`
	Loss          lossfns.Config         `json:"loss"          yaml:"loss"`
}

func NewCategoryOutput() *CategoryOutput {
	return &CategoryOutput{
		OutputCommon:  newOutputCommon(core.TypeCategory, "accuracy"),
		TopK:          3,
		Preprocessing: NewCategoryOutputPreprocessing(),
		Decoder:       decoders.NewClassifier(),
		Loss:          lossfns.NewSoftmaxCrossEntropy(),
	}
}

func (f *CategoryOutput) Common() *OutputCommon           { return &f.OutputCommon }
func (f *CategoryOutput) GetDecoder() decoders.Config     { return f.Decoder }
func (f *CategoryOutput) SetDecoder(d decoders.Config)    { f.Decoder = d }
func (f *CategoryOutput) GetLoss() lossfns.Config         { return f.Loss }
func (f *CategoryOutput) SetLoss(l lossfns.Config)        { f.Loss = l }
func (f *CategoryOutput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *CategoryOutput) SetPreprocessing(p Preprocessing) error {
	cp, ok := p.(*CategoryPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeCategory, p)
	}
	f.Preprocessing = cp
	return nil
}
