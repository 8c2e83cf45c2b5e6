package features

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/decoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/lossfns"
)

// NumberPreprocessing configures normalization and imputation for number
// columns.
type NumberPreprocessing struct {
	MissingValueStrategy string  `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode fill_with_mean bfill ffill drop_row"`
	FillValue            float64 `json:"fill_value"             yaml:"fill_value"`
	ComputedFillValue    any     `json:"computed_fill_value"    yaml:"computed_fill_value"`
	Normalization        *string `json:"normalization"          yaml:"normalization" validate:"omitempty,oneof=zscore minmax log1p"`
}

func NewNumberPreprocessing() *NumberPreprocessing {
	return &NumberPreprocessing{MissingValueStrategy: "fill_with_const"}
}

func NewNumberOutputPreprocessing() *NumberPreprocessing {
	return &NumberPreprocessing{MissingValueStrategy: "drop_row"}
}

func (p *NumberPreprocessing) FeatureType() string { return core.TypeNumber }

// NumberInput configures a number input feature.
type NumberInput struct {
	InputCommon
	Preprocessing *NumberPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config      `json:"encoder"       yaml:"encoder"`
}

func NewNumberInput() *NumberInput {
	return &NumberInput{
		InputCommon:   newInputCommon(core.TypeNumber),
		Preprocessing: NewNumberPreprocessing(),
		Encoder:       encoders.NewPassthrough(),
	}
}

func (f *NumberInput) Common() *InputCommon            { return &f.InputCommon }
func (f *NumberInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *NumberInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *NumberInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *NumberInput) SetPreprocessing(p Preprocessing) error {
	np, ok := p.(*NumberPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeNumber, p)
	}
	f.Preprocessing = np
	return nil
}

// NumberOutput configures a number output feature. Clip, when set, bounds
// predictions to [clip[0], clip[1]].
type NumberOutput struct {
	OutputCommon
	Clip          []float64            `json:"clip,omitempty" yaml:"clip,omitempty" validate:"omitempty,len=2"`
	Preprocessing *NumberPreprocessing `json:"preprocessing"  yaml:"preprocessing"`
	Decoder       decoders.Config      `json:"decoder"        yaml:"decoder"`
	Loss          lossfns.Config       `json:"loss"           yaml:"loss"`
}

func NewNumberOutput() *NumberOutput {
	return &NumberOutput{
		OutputCommon:  newOutputCommon(core.TypeNumber, "mean_squared_error"),
		Preprocessing: NewNumberOutputPreprocessing(),
		Decoder:       decoders.NewRegressor(),
		Loss:          lossfns.NewMeanSquaredError(),
	}
}

func (f *NumberOutput) Common() *OutputCommon           { return &f.OutputCommon }
func (f *NumberOutput) GetDecoder() decoders.Config     { return f.Decoder }
func (f *NumberOutput) SetDecoder(d decoders.Config)    { f.Decoder = d }
func (f *NumberOutput) GetLoss() lossfns.Config         { return f.Loss }
func (f *NumberOutput) SetLoss(l lossfns.Config)        { f.Loss = l }
func (f *NumberOutput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *NumberOutput) SetPreprocessing(p Preprocessing) error {
	np, ok := p.(*NumberPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeNumber, p)
	}
	f.Preprocessing = np
	return nil
}
