package features

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/decoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/lossfns"
)

// BinaryPreprocessing configures how raw binary columns are prepared.
type BinaryPreprocessing struct {
	MissingValueStrategy string  `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode fill_with_false fill_with_true bfill ffill drop_row"`
	FillValue            any     `json:"fill_value"             yaml:"fill_value"`
	ComputedFillValue    any     `json:"computed_fill_value"    yaml:"computed_fill_value"`
	FallbackTrueLabel    *string `json:"fallback_true_label"    yaml:"fallback_true_label"`
}

func NewBinaryPreprocessing() *BinaryPreprocessing {
	return &BinaryPreprocessing{MissingValueStrategy: "fill_with_false"}
}

func NewBinaryOutputPreprocessing() *BinaryPreprocessing {
	return &BinaryPreprocessing{MissingValueStrategy: "drop_row"}
}

func (p *BinaryPreprocessing) FeatureType() string { return core.TypeBinary }

// BinaryInput configures a binary input feature.
type BinaryInput struct {
	InputCommon
	Preprocessing *BinaryPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config      `json:"encoder"       yaml:"encoder"`
}

func NewBinaryInput() *BinaryInput {
	return &BinaryInput{
		InputCommon:   newInputCommon(core.TypeBinary),
		Preprocessing: NewBinaryPreprocessing(),
		Encoder:       encoders.NewBinaryPassthrough(),
	}
}

func (f *BinaryInput) Common() *InputCommon            { return &f.InputCommon }
func (f *BinaryInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *BinaryInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *BinaryInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *BinaryInput) SetPreprocessing(p Preprocessing) error {
	bp, ok := p.(*BinaryPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeBinary, p)
	}
	f.Preprocessing = bp
	return nil
}

// BinaryOutput configures a binary output feature.
type BinaryOutput struct {
	OutputCommon
	Threshold     float64              `json:"threshold"     yaml:"threshold" validate:"gte=0,lte=1"`
	Calibration   bool                 `json:"calibration"   yaml:"calibration"`
	Preprocessing *BinaryPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Decoder       decoders.Config      `json:"decoder"       yaml:"decoder"`
	Loss          lossfns.Config       `json:"loss"          yaml:"loss"`
}

func NewBinaryOutput() *BinaryOutput {
	return &BinaryOutput{
		OutputCommon:  newOutputCommon(core.TypeBinary, "roc_auc"),
		Threshold:     0.5,
		Preprocessing: NewBinaryOutputPreprocessing(),
		Decoder:       decoders.NewRegressor(),
		Loss:          lossfns.NewBinaryWeightedCrossEntropy(),
	}
}

func (f *BinaryOutput) Common() *OutputCommon           { return &f.OutputCommon }
func (f *BinaryOutput) GetDecoder() decoders.Config     { return f.Decoder }
func (f *BinaryOutput) SetDecoder(d decoders.Config)    { f.Decoder = d }
func (f *BinaryOutput) GetLoss() lossfns.Config         { return f.Loss }
func (f *BinaryOutput) SetLoss(l lossfns.Config)        { f.Loss = l }
func (f *BinaryOutput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *BinaryOutput) SetPreprocessing(p Preprocessing) error {
	bp, ok := p.(*BinaryPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeBinary, p)
	}
	f.Preprocessing = bp
	return nil
}
