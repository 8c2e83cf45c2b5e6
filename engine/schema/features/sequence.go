package features

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/decoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/lossfns"
)

// SequencePreprocessing configures tokenization for generic symbol sequences.
type SequencePreprocessing struct {
	MissingValueStrategy string `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode bfill ffill drop_row"`
	FillValue            string `json:"fill_value"             yaml:"fill_value"`
	ComputedFillValue    any    `json:"computed_fill_value"    yaml:"computed_fill_value"`
	Tokenizer            string `json:"tokenizer"              yaml:"tokenizer" validate:"required"`
	Lowercase            bool   `json:"lowercase"              yaml:"lowercase"`
	MostCommon           int    `json:"most_common"            yaml:"most_common"         validate:"gte=1"`
	MaxSequenceLength    int    `json:"max_sequence_length"    yaml:"max_sequence_length" validate:"gte=1"`
	UnknownSymbol        string `json:"unknown_symbol"         yaml:"unknown_symbol"`
	PaddingSymbol        string `json:"padding_symbol"         yaml:"padding_symbol"`
	Padding              string `json:"padding"                yaml:"padding" validate:"oneof=left right"`
}

func NewSequencePreprocessing() *SequencePreprocessing {
	return &SequencePreprocessing{
		MissingValueStrategy: "fill_with_const",
		FillValue:            "<UNK>",
		Tokenizer:            "space",
		MostCommon:           20000,
		MaxSequenceLength:    256,
		UnknownSymbol:        "<UNK>",
		PaddingSymbol:        "<PAD>",
		Padding:              "right",
	}
}

func NewSequenceOutputPreprocessing() *SequencePreprocessing {
	p := NewSequencePreprocessing()
	p.MissingValueStrategy = "drop_row"
	return p
}

func (p *SequencePreprocessing) FeatureType() string { return core.TypeSequence }

// SequenceInput configures a sequence input feature.
type SequenceInput struct {
	InputCommon
	Preprocessing *SequencePreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config        `json:"encoder"       yaml:"encoder"`
}

func NewSequenceInput() *SequenceInput {
	return &SequenceInput{
		InputCommon:   newInputCommon(core.TypeSequence),
		Preprocessing: NewSequencePreprocessing(),
		Encoder:       encoders.NewSequenceEmbed(),
	}
}

func (f *SequenceInput) Common() *InputCommon            { return &f.InputCommon }
func (f *SequenceInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *SequenceInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *SequenceInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *SequenceInput) SetPreprocessing(p Preprocessing) error {
	sp, ok := p.(*SequencePreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeSequence, p)
	}
	f.Preprocessing = sp
	return nil
}

// SequenceOutput configures a sequence output feature.
type SequenceOutput struct {
	OutputCommon
	Preprocessing *SequencePreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Decoder       decoders.Config        `json:"decoder"       yaml:"decoder"`
	Loss          lossfns.Config         `json:"loss"          yaml:"loss"`
}

func NewSequenceOutput() *SequenceOutput {
	return &SequenceOutput{
		OutputCommon:  newOutputCommon(core.TypeSequence, "loss"),
		Preprocessing: NewSequenceOutputPreprocessing(),
		Decoder:       decoders.NewGenerator(),
		Loss:          lossfns.NewSequenceSoftmaxCrossEntropy(),
	}
}

func (f *SequenceOutput) Common() *OutputCommon           { return &f.OutputCommon }
func (f *SequenceOutput) GetDecoder() decoders.Config     { return f.Decoder }
func (f *SequenceOutput) SetDecoder(d decoders.Config)    { f.Decoder = d }
func (f *SequenceOutput) GetLoss() lossfns.Config         { return f.Loss }
func (f *SequenceOutput) SetLoss(l lossfns.Config)        { f.Loss = l }
func (f *SequenceOutput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *SequenceOutput) SetPreprocessing(p Preprocessing) error {
	sp, ok := p.(*SequencePreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeSequence, p)
	}
	f.Preprocessing = sp
	return nil
}

// TimeseriesPreprocessing configures parsing of numeric series columns.
type TimeseriesPreprocessing struct {
	MissingValueStrategy  string  `json:"missing_value_strategy"   yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode bfill ffill drop_row"`
	FillValue             float64 `json:"fill_value"               yaml:"fill_value"`
	ComputedFillValue     any     `json:"computed_fill_value"      yaml:"computed_fill_value"`
	Tokenizer             string  `json:"tokenizer"                yaml:"tokenizer" validate:"required"`
	TimeseriesLengthLimit int     `json:"timeseries_length_limit"  yaml:"timeseries_length_limit" validate:"gte=1"`
	Padding               string  `json:"padding"                  yaml:"padding" validate:"oneof=left right"`
	PaddingValue          float64 `json:"padding_value"            yaml:"padding_value"`
}

func NewTimeseriesPreprocessing() *TimeseriesPreprocessing {
	return &TimeseriesPreprocessing{
		MissingValueStrategy:  "fill_with_const",
		Tokenizer:             "space",
		TimeseriesLengthLimit: 256,
		Padding:               "right",
	}
}

func (p *TimeseriesPreprocessing) FeatureType() string { return core.TypeTimeseries }

// TimeseriesInput configures a timeseries input feature.
type TimeseriesInput struct {
	InputCommon
	Preprocessing *TimeseriesPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config          `json:"encoder"       yaml:"encoder"`
}

func NewTimeseriesInput() *TimeseriesInput {
	return &TimeseriesInput{
		InputCommon:   newInputCommon(core.TypeTimeseries),
		Preprocessing: NewTimeseriesPreprocessing(),
		Encoder:       encoders.NewParallelCNN(),
	}
}

func (f *TimeseriesInput) Common() *InputCommon            { return &f.InputCommon }
func (f *TimeseriesInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *TimeseriesInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *TimeseriesInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *TimeseriesInput) SetPreprocessing(p Preprocessing) error {
	tp, ok := p.(*TimeseriesPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeTimeseries, p)
	}
	f.Preprocessing = tp
	return nil
}
