package features

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/decoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/lossfns"
)

// TextPreprocessing configures tokenization and vocabulary building for text
// columns.
type TextPreprocessing struct {
	MissingValueStrategy string `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode bfill ffill drop_row"`
	FillValue            string `json:"fill_value"             yaml:"fill_value"`
	ComputedFillValue    any    `json:"computed_fill_value"    yaml:"computed_fill_value"`
	Tokenizer            string `json:"tokenizer"              yaml:"tokenizer" validate:"required"`
	Lowercase            bool   `json:"lowercase"              yaml:"lowercase"`
	MostCommon           int    `json:"most_common"            yaml:"most_common"          validate:"gte=1"`
	MaxSequenceLength    int    `json:"max_sequence_length"    yaml:"max_sequence_length"  validate:"gte=1"`
	UnknownSymbol        string `json:"unknown_symbol"         yaml:"unknown_symbol"`
	PaddingSymbol        string `json:"padding_symbol"         yaml:"padding_symbol"`
	Padding              string `json:"padding"                yaml:"padding" validate:"oneof=left right"`
}

func NewTextPreprocessing() *TextPreprocessing {
	return &TextPreprocessing{
		MissingValueStrategy: "fill_with_const",
		FillValue:            "<UNK>",
		Tokenizer:            "space_punct",
		Lowercase:            true,
		MostCommon:           20000,
		MaxSequenceLength:    256,
		UnknownSymbol:        "<UNK>",
		PaddingSymbol:        "<PAD>",
		Padding:              "right",
	}
}

func NewTextOutputPreprocessing() *TextPreprocessing {
	p := NewTextPreprocessing()
	p.MissingValueStrategy = "drop_row"
	return p
}

func (p *TextPreprocessing) FeatureType() string { return core.TypeText }

// TextInput configures a text input feature.
type TextInput struct {
	InputCommon
	Preprocessing *TextPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config    `json:"encoder"       yaml:"encoder"`
}

func NewTextInput() *TextInput {
	return &TextInput{
		InputCommon:   newInputCommon(core.TypeText),
		Preprocessing: NewTextPreprocessing(),
		Encoder:       encoders.NewParallelCNN(),
	}
}

func (f *TextInput) Common() *InputCommon            { return &f.InputCommon }
func (f *TextInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *TextInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *TextInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *TextInput) SetPreprocessing(p Preprocessing) error {
	tp, ok := p.(*TextPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeText, p)
	}
	f.Preprocessing = tp
	return nil
}

// TextOutput configures a text output feature.
type TextOutput struct {
	OutputCommon
	Preprocessing *TextPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Decoder       decoders.Config    `json:"decoder"       yaml:"decoder"`
	Loss          lossfns.Config     `json:"loss"          yaml:"loss"`
}

func NewTextOutput() *TextOutput {
	return &TextOutput{
		OutputCommon:  newOutputCommon(core.TypeText, "loss"),
		Preprocessing: NewTextOutputPreprocessing(),
		Decoder:       decoders.NewGenerator(),
		Loss:          lossfns.NewSequenceSoftmaxCrossEntropy(),
	}
}

func (f *TextOutput) Common() *OutputCommon           { return &f.OutputCommon }
func (f *TextOutput) GetDecoder() decoders.Config     { return f.Decoder }
func (f *TextOutput) SetDecoder(d decoders.Config)    { f.Decoder = d }
func (f *TextOutput) GetLoss() lossfns.Config         { return f.Loss }
func (f *TextOutput) SetLoss(l lossfns.Config)        { f.Loss = l }
func (f *TextOutput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *TextOutput) SetPreprocessing(p Preprocessing) error {
	tp, ok := p.(*TextPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeText, p)
	}
	f.Preprocessing = tp
	return nil
}
