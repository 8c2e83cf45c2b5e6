package features

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
)

// DatePreprocessing configures parsing of date columns.
type DatePreprocessing struct {
	MissingValueStrategy string  `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode bfill ffill drop_row"`
	FillValue            string  `json:"fill_value"             yaml:"fill_value"`
	ComputedFillValue    any     `json:"computed_fill_value"    yaml:"computed_fill_value"`
	DatetimeFormat       *string `json:"datetime_format"        yaml:"datetime_format"`
}

func NewDatePreprocessing() *DatePreprocessing {
	return &DatePreprocessing{MissingValueStrategy: "fill_with_const"}
}

func (p *DatePreprocessing) FeatureType() string { return core.TypeDate }

// DateInput configures a date input feature.
type DateInput struct {
	InputCommon
	Preprocessing *DatePreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config    `json:"encoder"       yaml:"encoder"`
}

func NewDateInput() *DateInput {
	return &DateInput{
		InputCommon:   newInputCommon(core.TypeDate),
		Preprocessing: NewDatePreprocessing(),
		Encoder:       encoders.NewDateEmbed(),
	}
}

func (f *DateInput) Common() *InputCommon            { return &f.InputCommon }
func (f *DateInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *DateInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *DateInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *DateInput) SetPreprocessing(p Preprocessing) error {
	dp, ok := p.(*DatePreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeDate, p)
	}
	f.Preprocessing = dp
	return nil
}

// H3Preprocessing configures parsing of H3 geospatial index columns. The
// default fill value is the H3 index of resolution 0 cell 0.
type H3Preprocessing struct {
	MissingValueStrategy string `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode bfill ffill drop_row"`
	FillValue            int64  `json:"fill_value"             yaml:"fill_value"`
	ComputedFillValue    any    `json:"computed_fill_value"    yaml:"computed_fill_value"`
}

func NewH3Preprocessing() *H3Preprocessing {
	return &H3Preprocessing{
		MissingValueStrategy: "fill_with_const",
		FillValue:            576495936675512319,
	}
}

func (p *H3Preprocessing) FeatureType() string { return core.TypeH3 }

// H3Input configures an H3 geospatial input feature.
type H3Input struct {
	InputCommon
	Preprocessing *H3Preprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config  `json:"encoder"       yaml:"encoder"`
}

func NewH3Input() *H3Input {
	return &H3Input{
		InputCommon:   newInputCommon(core.TypeH3),
		Preprocessing: NewH3Preprocessing(),
		Encoder:       encoders.NewH3Embed(),
	}
}

func (f *H3Input) Common() *InputCommon            { return &f.InputCommon }
func (f *H3Input) GetEncoder() encoders.Config     { return f.Encoder }
func (f *H3Input) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *H3Input) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *H3Input) SetPreprocessing(p Preprocessing) error {
	hp, ok := p.(*H3Preprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeH3, p)
	}
	f.Preprocessing = hp
	return nil
}
