package features

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/decoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/lossfns"
)

// VectorPreprocessing configures parsing of fixed-size numeric vector columns.
type VectorPreprocessing struct {
	MissingValueStrategy string `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=fill_with_const fill_with_mode bfill ffill drop_row"`
	FillValue            string `json:"fill_value"             yaml:"fill_value"`
	ComputedFillValue    any    `json:"computed_fill_value"    yaml:"computed_fill_value"`
	VectorSize           *int   `json:"vector_size"            yaml:"vector_size" validate:"omitempty,gte=1"`
}

func NewVectorPreprocessing() *VectorPreprocessing {
	return &VectorPreprocessing{MissingValueStrategy: "fill_with_const"}
}

func NewVectorOutputPreprocessing() *VectorPreprocessing {
	return &VectorPreprocessing{MissingValueStrategy: "drop_row"}
}

func (p *VectorPreprocessing) FeatureType() string { return core.TypeVector }

// VectorInput configures a vector input feature.
type VectorInput struct {
	InputCommon
	Preprocessing *VectorPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config      `json:"encoder"       yaml:"encoder"`
}

func NewVectorInput() *VectorInput {
	return &VectorInput{
		InputCommon:   newInputCommon(core.TypeVector),
		Preprocessing: NewVectorPreprocessing(),
		Encoder:       encoders.NewDense(),
	}
}

func (f *VectorInput) Common() *InputCommon            { return &f.InputCommon }
func (f *VectorInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *VectorInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *VectorInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *VectorInput) SetPreprocessing(p Preprocessing) error {
	vp, ok := p.(*VectorPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeVector, p)
	}
	f.Preprocessing = vp
	return nil
}

// VectorOutput configures a vector output feature.
type VectorOutput struct {
	OutputCommon
	VectorSize    *int                 `json:"vector_size,omitempty" yaml:"vector_size,omitempty" validate:"omitempty,gte=1"`
	Preprocessing *VectorPreprocessing `json:"preprocessing"         yaml:"preprocessing"`
	Decoder       decoders.Config      `json:"decoder"               yaml:"decoder"`
	Loss          lossfns.Config       `json:"loss"                  yaml:"loss"`
}

func NewVectorOutput() *VectorOutput {
	return &VectorOutput{
		OutputCommon:  newOutputCommon(core.TypeVector, "mean_squared_error"),
		Preprocessing: NewVectorOutputPreprocessing(),
		Decoder:       decoders.NewProjector(),
		Loss:          lossfns.NewMeanSquaredError(),
	}
}

func (f *VectorOutput) Common() *OutputCommon           { return &f.OutputCommon }
func (f *VectorOutput) GetDecoder() decoders.Config     { return f.Decoder }
func (f *VectorOutput) SetDecoder(d decoders.Config)    { f.Decoder = d }
func (f *VectorOutput) GetLoss() lossfns.Config         { return f.Loss }
func (f *VectorOutput) SetLoss(l lossfns.Config)        { f.Loss = l }
func (f *VectorOutput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *VectorOutput) SetPreprocessing(p Preprocessing) error {
	vp, ok := p.(*VectorPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeVector, p)
	}
	f.Preprocessing = vp
	return nil
}
