package features

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
)

// ImagePreprocessing configures resizing and loading of image columns.
type ImagePreprocessing struct {
	MissingValueStrategy string `json:"missing_value_strategy" yaml:"missing_value_strategy" validate:"oneof=bfill ffill drop_row"`
	Height               *int   `json:"height"                 yaml:"height"       validate:"omitempty,gte=1"`
	Width                *int   `json:"width"                  yaml:"width"        validate:"omitempty,gte=1"`
	NumChannels          *int   `json:"num_channels"           yaml:"num_channels" validate:"omitempty,gte=1"`
	ResizeMethod         string `json:"resize_method"          yaml:"resize_method" validate:"oneof=crop_or_pad interpolate"`
	InMemory             bool   `json:"in_memory"              yaml:"in_memory"`
	NumProcesses         int    `json:"num_processes"          yaml:"num_processes" validate:"gte=1"`
}

func NewImagePreprocessing() *ImagePreprocessing {
	return &ImagePreprocessing{
		MissingValueStrategy: "bfill",
		ResizeMethod:         "interpolate",
		InMemory:             true,
		NumProcesses:         1,
	}
}

func (p *ImagePreprocessing) FeatureType() string { return core.TypeImage }

// ImageInput configures an image input feature.
type ImageInput struct {
	InputCommon
	Preprocessing *ImagePreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config     `json:"encoder"       yaml:"encoder"`
}

func NewImageInput() *ImageInput {
	return &ImageInput{
		InputCommon:   newInputCommon(core.TypeImage),
		Preprocessing: NewImagePreprocessing(),
		Encoder:       encoders.NewImageStackedCNN(),
	}
}

func (f *ImageInput) Common() *InputCommon            { return &f.InputCommon }
func (f *ImageInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *ImageInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *ImageInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *ImageInput) SetPreprocessing(p Preprocessing) error {
	ip, ok := p.(*ImagePreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeImage, p)
	}
	f.Preprocessing = ip
	return nil
}

// AudioPreprocessing configures loading and windowing of audio columns.
type AudioPreprocessing struct {
	MissingValueStrategy    string  `json:"missing_value_strategy"      yaml:"missing_value_strategy" validate:"oneof=bfill ffill drop_row"`
	AudioFileLengthLimitInS float64 `json:"audio_file_length_limit_in_s" yaml:"audio_file_length_limit_in_s" validate:"gt=0"`
	InMemory                bool    `json:"in_memory"                   yaml:"in_memory"`
	Norm                    *string `json:"norm"                        yaml:"norm" validate:"omitempty,oneof=per_file global"`
	WindowLengthInS         float64 `json:"window_length_in_s"          yaml:"window_length_in_s" validate:"gt=0"`
	WindowShiftInS          float64 `json:"window_shift_in_s"           yaml:"window_shift_in_s"  validate:"gt=0"`
}

func NewAudioPreprocessing() *AudioPreprocessing {
	return &AudioPreprocessing{
		MissingValueStrategy:    "bfill",
		AudioFileLengthLimitInS: 7.5,
		InMemory:                true,
		WindowLengthInS:         0.04,
		WindowShiftInS:          0.02,
	}
}

func (p *AudioPreprocessing) FeatureType() string { return core.TypeAudio }

// AudioInput configures an audio input feature.
type AudioInput struct {
	InputCommon
	Preprocessing *AudioPreprocessing `json:"preprocessing" yaml:"preprocessing"`
	Encoder       encoders.Config     `json:"encoder"       yaml:"encoder"`
}

func NewAudioInput() *AudioInput {
	return &AudioInput{
		InputCommon:   newInputCommon(core.TypeAudio),
		Preprocessing: NewAudioPreprocessing(),
		Encoder:       encoders.NewParallelCNN(),
	}
}

func (f *AudioInput) Common() *InputCommon            { return &f.InputCommon }
func (f *AudioInput) GetEncoder() encoders.Config     { return f.Encoder }
func (f *AudioInput) SetEncoder(e encoders.Config)    { f.Encoder = e }
func (f *AudioInput) GetPreprocessing() Preprocessing { return f.Preprocessing }
func (f *AudioInput) SetPreprocessing(p Preprocessing) error {
	ap, ok := p.(*AudioPreprocessing)
	if !ok {
		return preprocessingMismatch(core.TypeAudio, p)
	}
	f.Preprocessing = ap
	return nil
}
