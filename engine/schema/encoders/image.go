package encoders

// ImageStackedCNN is the default convolutional encoder for image inputs.
type ImageStackedCNN struct {
	Type          string  `json:"type"            yaml:"type"            validate:"required,eq=stacked_cnn"`
	NumConvLayers int     `json:"num_conv_layers" yaml:"num_conv_layers" validate:"gte=1"`
	NumFilters    int     `json:"num_filters"     yaml:"num_filters"     validate:"gte=1"`
	FilterSize    int     `json:"filter_size"     yaml:"filter_size"     validate:"gte=1"`
	NumFCLayers   int     `json:"num_fc_layers"   yaml:"num_fc_layers"   validate:"gte=0"`
	OutputSize    int     `json:"output_size"     yaml:"output_size"     validate:"gte=1"`
	Dropout       float64 `json:"dropout"         yaml:"dropout"         validate:"gte=0,lte=1"`
}

func NewImageStackedCNN() *ImageStackedCNN {
	return &ImageStackedCNN{
		Type:          "stacked_cnn",
		NumConvLayers: 2,
		NumFilters:    32,
		FilterSize:    3,
		NumFCLayers:   1,
		OutputSize:    128,
	}
}

func (c *ImageStackedCNN) EncoderType() string { return c.Type }

// ResNet is a residual network encoder for image inputs.
type ResNet struct {
	Type       string  `json:"type"        yaml:"type"        validate:"required,eq=resnet"`
	ResNetSize int     `json:"resnet_size" yaml:"resnet_size" validate:"oneof=8 14 18 34 50 101 152 200"`
	NumFilters int     `json:"num_filters" yaml:"num_filters" validate:"gte=1"`
	OutputSize int     `json:"output_size" yaml:"output_size" validate:"gte=1"`
	Dropout    float64 `json:"dropout"     yaml:"dropout"     validate:"gte=0,lte=1"`
}

func NewResNet() *ResNet {
	return &ResNet{
		Type:       "resnet",
		ResNetSize: 50,
		NumFilters: 16,
		OutputSize: 128,
	}
}

func (c *ResNet) EncoderType() string { return c.Type }

// ViT is a vision transformer encoder for image inputs.
type ViT struct {
	Type              string  `json:"type"               yaml:"type"               validate:"required,eq=vit"`
	UsePretrained     bool    `json:"use_pretrained"     yaml:"use_pretrained"`
	PretrainedModel   string  `json:"pretrained_model"   yaml:"pretrained_model"`
	Trainable         bool    `json:"trainable"          yaml:"trainable"`
	PatchSize         int     `json:"patch_size"         yaml:"patch_size"         validate:"gte=1"`
	NumHiddenLayers   int     `json:"num_hidden_layers"  yaml:"num_hidden_layers"  validate:"gte=1"`
	NumAttentionHeads int     `json:"num_attention_heads" yaml:"num_attention_heads" validate:"gte=1"`
	HiddenDropout     float64 `json:"hidden_dropout"     yaml:"hidden_dropout"     validate:"gte=0,lte=1"`
}

func NewViT() *ViT {
	return &ViT{
		Type:              "vit",
		UsePretrained:     true,
		PretrainedModel:   "google/vit-base-patch16-224",
		Trainable:         true,
		PatchSize:         16,
		NumHiddenLayers:   12,
		NumAttentionHeads: 12,
	}
}

func (c *ViT) EncoderType() string { return c.Type }
