package encoders

// Config is implemented by every encoder schema. The Type discriminator
// selects which registered encoder a feature uses; all other fields are
// parameters of that encoder only. Changing Type replaces the whole object
// with a fresh instance so fields of the previous encoder never leak through.
type Config interface {
	EncoderType() string
}

// Passthrough forwards the raw feature value unchanged. It is also the
// encoder forced onto category and number inputs under the GBM model type.
type Passthrough struct {
	Type string `json:"type" yaml:"type" validate:"required,eq=passthrough"`
}

func NewPassthrough() *Passthrough {
	return &Passthrough{Type: "passthrough"}
}

func (c *Passthrough) EncoderType() string { return c.Type }

// BinaryPassthrough is the passthrough variant for binary inputs.
type BinaryPassthrough struct {
	Type string `json:"type" yaml:"type" validate:"required,eq=passthrough"`
}

func NewBinaryPassthrough() *BinaryPassthrough {
	return &BinaryPassthrough{Type: "passthrough"}
}

func (c *BinaryPassthrough) EncoderType() string { return c.Type }

// Dense is a stack of fully connected layers, used by number and vector
// inputs.
type Dense struct {
	Type       string  `json:"type"        yaml:"type"        validate:"required,eq=dense"`
	NumLayers  int     `json:"num_layers"  yaml:"num_layers"  validate:"gte=1"`
	OutputSize int     `json:"output_size" yaml:"output_size" validate:"gte=1"`
	UseBias    bool    `json:"use_bias"    yaml:"use_bias"`
	Activation string  `json:"activation"  yaml:"activation"  validate:"oneof=relu sigmoid tanh leaky_relu elu"`
	Dropout    float64 `json:"dropout"     yaml:"dropout"     validate:"gte=0,lte=1"`
	Norm       *string `json:"norm"        yaml:"norm"        validate:"omitempty,oneof=batch layer"`
}

func NewDense() *Dense {
	return &Dense{
		Type:       "dense",
		NumLayers:  1,
		OutputSize: 256,
		UseBias:    true,
		Activation: "relu",
	}
}

func (c *Dense) EncoderType() string { return c.Type }
