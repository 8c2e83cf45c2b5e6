package decoders

// Config is implemented by every decoder schema. Same replace-on-type-change
// contract as encoders.Config.
type Config interface {
	DecoderType() string
}

// Regressor projects the combiner output to a single value, used by binary
// and number outputs.
type Regressor struct {
	Type         string `json:"type"          yaml:"type"          validate:"required,eq=regressor"`
	NumFCLayers  int    `json:"num_fc_layers" yaml:"num_fc_layers" validate:"gte=0"`
	FCOutputSize int    `json:"fc_output_size" yaml:"fc_output_size" validate:"gte=1"`
	UseBias      bool   `json:"use_bias"      yaml:"use_bias"`
}

func NewRegressor() *Regressor {
	return &Regressor{
		Type:         "regressor",
		FCOutputSize: 256,
		UseBias:      true,
	}
}

func (c *Regressor) DecoderType() string { return c.Type }

// Classifier projects the combiner output to class logits.
type Classifier struct {
	Type         string `json:"type"           yaml:"type"           validate:"required,eq=classifier"`
	NumFCLayers  int    `json:"num_fc_layers"  yaml:"num_fc_layers"  validate:"gte=0"`
	FCOutputSize int    `json:"fc_output_size" yaml:"fc_output_size" validate:"gte=1"`
	NumClasses   *int   `json:"num_classes"    yaml:"num_classes"    validate:"omitempty,gte=2"`
	UseBias      bool   `json:"use_bias"       yaml:"use_bias"`
}

func NewClassifier() *Classifier {
	return &Classifier{
		Type:         "classifier",
		FCOutputSize: 256,
		UseBias:      true,
	}
}

func (c *Classifier) DecoderType() string { return c.Type }

// Projector projects the combiner output to a fixed-size vector.
type Projector struct {
	Type        string  `json:"type"          yaml:"type"          validate:"required,eq=projector"`
	NumFCLayers int     `json:"num_fc_layers" yaml:"num_fc_layers" validate:"gte=0"`
	OutputSize  *int    `json:"output_size"   yaml:"output_size"   validate:"omitempty,gte=1"`
	Activation  *string `json:"activation"    yaml:"activation"    validate:"omitempty,oneof=relu sigmoid tanh leaky_relu elu"`
	UseBias     bool    `json:"use_bias"      yaml:"use_bias"`
}

func NewProjector() *Projector {
	return &Projector{
		Type:    "projector",
		UseBias: true,
	}
}

func (c *Projector) DecoderType() string { return c.Type }

// Generator decodes sequences autoregressively.
type Generator struct {
	Type              string `json:"type"                yaml:"type"                validate:"required,eq=generator"`
	CellType          string `json:"cell_type"           yaml:"cell_type"           validate:"oneof=rnn lstm gru"`
	NumLayers         int    `json:"num_layers"          yaml:"num_layers"          validate:"gte=1"`
	MaxSequenceLength *int   `json:"max_sequence_length" yaml:"max_sequence_length" validate:"omitempty,gte=1"`
	BeamWidth         int    `json:"beam_width"          yaml:"beam_width"          validate:"gte=1"`
}

func NewGenerator() *Generator {
	return &Generator{
		Type:      "generator",
		CellType:  "gru",
		NumLayers: 1,
		BeamWidth: 1,
	}
}

func (c *Generator) DecoderType() string { return c.Type }

// Tagger emits one prediction per timestep of the encoded sequence. Because
// it operates per-timestep, resolving a tagger decoder forces the owning
// output feature's reduce_input to null.
type Tagger struct {
	Type                   string `json:"type"                     yaml:"type"                     validate:"required,eq=tagger"`
	UseAttention           bool   `json:"use_attention"            yaml:"use_attention"`
	UseBias                bool   `json:"use_bias"                 yaml:"use_bias"`
	AttentionEmbeddingSize int    `json:"attention_embedding_size" yaml:"attention_embedding_size" validate:"gte=1"`
	AttentionNumHeads      int    `json:"attention_num_heads"      yaml:"attention_num_heads"      validate:"gte=1"`
}

func NewTagger() *Tagger {
	return &Tagger{
		Type:                   "tagger",
		UseBias:                true,
		AttentionEmbeddingSize: 256,
		AttentionNumHeads:      8,
	}
}

func (c *Tagger) DecoderType() string { return c.Type }
