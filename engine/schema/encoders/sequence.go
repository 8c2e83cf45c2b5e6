package encoders

// Sequence encoders are shared by text, sequence, timeseries and audio
// features, and by the sequence combiner (which resolves them through the
// sequence encoder family).

// SequencePassthrough forwards the token sequence unchanged.
type SequencePassthrough struct {
	Type         string  `json:"type"          yaml:"type" validate:"required,eq=passthrough"`
	ReduceOutput *string `json:"reduce_output" yaml:"reduce_output" validate:"omitempty,oneof=sum mean avg max concat last"`
}

func NewSequencePassthrough() *SequencePassthrough {
	return &SequencePassthrough{Type: "passthrough"}
}

func (c *SequencePassthrough) EncoderType() string { return c.Type }

// SequenceEmbed aggregates token embeddings without convolution.
type SequenceEmbed struct {
	Type                string  `json:"type"                 yaml:"type"                 validate:"required,eq=embed"`
	Representation      string  `json:"representation"       yaml:"representation"       validate:"oneof=dense sparse"`
	EmbeddingSize       int     `json:"embedding_size"       yaml:"embedding_size"       validate:"gte=1"`
	EmbeddingsTrainable bool    `json:"embeddings_trainable" yaml:"embeddings_trainable"`
	Dropout             float64 `json:"dropout"              yaml:"dropout"              validate:"gte=0,lte=1"`
	ReduceOutput        *string `json:"reduce_output"        yaml:"reduce_output"        validate:"omitempty,oneof=sum mean avg max concat last"`
}

func NewSequenceEmbed() *SequenceEmbed {
	reduce := "sum"
	return &SequenceEmbed{
		Type:                "embed",
		Representation:      "dense",
		EmbeddingSize:       256,
		EmbeddingsTrainable: true,
		ReduceOutput:        &reduce,
	}
}

func (c *SequenceEmbed) EncoderType() string { return c.Type }

// ParallelCNN runs parallel convolutional layers with different filter sizes.
type ParallelCNN struct {
	Type                string  `json:"type"                 yaml:"type"                 validate:"required,eq=parallel_cnn"`
	EmbeddingSize       int     `json:"embedding_size"       yaml:"embedding_size"       validate:"gte=1"`
	EmbeddingsTrainable bool    `json:"embeddings_trainable" yaml:"embeddings_trainable"`
	NumFilters          int     `json:"num_filters"          yaml:"num_filters"          validate:"gte=1"`
	FilterSize          int     `json:"filter_size"          yaml:"filter_size"          validate:"gte=1"`
	PoolFunction        string  `json:"pool_function"        yaml:"pool_function"        validate:"oneof=max sum mean avg"`
	NumFCLayers         int     `json:"num_fc_layers"        yaml:"num_fc_layers"        validate:"gte=0"`
	OutputSize          int     `json:"output_size"          yaml:"output_size"          validate:"gte=1"`
	Activation          string  `json:"activation"           yaml:"activation"           validate:"oneof=relu sigmoid tanh leaky_relu elu"`
	Dropout             float64 `json:"dropout"              yaml:"dropout"              validate:"gte=0,lte=1"`
	ReduceOutput        *string `json:"reduce_output"        yaml:"reduce_output"        validate:"omitempty,oneof=sum mean avg max concat last"`
}

func NewParallelCNN() *ParallelCNN {
	reduce := "sum"
	return &ParallelCNN{
		Type:                "parallel_cnn",
		EmbeddingSize:       256,
		EmbeddingsTrainable: true,
		NumFilters:          256,
		FilterSize:          3,
		PoolFunction:        "max",
		OutputSize:          256,
		Activation:          "relu",
		ReduceOutput:        &reduce,
	}
}

func (c *ParallelCNN) EncoderType() string { return c.Type }

// StackedCNN stacks convolutional layers sequentially.
type StackedCNN struct {
	Type          string  `json:"type"           yaml:"type"           validate:"required,eq=stacked_cnn"`
	EmbeddingSize int     `json:"embedding_size" yaml:"embedding_size" validate:"gte=1"`
	NumConvLayers int     `json:"num_conv_layers" yaml:"num_conv_layers" validate:"gte=1"`
	NumFilters    int     `json:"num_filters"    yaml:"num_filters"    validate:"gte=1"`
	FilterSize    int     `json:"filter_size"    yaml:"filter_size"    validate:"gte=1"`
	Strides       int     `json:"strides"        yaml:"strides"        validate:"gte=1"`
	OutputSize    int     `json:"output_size"    yaml:"output_size"    validate:"gte=1"`
	Dropout       float64 `json:"dropout"        yaml:"dropout"        validate:"gte=0,lte=1"`
	ReduceOutput  *string `json:"reduce_output"  yaml:"reduce_output"  validate:"omitempty,oneof=sum mean avg max concat last"`
}

func NewStackedCNN() *StackedCNN {
	reduce := "max"
	return &StackedCNN{
		Type:          "stacked_cnn",
		EmbeddingSize: 256,
		NumConvLayers: 6,
		NumFilters:    256,
		FilterSize:    3,
		Strides:       1,
		OutputSize:    256,
		ReduceOutput:  &reduce,
	}
}

func (c *StackedCNN) EncoderType() string { return c.Type }

// RNN encodes a sequence with a recurrent stack.
type RNN struct {
	Type             string  `json:"type"              yaml:"type"              validate:"required,eq=rnn"`
	EmbeddingSize    int     `json:"embedding_size"    yaml:"embedding_size"    validate:"gte=1"`
	CellType         string  `json:"cell_type"         yaml:"cell_type"         validate:"oneof=rnn lstm gru"`
	StateSize        int     `json:"state_size"        yaml:"state_size"        validate:"gte=1"`
	NumLayers        int     `json:"num_layers"        yaml:"num_layers"        validate:"gte=1"`
	Bidirectional    bool    `json:"bidirectional"     yaml:"bidirectional"`
	Dropout          float64 `json:"dropout"           yaml:"dropout"           validate:"gte=0,lte=1"`
	RecurrentDropout float64 `json:"recurrent_dropout" yaml:"recurrent_dropout" validate:"gte=0,lte=1"`
	ReduceOutput     *string `json:"reduce_output"     yaml:"reduce_output"     validate:"omitempty,oneof=sum mean avg max concat last"`
}

func NewRNN() *RNN {
	return &RNN{
		Type:          "rnn",
		EmbeddingSize: 256,
		CellType:      "rnn",
		StateSize:     256,
		NumLayers:     1,
	}
}

func (c *RNN) EncoderType() string { return c.Type }

// CNNRNN runs convolutional layers before a recurrent stack.
type CNNRNN struct {
	Type          string  `json:"type"            yaml:"type"            validate:"required,eq=cnnrnn"`
	EmbeddingSize int     `json:"embedding_size"  yaml:"embedding_size"  validate:"gte=1"`
	NumConvLayers int     `json:"num_conv_layers" yaml:"num_conv_layers" validate:"gte=1"`
	NumFilters    int     `json:"num_filters"     yaml:"num_filters"     validate:"gte=1"`
	CellType      string  `json:"cell_type"       yaml:"cell_type"       validate:"oneof=rnn lstm gru"`
	StateSize     int     `json:"state_size"      yaml:"state_size"      validate:"gte=1"`
	Dropout       float64 `json:"dropout"         yaml:"dropout"         validate:"gte=0,lte=1"`
	ReduceOutput  *string `json:"reduce_output"   yaml:"reduce_output"   validate:"omitempty,oneof=sum mean avg max concat last"`
}

func NewCNNRNN() *CNNRNN {
	return &CNNRNN{
		Type:          "cnnrnn",
		EmbeddingSize: 256,
		NumConvLayers: 1,
		NumFilters:    256,
		CellType:      "rnn",
		StateSize:     256,
	}
}

func (c *CNNRNN) EncoderType() string { return c.Type }

// SequenceTransformer encodes a sequence with a transformer stack.
type SequenceTransformer struct {
	Type          string  `json:"type"           yaml:"type"           validate:"required,eq=transformer"`
	EmbeddingSize int     `json:"embedding_size" yaml:"embedding_size" validate:"gte=1"`
	NumLayers     int     `json:"num_layers"     yaml:"num_layers"     validate:"gte=1"`
	HiddenSize    int     `json:"hidden_size"    yaml:"hidden_size"    validate:"gte=1"`
	NumHeads      int     `json:"num_heads"      yaml:"num_heads"      validate:"gte=1"`
	Dropout       float64 `json:"dropout"        yaml:"dropout"        validate:"gte=0,lte=1"`
	ReduceOutput  *string `json:"reduce_output"  yaml:"reduce_output"  validate:"omitempty,oneof=sum mean avg max concat last"`
}

func NewSequenceTransformer() *SequenceTransformer {
	reduce := "last"
	return &SequenceTransformer{
		Type:          "transformer",
		EmbeddingSize: 256,
		NumLayers:     1,
		HiddenSize:    256,
		NumHeads:      8,
		Dropout:       0.1,
		ReduceOutput:  &reduce,
	}
}

func (c *SequenceTransformer) EncoderType() string { return c.Type }
