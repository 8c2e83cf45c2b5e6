package encoders

// DateEmbed embeds each component of a parsed date.
type DateEmbed struct {
	Type          string  `json:"type"           yaml:"type"           validate:"required,eq=embed"`
	EmbeddingSize int     `json:"embedding_size" yaml:"embedding_size" validate:"gte=1"`
	NumFCLayers   int     `json:"num_fc_layers"  yaml:"num_fc_layers"  validate:"gte=0"`
	OutputSize    int     `json:"output_size"    yaml:"output_size"    validate:"gte=1"`
	Dropout       float64 `json:"dropout"        yaml:"dropout"        validate:"gte=0,lte=1"`
}

func NewDateEmbed() *DateEmbed {
	return &DateEmbed{
		Type:          "embed",
		EmbeddingSize: 10,
		OutputSize:    10,
	}
}

func (c *DateEmbed) EncoderType() string { return c.Type }

// DateWave encodes date components with periodic wave functions.
type DateWave struct {
	Type        string  `json:"type"          yaml:"type"          validate:"required,eq=wave"`
	NumFCLayers int     `json:"num_fc_layers" yaml:"num_fc_layers" validate:"gte=0"`
	OutputSize  int     `json:"output_size"   yaml:"output_size"   validate:"gte=1"`
	Dropout     float64 `json:"dropout"       yaml:"dropout"       validate:"gte=0,lte=1"`
}

func NewDateWave() *DateWave {
	return &DateWave{
		Type:       "wave",
		OutputSize: 10,
	}
}

func (c *DateWave) EncoderType() string { return c.Type }

// H3Embed embeds the components of an H3 spatial index.
type H3Embed struct {
	Type          string  `json:"type"           yaml:"type"           validate:"required,eq=embed"`
	EmbeddingSize int     `json:"embedding_size" yaml:"embedding_size" validate:"gte=1"`
	ReduceOutput  *string `json:"reduce_output"  yaml:"reduce_output"  validate:"omitempty,oneof=sum mean avg max concat last"`
	Dropout       float64 `json:"dropout"        yaml:"dropout"        validate:"gte=0,lte=1"`
}

func NewH3Embed() *H3Embed {
	reduce := "sum"
	return &H3Embed{
		Type:          "embed",
		EmbeddingSize: 10,
		ReduceOutput:  &reduce,
	}
}

func (c *H3Embed) EncoderType() string { return c.Type }

// H3WeightedSum combines H3 component embeddings with learned weights.
type H3WeightedSum struct {
	Type          string  `json:"type"           yaml:"type"           validate:"required,eq=weighted_sum"`
	EmbeddingSize int     `json:"embedding_size" yaml:"embedding_size" validate:"gte=1"`
	ShouldSoftmax bool    `json:"should_softmax" yaml:"should_softmax"`
	Dropout       float64 `json:"dropout"        yaml:"dropout"        validate:"gte=0,lte=1"`
}

func NewH3WeightedSum() *H3WeightedSum {
	return &H3WeightedSum{
		Type:          "weighted_sum",
		EmbeddingSize: 10,
	}
}

func (c *H3WeightedSum) EncoderType() string { return c.Type }
