package encoders

// CategoricalEmbed maps category values into a dense embedding space.
// Registered under the name "dense" for category features.
type CategoricalEmbed struct {
	Type                 string  `json:"type"                  yaml:"type"                  validate:"required,eq=dense"`
	EmbeddingSize        int     `json:"embedding_size"        yaml:"embedding_size"        validate:"gte=1"`
	EmbeddingsOnCPU      bool    `json:"embeddings_on_cpu"     yaml:"embeddings_on_cpu"`
	EmbeddingsTrainable  bool    `json:"embeddings_trainable"  yaml:"embeddings_trainable"`
	PretrainedEmbeddings *string `json:"pretrained_embeddings" yaml:"pretrained_embeddings"`
	Dropout              float64 `json:"dropout"               yaml:"dropout"               validate:"gte=0,lte=1"`
}

func NewCategoricalEmbed() *CategoricalEmbed {
	return &CategoricalEmbed{
		Type:                "dense",
		EmbeddingSize:       50,
		EmbeddingsTrainable: true,
	}
}

func (c *CategoricalEmbed) EncoderType() string { return c.Type }

// CategoricalSparse one-hot encodes category values.
type CategoricalSparse struct {
	Type                string  `json:"type"                 yaml:"type"                 validate:"required,eq=sparse"`
	EmbeddingsOnCPU     bool    `json:"embeddings_on_cpu"    yaml:"embeddings_on_cpu"`
	EmbeddingsTrainable bool    `json:"embeddings_trainable" yaml:"embeddings_trainable"`
	Dropout             float64 `json:"dropout"              yaml:"dropout"              validate:"gte=0,lte=1"`
}

func NewCategoricalSparse() *CategoricalSparse {
	return &CategoricalSparse{Type: "sparse"}
}

func (c *CategoricalSparse) EncoderType() string { return c.Type }

// SetEmbed embeds each element of a set feature and aggregates.
type SetEmbed struct {
	Type                string  `json:"type"                 yaml:"type"                 validate:"required,eq=embed"`
	EmbeddingSize       int     `json:"embedding_size"       yaml:"embedding_size"       validate:"gte=1"`
	EmbeddingsTrainable bool    `json:"embeddings_trainable" yaml:"embeddings_trainable"`
	Dropout             float64 `json:"dropout"              yaml:"dropout"              validate:"gte=0,lte=1"`
	OutputSize          int     `json:"output_size"          yaml:"output_size"          validate:"gte=1"`
	NumFCLayers         int     `json:"num_fc_layers"        yaml:"num_fc_layers"        validate:"gte=0"`
}

func NewSetEmbed() *SetEmbed {
	return &SetEmbed{
		Type:                "embed",
		EmbeddingSize:       50,
		EmbeddingsTrainable: true,
		OutputSize:          10,
	}
}

func (c *SetEmbed) EncoderType() string { return c.Type }

// BagEmbed embeds bag features with frequency weighting.
type BagEmbed struct {
	Type                string  `json:"type"                 yaml:"type"                 validate:"required,eq=embed"`
	EmbeddingSize       int     `json:"embedding_size"       yaml:"embedding_size"       validate:"gte=1"`
	EmbeddingsTrainable bool    `json:"embeddings_trainable" yaml:"embeddings_trainable"`
	ForceEmbeddingSize  bool    `json:"force_embedding_size" yaml:"force_embedding_size"`
	Dropout             float64 `json:"dropout"              yaml:"dropout"              validate:"gte=0,lte=1"`
	OutputSize          int     `json:"output_size"          yaml:"output_size"          validate:"gte=1"`
}

func NewBagEmbed() *BagEmbed {
	return &BagEmbed{
		Type:                "embed",
		EmbeddingSize:       50,
		EmbeddingsTrainable: true,
		OutputSize:          10,
	}
}

func (c *BagEmbed) EncoderType() string { return c.Type }
