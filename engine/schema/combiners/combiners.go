package combiners

import (
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
)

// Config is implemented by every combiner schema. The combiner merges all
// encoded input features into a single representation before decoding.
type Config interface {
	CombinerType() string
}

// Concat concatenates encoder outputs and runs them through fully connected
// layers. It is the default combiner for ECD models.
type Concat struct {
	Type          string  `json:"type"          yaml:"type"          validate:"required,eq=concat"`
	NumFCLayers   int     `json:"num_fc_layers" yaml:"num_fc_layers" validate:"gte=0"`
	OutputSize    int     `json:"output_size"   yaml:"output_size"   validate:"gte=1"`
	UseBias       bool    `json:"use_bias"      yaml:"use_bias"`
	Activation    string  `json:"activation"    yaml:"activation"    validate:"oneof=relu sigmoid tanh leaky_relu elu"`
	Dropout       float64 `json:"dropout"       yaml:"dropout"       validate:"gte=0,lte=1"`
	Norm          *string `json:"norm"          yaml:"norm"          validate:"omitempty,oneof=batch layer"`
	FlattenInputs bool    `json:"flatten_inputs" yaml:"flatten_inputs"`
}

func NewConcat() *Concat {
	return &Concat{
		Type:       "concat",
		OutputSize: 256,
		UseBias:    true,
		Activation: "relu",
	}
}

func (c *Concat) CombinerType() string { return c.Type }

// SequenceConcat concatenates sequence representations along the sequence
// dimension. Requires at least one sequential input feature.
type SequenceConcat struct {
	Type                string  `json:"type"                  yaml:"type" validate:"required,eq=sequence_concat"`
	MainSequenceFeature *string `json:"main_sequence_feature" yaml:"main_sequence_feature"`
	ReduceOutput        *string `json:"reduce_output"         yaml:"reduce_output" validate:"omitempty,oneof=sum mean avg max concat last"`
}

func NewSequenceConcat() *SequenceConcat {
	return &SequenceConcat{Type: "sequence_concat"}
}

func (c *SequenceConcat) CombinerType() string { return c.Type }

// Sequence stacks a sequence encoder on top of the concatenated sequence
// representations. Its nested encoder resolves through the sequence encoder
// family, which is why resolving this combiner threads a sequence feature
// type context into nested lookups.
type Sequence struct {
	Type                string          `json:"type"                  yaml:"type" validate:"required,eq=sequence"`
	MainSequenceFeature *string         `json:"main_sequence_feature" yaml:"main_sequence_feature"`
	Encoder             encoders.Config `json:"encoder"               yaml:"encoder"`
	ReduceOutput        *string         `json:"reduce_output"         yaml:"reduce_output" validate:"omitempty,oneof=sum mean avg max concat last"`
}

func NewSequence() *Sequence {
	return &Sequence{
		Type:    "sequence",
		Encoder: encoders.NewRNN(),
	}
}

func (c *Sequence) CombinerType() string { return c.Type }

// Comparator compares two named groups of input features.
type Comparator struct {
	Type        string   `json:"type"          yaml:"type"          validate:"required,eq=comparator"`
	Entity1     []string `json:"entity_1"      yaml:"entity_1"      validate:"min=1"`
	Entity2     []string `json:"entity_2"      yaml:"entity_2"      validate:"min=1"`
	NumFCLayers int      `json:"num_fc_layers" yaml:"num_fc_layers" validate:"gte=0"`
	OutputSize  int      `json:"output_size"   yaml:"output_size"   validate:"gte=1"`
	Activation  string   `json:"activation"    yaml:"activation"    validate:"oneof=relu sigmoid tanh leaky_relu elu"`
	Dropout     float64  `json:"dropout"       yaml:"dropout"       validate:"gte=0,lte=1"`
}

func NewComparator() *Comparator {
	return &Comparator{
		Type:        "comparator",
		NumFCLayers: 1,
		OutputSize:  256,
		Activation:  "relu",
	}
}

func (c *Comparator) CombinerType() string { return c.Type }

// TabNet is an attentive tabular combiner.
type TabNet struct {
	Type             string  `json:"type"              yaml:"type"              validate:"required,eq=tabnet"`
	Size             int     `json:"size"              yaml:"size"              validate:"gte=1"`
	OutputSize       int     `json:"output_size"       yaml:"output_size"       validate:"gte=1"`
	NumSteps         int     `json:"num_steps"         yaml:"num_steps"         validate:"gte=1"`
	NumTotalBlocks   int     `json:"num_total_blocks"  yaml:"num_total_blocks"  validate:"gte=1"`
	NumSharedBlocks  int     `json:"num_shared_blocks" yaml:"num_shared_blocks" validate:"gte=0"`
	RelaxationFactor float64 `json:"relaxation_factor" yaml:"relaxation_factor" validate:"gt=0"`
	Sparsity         float64 `json:"sparsity"          yaml:"sparsity"          validate:"gte=0"`
	Dropout          float64 `json:"dropout"           yaml:"dropout"           validate:"gte=0,lte=1"`
}

func NewTabNet() *TabNet {
	return &TabNet{
		Type:             "tabnet",
		Size:             32,
		OutputSize:       128,
		NumSteps:         3,
		NumTotalBlocks:   4,
		NumSharedBlocks:  2,
		RelaxationFactor: 1.5,
		Sparsity:         1e-4,
	}
}

func (c *TabNet) CombinerType() string { return c.Type }

// Transformer runs self-attention across the encoded input features.
type Transformer struct {
	Type         string  `json:"type"          yaml:"type"          validate:"required,eq=transformer"`
	NumLayers    int     `json:"num_layers"    yaml:"num_layers"    validate:"gte=1"`
	HiddenSize   int     `json:"hidden_size"   yaml:"hidden_size"   validate:"gte=1"`
	NumHeads     int     `json:"num_heads"     yaml:"num_heads"     validate:"gte=1"`
	Dropout      float64 `json:"dropout"       yaml:"dropout"       validate:"gte=0,lte=1"`
	ReduceOutput *string `json:"reduce_output" yaml:"reduce_output" validate:"omitempty,oneof=sum mean avg max concat last"`
}

func NewTransformer() *Transformer {
	reduce := "mean"
	return &Transformer{
		Type:         "transformer",
		NumLayers:    1,
		HiddenSize:   256,
		NumHeads:     8,
		Dropout:      0.1,
		ReduceOutput: &reduce,
	}
}

func (c *Transformer) CombinerType() string { return c.Type }
