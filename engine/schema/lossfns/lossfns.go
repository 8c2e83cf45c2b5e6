package lossfns

// Config is implemented by every loss schema. Same replace-on-type-change
// contract as the other type-discriminated sections.
type Config interface {
	LossType() string
}

// BinaryWeightedCrossEntropy is the default loss for binary outputs.
type BinaryWeightedCrossEntropy struct {
	Type                string   `json:"type"                  yaml:"type"                  validate:"required,eq=binary_weighted_cross_entropy"`
	PositiveClassWeight *float64 `json:"positive_class_weight" yaml:"positive_class_weight" validate:"omitempty,gt=0"`
	RobustLambda        float64  `json:"robust_lambda"         yaml:"robust_lambda"         validate:"gte=0"`
	ConfidencePenalty   float64  `json:"confidence_penalty"    yaml:"confidence_penalty"    validate:"gte=0"`
	Weight              float64  `json:"weight"                yaml:"weight"                validate:"gt=0"`
}

func NewBinaryWeightedCrossEntropy() *BinaryWeightedCrossEntropy {
	return &BinaryWeightedCrossEntropy{
		Type:   "binary_weighted_cross_entropy",
		Weight: 1,
	}
}

func (c *BinaryWeightedCrossEntropy) LossType() string { return c.Type }

// SoftmaxCrossEntropy is the default loss for category outputs.
type SoftmaxCrossEntropy struct {
	Type              string    `json:"type"               yaml:"type"               validate:"required,eq=softmax_cross_entropy"`
	ClassWeights      []float64 `json:"class_weights"      yaml:"class_weights"`
	RobustLambda      float64   `json:"robust_lambda"      yaml:"robust_lambda"      validate:"gte=0"`
	ConfidencePenalty float64   `json:"confidence_penalty" yaml:"confidence_penalty" validate:"gte=0"`
	Weight            float64   `json:"weight"             yaml:"weight"             validate:"gt=0"`
}

func NewSoftmaxCrossEntropy() *SoftmaxCrossEntropy {
	return &SoftmaxCrossEntropy{
		Type:   "softmax_cross_entropy",
		Weight: 1,
	}
}

func (c *SoftmaxCrossEntropy) LossType() string { return c.Type }

// SequenceSoftmaxCrossEntropy is the default loss for sequence and text
// outputs.
type SequenceSoftmaxCrossEntropy struct {
	Type         string    `json:"type"          yaml:"type"          validate:"required,eq=sequence_softmax_cross_entropy"`
	ClassWeights []float64 `json:"class_weights" yaml:"class_weights"`
	Weight       float64   `json:"weight"        yaml:"weight"        validate:"gt=0"`
}

func NewSequenceSoftmaxCrossEntropy() *SequenceSoftmaxCrossEntropy {
	return &SequenceSoftmaxCrossEntropy{
		Type:   "sequence_softmax_cross_entropy",
		Weight: 1,
	}
}

func (c *SequenceSoftmaxCrossEntropy) LossType() string { return c.Type }

// SigmoidCrossEntropy is the default loss for set outputs.
type SigmoidCrossEntropy struct {
	Type         string    `json:"type"          yaml:"type"          validate:"required,eq=sigmoid_cross_entropy"`
	ClassWeights []float64 `json:"class_weights" yaml:"class_weights"`
	Weight       float64   `json:"weight"        yaml:"weight"        validate:"gt=0"`
}

func NewSigmoidCrossEntropy() *SigmoidCrossEntropy {
	return &SigmoidCrossEntropy{
		Type:   "sigmoid_cross_entropy",
		Weight: 1,
	}
}

func (c *SigmoidCrossEntropy) LossType() string { return c.Type }

// MeanSquaredError is the default loss for number and vector outputs.
type MeanSquaredError struct {
	Type   string  `json:"type"   yaml:"type"   validate:"required,eq=mean_squared_error"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gt=0"`
}

func NewMeanSquaredError() *MeanSquaredError {
	return &MeanSquaredError{Type: "mean_squared_error", Weight: 1}
}

func (c *MeanSquaredError) LossType() string { return c.Type }

// MeanAbsoluteError loss for number and vector outputs.
type MeanAbsoluteError struct {
	Type   string  `json:"type"   yaml:"type"   validate:"required,eq=mean_absolute_error"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gt=0"`
}

func NewMeanAbsoluteError() *MeanAbsoluteError {
	return &MeanAbsoluteError{Type: "mean_absolute_error", Weight: 1}
}

func (c *MeanAbsoluteError) LossType() string { return c.Type }

// RootMeanSquaredError loss for number outputs.
type RootMeanSquaredError struct {
	Type   string  `json:"type"   yaml:"type"   validate:"required,eq=root_mean_squared_error"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gt=0"`
}

func NewRootMeanSquaredError() *RootMeanSquaredError {
	return &RootMeanSquaredError{Type: "root_mean_squared_error", Weight: 1}
}

func (c *RootMeanSquaredError) LossType() string { return c.Type }

// RootMeanSquaredPercentageError loss for number outputs.
type RootMeanSquaredPercentageError struct {
	Type   string  `json:"type"   yaml:"type"   validate:"required,eq=root_mean_squared_percentage_error"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gt=0"`
}

func NewRootMeanSquaredPercentageError() *RootMeanSquaredPercentageError {
	return &RootMeanSquaredPercentageError{Type: "root_mean_squared_percentage_error", Weight: 1}
}

func (c *RootMeanSquaredPercentageError) LossType() string { return c.Type }

// Huber loss for number outputs.
type Huber struct {
	Type   string  `json:"type"   yaml:"type"   validate:"required,eq=huber"`
	Delta  float64 `json:"delta"  yaml:"delta"  validate:"gt=0"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gt=0"`
}

func NewHuber() *Huber {
	return &Huber{Type: "huber", Delta: 1, Weight: 1}
}

func (c *Huber) LossType() string { return c.Type }
