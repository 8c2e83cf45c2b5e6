package optimizers

// Config is implemented by every optimizer schema. The trainer holds exactly
// one; changing type replaces the nested object wholesale.
type Config interface {
	OptimizerType() string
}

// SGD is stochastic gradient descent with optional momentum.
type SGD struct {
	Type        string  `json:"type"         yaml:"type"         validate:"required,eq=sgd"`
	Momentum    float64 `json:"momentum"     yaml:"momentum"     validate:"gte=0,lte=1"`
	WeightDecay float64 `json:"weight_decay" yaml:"weight_decay" validate:"gte=0"`
	Dampening   float64 `json:"dampening"    yaml:"dampening"    validate:"gte=0"`
	Nesterov    bool    `json:"nesterov"     yaml:"nesterov"`
}

func NewSGD() *SGD {
	return &SGD{Type: "sgd"}
}

func (c *SGD) OptimizerType() string { return c.Type }

// Adam is the default optimizer for ECD trainers.
type Adam struct {
	Type        string    `json:"type"         yaml:"type"         validate:"required,eq=adam"`
	Betas       []float64 `json:"betas"        yaml:"betas"        validate:"len=2,dive,gte=0,lt=1"`
	Eps         float64   `json:"eps"          yaml:"eps"          validate:"gt=0"`
	WeightDecay float64   `json:"weight_decay" yaml:"weight_decay" validate:"gte=0"`
	Amsgrad     bool      `json:"amsgrad"      yaml:"amsgrad"`
}

func NewAdam() *Adam {
	return &Adam{
		Type:  "adam",
		Betas: []float64{0.9, 0.999},
		Eps:   1e-8,
	}
}

func (c *Adam) OptimizerType() string { return c.Type }

// AdamW is Adam with decoupled weight decay.
type AdamW struct {
	Type        string    `json:"type"         yaml:"type"         validate:"required,eq=adamw"`
	Betas       []float64 `json:"betas"        yaml:"betas"        validate:"len=2,dive,gte=0,lt=1"`
	Eps         float64   `json:"eps"          yaml:"eps"          validate:"gt=0"`
	WeightDecay float64   `json:"weight_decay" yaml:"weight_decay" validate:"gte=0"`
	Amsgrad     bool      `json:"amsgrad"      yaml:"amsgrad"`
}

func NewAdamW() *AdamW {
	return &AdamW{
		Type:        "adamw",
		Betas:       []float64{0.9, 0.999},
		Eps:         1e-8,
		WeightDecay: 0.01,
	}
}

func (c *AdamW) OptimizerType() string { return c.Type }

// Adagrad adapts learning rates per parameter.
type Adagrad struct {
	Type                    string  `json:"type"                       yaml:"type" validate:"required,eq=adagrad"`
	InitialAccumulatorValue float64 `json:"initial_accumulator_value"  yaml:"initial_accumulator_value"  validate:"gte=0"`
	LRDecay                 float64 `json:"lr_decay"                   yaml:"lr_decay"                   validate:"gte=0"`
	WeightDecay             float64 `json:"weight_decay"               yaml:"weight_decay"               validate:"gte=0"`
	Eps                     float64 `json:"eps"                        yaml:"eps"                        validate:"gt=0"`
}

func NewAdagrad() *Adagrad {
	return &Adagrad{Type: "adagrad", Eps: 1e-10}
}

func (c *Adagrad) OptimizerType() string { return c.Type }

// Adadelta adapts learning rates using a moving window of gradients.
type Adadelta struct {
	Type        string  `json:"type"         yaml:"type"         validate:"required,eq=adadelta"`
	Rho         float64 `json:"rho"          yaml:"rho"          validate:"gte=0,lte=1"`
	Eps         float64 `json:"eps"          yaml:"eps"          validate:"gt=0"`
	WeightDecay float64 `json:"weight_decay" yaml:"weight_decay" validate:"gte=0"`
}

func NewAdadelta() *Adadelta {
	return &Adadelta{Type: "adadelta", Rho: 0.9, Eps: 1e-6}
}

func (c *Adadelta) OptimizerType() string { return c.Type }

// RMSProp divides the learning rate by a running average of gradient
// magnitudes.
type RMSProp struct {
	Type        string  `json:"type"         yaml:"type"         validate:"required,eq=rmsprop"`
	Momentum    float64 `json:"momentum"     yaml:"momentum"     validate:"gte=0,lte=1"`
	Alpha       float64 `json:"alpha"        yaml:"alpha"        validate:"gte=0,lte=1"`
	Eps         float64 `json:"eps"          yaml:"eps"          validate:"gt=0"`
	Centered    bool    `json:"centered"     yaml:"centered"`
	WeightDecay float64 `json:"weight_decay" yaml:"weight_decay" validate:"gte=0"`
}

func NewRMSProp() *RMSProp {
	return &RMSProp{Type: "rmsprop", Alpha: 0.99, Eps: 1e-8}
}

func (c *RMSProp) OptimizerType() string { return c.Type }

// GradientClipping bounds gradient magnitudes during training. It is a plain
// nested section, not type-discriminated.
type GradientClipping struct {
	ClipGlobalNorm *float64 `json:"clipglobalnorm" yaml:"clipglobalnorm" validate:"omitempty,gt=0"`
	ClipNorm       *float64 `json:"clipnorm"       yaml:"clipnorm"       validate:"omitempty,gt=0"`
	ClipValue      *float64 `json:"clipvalue"      yaml:"clipvalue"      validate:"omitempty,gt=0"`
}

func NewGradientClipping() *GradientClipping {
	norm := 0.5
	return &GradientClipping{ClipGlobalNorm: &norm}
}
