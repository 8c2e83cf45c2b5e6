package trainer

import (
	"github.com/ludwig-ai/ludwig-go/engine/schema/optimizers"
)

// Config is implemented by every trainer schema. The model type selects the
// concrete trainer: ECD models train with gradient descent, GBM models with
// boosted trees.
type Config interface {
	TrainerType() string
	GetEarlyStop() int
	SetEarlyStop(int)
	GetValidationField() string
	GetValidationMetric() string
}

// ECDTrainer configures gradient-descent training of ECD models.
//
// Epochs is a pointer so an explicit user value is distinguishable from
// "unset": hyperopt time-budget reconciliation needs to know whether the user
// pinned the epoch count.
type ECDTrainer struct {
	Type                       string                       `json:"type"                        yaml:"type" validate:"required,eq=trainer"`
	LearningRate               float64                      `json:"learning_rate"               yaml:"learning_rate" validate:"gt=0"`
	Epochs                     *int                         `json:"epochs,omitempty"            yaml:"epochs,omitempty" validate:"omitempty,gte=1"`
	TrainSteps                 *int                         `json:"train_steps,omitempty"       yaml:"train_steps,omitempty" validate:"omitempty,gte=1"`
	EarlyStop                  int                          `json:"early_stop"                  yaml:"early_stop" validate:"gte=-1"`
	BatchSize                  int                          `json:"batch_size"                  yaml:"batch_size" validate:"gte=1"`
	EvalBatchSize              *int                         `json:"eval_batch_size,omitempty"   yaml:"eval_batch_size,omitempty" validate:"omitempty,gte=1"`
	CheckpointsPerEpoch        int                          `json:"checkpoints_per_epoch"       yaml:"checkpoints_per_epoch" validate:"gte=0"`
	StepsPerCheckpoint         int                          `json:"steps_per_checkpoint"        yaml:"steps_per_checkpoint"  validate:"gte=0"`
	ValidationField            string                       `json:"validation_field"            yaml:"validation_field"`
	ValidationMetric           string                       `json:"validation_metric"           yaml:"validation_metric"`
	Optimizer                  optimizers.Config            `json:"optimizer"                   yaml:"optimizer"`
	GradientClipping           *optimizers.GradientClipping `json:"gradient_clipping"           yaml:"gradient_clipping"`
	RegularizationLambda       float64                      `json:"regularization_lambda"       yaml:"regularization_lambda" validate:"gte=0"`
	RegularizationType         string                       `json:"regularization_type"         yaml:"regularization_type"   validate:"oneof=l1 l2 l1_l2"`
	LearningRateScheduler      string                       `json:"learning_rate_scheduler"     yaml:"learning_rate_scheduler"`
	IncreaseBatchSizeOnPlateau int                          `json:"increase_batch_size_on_plateau" yaml:"increase_batch_size_on_plateau" validate:"gte=0"`
}

func NewECDTrainer() *ECDTrainer {
	return &ECDTrainer{
		Type:               "trainer",
		LearningRate:       0.001,
		EarlyStop:          5,
		BatchSize:          128,
		ValidationField:    "combined",
		ValidationMetric:   "loss",
		Optimizer:          optimizers.NewAdam(),
		GradientClipping:   optimizers.NewGradientClipping(),
		RegularizationType: "l2",
	}
}

func (c *ECDTrainer) TrainerType() string         { return c.Type }
func (c *ECDTrainer) GetEarlyStop() int           { return c.EarlyStop }
func (c *ECDTrainer) SetEarlyStop(v int)          { c.EarlyStop = v }
func (c *ECDTrainer) GetValidationField() string  { return c.ValidationField }
func (c *ECDTrainer) GetValidationMetric() string { return c.ValidationMetric }

// GBMTrainer configures LightGBM training of GBM models.
type GBMTrainer struct {
	Type             string  `json:"type"               yaml:"type" validate:"required,eq=lightgbm_trainer"`
	LearningRate     float64 `json:"learning_rate"      yaml:"learning_rate" validate:"gt=0"`
	NumBoostRound    int     `json:"num_boost_round"    yaml:"num_boost_round" validate:"gte=1"`
	MaxDepth         int     `json:"max_depth"          yaml:"max_depth"`
	NumLeaves        int     `json:"num_leaves"         yaml:"num_leaves" validate:"gte=2"`
	MinDataInLeaf    int     `json:"min_data_in_leaf"   yaml:"min_data_in_leaf" validate:"gte=0"`
	FeatureFraction  float64 `json:"feature_fraction"   yaml:"feature_fraction" validate:"gt=0,lte=1"`
	BaggingFraction  float64 `json:"bagging_fraction"   yaml:"bagging_fraction" validate:"gt=0,lte=1"`
	BaggingFreq      int     `json:"bagging_freq"       yaml:"bagging_freq" validate:"gte=0"`
	LambdaL1         float64 `json:"lambda_l1"          yaml:"lambda_l1" validate:"gte=0"`
	LambdaL2         float64 `json:"lambda_l2"          yaml:"lambda_l2" validate:"gte=0"`
	EarlyStop        int     `json:"early_stop"         yaml:"early_stop" validate:"gte=-1"`
	EvalBatchSize    *int    `json:"eval_batch_size,omitempty" yaml:"eval_batch_size,omitempty" validate:"omitempty,gte=1"`
	ValidationField  string  `json:"validation_field"   yaml:"validation_field"`
	ValidationMetric string  `json:"validation_metric"  yaml:"validation_metric"`
}

func NewGBMTrainer() *GBMTrainer {
	return &GBMTrainer{
		Type:             "lightgbm_trainer",
		LearningRate:     0.03,
		NumBoostRound:    100,
		MaxDepth:         18,
		NumLeaves:        82,
		MinDataInLeaf:    20,
		FeatureFraction:  0.75,
		BaggingFraction:  0.8,
		BaggingFreq:      1,
		EarlyStop:        5,
		ValidationField:  "combined",
		ValidationMetric: "loss",
	}
}

func (c *GBMTrainer) TrainerType() string         { return c.Type }
func (c *GBMTrainer) GetEarlyStop() int           { return c.EarlyStop }
func (c *GBMTrainer) SetEarlyStop(v int)          { c.EarlyStop = v }
func (c *GBMTrainer) GetValidationField() string  { return c.ValidationField }
func (c *GBMTrainer) GetValidationMetric() string { return c.ValidationMetric }
