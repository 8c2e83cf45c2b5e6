package split

import (
	"math"

	"github.com/ludwig-ai/ludwig-go/engine/core"
)

// Config is implemented by every split strategy. Validate runs against the
// fully-resolved config dict: a strategy checks that the columns it needs
// exist, or are at least explainable as absent (a config validated for
// serving has no split column in it).
type Config interface {
	SplitType() string
	Validate(config map[string]any) error
}

func probabilitiesValid(probs []float64) bool {
	if len(probs) != 3 {
		return false
	}
	sum := 0.0
	for _, p := range probs {
		if p < 0 {
			return false
		}
		sum += p
	}
	return math.Abs(sum-1) < 1e-6
}

// featureColumnTypes maps every feature column in the resolved config to its
// feature type.
func featureColumnTypes(config map[string]any) map[string]string {
	out := map[string]string{}
	for _, section := range []string{core.SectionInputFeatures, core.SectionOutputFeatures} {
		features, ok := config[section].([]any)
		if !ok {
			continue
		}
		for _, f := range features {
			feature, ok := f.(map[string]any)
			if !ok {
				continue
			}
			column, _ := feature[core.KeyColumn].(string)
			ftype, _ := feature[core.KeyType].(string)
			if column != "" {
				out[column] = ftype
			}
		}
	}
	return out
}

// Random splits rows according to fixed probabilities.
type Random struct {
	Type          string    `json:"type"          yaml:"type" validate:"required,eq=random"`
	Probabilities []float64 `json:"probabilities" yaml:"probabilities" validate:"len=3"`
}

func NewRandom() *Random {
	return &Random{Type: "random", Probabilities: []float64{0.7, 0.1, 0.2}}
}

func (c *Random) SplitType() string { return c.Type }

func (c *Random) Validate(_ map[string]any) error {
	if !probabilitiesValid(c.Probabilities) {
		return core.NewError(core.ErrCodeSemantic,
			"Split probabilities must be three non-negative values summing to 1.")
	}
	return nil
}

// Fixed splits rows according to a pre-assigned split column in the data.
type Fixed struct {
	Type   string `json:"type"   yaml:"type"   validate:"required,eq=fixed"`
	Column string `json:"column" yaml:"column" validate:"required"`
}

func NewFixed() *Fixed {
	return &Fixed{Type: "fixed", Column: "split"}
}

func (c *Fixed) SplitType() string { return c.Type }

// Validate allows the column to be absent from the declared features: the
// split column usually lives in the dataset only.
func (c *Fixed) Validate(_ map[string]any) error {
	if c.Column == "" {
		return core.NewError(core.ErrCodeSemantic, "Fixed split requires a column.")
	}
	return nil
}

// Stratify splits rows preserving the distribution of a target column.
type Stratify struct {
	Type          string    `json:"type"          yaml:"type"          validate:"required,eq=stratify"`
	Column        string    `json:"column"        yaml:"column"        validate:"required"`
	Probabilities []float64 `json:"probabilities" yaml:"probabilities" validate:"len=3"`
}

func NewStratify() *Stratify {
	return &Stratify{Type: "stratify", Probabilities: []float64{0.7, 0.1, 0.2}}
}

func (c *Stratify) SplitType() string { return c.Type }

// Validate requires the stratify column, when it names a declared feature, to
// be binary or category. A column absent from the features is tolerated (it
// may exist in the dataset only), matching the fail-late policy.
func (c *Stratify) Validate(config map[string]any) error {
	if c.Column == "" {
		return core.NewError(core.ErrCodeSemantic, "Stratify split requires a column.")
	}
	if !probabilitiesValid(c.Probabilities) {
		return core.NewError(core.ErrCodeSemantic,
			"Split probabilities must be three non-negative values summing to 1.")
	}
	if ftype, ok := featureColumnTypes(config)[c.Column]; ok {
		if ftype != core.TypeBinary && ftype != core.TypeCategory {
			return core.NewErrorf(core.ErrCodeSemantic,
				"Stratify split column '%s' must be a binary or category feature, got type '%s'.",
				c.Column, ftype)
		}
	}
	return nil
}

// DateTime splits rows chronologically by a datetime column.
type DateTime struct {
	Type          string    `json:"type"          yaml:"type"          validate:"required,eq=datetime"`
	Column        string    `json:"column"        yaml:"column"        validate:"required"`
	Probabilities []float64 `json:"probabilities" yaml:"probabilities" validate:"len=3"`
}

func NewDateTime() *DateTime {
	return &DateTime{Type: "datetime", Probabilities: []float64{0.7, 0.1, 0.2}}
}

func (c *DateTime) SplitType() string { return c.Type }

func (c *DateTime) Validate(_ map[string]any) error {
	if c.Column == "" {
		return core.NewError(core.ErrCodeSemantic, "Datetime split requires a column.")
	}
	if !probabilitiesValid(c.Probabilities) {
		return core.NewError(core.ErrCodeSemantic,
			"Split probabilities must be three non-negative values summing to 1.")
	}
	return nil
}

// Hash splits rows deterministically by hashing a key column, keeping
// assignment stable as the dataset grows.
type Hash struct {
	Type          string    `json:"type"          yaml:"type"          validate:"required,eq=hash"`
	Column        string    `json:"column"        yaml:"column"        validate:"required"`
	Probabilities []float64 `json:"probabilities" yaml:"probabilities" validate:"len=3"`
}

func NewHash() *Hash {
	return &Hash{Type: "hash", Probabilities: []float64{0.7, 0.1, 0.2}}
}

func (c *Hash) SplitType() string { return c.Type }

func (c *Hash) Validate(_ map[string]any) error {
	if c.Column == "" {
		return core.NewError(core.ErrCodeSemantic, "Hash split requires a column.")
	}
	if !probabilitiesValid(c.Probabilities) {
		return core.NewError(core.ErrCodeSemantic,
			"Split probabilities must be three non-negative values summing to 1.")
	}
	return nil
}
