package validation

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/registry"
)

// CheckFunc is a single semantic config check. Checks run against the fully
// resolved dict: every default is already filled in, so a check never needs to
// guard against absent sections it knows the resolver produces.
type CheckFunc func(config map[string]any, reg *registry.Registry) error

// Check pairs a check with a stable name so external packages can register,
// replace or inspect individual checks.
type Check struct {
	Name string
	Fn   CheckFunc
}

// Validator runs structural validation followed by the registered semantic
// checks, stopping at the first failure.
type Validator struct {
	registry *registry.Registry
	checks   []Check
}

// New builds a validator carrying the default check registry.
func New(reg *registry.Registry) *Validator {
	return &Validator{registry: reg, checks: DefaultChecks()}
}

// Register appends a custom check. Checks run in registration order.
func (v *Validator) Register(check Check) {
	v.checks = append(v.checks, check)
}

// Checks returns the registered checks.
func (v *Validator) Checks() []Check {
	return v.checks
}

// Validate runs the structural schema and then every semantic check against
// the resolved config dict, returning the first violation.
func (v *Validator) Validate(config map[string]any) error {
	structural := BuildSchema(v.registry)
	if _, err := structural.Validate(config); err != nil {
		return core.NewErrorf(core.ErrCodeStructural, "Config failed structural validation: %s", err.Error())
	}
	for _, check := range v.checks {
		if err := check.Fn(config, v.registry); err != nil {
			return err
		}
	}
	return nil
}
