package schema

import (
	"github.com/go-playground/validator/v10"
)

// Validator is implemented by anything that can validate itself.
type Validator interface {
	Validate() error
}

// CompositeValidator runs a list of validators in order, stopping at the
// first failure.
type CompositeValidator struct {
	validators []Validator
}

func NewCompositeValidator(validators ...Validator) *CompositeValidator {
	return &CompositeValidator{validators: validators}
}

func (v *CompositeValidator) AddValidator(validator Validator) {
	v.validators = append(v.validators, validator)
}

func (v *CompositeValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// StructValidator enforces the field-constraint tags (ranges, oneof
// enumerations) declared on a schema struct and everything nested inside it.
// It complements the JSON-schema structural pass, which only sees the dict
// form: the tags live next to the field definitions and cover resolved
// objects directly.
type StructValidator struct {
	validate *validator.Validate
	value    any
}

func NewStructValidator(value any) *StructValidator {
	return &StructValidator{
		validate: validator.New(),
		value:    value,
	}
}

func (v *StructValidator) Validate() error {
	if v.value == nil {
		return nil
	}
	return v.validate.Struct(v.value)
}

// RegisterValidation installs a custom tag handler, for schema structs that
// declare constraints beyond the built-in tag set.
func (v *StructValidator) RegisterValidation(tag string, fn validator.Func) error {
	return v.validate.RegisterValidation(tag, fn)
}
