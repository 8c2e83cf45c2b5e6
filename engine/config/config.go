package config

import (
	"os"

	"dario.cat/mergo"
	"github.com/goccy/go-yaml"

	"github.com/ludwig-ai/ludwig-go/engine/compat"
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/registry"
	"github.com/ludwig-ai/ludwig-go/engine/schema"
	"github.com/ludwig-ai/ludwig-go/engine/schema/combiners"
	"github.com/ludwig-ai/ludwig-go/engine/schema/defaults"
	"github.com/ludwig-ai/ludwig-go/engine/schema/features"
	"github.com/ludwig-ai/ludwig-go/engine/schema/preprocessing"
	"github.com/ludwig-ai/ludwig-go/engine/schema/trainer"
	"github.com/ludwig-ai/ludwig-go/engine/validation"
	"github.com/ludwig-ai/ludwig-go/pkg/logger"
)

// ModelConfig is the fully-resolved model configuration: every section filled
// in with defaults, every nested type discriminator resolved to a concrete
// schema object, and the whole graph validated. Instances are only ever
// produced by FromDict/FromYAML (or NewWithRegistry), so callers never see a
// partially-resolved config.
type ModelConfig struct {
	ModelType      string
	InputFeatures  []features.InputFeature
	OutputFeatures []features.OutputFeature
	Combiner       combiners.Config
	Trainer        trainer.Config
	Preprocessing  *preprocessing.Config
	Defaults       *defaults.Config
	Hyperopt       map[string]any
	Backend        map[string]any

	registry *registry.Registry
	logger   logger.Logger
}

// FromDict constructs, resolves and validates a ModelConfig from a raw config
// dict using the built-in component registry.
func FromDict(raw map[string]any) (*ModelConfig, error) {
	return NewWithRegistry(raw, registry.Default(), nil)
}

// FromYAML reads a YAML config file and constructs a ModelConfig from it.
func FromYAML(path string) (*ModelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.NewErrorf(core.ErrCodeStructural,
			"failed to read config file '%s': %s", path, err.Error())
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, core.NewErrorf(core.ErrCodeStructural,
			"failed to parse config file '%s': %s", path, err.Error())
	}
	return FromDict(raw)
}

// NewWithRegistry constructs a ModelConfig against an explicit registry. Tests
// pass fabricated registries containing only the components under test; the
// logger may be nil, in which case a default stderr logger is used.
func NewWithRegistry(raw map[string]any, reg *registry.Registry, log logger.Logger) (*ModelConfig, error) {
	if reg == nil {
		reg = registry.Default()
	}
	if log == nil {
		log = logger.NewLogger(logger.DefaultConfig())
	}
	config := compat.Upgrade(raw)

	modelType := core.ModelECD
	if declared, ok := config[core.KeyModelType].(string); ok && declared != "" {
		modelType = declared
	}
	baselineTrainer, err := reg.Trainer(modelType)
	if err != nil {
		return nil, err
	}
	c := &ModelConfig{
		ModelType:     modelType,
		Combiner:      combiners.NewConcat(),
		Trainer:       baselineTrainer,
		Preprocessing: preprocessing.NewConfig(),
		Defaults:      defaults.NewConfig(),
		registry:      reg,
		logger:        log,
	}
	if section, present := config[core.SectionDefaults]; present && section != nil {
		if err := c.applyDefaults(section); err != nil {
			return nil, err
		}
	}
	// column/proc_column must exist before any preprocessing-parameter
	// merging: proc_column keys the downstream dataset cache.
	deriveColumns(config)
	if err := c.parseInputFeatures(config[core.SectionInputFeatures], true); err != nil {
		return nil, err
	}
	if err := c.parseOutputFeatures(config[core.SectionOutputFeatures], true); err != nil {
		return nil, err
	}
	if section, present := config[core.SectionTrainer]; present && section != nil {
		if err := c.applyTrainer(section); err != nil {
			return nil, err
		}
	}
	if c.ModelType == core.ModelGBM {
		if err := c.enforceGBM(); err != nil {
			return nil, err
		}
		c.Combiner = nil
	} else if section, present := config[core.SectionCombiner]; present && section != nil {
		if err := c.applyCombiner(section); err != nil {
			return nil, err
		}
	}
	if section, present := config[core.SectionPreprocessing]; present && section != nil {
		if err := c.applyPreprocessing(section); err != nil {
			return nil, err
		}
	}
	if section, ok := config[core.SectionBackend].(map[string]any); ok {
		c.Backend = section
	}
	if section, ok := config[core.SectionHyperopt].(map[string]any); ok {
		c.Hyperopt = section
		if err := c.reconcileHyperopt(); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ModelConfig) validate() error {
	if err := c.validateFieldTags(); err != nil {
		return err
	}
	dict, err := c.ToDict()
	if err != nil {
		return err
	}
	return validation.New(c.registry).Validate(dict)
}

// validateFieldTags enforces the field-constraint tags on every resolved
// section before the dict-level passes run, so range and enumeration
// violations surface against the objects that carry them.
func (c *ModelConfig) validateFieldTags() error {
	composite := schema.NewCompositeValidator()
	for _, feature := range c.InputFeatures {
		composite.AddValidator(schema.NewStructValidator(feature))
	}
	for _, feature := range c.OutputFeatures {
		composite.AddValidator(schema.NewStructValidator(feature))
	}
	if c.Combiner != nil {
		composite.AddValidator(schema.NewStructValidator(c.Combiner))
	}
	composite.AddValidator(schema.NewStructValidator(c.Trainer))
	composite.AddValidator(schema.NewStructValidator(c.Preprocessing))
	if err := composite.Validate(); err != nil {
		return core.NewErrorf(core.ErrCodeSemantic,
			"Config failed field validation: %s", err.Error())
	}
	return nil
}

// ToDict projects the resolved object graph into the flat dict form consumed
// by preprocessing and model building. Only active features are included, and
// the projection is deterministic: resolving it again yields an equivalent
// graph.
func (c *ModelConfig) ToDict() (map[string]any, error) {
	out := map[string]any{core.KeyModelType: c.ModelType}

	inputs := make([]any, 0, len(c.InputFeatures))
	for _, feature := range c.InputFeatures {
		if !feature.Common().Active {
			continue
		}
		dict, err := core.AsMap(feature)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, dict)
	}
	out[core.SectionInputFeatures] = inputs

	outputs := make([]any, 0, len(c.OutputFeatures))
	for _, feature := range c.OutputFeatures {
		if !feature.Common().Active {
			continue
		}
		dict, err := core.AsMap(feature)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, dict)
	}
	out[core.SectionOutputFeatures] = outputs

	if c.Combiner != nil {
		dict, err := core.AsMap(c.Combiner)
		if err != nil {
			return nil, err
		}
		out[core.SectionCombiner] = dict
	}
	trainerDict, err := core.AsMap(c.Trainer)
	if err != nil {
		return nil, err
	}
	out[core.SectionTrainer] = trainerDict

	preprocessingDict, err := core.AsMap(c.Preprocessing)
	if err != nil {
		return nil, err
	}
	out[core.SectionPreprocessing] = preprocessingDict

	defaultsDict, err := core.AsMap(c.Defaults)
	if err != nil {
		return nil, err
	}
	out[core.SectionDefaults] = defaultsDict

	if len(c.Hyperopt) > 0 {
		copied, err := core.DeepCopyMap(c.Hyperopt)
		if err != nil {
			return nil, err
		}
		out[core.SectionHyperopt] = copied
	}
	if len(c.Backend) > 0 {
		copied, err := core.DeepCopyMap(c.Backend)
		if err != nil {
			return nil, err
		}
		out[core.SectionBackend] = copied
	}
	return out, nil
}

// UpdateWithDict re-applies a partial config onto the resolved object graph
// without resetting defaults: only keys present in delta are touched. Features
// named in delta that already exist are patched in place; unknown names (or
// type changes) resolve as fresh features. The updated graph is re-validated
// before the method returns; on a validation error the receiver may hold the
// partially-applied update.
func (c *ModelConfig) UpdateWithDict(delta map[string]any) error {
	config := compat.Upgrade(delta)
	deriveColumns(config)
	if section, present := config[core.SectionDefaults]; present && section != nil {
		if err := c.applyDefaults(section); err != nil {
			return err
		}
	}
	if section, present := config[core.SectionInputFeatures]; present {
		if err := c.parseInputFeatures(section, false); err != nil {
			return err
		}
	}
	if section, present := config[core.SectionOutputFeatures]; present {
		if err := c.parseOutputFeatures(section, false); err != nil {
			return err
		}
	}
	if section, present := config[core.SectionTrainer]; present && section != nil {
		if err := c.applyTrainer(section); err != nil {
			return err
		}
	}
	if c.ModelType == core.ModelGBM {
		if err := c.enforceGBM(); err != nil {
			return err
		}
	} else if section, present := config[core.SectionCombiner]; present && section != nil {
		if err := c.applyCombiner(section); err != nil {
			return err
		}
	}
	if section, present := config[core.SectionPreprocessing]; present && section != nil {
		if err := c.applyPreprocessing(section); err != nil {
			return err
		}
	}
	if section, ok := config[core.SectionBackend].(map[string]any); ok {
		if err := c.mergeFreeformSection(&c.Backend, section); err != nil {
			return err
		}
	}
	if section, ok := config[core.SectionHyperopt].(map[string]any); ok {
		if err := c.mergeFreeformSection(&c.Hyperopt, section); err != nil {
			return err
		}
		if err := c.reconcileHyperopt(); err != nil {
			return err
		}
	}
	return c.validate()
}

// mergeFreeformSection deep-merges a delta onto one of the free-form map
// sections (hyperopt, backend), with delta values winning.
func (c *ModelConfig) mergeFreeformSection(target *map[string]any, delta map[string]any) error {
	if *target == nil {
		*target = map[string]any{}
	}
	if err := mergo.Merge(target, delta, mergo.WithOverride); err != nil {
		return core.NewErrorf(core.ErrCodeConversion,
			"failed to merge config section: %s", err.Error())
	}
	return nil
}

// Enable marks the named feature active again; the feature keeps its resolved
// sections, so no defaults are re-applied.
func (c *ModelConfig) Enable(name string) error {
	if feature := c.findInputFeature(name); feature != nil {
		feature.Common().Enable()
		return nil
	}
	if feature := c.findOutputFeature(name); feature != nil {
		feature.Common().Enable()
		return nil
	}
	return core.NewErrorf(core.ErrCodeSemantic, "No feature named '%s' exists in the config.", name)
}

// Disable removes the named feature from the effective config without
// removing it from the object graph.
func (c *ModelConfig) Disable(name string) error {
	if feature := c.findInputFeature(name); feature != nil {
		feature.Common().Disable()
		return nil
	}
	if feature := c.findOutputFeature(name); feature != nil {
		feature.Common().Disable()
		return nil
	}
	return core.NewErrorf(core.ErrCodeSemantic, "No feature named '%s' exists in the config.", name)
}
