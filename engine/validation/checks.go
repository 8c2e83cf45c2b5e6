package validation

import (
	"strings"

	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/registry"
)

// DefaultChecks returns the built-in semantic checks in their execution order.
func DefaultChecks() []Check {
	return []Check{
		{Name: "feature_names_required", Fn: checkBasicRequiredParameters},
		{Name: "feature_names_unique", Fn: checkUniqueFeatureNames},
		{Name: "tied_features", Fn: checkTiedFeatures},
		{Name: "checkpoint_exclusivity", Fn: checkCheckpointExclusivity},
		{Name: "gbm_horovod", Fn: checkGBMHorovod},
		{Name: "gbm_single_output", Fn: checkGBMSingleOutput},
		{Name: "gbm_feature_types", Fn: checkGBMFeatureTypes},
		{Name: "ray_in_memory", Fn: checkRayInMemoryPreprocessing},
		{Name: "sequence_combiner_inputs", Fn: checkSequenceCombinerInputs},
		{Name: "comparator_entities", Fn: checkComparatorEntities},
		{Name: "class_balancing", Fn: checkClassBalancing},
		{Name: "sampling_exclusivity", Fn: checkSamplingExclusivity},
		{Name: "validation_metric", Fn: checkValidationMetric},
		{Name: "split", Fn: checkSplit},
	}
}

func dig(config map[string]any, keys ...string) any {
	var current any = config
	for _, key := range keys {
		dict, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = dict[key]
	}
	return current
}

func digString(config map[string]any, keys ...string) string {
	s, _ := dig(config, keys...).(string)
	return s
}

func digNumber(config map[string]any, keys ...string) float64 {
	n, _ := dig(config, keys...).(float64)
	return n
}

func featureList(config map[string]any, section string) []map[string]any {
	entries, _ := config[section].([]any)
	out := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		if dict, ok := entry.(map[string]any); ok {
			out = append(out, dict)
		}
	}
	return out
}

func checkBasicRequiredParameters(config map[string]any, _ *registry.Registry) error {
	for _, section := range []string{core.SectionInputFeatures, core.SectionOutputFeatures} {
		for _, feature := range featureList(config, section) {
			name, _ := feature[core.KeyName].(string)
			if name == "" {
				return core.NewErrorf(core.ErrCodeStructural,
					"Every entry of %s must have a name.", section)
			}
			featureType, _ := feature[core.KeyType].(string)
			if featureType == "" {
				return core.NewErrorf(core.ErrCodeStructural,
					"Feature '%s' must have a type.", name)
			}
		}
	}
	return nil
}

func checkUniqueFeatureNames(config map[string]any, _ *registry.Registry) error {
	seen := map[string]bool{}
	for _, section := range []string{core.SectionInputFeatures, core.SectionOutputFeatures} {
		for _, feature := range featureList(config, section) {
			name, _ := feature[core.KeyName].(string)
			if seen[name] {
				return core.NewErrorf(core.ErrCodeSemantic,
					"Feature names must be unique, but '%s' appears more than once.", name)
			}
			seen[name] = true
		}
	}
	return nil
}

func checkTiedFeatures(config map[string]any, _ *registry.Registry) error {
	inputNames := map[string]bool{}
	for _, feature := range featureList(config, core.SectionInputFeatures) {
		name, _ := feature[core.KeyName].(string)
		inputNames[name] = true
	}
	for _, feature := range featureList(config, core.SectionInputFeatures) {
		tied, ok := feature[core.KeyTied].(string)
		if !ok || tied == "" {
			continue
		}
		if !inputNames[tied] {
			name, _ := feature[core.KeyName].(string)
			return core.NewErrorf(core.ErrCodeSemantic,
				"Input feature '%s' is tied to '%s', but no input feature with that name exists.",
				name, tied)
		}
	}
	return nil
}

func checkCheckpointExclusivity(config map[string]any, _ *registry.Registry) error {
	perEpoch := digNumber(config, core.SectionTrainer, "checkpoints_per_epoch")
	perSteps := digNumber(config, core.SectionTrainer, "steps_per_checkpoint")
	if perEpoch != 0 && perSteps != 0 {
		return core.NewError(core.ErrCodeSemantic,
			"It is invalid to specify both trainer.checkpoints_per_epoch and "+
				"trainer.steps_per_checkpoint. Specify one or the other, or neither to "+
				"checkpoint and evaluate every epoch.")
	}
	return nil
}

func checkGBMHorovod(config map[string]any, _ *registry.Registry) error {
	if digString(config, core.KeyModelType) != core.ModelGBM {
		return nil
	}
	if digString(config, core.SectionBackend, core.KeyType) == "horovod" {
		return core.NewError(core.ErrCodeSemantic,
			"The Horovod backend does not support GBM models.")
	}
	return nil
}

func checkGBMSingleOutput(config map[string]any, _ *registry.Registry) error {
	if digString(config, core.KeyModelType) != core.ModelGBM {
		return nil
	}
	if len(featureList(config, core.SectionOutputFeatures)) != 1 {
		return core.NewError(core.ErrCodeSemantic,
			"GBM models only support a single output feature.")
	}
	return nil
}

func checkGBMFeatureTypes(config map[string]any, _ *registry.Registry) error {
	if digString(config, core.KeyModelType) != core.ModelGBM {
		return nil
	}
	allowed := map[string]bool{}
	for _, t := range core.GBMInputFeatureTypes() {
		allowed[t] = true
	}
	for _, feature := range featureList(config, core.SectionInputFeatures) {
		featureType, _ := feature[core.KeyType].(string)
		if !allowed[featureType] {
			name, _ := feature[core.KeyName].(string)
			return core.NewErrorf(core.ErrCodeSemantic,
				"GBM models only support binary, category and number input features, "+
					"but input feature '%s' has type '%s'.", name, featureType)
		}
	}
	return nil
}

func checkRayInMemoryPreprocessing(config map[string]any, _ *registry.Registry) error {
	if digString(config, core.SectionBackend, core.KeyType) != "ray" {
		return nil
	}
	for _, feature := range featureList(config, core.SectionInputFeatures) {
		featureType, _ := feature[core.KeyType].(string)
		if featureType != core.TypeAudio && featureType != core.TypeImage {
			continue
		}
		if inMemory, ok := dig(feature, core.SectionPreprocessing, "in_memory").(bool); ok && !inMemory {
			name, _ := feature[core.KeyName].(string)
			return core.NewErrorf(core.ErrCodeSemantic,
				"The Ray backend does not support lazy loading of data files at train time. "+
					"Set preprocessing `in_memory: true` for input feature '%s'.", name)
		}
	}
	return nil
}

func checkSequenceCombinerInputs(config map[string]any, _ *registry.Registry) error {
	combinerType := digString(config, core.SectionCombiner, core.KeyType)
	if combinerType != "sequence_concat" {
		return nil
	}
	sequential := map[string]bool{}
	for _, t := range core.SequenceFeatureTypes() {
		sequential[t] = true
	}
	for _, feature := range featureList(config, core.SectionInputFeatures) {
		featureType, _ := feature[core.KeyType].(string)
		if sequential[featureType] {
			return nil
		}
	}
	return core.NewErrorf(core.ErrCodeSemantic,
		"The %s combiner requires at least one input feature of type %s.",
		combinerType, strings.Join(core.SequenceFeatureTypes(), ", "))
}

func checkComparatorEntities(config map[string]any, _ *registry.Registry) error {
	if digString(config, core.SectionCombiner, core.KeyType) != "comparator" {
		return nil
	}
	inputNames := map[string]bool{}
	for _, feature := range featureList(config, core.SectionInputFeatures) {
		name, _ := feature[core.KeyName].(string)
		inputNames[name] = true
	}
	for _, entity := range []string{"entity_1", "entity_2"} {
		members, _ := dig(config, core.SectionCombiner, entity).([]any)
		for _, member := range members {
			name, _ := member.(string)
			if !inputNames[name] {
				return core.NewErrorf(core.ErrCodeSemantic,
					"The comparator combiner's %s references '%s', which is not an input feature name.",
					entity, name)
			}
		}
	}
	return nil
}

func checkClassBalancing(config map[string]any, _ *registry.Registry) error {
	oversample := dig(config, core.SectionPreprocessing, "oversample_minority")
	undersample := dig(config, core.SectionPreprocessing, "undersample_majority")
	if oversample == nil && undersample == nil {
		return nil
	}
	outputs := featureList(config, core.SectionOutputFeatures)
	if len(outputs) == 1 {
		if featureType, _ := outputs[0][core.KeyType].(string); featureType == core.TypeBinary {
			return nil
		}
	}
	return core.NewError(core.ErrCodeSemantic,
		"Class balancing is only supported for configs with a single binary output feature.")
}

func checkSamplingExclusivity(config map[string]any, _ *registry.Registry) error {
	oversample := dig(config, core.SectionPreprocessing, "oversample_minority")
	undersample := dig(config, core.SectionPreprocessing, "undersample_majority")
	if oversample != nil && undersample != nil {
		return core.NewError(core.ErrCodeSemantic,
			"Cannot balance data if both oversampling an undersampling are specified in the config. "+
				"Must specify only one method.")
	}
	return nil
}

func checkValidationMetric(config map[string]any, reg *registry.Registry) error {
	field := digString(config, core.SectionTrainer, "validation_field")
	metric := digString(config, core.SectionTrainer, "validation_metric")
	if field == "" {
		return nil
	}
	featureType := core.CombinedField
	if field != core.CombinedField {
		found := false
		for _, feature := range featureList(config, core.SectionOutputFeatures) {
			name, _ := feature[core.KeyName].(string)
			if name == field {
				featureType, _ = feature[core.KeyType].(string)
				found = true
				break
			}
		}
		if !found {
			return core.NewErrorf(core.ErrCodeSemantic,
				"The trainer.validation_field '%s' is neither 'combined' nor the name of an output feature.",
				field)
		}
	}
	if metric == "" {
		return nil
	}
	if !reg.HasMetric(featureType, metric) {
		return core.NewErrorf(core.ErrCodeSemantic,
			"The trainer.validation_metric '%s' is not computed for validation_field '%s' "+
				"(type '%s'). Valid metrics are: [%s]",
			metric, field, featureType, strings.Join(reg.MetricNames(featureType), ", "))
	}
	return nil
}

// checkSplit rebuilds the split strategy from the resolved dict and delegates
// to its own Validate, which knows which columns it needs.
func checkSplit(config map[string]any, reg *registry.Registry) error {
	splitDict, ok := dig(config, core.SectionPreprocessing, core.SectionSplit).(map[string]any)
	if !ok {
		return nil
	}
	splitType, _ := splitDict[core.KeyType].(string)
	if splitType == "" {
		return nil
	}
	strategy, err := reg.Splitter(splitType)
	if err != nil {
		return err
	}
	if err := core.DecodeMap(splitDict, strategy); err != nil {
		return err
	}
	return strategy.Validate(config)
}
