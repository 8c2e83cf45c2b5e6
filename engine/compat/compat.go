package compat

import (
	"strings"

	"github.com/ludwig-ai/ludwig-go/engine/core"
)

// Upgrade transforms a possibly old-version config dict into the shape the
// current schema expects. It is pure and idempotent: the input is never
// mutated, and running it twice yields the same result. Legacy shapes it
// cannot reconcile pass through unchanged so structural validation reports
// them instead.
func Upgrade(raw map[string]any) map[string]any {
	config, _ := core.DeepCopyMap(raw)
	upgradeTrainerSection(config)
	upgradeFeatureLists(config)
	upgradeDefaultsSection(config)
	upgradeSplitSection(config)
	upgradeHyperoptSection(config)
	renameKeyDeep(config, "fc_size", "output_size")
	return config
}

// training was renamed to trainer. A config carrying both keeps trainer.
func upgradeTrainerSection(config map[string]any) {
	training, ok := config["training"]
	if !ok {
		return
	}
	delete(config, "training")
	if _, exists := config[core.SectionTrainer]; !exists {
		config[core.SectionTrainer] = training
	}
}

func upgradeFeatureLists(config map[string]any) {
	for _, section := range []string{core.SectionInputFeatures, core.SectionOutputFeatures} {
		featureList, ok := config[section].([]any)
		if !ok {
			continue
		}
		for _, f := range featureList {
			feature, ok := f.(map[string]any)
			if !ok {
				continue
			}
			upgradeFeature(feature)
		}
	}
}

func upgradeFeature(feature map[string]any) {
	if feature[core.KeyType] == "numerical" {
		feature[core.KeyType] = core.TypeNumber
	}
	// Scalar encoder/decoder shorthand predates nested sections.
	for _, section := range []string{core.SectionEncoder, core.SectionDecoder} {
		if name, ok := feature[section].(string); ok {
			feature[section] = map[string]any{core.KeyType: name}
		}
	}
	if preprocessing, ok := feature[core.SectionPreprocessing].(map[string]any); ok {
		upgradeMissingValueStrategy(preprocessing)
	}
}

func upgradeDefaultsSection(config map[string]any) {
	defaultsSection, ok := config[core.SectionDefaults].(map[string]any)
	if !ok {
		return
	}
	if legacy, ok := defaultsSection["numerical"]; ok {
		delete(defaultsSection, "numerical")
		if _, exists := defaultsSection[core.TypeNumber]; !exists {
			defaultsSection[core.TypeNumber] = legacy
		}
	}
	for _, block := range defaultsSection {
		typeDefaults, ok := block.(map[string]any)
		if !ok {
			continue
		}
		for _, section := range []string{core.SectionEncoder, core.SectionDecoder} {
			if name, ok := typeDefaults[section].(string); ok {
				typeDefaults[section] = map[string]any{core.KeyType: name}
			}
		}
		if preprocessing, ok := typeDefaults[core.SectionPreprocessing].(map[string]any); ok {
			upgradeMissingValueStrategy(preprocessing)
		}
	}
}

func upgradeMissingValueStrategy(preprocessing map[string]any) {
	switch preprocessing["missing_value_strategy"] {
	case "backfill", "back_fill":
		preprocessing["missing_value_strategy"] = "bfill"
	case "pad", "padd":
		preprocessing["missing_value_strategy"] = "ffill"
	}
}

// Top-level force_split/split_probabilities/stratify predate the split
// subsection of preprocessing.
func upgradeSplitSection(config map[string]any) {
	preprocessing, ok := config[core.SectionPreprocessing].(map[string]any)
	if !ok {
		return
	}
	forceSplit, hasForce := preprocessing["force_split"]
	probabilities, hasProbs := preprocessing["split_probabilities"]
	stratify, hasStratify := preprocessing["stratify"]
	if !hasForce && !hasProbs && !hasStratify {
		return
	}
	delete(preprocessing, "force_split")
	delete(preprocessing, "split_probabilities")
	delete(preprocessing, "stratify")
	if _, exists := preprocessing[core.SectionSplit]; exists {
		return
	}
	splitSection := map[string]any{}
	if hasStratify && stratify != nil {
		splitSection[core.KeyType] = "stratify"
		splitSection[core.KeyColumn] = stratify
	} else if forced, _ := forceSplit.(bool); hasForce && !forced {
		splitSection[core.KeyType] = "fixed"
	} else {
		splitSection[core.KeyType] = "random"
	}
	if hasProbs {
		splitSection["probabilities"] = probabilities
	}
	preprocessing[core.SectionSplit] = splitSection
}

// The hyperopt sampler section was folded into the executor, and parameter
// names referencing the old training section follow the trainer rename.
func upgradeHyperoptSection(config map[string]any) {
	hyperopt, ok := config[core.SectionHyperopt].(map[string]any)
	if !ok {
		return
	}
	if sampler, ok := hyperopt["sampler"].(map[string]any); ok {
		delete(hyperopt, "sampler")
		executor, ok := hyperopt["executor"].(map[string]any)
		if !ok {
			executor = map[string]any{}
			hyperopt["executor"] = executor
		}
		for _, key := range []string{"num_samples", "scheduler", "search_alg"} {
			value, present := sampler[key]
			if !present {
				continue
			}
			if _, exists := executor[key]; !exists {
				executor[key] = value
			}
		}
	}
	if parameters, ok := hyperopt["parameters"].(map[string]any); ok {
		for name, value := range parameters {
			if strings.HasPrefix(name, "training.") {
				delete(parameters, name)
				parameters["trainer."+strings.TrimPrefix(name, "training.")] = value
			}
		}
	}
}

func renameKeyDeep(node any, from, to string) {
	switch v := node.(type) {
	case map[string]any:
		if value, ok := v[from]; ok {
			delete(v, from)
			if _, exists := v[to]; !exists {
				v[to] = value
			}
		}
		for _, child := range v {
			renameKeyDeep(child, from, to)
		}
	case []any:
		for _, child := range v {
			renameKeyDeep(child, from, to)
		}
	}
}
