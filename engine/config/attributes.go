package config

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/combiners"
	"github.com/ludwig-ai/ludwig-go/engine/schema/features"
	"github.com/ludwig-ai/ludwig-go/engine/schema/preprocessing"
	"github.com/ludwig-ai/ludwig-go/engine/schema/trainer"
)

// The appliers in this file implement the replace-on-type-change rule: when a
// nested section's type discriminator differs from the object currently in
// the slot, the whole object is replaced with a fresh registry instance before
// the section's remaining keys are decoded onto it. Decoding only touches keys
// present in the dict, so the same appliers serve both initial resolution and
// later partial updates.

func sectionDict(section any, name string) (map[string]any, error) {
	dict, ok := section.(map[string]any)
	if !ok {
		return nil, core.NewErrorf(core.ErrCodeStructural,
			"The %s section must be a mapping, got %T.", name, section)
	}
	return dict, nil
}

func declaredType(dict map[string]any, current string) string {
	if name, ok := dict[core.KeyType].(string); ok && name != "" {
		return name
	}
	return current
}

func without(dict map[string]any, excluded ...string) map[string]any {
	out := make(map[string]any, len(dict))
	for k, v := range dict {
		out[k] = v
	}
	for _, k := range excluded {
		delete(out, k)
	}
	return out
}

func (c *ModelConfig) applyEncoder(feature features.InputFeature, section any, context string) error {
	dict, err := sectionDict(section, core.SectionEncoder)
	if err != nil {
		return err
	}
	featureType := feature.Common().Type
	current := feature.GetEncoder()
	currentType := ""
	if current != nil {
		currentType = current.EncoderType()
	}
	name := declaredType(dict, currentType)
	if current == nil || name != currentType {
		replacement, err := c.registry.Encoder(featureType, name, context)
		if err != nil {
			return err
		}
		feature.SetEncoder(replacement)
		current = replacement
	}
	return core.DecodeMap(dict, current)
}

func (c *ModelConfig) applyDecoder(feature features.OutputFeature, section any, context string) error {
	dict, err := sectionDict(section, core.SectionDecoder)
	if err != nil {
		return err
	}
	featureType := feature.Common().Type
	current := feature.GetDecoder()
	currentType := ""
	if current != nil {
		currentType = current.DecoderType()
	}
	name := declaredType(dict, currentType)
	if current == nil || name != currentType {
		replacement, err := c.registry.Decoder(featureType, name, context)
		if err != nil {
			return err
		}
		feature.SetDecoder(replacement)
		current = replacement
	}
	return core.DecodeMap(dict, current)
}

func (c *ModelConfig) applyLoss(feature features.OutputFeature, section any, context string) error {
	dict, err := sectionDict(section, core.SectionLoss)
	if err != nil {
		return err
	}
	featureType := feature.Common().Type
	current := feature.GetLoss()
	currentType := ""
	if current != nil {
		currentType = current.LossType()
	}
	name := declaredType(dict, currentType)
	if current == nil || name != currentType {
		replacement, err := c.registry.Loss(featureType, name, context)
		if err != nil {
			return err
		}
		feature.SetLoss(replacement)
		current = replacement
	}
	return core.DecodeMap(dict, current)
}

func (c *ModelConfig) applyCombiner(section any) error {
	dict, err := sectionDict(section, core.SectionCombiner)
	if err != nil {
		return err
	}
	name := declaredType(dict, c.Combiner.CombinerType())
	if name != c.Combiner.CombinerType() {
		replacement, err := c.registry.Combiner(name)
		if err != nil {
			return err
		}
		c.Combiner = replacement
	}
	// The sequence combiner nests a sequence-family encoder, so its encoder
	// lookups thread the sequence feature type as context.
	if seq, ok := c.Combiner.(*combiners.Sequence); ok {
		if encSection, present := dict[core.SectionEncoder]; present {
			encDict, err := sectionDict(encSection, core.SectionEncoder)
			if err != nil {
				return err
			}
			currentType := ""
			if seq.Encoder != nil {
				currentType = seq.Encoder.EncoderType()
			}
			encName := declaredType(encDict, currentType)
			if seq.Encoder == nil || encName != currentType {
				replacement, err := c.registry.Encoder(core.TypeSequence, encName, "sequence combiner")
				if err != nil {
					return err
				}
				seq.Encoder = replacement
			}
			if err := core.DecodeMap(encDict, seq.Encoder); err != nil {
				return err
			}
		}
		return core.DecodeMap(without(dict, core.SectionEncoder), seq)
	}
	return core.DecodeMap(dict, c.Combiner)
}

func (c *ModelConfig) applyTrainer(section any) error {
	dict, err := sectionDict(section, core.SectionTrainer)
	if err != nil {
		return err
	}
	if name, ok := dict[core.KeyType].(string); ok && name != c.Trainer.TrainerType() {
		return core.NewUnsupportedError(
			"trainer", name, "model type '"+c.ModelType+"'",
			[]string{c.Trainer.TrainerType()})
	}
	if ecd, ok := c.Trainer.(*trainer.ECDTrainer); ok {
		if optSection, present := dict[core.SectionOptimizer]; present {
			if err := c.applyOptimizer(ecd, optSection); err != nil {
				return err
			}
		}
		return core.DecodeMap(without(dict, core.SectionOptimizer), ecd)
	}
	return core.DecodeMap(dict, c.Trainer)
}

func (c *ModelConfig) applyOptimizer(ecd *trainer.ECDTrainer, section any) error {
	dict, err := sectionDict(section, core.SectionOptimizer)
	if err != nil {
		return err
	}
	currentType := ""
	if ecd.Optimizer != nil {
		currentType = ecd.Optimizer.OptimizerType()
	}
	name := declaredType(dict, currentType)
	if ecd.Optimizer == nil || name != currentType {
		replacement, err := c.registry.Optimizer(name)
		if err != nil {
			return err
		}
		ecd.Optimizer = replacement
	}
	return core.DecodeMap(dict, ecd.Optimizer)
}

func (c *ModelConfig) applyPreprocessing(section any) error {
	dict, err := sectionDict(section, core.SectionPreprocessing)
	if err != nil {
		return err
	}
	if splitSection, present := dict[core.SectionSplit]; present {
		if err := c.applySplit(c.Preprocessing, splitSection); err != nil {
			return err
		}
	}
	return core.DecodeMap(without(dict, core.SectionSplit), c.Preprocessing)
}

func (c *ModelConfig) applySplit(target *preprocessing.Config, section any) error {
	dict, err := sectionDict(section, core.SectionSplit)
	if err != nil {
		return err
	}
	currentType := ""
	if target.Split != nil {
		currentType = target.Split.SplitType()
	}
	name := declaredType(dict, currentType)
	if target.Split == nil || name != currentType {
		replacement, err := c.registry.Splitter(name)
		if err != nil {
			return err
		}
		target.Split = replacement
	}
	return core.DecodeMap(dict, target.Split)
}

// applyDefaults merges the user's defaults section onto the baseline global
// per-type defaults. Nested encoder/decoder/loss sections follow the usual
// replace-on-type-change rule within the feature type's own family.
func (c *ModelConfig) applyDefaults(section any) error {
	dict, err := sectionDict(section, core.SectionDefaults)
	if err != nil {
		return err
	}
	for featureType, block := range dict {
		if block == nil {
			continue
		}
		typeDefaults := c.Defaults.ForType(featureType)
		if typeDefaults == nil {
			return core.NewUnsupportedError(
				"feature", featureType, "defaults section", core.InputFeatureTypes())
		}
		blockDict, err := sectionDict(block, "defaults."+featureType)
		if err != nil {
			return err
		}
		context := "defaults section '" + featureType + "'"
		if pp, present := blockDict[core.SectionPreprocessing]; present && pp != nil {
			ppDict, err := sectionDict(pp, core.SectionPreprocessing)
			if err != nil {
				return err
			}
			if err := core.DecodeMap(ppDict, typeDefaults.Preprocessing); err != nil {
				return err
			}
		}
		if enc, present := blockDict[core.SectionEncoder]; present && enc != nil {
			encDict, err := sectionDict(enc, core.SectionEncoder)
			if err != nil {
				return err
			}
			currentType := ""
			if typeDefaults.Encoder != nil {
				currentType = typeDefaults.Encoder.EncoderType()
			}
			name := declaredType(encDict, currentType)
			if typeDefaults.Encoder == nil || name != currentType {
				replacement, err := c.registry.Encoder(featureType, name, context)
				if err != nil {
					return err
				}
				typeDefaults.Encoder = replacement
			}
			if err := core.DecodeMap(encDict, typeDefaults.Encoder); err != nil {
				return err
			}
		}
		if dec, present := blockDict[core.SectionDecoder]; present && dec != nil {
			decDict, err := sectionDict(dec, core.SectionDecoder)
			if err != nil {
				return err
			}
			currentType := ""
			if typeDefaults.Decoder != nil {
				currentType = typeDefaults.Decoder.DecoderType()
			}
			name := declaredType(decDict, currentType)
			if typeDefaults.Decoder == nil || name != currentType {
				replacement, err := c.registry.Decoder(featureType, name, context)
				if err != nil {
					return err
				}
				typeDefaults.Decoder = replacement
			}
			if err := core.DecodeMap(decDict, typeDefaults.Decoder); err != nil {
				return err
			}
		}
		if loss, present := blockDict[core.SectionLoss]; present && loss != nil {
			lossDict, err := sectionDict(loss, core.SectionLoss)
			if err != nil {
				return err
			}
			currentType := ""
			if typeDefaults.Loss != nil {
				currentType = typeDefaults.Loss.LossType()
			}
			name := declaredType(lossDict, currentType)
			if typeDefaults.Loss == nil || name != currentType {
				replacement, err := c.registry.Loss(featureType, name, context)
				if err != nil {
					return err
				}
				typeDefaults.Loss = replacement
			}
			if err := core.DecodeMap(lossDict, typeDefaults.Loss); err != nil {
				return err
			}
		}
	}
	return nil
}
