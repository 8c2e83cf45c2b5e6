package config

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/features"
)

// featureDicts normalizes a feature list section into a slice of dicts,
// failing on entries that are not mappings.
func featureDicts(section any, sectionName string) ([]map[string]any, error) {
	if section == nil {
		return nil, nil
	}
	entries, ok := section.([]any)
	if !ok {
		return nil, core.NewErrorf(core.ErrCodeStructural,
			"The %s section must be a list, got %T.", sectionName, section)
	}
	out := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		dict, ok := entry.(map[string]any)
		if !ok {
			return nil, core.NewErrorf(core.ErrCodeStructural,
				"Every entry of %s must be a mapping, got %T.", sectionName, entry)
		}
		out = append(out, dict)
	}
	return out, nil
}

// deriveColumns fills column and proc_column on every feature dict before any
// parameter merging: column defaults to the feature name, and proc_column is
// the deterministic hash of the feature type and its preprocessing parameters
// that keys the downstream dataset cache.
func deriveColumns(config map[string]any) {
	for _, section := range []string{core.SectionInputFeatures, core.SectionOutputFeatures} {
		entries, ok := config[section].([]any)
		if !ok {
			continue
		}
		for _, entry := range entries {
			feature, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			name, _ := feature[core.KeyName].(string)
			if column, ok := feature[core.KeyColumn].(string); !ok || column == "" {
				feature[core.KeyColumn] = name
			}
			featureType, ok := feature[core.KeyType].(string)
			if !ok {
				continue
			}
			if proc, ok := feature[core.KeyProcColumn].(string); !ok || proc == "" {
				preprocessing, _ := feature[core.SectionPreprocessing].(map[string]any)
				feature[core.KeyProcColumn] = core.FeatureHash(featureType, preprocessing)
			}
		}
	}
}

// featureIdentity extracts the name and, when present, the type of a feature
// dict. The type may be absent on the update path, where it defaults to the
// existing feature's type.
func featureIdentity(feature map[string]any, sectionName string) (string, string, error) {
	name, ok := feature[core.KeyName].(string)
	if !ok || name == "" {
		return "", "", core.NewErrorf(core.ErrCodeStructural,
			"Every entry of %s must have a name.", sectionName)
	}
	featureType, _ := feature[core.KeyType].(string)
	return name, featureType, nil
}

func (c *ModelConfig) findInputFeature(name string) features.InputFeature {
	for _, f := range c.InputFeatures {
		if f.Common().Name == name {
			return f
		}
	}
	return nil
}

func (c *ModelConfig) findOutputFeature(name string) features.OutputFeature {
	for _, f := range c.OutputFeatures {
		if f.Common().Name == name {
			return f
		}
	}
	return nil
}

// parseInputFeatures resolves the input feature list. With initialize set,
// every feature starts from a fresh registry instance layered with the global
// per-type defaults; otherwise existing features are patched in place and only
// unknown names (or type changes) build fresh objects.
func (c *ModelConfig) parseInputFeatures(section any, initialize bool) error {
	dicts, err := featureDicts(section, core.SectionInputFeatures)
	if err != nil {
		return err
	}
	for _, dict := range dicts {
		name, featureType, err := featureIdentity(dict, core.SectionInputFeatures)
		if err != nil {
			return err
		}
		context := "input feature '" + name + "'"
		feature := c.findInputFeature(name)
		if featureType == "" {
			if feature == nil {
				return core.NewErrorf(core.ErrCodeStructural,
					"Feature '%s' must have a type.", name)
			}
			featureType = feature.Common().Type
		}
		fresh := initialize || feature == nil || feature.Common().Type != featureType
		if fresh {
			built, err := c.registry.InputFeature(featureType, context)
			if err != nil {
				return err
			}
			if err := c.applyInputDefaults(built, featureType); err != nil {
				return err
			}
			if feature == nil {
				c.InputFeatures = append(c.InputFeatures, built)
			} else {
				c.replaceInputFeature(feature, built)
			}
			feature = built
		}
		if err := c.setInputAttributes(feature, dict, context); err != nil {
			return err
		}
	}
	return nil
}

func (c *ModelConfig) replaceInputFeature(old, replacement features.InputFeature) {
	for i, f := range c.InputFeatures {
		if f == old {
			c.InputFeatures[i] = replacement
			return
		}
	}
}

func (c *ModelConfig) replaceOutputFeature(old, replacement features.OutputFeature) {
	for i, f := range c.OutputFeatures {
		if f == old {
			c.OutputFeatures[i] = replacement
			return
		}
	}
}

// applyInputDefaults copies the global per-type defaults onto a fresh input
// feature. Inputs only draw preprocessing and encoder from the defaults;
// decoder and loss defaults never leak onto the input side.
func (c *ModelConfig) applyInputDefaults(feature features.InputFeature, featureType string) error {
	typeDefaults := c.Defaults.ForType(featureType)
	if typeDefaults == nil {
		return nil
	}
	if typeDefaults.Preprocessing != nil {
		copied, err := core.DeepCopy(typeDefaults.Preprocessing)
		if err != nil {
			return err
		}
		if err := feature.SetPreprocessing(copied); err != nil {
			return err
		}
	}
	if typeDefaults.Encoder != nil {
		copied, err := core.DeepCopy(typeDefaults.Encoder)
		if err != nil {
			return err
		}
		feature.SetEncoder(copied)
	}
	return nil
}

// applyOutputDefaults mirrors applyInputDefaults for the output side, which
// draws only decoder and loss.
func (c *ModelConfig) applyOutputDefaults(feature features.OutputFeature, featureType string) error {
	typeDefaults := c.Defaults.ForType(featureType)
	if typeDefaults == nil {
		return nil
	}
	if typeDefaults.Decoder != nil {
		copied, err := core.DeepCopy(typeDefaults.Decoder)
		if err != nil {
			return err
		}
		feature.SetDecoder(copied)
	}
	if typeDefaults.Loss != nil {
		copied, err := core.DeepCopy(typeDefaults.Loss)
		if err != nil {
			return err
		}
		feature.SetLoss(copied)
	}
	return nil
}

func (c *ModelConfig) setInputAttributes(feature features.InputFeature, dict map[string]any, context string) error {
	if encSection, present := dict[core.SectionEncoder]; present {
		if err := c.applyEncoder(feature, encSection, context); err != nil {
			return err
		}
	}
	if ppSection, present := dict[core.SectionPreprocessing]; present {
		ppDict, err := sectionDict(ppSection, core.SectionPreprocessing)
		if err != nil {
			return err
		}
		if err := core.DecodeMap(ppDict, feature.GetPreprocessing()); err != nil {
			return err
		}
	}
	return core.DecodeMap(without(dict, core.SectionEncoder, core.SectionPreprocessing), feature)
}

func (c *ModelConfig) parseOutputFeatures(section any, initialize bool) error {
	dicts, err := featureDicts(section, core.SectionOutputFeatures)
	if err != nil {
		return err
	}
	for _, dict := range dicts {
		name, featureType, err := featureIdentity(dict, core.SectionOutputFeatures)
		if err != nil {
			return err
		}
		context := "output feature '" + name + "'"
		feature := c.findOutputFeature(name)
		if featureType == "" {
			if feature == nil {
				return core.NewErrorf(core.ErrCodeStructural,
					"Feature '%s' must have a type.", name)
			}
			featureType = feature.Common().Type
		}
		fresh := initialize || feature == nil || feature.Common().Type != featureType
		if fresh {
			built, err := c.registry.OutputFeature(featureType, context)
			if err != nil {
				return err
			}
			if err := c.applyOutputDefaults(built, featureType); err != nil {
				return err
			}
			if feature == nil {
				c.OutputFeatures = append(c.OutputFeatures, built)
			} else {
				c.replaceOutputFeature(feature, built)
			}
			feature = built
		}
		if err := c.setOutputAttributes(feature, dict, context); err != nil {
			return err
		}
		// Tagger decoders operate per timestep and must not reduce the
		// sequence dimension.
		if decoder := feature.GetDecoder(); decoder != nil && decoder.DecoderType() == "tagger" {
			feature.Common().ReduceInput = nil
		}
	}
	return nil
}

func (c *ModelConfig) setOutputAttributes(feature features.OutputFeature, dict map[string]any, context string) error {
	if decSection, present := dict[core.SectionDecoder]; present {
		if err := c.applyDecoder(feature, decSection, context); err != nil {
			return err
		}
	}
	if lossSection, present := dict[core.SectionLoss]; present {
		if err := c.applyLoss(feature, lossSection, context); err != nil {
			return err
		}
	}
	if ppSection, present := dict[core.SectionPreprocessing]; present {
		ppDict, err := sectionDict(ppSection, core.SectionPreprocessing)
		if err != nil {
			return err
		}
		if err := core.DecodeMap(ppDict, feature.GetPreprocessing()); err != nil {
			return err
		}
	}
	return core.DecodeMap(
		without(dict, core.SectionDecoder, core.SectionLoss, core.SectionPreprocessing),
		feature)
}
