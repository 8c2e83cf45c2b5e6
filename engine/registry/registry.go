package registry

import (
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/combiners"
	"github.com/ludwig-ai/ludwig-go/engine/schema/decoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/encoders"
	"github.com/ludwig-ai/ludwig-go/engine/schema/features"
	"github.com/ludwig-ai/ludwig-go/engine/schema/lossfns"
	"github.com/ludwig-ai/ludwig-go/engine/schema/optimizers"
	"github.com/ludwig-ai/ludwig-go/engine/schema/split"
	"github.com/ludwig-ai/ludwig-go/engine/schema/trainer"
)

// Registry maps type discriminators to constructors of default-initialized
// schema objects. It is passed explicitly to everything that resolves configs;
// there is no package-level mutable registry.
type Registry struct {
	encoders   map[string]map[string]func() encoders.Config
	decoders   map[string]map[string]func() decoders.Config
	losses     map[string]map[string]func() lossfns.Config
	optimizers map[string]func() optimizers.Config
	splitters  map[string]func() split.Config
	combiners  map[string]func() combiners.Config
	inputs     map[string]func() features.InputFeature
	outputs    map[string]func() features.OutputFeature
	trainers   map[string]func() trainer.Config
	metrics    map[string]metricInfo
}

type metricInfo struct {
	defaultMetric string
	names         []string
}

// New returns an empty registry. Most callers want Default.
func New() *Registry {
	return &Registry{
		encoders:   map[string]map[string]func() encoders.Config{},
		decoders:   map[string]map[string]func() decoders.Config{},
		losses:     map[string]map[string]func() lossfns.Config{},
		optimizers: map[string]func() optimizers.Config{},
		splitters:  map[string]func() split.Config{},
		combiners:  map[string]func() combiners.Config{},
		inputs:     map[string]func() features.InputFeature{},
		outputs:    map[string]func() features.OutputFeature{},
		trainers:   map[string]func() trainer.Config{},
		metrics:    map[string]metricInfo{},
	}
}

// RegisterEncoder registers an encoder constructor under a feature type
// family.
func (r *Registry) RegisterEncoder(featureType, name string, ctor func() encoders.Config) {
	family, ok := r.encoders[featureType]
	if !ok {
		family = map[string]func() encoders.Config{}
		r.encoders[featureType] = family
	}
	family[name] = ctor
}

func (r *Registry) RegisterDecoder(featureType, name string, ctor func() decoders.Config) {
	family, ok := r.decoders[featureType]
	if !ok {
		family = map[string]func() decoders.Config{}
		r.decoders[featureType] = family
	}
	family[name] = ctor
}

func (r *Registry) RegisterLoss(featureType, name string, ctor func() lossfns.Config) {
	family, ok := r.losses[featureType]
	if !ok {
		family = map[string]func() lossfns.Config{}
		r.losses[featureType] = family
	}
	family[name] = ctor
}

func (r *Registry) RegisterOptimizer(name string, ctor func() optimizers.Config) {
	r.optimizers[name] = ctor
}

func (r *Registry) RegisterSplitter(name string, ctor func() split.Config) {
	r.splitters[name] = ctor
}

func (r *Registry) RegisterCombiner(name string, ctor func() combiners.Config) {
	r.combiners[name] = ctor
}

func (r *Registry) RegisterInputFeature(featureType string, ctor func() features.InputFeature) {
	r.inputs[featureType] = ctor
}

func (r *Registry) RegisterOutputFeature(featureType string, ctor func() features.OutputFeature) {
	r.outputs[featureType] = ctor
}

func (r *Registry) RegisterTrainer(modelType string, ctor func() trainer.Config) {
	r.trainers[modelType] = ctor
}

func (r *Registry) RegisterMetrics(featureType, defaultMetric string, names []string) {
	r.metrics[featureType] = metricInfo{defaultMetric: defaultMetric, names: names}
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Encoder returns a fresh default-initialized encoder from the feature type's
// family. The context string names the owning feature in error messages.
func (r *Registry) Encoder(featureType, name, context string) (encoders.Config, error) {
	family := r.encoders[featureType]
	ctor, ok := family[name]
	if !ok {
		return nil, core.NewUnsupportedError("encoder", name, context, keys(family))
	}
	return ctor(), nil
}

func (r *Registry) Decoder(featureType, name, context string) (decoders.Config, error) {
	family := r.decoders[featureType]
	ctor, ok := family[name]
	if !ok {
		return nil, core.NewUnsupportedError("decoder", name, context, keys(family))
	}
	return ctor(), nil
}

func (r *Registry) Loss(featureType, name, context string) (lossfns.Config, error) {
	family := r.losses[featureType]
	ctor, ok := family[name]
	if !ok {
		return nil, core.NewUnsupportedError("loss", name, context, keys(family))
	}
	return ctor(), nil
}

func (r *Registry) Optimizer(name string) (optimizers.Config, error) {
	ctor, ok := r.optimizers[name]
	if !ok {
		return nil, core.NewUnsupportedError("optimizer", name, "", keys(r.optimizers))
	}
	return ctor(), nil
}

func (r *Registry) Splitter(name string) (split.Config, error) {
	ctor, ok := r.splitters[name]
	if !ok {
		return nil, core.NewUnsupportedError("split", name, "", keys(r.splitters))
	}
	return ctor(), nil
}

func (r *Registry) Combiner(name string) (combiners.Config, error) {
	ctor, ok := r.combiners[name]
	if !ok {
		return nil, core.NewUnsupportedError("combiner", name, "", keys(r.combiners))
	}
	return ctor(), nil
}

// InputFeature returns a fresh default-initialized input feature config for
// the feature type. The context string names the feature in error messages.
func (r *Registry) InputFeature(featureType, context string) (features.InputFeature, error) {
	ctor, ok := r.inputs[featureType]
	if !ok {
		return nil, core.NewUnsupportedError("feature", featureType, context, keys(r.inputs))
	}
	return ctor(), nil
}

func (r *Registry) OutputFeature(featureType, context string) (features.OutputFeature, error) {
	ctor, ok := r.outputs[featureType]
	if !ok {
		return nil, core.NewUnsupportedError("feature", featureType, context, keys(r.outputs))
	}
	return ctor(), nil
}

// Trainer returns a fresh default trainer for the model type.
func (r *Registry) Trainer(modelType string) (trainer.Config, error) {
	ctor, ok := r.trainers[modelType]
	if !ok {
		return nil, core.NewUnsupportedError("model", modelType, "", keys(r.trainers))
	}
	return ctor(), nil
}

// EncoderNames lists the registered encoder names for a feature type.
func (r *Registry) EncoderNames(featureType string) []string {
	return keys(r.encoders[featureType])
}

func (r *Registry) DecoderNames(featureType string) []string {
	return keys(r.decoders[featureType])
}

func (r *Registry) LossNames(featureType string) []string {
	return keys(r.losses[featureType])
}

func (r *Registry) OptimizerNames() []string { return keys(r.optimizers) }
func (r *Registry) SplitterNames() []string  { return keys(r.splitters) }
func (r *Registry) CombinerNames() []string  { return keys(r.combiners) }

// DefaultMetric returns the default validation metric for a feature type.
func (r *Registry) DefaultMetric(featureType string) string {
	return r.metrics[featureType].defaultMetric
}

// MetricNames lists the metrics computed for a feature type.
func (r *Registry) MetricNames(featureType string) []string {
	return r.metrics[featureType].names
}

// HasMetric reports whether the feature type computes the named metric.
func (r *Registry) HasMetric(featureType, metric string) bool {
	for _, m := range r.metrics[featureType].names {
		if m == metric {
			return true
		}
	}
	return false
}
