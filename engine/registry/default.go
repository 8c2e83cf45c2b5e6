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

// Default builds a registry with every built-in schema component. Callers that
// want to extend the component set register on top of the returned registry
// before handing it to the config loader.
func Default() *Registry {
	r := New()
	registerEncoders(r)
	registerDecoders(r)
	registerLosses(r)
	registerSections(r)
	registerFeatures(r)
	registerMetrics(r)
	return r
}

func registerEncoders(r *Registry) {
	r.RegisterEncoder(core.TypeBinary, "passthrough", func() encoders.Config { return encoders.NewBinaryPassthrough() })
	r.RegisterEncoder(core.TypeBinary, "dense", func() encoders.Config { return encoders.NewDense() })

	r.RegisterEncoder(core.TypeCategory, "dense", func() encoders.Config { return encoders.NewCategoricalEmbed() })
	r.RegisterEncoder(core.TypeCategory, "sparse", func() encoders.Config { return encoders.NewCategoricalSparse() })
	r.RegisterEncoder(core.TypeCategory, "passthrough", func() encoders.Config { return encoders.NewPassthrough() })

	r.RegisterEncoder(core.TypeNumber, "passthrough", func() encoders.Config { return encoders.NewPassthrough() })
	r.RegisterEncoder(core.TypeNumber, "dense", func() encoders.Config { return encoders.NewDense() })

	r.RegisterEncoder(core.TypeVector, "dense", func() encoders.Config { return encoders.NewDense() })
	r.RegisterEncoder(core.TypeVector, "passthrough", func() encoders.Config { return encoders.NewPassthrough() })

	r.RegisterEncoder(core.TypeSet, "embed", func() encoders.Config { return encoders.NewSetEmbed() })
	r.RegisterEncoder(core.TypeBag, "embed", func() encoders.Config { return encoders.NewBagEmbed() })

	for _, t := range []string{core.TypeSequence, core.TypeText, core.TypeTimeseries, core.TypeAudio} {
		r.RegisterEncoder(t, "passthrough", func() encoders.Config { return encoders.NewSequencePassthrough() })
		r.RegisterEncoder(t, "embed", func() encoders.Config { return encoders.NewSequenceEmbed() })
		r.RegisterEncoder(t, "parallel_cnn", func() encoders.Config { return encoders.NewParallelCNN() })
		r.RegisterEncoder(t, "stacked_cnn", func() encoders.Config { return encoders.NewStackedCNN() })
		r.RegisterEncoder(t, "rnn", func() encoders.Config { return encoders.NewRNN() })
		r.RegisterEncoder(t, "cnnrnn", func() encoders.Config { return encoders.NewCNNRNN() })
		r.RegisterEncoder(t, "transformer", func() encoders.Config { return encoders.NewSequenceTransformer() })
	}

	r.RegisterEncoder(core.TypeImage, "stacked_cnn", func() encoders.Config { return encoders.NewImageStackedCNN() })
	r.RegisterEncoder(core.TypeImage, "resnet", func() encoders.Config { return encoders.NewResNet() })
	r.RegisterEncoder(core.TypeImage, "vit", func() encoders.Config { return encoders.NewViT() })

	r.RegisterEncoder(core.TypeDate, "embed", func() encoders.Config { return encoders.NewDateEmbed() })
	r.RegisterEncoder(core.TypeDate, "wave", func() encoders.Config { return encoders.NewDateWave() })

	r.RegisterEncoder(core.TypeH3, "embed", func() encoders.Config { return encoders.NewH3Embed() })
	r.RegisterEncoder(core.TypeH3, "weighted_sum", func() encoders.Config { return encoders.NewH3WeightedSum() })
}

func registerDecoders(r *Registry) {
	r.RegisterDecoder(core.TypeBinary, "regressor", func() decoders.Config { return decoders.NewRegressor() })
	r.RegisterDecoder(core.TypeNumber, "regressor", func() decoders.Config { return decoders.NewRegressor() })
	r.RegisterDecoder(core.TypeCategory, "classifier", func() decoders.Config { return decoders.NewClassifier() })
	r.RegisterDecoder(core.TypeSet, "classifier", func() decoders.Config { return decoders.NewClassifier() })
	r.RegisterDecoder(core.TypeVector, "projector", func() decoders.Config { return decoders.NewProjector() })
	for _, t := range []string{core.TypeSequence, core.TypeText} {
		r.RegisterDecoder(t, "generator", func() decoders.Config { return decoders.NewGenerator() })
		r.RegisterDecoder(t, "tagger", func() decoders.Config { return decoders.NewTagger() })
	}
}

func registerLosses(r *Registry) {
	r.RegisterLoss(core.TypeBinary, "binary_weighted_cross_entropy", func() lossfns.Config { return lossfns.NewBinaryWeightedCrossEntropy() })
	r.RegisterLoss(core.TypeCategory, "softmax_cross_entropy", func() lossfns.Config { return lossfns.NewSoftmaxCrossEntropy() })
	r.RegisterLoss(core.TypeSet, "sigmoid_cross_entropy", func() lossfns.Config { return lossfns.NewSigmoidCrossEntropy() })
	for _, t := range []string{core.TypeSequence, core.TypeText} {
		r.RegisterLoss(t, "sequence_softmax_cross_entropy", func() lossfns.Config { return lossfns.NewSequenceSoftmaxCrossEntropy() })
	}
	for _, t := range []string{core.TypeNumber, core.TypeVector} {
		r.RegisterLoss(t, "mean_squared_error", func() lossfns.Config { return lossfns.NewMeanSquaredError() })
		r.RegisterLoss(t, "mean_absolute_error", func() lossfns.Config { return lossfns.NewMeanAbsoluteError() })
		r.RegisterLoss(t, "huber", func() lossfns.Config { return lossfns.NewHuber() })
	}
	r.RegisterLoss(core.TypeNumber, "root_mean_squared_error", func() lossfns.Config { return lossfns.NewRootMeanSquaredError() })
	r.RegisterLoss(core.TypeNumber, "root_mean_squared_percentage_error", func() lossfns.Config { return lossfns.NewRootMeanSquaredPercentageError() })
}

func registerSections(r *Registry) {
	r.RegisterOptimizer("sgd", func() optimizers.Config { return optimizers.NewSGD() })
	r.RegisterOptimizer("adam", func() optimizers.Config { return optimizers.NewAdam() })
	r.RegisterOptimizer("adamw", func() optimizers.Config { return optimizers.NewAdamW() })
	r.RegisterOptimizer("adagrad", func() optimizers.Config { return optimizers.NewAdagrad() })
	r.RegisterOptimizer("adadelta", func() optimizers.Config { return optimizers.NewAdadelta() })
	r.RegisterOptimizer("rmsprop", func() optimizers.Config { return optimizers.NewRMSProp() })

	r.RegisterSplitter("random", func() split.Config { return split.NewRandom() })
	r.RegisterSplitter("fixed", func() split.Config { return split.NewFixed() })
	r.RegisterSplitter("stratify", func() split.Config { return split.NewStratify() })
	r.RegisterSplitter("datetime", func() split.Config { return split.NewDateTime() })
	r.RegisterSplitter("hash", func() split.Config { return split.NewHash() })

	r.RegisterCombiner("concat", func() combiners.Config { return combiners.NewConcat() })
	r.RegisterCombiner("sequence_concat", func() combiners.Config { return combiners.NewSequenceConcat() })
	r.RegisterCombiner("sequence", func() combiners.Config { return combiners.NewSequence() })
	r.RegisterCombiner("comparator", func() combiners.Config { return combiners.NewComparator() })
	r.RegisterCombiner("tabnet", func() combiners.Config { return combiners.NewTabNet() })
	r.RegisterCombiner("transformer", func() combiners.Config { return combiners.NewTransformer() })

	r.RegisterTrainer(core.ModelECD, func() trainer.Config { return trainer.NewECDTrainer() })
	r.RegisterTrainer(core.ModelGBM, func() trainer.Config { return trainer.NewGBMTrainer() })
}

func registerFeatures(r *Registry) {
	r.RegisterInputFeature(core.TypeAudio, func() features.InputFeature { return features.NewAudioInput() })
	r.RegisterInputFeature(core.TypeBag, func() features.InputFeature { return features.NewBagInput() })
	r.RegisterInputFeature(core.TypeBinary, func() features.InputFeature { return features.NewBinaryInput() })
	r.RegisterInputFeature(core.TypeCategory, func() features.InputFeature { return features.NewCategoryInput() })
	r.RegisterInputFeature(core.TypeDate, func() features.InputFeature { return features.NewDateInput() })
	r.RegisterInputFeature(core.TypeH3, func() features.InputFeature { return features.NewH3Input() })
	r.RegisterInputFeature(core.TypeImage, func() features.InputFeature { return features.NewImageInput() })
	r.RegisterInputFeature(core.TypeNumber, func() features.InputFeature { return features.NewNumberInput() })
	r.RegisterInputFeature(core.TypeSequence, func() features.InputFeature { return features.NewSequenceInput() })
	r.RegisterInputFeature(core.TypeSet, func() features.InputFeature { return features.NewSetInput() })
	r.RegisterInputFeature(core.TypeText, func() features.InputFeature { return features.NewTextInput() })
	r.RegisterInputFeature(core.TypeTimeseries, func() features.InputFeature { return features.NewTimeseriesInput() })
	r.RegisterInputFeature(core.TypeVector, func() features.InputFeature { return features.NewVectorInput() })

	r.RegisterOutputFeature(core.TypeBinary, func() features.OutputFeature { return features.NewBinaryOutput() })
	r.RegisterOutputFeature(core.TypeCategory, func() features.OutputFeature { return features.NewCategoryOutput() })
	r.RegisterOutputFeature(core.TypeNumber, func() features.OutputFeature { return features.NewNumberOutput() })
	r.RegisterOutputFeature(core.TypeSequence, func() features.OutputFeature { return features.NewSequenceOutput() })
	r.RegisterOutputFeature(core.TypeSet, func() features.OutputFeature { return features.NewSetOutput() })
	r.RegisterOutputFeature(core.TypeText, func() features.OutputFeature { return features.NewTextOutput() })
	r.RegisterOutputFeature(core.TypeVector, func() features.OutputFeature { return features.NewVectorOutput() })
}

func registerMetrics(r *Registry) {
	r.RegisterMetrics(core.TypeBinary, "roc_auc",
		[]string{"loss", "accuracy", "roc_auc", "precision", "recall", "specificity"})
	r.RegisterMetrics(core.TypeCategory, "accuracy",
		[]string{"loss", "accuracy", "hits_at_k"})
	r.RegisterMetrics(core.TypeNumber, "mean_squared_error",
		[]string{"loss", "mean_squared_error", "mean_absolute_error", "root_mean_squared_error",
			"root_mean_squared_percentage_error", "r2"})
	r.RegisterMetrics(core.TypeText, "loss",
		[]string{"loss", "token_accuracy", "sequence_accuracy", "last_accuracy", "edit_distance", "perplexity"})
	r.RegisterMetrics(core.TypeSequence, "loss",
		[]string{"loss", "token_accuracy", "sequence_accuracy", "last_accuracy", "edit_distance", "perplexity"})
	r.RegisterMetrics(core.TypeSet, "jaccard",
		[]string{"loss", "jaccard"})
	r.RegisterMetrics(core.TypeVector, "mean_squared_error",
		[]string{"loss", "mean_squared_error", "mean_absolute_error", "r2"})
	// "combined" is the pseudo-feature aggregating all outputs.
	r.RegisterMetrics(core.CombinedField, "loss", []string{"loss"})
}
