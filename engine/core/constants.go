package core

// Model types.
const (
	ModelECD = "ecd"
	ModelGBM = "gbm"
)

// Feature types.
const (
	TypeAudio      = "audio"
	TypeBag        = "bag"
	TypeBinary     = "binary"
	TypeCategory   = "category"
	TypeDate       = "date"
	TypeH3         = "h3"
	TypeImage      = "image"
	TypeNumber     = "number"
	TypeSequence   = "sequence"
	TypeSet        = "set"
	TypeText       = "text"
	TypeTimeseries = "timeseries"
	TypeVector     = "vector"
)

// Config section keys shared across the resolution pipeline.
const (
	SectionInputFeatures  = "input_features"
	SectionOutputFeatures = "output_features"
	SectionCombiner       = "combiner"
	SectionTrainer        = "trainer"
	SectionPreprocessing  = "preprocessing"
	SectionDefaults       = "defaults"
	SectionHyperopt       = "hyperopt"
	SectionBackend        = "backend"
	SectionEncoder        = "encoder"
	SectionDecoder        = "decoder"
	SectionLoss           = "loss"
	SectionOptimizer      = "optimizer"
	SectionSplit          = "split"
)

// CombinedField is the pseudo output feature aggregating all outputs; it is a
// valid trainer validation_field and computes only the combined loss.
const CombinedField = "combined"

// Per-feature keys.
const (
	KeyName       = "name"
	KeyType       = "type"
	KeyColumn     = "column"
	KeyProcColumn = "proc_column"
	KeyActive     = "active"
	KeyTied       = "tied"
	KeyModelType  = "model_type"
)

// InputFeatureTypes lists every feature type accepted as a model input.
func InputFeatureTypes() []string {
	return []string{
		TypeAudio, TypeBag, TypeBinary, TypeCategory, TypeDate, TypeH3,
		TypeImage, TypeNumber, TypeSequence, TypeSet, TypeText,
		TypeTimeseries, TypeVector,
	}
}

// OutputFeatureTypes lists every feature type accepted as a model output.
func OutputFeatureTypes() []string {
	return []string{
		TypeBinary, TypeCategory, TypeNumber, TypeSequence, TypeSet,
		TypeText, TypeVector,
	}
}

// GBMInputFeatureTypes is the allowlist of input types supported by GBM models.
func GBMInputFeatureTypes() []string {
	return []string{TypeBinary, TypeCategory, TypeNumber}
}

// SequenceFeatureTypes are the types treated as sequential by combiner checks.
func SequenceFeatureTypes() []string {
	return []string{TypeSequence, TypeText, TypeSet, TypeVector}
}
