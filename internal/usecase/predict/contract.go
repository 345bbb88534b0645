package predict

import "github.com/medibell/triage/internal/domain"

// Extractor turns free text into a raw feature vector.
type Extractor interface {
	Extract(text string) domain.FeatureVector
}

// Backend scores a scaled feature vector into per-label logits.
type Backend interface {
	Name() string
	Infer(scaled domain.FeatureVector) ([]float64, error)
}
