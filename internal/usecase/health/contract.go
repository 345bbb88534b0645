package health

import "github.com/medibell/triage/internal/domain"

// ArtifactVerifier rechecks that the loaded artifacts still agree with the
// schema layout.
type ArtifactVerifier interface {
	Verify() error
}

// Scorer probes the score backend.
type Scorer interface {
	Infer(scaled domain.FeatureVector) ([]float64, error)
}
