// Package artifact loads the immutable model artifacts (scaler parameters
// and the label set) from disk. Loading happens once at startup; the loaded
// bundle is shared read-only across all requests.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/medibell/triage/internal/domain"
)

// Bundle groups the per-process immutable artifacts.
type Bundle struct {
	Schema *domain.Schema
	Scaler domain.Scaler
	Labels domain.LabelSet
}

// Verify rechecks the cross-artifact invariants after load. Used by the
// health endpoint.
func (b *Bundle) Verify() error {
	if b.Schema == nil {
		return domain.NewArtifactError("schema", "", fmt.Errorf("not loaded"))
	}
	if b.Scaler.Len() != b.Schema.Len() {
		return domain.NewShapeMismatch("scaler", b.Schema.Len(), b.Scaler.Len())
	}
	if b.Labels.Len() == 0 {
		return domain.NewArtifactError("labels", "", fmt.Errorf("empty label set"))
	}
	return nil
}

// scalerFile mirrors the on-disk scaler format produced by the training
// pipeline: parallel mean/std sequences, optionally annotated with the
// feature names they were fitted against.
type scalerFile struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Std          []float64 `json:"std"`
}

// Load reads and validates all artifacts against the schema. Any missing or
// malformed artifact fails with an ArtifactError; a process serving requests
// must treat that as fatal.
func Load(schema *domain.Schema, scalerPath, labelsPath string) (*Bundle, error) {
	scaler, err := LoadScaler(schema, scalerPath)
	if err != nil {
		return nil, err
	}
	labels, err := LoadLabels(labelsPath)
	if err != nil {
		return nil, err
	}
	return &Bundle{Schema: schema, Scaler: scaler, Labels: labels}, nil
}

// LoadScaler reads scaler.json and checks it fits the schema layout.
func LoadScaler(schema *domain.Schema, path string) (domain.Scaler, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return domain.Scaler{}, domain.NewArtifactError("scaler", path, err)
	}

	var f scalerFile
	if err := json.Unmarshal(data, &f); err != nil {
		return domain.Scaler{}, domain.NewArtifactError("scaler", path, err)
	}

	if len(f.Mean) != schema.Len() || len(f.Std) != schema.Len() {
		return domain.Scaler{}, domain.NewArtifactError("scaler", path,
			fmt.Errorf("mean/std length %d/%d, schema has %d slots", len(f.Mean), len(f.Std), schema.Len()))
	}

	// When the file names its columns, they must agree with the schema:
	// a silently reordered artifact would scale every slot wrong.
	if len(f.FeatureNames) > 0 {
		names := schema.Names()
		if len(f.FeatureNames) != len(names) {
			return domain.Scaler{}, domain.NewArtifactError("scaler", path,
				fmt.Errorf("%d feature names, schema has %d slots", len(f.FeatureNames), len(names)))
		}
		for i, n := range f.FeatureNames {
			if n != names[i] {
				return domain.Scaler{}, domain.NewArtifactError("scaler", path,
					fmt.Errorf("feature %d is %q, schema expects %q", i, n, names[i]))
			}
		}
	}

	scaler, err := domain.NewScaler(f.Mean, f.Std)
	if err != nil {
		return domain.Scaler{}, domain.NewArtifactError("scaler", path, err)
	}
	return scaler, nil
}

// LoadLabels reads labels.json: an ordered array of label names where
// position is the label index.
func LoadLabels(path string) (domain.LabelSet, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return domain.LabelSet{}, domain.NewArtifactError("labels", path, err)
	}

	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return domain.LabelSet{}, domain.NewArtifactError("labels", path, err)
	}

	ls, err := domain.NewLabelSet(labels)
	if err != nil {
		return domain.LabelSet{}, domain.NewArtifactError("labels", path, err)
	}
	return ls, nil
}
