package model

import (
	"math"

	"github.com/medibell/triage/internal/domain"
)

// HashBackendName selects the deterministic placeholder backend.
const HashBackendName = "hash"

// Multiplicative mixing constants. Fixed forever: the weight matrix they
// generate is part of the backend's compatibility contract.
const (
	hashMulA = 374761393
	hashMulB = 668265263
	hashAdd  = 3266489917
	hashMulC = 2654435761
)

func init() {
	Register(HashBackendName, func(featureCount, labelCount int) (Backend, error) {
		return NewHash(featureCount, labelCount), nil
	})
}

// Hash is a deterministic placeholder scorer standing in for a trained
// model. Its pseudo-weights come from an integer mixing function of the
// (label, feature) position, so identical inputs produce bit-identical
// logits across runs and processes. It has no learned structure and is not
// expected to rank conditions in a medically meaningful way.
type Hash struct {
	featureCount int
	labelCount   int
}

// NewHash creates the placeholder backend for the given dimensions.
func NewHash(featureCount, labelCount int) *Hash {
	return &Hash{featureCount: featureCount, labelCount: labelCount}
}

// Name implements Backend.
func (h *Hash) Name() string { return HashBackendName }

// Infer computes logit[i] = sum_j weight(i,j)*scaled[j] + bias(i).
// Non-finite entries in scaled are treated as 0 rather than failing.
func (h *Hash) Infer(scaled domain.FeatureVector) ([]float64, error) {
	if len(scaled) != h.featureCount {
		return nil, domain.NewShapeMismatch("score backend", h.featureCount, len(scaled))
	}

	logits := make([]float64, h.labelCount)
	for i := 0; i < h.labelCount; i++ {
		sum := Bias(i)
		for j, v := range scaled {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			sum += Weight(i, j) * v
		}
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			return nil, domain.NewNotFinite("score", i)
		}
		logits[i] = sum
	}
	return logits, nil
}

// Weight derives the pseudo-weight for (label i, feature j): mix the 1-based
// positions with two odd multipliers via XOR, fold in two more constants,
// reduce modulo 100000 and map linearly into [-0.5, 0.5).
func Weight(i, j int) float64 {
	h := uint64(i+1)*hashMulA ^ uint64(j+1)*hashMulB
	h = (h + hashAdd) * hashMulC
	return float64(h%100000)/100000.0 - 0.5
}

// Bias derives the per-label bias: ((i*37) mod 7 - 3) * 0.02.
func Bias(i int) float64 {
	return float64((i*37)%7-3) * 0.02
}
