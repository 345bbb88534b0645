package domain

import "math"

// Scaler holds per-slot standardization parameters (mean and standard
// deviation), index-aligned to the feature schema. Immutable after
// construction; safe for concurrent use.
type Scaler struct {
	mean []float64
	std  []float64
}

// NewScaler creates a Scaler from parallel mean/std sequences.
func NewScaler(mean, std []float64) (Scaler, error) {
	if len(mean) == 0 || len(mean) != len(std) {
		return Scaler{}, NewShapeMismatch("scaler std", len(mean), len(std))
	}
	s := Scaler{
		mean: make([]float64, len(mean)),
		std:  make([]float64, len(std)),
	}
	copy(s.mean, mean)
	copy(s.std, std)
	return s, nil
}

// Len returns the number of slots the scaler was fitted for.
func (s Scaler) Len() int { return len(s.mean) }

// Mean returns a copy of the per-slot means.
func (s Scaler) Mean() []float64 {
	out := make([]float64, len(s.mean))
	copy(out, s.mean)
	return out
}

// Std returns a copy of the per-slot standard deviations.
func (s Scaler) Std() []float64 {
	out := make([]float64, len(s.std))
	copy(out, s.std)
	return out
}

// Apply standardizes v elementwise: (v[i]-mean[i])/std[i], with a zero std
// treated as 1. Outliers are not clamped. A length mismatch or a non-finite
// result fails; the input is never truncated or padded.
func (s Scaler) Apply(v FeatureVector) (FeatureVector, error) {
	if len(v) != len(s.mean) {
		return nil, NewShapeMismatch("scaler", len(s.mean), len(v))
	}
	out := make(FeatureVector, len(v))
	for i := range v {
		sd := s.std[i]
		if sd == 0 {
			sd = 1
		}
		out[i] = (v[i] - s.mean[i]) / sd
		if math.IsNaN(out[i]) || math.IsInf(out[i], 0) {
			return nil, NewNotFinite("scale", i)
		}
	}
	return out, nil
}
