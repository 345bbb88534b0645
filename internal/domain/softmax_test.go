package domain

import (
	"errors"
	"math"
	"testing"
)

func TestSoftmax_SumsToOne(t *testing.T) {
	tests := []struct {
		name   string
		logits []float64
	}{
		{"mixed", []float64{1.5, -2.3, 0.7, 0}},
		{"all negative", []float64{-5, -6, -7}},
		{"single", []float64{42}},
		{"large values", []float64{1000, 1001, 999}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			probs, err := Softmax(tc.logits)
			if err != nil {
				t.Fatalf("Softmax: %v", err)
			}
			var sum float64
			for i, p := range probs {
				if p < 0 {
					t.Errorf("probability %d is negative: %v", i, p)
				}
				sum += p
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("sum = %v, want 1 within 1e-9", sum)
			}
		})
	}
}

func TestSoftmax_UniformForEqualLogits(t *testing.T) {
	probs, err := Softmax([]float64{1, 1, 1})
	if err != nil {
		t.Fatalf("Softmax: %v", err)
	}

	third := 1.0 / 3.0
	for i, p := range probs {
		if math.Abs(p-third) > 1e-12 {
			t.Errorf("probability %d = %v, want 1/3", i, p)
		}
	}
}

func TestSoftmax_StableForExtremeLogits(t *testing.T) {
	// Without the max shift, exp(710) overflows to +Inf.
	probs, err := Softmax([]float64{710, 709})
	if err != nil {
		t.Fatalf("Softmax: %v", err)
	}
	for i, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			t.Fatalf("probability %d is not finite: %v", i, p)
		}
	}
	if probs[0] <= probs[1] {
		t.Errorf("larger logit must get larger probability: %v", probs)
	}
}

func TestSoftmax_Errors(t *testing.T) {
	if _, err := Softmax(nil); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("empty logits: expected ErrShapeMismatch, got %v", err)
	}
	if _, err := Softmax([]float64{1, math.NaN()}); !errors.Is(err, ErrNotFinite) {
		t.Errorf("NaN logit: expected ErrNotFinite, got %v", err)
	}
	if _, err := Softmax([]float64{1, math.Inf(1)}); !errors.Is(err, ErrNotFinite) {
		t.Errorf("Inf logit: expected ErrNotFinite, got %v", err)
	}
}
