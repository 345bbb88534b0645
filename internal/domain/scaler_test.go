package domain

import (
	"errors"
	"testing"
)

func TestScaler_Apply_Elementwise(t *testing.T) {
	s, err := NewScaler([]float64{10, 0, -5}, []float64{2, 4, 10})
	if err != nil {
		t.Fatalf("NewScaler: %v", err)
	}

	got, err := s.Apply(FeatureVector{12, 2, 5})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := []float64{1, 0.5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScaler_Apply_ZeroStdTreatedAsOne(t *testing.T) {
	s, err := NewScaler([]float64{5, 5}, []float64{0, 2})
	if err != nil {
		t.Fatalf("NewScaler: %v", err)
	}

	got, err := s.Apply(FeatureVector{8, 8})
	if err != nil {
		t.Fatalf("Apply with zero std must not fail: %v", err)
	}
	if got[0] != 3 {
		t.Errorf("zero-std slot: got %v, want 3", got[0])
	}
	if got[1] != 1.5 {
		t.Errorf("regular slot: got %v, want 1.5", got[1])
	}
}

func TestScaler_Apply_ShapeMismatch(t *testing.T) {
	s, err := NewScaler([]float64{1, 2, 3}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("NewScaler: %v", err)
	}

	_, err = s.Apply(FeatureVector{1, 2})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}

	var sme *ShapeMismatchError
	if !errors.As(err, &sme) {
		t.Fatalf("expected *ShapeMismatchError, got %T", err)
	}
	if sme.Want != 3 || sme.Got != 2 {
		t.Errorf("shape detail: got want=%d got=%d, expected want=3 got=2", sme.Want, sme.Got)
	}
}

func TestScaler_Apply_NoClamping(t *testing.T) {
	s, err := NewScaler([]float64{0}, []float64{1})
	if err != nil {
		t.Fatalf("NewScaler: %v", err)
	}

	got, err := s.Apply(FeatureVector{1e9})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got[0] != 1e9 {
		t.Errorf("outlier must propagate unmodified: got %v", got[0])
	}
}

func TestNewScaler_LengthMismatch(t *testing.T) {
	if _, err := NewScaler([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
	if _, err := NewScaler(nil, nil); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch for empty scaler, got %v", err)
	}
}
