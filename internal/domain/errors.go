package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrBadInput signals a request the pipeline cannot interpret.
	ErrBadInput = errors.New("bad input")
	// ErrShapeMismatch signals a vector whose length disagrees with the schema.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrArtifact signals a missing or malformed model artifact.
	ErrArtifact = errors.New("artifact load failed")
	// ErrNotFinite signals a NaN or Inf produced by scaling or scoring.
	ErrNotFinite = errors.New("non-finite value")
	// ErrUnknownBackend signals a score backend name with no registered implementation.
	ErrUnknownBackend = errors.New("unknown score backend")
)

// ShapeMismatchError wraps ErrShapeMismatch with the expected and actual lengths.
type ShapeMismatchError struct {
	What string
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d", ErrShapeMismatch.Error(), e.What, e.Want, e.Got)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// NewShapeMismatch creates a shape mismatch error for the named consumer.
func NewShapeMismatch(what string, want, got int) error {
	return &ShapeMismatchError{What: what, Want: want, Got: got}
}

// ArtifactError wraps ErrArtifact with the artifact name and source path.
type ArtifactError struct {
	Name string
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s: %s (%s): %v", ErrArtifact.Error(), e.Name, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error { return ErrArtifact }

// NewArtifactError creates an artifact error.
func NewArtifactError(name, path string, err error) error {
	return &ArtifactError{Name: name, Path: path, Err: err}
}

// NotFiniteError wraps ErrNotFinite with the pipeline stage and offending index.
type NotFiniteError struct {
	Stage string
	Index int
}

func (e *NotFiniteError) Error() string {
	return fmt.Sprintf("%s: %s produced NaN or Inf at index %d", ErrNotFinite.Error(), e.Stage, e.Index)
}

func (e *NotFiniteError) Unwrap() error { return ErrNotFinite }

// NewNotFinite creates a non-finite computation error.
func NewNotFinite(stage string, index int) error {
	return &NotFiniteError{Stage: stage, Index: index}
}
