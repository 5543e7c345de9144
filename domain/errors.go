package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidArtifact = errors.New("invalid artifact")
	ErrInvalidRFM      = errors.New("invalid rfm input")
)

// ModelInvocationError reports a failure inside the scaler or the cluster model.
type ModelInvocationError struct {
	Stage string // "transform" or "predict"
	Err   error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("model %s failed: %v", e.Stage, e.Err)
}

func (e *ModelInvocationError) Unwrap() error {
	return e.Err
}
