// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors and the typed errors that carry their context.
// Policy:
//   - Every typed error matches exactly one sentinel through Is, so callers may use
//     errors.Is for the kind and errors.As for the fields.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrIndexOutOfRange indicates a vertex index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrGraphFull indicates AddLabel was called with every label slot already assigned.
	ErrGraphFull = errors.New("core: graph is full")

	// ErrNoSuchLabel indicates FindNode found no vertex carrying the label.
	ErrNoSuchLabel = errors.New("core: no vertex with label")

	// ErrConfiguration indicates invalid construction arguments.
	ErrConfiguration = errors.New("core: invalid configuration")

	// ErrNegativeWeight indicates a negative weight under WithNonNegativeWeights.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// IndexOutOfRangeError reports a vertex index outside [Low, High).
type IndexOutOfRangeError struct {
	Low    int
	High   int
	Actual int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("core: expected vertex index in range %d to %d, actual value was %d",
		e.Low, e.High, e.Actual)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }

// GraphFullError reports that all Size label slots are in use.
type GraphFullError struct {
	Size int
}

func (e *GraphFullError) Error() string {
	return fmt.Sprintf("core: no more label data may be added: all %d vertices are in use", e.Size)
}

// Is reports whether target is ErrGraphFull.
func (e *GraphFullError) Is(target error) bool { return target == ErrGraphFull }

// NoSuchLabelError reports a label that is not assigned to any vertex.
type NoSuchLabelError struct {
	Label any
}

func (e *NoSuchLabelError) Error() string {
	return fmt.Sprintf("core: label %v not assigned to any vertex in the graph", e.Label)
}

// Is reports whether target is ErrNoSuchLabel.
func (e *NoSuchLabelError) Is(target error) bool { return target == ErrNoSuchLabel }

// ConfigurationError reports invalid constructor arguments.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "core: invalid configuration: " + e.Reason
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func labelMismatch(got, want int) string {
	return fmt.Sprintf("%d labels supplied for %d vertices", got, want)
}
