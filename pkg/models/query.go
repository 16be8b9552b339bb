package models

import (
	"errors"
	"fmt"
)

// ErrMissingRoot is returned by Validate when no root directory is set
var ErrMissingRoot = errors.New("root directory is required")

// ErrInvertedSizeRange is returned by Validate when min size exceeds max size
var ErrInvertedSizeRange = errors.New("minimum size is greater than maximum size")

// Query is the set of search criteria for one invocation.
// Empty strings and nil bounds mean the filter is not applied.
type Query struct {
	Root      string `json:"root" yaml:"root"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`           // Base name substring, case-sensitive
	Content   string `json:"content,omitempty" yaml:"content,omitempty"`     // Decoded content substring, case-sensitive
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"` // Base name suffix, taken verbatim
	MinSize   *int64 `json:"min_size,omitempty" yaml:"min_size,omitempty"`   // Inclusive lower bound in bytes
	MaxSize   *int64 `json:"max_size,omitempty" yaml:"max_size,omitempty"`   // Inclusive upper bound in bytes
}

// Bytes returns a pointer to n, for building size bounds inline
func Bytes(n int64) *int64 {
	return &n
}

// Validate checks the query for caller errors.
// The scanner never calls it: an inverted range simply matches nothing.
func (q Query) Validate() error {
	if q.Root == "" {
		return ErrMissingRoot
	}
	if q.MinSize != nil && *q.MinSize < 0 {
		return fmt.Errorf("minimum size must not be negative (got %d)", *q.MinSize)
	}
	if q.MaxSize != nil && *q.MaxSize < 0 {
		return fmt.Errorf("maximum size must not be negative (got %d)", *q.MaxSize)
	}
	if q.InvertedRange() {
		return fmt.Errorf("%w: %d > %d", ErrInvertedSizeRange, *q.MinSize, *q.MaxSize)
	}
	return nil
}

// InvertedRange reports whether both bounds are set and min > max
func (q Query) InvertedRange() bool {
	return q.MinSize != nil && q.MaxSize != nil && *q.MinSize > *q.MaxSize
}

// NeedsContent reports whether matching requires reading file content
func (q Query) NeedsContent() bool {
	return q.Content != ""
}
