// Package catalog builds an author/magazine/article graph from a YAML document.
// Loading either registers every article in the document or none of them.
package catalog

import "errors"

// Sentinel errors for catalog loading.
var (
	// ErrDuplicateName indicates that two authors or two magazines share a name.
	// Names are how articles reference them, so they must be unique within a document.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrInvalidDocument indicates that the document could not be decoded.
	ErrInvalidDocument = errors.New("invalid catalog document")
)
