// Package errors defines all exported error sentinels for the binsort module.
//
// This is the single source of truth for error values. The tooling-facing
// packages (keyhash, internal/dataset, cmd/binsort-bench) import from here,
// ensuring errors.Is checks work across package boundaries. The core sort
// API in the root package is a total function and returns no errors.
package errors

import "errors"

// Key derivation errors
var (
	ErrUnknownAlgorithm = errors.New("binsort: unknown hash algorithm")
)

// Dataset file errors
var (
	ErrEmptyDataset     = errors.New("binsort: dataset contains no keys")
	ErrTruncatedDataset = errors.New("binsort: dataset size is not a multiple of the key width")
	ErrUnknownDist      = errors.New("binsort: unknown key distribution")
)

// Verification errors (used by the bench tooling)
var (
	ErrOrderMismatch = errors.New("binsort: sorted output diverges from reference sort")
)
