// SPDX-License-Identifier: MIT
// Package network: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// network package. All operations return these sentinels (optionally
// wrapped with context via fmt.Errorf("...: %w", ErrX)) and tests check
// them via errors.Is. Panics are reserved for programmer errors.

package network

import "errors"

var (
	// ErrInvalidPortCount is returned when a matrix or collection is
	// requested with a non-positive port count.
	ErrInvalidPortCount = errors.New("network: port count must be positive")

	// ErrIndexOutOfRange indicates a (destination, source) port index
	// outside [1, Ports()]. Public indexers (At/Set) MUST return this,
	// not panic.
	ErrIndexOutOfRange = errors.New("network: port index out of range")

	// ErrPortCountMismatch indicates operands whose port counts differ
	// where identical counts are required (cascade, de-embed, collection
	// insertion).
	ErrPortCountMismatch = errors.New("network: port count mismatch")

	// ErrVariantMismatch indicates a matrix whose representation variant
	// differs from the collection it is being inserted into.
	ErrVariantMismatch = errors.New("network: parameter variant mismatch")

	// ErrUnsupportedConversion marks a representation conversion with no
	// implemented closed form: 1-port and N>2-port S↔T.
	ErrUnsupportedConversion = errors.New("network: unsupported representation conversion")

	// ErrSingularMatrix is returned when inversion meets a zero pivot or
	// a conversion divides by a zero transmission term (S21/T22 == 0).
	ErrSingularMatrix = errors.New("network: singular matrix")

	// ErrNoOperands is returned by Cascade when called with no matrices.
	ErrNoOperands = errors.New("network: at least one matrix required")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("network: nil matrix")

	// ErrFrequencyNotFound indicates a Collection lookup for a frequency
	// that has no entry.
	ErrFrequencyNotFound = errors.New("network: frequency not found")

	// ErrDuplicateFrequency is returned by Collection.Add when the
	// frequency already has an entry (use Set to replace).
	ErrDuplicateFrequency = errors.New("network: frequency already present")

	// ErrEmptyCollection indicates a lookup (Nearest) on a Collection
	// with no entries.
	ErrEmptyCollection = errors.New("network: collection is empty")
)
