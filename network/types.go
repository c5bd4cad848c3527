// SPDX-License-Identifier: MIT

// Package network: domain types shared across matrix, conversion and
// collection files. Errors live in errors.go per the package layout
// conventions.

package network

// Variant identifies the representation a Matrix is expressed in. The
// set is closed: conversion dispatch is an explicit table keyed by
// (source, target) Variant, never a runtime type test.
type Variant int

const (
	// Scattering parameters relate reflected/transmitted wave amplitudes
	// to incident ones; the representation Touchstone files carry.
	Scattering Variant = iota

	// Transfer parameters are the cascade-friendly representation:
	// cascading two networks is ordinary multiplication of their
	// T-matrices.
	Transfer
)

// String returns the conventional single-letter name of the variant.
func (v Variant) String() string {
	switch v {
	case Scattering:
		return "S"
	case Transfer:
		return "T"
	default:
		return "unknown"
	}
}
