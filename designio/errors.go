// SPDX-License-Identifier: MIT
// Package: cablekit/designio
//
// errors.go — sentinel errors of the document layer. Construction faults
// raised while rebuilding a design (invalid-argument, numeric-domain) are
// not re-wrapped here; they surface from the validation pipeline as-is.

package designio

import "errors"

var (
	// ErrBadDocument marks a document that does not decode into the
	// expected shape, or decodes with a structural gap (missing field,
	// empty layer list, unresolvable "inherit").
	ErrBadDocument = errors.New("designio: malformed document")

	// ErrUnknownMaterial marks a material name absent from the built-in
	// library.
	ErrUnknownMaterial = errors.New("designio: unknown material")

	// ErrBadValue marks a field value of an unsupported raw form.
	ErrBadValue = errors.New("designio: unsupported value form")
)
