package hecke

import "errors"

var (
	// ErrNilGroup indicates NewAlgebra was called without a group.
	ErrNilGroup = errors.New("hecke: nil group")

	// ErrAlgebraMismatch indicates an operation mixing elements of two algebras.
	ErrAlgebraMismatch = errors.New("hecke: elements belong to different algebras")

	// ErrUnknownElement indicates a name that is not an element of the group.
	ErrUnknownElement = errors.New("hecke: unknown element")

	// ErrNotPositive indicates a basis element whose diagonal coefficient is
	// not 1 or whose off-diagonal coefficients are not of strictly positive
	// degree.
	ErrNotPositive = errors.New("hecke: basis element is not positive")

	// ErrNotTriangular indicates a decomposition target whose element b_x
	// does not have coefficient 1 at H_x.
	ErrNotTriangular = errors.New("hecke: basis is not unitriangular")

	// ErrCoordinateLength indicates coordinates whose length differs from
	// the group order.
	ErrCoordinateLength = errors.New("hecke: coordinates length mismatch")
)
