// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import "errors"

// Step-level failures. These are returned, never panicked: a caller
// may legitimately retry ErrNonConvergence with a smaller Δt. Invalid
// netlist construction (bad pin index, non-positive R/C, unknown BJT
// kind) panics instead, since the caller has no sensible retry.
var (
	// ErrSingular is returned when LU factorization hits a pivot
	// below the numerical floor: the matrix is structurally singular
	// for the current netlist (e.g. two unequal ideal voltage sources
	// in parallel).
	ErrSingular = errors.New("mna: singular matrix")

	// ErrNonConvergence is returned when the Newton outer loop does
	// not converge within MaxIter iterations.
	ErrNonConvergence = errors.New("mna: Newton iteration did not converge")

	// ErrBadTimeStep is returned when Step is called with Δt <= 0.
	ErrBadTimeStep = errors.New("mna: time step must be positive")
)
