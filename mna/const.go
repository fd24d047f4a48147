// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

// Solver-wide defaults.
const (
	GMin        = 1e-12 // small junction shunt conductance, for robustness
	VTolerance  = 5e-5  // Newton convergence tolerance on junction voltage
	VThermal    = 0.026
	MaxIter     = 200     // Newton outer loop iteration cap
	pivotFloor  = 1e-300  // |pivot| below this is treated as singular
)

// VerboseLU toggles the pivot trace logged by the LU factorization.
// It is a package-level configuration switch, not a per-step control,
// matching DESIGN NOTES' "compile-time/configuration flag" framing of
// gofem's VERBOSE_LU-equivalent debug switches.
var VerboseLU = false
