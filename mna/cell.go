// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mna implements a Modified Nodal Analysis circuit solver: a
// sparse-by-construction, dense-by-storage linear system built by
// "stamping" device contributions, solved with LU factorization and,
// for non-linear devices, an outer Newton-Raphson loop.
package mna

import "github.com/cpmech/gosl/io"

// Cell holds one entry of the system matrix A or the right-hand-side
// vector b. Its static and time-scaled contributions (g, gTimed) and
// its dynamic references (dynRefs) are accumulated once during
// stamping and must not change afterwards; only lu is touched by the
// solver, once per Newton iteration.
type Cell struct {
	G       float64 // accumulated static contribution
	GTimed  float64 // accumulated per-unit-time contribution
	DynRefs []int   // indices into the system's dynamic-variable pool
	PreLU   float64 // g + gTimed*stepScale, refreshed on time-step change
	LU      float64 // working value; rebuilt by Load every iteration (b's holds the solution after a solve)
	Label   string  // accumulated debug text
}

// initLU computes preLU from the static and time-scaled contributions.
// Called once per time-step (i.e. whenever Δt changes), not per
// Newton iteration.
func (c *Cell) initLU(stepScale float64) {
	c.PreLU = c.G + c.GTimed*stepScale
}

// updatePre refreshes lu from preLU plus the cell's dynamic
// references. Called once per Newton iteration.
func (c *Cell) updatePre(pool []float64) {
	v := c.PreLU
	for _, i := range c.DynRefs {
		v += pool[i]
	}
	c.LU = v
}

// addLabel appends text to the cell's debug label, matching gofem's
// practice of building human-readable names incrementally.
func (c *Cell) addLabel(text string) {
	if text == "" {
		return
	}
	if c.Label == "" {
		c.Label = text
		return
	}
	c.Label = io.Sf("%s, %s", c.Label, text)
}
