// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Resistor is a linear, memoryless two-terminal device: it only ever
// stamps once, at construction.
type Resistor struct {
	A, B int
	R    float64
}

// AddResistor wires a resistor of resistance R>0 between nodes a and
// b and stamps its conductance into the system.
func (s *System) AddResistor(a, b int, r float64) *Resistor {
	if r <= 0 {
		chk.Panic("mna: AddResistor: resistance must be positive, got %g", r)
	}
	s.ensureNode(a)
	s.ensureNode(b)
	dev := &Resistor{A: a, B: b, R: r}
	dev.Stamp(s)
	s.registerDevice(dev)
	return dev
}

// Stamp adds the symmetric conductance pattern [[+G,-G],[-G,+G]].
func (d *Resistor) Stamp(s *System) {
	g := 1 / d.R
	label := io.Sf("R(%d,%d)=%gΩ", d.A, d.B, d.R)
	s.StampStatic(+g, d.A, d.A, label)
	s.StampStatic(-g, d.A, d.B, label)
	s.StampStatic(-g, d.B, d.A, label)
	s.StampStatic(+g, d.B, d.B, label)
}
