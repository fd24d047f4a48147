// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// VoltageFunction is a voltage source whose value is f(time) instead
// of a constant, reusing gofem's fun.Func time/space function shape
// (called with a nil spatial argument, the same way
// HydroStatic.Init calls o.Sim.Gravity.F(0, nil)) as the callback type.
type VoltageFunction struct {
	A, B       int
	F          fun.Func
	CurrentNet int

	dyn   int
	value float64
}

// AddVoltageFunction wires a source between nodes a(+) and b(-) whose
// voltage is f(system.Time) at every step.
func (s *System) AddVoltageFunction(a, b int, f fun.Func) *VoltageFunction {
	s.ensureNode(a)
	s.ensureNode(b)
	dev := &VoltageFunction{A: a, B: b, F: f}
	dev.CurrentNet = s.ReserveNet()
	dev.dyn = s.ReserveDyn()
	s.Nodes[dev.CurrentNet] = NodeInfo{Kind: Current, Scale: 1, Name: io.Sf("i:V(t)(%d,%d)", a, b)}
	dev.Stamp(s)
	s.registerDevice(dev)
	return dev
}

// Stamp is identical to VoltageSource's, except b[i] is backed by a
// dynamic pool reference instead of a static value.
func (d *VoltageFunction) Stamp(s *System) {
	n := d.CurrentNet
	label := io.Sf("i:V(t)(%d,%d)", d.A, d.B)
	s.StampStatic(+1, d.A, n, label)
	s.StampStatic(-1, d.B, n, label)
	s.StampStatic(+1, n, d.A, label)
	s.StampStatic(-1, n, d.B, label)
	s.AddDynB(n, d.dyn, label)
}

// UpdateDynamic recomputes f(system.Time) and stores it, seeding the
// very first Newton iteration of every step with the current sample.
// Update, called after a step solves, refreshes it again for the next
// step via the same recompute-and-store logic.
func (d *VoltageFunction) UpdateDynamic(s *System) {
	d.value = d.F.F(s.Time, nil)
	s.SetDyn(d.dyn, d.value)
}

// Update recomputes f(system.Time) and stores it.
func (d *VoltageFunction) Update(s *System) error {
	d.UpdateDynamic(s)
	return nil
}

func (d *VoltageFunction) snapshot() any { return d.value }
func (d *VoltageFunction) restore(v any) { d.value = v.(float64) }
