// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Capacitor is the trapezoidal companion model: the matrix
// algebraically implements the trapezoidal rule via one internal net
// and one dynamic pool slot, so the driver never integrates anything
// itself — it just copies the state variable forward every step.
type Capacitor struct {
	A, B int
	C    float64

	net      int // internal net s
	dyn      int // pool slot backing b[s]
	stateVar float64
	voltage  float64
}

// AddCapacitor wires a capacitor of capacitance C>0 between nodes a
// and b.
func (s *System) AddCapacitor(a, b int, c float64) *Capacitor {
	if c <= 0 {
		chk.Panic("mna: AddCapacitor: capacitance must be positive, got %g", c)
	}
	s.ensureNode(a)
	s.ensureNode(b)
	dev := &Capacitor{A: a, B: b, C: c}
	dev.net = s.ReserveNet()
	dev.dyn = s.ReserveDyn()
	s.Nodes[dev.net] = NodeInfo{Kind: Voltage, Scale: 1 / c, Name: io.Sf("s:C(%d,%d)", a, b)}
	dev.Stamp(s)
	s.registerDevice(dev)
	return dev
}

// Stamp realizes the 3x3 trapezoidal block.
func (d *Capacitor) Stamp(s *System) {
	g := 2 * d.C
	a, b, n := d.A, d.B, d.net
	label := io.Sf("C(%d,%d)=%gF", a, b, d.C)

	s.StampTimed(-g, a, a, label)
	s.StampTimed(+g, a, b, label)
	s.StampTimed(+1, a, n, label)

	s.StampTimed(+g, b, a, label)
	s.StampTimed(-g, b, b, label)
	s.StampTimed(-1, b, n, label)

	s.StampStatic(+2*g, n, a, label)
	s.StampStatic(-2*g, n, b, label)
	s.StampStatic(-1, n, n, label)

	s.AddDynB(n, d.dyn, label)
}

// UpdateDynamic seeds b[s]'s dynamic reference from the carried state
// variable, so the very first Newton iteration of a step sees it.
func (d *Capacitor) UpdateDynamic(s *System) {
	s.SetDyn(d.dyn, d.stateVar)
}

// Update commits the solved state after a successful step: the raw
// trapezoidal state variable is copied forward, and b[s].lu is
// overwritten with C*voltage purely for display (it no longer
// participates in any further computation this step).
func (d *Capacitor) Update(s *System) error {
	d.stateVar = s.B[d.net].LU
	d.voltage = s.Read(d.A) - s.Read(d.B)
	s.B[d.net].LU = d.C * d.voltage
	d.UpdateDynamic(s)
	return nil
}

// ScaleTime rescales the current-proportional part of the state
// variable when Δt changes; the voltage-proportional part (q) is
// left untouched. ratioNewOverOld is Δt_new/Δt_old: halving Δt passes
// 0.5, matching state_var ← q + (state_var-q)·0.5.
func (d *Capacitor) ScaleTime(s *System, ratioNewOverOld float64) {
	q := 2 * d.C * d.voltage
	d.stateVar = q + (d.stateVar-q)*ratioNewOverOld
	d.UpdateDynamic(s)
}

func (d *Capacitor) snapshot() any {
	return [2]float64{d.stateVar, d.voltage}
}

func (d *Capacitor) restore(v any) {
	a := v.([2]float64)
	d.stateVar, d.voltage = a[0], a[1]
}
