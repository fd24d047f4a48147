// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Inductor is the trapezoidal companion model dual to Capacitor.
// Unlike the capacitor, the inductor's internal net carries its
// branch current directly rather than an abstracted charge-like
// state, so its companion model is a series equivalent resistance
// Req=2L/Δt plus a history voltage term, recomputed from the
// device's own (current, voltage) pair every step.
type Inductor struct {
	A, B int
	L    float64

	net      int // internal net carrying the branch current
	dyn      int // pool slot backing b[net]
	current0 float64
	voltage0 float64
}

// AddInductor wires an inductor of inductance L>0 between nodes a and b.
func (s *System) AddInductor(a, b int, l float64) *Inductor {
	if l <= 0 {
		chk.Panic("mna: AddInductor: inductance must be positive, got %g", l)
	}
	s.ensureNode(a)
	s.ensureNode(b)
	dev := &Inductor{A: a, B: b, L: l}
	dev.net = s.ReserveNet()
	dev.dyn = s.ReserveDyn()
	s.Nodes[dev.net] = NodeInfo{Kind: Current, Scale: 1, Name: io.Sf("i:L(%d,%d)", a, b)}
	dev.Stamp(s)
	s.registerDevice(dev)
	return dev
}

// Stamp couples the branch current into KCL at a/b and realizes the
// branch equation v_a-v_b-Req*i = b[net], with Req carried in gTimed.
func (d *Inductor) Stamp(s *System) {
	n := d.net
	label := io.Sf("L(%d,%d)=%gH", d.A, d.B, d.L)

	s.StampStatic(+1, d.A, n, label)
	s.StampStatic(-1, d.B, n, label)

	s.StampStatic(+1, n, d.A, label)
	s.StampStatic(-1, n, d.B, label)
	s.StampTimed(-2*d.L, n, n, label)

	s.AddDynB(n, d.dyn, label)
}

// UpdateDynamic recomputes the history term for the branch equation
// v_a-v_b-Req*i = b[net]: solving the trapezoidal update
// i = i0 + (Δt/2L)(v+v0) for v gives v - Req*i = -(Req*i0+v0), so
// b[net] = -(Req*i0+v0), not the Norton-equivalent i0+v0/Req that
// equation would need if the branch row held a current instead of a
// voltage difference on its left side.
func (d *Inductor) UpdateDynamic(s *System) {
	req := 2 * d.L * s.StepScale()
	s.SetDyn(d.dyn, -(req*d.current0 + d.voltage0))
}

// Update commits the solved branch current and terminal voltage as
// the new (current0, voltage0) pair.
func (d *Inductor) Update(s *System) error {
	d.current0 = s.ReadCurrent(d.net)
	d.voltage0 = s.Read(d.A) - s.Read(d.B)
	d.UpdateDynamic(s)
	return nil
}

// ScaleTime is a no-op: unlike the capacitor's abstracted charge
// state, the inductor's (current0, voltage0) pair is Δt-independent
// physical state, and its companion model is rebuilt fresh from the
// new step scale the next time UpdateDynamic runs.
func (d *Inductor) ScaleTime(s *System, ratioNewOverOld float64) {}

func (d *Inductor) snapshot() any {
	return [2]float64{d.current0, d.voltage0}
}

func (d *Inductor) restore(v any) {
	a := v.([2]float64)
	d.current0, d.voltage0 = a[0], a[1]
}
