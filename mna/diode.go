// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import "github.com/cpmech/gosl/io"

// Default diode parameters approximate a 1N4148.
const (
	DiodeIs = 35e-12
	DiodeN  = 1.24
	DiodeRs = 10.0
)

// DiodeParams overrides the default junction/series parameters; a nil
// *DiodeParams means "use the defaults".
type DiodeParams struct {
	Is float64
	N  float64
	Rs float64
}

// Diode realizes the shared PN junction model plus a series
// resistance absorbed into its own current net, so the junction
// itself stays a pure, two-terminal non-linear element.
type Diode struct {
	Plus, Minus int
	Rs          float64

	vpn, ipn int // internal nets
	geqDyn   int // pool slot: geq on A[vpn][vpn]
	ieqDyn   int // pool slot: ieq on b[vpn]

	j *junction
}

// AddDiode wires a diode with anode a, cathode k, and optional
// parameter overrides (nil for 1N4148-like defaults).
func (s *System) AddDiode(a, k int, params *DiodeParams) *Diode {
	s.ensureNode(a)
	s.ensureNode(k)
	is, n, rs := DiodeIs, DiodeN, DiodeRs
	if params != nil {
		is, n, rs = params.Is, params.N, params.Rs
	}
	dev := &Diode{Plus: a, Minus: k, Rs: rs, j: newJunction(is, n)}
	dev.vpn = s.ReserveNet()
	dev.ipn = s.ReserveNet()
	dev.geqDyn = s.ReserveDyn()
	dev.ieqDyn = s.ReserveDyn()
	s.Nodes[dev.vpn] = NodeInfo{Kind: Voltage, Scale: 1, Name: io.Sf("v_pn:D(%d,%d)", a, k)}
	s.Nodes[dev.ipn] = NodeInfo{Kind: Current, Scale: 1, Name: io.Sf("i_pn:D(%d,%d)", a, k)}
	dev.Stamp(s)
	s.registerDevice(dev)
	return dev
}

// Stamp realizes the series-resistance-plus-junction circuit.
func (d *Diode) Stamp(s *System) {
	vpn, ipn := d.vpn, d.ipn
	label := io.Sf("D(%d,%d)", d.Plus, d.Minus)

	s.StampStatic(+1, d.Plus, ipn, label)
	s.StampStatic(-1, d.Minus, ipn, label)

	s.StampStatic(-1, vpn, ipn, label)
	s.AddDynA(vpn, vpn, d.geqDyn, label)
	s.AddDynB(vpn, d.ieqDyn, label)

	s.StampStatic(-1, ipn, d.Plus, label)
	s.StampStatic(+1, ipn, d.Minus, label)
	s.StampStatic(+1, ipn, vpn, label)
	s.StampStatic(d.Rs, ipn, ipn, label)
}

func (d *Diode) push(s *System) {
	s.SetDyn(d.geqDyn, d.j.Geq)
	s.SetDyn(d.ieqDyn, d.j.Ieq)
}

// UpdateDynamic writes the junction's current linearization into the
// pool, seeding the first Newton iteration of a step.
func (d *Diode) UpdateDynamic(s *System) { d.push(s) }

// Newton reads the solved junction voltage, re-linearizes if needed,
// and reports convergence.
func (d *Diode) Newton(s *System) bool {
	v := s.B[d.vpn].LU
	converged := d.j.newton(v)
	d.push(s)
	return converged
}

// snapshot/restore back up the junction's operating point so a failed
// step (singular matrix, non-convergence) rolls the diode back to
// where it stood before the step, the same way Capacitor and Inductor
// roll back their own persistent state.
func (d *Diode) snapshot() any {
	return [3]float64{d.j.Veq, d.j.Geq, d.j.Ieq}
}

func (d *Diode) restore(v any) {
	a := v.([3]float64)
	d.j.Veq, d.j.Geq, d.j.Ieq = a[0], a[1], a[2]
}
