// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// BJTKind selects the Ebers-Moll sign convention.
type BJTKind int

const (
	NPN BJTKind = iota
	PNP
)

// Default BJT parameters approximate a 2N3904.
const (
	BJTBetaF = 200.0
	BJTBetaR = 20.0
	BJTRb    = 5.84
	BJTRe    = 2.66
	BJTRc    = 1e-4
	BJTIs    = 6.734e-15
	BJTN     = 1.24
)

// BJTParams overrides the default 2N3904-like parameters; nil means
// "use the defaults".
type BJTParams struct {
	BetaF, BetaR float64
	Rb, Re, Rc   float64
	Is, N        float64
}

// BJT realizes the Ebers-Moll injection model as two
// independent Newton-linearized PN junctions (base-collector,
// base-emitter) sharing one stamping pattern whose sign flips between
// NPN and PNP.
type BJT struct {
	Kind          BJTKind
	Base, Col, Em int

	alphaF, alphaR, rsbc, rsbe float64
	sign                       float64

	vbc, vbe, ibc, ibe int // internal nets
	geqBC, ieqBC       int // pool slots
	geqBE, ieqBE       int

	pnc, pne *junction // base-collector, base-emitter junctions
}

// AddBJT wires a transistor of the given kind with base b, collector
// c, emitter e, and optional parameter overrides.
func (s *System) AddBJT(kind BJTKind, base, col, em int, params *BJTParams) *BJT {
	if kind != NPN && kind != PNP {
		chk.Panic("mna: AddBJT: unknown BJT kind %d", kind)
	}
	s.ensureNode(base)
	s.ensureNode(col)
	s.ensureNode(em)

	betaF, betaR := BJTBetaF, BJTBetaR
	rb, re, rc := BJTRb, BJTRe, BJTRc
	is, n := BJTIs, BJTN
	if params != nil {
		betaF, betaR = params.BetaF, params.BetaR
		rb, re, rc = params.Rb, params.Re, params.Rc
		is, n = params.Is, params.N
	}

	alphaF := betaF / (1 + betaF)
	alphaR := betaR / (1 + betaR)
	sign := 1.0
	if kind == PNP {
		sign = -1.0
	}

	dev := &BJT{
		Kind: kind, Base: base, Col: col, Em: em,
		alphaF: alphaF, alphaR: alphaR,
		rsbc: rb + rc, rsbe: rb + re,
		sign: sign,
		pnc:  newJunction(is/alphaR, n),
		pne:  newJunction(is/alphaF, n),
	}
	dev.vbc = s.ReserveNet()
	dev.vbe = s.ReserveNet()
	dev.ibc = s.ReserveNet()
	dev.ibe = s.ReserveNet()
	dev.geqBC = s.ReserveDyn()
	dev.ieqBC = s.ReserveDyn()
	dev.geqBE = s.ReserveDyn()
	dev.ieqBE = s.ReserveDyn()

	name := io.Sf("Q(%d,%d,%d)", base, col, em)
	s.Nodes[dev.vbc] = NodeInfo{Kind: Voltage, Scale: 1, Name: "v_bc:" + name}
	s.Nodes[dev.vbe] = NodeInfo{Kind: Voltage, Scale: 1, Name: "v_be:" + name}
	s.Nodes[dev.ibc] = NodeInfo{Kind: Current, Scale: 1, Name: "i_bc:" + name}
	s.Nodes[dev.ibe] = NodeInfo{Kind: Current, Scale: 1, Name: "i_be:" + name}

	dev.Stamp(s)
	s.registerDevice(dev)
	return dev
}

// Stamp realizes the 7x7 Ebers-Moll block.
func (d *BJT) Stamp(s *System) {
	b, c, e := d.Base, d.Col, d.Em
	vbc, vbe, ibc, ibe := d.vbc, d.vbe, d.ibc, d.ibe
	sg := d.sign
	label := io.Sf("Q(%d,%d,%d)", b, c, e)

	s.StampStatic(1-d.alphaR, b, ibc, label)
	s.StampStatic(1-d.alphaF, b, ibe, label)
	s.StampStatic(-1, c, ibc, label)
	s.StampStatic(+d.alphaF, c, ibe, label)
	s.StampStatic(+d.alphaR, e, ibc, label)
	s.StampStatic(-1, e, ibe, label)

	s.AddDynA(vbc, vbc, d.geqBC, label)
	s.StampStatic(sg, vbc, ibc, label)
	s.AddDynB(vbc, d.ieqBC, label)

	s.AddDynA(vbe, vbe, d.geqBE, label)
	s.StampStatic(sg, vbe, ibe, label)
	s.AddDynB(vbe, d.ieqBE, label)

	s.StampStatic(-1, ibc, b, label)
	s.StampStatic(+1, ibc, c, label)
	s.StampStatic(sg, ibc, vbc, label)
	s.StampStatic(d.rsbc, ibc, ibc, label)

	s.StampStatic(-1, ibe, b, label)
	s.StampStatic(+1, ibe, e, label)
	s.StampStatic(sg, ibe, vbe, label)
	s.StampStatic(d.rsbe, ibe, ibe, label)
}

func (d *BJT) push(s *System) {
	s.SetDyn(d.geqBC, d.pnc.Geq)
	s.SetDyn(d.ieqBC, d.pnc.Ieq)
	s.SetDyn(d.geqBE, d.pne.Geq)
	s.SetDyn(d.ieqBE, d.pne.Ieq)
}

// UpdateDynamic seeds both junctions' linearizations into the pool.
func (d *BJT) UpdateDynamic(s *System) { d.push(s) }

// Newton converges only once both the base-collector and base-emitter
// junctions have converged.
func (d *BJT) Newton(s *System) bool {
	vbc := s.B[d.vbc].LU
	vbe := s.B[d.vbe].LU
	okBC := d.pnc.newton(vbc)
	okBE := d.pne.newton(vbe)
	d.push(s)
	return okBC && okBE
}

// snapshot/restore back up both junctions' operating points so a
// failed step rolls the transistor back to where it stood before the
// step, the same way Capacitor and Inductor roll back their own
// persistent state.
func (d *BJT) snapshot() any {
	return [6]float64{d.pnc.Veq, d.pnc.Geq, d.pnc.Ieq, d.pne.Veq, d.pne.Geq, d.pne.Ieq}
}

func (d *BJT) restore(v any) {
	a := v.([6]float64)
	d.pnc.Veq, d.pnc.Geq, d.pnc.Ieq = a[0], a[1], a[2]
	d.pne.Veq, d.pne.Geq, d.pne.Ieq = a[3], a[4], a[5]
}
