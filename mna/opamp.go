// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import "github.com/cpmech/gosl/io"

// OpAmp is an ideal, infinite-gain operational amplifier (a nullor):
// it forces v_plus=v_minus while drawing no current at either input,
// and supplies whatever current the output node needs to make that
// true. Supplemented alongside VoltageProbe, since it shares the same
// "force a relation without drawing pin current" idiom — just wired
// to a third, output, pin instead of a read-only probe row.
type OpAmp struct {
	Plus, Minus, Out int
	Net              int // internal branch-current net
}

// AddOpAmp wires an ideal op-amp with non-inverting input plus,
// inverting input minus, and output out.
func (s *System) AddOpAmp(plus, minus, out int) *OpAmp {
	s.ensureNode(plus)
	s.ensureNode(minus)
	s.ensureNode(out)
	dev := &OpAmp{Plus: plus, Minus: minus, Out: out}
	dev.Net = s.ReserveNet()
	s.Nodes[dev.Net] = NodeInfo{Kind: Current, Scale: 1, Name: io.Sf("i:OpAmp(%d,%d,%d)", plus, minus, out)}
	dev.Stamp(s)
	s.registerDevice(dev)
	return dev
}

// Stamp injects the branch current into Out and ties Plus/Minus
// together through the branch equation v_plus-v_minus=0.
func (d *OpAmp) Stamp(s *System) {
	n := d.Net
	label := io.Sf("OpAmp(%d,%d,%d)", d.Plus, d.Minus, d.Out)
	s.StampStatic(+1, d.Out, n, label)
	s.StampStatic(+1, n, d.Plus, label)
	s.StampStatic(-1, n, d.Minus, label)
}
