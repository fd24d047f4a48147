// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import "github.com/cpmech/gosl/io"

// VoltageProbe forces a differential voltage into the solution
// without drawing current: it reserves a net p such that the solved
// b[p] equals V_a-V_b.
type VoltageProbe struct {
	A, B int
	Net  int
}

// AddVoltageProbe wires a probe between nodes a and b and returns it;
// Probe.Net is the id used with System.Read to retrieve V_a-V_b.
func (s *System) AddVoltageProbe(a, b int) *VoltageProbe {
	s.ensureNode(a)
	s.ensureNode(b)
	dev := &VoltageProbe{A: a, B: b}
	dev.Net = s.ReserveNet()
	s.Nodes[dev.Net] = NodeInfo{Kind: Voltage, Scale: 1, Name: io.Sf("p:V(%d,%d)", a, b)}
	dev.Stamp(s)
	s.registerDevice(dev)
	return dev
}

// Stamp realizes b[p] = V_a - V_b via +1/-1/-1 at (p,a),(p,b),(p,p).
func (d *VoltageProbe) Stamp(s *System) {
	p := d.Net
	label := io.Sf("p:V(%d,%d)", d.A, d.B)
	s.StampStatic(+1, p, d.A, label)
	s.StampStatic(-1, p, d.B, label)
	s.StampStatic(-1, p, p, label)
}
