// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import "github.com/cpmech/gosl/io"

// VoltageSource is an ideal two-terminal source: it reserves one
// current net and stamps the ideal-transformer pattern.
type VoltageSource struct {
	A, B       int
	V          float64
	CurrentNet int
}

// AddVoltageSource wires an ideal source of voltage V between nodes a
// (+) and b (-).
func (s *System) AddVoltageSource(a, b int, v float64) *VoltageSource {
	s.ensureNode(a)
	s.ensureNode(b)
	dev := &VoltageSource{A: a, B: b, V: v}
	dev.CurrentNet = s.ReserveNet()
	s.Nodes[dev.CurrentNet] = NodeInfo{Kind: Current, Scale: 1, Name: io.Sf("i:V(%d,%d)", a, b)}
	dev.Stamp(s)
	s.registerDevice(dev)
	return dev
}

// Stamp couples the branch current into KCL at a/b, and fixes the
// branch equation v_a-v_b=V.
func (d *VoltageSource) Stamp(s *System) {
	n := d.CurrentNet
	label := io.Sf("i:V(V:%d,%d)", d.A, d.B)
	s.StampStatic(+1, d.A, n, label)
	s.StampStatic(-1, d.B, n, label)
	s.StampStatic(+1, n, d.A, label)
	s.StampStatic(-1, n, d.B, label)
	s.StampBStatic(d.V, n, label)
}
