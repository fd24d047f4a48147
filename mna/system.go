// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import "github.com/cpmech/gosl/chk"

// NodeKind classifies a row/column of the system: a plain voltage
// unknown, or a current (branch) unknown introduced by a component
// that reserved an internal net (voltage sources, voltage functions,
// op-amps, inductors, and the current nets of diodes and BJTs).
type NodeKind int

const (
	Voltage NodeKind = iota // node row holds a voltage
	Current                 // node row holds a current/branch unknown
)

// NodeInfo carries per-row display metadata. Scale lets a row whose
// solved value is not directly in volts (e.g. a capacitor's charge
// state row) report a value that reads naturally in engineering units.
type NodeInfo struct {
	Kind  NodeKind
	Scale float64
	Name  string
}

// System owns the MNA matrix A, the right-hand-side vector b, the
// per-row metadata and the shared dynamic-variable pool. Components
// never hold pointers into A/b or the pool; they address them by
// index, which is stable across the resizes that happen during
// netlist construction.
type System struct {
	size  int
	A     [][]Cell
	B     []Cell
	Nodes []NodeInfo
	Time  float64
	Pool  []float64

	stepScale float64
	devices   []Device
}

// NewSystem returns an empty System with a single row/column reserved
// for ground (node 0), pinned at 0V.
func NewSystem() *System {
	s := &System{}
	s.SetSize(1)
	s.Nodes[0] = NodeInfo{Kind: Voltage, Scale: 1, Name: "gnd"}
	return s
}

// SetSize resizes A to n×n and b to length n, preserving all
// previously stamped cells and appending zeroed cells / default
// Voltage NodeInfos for the new rows. Shrinking is not supported:
// netlists only grow during construction.
func (s *System) SetSize(n int) {
	if n < s.size {
		chk.Panic("mna: SetSize: cannot shrink system from %d to %d", s.size, n)
	}

	// grow existing rows with new columns
	for r := 0; r < s.size; r++ {
		for len(s.A[r]) < n {
			s.A[r] = append(s.A[r], Cell{})
		}
	}

	// append new rows
	for r := s.size; r < n; r++ {
		s.A = append(s.A, make([]Cell, n))
		s.B = append(s.B, Cell{})
		s.Nodes = append(s.Nodes, NodeInfo{Kind: Voltage, Scale: 1})
	}

	s.size = n
}

// Size returns the current number of rows/columns.
func (s *System) Size() int { return s.size }

// StepScale returns 1/Δt as of the last Refresh call.
func (s *System) StepScale() float64 { return s.stepScale }

// ReserveNet grows the system by one row/column and returns its index.
// Components call this to obtain an internal net (e.g. the branch
// current unknown of a voltage source).
func (s *System) ReserveNet() int {
	idx := s.size
	s.SetSize(s.size + 1)
	return idx
}

// ReserveDyn appends a zero to the dynamic-variable pool and returns
// its index.
func (s *System) ReserveDyn() int {
	s.Pool = append(s.Pool, 0)
	return len(s.Pool) - 1
}

// StampStatic adds a time-independent contribution to A[r][c].
func (s *System) StampStatic(value float64, r, c int, label string) {
	s.A[r][c].G += value
	s.A[r][c].addLabel(label)
}

// StampBStatic adds a time-independent contribution to b[r].
func (s *System) StampBStatic(value float64, r int, label string) {
	s.B[r].G += value
	s.B[r].addLabel(label)
}

// StampTimed adds a per-unit-time contribution to A[r][c]; its
// effective value is value*stepScale once Refresh runs.
func (s *System) StampTimed(value float64, r, c int, label string) {
	s.A[r][c].GTimed += value
	s.A[r][c].addLabel(label)
}

// AddDynA registers pool[poolIndex] as a dynamic contribution of A[r][c].
func (s *System) AddDynA(r, c, poolIndex int, label string) {
	s.A[r][c].DynRefs = append(s.A[r][c].DynRefs, poolIndex)
	s.A[r][c].addLabel(label)
}

// AddDynB registers pool[poolIndex] as a dynamic contribution of b[r].
func (s *System) AddDynB(r, poolIndex int, label string) {
	s.B[r].DynRefs = append(s.B[r].DynRefs, poolIndex)
	s.B[r].addLabel(label)
}

// SetDyn writes value into the dynamic-variable pool.
func (s *System) SetDyn(index int, value float64) {
	s.Pool[index] = value
}

// Refresh recomputes preLU on every cell of A and b for the given
// step scale (1/Δt). Call on construction and whenever Δt changes.
func (s *System) Refresh(stepScale float64) {
	s.stepScale = stepScale
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			s.A[r][c].initLU(stepScale)
		}
		s.B[r].initLU(stepScale)
	}
}

// Load recomputes lu on every cell from preLU plus the pool. Call
// once per Newton iteration.
func (s *System) Load() {
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			s.A[r][c].updatePre(s.Pool)
		}
		s.B[r].updatePre(s.Pool)
	}
}

// registerDevice appends a component to the list the driver cycles
// through every time step; every Add* constructor calls this once.
func (s *System) registerDevice(d Device) {
	s.devices = append(s.devices, d)
}

// Read returns the solved voltage at a node. Node 0 (ground) always
// reads 0V regardless of the (unused) cell beneath it.
func (s *System) Read(node int) float64 {
	if node == 0 {
		return 0
	}
	return s.B[node].LU * s.Nodes[node].Scale
}

// ReadCurrent returns the solved current of a branch/current row (such
// as VoltageSource.CurrentNet or VoltageFunction.CurrentNet).
func (s *System) ReadCurrent(net int) float64 {
	return s.B[net].LU * s.Nodes[net].Scale
}

// ensureNode validates a user-supplied pin index and grows the system
// if it refers to a node beyond the current grid, so callers don't
// have to pre-size the system before wiring up components.
func (s *System) ensureNode(node int) {
	if node < 0 {
		chk.Panic("mna: node index %d is negative", node)
	}
	if node >= s.size {
		s.SetSize(node + 1)
	}
}
