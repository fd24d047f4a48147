// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import (
	"testing"

	"github.com/cpmech/gosl/utl"
)

func Test_system01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("system01: SetSize grows an all-zero grid")

	s := NewSystem()
	s.SetSize(4)
	if s.Size() != 4 {
		tst.Errorf("expected size 4, got %d", s.Size())
	}
	for r := 0; r < 4; r++ {
		if len(s.A[r]) != 4 {
			tst.Errorf("row %d: expected 4 columns, got %d", r, len(s.A[r]))
		}
		for c := 0; c < 4; c++ {
			cell := s.A[r][c]
			if cell.G != 0 || cell.GTimed != 0 || len(cell.DynRefs) != 0 || cell.Label != "" {
				tst.Errorf("A[%d][%d] should be the zero Cell right after SetSize, got %+v", r, c, cell)
			}
		}
	}
}

func Test_system02(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("system02: ReserveNet preserves every previously stamped cell")

	s := NewSystem()
	s.AddResistor(0, 1, 1000)
	before := s.A[1][1].G

	s.ReserveNet()

	if s.A[1][1].G != before {
		tst.Errorf("stamped cell (1,1) changed after ReserveNet: had %v, now %v", before, s.A[1][1].G)
	}
	if s.Size() != 3 {
		tst.Errorf("expected size 3 after one resistor (2 nodes) plus one reserved net, got %d", s.Size())
	}
}

func Test_system03(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("system03: ensureNode grows the grid lazily from a bare pin index")

	s := NewSystem()
	s.ensureNode(5)
	if s.Size() != 6 {
		tst.Errorf("expected size 6 after ensureNode(5), got %d", s.Size())
	}
}

func Test_system04(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("system04: ground is pinned to 0V after a solve")

	s := NewSystem()
	s.AddResistor(0, 1, 1000)
	s.AddVoltageSource(1, 0, 5)
	err := s.Step(1e-3)
	if err != nil {
		utl.Panic("%v", err.Error())
	}
	if s.Read(0) != 0 {
		tst.Errorf("ground must always read 0V, got %v", s.Read(0))
	}
}
