// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_junction01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("junction01: fresh junction linearizes at v=0")

	j := newJunction(DiodeIs, DiodeN)
	if math.Abs(j.Veq) > 1e-300 {
		tst.Errorf("fresh junction should linearize at Veq=0, got %v", j.Veq)
	}
	if j.Geq <= 0 {
		tst.Errorf("Geq must be positive at v=0, got %v", j.Geq)
	}
	if j.Vcrit <= 0 {
		tst.Errorf("Vcrit must be positive for a forward-biased junction, got %v", j.Vcrit)
	}
}

func Test_junction02(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("junction02: newton converges once the solved voltage matches Veq")

	j := newJunction(DiodeIs, DiodeN)

	// first call with a voltage far from Veq=0: not converged, re-linearizes
	if j.newton(0.4) {
		tst.Errorf("first call away from the operating point must report non-convergence")
	}
	vAfterFirst := j.Veq
	if math.Abs(vAfterFirst-0.4) > 1e-9 && vAfterFirst == 0 {
		tst.Errorf("junction should have re-linearized away from v=0, Veq=%v", vAfterFirst)
	}

	// a second call, presenting the linearization's own operating point back,
	// is within VTolerance of Veq and converges
	if !j.newton(vAfterFirst) {
		tst.Errorf("presenting the just-linearized operating point must converge")
	}
}

func Test_junction03(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("junction03: repeated large steps need more than one newton call")

	j := newJunction(DiodeIs, DiodeN)

	count := 0
	v := 0.8
	for i := 0; i < MaxIter; i++ {
		count++
		if j.newton(v) {
			break
		}
		v = j.Veq
	}
	if count < 2 {
		tst.Errorf("a 0.8V target starting from v=0 should need at least two newton calls, took %d", count)
	}
	if count >= MaxIter {
		tst.Errorf("junction failed to converge toward v=0.8 within %d iterations", MaxIter)
	}
}

func Test_junction04(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("junction04: damping caps re-linearization above Vcrit")

	j := newJunction(DiodeIs, DiodeN)
	big := j.Vcrit * 10
	j.newton(big)
	if j.Veq >= big {
		tst.Errorf("damped re-linearization must land below the undamped target, Veq=%v target=%v", j.Veq, big)
	}
	if math.IsInf(j.Geq, 0) || math.IsNaN(j.Geq) {
		tst.Errorf("damping must keep Geq finite, got %v", j.Geq)
	}
}

func Test_junction05(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("junction05: Vcrit and newton(0.5) match the pinned reference values")

	j := newJunction(DiodeIs, DiodeN)
	chk.Scalar(tst, "Vcrit", 1e-12, j.Vcrit, 0.6542963597947701)

	j.newton(0.5)
	chk.Scalar(tst, "Ieq after newton(0.5)", 1e-12, j.Ieq, 2.760783529589722e-3)
}
