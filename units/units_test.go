// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"github.com/cpmech/gosl/utl"
)

func Test_units01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("units01: mid-range magnitudes pick the right prefix")

	cases := []struct {
		v    float64
		unit string
		want string
	}{
		{1.5, "V", "1.5V"},
		{1500, "V", "1.5kV"},
		{0.015, "A", "15mA"},
		{0.00015, "A", "150uA"},
		{1500000, "Hz", "1.5MHz"},
		{0, "Ω", "0Ω"},
	}
	for _, c := range cases {
		got := Format(c.v, c.unit)
		if got != c.want {
			tst.Errorf("Format(%v, %q) = %q, want %q", c.v, c.unit, got, c.want)
		}
	}
}

func Test_units02(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("units02: round-trip boundaries land on the expected group")

	cases := []struct {
		v    float64
		want string
	}{
		{1, "1"},
		{1e3, "1k"},
		{1e6, "1M"},
		{1e-3, "1m"},
	}
	for _, c := range cases {
		got := Format(c.v, "")
		if got != c.want {
			tst.Errorf("Format(%v, \"\") = %q, want %q", c.v, got, c.want)
		}
	}
}

func Test_units03(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("units03: negative values keep their sign")

	got := Format(-1500, "V")
	want := "-1.5kV"
	if got != want {
		tst.Errorf("Format(-1500, \"V\") = %q, want %q", got, want)
	}
}
