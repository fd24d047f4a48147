// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// circsim transient-simulates a hand-wired RC low-pass driven by a
// step source, printing node voltages at every time step. It exists
// to exercise the mna netlist API end-to-end, the way gofem's own
// main.go drives a full analysis from a handful of arguments.
package main

import (
	"github.com/cpmech/circsim/mna"
	"github.com/cpmech/circsim/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input parameters
	vsrc := io.ArgToFloat(0, 5.0)
	r := io.ArgToFloat(1, 1000.0)
	c := io.ArgToFloat(2, 1e-6)
	dt := io.ArgToFloat(3, 1e-5)
	nsteps := io.ArgToInt(4, 200)
	verbose := io.ArgToBool(5, true)

	if verbose {
		io.PfWhite("\ncircsim -- transient RC low-pass\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"source voltage", "vsrc", vsrc,
			"series resistance", "r", r,
			"capacitance", "c", c,
			"time step", "dt", dt,
			"number of steps", "nsteps", nsteps,
			"show messages", "verbose", verbose,
		))
	}

	// netlist: node 1 is the source, node 2 the RC junction, node 0 ground
	sys := mna.NewSystem()
	sys.AddVoltageSource(1, 0, vsrc)
	sys.AddResistor(1, 2, r)
	sys.AddCapacitor(2, 0, c)

	for i := 0; i < nsteps; i++ {
		if err := sys.Step(dt); err != nil {
			chk.Panic("circsim: step %d failed: %v", i, err)
		}
		if verbose {
			io.Pf("t=%s  v1=%s  v2=%s\n",
				units.Format(sys.Time, "s"),
				units.Format(sys.Read(1), "V"),
				units.Format(sys.Read(2), "V"),
			)
		}
	}
}
