// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

// Device is the capability every component implements: a single
// call, made once after construction, that contributes the
// component's static/time-scaled/dynamic entries into the system.
// Linear, memoryless devices (Resistor) implement nothing else; the
// driver discovers richer behavior via the optional interfaces below,
// the "abstract capability with default no-op implementations" model
// from the design notes, expressed in Go as type assertions instead
// of a vtable of no-ops.
type Device interface {
	Stamp(sys *System)
}

// DynamicDevice writes a device's current linearization into the pool
// slots it owns. Called on every component at the start of each time
// step, before the first Load.
type DynamicDevice interface {
	Device
	UpdateDynamic(sys *System)
}

// UpdatableDevice commits persistent state after a step has solved
// successfully (a capacitor's state variable, a voltage function's
// cached sample) and refreshes its dynamic pool entries accordingly.
type UpdatableDevice interface {
	Device
	Update(sys *System) error
}

// NonlinearDevice participates in the Newton outer loop: it inspects
// the just-solved b.lu at its own junction row(s), decides whether to
// re-linearize, and reports whether it has converged.
type NonlinearDevice interface {
	Device
	Newton(sys *System) bool
}

// ReactiveDevice rescales the current-proportional part of its state
// variable when the time step changes. ratioNewOverOld is
// Δt_new/Δt_old: halving the time step calls ScaleTime with 0.5.
type ReactiveDevice interface {
	Device
	ScaleTime(sys *System, ratioNewOverOld float64)
}

// snapshotter lets the driver back up and restore a device's private,
// step-persistent state around a step that might fail (singular
// matrix or non-convergence), matching gofem's d.backup()/d.restore()
// divergence control in fem/s_implicit.go.
type snapshotter interface {
	snapshot() any
	restore(any)
}
