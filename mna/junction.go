// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import "math"

// junction is the shared linearized PN-junction model behind Diode
// and BJT: a first-order companion model of the Shockley diode
// equation i = Is*(exp(v/nVt)-1), re-linearized at the Newton-damped
// operating point on every call that hasn't yet converged.
type junction struct {
	Is     float64 // saturation current
	N      float64 // emission coefficient
	NVt    float64 // n * VThermal
	invNVt float64 // 1/NVt, cached
	Vcrit  float64 // damping threshold

	Geq float64 // linearized conductance at the operating point
	Ieq float64 // linearized current source at the operating point
	Veq float64 // operating-point voltage
}

// newJunction builds a junction with Is and emission coefficient n,
// linearized initially at v=0.
func newJunction(is, n float64) *junction {
	nvt := n * VThermal
	j := &junction{
		Is:     is,
		N:      n,
		NVt:    nvt,
		invNVt: 1 / nvt,
		Vcrit:  nvt * math.Log(nvt/(is*math.Sqrt2)),
	}
	j.linearize(0)
	return j
}

// linearize computes the first-order model of the Shockley diode
// equation at operating point v.
func (j *junction) linearize(v float64) {
	e := j.Is * math.Exp(v*j.invNVt)
	i := e - j.Is + GMin*v
	g := e*j.invNVt + GMin
	j.Geq = g
	j.Ieq = v*g - i
	j.Veq = v
}

// newton inspects the solved junction voltage v against the current
// operating point. If it's within tolerance, the junction has
// converged and nothing changes. Otherwise v is damped (the Qucs
// formula, to tame the exponential's overshoot above Vcrit),
// re-linearized at the damped point, and the call reports no
// convergence.
func (j *junction) newton(v float64) bool {
	if math.Abs(v-j.Veq) < VTolerance {
		return true
	}
	if v > j.Vcrit {
		v = j.Veq + j.NVt*math.Log(math.Max(j.Is, 1+(v-j.Veq)*j.invNVt))
	}
	j.linearize(v)
	return false
}
