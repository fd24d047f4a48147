// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units formats scalar values in engineering notation (1.5kΩ,
// 150uΩ, ...) for the cmd/circsim example's printed report. The mna
// package's cell debug labels do not use it: they print component
// values with %g.
package units

import (
	"math"
	"strconv"
)

// prefixes covers 10^-12 .. 10^9 in steps of 1000; index 4 ("") is
// the unscaled group.
var prefixes = [8]string{"p", "n", "u", "m", "", "k", "M", "G"}

// Format renders v in engineering notation followed by unit, choosing
// the prefix from {p,n,u,m,·,k,M,G} so the numeric part stays in
// [1,1000). The grouping index is floor(log10(v)/3); Go's math.Floor
// already rounds toward negative infinity, which is exactly what a
// sub-1 value needs — no extra correction step required (see
// DESIGN.md for why a naive "-1 bias when v<1" on top of this would
// double-correct).
func Format(v float64, unit string) string {
	if v == 0 {
		return "0" + unit
	}
	sign := ""
	av := v
	if av < 0 {
		sign = "-"
		av = -av
	}

	group := int(math.Floor(math.Log10(av) / 3))
	if group < -4 {
		group = -4
	}
	if group > 3 {
		group = 3
	}
	idx := group + 4

	scaled := av / math.Pow(1000, float64(group))
	return sign + trimNumber(scaled) + prefixes[idx] + unit
}

// trimNumber formats a scaled magnitude with enough precision to be
// readable but without trailing zeros, matching the round-trip
// examples ("1", "1.5", "150").
func trimNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	// strip trailing zeros, then a trailing dot if any
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}
