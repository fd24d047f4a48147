// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mna

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Step advances the simulation by one time step of length Δt>0.
//
// It seeds every device's dynamic linearization, runs the Newton
// outer loop (factor+solve, ask every non-linear device whether it
// converged, re-linearize and retry otherwise) up to MaxIter times,
// and on success commits state to reactive devices and advances time.
// If Δt changed since the last call, every reactive device is asked
// to rescale its state variable before the new step scale is applied.
//
// On ErrSingular or ErrNonConvergence the system's time, pool and
// every stateful device's private state are rolled back to their
// values at the start of the step, matching gofem's divergence-control
// backup()/restore() in fem/s_implicit.go. The snapshot is taken after
// any Δt-change rescaling and Refresh, so those are not undone: the
// step scale stays at 1/dt of the failed call.
func (s *System) Step(dt float64) error {
	if dt <= 0 {
		return ErrBadTimeStep
	}

	newScale := 1 / dt
	switch {
	case s.stepScale == 0:
		s.Refresh(newScale)
	case newScale != s.stepScale:
		ratioNewOverOld := dt / (1 / s.stepScale)
		for _, dev := range s.devices {
			if r, ok := dev.(ReactiveDevice); ok {
				r.ScaleTime(s, ratioNewOverOld)
			}
		}
		s.Refresh(newScale)
	}

	timeBackup := s.Time
	poolBackup := append([]float64(nil), s.Pool...)
	type backup struct {
		dev   snapshotter
		state any
	}
	var backups []backup
	for _, dev := range s.devices {
		if sn, ok := dev.(snapshotter); ok {
			backups = append(backups, backup{sn, sn.snapshot()})
		}
	}
	rollback := func() {
		s.Time = timeBackup
		copy(s.Pool, poolBackup)
		for _, b := range backups {
			b.dev.restore(b.state)
		}
	}

	for _, dev := range s.devices {
		if d, ok := dev.(DynamicDevice); ok {
			d.UpdateDynamic(s)
		}
	}
	s.Load()

	converged := false
	for it := 0; it < MaxIter; it++ {
		if err := s.factorAndSolve(); err != nil {
			rollback()
			return err
		}
		allConverged := true
		for _, dev := range s.devices {
			if nl, ok := dev.(NonlinearDevice); ok {
				if !nl.Newton(s) {
					allConverged = false
				}
			}
		}
		if allConverged {
			converged = true
			break
		}
		s.Load()
	}
	if !converged {
		rollback()
		return ErrNonConvergence
	}

	for _, dev := range s.devices {
		if u, ok := dev.(UpdatableDevice); ok {
			if err := u.Update(s); err != nil {
				rollback()
				return err
			}
		}
	}
	s.Time += dt
	return nil
}

// factorAndSolve performs dense LU factorization with partial row
// pivoting on a scratch copy of A.lu/b.lu (rows are independent
// []float64 slices, so a pivot swap is a single slice-header swap),
// then forward/backward substitutes and writes the solution back
// into b[i].lu. The persistent A/b Cells (g, gTimed, dynRefs, label)
// are never touched: only their already-refreshed .lu snapshot is
// read, so the static structure survives a failed or successful solve
// unchanged, since it is never safe to mutate the stamped structure
// while a solve is in flight.
//
// Node 0 (ground) is pinned: its row is replaced with the trivial
// equation V0=0, discarding whatever KCL contribution was stamped
// there, since that equation is redundant with the others by
// construction of MNA.
func (s *System) factorAndSolve() error {
	n := s.size
	m := make([][]float64, n)
	for r := 0; r < n; r++ {
		row := make([]float64, n)
		for c := 0; c < n; c++ {
			row[c] = s.A[r][c].LU
		}
		m[r] = row
	}
	rhs := make([]float64, n)
	for r := 0; r < n; r++ {
		rhs[r] = s.B[r].LU
	}
	for c := range m[0] {
		m[0][c] = 0
	}
	m[0][0] = 1
	rhs[0] = 0

	for k := 0; k < n; k++ {
		piv := k
		best := math.Abs(m[k][k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(m[i][k]); v > best {
				best = v
				piv = i
			}
		}
		if best < pivotFloor {
			return ErrSingular
		}
		if piv != k {
			m[k], m[piv] = m[piv], m[k]
			rhs[k], rhs[piv] = rhs[piv], rhs[k]
		}
		if VerboseLU {
			io.Pf("mna: lu pivot row=%d col=%d |a|=%g\n", k, k, math.Abs(m[k][k]))
		}
		pivotVal := m[k][k]
		for i := k + 1; i < n; i++ {
			mult := m[i][k] / pivotVal
			if mult == 0 {
				continue
			}
			if VerboseLU {
				io.Pf("mna: lu row=%d multiplier=%g\n", i, mult)
			}
			for j := k; j < n; j++ {
				m[i][j] -= mult * m[k][j]
			}
			rhs[i] -= mult * rhs[k]
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= m[i][j] * x[j]
		}
		x[i] = sum / m[i][i]
	}

	for i := 0; i < n; i++ {
		s.B[i].LU = x[i]
	}
	return nil
}
