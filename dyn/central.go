// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// CentralDiffSolver implements the explicit central-difference time
// integrator. The effective operator
//
//	Kb = (1/dt²)・M + (1/(2・dt))・C
//
// is constant over the whole run and is factored once. The scheme is
// conditionally stable: it requires dt ≤ 2/ω_max of the undamped system.
// This is a caller obligation and is not enforced here.
type CentralDiffSolver struct {
	m, c, k *la.Matrix
	n       int
}

// register integrator
func init() {
	allocators["central-diff"] = func(m, c, k *la.Matrix, prms ...float64) (Integrator, error) {
		if len(prms) != 0 {
			return nil, &InvalidParameterError{"central-diff takes no parameters"}
		}
		return NewCentralDiff(m, c, k)
	}
}

// NewCentralDiff returns a central-difference integrator for (m, c, k).
func NewCentralDiff(m, c, k *la.Matrix) (*CentralDiffSolver, error) {
	n, err := checkSystem(m, c, k)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &InvalidParameterError{"damping matrix must be given (use zeros for undamped systems)"}
	}
	return &CentralDiffSolver{m: m, c: c, k: k, n: n}, nil
}

// Run integrates the system from (u0, v0) over the half-open grid [0, tf)
// with increment dt. Column 0 of the trajectories holds the initial state.
func (o *CentralDiffSolver) Run(fext ForceFunc, u0, v0 la.Vector, tf, dt float64) (res *Results, err error) {

	// check input
	if err = checkTime(tf, dt); err != nil {
		return
	}
	if err = checkState(o.n, u0, v0); err != nil {
		return
	}

	// time grid and trajectories
	t := TimeGrid(tf, dt)
	nt := len(t)
	res = newResults(o.n, t)

	// integration constants
	a0 := 1.0 / (dt * dt)
	a1 := 1.0 / (2.0 * dt)
	a2 := 2.0 * a0
	a3 := 1.0 / a2

	// initial acceleration: M⁻¹・(f(0) − C・v0 − K・u0)
	mi := la.NewMatrix(o.n, o.n)
	if err = invert(mi, o.m); err != nil {
		return nil, &InvalidSystemError{io.Sf("mass matrix is not invertible: %v", err)}
	}
	f := fext(0)
	if len(f) != o.n {
		return nil, &InvalidParameterError{io.Sf("force vector must have %d components (%d given)", o.n, len(f))}
	}
	r := la.NewVector(o.n)
	copy(r, f)
	la.MatVecMulAdd(r, -1, o.c, v0)
	la.MatVecMulAdd(r, -1, o.k, u0)
	acc0 := la.NewVector(o.n)
	la.MatVecMul(acc0, 1, mi, r)

	// first column holds the initial state
	for j := 0; j < o.n; j++ {
		res.U.Set(j, 0, u0[j])
		res.V.Set(j, 0, v0[j])
		res.A.Set(j, 0, acc0[j])
	}

	// fictitious prior-step displacement (starter):
	// u₋₁ = u0 − dt・v0 + (dt²/2)・a0
	uPrev2 := la.NewVector(o.n)
	for j := 0; j < o.n; j++ {
		uPrev2[j] = u0[j] - dt*v0[j] + a3*acc0[j]
	}
	uPrev1 := u0.GetCopy()

	// effective operator Kb = a0・M + a1・C (constant; factored once)
	kb := la.NewMatrix(o.n, o.n)
	h1 := la.NewMatrix(o.n, o.n) // a0・M − a1・C
	h2 := la.NewMatrix(o.n, o.n) // K − a2・M
	for p := 0; p < o.n*o.n; p++ {
		kb.Data[p] = a0*o.m.Data[p] + a1*o.c.Data[p]
		h1.Data[p] = a0*o.m.Data[p] - a1*o.c.Data[p]
		h2.Data[p] = o.k.Data[p] - a2*o.m.Data[p]
	}
	kbi := la.NewMatrix(o.n, o.n)
	if err = invert(kbi, kb); err != nil {
		return nil, &SingularEffectiveStiffnessError{io.Sf("cannot factor Kb = (1/dt²)・M + (1/(2・dt))・C: %v", err)}
	}

	// time loop (three-point stencil)
	fk := la.NewVector(o.n)
	uNew := la.NewVector(o.n)
	for i := 1; i < nt; i++ {

		// effective force: fk = f − (a0・M − a1・C)・u_prev2 − (K − a2・M)・u_prev1
		f = fext(t[i])
		if len(f) != o.n {
			return nil, &InvalidParameterError{io.Sf("force vector must have %d components (%d given at t=%g)", o.n, len(f), t[i])}
		}
		copy(fk, f)
		la.MatVecMulAdd(fk, -1, h1, uPrev2)
		la.MatVecMulAdd(fk, -1, h2, uPrev1)

		// displacement at t[i]
		la.MatVecMul(uNew, 1, kbi, fk)

		// central-difference velocity and acceleration
		for j := 0; j < o.n; j++ {
			res.U.Set(j, i, uNew[j])
			res.V.Set(j, i, a1*(uNew[j]-uPrev2[j]))
			res.A.Set(j, i, a0*(uNew[j]-2.0*uPrev1[j]+uPrev2[j]))
		}

		// rotate history
		uPrev2, uPrev1, uNew = uPrev1, uNew, uPrev2
	}
	return
}

// CentralDiff integrates the system (m, c, k) under fext with the explicit
// central-difference method.
func CentralDiff(m, c, k *la.Matrix, fext ForceFunc, u0, v0 la.Vector, tf, dt float64) (res *Results, err error) {
	sol, err := NewCentralDiff(m, c, k)
	if err != nil {
		return
	}
	return sol.Run(fext, u0, v0, tf, dt)
}
