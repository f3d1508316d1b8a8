// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// NewmarkSolver implements the implicit Newmark-beta time integrator in
// displacement formulation. The effective stiffness
//
//	Kb = K + a1・C + a0・M
//
// is constant over the whole run and is factored once. With the
// average-acceleration parameters (β=1/4, γ=1/2) the scheme is
// unconditionally stable; other parameter choices carry no stability
// guarantee and are the caller's responsibility.
type NewmarkSolver struct {
	m, c, k *la.Matrix
	pars    NewmarkPars
	n       int
}

// register integrator
func init() {
	allocators["newmark"] = func(m, c, k *la.Matrix, prms ...float64) (Integrator, error) {
		pars := AvgAcceleration
		switch len(prms) {
		case 0:
		case 2:
			pars = NewmarkPars{Gamma: prms[0], Beta: prms[1]}
		default:
			return nil, &InvalidParameterError{"newmark takes either no parameters or gamma and beta"}
		}
		return NewNewmark(m, c, k, pars)
	}
}

// NewNewmark returns a Newmark-beta integrator for the system (m, c, k).
func NewNewmark(m, c, k *la.Matrix, pars NewmarkPars) (*NewmarkSolver, error) {
	n, err := checkSystem(m, c, k)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &InvalidParameterError{"damping matrix must be given (use zeros for undamped systems)"}
	}
	if pars.Beta <= 0 || pars.Gamma < 0 {
		return nil, &InvalidParameterError{io.Sf("newmark parameters out of range: gamma=%g, beta=%g", pars.Gamma, pars.Beta)}
	}
	return &NewmarkSolver{m: m, c: c, k: k, pars: pars, n: n}, nil
}

// Run integrates the system from (u0, v0) over the half-open grid [0, tf)
// with increment dt. Column 0 of the trajectories holds the initial state,
// with the initial acceleration a0 = M⁻¹・(f(0) − C・v0 − K・u0).
func (o *NewmarkSolver) Run(fext ForceFunc, u0, v0 la.Vector, tf, dt float64) (res *Results, err error) {

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
	dc := newDynCoefs(dt, o.pars.Gamma, o.pars.Beta)

	// initial acceleration: a0 = M⁻¹・(f(0) − C・v0 − K・u0)
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
	aOld := la.NewVector(o.n)
	la.MatVecMul(aOld, 1, mi, r)

	// first column holds the initial state
	uOld := u0.GetCopy()
	vOld := v0.GetCopy()
	for j := 0; j < o.n; j++ {
		res.U.Set(j, 0, uOld[j])
		res.V.Set(j, 0, vOld[j])
		res.A.Set(j, 0, aOld[j])
	}

	// effective stiffness Kb = K + a1・C + a0・M (constant; factored once)
	kb := la.NewMatrix(o.n, o.n)
	for p := 0; p < o.n*o.n; p++ {
		kb.Data[p] = o.k.Data[p] + dc.a1*o.c.Data[p] + dc.a0*o.m.Data[p]
	}
	kbi := la.NewMatrix(o.n, o.n)
	if err = invert(kbi, kb); err != nil {
		return nil, &SingularEffectiveStiffnessError{io.Sf("cannot factor Kb = K + a1・C + a0・M: %v", err)}
	}

	// time loop
	fk := la.NewVector(o.n)
	aux := la.NewVector(o.n)
	uNew := la.NewVector(o.n)
	for i := 1; i < nt; i++ {

		// effective force: fk = f + M・(a0・u + a2・v + a3・a) + C・(a1・u + a4・v + a5・a)
		f = fext(t[i])
		if len(f) != o.n {
			return nil, &InvalidParameterError{io.Sf("force vector must have %d components (%d given at t=%g)", o.n, len(f), t[i])}
		}
		copy(fk, f)
		for j := 0; j < o.n; j++ {
			aux[j] = dc.a0*uOld[j] + dc.a2*vOld[j] + dc.a3*aOld[j]
		}
		la.MatVecMulAdd(fk, 1, o.m, aux)
		for j := 0; j < o.n; j++ {
			aux[j] = dc.a1*uOld[j] + dc.a4*vOld[j] + dc.a5*aOld[j]
		}
		la.MatVecMulAdd(fk, 1, o.c, aux)

		// displacement at t[i]
		la.MatVecMul(uNew, 1, kbi, fk)

		// newmark recurrence for acceleration and velocity
		for j := 0; j < o.n; j++ {
			aNew := dc.a0*(uNew[j]-uOld[j]) - dc.a2*vOld[j] - dc.a3*aOld[j]
			vNew := vOld[j] + dc.a6*aOld[j] + dc.a7*aNew
			res.U.Set(j, i, uNew[j])
			res.V.Set(j, i, vNew)
			res.A.Set(j, i, aNew)
			uOld[j], vOld[j], aOld[j] = uNew[j], vNew, aNew
		}
	}
	return
}

// Newmark integrates the system (m, c, k) under fext with the Newmark-beta
// algorithm given by gamma and beta.
func Newmark(m, c, k *la.Matrix, fext ForceFunc, u0, v0 la.Vector, tf, dt, gamma, beta float64) (res *Results, err error) {
	sol, err := NewNewmark(m, c, k, NewmarkPars{Gamma: gamma, Beta: beta})
	if err != nil {
		return
	}
	return sol.Run(fext, u0, v0, tf, dt)
}
