// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/strucdyn/godyn/dyn"
)

// ModalSuperposition computes the response of the damped system (m, c, k)
// under the harmonic load f(t) = fo・cos(ω・t), by superposition of the
// closed-form responses of the decoupled modes. Damping is reduced to its
// modal diagonal (proportional-damping assumption). It returns the half-open
// time grid with numSteps samples and the n × numSteps displacement matrix.
func (o *Harmonic) ModalSuperposition(m, c, k *la.Matrix, u0, v0, fo la.Vector, simTime float64, numSteps int) (t la.Vector, u *la.Matrix, err error) {
	if c == nil {
		return nil, nil, &dyn.InvalidParameterError{Msg: "damping matrix must be given (use zeros for undamped systems)"}
	}
	if u0 == nil || v0 == nil {
		return nil, nil, &dyn.InvalidParameterError{Msg: "initial displacements and velocities must be given"}
	}
	return superpose(o, m, c, k, u0, v0, fo, simTime, numSteps)
}

// ModalSuperposition computes the response of the undamped system (m, k)
// under a step load applied until td. The closed form assumes a system
// starting from rest; u0 is accepted for signature compatibility but is not
// consumed, and there is no damping matrix nor v0.
func (o *Impulsive) ModalSuperposition(m, k *la.Matrix, u0, fo la.Vector, simTime float64, numSteps int) (t la.Vector, u *la.Matrix, err error) {
	if u0 != nil && len(u0) != m.M {
		return nil, nil, &dyn.InvalidParameterError{Msg: io.Sf("initial displacements must have %d components (%d given)", m.M, len(u0))}
	}
	return superpose(o, m, nil, k, nil, nil, fo, simTime, numSteps)
}

// ModalSuperposition computes the response of the undamped system (m, k)
// under a ramp load rising until tr. The closed form assumes a system
// starting from rest; u0 is accepted for signature compatibility but is not
// consumed, and there is no damping matrix nor v0.
func (o *Ramp) ModalSuperposition(m, k *la.Matrix, u0, fo la.Vector, simTime float64, numSteps int) (t la.Vector, u *la.Matrix, err error) {
	if u0 != nil && len(u0) != m.M {
		return nil, nil, &dyn.InvalidParameterError{Msg: io.Sf("initial displacements must have %d components (%d given)", m.M, len(u0))}
	}
	return superpose(o, m, nil, k, nil, nil, fo, simTime, numSteps)
}

// superpose runs the shared modal-superposition pipeline:
//
//  1. generalized eigen-decomposition K・φ = λ・M・φ (ascending)
//  2. change of basis: Mp = φᵀ・M・φ, Cp = φᵀ・C・φ, Kp = φᵀ・K・φ,
//     Fp = φᵀ・fo, up = φᵀ・M・u0, vp = φᵀ・M・v0
//  3. per-mode scalars: ν_i = Cp_ii/(2・Mp_ii), closed-form history
//  4. back-transform: u = φ・Dp
//
// u0, v0 and c may be nil (quiescent start, undamped).
func superpose(model Model, m, c, k *la.Matrix, u0, v0, fo la.Vector, simTime float64, numSteps int) (t la.Vector, u *la.Matrix, err error) {

	// check input
	n, err := checkInput(m, c, k, u0, v0, fo, simTime, numSteps)
	if err != nil {
		return nil, nil, err
	}

	// generalized eigen-decomposition of (K, M)
	lam, phi, err := dyn.GenEigen(k, m)
	if err != nil {
		return nil, nil, err
	}

	// natural frequencies ω_i = √λ_i; negatives beyond tolerance indicate an
	// invalid (K, M) pair, negatives within tolerance are clipped to zero
	ω := la.NewVector(n)
	tol := 1e-9 * math.Max(1.0, math.Abs(lam[n-1]))
	for i := 0; i < n; i++ {
		if lam[i] < -tol {
			return nil, nil, &dyn.InvalidSystemError{Msg: io.Sf("negative eigenvalue λ%d = %g of the (K, M) pair", i, lam[i])}
		}
		if lam[i] < 0 {
			lam[i] = 0
		}
		ω[i] = math.Sqrt(lam[i])
	}

	// change of basis to modal (principal) coordinates
	aux := la.NewMatrix(n, n)
	mp := la.NewMatrix(n, n)
	la.MatTrMatMul(aux, 1, phi, m) // aux = φᵀ・M
	la.MatMatMul(mp, 1, aux, phi)  // Mp = φᵀ・M・φ
	cp := la.NewMatrix(n, n)
	if c != nil {
		la.MatTrMatMul(aux, 1, phi, c)
		la.MatMatMul(cp, 1, aux, phi) // Cp = φᵀ・C・φ (only the diagonal is used)
	}
	kp := la.NewMatrix(n, n)
	la.MatTrMatMul(aux, 1, phi, k)
	la.MatMatMul(kp, 1, aux, phi) // Kp = φᵀ・K・φ

	// modal force amplitudes and initial conditions
	fp := la.NewVector(n)
	la.MatTrVecMul(fp, 1, phi, fo) // Fp = φᵀ・fo
	up := la.NewVector(n)
	vp := la.NewVector(n)
	w := la.NewVector(n)
	if u0 != nil {
		la.MatVecMul(w, 1, m, u0)
		la.MatTrVecMul(up, 1, phi, w) // up = φᵀ・M・u0
	}
	if v0 != nil {
		la.MatVecMul(w, 1, m, v0)
		la.MatTrVecMul(vp, 1, phi, w) // vp = φᵀ・M・v0
	}

	// per-mode closed-form histories
	t = dyn.TimeGridN(simTime, numSteps)
	dp := la.NewMatrix(n, numSteps)
	for i := 0; i < n; i++ {
		pars := ModePars{
			Index: i,
			Omega: ω[i],
			Nu:    cp.Get(i, i) / (2.0 * mp.Get(i, i)),
			Kp:    kp.Get(i, i),
			Fp:    fp[i],
			U0:    up[i],
			V0:    vp[i],
		}
		h, e := model.response(&pars, t)
		if e != nil {
			return nil, nil, e
		}
		for j := 0; j < numSteps; j++ {
			dp.Set(i, j, h[j])
		}
	}

	// back to physical coordinates: u = φ・Dp
	u = la.NewMatrix(n, numSteps)
	la.MatMatMul(u, 1, phi, dp)
	return
}

// checkInput verifies dimensions and time-stepping arguments of one
// modal-superposition call.
func checkInput(m, c, k *la.Matrix, u0, v0, fo la.Vector, simTime float64, numSteps int) (n int, err error) {
	if m == nil || k == nil {
		return 0, &dyn.InvalidParameterError{Msg: "mass and stiffness matrices must be given"}
	}
	n = m.M
	if m.N != n || k.M != n || k.N != n {
		return 0, &dyn.InvalidParameterError{Msg: io.Sf("matrix dimensions must agree: m is %d×%d, k is %d×%d", m.M, m.N, k.M, k.N)}
	}
	if c != nil && (c.M != n || c.N != n) {
		return 0, &dyn.InvalidParameterError{Msg: io.Sf("damping matrix must be %d×%d (%d×%d given)", n, n, c.M, c.N)}
	}
	if len(fo) != n {
		return 0, &dyn.InvalidParameterError{Msg: io.Sf("force vector must have %d components (%d given)", n, len(fo))}
	}
	if u0 != nil && len(u0) != n {
		return 0, &dyn.InvalidParameterError{Msg: io.Sf("initial displacements must have %d components (%d given)", n, len(u0))}
	}
	if v0 != nil && len(v0) != n {
		return 0, &dyn.InvalidParameterError{Msg: io.Sf("initial velocities must have %d components (%d given)", n, len(v0))}
	}
	if numSteps < 1 {
		return 0, &dyn.InvalidParameterError{Msg: io.Sf("number of steps must be ≥ 1 (%d given)", numSteps)}
	}
	if simTime <= 0 {
		return 0, &dyn.InvalidParameterError{Msg: io.Sf("simulation time must be positive (%g given)", simTime)}
	}
	return
}
