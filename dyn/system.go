// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dyn computes the time-domain dynamic response of linear structural
// systems
//
//	M・ü + C・u̇ + K・u = f(t)
//
// by direct numerical time integration: the implicit Newmark-beta family and
// the explicit central-difference method. It also provides the generalized
// symmetric eigen-decomposition of (K, M) used by the closed-form modal
// solutions in package ana.
package dyn

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// checkSystem verifies that m, c and k are square matrices agreeing on the
// number of degrees of freedom. c may be nil (undamped system).
func checkSystem(m, c, k *la.Matrix) (n int, err error) {
	if m == nil || k == nil {
		return 0, &InvalidParameterError{"mass and stiffness matrices must be given"}
	}
	n = m.M
	if m.N != n {
		return 0, &InvalidParameterError{io.Sf("mass matrix must be square (%d×%d given)", m.M, m.N)}
	}
	if k.M != n || k.N != n {
		return 0, &InvalidParameterError{io.Sf("stiffness matrix must be %d×%d (%d×%d given)", n, n, k.M, k.N)}
	}
	if c != nil && (c.M != n || c.N != n) {
		return 0, &InvalidParameterError{io.Sf("damping matrix must be %d×%d (%d×%d given)", n, n, c.M, c.N)}
	}
	return
}

// checkState verifies that the initial state vectors have length n.
func checkState(n int, u0, v0 la.Vector) error {
	if len(u0) != n || len(v0) != n {
		return &InvalidParameterError{io.Sf("initial state must have %d components (len(u0)=%d, len(v0)=%d)", n, len(u0), len(v0))}
	}
	return nil
}

// checkTime verifies the time-stepping arguments.
func checkTime(tf, dt float64) error {
	if tf <= 0 {
		return &InvalidParameterError{io.Sf("total time must be positive (tf=%g given)", tf)}
	}
	if dt <= 0 {
		return &InvalidParameterError{io.Sf("time increment must be positive (dt=%g given)", dt)}
	}
	return nil
}

// invert computes ai := a⁻¹ with the dense backend, converting panics into
// errors and guarding against vanishing determinants so that callers can
// classify the failure.
func invert(ai, a *la.Matrix) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()
	det := la.MatInv(ai, a, true)
	if math.Abs(det) < 1e-15 {
		err = chk.Err("determinant is too small (det=%g)", det)
	}
	return
}
