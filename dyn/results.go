// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import "github.com/cpmech/gosl/la"

// Results gathers the trajectories of one analysis: the time grid and the
// response matrices indexed as (dof, timeIndex). Every matrix has exactly
// len(T) columns. The modal-superposition path produces displacements only,
// in which case V and A are nil.
type Results struct {
	T la.Vector  // time grid
	U *la.Matrix // displacements
	V *la.Matrix // velocities
	A *la.Matrix // accelerations
}

// newResults allocates trajectories for a direct integration with n DOFs.
func newResults(n int, t la.Vector) *Results {
	nt := len(t)
	return &Results{
		T: t,
		U: la.NewMatrix(n, nt),
		V: la.NewMatrix(n, nt),
		A: la.NewMatrix(n, nt),
	}
}

// DofHistory extracts the time history of one degree of freedom from a
// trajectory matrix.
func DofHistory(m *la.Matrix, dof int) (h la.Vector) {
	h = la.NewVector(m.N)
	for j := 0; j < m.N; j++ {
		h[j] = m.Get(dof, j)
	}
	return
}
