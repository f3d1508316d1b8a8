// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// GenEigen solves the generalized symmetric eigenproblem
//
//	K・φ = λ・M・φ
//
// with m symmetric positive-definite and k symmetric. Eigenvalues are
// returned in ascending order and the columns of phi are the corresponding
// eigenvectors, M-orthonormal by construction (φᵀ・M・φ = I).
//
// The problem is reduced to standard form with the Cholesky factor of m:
//
//	m = L・Lᵀ   ⇒   (L⁻¹・k・L⁻ᵀ)・y = λ・y,   φ = L⁻ᵀ・y
//
// and the reduced symmetric problem is solved by Jacobi rotations.
func GenEigen(k, m *la.Matrix) (lam la.Vector, phi *la.Matrix, err error) {

	// check dimensions
	n, err := checkSystem(m, nil, k)
	if err != nil {
		return nil, nil, err
	}

	// Cholesky factor of m (lower triangular)
	L := la.NewMatrix(n, n)
	for j := 0; j < n; j++ {
		d := m.Get(j, j)
		for p := 0; p < j; p++ {
			d -= L.Get(j, p) * L.Get(j, p)
		}
		if d <= 0 {
			return nil, nil, &InvalidSystemError{"mass matrix is not positive-definite"}
		}
		L.Set(j, j, math.Sqrt(d))
		for i := j + 1; i < n; i++ {
			s := m.Get(i, j)
			for p := 0; p < j; p++ {
				s -= L.Get(i, p) * L.Get(j, p)
			}
			L.Set(i, j, s/L.Get(j, j))
		}
	}

	// X = L⁻¹・k  (forward substitution per column)
	X := la.NewMatrix(n, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			s := k.Get(i, j)
			for p := 0; p < i; p++ {
				s -= L.Get(i, p) * X.Get(p, j)
			}
			X.Set(i, j, s/L.Get(i, i))
		}
	}

	// B = X・L⁻ᵀ  (solve B・Lᵀ = X per row)
	B := la.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := X.Get(i, j)
			for p := 0; p < j; p++ {
				s -= B.Get(i, p) * L.Get(j, p)
			}
			B.Set(i, j, s/L.Get(j, j))
		}
	}

	// eigen-decomposition of the reduced symmetric matrix
	Q := la.NewMatrix(n, n)
	v := la.NewVector(n)
	if err = runJacobi(Q, v, B); err != nil {
		return nil, nil, &InvalidSystemError{io.Sf("eigen-decomposition failed: %v", err)}
	}

	// back-substitution: φ = L⁻ᵀ・y  (solve Lᵀ・φ = Q per column)
	W := la.NewMatrix(n, n)
	for j := 0; j < n; j++ {
		for i := n - 1; i >= 0; i-- {
			s := Q.Get(i, j)
			for p := i + 1; p < n; p++ {
				s -= L.Get(p, i) * W.Get(p, j)
			}
			W.Set(i, j, s/L.Get(i, i))
		}
	}

	// eigenvalues in ascending order, following the convention of symmetric
	// dense solvers
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })
	lam = la.NewVector(n)
	phi = la.NewMatrix(n, n)
	for jj, j := range idx {
		lam[jj] = v[j]
		for i := 0; i < n; i++ {
			phi.Set(i, jj, W.Get(i, j))
		}
	}
	return
}

// runJacobi calls the Jacobi rotation solver, converting panics from the
// backend (e.g. non-convergence) into errors.
func runJacobi(q *la.Matrix, v la.Vector, a *la.Matrix) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()
	la.Jacobi(q, v, a)
	return
}
