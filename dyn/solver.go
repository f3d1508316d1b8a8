// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// ForceFunc evaluates the external force vector at time t. The returned
// vector must have one component per degree of freedom.
type ForceFunc func(t float64) la.Vector

// Integrator steps the coupled system M・ü + C・u̇ + K・u = f(t) forward in
// time from the given initial state, over the half-open grid [0, tf) with
// uniform increment dt.
type Integrator interface {
	Run(fext ForceFunc, u0, v0 la.Vector, tf, dt float64) (res *Results, err error)
}

// allocators holds all available integrators
var allocators = make(map[string]func(m, c, k *la.Matrix, prms ...float64) (Integrator, error))

// NewIntegrator returns an integrator by kind:
//
//	"newmark"      -- implicit Newmark-beta; prms may be empty (average
//	                  acceleration) or hold gamma and beta
//	"central-diff" -- explicit central difference; no prms
func NewIntegrator(kind string, m, c, k *la.Matrix, prms ...float64) (Integrator, error) {
	alloc, ok := allocators[kind]
	if !ok {
		return nil, &InvalidParameterError{io.Sf("unknown integrator kind %q", kind)}
	}
	return alloc(m, c, k, prms...)
}
