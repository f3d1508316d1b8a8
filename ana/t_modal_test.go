// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/strucdyn/godyn/dyn"
)

func Test_modal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal01. sdof harmonic load vs closed form")

	// m・ü + k・u = fo・cos(ω・t) with m=1, k=100, fo=10, ω=5, quiescent start:
	// u(t) = (10/75)・(cos(5t) − cos(10t))
	m := la.NewMatrixDeep2([][]float64{{1}})
	c := la.NewMatrixDeep2([][]float64{{0}})
	k := la.NewMatrixDeep2([][]float64{{100}})
	model := NewHarmonic(10, 5)

	u0 := la.NewVector(1)
	v0 := la.NewVector(1)
	fo := la.Vector{10}
	t, u, err := model.ModalSuperposition(m, c, k, u0, v0, fo, 2.0, 200)
	if err != nil {
		tst.Errorf("ModalSuperposition failed: %v\n", err)
		return
	}

	chk.Int(tst, "len(t)", len(t), 200)
	chk.Float64(tst, "t[1]", 1e-17, t[1], 0.01)
	maxerr := 0.0
	for i, τ := range t {
		ana := (10.0 / 75.0) * (math.Cos(5*τ) - math.Cos(10*τ))
		if e := math.Abs(u.Get(0, i) - ana); e > maxerr {
			maxerr = e
		}
	}
	io.Pforan("max |u - uana| = %v\n", maxerr)
	if maxerr > 1e-12 {
		tst.Errorf("displacement error too large: %v\n", maxerr)
	}
}

func Test_modal02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal02. 2-dof harmonic load vs newmark")

	// eigenvalues of (K, M) are λ = 2 and 5; the load frequency ω=1 stays away
	// from both natural frequencies
	m := la.NewMatrixDeep2([][]float64{
		{2, 0},
		{0, 1},
	})
	c := la.NewMatrix(2, 2)
	k := la.NewMatrixDeep2([][]float64{
		{6, -2},
		{-2, 4},
	})
	model := NewHarmonic(1, 1)
	fo := la.Vector{1, 2}
	u0 := la.NewVector(2)
	v0 := la.NewVector(2)

	t, u, err := model.ModalSuperposition(m, c, k, u0, v0, fo, 2.0, 2000)
	if err != nil {
		tst.Errorf("ModalSuperposition failed: %v\n", err)
		return
	}

	res, err := dyn.Newmark(m, c, k, ForceFunc(model, fo), u0, v0, 2.0, 1e-3, 0.5, 0.25)
	if err != nil {
		tst.Errorf("Newmark failed: %v\n", err)
		return
	}

	// both paths produce the same half-open grid
	chk.Int(tst, "len(t)", len(t), len(res.T))
	chk.Array(tst, "t", 1e-15, t, res.T)

	maxdiff := 0.0
	for j := 0; j < 2; j++ {
		for i := range t {
			if d := math.Abs(u.Get(j, i) - res.U.Get(j, i)); d > maxdiff {
				maxdiff = d
			}
		}
	}
	io.Pforan("max |u_modal - u_newmark| = %v\n", maxdiff)
	if maxdiff > 1e-3 {
		tst.Errorf("modal and newmark responses disagree: %v\n", maxdiff)
	}
}

func Test_modal03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal03. ramp load settles around the static deflection")

	// after the rise time the response oscillates (undamped) around the static
	// deflection fo/k = 2, with amplitude 2・q・|sin(ω・tr/2)|/(ω・tr) < 0.5
	m := la.NewMatrixDeep2([][]float64{{1}})
	k := la.NewMatrixDeep2([][]float64{{25}})
	model := NewRamp(50, 1)
	fo := la.Vector{50}

	t, u, err := model.ModalSuperposition(m, k, nil, fo, 6.0, 1200)
	if err != nil {
		tst.Errorf("ModalSuperposition failed: %v\n", err)
		return
	}

	// quiescent start
	chk.Float64(tst, "u(0)", 1e-15, u.Get(0, 0), 0)

	umin, umax := math.Inf(1), math.Inf(-1)
	for i, τ := range t {
		if τ < 1.0 {
			continue
		}
		v := u.Get(0, i)
		umin = math.Min(umin, v)
		umax = math.Max(umax, v)
	}
	io.Pforan("u range after rise = [%v, %v]\n", umin, umax)
	if umin < 1.5 || umax > 2.5 {
		tst.Errorf("response out of bounds: [%v, %v]\n", umin, umax)
	}
	if umin > 2.0 || umax < 2.0 {
		tst.Errorf("response must oscillate around the static deflection: [%v, %v]\n", umin, umax)
	}
}

func Test_modal04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal04. impulsive load branches, boundary sample at td")

	// dt = 0.125 and td = 0.5 put sample 4 exactly on the branch boundary,
	// which belongs to the loaded branch
	m := la.NewMatrixDeep2([][]float64{{1}})
	k := la.NewMatrixDeep2([][]float64{{100}})
	model := NewImpulsive(20, 0.5)
	fo := la.Vector{20}

	t, u, err := model.ModalSuperposition(m, k, nil, fo, 1.0, 8)
	if err != nil {
		tst.Errorf("ModalSuperposition failed: %v\n", err)
		return
	}

	ω, td, q := 10.0, 0.5, 0.2
	for i, τ := range t {
		var ana float64
		if τ <= td {
			ana = q * (1.0 - math.Cos(ω*τ))
		} else {
			ana = q * ((1.0-math.Cos(ω*td))*math.Cos(ω*(τ-td)) + math.Sin(ω*td)*math.Sin(ω*(τ-td)))
		}
		chk.Float64(tst, io.Sf("u(%g)", τ), 1e-13, u.Get(0, i), ana)
	}
}

func Test_modal05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal05. failure modes")

	m := la.NewMatrixDeep2([][]float64{{1}})
	c := la.NewMatrixDeep2([][]float64{{0}})
	k := la.NewMatrixDeep2([][]float64{{100}})
	u0 := la.NewVector(1)
	v0 := la.NewVector(1)
	fo := la.Vector{1}

	// resonance: load frequency matches the natural frequency ω=10
	_, _, err := NewHarmonic(1, 10).ModalSuperposition(m, c, k, u0, v0, fo, 2.0, 100)
	if err == nil {
		tst.Errorf("resonant load must fail\n")
		return
	}
	if _, ok := err.(*dyn.SingularEffectiveStiffnessError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
	}
	io.Pforan("resonance:  %v\n", err)

	// overdamped mode: ω=1, ν=2
	c4 := la.NewMatrixDeep2([][]float64{{4}})
	k1 := la.NewMatrixDeep2([][]float64{{1}})
	_, _, err = NewHarmonic(1, 0.1).ModalSuperposition(m, c4, k1, u0, v0, fo, 2.0, 100)
	if err == nil {
		tst.Errorf("overdamped mode must fail\n")
		return
	}
	ode, ok := err.(*dyn.OverdampedModeError)
	if !ok {
		tst.Errorf("wrong error type: %v\n", err)
		return
	}
	chk.Int(tst, "mode", ode.Mode, 0)
	chk.Float64(tst, "ω", 1e-15, ode.Omega, 1)
	chk.Float64(tst, "ν", 1e-15, ode.Nu, 2)
	io.Pforan("overdamped: %v\n", err)

	// negative stiffness gives a negative eigenvalue
	kneg := la.NewMatrixDeep2([][]float64{{-1}})
	_, _, err = NewImpulsive(1, 0.5).ModalSuperposition(m, kneg, nil, fo, 2.0, 100)
	if err == nil {
		tst.Errorf("negative eigenvalue must fail\n")
		return
	}
	if _, ok := err.(*dyn.InvalidSystemError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
	}

	// time-stepping arguments
	if _, _, err = NewHarmonic(1, 1).ModalSuperposition(m, c, k, u0, v0, fo, 2.0, 0); err == nil {
		tst.Errorf("numSteps=0 must fail\n")
		return
	}
	if _, ok := err.(*dyn.InvalidParameterError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
	}
	if _, _, err = NewHarmonic(1, 1).ModalSuperposition(m, c, k, u0, v0, fo, 0, 100); err == nil {
		tst.Errorf("simTime=0 must fail\n")
		return
	}

	// dimensions
	if _, _, err = NewHarmonic(1, 1).ModalSuperposition(m, c, k, u0, v0, la.Vector{1, 2}, 2.0, 100); err == nil {
		tst.Errorf("mismatched fo must fail\n")
		return
	}
	if _, _, err = NewRamp(1, 1).ModalSuperposition(m, k, la.Vector{0, 0}, fo, 2.0, 100); err == nil {
		tst.Errorf("mismatched u0 must fail\n")
		return
	}

	// damped path requires c, u0 and v0
	if _, _, err = NewHarmonic(1, 1).ModalSuperposition(m, nil, k, u0, v0, fo, 2.0, 100); err == nil {
		tst.Errorf("nil damping matrix must fail\n")
		return
	}
	if _, _, err = NewHarmonic(1, 1).ModalSuperposition(m, c, k, nil, v0, fo, 2.0, 100); err == nil {
		tst.Errorf("nil u0 must fail\n")
	}
}
