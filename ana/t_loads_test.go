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
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_loads01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads01. load factors and branch boundaries")

	// harmonic: fo・cos(ω・t)
	h := NewHarmonic(10, 5)
	chk.String(tst, h.Name(), "harmonic")
	chk.Float64(tst, "harmonic @ 0", 1e-15, h.Load(0), 10)
	chk.Float64(tst, "harmonic @ π/5", 1e-14, h.Load(math.Pi/5.0), -10)

	// impulsive: the boundary t == td belongs to the loaded branch
	s := NewImpulsive(3, 0.5)
	chk.String(tst, s.Name(), "impulsive")
	chk.Float64(tst, "impulsive @ 0", 1e-15, s.Load(0), 3)
	chk.Float64(tst, "impulsive @ td", 1e-15, s.Load(0.5), 3)
	chk.Float64(tst, "impulsive past td", 1e-15, s.Load(0.5000001), 0)

	// ramp: linear rise, then constant; t == tr belongs to the rising branch
	r := NewRamp(4, 2)
	chk.String(tst, r.Name(), "ramp")
	chk.Float64(tst, "ramp @ 0", 1e-15, r.Load(0), 0)
	chk.Float64(tst, "ramp @ tr/2", 1e-15, r.Load(1), 2)
	chk.Float64(tst, "ramp @ tr", 1e-15, r.Load(2), 4)
	chk.Float64(tst, "ramp past tr", 1e-15, r.Load(3), 4)
}

func Test_loads02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads02. force callable from model and distribution")

	model := NewHarmonic(2, math.Pi)
	fo := la.Vector{1, -3}
	fext := ForceFunc(model, fo)

	f := fext(0) // load factor = 2
	chk.Array(tst, "fext(0)", 1e-15, f, []float64{2, -6})

	f = fext(1) // load factor = 2・cos(π) = -2
	chk.Array(tst, "fext(1)", 1e-14, f, []float64{-2, 6})
}
