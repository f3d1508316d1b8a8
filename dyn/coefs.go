// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import "github.com/cpmech/gosl/io"

// NewmarkPars holds the parameters of the Newmark-beta family of implicit
// time-integration algorithms.
type NewmarkPars struct {
	Gamma float64
	Beta  float64
}

// Named parameter sets of the Newmark family. Only the average-acceleration
// set (trapezoidal rule) is unconditionally stable.
var (
	AvgAcceleration = NewmarkPars{Gamma: 1.0 / 2.0, Beta: 1.0 / 4.0}
	LinAcceleration = NewmarkPars{Gamma: 1.0 / 2.0, Beta: 1.0 / 6.0}
	FoxGoodwin      = NewmarkPars{Gamma: 1.0 / 2.0, Beta: 1.0 / 12.0}
)

// NewmarkPreset returns a parameter set by name: "avg-acc", "lin-acc" or
// "fox-goodwin".
func NewmarkPreset(name string) (NewmarkPars, error) {
	switch name {
	case "avg-acc":
		return AvgAcceleration, nil
	case "lin-acc":
		return LinAcceleration, nil
	case "fox-goodwin":
		return FoxGoodwin, nil
	}
	return NewmarkPars{}, &InvalidParameterError{io.Sf("unknown newmark preset %q", name)}
}

// dynCoefs holds the integration constants of one Newmark run (standard
// eight-constant formulation). They depend only on dt, gamma and beta and
// are computed once per integration call.
type dynCoefs struct {
	a0, a1, a2, a3, a4, a5, a6, a7 float64
}

func newDynCoefs(dt, gamma, beta float64) (o dynCoefs) {
	o.a0 = 1.0 / (beta * dt * dt)
	o.a1 = gamma / (beta * dt)
	o.a2 = 1.0 / (beta * dt)
	o.a3 = 1.0/(2.0*beta) - 1.0
	o.a4 = gamma/beta - 1.0
	o.a5 = dt * (gamma/(2.0*beta) - 1.0)
	o.a6 = (1.0 - gamma) * dt
	o.a7 = gamma * dt
	return
}
