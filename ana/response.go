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

// relative tolerance to detect a vanishing particular-solution denominator
// (resonance) in the harmonic closed form
const resTol = 1e-12

// response computes the displacement history of one underdamped mode under
// fo・cos(ω・t):
//
//	Dp(t) = e^(−ν・t)・(C1・cos(ωd・t) + C2・sin(ωd・t)) + Q・cos(ω・t) + R・sin(ω・t)
//
// with ωd = √(ω_i² − ν²) and Q, R the particular-solution coefficients.
func (o *Harmonic) response(p *ModePars, t la.Vector) (la.Vector, error) {
	if p.Omega <= p.Nu {
		return nil, &dyn.OverdampedModeError{Mode: p.Index, Omega: p.Omega, Nu: p.Nu}
	}
	ωd := math.Sqrt(p.Omega*p.Omega - p.Nu*p.Nu)
	dω2 := p.Omega*p.Omega - o.Omega*o.Omega
	den := dω2*dω2 + 4.0*p.Nu*p.Nu*o.Omega*o.Omega
	scl := p.Omega*p.Omega + o.Omega*o.Omega
	if den <= resTol*scl*scl {
		return nil, &dyn.SingularEffectiveStiffnessError{Msg: io.Sf("resonance at mode %d: load frequency ω=%g matches the undamped natural frequency", p.Index, o.Omega)}
	}
	q := dω2 * p.Fp / den
	r := 2.0 * p.Nu * o.Omega * p.Fp / den
	c1 := p.U0 - q
	c2 := (p.V0 - r*o.Omega + p.Nu*c1) / ωd
	dp := la.NewVector(len(t))
	for i, τ := range t {
		dp[i] = math.Exp(-p.Nu*τ)*(c1*math.Cos(ωd*τ)+c2*math.Sin(ωd*τ)) +
			q*math.Cos(o.Omega*τ) + r*math.Sin(o.Omega*τ)
	}
	return dp, nil
}

// response computes the displacement history of one undamped mode under a
// step load applied until td, starting from rest. The two closed-form
// branches split at td, with the boundary sample t == td in the first one:
//
//	t ≤ td:  Dp = (Fp/Kp)・(1 − cos(ω・t))
//	t > td:  Dp = (Fp/Kp)・[(1 − cos(ω・td))・cos(ω・(t−td)) + sin(ω・td)・sin(ω・(t−td))]
func (o *Impulsive) response(p *ModePars, t la.Vector) (la.Vector, error) {
	if p.Omega <= p.Nu {
		return nil, &dyn.OverdampedModeError{Mode: p.Index, Omega: p.Omega, Nu: p.Nu}
	}
	q := p.Fp / p.Kp
	dp := la.NewVector(len(t))
	for i, τ := range t {
		if τ <= o.Td {
			dp[i] = q * (1.0 - math.Cos(p.Omega*τ))
		} else {
			dp[i] = q * ((1.0-math.Cos(p.Omega*o.Td))*math.Cos(p.Omega*(τ-o.Td)) +
				math.Sin(p.Omega*o.Td)*math.Sin(p.Omega*(τ-o.Td)))
		}
	}
	return dp, nil
}

// response computes the displacement history of one undamped mode under a
// ramp load rising until tr, starting from rest. The two closed-form
// branches split at tr, with the boundary sample t == tr in the first one:
//
//	t ≤ tr:  Dp = (Fp/Kp)・(t/tr − sin(ω・t)/(ω・tr))
//	t > tr:  Dp = (Fp/Kp)・[1 + (sin(ω・(t−tr)) − sin(ω・t))/(ω・tr)]
func (o *Ramp) response(p *ModePars, t la.Vector) (la.Vector, error) {
	if o.Tr <= 0 {
		return nil, &dyn.InvalidParameterError{Msg: io.Sf("ramp rise time must be positive (tr=%g given)", o.Tr)}
	}
	if p.Omega <= p.Nu {
		return nil, &dyn.OverdampedModeError{Mode: p.Index, Omega: p.Omega, Nu: p.Nu}
	}
	q := p.Fp / p.Kp
	dp := la.NewVector(len(t))
	for i, τ := range t {
		if τ <= o.Tr {
			dp[i] = q * (τ/o.Tr - math.Sin(p.Omega*τ)/(p.Omega*o.Tr))
		} else {
			dp[i] = q * (1.0 + (math.Sin(p.Omega*(τ-o.Tr))-math.Sin(p.Omega*τ))/(p.Omega*o.Tr))
		}
	}
	return dp, nil
}
