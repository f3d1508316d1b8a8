// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana provides closed-form (analytical) solutions for the dynamic
// response of linear structural systems under canonical load shapes, via
// modal superposition: the generalized eigen-decomposition of (K, M)
// decouples the system into single-DOF oscillators, each mode is evaluated
// with the closed form of its load model, and the modal histories are
// recombined into physical coordinates.
package ana

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/strucdyn/godyn/dyn"
)

// Model is the interface over the closed set of canonical load shapes with
// known modal solutions: Harmonic, Impulsive and Ramp.
type Model interface {

	// Load computes the instantaneous scalar load factor at time t. It is
	// meant for reporting/plotting the raw excitation; the closed-form modal
	// solutions and the direct integrators do not consume it directly.
	Load(t float64) float64

	// Name returns the identifier used in input files.
	Name() string

	// response evaluates the closed-form single-mode displacement history
	// over the time grid t, in modal (principal) coordinates.
	response(p *ModePars, t la.Vector) (la.Vector, error)
}

// ModePars collects the per-mode scalars of the decoupled system consumed by
// the closed-form responses.
type ModePars struct {
	Index int     // mode index
	Omega float64 // natural frequency ω = √λ
	Nu    float64 // damping coefficient ν = Cp/(2・Mp); zero for undamped paths
	Kp    float64 // modal stiffness (diagonal entry of φᵀ・K・φ)
	Fp    float64 // modal force amplitude
	U0    float64 // modal initial displacement
	V0    float64 // modal initial velocity
}

// Harmonic is the load fo・cos(ω・t). No discontinuity.
type Harmonic struct {
	Fo    float64 // amplitude
	Omega float64 // angular frequency of the excitation
}

// NewHarmonic returns a harmonic load model.
func NewHarmonic(fo, omega float64) *Harmonic {
	return &Harmonic{Fo: fo, Omega: omega}
}

// Name returns "harmonic"
func (o *Harmonic) Name() string { return "harmonic" }

// Load computes fo・cos(ω・t)
func (o *Harmonic) Load(t float64) float64 {
	return o.Fo * math.Cos(o.Omega*t)
}

// Impulsive is the step load: fo while t ≤ td, zero afterwards. Step
// discontinuity at td.
type Impulsive struct {
	Fo float64 // amplitude
	Td float64 // application time
}

// NewImpulsive returns an impulsive (step) load model.
func NewImpulsive(fo, td float64) *Impulsive {
	return &Impulsive{Fo: fo, Td: td}
}

// Name returns "impulsive"
func (o *Impulsive) Name() string { return "impulsive" }

// Load computes fo for t ≤ td and zero afterwards
func (o *Impulsive) Load(t float64) float64 {
	if t <= o.Td {
		return o.Fo
	}
	return 0
}

// Ramp grows linearly to fo during tr and stays constant afterwards.
// Continuous, slope-discontinuous at tr.
type Ramp struct {
	Fo float64 // amplitude
	Tr float64 // rise time
}

// NewRamp returns a ramp load model.
func NewRamp(fo, tr float64) *Ramp {
	return &Ramp{Fo: fo, Tr: tr}
}

// Name returns "ramp"
func (o *Ramp) Name() string { return "ramp" }

// Load computes fo・t/tr for t ≤ tr and fo afterwards
func (o *Ramp) Load(t float64) float64 {
	if t <= o.Tr {
		return o.Fo * t / o.Tr
	}
	return o.Fo
}

// ForceFunc adapts a load model and a force distribution vector into the
// force callable consumed by the direct integrators:
//
//	fext(t) = load(t)・fo
func ForceFunc(model Model, fo la.Vector) dyn.ForceFunc {
	f := la.NewVector(len(fo))
	return func(t float64) la.Vector {
		s := model.Load(t)
		for i := 0; i < len(fo); i++ {
			f[i] = s * fo[i]
		}
		return f
	}
}
