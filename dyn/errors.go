// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import "github.com/cpmech/gosl/io"

// InvalidSystemError indicates a non-physical system: the mass matrix is not
// symmetric positive-definite (hence not invertible) or the (K,M) pair has
// negative eigenvalues beyond tolerance.
type InvalidSystemError struct {
	Msg string
}

func (e *InvalidSystemError) Error() string {
	return io.Sf("invalid system: %s", e.Msg)
}

// OverdampedModeError indicates a mode whose damping coefficient reaches or
// exceeds its natural frequency. The closed-form modal solutions require all
// participating modes to be underdamped (ω > ν).
type OverdampedModeError struct {
	Mode  int     // mode index
	Omega float64 // natural frequency ω
	Nu    float64 // damping coefficient ν
}

func (e *OverdampedModeError) Error() string {
	return io.Sf("mode %d is not underdamped: ν=%g ≥ ω=%g", e.Mode, e.Nu, e.Omega)
}

// InvalidParameterError indicates an out-of-domain argument such as
// num_steps ≤ 0, dt ≤ 0, tf ≤ 0, or mismatched array dimensions.
type InvalidParameterError struct {
	Msg string
}

func (e *InvalidParameterError) Error() string {
	return io.Sf("invalid parameter: %s", e.Msg)
}

// SingularEffectiveStiffnessError indicates that an effective stiffness
// operator cannot be factored, or that a closed-form particular solution has
// a vanishing denominator (e.g. exact resonance).
type SingularEffectiveStiffnessError struct {
	Msg string
}

func (e *SingularEffectiveStiffnessError) Error() string {
	return io.Sf("singular effective stiffness: %s", e.Msg)
}
