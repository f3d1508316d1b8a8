// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads ".dyn" analysis-definition files: JSON documents holding
// the system matrices, initial state, load model and solution method of one
// dynamic analysis.
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/strucdyn/godyn/ana"
	"github.com/strucdyn/godyn/dyn"
)

// LoadData selects and parameterizes one load model.
type LoadData struct {
	Type  string  `json:"type"`  // "harmonic", "impulsive" or "ramp"
	Fo    float64 `json:"fo"`    // amplitude
	Omega float64 `json:"omega"` // harmonic: angular frequency
	Td    float64 `json:"td"`    // impulsive: application time
	Tr    float64 `json:"tr"`    // ramp: rise time
}

// Analysis holds the contents of one ".dyn" file.
type Analysis struct {

	// system
	M [][]float64 `json:"M"` // mass matrix (dense rows)
	C [][]float64 `json:"C"` // damping matrix; zeros when absent
	K [][]float64 `json:"K"` // stiffness matrix

	// state and load
	U0   []float64 `json:"u0"` // initial displacements; zeros when absent
	V0   []float64 `json:"v0"` // initial velocities; zeros when absent
	Fo   []float64 `json:"fo"` // external force vector
	Load LoadData  `json:"load"`

	// method
	Method   string  `json:"method"`  // "modal", "newmark" or "central-diff"
	Preset   string  `json:"preset"`  // newmark preset name; e.g. "avg-acc"
	Gamma    float64 `json:"gamma"`   // explicit newmark parameters (with beta)
	Beta     float64 `json:"beta"`    //
	SimTime  float64 `json:"simtime"` // total simulation time
	NumSteps int     `json:"nsteps"`  // number of increments (modal path)
	Dt       float64 `json:"dt"`      // time increment (direct path)

	// output
	DirOut string `json:"dirout"` // output directory; default /tmp/godyn/<fnkey>
	PltDof int    `json:"pltdof"` // DOF to plot; -1 disables plotting

	// derived
	Key string `json:"-"` // filename key
}

// ReadDyn reads an analysis file. It panics on unreadable or malformed
// files; the caller (e.g. the CLI driver) recovers and reports.
func ReadDyn(fnamepath string) *Analysis {

	// read file (panics when the file cannot be read)
	b := io.ReadFile(fnamepath)

	// decode
	var o Analysis
	o.PltDof = -1
	if err := json.Unmarshal(b, &o); err != nil {
		chk.Panic("ReadDyn: cannot unmarshal analysis file %q: %v", fnamepath, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(filepath.Base(fnamepath))
	if o.DirOut == "" {
		o.DirOut = "/tmp/godyn/" + o.Key
	}
	return &o
}

// Matrices builds the dense system matrices. An absent damping matrix
// becomes zeros.
func (o *Analysis) Matrices() (m, c, k *la.Matrix, err error) {
	m, err = denseMatrix("M", o.M)
	if err != nil {
		return
	}
	k, err = denseMatrix("K", o.K)
	if err != nil {
		return
	}
	if o.C == nil {
		c = la.NewMatrix(m.M, m.N)
		return
	}
	c, err = denseMatrix("C", o.C)
	return
}

// State builds the initial state vectors. Absent vectors become zeros with
// the dimension of the mass matrix; present vectors must have exactly that
// dimension.
func (o *Analysis) State() (u0, v0 la.Vector, err error) {
	n := len(o.M)
	if o.U0 != nil && len(o.U0) != n {
		return nil, nil, &dyn.InvalidParameterError{Msg: io.Sf("initial displacements must have %d components (%d given)", n, len(o.U0))}
	}
	if o.V0 != nil && len(o.V0) != n {
		return nil, nil, &dyn.InvalidParameterError{Msg: io.Sf("initial velocities must have %d components (%d given)", n, len(o.V0))}
	}
	u0 = la.NewVector(n)
	v0 = la.NewVector(n)
	copy(u0, o.U0)
	copy(v0, o.V0)
	return
}

// Model builds the load model declared in the file.
func (o *Analysis) Model() (ana.Model, error) {
	switch o.Load.Type {
	case "harmonic":
		return ana.NewHarmonic(o.Load.Fo, o.Load.Omega), nil
	case "impulsive":
		return ana.NewImpulsive(o.Load.Fo, o.Load.Td), nil
	case "ramp":
		return ana.NewRamp(o.Load.Fo, o.Load.Tr), nil
	}
	return nil, &dyn.InvalidParameterError{Msg: io.Sf("unknown load type %q", o.Load.Type)}
}

// NewmarkPars resolves the Newmark parameters: a preset name when given,
// explicit gamma/beta when set, average acceleration otherwise.
func (o *Analysis) NewmarkPars() (dyn.NewmarkPars, error) {
	if o.Preset != "" {
		return dyn.NewmarkPreset(o.Preset)
	}
	if o.Gamma != 0 || o.Beta != 0 {
		return dyn.NewmarkPars{Gamma: o.Gamma, Beta: o.Beta}, nil
	}
	return dyn.AvgAcceleration, nil
}

// denseMatrix converts rows into a dense matrix, checking squareness.
func denseMatrix(name string, rows [][]float64) (*la.Matrix, error) {
	n := len(rows)
	if n < 1 {
		return nil, &dyn.InvalidParameterError{Msg: io.Sf("matrix %q must be given", name)}
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, &dyn.InvalidParameterError{Msg: io.Sf("matrix %q must be square: row %d has %d entries (%d needed)", name, i, len(row), n)}
		}
	}
	return la.NewMatrixDeep2(rows), nil
}
