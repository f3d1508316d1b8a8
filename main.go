// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/strucdyn/godyn/ana"
	"github.com/strucdyn/godyn/dyn"
	"github.com/strucdyn/godyn/inp"
	"github.com/strucdyn/godyn/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".dyn", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGodyn -- dynamic response of linear structural systems\n")
		io.Pf("Copyright 2019 The Godyn Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot results", "doplot", doplot,
		))
	}

	// read analysis file and run
	a := inp.ReadDyn(fnamepath)
	res, err := run(a, verbose)
	if err != nil {
		chk.Panic("analysis failed:\n%v", err)
	}

	// save results
	out.Save(a.DirOut, a.Key, res)
	if doplot && a.PltDof >= 0 {
		out.PlotDof(res, a.PltDof, a.DirOut, a.Key)
		if model, e := a.Model(); e == nil {
			out.PlotLoad(model, a.SimTime, 201, a.DirOut, a.Key)
		}
	}
	if verbose {
		io.Pf("\noutput written to %s\n", a.DirOut)
	}
}

// run executes the analysis declared in a.
func run(a *inp.Analysis, verbose bool) (res *dyn.Results, err error) {

	// build system, state and load model
	m, c, k, err := a.Matrices()
	if err != nil {
		return
	}
	u0, v0, err := a.State()
	if err != nil {
		return
	}
	model, err := a.Model()
	if err != nil {
		return
	}
	fo := la.Vector(a.Fo)

	// dispatch on method
	switch a.Method {

	// closed-form modal superposition
	case "modal":
		var t la.Vector
		var u *la.Matrix
		switch ld := model.(type) {
		case *ana.Harmonic:
			t, u, err = ld.ModalSuperposition(m, c, k, u0, v0, fo, a.SimTime, a.NumSteps)
		case *ana.Impulsive:
			t, u, err = ld.ModalSuperposition(m, k, u0, fo, a.SimTime, a.NumSteps)
		case *ana.Ramp:
			t, u, err = ld.ModalSuperposition(m, k, u0, fo, a.SimTime, a.NumSteps)
		}
		if err != nil {
			return nil, err
		}
		if verbose {
			io.Pforan("modal superposition: %d modes, %d time samples\n", m.M, len(t))
		}
		return &dyn.Results{T: t, U: u}, nil

	// direct time integration
	case "newmark", "central-diff":
		var prms []float64
		if a.Method == "newmark" {
			pars, e := a.NewmarkPars()
			if e != nil {
				return nil, e
			}
			prms = []float64{pars.Gamma, pars.Beta}
		}
		sol, e := dyn.NewIntegrator(a.Method, m, c, k, prms...)
		if e != nil {
			return nil, e
		}
		fext := ana.ForceFunc(model, fo)
		res, err = sol.Run(fext, u0, v0, a.SimTime, a.Dt)
		if err != nil {
			return nil, err
		}
		if verbose {
			io.Pforan("%s: %d DOFs, %d time samples\n", a.Method, m.M, len(res.T))
		}
		return res, nil
	}
	return nil, &dyn.InvalidParameterError{Msg: io.Sf("unknown method %q", a.Method)}
}
