// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/strucdyn/godyn/ana"
	"github.com/strucdyn/godyn/dyn"
)

// PlotDof plots the time histories of one degree of freedom: displacement
// always, velocity and acceleration when present. One figure per quantity is
// saved inside dirout, named <fnkey>-u.png, <fnkey>-v.png and <fnkey>-a.png.
func PlotDof(res *dyn.Results, dof int, dirout, fnkey string) {
	savePng(res.T, dyn.DofHistory(res.U, dof), "t", io.Sf("u%d", dof), dirout, fnkey+"-u")
	if res.V != nil {
		savePng(res.T, dyn.DofHistory(res.V, dof), "t", io.Sf("v%d", dof), dirout, fnkey+"-v")
	}
	if res.A != nil {
		savePng(res.T, dyn.DofHistory(res.A, dof), "t", io.Sf("a%d", dof), dirout, fnkey+"-a")
	}
}

// PlotLoad plots the raw excitation load(t) of one load model over [0, tf].
// The figure is saved as <fnkey>-load.png inside dirout.
func PlotLoad(model ana.Model, tf float64, npts int, dirout, fnkey string) {
	t := utl.LinSpace(0, tf, npts)
	f := la.NewVector(npts)
	for i, τ := range t {
		f[i] = model.Load(τ)
	}
	savePng(t, f, "t", "f(t)", dirout, fnkey+"-load")
}

// savePng draws one time history and saves it as <dirout>/<fname>.png. It
// panics on failure; the CLI driver recovers and reports.
func savePng(t, h la.Vector, xlabel, ylabel, dirout, fname string) {
	p := plot.New()
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(t))
	for i := range t {
		pts[i].X = t[i]
		pts[i].Y = h[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		chk.Panic("cannot build line plot: %v", err)
	}
	p.Add(line)
	if err := os.MkdirAll(dirout, 0777); err != nil {
		chk.Panic("cannot create output directory %q: %v", dirout, err)
	}
	fn := filepath.Join(dirout, fname+".png")
	if err := p.Save(6*vg.Inch, 3*vg.Inch, fn); err != nil {
		chk.Panic("cannot save plot %q: %v", fn, err)
	}
	io.Pf("file <%s> written\n", fn)
}
