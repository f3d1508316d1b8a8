// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out saves and plots the response trajectories of one analysis.
package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/strucdyn/godyn/dyn"
)

// Save writes the time histories of res as a text table named <fnkey>.res
// inside dirout. Velocity and acceleration columns are written only when
// present (the modal path produces displacements only).
func Save(dirout, fnkey string, res *dyn.Results) {
	n := res.U.M
	var buf bytes.Buffer

	// header
	io.Ff(&buf, "%23s", "t")
	for j := 0; j < n; j++ {
		io.Ff(&buf, "%23s", io.Sf("u%d", j))
	}
	if res.V != nil {
		for j := 0; j < n; j++ {
			io.Ff(&buf, "%23s", io.Sf("v%d", j))
		}
	}
	if res.A != nil {
		for j := 0; j < n; j++ {
			io.Ff(&buf, "%23s", io.Sf("a%d", j))
		}
	}
	io.Ff(&buf, "\n")

	// one row per time sample
	for i := 0; i < len(res.T); i++ {
		io.Ff(&buf, "%23.15e", res.T[i])
		for j := 0; j < n; j++ {
			io.Ff(&buf, "%23.15e", res.U.Get(j, i))
		}
		if res.V != nil {
			for j := 0; j < n; j++ {
				io.Ff(&buf, "%23.15e", res.V.Get(j, i))
			}
		}
		if res.A != nil {
			for j := 0; j < n; j++ {
				io.Ff(&buf, "%23.15e", res.A.Get(j, i))
			}
		}
		io.Ff(&buf, "\n")
	}
	io.WriteFileVD(dirout, fnkey+".res", &buf)
}
