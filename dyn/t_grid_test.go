// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. half-open time grids")

	// non-divisible final time: last sample stays below tf
	t := TimeGrid(1.0, 0.3)
	chk.Array(tst, "TimeGrid(1, 0.3)", 1e-15, t, []float64{0, 0.3, 0.6, 0.9})

	// divisible final time: tf itself is excluded
	t = TimeGrid(1.0, 0.25)
	chk.Array(tst, "TimeGrid(1, 0.25)", 1e-15, t, []float64{0, 0.25, 0.5, 0.75})

	// fixed number of samples
	t = TimeGridN(2.0, 200)
	chk.Int(tst, "len(TimeGridN(2, 200))", len(t), 200)
	chk.Float64(tst, "t[0]", 1e-17, t[0], 0)
	chk.Float64(tst, "t[1]", 1e-17, t[1], 0.01)
	chk.Float64(tst, "t[199]", 1e-15, t[199], 1.99)
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. dof history extraction")

	m := la.NewMatrixDeep2([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	h := DofHistory(m, 1)
	chk.Array(tst, "row 1", 1e-17, h, []float64{4, 5, 6})
}
