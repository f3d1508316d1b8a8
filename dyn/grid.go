// Copyright 2019 The Godyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// TimeGrid returns the half-open uniform grid [0, dt, 2・dt, ...) with
// length ceil(tf/dt). The last sample is strictly smaller than tf, also when
// tf is not evenly divisible by dt.
func TimeGrid(tf, dt float64) (t la.Vector) {
	nt := int(math.Ceil(tf / dt))
	t = la.NewVector(nt)
	for i := 0; i < nt; i++ {
		t[i] = float64(i) * dt
	}
	return
}

// TimeGridN returns the half-open uniform grid with exactly numSteps samples
// t[k] = k・(simTime/numSteps), k = 0 ... numSteps-1.
func TimeGridN(simTime float64, numSteps int) (t la.Vector) {
	dt := simTime / float64(numSteps)
	t = la.NewVector(numSteps)
	for i := 0; i < numSteps; i++ {
		t[i] = float64(i) * dt
	}
	return
}
