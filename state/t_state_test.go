// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/hakonhagland/opm-models/numerr"
)

// twoPhaseState builds a small hand-filled state used by several tests
func twoPhaseState() *State {
	o := New(2, 2)
	o.SetTemperature(300.0)
	o.P[0], o.P[1] = 1e5, 1.02e5
	o.Sat[0], o.Sat[1] = 0.6, 0.4
	o.C[0], o.C[1] = 55000.0, 40.0
	o.Rho[0], o.Rho[1] = 998.2, 1.15
	o.X[0][0], o.X[0][1] = 0.999, 0.001
	o.X[1][0], o.X[1][1] = 0.035, 0.965
	o.F[0][0], o.F[0][1] = 3554.0, 98000.0
	o.F[1][0], o.F[1][1] = 3570.0, 98430.0
	return o
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. allocation, molarities and cloning")

	o := twoPhaseState()
	if o.Nphases() != 2 || o.Ncomps() != 2 {
		tst.Errorf("wrong dimensions: %dx%d\n", o.Nphases(), o.Ncomps())
		return
	}
	chk.Float64(tst, "T[1]", 1e-15, o.T[1], 300.0)

	// molarity of one component in one phase
	chk.Float64(tst, "molarity l/solvent", 1e-10, o.Molarity(0, 0), 55000.0*0.999)
	chk.Float64(tst, "molarity g/solute", 1e-12, o.Molarity(1, 1), 40.0*0.965)

	// global molarities: saturation-weighted sums
	mol := o.GlobalMolarities(nil)
	chk.Float64(tst, "mol[0]", 1e-9, mol[0], 0.6*55000.0*0.999+0.4*40.0*0.035)
	chk.Float64(tst, "mol[1]", 1e-9, mol[1], 0.6*55000.0*0.001+0.4*40.0*0.965)

	// a correctly sized workspace is reused, a wrong one is replaced
	ws := la.NewVector(2)
	res := o.GlobalMolarities(ws)
	if &res[0] != &ws[0] {
		tst.Errorf("correctly sized workspace was not reused\n")
		return
	}
	res = o.GlobalMolarities(la.NewVector(3))
	if len(res) != 2 {
		tst.Errorf("wrongly sized workspace was not replaced\n")
		return
	}

	// cloning is deep
	c := o.Clone()
	c.Sat[0] = 0.99
	c.X[0][0] = 0.5
	c.F[1][1] = 0.0
	chk.Float64(tst, "Sat[0] after clone edit", 1e-15, o.Sat[0], 0.6)
	chk.Float64(tst, "X[0][0] after clone edit", 1e-15, o.X[0][0], 0.999)
	chk.Float64(tst, "F[1][1] after clone edit", 1e-15, o.F[1][1], 98430.0)
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02. validation of physical invariants")

	o := twoPhaseState()
	if err := o.Validate(1e-8); err != nil {
		tst.Errorf("a consistent state must validate: %v\n", err)
		return
	}

	var einv *numerr.InvalidInputError

	// saturations must sum to one
	bad := o.Clone()
	bad.Sat[1] = 0.5
	if err := bad.Validate(1e-8); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}

	// present-phase compositions must sum to one
	bad = o.Clone()
	bad.X[1][1] = 0.5
	if err := bad.Validate(1e-8); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}

	// an absent phase may carry an unclosed composition
	bad.Sat[0], bad.Sat[1] = 1.0, 0.0
	if err := bad.Validate(1e-8); err != nil {
		tst.Errorf("absent-phase composition must be unconstrained: %v\n", err)
		return
	}

	// negative saturations and densities are invalid
	bad = o.Clone()
	bad.Sat[0], bad.Sat[1] = -0.1, 1.1
	if err := bad.Validate(1e-8); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
	bad = o.Clone()
	bad.Rho[0] = -1.0
	if err := bad.Validate(1e-8); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
}
