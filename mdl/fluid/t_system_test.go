// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/hakonhagland/opm-models/numerr"
)

func Test_n201(tst *testing.T) {

	//verbose()
	chk.PrintTitle("n201. nitrogen solute")

	var n N2
	chk.Float64(tst, "M", 1e-17, n.MolarMass(), 28.013e-3)

	// the van 't Hoff correlation is anchored at 298.15 K
	h, err := n.Henry(298.15)
	if err != nil {
		tst.Errorf("Henry failed: %v\n", err)
		return
	}
	chk.Float64(tst, "H(298.15)", 1e-6, h, 9.1e9)

	// solubility decreases with temperature (H grows)
	h300, err := n.Henry(300.0)
	if err != nil {
		tst.Errorf("Henry failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pforan("H(300) = %v Pa\n", h300)
	}
	chk.Float64(tst, "H(300)", 1e6, h300, 9.348e9)
	if h300 <= h {
		tst.Errorf("Henry coefficient must grow with T: H(300) = %v but H(298.15) = %v\n", h300, h)
		return
	}

	var einv *numerr.InvalidInputError
	if _, err := n.Henry(200.0); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
}

func Test_system01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system01. ideal liquid-gas fluid system")

	sys, err := NewLiquidGas(H2O{}, N2{})
	if err != nil {
		tst.Errorf("NewLiquidGas failed: %v\n", err)
		return
	}
	if sys.NumPhases() != 2 || sys.NumComponents() != 2 {
		tst.Errorf("wrong dimensions: %dx%d\n", sys.NumPhases(), sys.NumComponents())
		return
	}

	T, p := 300.0, 1e5
	x := []float64{0.5, 0.5}

	// gas phase: ideal gas mixture
	cg, err := sys.MolarDensity(GasPhase, T, p, x)
	if err != nil {
		tst.Errorf("MolarDensity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cg", 1e-12, cg, p/(Rgas*T))
	ρg, err := sys.Density(GasPhase, T, p, x)
	if err != nil {
		tst.Errorf("Density failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ρg", 1e-12, ρg, cg*(0.5*18.016e-3+0.5*28.013e-3))
	φ, err := sys.FugacityCoefficient(GasPhase, SolventComp, T, p)
	if err != nil {
		tst.Errorf("FugacityCoefficient failed: %v\n", err)
		return
	}
	chk.Float64(tst, "φ gas", 1e-17, φ, 1.0)

	// liquid phase: Raoult for the solvent, Henry for the solute
	pv, err := H2O{}.VaporPressure(T)
	if err != nil {
		tst.Errorf("VaporPressure failed: %v\n", err)
		return
	}
	φw, err := sys.FugacityCoefficient(LiqPhase, SolventComp, T, p)
	if err != nil {
		tst.Errorf("FugacityCoefficient failed: %v\n", err)
		return
	}
	chk.Float64(tst, "φ liq solvent", 1e-15, φw, pv/p)
	hn, err := N2{}.Henry(T)
	if err != nil {
		tst.Errorf("Henry failed: %v\n", err)
		return
	}
	φn, err := sys.FugacityCoefficient(LiqPhase, SoluteComp, T, p)
	if err != nil {
		tst.Errorf("FugacityCoefficient failed: %v\n", err)
		return
	}
	chk.Float64(tst, "φ liq solute", 1e-9*hn/p, φn, hn/p)

	// liquid molar density is the pure solvent's
	ρw, err := H2O{}.LiquidDensity(T, p)
	if err != nil {
		tst.Errorf("LiquidDensity failed: %v\n", err)
		return
	}
	cl, err := sys.MolarDensity(LiqPhase, T, p, x)
	if err != nil {
		tst.Errorf("MolarDensity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cl", 1e-9, cl, ρw/18.016e-3)

	// invalid indices and arguments
	var einv *numerr.InvalidInputError
	if _, err := sys.MolarDensity(2, T, p, x); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
	if _, err := sys.FugacityCoefficient(LiqPhase, 2, T, p); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
	if _, err := sys.FugacityCoefficient(LiqPhase, SolventComp, T, 0); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
	if _, err := sys.Density(GasPhase, T, p, []float64{1}); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
	if _, err := NewLiquidGas(nil, N2{}); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
}
