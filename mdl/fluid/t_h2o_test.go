// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/hakonhagland/opm-models/numerr"
)

func Test_h2o01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("h2o01. liquid and gas properties of water")

	var w H2O
	T, p := 293.15, 1e5

	pv, err := w.VaporPressure(T)
	if err != nil {
		tst.Errorf("VaporPressure failed: %v\n", err)
		return
	}
	ρ, err := w.LiquidDensity(T, p)
	if err != nil {
		tst.Errorf("LiquidDensity failed: %v\n", err)
		return
	}
	μ, err := w.LiquidViscosity(T, p)
	if err != nil {
		tst.Errorf("LiquidViscosity failed: %v\n", err)
		return
	}
	h, err := w.LiquidEnthalpy(T, p)
	if err != nil {
		tst.Errorf("LiquidEnthalpy failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pforan("pv = %v Pa\n", pv)
		io.Pforan("ρ  = %v kg/m³\n", ρ)
		io.Pforan("μ  = %v Pa·s\n", μ)
	}
	chk.Float64(tst, "pv(20°C)", 2.0, pv, 2331.4)
	chk.Float64(tst, "ρl(20°C,1bar)", 1e-2, ρ, 998.204)
	chk.Float64(tst, "μl(20°C)", 2e-5, μ, 1.002e-3)
	chk.Float64(tst, "hl(20°C)", 1e-8, h, h2oCpLiq*20.0)

	// gas side: ideal gas and its analytic inverse
	ρg, err := w.GasDensity(T, p)
	if err != nil {
		tst.Errorf("GasDensity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ρg", 1e-12, ρg, p*w.MolarMass()/(Rgas*T))
	pg, err := w.GasPressure(T, ρg)
	if err != nil {
		tst.Errorf("GasPressure failed: %v\n", err)
		return
	}
	chk.Float64(tst, "p(ρg)", 1e-8, pg, p)

	// internal energies are consistent with the enthalpies
	ul, err := w.LiquidInternalEnergy(T, p)
	if err != nil {
		tst.Errorf("LiquidInternalEnergy failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ul", 1e-8, ul, h-p/ρ)
	hg, err := w.GasEnthalpy(T, p)
	if err != nil {
		tst.Errorf("GasEnthalpy failed: %v\n", err)
		return
	}
	ug, err := w.GasInternalEnergy(T, p)
	if err != nil {
		tst.Errorf("GasInternalEnergy failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ug", 1e-8, ug, hg-Rgas*T/w.MolarMass())
}

func Test_h2o02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("h2o02. pressure-from-density inversion")

	var w H2O
	T := 293.15
	for _, p := range []float64{1e5, 1e6, 5e6, 1e7} {
		ρ, err := w.LiquidDensity(T, p)
		if err != nil {
			tst.Errorf("LiquidDensity failed: %v\n", err)
			return
		}
		pinv, status, err := w.LiquidPressure(T, ρ)
		if err != nil {
			tst.Errorf("LiquidPressure failed: %v\n", err)
			return
		}
		if chk.Verbose {
			io.Pforan("p = %10v  pinv = %23.15e  %v\n", p, pinv, status)
		}
		if !status.Converged {
			tst.Errorf("inversion at p = %v Pa did not converge: %v\n", p, status)
			return
		}
		if status.Iterations > 5 {
			tst.Errorf("inversion at p = %v Pa used %d iterations\n", p, status.Iterations)
			return
		}
		if math.Abs(pinv-p) > 1e-6*p {
			tst.Errorf("inversion at p = %v Pa is off: pinv = %v\n", p, pinv)
			return
		}
	}

	// the viscosity regularization keeps sub-275 K calls finite
	μa, err := w.LiquidViscosity(270.0, 1e5)
	if err != nil {
		tst.Errorf("LiquidViscosity failed: %v\n", err)
		return
	}
	μb, err := w.LiquidViscosity(h2oTvisc, 1e5)
	if err != nil {
		tst.Errorf("LiquidViscosity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "μ(270K) == μ(275K)", 1e-17, μa, μb)

	// density is monotonically increasing in pressure
	P := utl.LinSpace(1e5, 2e7, 11)
	ρprev := 0.0
	for _, pval := range P {
		ρ, err := w.LiquidDensity(T, pval)
		if err != nil {
			tst.Errorf("LiquidDensity failed: %v\n", err)
			return
		}
		if ρ <= ρprev {
			tst.Errorf("density is not increasing at p = %v Pa\n", pval)
			return
		}
		ρprev = ρ
	}
}

func Test_h2o03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("h2o03. error conditions")

	var w H2O
	var einv *numerr.InvalidInputError

	// vapor pressure outside validity range
	if _, err := w.VaporPressure(200.0); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}

	// liquid correlations outside validity range
	if _, err := w.LiquidDensity(500.0, 1e5); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
	if _, err := w.LiquidDensity(293.15, -1.0); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}

	// inversion with an unattainable target
	if _, _, err := w.LiquidPressure(293.15, -998.2); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
	if _, _, err := w.LiquidPressure(293.15, math.NaN()); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}

	// gas side
	if _, err := w.GasDensity(-1.0, 1e5); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
	if _, err := w.GasPressure(293.15, -1.0); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
}
