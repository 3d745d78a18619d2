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

	"github.com/hakonhagland/opm-models/numerr"
)

func Test_brine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brine01. zero salinity reproduces pure water exactly")

	b, err := NewBrine(0.0)
	if err != nil {
		tst.Errorf("NewBrine failed: %v\n", err)
		return
	}
	var w H2O
	T, p := 293.15, 1e5

	ρb, err := b.LiquidDensity(T, p)
	if err != nil {
		tst.Errorf("LiquidDensity failed: %v\n", err)
		return
	}
	ρw, err := w.LiquidDensity(T, p)
	if err != nil {
		tst.Errorf("LiquidDensity failed: %v\n", err)
		return
	}
	hb, err := b.LiquidEnthalpy(T, p)
	if err != nil {
		tst.Errorf("LiquidEnthalpy failed: %v\n", err)
		return
	}
	hw, err := w.LiquidEnthalpy(T, p)
	if err != nil {
		tst.Errorf("LiquidEnthalpy failed: %v\n", err)
		return
	}
	μb, err := b.LiquidViscosity(T, p)
	if err != nil {
		tst.Errorf("LiquidViscosity failed: %v\n", err)
		return
	}
	μw, err := w.LiquidViscosity(T, p)
	if err != nil {
		tst.Errorf("LiquidViscosity failed: %v\n", err)
		return
	}

	// the limit must be exact, not merely close
	if ρb != ρw || hb != hw || μb != μw {
		tst.Errorf("zero-salinity brine differs from water: Δρ=%v Δh=%v Δμ=%v\n", ρb-ρw, hb-hw, μb-μw)
		return
	}
	chk.Float64(tst, "M(S=0)", 1e-17, b.MolarMass(), w.MolarMass())
}

func Test_brine02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brine02. salt water properties")

	b, err := NewBrine(0.1)
	if err != nil {
		tst.Errorf("NewBrine failed: %v\n", err)
		return
	}
	T, p := 293.15, 1e5

	ρ, err := b.LiquidDensity(T, p)
	if err != nil {
		tst.Errorf("LiquidDensity failed: %v\n", err)
		return
	}
	μ, err := b.LiquidViscosity(T, p)
	if err != nil {
		tst.Errorf("LiquidViscosity failed: %v\n", err)
		return
	}
	ρw, err := new(H2O).LiquidDensity(T, p)
	if err != nil {
		tst.Errorf("LiquidDensity failed: %v\n", err)
		return
	}
	μw, err := new(H2O).LiquidViscosity(T, p)
	if err != nil {
		tst.Errorf("LiquidViscosity failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pforan("ρ = %v kg/m³\n", ρ)
		io.Pforan("μ = %v Pa·s\n", μ)
	}
	chk.Float64(tst, "ρ(S=0.1)", 0.1, ρ, 1068.78)
	if ρ <= ρw {
		tst.Errorf("brine must be denser than water: ρ = %v but ρw = %v\n", ρ, ρw)
		return
	}
	if μ <= μw {
		tst.Errorf("brine must be more viscous than water: μ = %v but μw = %v\n", μ, μw)
		return
	}

	// the mixture molar mass interpolates between water and NaCl
	chk.Float64(tst, "M(S=0.1)", 1e-17, b.MolarMass(), 0.9*18.016e-3+0.1*naclMolarMass)

	// inversion round trip on the salty density
	for _, ptrue := range []float64{1e5, 2e6, 1e7} {
		ρt, err := b.LiquidDensity(T, ptrue)
		if err != nil {
			tst.Errorf("LiquidDensity failed: %v\n", err)
			return
		}
		pinv, status, err := b.LiquidPressure(T, ρt)
		if err != nil {
			tst.Errorf("LiquidPressure failed: %v\n", err)
			return
		}
		if !status.Converged || status.Iterations > 5 {
			tst.Errorf("inversion at p = %v Pa: %v\n", ptrue, status)
			return
		}
		if math.Abs(pinv-ptrue) > 1e-6*ptrue {
			tst.Errorf("inversion at p = %v Pa is off: pinv = %v\n", ptrue, pinv)
			return
		}
	}
}

func Test_brine03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brine03. salinity validation")

	var einv *numerr.InvalidInputError
	if _, err := NewBrine(-0.1); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
	if _, err := NewBrine(1.0); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}
	if _, err := NewBrine(math.NaN()); !errors.As(err, &einv) {
		tst.Errorf("expected InvalidInputError; got %v\n", err)
		return
	}

	// two brines with different salinities do not interfere
	ba, err := NewBrine(0.05)
	if err != nil {
		tst.Errorf("NewBrine failed: %v\n", err)
		return
	}
	bb, err := NewBrine(0.25)
	if err != nil {
		tst.Errorf("NewBrine failed: %v\n", err)
		return
	}
	ρa, err := ba.LiquidDensity(293.15, 1e5)
	if err != nil {
		tst.Errorf("LiquidDensity failed: %v\n", err)
		return
	}
	ρb, err := bb.LiquidDensity(293.15, 1e5)
	if err != nil {
		tst.Errorf("LiquidDensity failed: %v\n", err)
		return
	}
	if ρb <= ρa {
		tst.Errorf("saltier brine must be denser: ρ(0.25) = %v but ρ(0.05) = %v\n", ρb, ρa)
		return
	}
}
