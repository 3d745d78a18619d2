// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/hakonhagland/opm-models/numerr"
)

// Linear implements a linearly compressible surrogate liquid:
//   ρ(p) = R0 + C・(p - P0)   thus   dρ/dp = C
// The temperature dependence is neglected. Pv is the (constant) vapor
// pressure used to seed the pressure-from-density inversion.
type Linear struct {

	// material data
	R0 float64 // intrinsic density corresponding to P0 [kg/m³]
	P0 float64 // pressure corresponding to R0 [Pa]
	C  float64 // compressibility coefficient dρ/dp [kg/(m³·Pa)]
	Pv float64 // constant vapor pressure [Pa]
	M  float64 // molar mass [kg/mol]
}

// Init initialises this model
func (o *Linear) Init(prms dbf.Params) (err error) {
	o.R0, o.P0, o.C = 998.2, Patm, 4.6e-7
	o.Pv, o.M = 2.3e3, 18.016e-3
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "r0":
			o.R0 = p.V
		case "p0":
			o.P0 = p.V
		case "c":
			o.C = p.V
		case "pv":
			o.Pv = p.V
		case "m":
			o.M = p.V
		default:
			return chk.Err("linear: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.R0 <= 0 || o.C <= 0 || o.Pv <= 0 || o.M <= 0 {
		return chk.Err("linear: R0, C, Pv and M must all be positive\n")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Linear) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "R0", V: 998.2},     // [kg/m³]
			&dbf.P{N: "P0", V: Patm},      // [Pa]
			&dbf.P{N: "C", V: 4.6e-7},     // [kg/(m³·Pa)]
			&dbf.P{N: "Pv", V: 2.3e3},     // [Pa]
			&dbf.P{N: "M", V: 18.016e-3},  // [kg/mol]
		}
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "Pv", V: o.Pv},
		&dbf.P{N: "M", V: o.M},
	}
}

// Name returns the name of this component
func (o Linear) Name() string { return "Linear" }

// MolarMass returns the molar mass [kg/mol]
func (o Linear) MolarMass() float64 { return o.M }

// VaporPressure returns the constant vapor pressure [Pa]
func (o Linear) VaporPressure(T float64) (float64, error) {
	return o.Pv, nil
}

// LiquidDensity computes the density [kg/m³]
func (o Linear) LiquidDensity(T, p float64) (float64, error) {
	if math.IsNaN(p) || p <= 0 {
		return 0, numerr.InvalidInput("linear: pressure must be positive; got %v Pa", p)
	}
	return o.R0 + o.C*(p-o.P0), nil
}

// LiquidPressure computes the pressure [Pa] corresponding to the given
// density by Newton inversion; since the model is linear in p the
// iteration converges within the first few steps
func (o Linear) LiquidPressure(T, ρ float64) (float64, numerr.Status, error) {
	return liquidPressureNewton(T, ρ, o.Pv, o.LiquidDensity)
}
