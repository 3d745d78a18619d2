// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/hakonhagland/opm-models/numerr"
)

// Brine implements properties of NaCl brine on top of pure water.
// The salinity (NaCl mass fraction) is an explicit per-instance
// parameter, so independent brines with different salinities can be
// used concurrently. With Salinity == 0 every liquid property delegates
// to the underlying H2O model, so the pure-water limit is exact.
//  References:
//   [1] Batzle M and Wang Z (1992) Seismic properties of pore fluids,
//       Geophysics, 57(11), 1396-1408
//   [2] Michaelides EE (1981) Thermodynamic properties of geothermal
//       fluids, Geothermal Resources Council Transactions, 5, 361-364
type Brine struct {
	Salinity float64 // NaCl mass fraction [kg/kg]
	water    H2O
}

// molar mass of NaCl [kg/mol]
const naclMolarMass = 58.44e-3

// Palliser coefficients for the NaCl saturation mass fraction
var brineSsat = [4]float64{2.63500e-1, 7.48368e-6, 1.44611e-6, -3.80860e-10}

// Michaelides coefficients for the enthalpy of mixing of brine
var brineDh = [4][3]float64{
	{-9633.6, -4080.0, +286.49},
	{+166.58, +68.577, -4.6856},
	{-0.90963, -0.36524, +0.249667e-1},
	{+0.17965e-2, +0.71924e-3, -0.4900e-4},
}

// NewBrine creates a brine model with the given NaCl mass fraction
func NewBrine(salinity float64) (*Brine, error) {
	if math.IsNaN(salinity) || salinity < 0 || salinity >= 1 {
		return nil, numerr.InvalidInput("brine: salinity must be within [0,1); got %v", salinity)
	}
	return &Brine{Salinity: salinity}, nil
}

// Name returns the name of this component
func (o *Brine) Name() string { return "Brine" }

// MolarMass returns the molar mass [kg/mol] of the water-salt mixture
// surrogate, assuming the salt is pure NaCl
func (o *Brine) MolarMass() float64 {
	return o.water.MolarMass()*(1.0-o.Salinity) + o.Salinity*naclMolarMass
}

// CriticalTemperature returns the critical temperature [K]
func (o *Brine) CriticalTemperature() float64 { return o.water.CriticalTemperature() }

// CriticalPressure returns the critical pressure [Pa]
func (o *Brine) CriticalPressure() float64 { return o.water.CriticalPressure() }

// VaporPressure computes the vapor pressure [Pa]; the lowering by the
// dissolved salt is neglected
func (o *Brine) VaporPressure(T float64) (float64, error) {
	return o.water.VaporPressure(T)
}

// LiquidDensity computes the density of brine [kg/m³]
func (o *Brine) LiquidDensity(T, p float64) (float64, error) {
	if o.Salinity == 0 {
		return o.water.LiquidDensity(T, p)
	}
	ρw, err := o.water.LiquidDensity(T, p)
	if err != nil {
		return 0, err
	}
	S := o.Salinity
	tc := T - 273.15
	pMPa := p / 1.0e6
	return ρw + 1000.0*S*(0.668+
		0.44*S+
		1.0e-6*(300.0*pMPa-
			2400.0*pMPa*S+
			tc*(80.0-
				3.0*tc-
				3300.0*S-
				13.0*pMPa+
				47.0*pMPa*S))), nil
}

// LiquidPressure computes the pressure [Pa] at which brine has the
// given density, by Newton inversion of LiquidDensity
func (o *Brine) LiquidPressure(T, ρ float64) (float64, numerr.Status, error) {
	pv, err := o.VaporPressure(T)
	if err != nil {
		return 0, numerr.Status{}, err
	}
	return liquidPressureNewton(T, ρ, pv, o.LiquidDensity)
}

// LiquidEnthalpy computes the specific enthalpy of brine [J/kg]
func (o *Brine) LiquidEnthalpy(T, p float64) (float64, error) {
	if o.Salinity == 0 {
		return o.water.LiquidEnthalpy(T, p)
	}
	hw, err := o.water.LiquidEnthalpy(T, p)
	if err != nil {
		return 0, err
	}
	θ := T - 273.15

	// the formulation is only valid up to the NaCl saturation fraction
	S := o.Salinity
	slSat := brineSsat[0] + θ*(brineSsat[1]+θ*(brineSsat[2]+θ*brineSsat[3]))
	if S > slSat {
		S = slSat
	}

	// enthalpy of pure NaCl (Daubert and Danner) [kJ/kg]
	hNaCl := (3.6710e4*T+0.5*6.2770e1*T*T-(6.6670e-2/3.0)*T*T*T+
		(2.8000e-5/4.0)*math.Pow(T, 4))/58.44e3 - 2.045698e+02

	// enthalpy of mixing (Michaelides) [kJ/kg]
	m := (1.0e3 / 58.44) * (S / (1.0 - S))
	dh := 0.0
	for i := 0; i <= 3; i++ {
		for j := 0; j <= 2; j++ {
			dh += brineDh[i][j] * math.Pow(θ, float64(i)) * math.Pow(m, float64(j))
		}
	}
	Δh := (4.184 / (1.0e3 + 58.44*m)) * dh

	return 1.0e3 * ((1.0-S)*(hw/1.0e3) + S*hNaCl + S*Δh), nil
}

// LiquidInternalEnergy computes the specific internal energy of brine
// [J/kg]
func (o *Brine) LiquidInternalEnergy(T, p float64) (float64, error) {
	if o.Salinity == 0 {
		return o.water.LiquidInternalEnergy(T, p)
	}
	h, err := o.LiquidEnthalpy(T, p)
	if err != nil {
		return 0, err
	}
	ρ, err := o.LiquidDensity(T, p)
	if err != nil {
		return 0, err
	}
	return h - p/ρ, nil
}

// LiquidViscosity computes the dynamic viscosity of brine [Pa·s]
func (o *Brine) LiquidViscosity(T, p float64) (float64, error) {
	if o.Salinity == 0 {
		return o.water.LiquidViscosity(T, p)
	}
	if math.IsNaN(T) || math.IsNaN(p) {
		return 0, numerr.InvalidInput("brine: viscosity arguments must be finite; got T=%v p=%v", T, p)
	}
	if T < h2oTvisc { // regularization
		T = h2oTvisc
	}
	S := o.Salinity
	tc := T - 273.15
	A := (0.42*math.Pow(math.Pow(S, 0.8)-0.17, 2.0) + 0.045) * math.Pow(tc, 0.8)
	μ := 0.1 + 0.333*S + (1.65+91.9*S*S*S)*math.Exp(-A)
	return μ / 1000.0, nil
}

// GasDensity computes the density of the vapor [kg/m³]
func (o *Brine) GasDensity(T, p float64) (float64, error) { return o.water.GasDensity(T, p) }

// GasPressure computes the vapor pressure at a given density [Pa]
func (o *Brine) GasPressure(T, ρ float64) (float64, error) { return o.water.GasPressure(T, ρ) }

// GasEnthalpy computes the specific enthalpy of the vapor [J/kg]
func (o *Brine) GasEnthalpy(T, p float64) (float64, error) { return o.water.GasEnthalpy(T, p) }

// GasInternalEnergy computes the specific internal energy of the vapor
// [J/kg]
func (o *Brine) GasInternalEnergy(T, p float64) (float64, error) {
	return o.water.GasInternalEnergy(T, p)
}

// GasViscosity computes the dynamic viscosity of the vapor [Pa·s]
func (o *Brine) GasViscosity(T, p float64) (float64, error) { return o.water.GasViscosity(T, p) }
