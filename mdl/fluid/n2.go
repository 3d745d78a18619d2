// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/hakonhagland/opm-models/numerr"
)

// N2 implements properties of molecular nitrogen as an ideal gas and a
// dissolved solute (Henry's law). Valid roughly between 273 K and 400 K.
type N2 struct{}

// n2 constants
const (
	n2Href   = 9.1e9  // Henry coefficient of N2 in water at 298.15 K [Pa]
	n2Hslope = 1300.0 // van 't Hoff temperature coefficient [K]
	n2CpGas  = 1041.0 // specific heat [J/(kg·K)]
	n2Tmin   = 273.0  // lower validity bound [K]
	n2Tmax   = 400.0  // upper validity bound [K]
)

// Name returns the name of this component
func (o N2) Name() string { return "N2" }

// MolarMass returns the molar mass [kg/mol]
func (o N2) MolarMass() float64 { return 28.013e-3 }

// CriticalTemperature returns the critical temperature [K]
func (o N2) CriticalTemperature() float64 { return 126.192 }

// CriticalPressure returns the critical pressure [Pa]
func (o N2) CriticalPressure() float64 { return 3.3958e6 }

// Henry computes the Henry coefficient [Pa] of N2 in water using a
// van 't Hoff correlation
func (o N2) Henry(T float64) (float64, error) {
	if math.IsNaN(T) || T < n2Tmin || T > n2Tmax {
		return 0, numerr.InvalidInput("n2: temperature %v K outside Henry validity range [%g,%g]", T, n2Tmin, n2Tmax)
	}
	return n2Href * math.Exp(-n2Hslope*(1.0/T-1.0/298.15)), nil
}

// GasDensity computes the density [kg/m³] (ideal gas)
func (o N2) GasDensity(T, p float64) (float64, error) {
	if math.IsNaN(T) || T <= 0 {
		return 0, numerr.InvalidInput("n2: temperature must be positive; got %v K", T)
	}
	if math.IsNaN(p) || p < 0 {
		return 0, numerr.InvalidInput("n2: pressure must be non-negative; got %v Pa", p)
	}
	return p * o.MolarMass() / (Rgas * T), nil
}

// GasPressure computes the pressure [Pa] at a given density and
// temperature (analytic ideal-gas inverse)
func (o N2) GasPressure(T, ρ float64) (float64, error) {
	if math.IsNaN(T) || T <= 0 {
		return 0, numerr.InvalidInput("n2: temperature must be positive; got %v K", T)
	}
	if math.IsNaN(ρ) || ρ < 0 {
		return 0, numerr.InvalidInput("n2: density must be non-negative; got %v kg/m³", ρ)
	}
	return ρ * Rgas * T / o.MolarMass(), nil
}

// GasEnthalpy computes the specific enthalpy [J/kg]
func (o N2) GasEnthalpy(T, p float64) (float64, error) {
	if math.IsNaN(T) || T <= 0 {
		return 0, numerr.InvalidInput("n2: temperature must be positive; got %v K", T)
	}
	return n2CpGas * (T - 273.15), nil
}

// GasInternalEnergy computes the specific internal energy [J/kg]
func (o N2) GasInternalEnergy(T, p float64) (float64, error) {
	h, err := o.GasEnthalpy(T, p)
	if err != nil {
		return 0, err
	}
	return h - Rgas*T/o.MolarMass(), nil
}

// GasViscosity computes the dynamic viscosity [Pa·s]
func (o N2) GasViscosity(T, p float64) (float64, error) {
	return 1.76e-5, nil
}
