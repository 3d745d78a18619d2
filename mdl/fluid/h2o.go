// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/hakonhagland/opm-models/numerr"
)

// H2O implements properties of pure water using simple empirical
// correlations:
//   VaporPressure   -- Antoine equation, valid 256 K to 373 K and
//                      extrapolated up to the critical temperature
//   LiquidDensity   -- Kell (1975) polynomial at atmospheric pressure
//                      combined with an exponential isothermal
//                      compressibility correction (K = 2.15 GPa);
//                      valid 273.15 K to 423.15 K
//   LiquidViscosity -- exponential correlation; the temperature is
//                      clamped to 275 K before evaluation because the
//                      correlation is undefined below that
//   gas side        -- ideal gas with constant heat capacity
// All quantities are SI: T [K], p [Pa], ρ [kg/m³], h and u [J/kg],
// μ [Pa·s].
type H2O struct{}

// liquid-side constants
const (
	h2oKbulk = 2.15e9 // isothermal bulk modulus of liquid water [Pa]
	h2oCpLiq = 4186.0 // specific heat of liquid water [J/(kg·K)]
	h2oCpGas = 1930.0 // specific heat of steam [J/(kg·K)]
	h2oHvap  = 2.501e6 // latent heat of vaporization at 273.15 K [J/kg]
	h2oTmin  = 273.15 // lower liquid validity bound [K]
	h2oTmax  = 423.15 // upper liquid validity bound [K]
	h2oTvisc = 275.0  // viscosity regularization floor [K]
)

// Name returns the name of this component
func (o H2O) Name() string { return "H2O" }

// MolarMass returns the molar mass [kg/mol]
func (o H2O) MolarMass() float64 { return 18.016e-3 }

// CriticalTemperature returns the critical temperature [K]
func (o H2O) CriticalTemperature() float64 { return 647.096 }

// CriticalPressure returns the critical pressure [Pa]
func (o H2O) CriticalPressure() float64 { return 22.064e6 }

// TripleTemperature returns the triple-point temperature [K]
func (o H2O) TripleTemperature() float64 { return 273.16 }

// TriplePressure returns the triple-point pressure [Pa]
func (o H2O) TriplePressure() float64 { return 611.657 }

// VaporPressure computes the saturation vapor pressure [Pa]
func (o H2O) VaporPressure(T float64) (float64, error) {
	if math.IsNaN(T) || T < 255.9 || T > o.CriticalTemperature() {
		return 0, numerr.InvalidInput("h2o: temperature %v K outside vapor pressure validity range [255.9,647.096]", T)
	}
	return 1e5 * math.Pow(10.0, 4.6543-1435.264/(T-64.848)), nil
}

// checkLiquidTp checks the validity range of the liquid correlations
func (o H2O) checkLiquidTp(T, p float64) error {
	if math.IsNaN(T) || T < h2oTmin || T > h2oTmax {
		return numerr.InvalidInput("h2o: temperature %v K outside liquid validity range [%g,%g]", T, h2oTmin, h2oTmax)
	}
	if math.IsNaN(p) || p <= 0 {
		return numerr.InvalidInput("h2o: pressure must be positive; got %v Pa", p)
	}
	return nil
}

// LiquidDensity computes the density of liquid water [kg/m³]
func (o H2O) LiquidDensity(T, p float64) (float64, error) {
	if err := o.checkLiquidTp(T, p); err != nil {
		return 0, err
	}
	t := T - 273.15
	ρ0 := (999.83952 + t*(16.945176+t*(-7.9870401e-3+t*(-46.170461e-6+t*(105.56302e-9+t*(-280.54253e-12)))))) /
		(1.0 + 16.879850e-3*t)
	return ρ0 * math.Exp((p-Patm)/h2oKbulk), nil
}

// LiquidPressure computes the pressure [Pa] at which liquid water has
// the given density, by Newton inversion of LiquidDensity
func (o H2O) LiquidPressure(T, ρ float64) (float64, numerr.Status, error) {
	pv, err := o.VaporPressure(T)
	if err != nil {
		return 0, numerr.Status{}, err
	}
	return liquidPressureNewton(T, ρ, pv, o.LiquidDensity)
}

// LiquidViscosity computes the dynamic viscosity of liquid water [Pa·s].
// The pressure dependence is neglected.
func (o H2O) LiquidViscosity(T, p float64) (float64, error) {
	if math.IsNaN(T) || math.IsNaN(p) {
		return 0, numerr.InvalidInput("h2o: viscosity arguments must be finite; got T=%v p=%v", T, p)
	}
	if T < h2oTvisc { // regularization
		T = h2oTvisc
	}
	return 2.414e-5 * math.Pow(10.0, 247.8/(T-140.0)), nil
}

// LiquidEnthalpy computes the specific enthalpy of liquid water [J/kg]
func (o H2O) LiquidEnthalpy(T, p float64) (float64, error) {
	if err := o.checkLiquidTp(T, p); err != nil {
		return 0, err
	}
	return h2oCpLiq * (T - 273.15), nil
}

// LiquidInternalEnergy computes the specific internal energy of liquid
// water [J/kg]
func (o H2O) LiquidInternalEnergy(T, p float64) (float64, error) {
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

// GasDensity computes the density of steam [kg/m³] (ideal gas)
func (o H2O) GasDensity(T, p float64) (float64, error) {
	if math.IsNaN(T) || T <= 0 {
		return 0, numerr.InvalidInput("h2o: temperature must be positive; got %v K", T)
	}
	if math.IsNaN(p) || p < 0 {
		return 0, numerr.InvalidInput("h2o: pressure must be non-negative; got %v Pa", p)
	}
	return p * o.MolarMass() / (Rgas * T), nil
}

// GasPressure computes the pressure of steam [Pa] at a given density
// and temperature (analytic ideal-gas inverse)
func (o H2O) GasPressure(T, ρ float64) (float64, error) {
	if math.IsNaN(T) || T <= 0 {
		return 0, numerr.InvalidInput("h2o: temperature must be positive; got %v K", T)
	}
	if math.IsNaN(ρ) || ρ < 0 {
		return 0, numerr.InvalidInput("h2o: density must be non-negative; got %v kg/m³", ρ)
	}
	return ρ * Rgas * T / o.MolarMass(), nil
}

// GasEnthalpy computes the specific enthalpy of steam [J/kg]
func (o H2O) GasEnthalpy(T, p float64) (float64, error) {
	if math.IsNaN(T) || T <= 0 {
		return 0, numerr.InvalidInput("h2o: temperature must be positive; got %v K", T)
	}
	return h2oHvap + h2oCpGas*(T-273.15), nil
}

// GasInternalEnergy computes the specific internal energy of steam [J/kg]
func (o H2O) GasInternalEnergy(T, p float64) (float64, error) {
	h, err := o.GasEnthalpy(T, p)
	if err != nil {
		return 0, err
	}
	return h - Rgas*T/o.MolarMass(), nil
}

// GasViscosity computes the dynamic viscosity of steam [Pa·s]
func (o H2O) GasViscosity(T, p float64) (float64, error) {
	return 1.0e-5, nil
}
