// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements component property models (pure empirical
// functions of temperature and pressure, SI units) and the fluid systems
// combining them into phase-level quantities for the flash solver.
package fluid

import "github.com/hakonhagland/opm-models/numerr"

// Rgas is the universal gas constant [J/(mol·K)]
const Rgas = 8.314472

// Patm is the standard atmospheric pressure [Pa]
const Patm = 101325.0

// Solvent is a component able to form the liquid phase. LiquidPressure
// inverts LiquidDensity with respect to pressure (Newton-Raphson seeded
// from the vapor pressure) and reports its convergence status.
type Solvent interface {
	Name() string
	MolarMass() float64                       // [kg/mol]
	VaporPressure(T float64) (float64, error) // [Pa]
	LiquidDensity(T, p float64) (float64, error)
	LiquidPressure(T, ρ float64) (float64, numerr.Status, error)
}

// Solute is a component dissolved in the liquid phase and forming the
// bulk of the gas phase. Henry returns the Henry coefficient [Pa] such
// that fugacity = x·Henry in the liquid phase.
type Solute interface {
	Name() string
	MolarMass() float64 // [kg/mol]
	Henry(T float64) (float64, error)
}
