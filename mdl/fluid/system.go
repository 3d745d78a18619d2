// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/hakonhagland/opm-models/numerr"
)

// System defines the fluid-system queries needed by the flash solver and
// the primary-variable reconstruction. Mole fraction slices x are indexed
// by component and must have length NumComponents.
//
// The fugacity of component c in phase p is x[c]·φ·p with
// φ = FugacityCoefficient(p, c, T, p).
type System interface {
	NumPhases() int
	NumComponents() int
	MolarDensity(phase int, T, p float64, x []float64) (float64, error)    // [mol/m³]
	Density(phase int, T, p float64, x []float64) (float64, error)         // [kg/m³]
	FugacityCoefficient(phase, comp int, T, p float64) (float64, error)    // [-]
}

// phase indices of the LiquidGas system
const (
	LiqPhase = 0
	GasPhase = 1
)

// component indices of the LiquidGas system
const (
	SolventComp = 0
	SoluteComp  = 1
)

// LiquidGas is an ideal two-phase, two-component fluid system: a liquid
// solvent (water, brine, or a surrogate) with a dissolved gas solute.
// The gas phase is an ideal mixture of ideal gases (fugacity
// coefficients of one); in the liquid phase the solvent follows
// Raoult's law (φ = pvap/p) and the solute follows Henry's law
// (φ = H/p). The liquid molar density is that of the pure solvent
// (ideal dilution).
type LiquidGas struct {
	Liq Solvent
	Gas Solute
}

// NewLiquidGas creates a new liquid-gas fluid system
func NewLiquidGas(liq Solvent, gas Solute) (*LiquidGas, error) {
	if liq == nil || gas == nil {
		return nil, numerr.InvalidInput("liquidgas: solvent and solute must both be non-nil")
	}
	return &LiquidGas{Liq: liq, Gas: gas}, nil
}

// NumPhases returns the number of phases
func (o *LiquidGas) NumPhases() int { return 2 }

// NumComponents returns the number of components
func (o *LiquidGas) NumComponents() int { return 2 }

// MolarDensity computes the molar density [mol/m³] of a phase
func (o *LiquidGas) MolarDensity(phase int, T, p float64, x []float64) (float64, error) {
	switch phase {
	case LiqPhase:
		ρ, err := o.Liq.LiquidDensity(T, p)
		if err != nil {
			return 0, err
		}
		return ρ / o.Liq.MolarMass(), nil
	case GasPhase:
		if math.IsNaN(T) || T <= 0 {
			return 0, numerr.InvalidInput("liquidgas: temperature must be positive; got %v K", T)
		}
		if math.IsNaN(p) || p < 0 {
			return 0, numerr.InvalidInput("liquidgas: gas pressure must be non-negative; got %v Pa", p)
		}
		return p / (Rgas * T), nil
	}
	return 0, numerr.InvalidInput("liquidgas: phase index %d out of range", phase)
}

// Density computes the mass density [kg/m³] of a phase
func (o *LiquidGas) Density(phase int, T, p float64, x []float64) (float64, error) {
	if len(x) != 2 {
		return 0, numerr.InvalidInput("liquidgas: composition must have 2 entries; got %d", len(x))
	}
	c, err := o.MolarDensity(phase, T, p, x)
	if err != nil {
		return 0, err
	}
	return c * (x[SolventComp]*o.Liq.MolarMass() + x[SoluteComp]*o.Gas.MolarMass()), nil
}

// FugacityCoefficient computes the fugacity coefficient [-] of a
// component in a phase
func (o *LiquidGas) FugacityCoefficient(phase, comp int, T, p float64) (float64, error) {
	if math.IsNaN(p) || p <= 0 {
		return 0, numerr.InvalidInput("liquidgas: pressure must be positive; got %v Pa", p)
	}
	switch phase {
	case LiqPhase:
		switch comp {
		case SolventComp:
			pv, err := o.Liq.VaporPressure(T)
			if err != nil {
				return 0, err
			}
			return pv / p, nil
		case SoluteComp:
			h, err := o.Gas.Henry(T)
			if err != nil {
				return 0, err
			}
			return h / p, nil
		}
	case GasPhase:
		if comp == SolventComp || comp == SoluteComp {
			return 1.0, nil
		}
	default:
		return 0, numerr.InvalidInput("liquidgas: phase index %d out of range", phase)
	}
	return 0, numerr.InvalidInput("liquidgas: component index %d out of range", comp)
}
