// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state implements the fluid state: a snapshot container
// holding, per phase, temperature, pressure, saturation, composition,
// densities and fugacities at one evaluation point. It is the common
// currency between the outer assembly code, the flash solver and the
// primary-variable mapper; it has no identity across time steps.
package state

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/hakonhagland/opm-models/numerr"
)

// State holds the thermodynamic state of all fluid phases at one
// evaluation point. All quantities are SI. Indexing is [phase] or
// [phase][component].
type State struct {
	T   la.Vector   // temperature [K]
	P   la.Vector   // pressure [Pa]
	Sat la.Vector   // saturation [-]
	X   [][]float64 // mole fractions [-]
	C   la.Vector   // molar density [mol/m³]
	Rho la.Vector   // mass density [kg/m³]
	F   [][]float64 // fugacities [Pa]
}

// New creates a zeroed state for the given number of phases and
// components
func New(nphases, ncomps int) *State {
	o := &State{
		T:   la.NewVector(nphases),
		P:   la.NewVector(nphases),
		Sat: la.NewVector(nphases),
		C:   la.NewVector(nphases),
		Rho: la.NewVector(nphases),
		X:   make([][]float64, nphases),
		F:   make([][]float64, nphases),
	}
	for p := 0; p < nphases; p++ {
		o.X[p] = make([]float64, ncomps)
		o.F[p] = make([]float64, ncomps)
	}
	return o
}

// Nphases returns the number of phases
func (o *State) Nphases() int { return len(o.Sat) }

// Ncomps returns the number of components
func (o *State) Ncomps() int {
	if len(o.X) == 0 {
		return 0
	}
	return len(o.X[0])
}

// Clone creates a deep copy of this state
func (o *State) Clone() *State {
	s := New(o.Nphases(), o.Ncomps())
	copy(s.T, o.T)
	copy(s.P, o.P)
	copy(s.Sat, o.Sat)
	copy(s.C, o.C)
	copy(s.Rho, o.Rho)
	for p := 0; p < o.Nphases(); p++ {
		copy(s.X[p], o.X[p])
		copy(s.F[p], o.F[p])
	}
	return s
}

// SetTemperature sets the same temperature in all phases
func (o *State) SetTemperature(T float64) {
	for p := 0; p < o.Nphases(); p++ {
		o.T[p] = T
	}
}

// Molarity returns the molar concentration [mol/m³] of a component in a
// phase
func (o *State) Molarity(phase, comp int) float64 {
	return o.C[phase] * o.X[phase][comp]
}

// GlobalMolarities computes the saturation-weighted sum of the per-phase
// molar concentrations of each component: the target vector of the flash
// solver. res is used as workspace if it has the right size; otherwise a
// new vector is allocated.
func (o *State) GlobalMolarities(res la.Vector) la.Vector {
	if len(res) != o.Ncomps() {
		res = la.NewVector(o.Ncomps())
	}
	for c := 0; c < o.Ncomps(); c++ {
		res[c] = 0
		for p := 0; p < o.Nphases(); p++ {
			res[c] += o.Sat[p] * o.Molarity(p, c)
		}
	}
	return res
}

// Validate checks the physical invariants of an equilibrated state:
// saturations sum to one, present-phase compositions sum to one, and
// saturations and densities are non-negative and finite
func (o *State) Validate(tol float64) error {
	sum := 0.0
	for p := 0; p < o.Nphases(); p++ {
		if math.IsNaN(o.Sat[p]) || o.Sat[p] < -tol {
			return numerr.InvalidInput("state: saturation of phase %d is invalid: %v", p, o.Sat[p])
		}
		if math.IsNaN(o.Rho[p]) || o.Rho[p] < 0 || math.IsNaN(o.C[p]) || o.C[p] < 0 {
			return numerr.InvalidInput("state: densities of phase %d are invalid: ρ=%v c=%v", p, o.Rho[p], o.C[p])
		}
		sum += o.Sat[p]
	}
	if math.Abs(sum-1.0) > tol {
		return numerr.InvalidInput("state: saturations do not sum to one: Σsl = %v", sum)
	}
	for p := 0; p < o.Nphases(); p++ {
		if o.Sat[p] <= tol { // absent phase: composition unconstrained
			continue
		}
		sx := 0.0
		for c := 0; c < o.Ncomps(); c++ {
			sx += o.X[p][c]
		}
		if math.Abs(sx-1.0) > tol {
			return numerr.InvalidInput("state: composition of phase %d does not sum to one: Σx = %v", p, sx)
		}
	}
	return nil
}
