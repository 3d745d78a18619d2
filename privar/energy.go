// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package privar

import (
	"github.com/cpmech/gosl/la"

	"github.com/hakonhagland/opm-models/numerr"
	"github.com/hakonhagland/opm-models/state"
)

// Module selects how temperature is represented in the primary-variable
// vector. It is chosen at configuration time, before the layout is
// computed. SetPriVarTemperatures writes the temperature slots from a
// fluid state; StateTemperatures performs the inverse, filling the
// per-phase temperatures of a state (falling back to the externally
// supplied temperature T when the layout stores none).
type Module interface {
	Name() string
	NumEq(nphases int) int
	SetPriVarTemperatures(prv la.Vector, lay Layout, fs *state.State) error
	StateTemperatures(prv la.Vector, lay Layout, T float64, fs *state.State) error
}

// Isothermal is the energy module of isothermal configurations: the
// temperature is a fixed configuration constant of the outer problem
// and no slot is stored
type Isothermal struct{}

// Name returns the name of this module
func (o Isothermal) Name() string { return "isothermal" }

// NumEq returns the number of temperature slots
func (o Isothermal) NumEq(nphases int) int { return 0 }

// SetPriVarTemperatures writes nothing
func (o Isothermal) SetPriVarTemperatures(prv la.Vector, lay Layout, fs *state.State) error {
	return nil
}

// StateTemperatures sets the externally supplied temperature in all
// phases
func (o Isothermal) StateTemperatures(prv la.Vector, lay Layout, T float64, fs *state.State) error {
	fs.SetTemperature(T)
	return nil
}

// SingleTemperature stores one shared temperature slot for all phases
type SingleTemperature struct{}

// Name returns the name of this module
func (o SingleTemperature) Name() string { return "single-temperature" }

// NumEq returns the number of temperature slots
func (o SingleTemperature) NumEq(nphases int) int { return 1 }

// SetPriVarTemperatures writes the shared temperature slot
func (o SingleTemperature) SetPriVarTemperatures(prv la.Vector, lay Layout, fs *state.State) error {
	if lay.T0 < 0 {
		return numerr.InvalidInput("privar: layout has no temperature slot")
	}
	prv[lay.T0] = fs.T[0]
	return nil
}

// StateTemperatures reads the shared temperature slot into all phases
func (o SingleTemperature) StateTemperatures(prv la.Vector, lay Layout, T float64, fs *state.State) error {
	if lay.T0 < 0 {
		return numerr.InvalidInput("privar: layout has no temperature slot")
	}
	fs.SetTemperature(prv[lay.T0])
	return nil
}

// PhaseTemperatures stores one temperature slot per phase, as needed by
// formulations tracking per-phase (kinetic) energy
type PhaseTemperatures struct{}

// Name returns the name of this module
func (o PhaseTemperatures) Name() string { return "phase-temperatures" }

// NumEq returns the number of temperature slots
func (o PhaseTemperatures) NumEq(nphases int) int { return nphases }

// SetPriVarTemperatures writes one temperature slot per phase
func (o PhaseTemperatures) SetPriVarTemperatures(prv la.Vector, lay Layout, fs *state.State) error {
	if lay.T0 < 0 {
		return numerr.InvalidInput("privar: layout has no temperature slots")
	}
	for p := 0; p < lay.Nphases; p++ {
		prv[lay.T0+p] = fs.T[p]
	}
	return nil
}

// StateTemperatures reads the per-phase temperature slots
func (o PhaseTemperatures) StateTemperatures(prv la.Vector, lay Layout, T float64, fs *state.State) error {
	if lay.T0 < 0 {
		return numerr.InvalidInput("privar: layout has no temperature slots")
	}
	for p := 0; p < lay.Nphases; p++ {
		fs.T[p] = prv[lay.T0+p]
	}
	return nil
}
