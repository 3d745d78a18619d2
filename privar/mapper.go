// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package privar

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/hakonhagland/opm-models/flash"
	"github.com/hakonhagland/opm-models/mdl/fluid"
	"github.com/hakonhagland/opm-models/numerr"
	"github.com/hakonhagland/opm-models/state"
)

// Mapper is the single entry and exit point between fluid states and
// the primary-variable vector. States already in equilibrium are copied
// directly; all others are first equilibrated by the flash solver so
// that the extracted primary variables are mass conservative.
type Mapper struct {
	Lay    Layout        // vector layout
	Sys    fluid.System  // fluid system
	Flash  *flash.Solver // flash solver for the non-equilibrium path
	Energy Module        // temperature representation
}

// NewMapper creates a mapper for the given configuration
func NewMapper(sys fluid.System, solver *flash.Solver, energy Module) (*Mapper, error) {
	if sys == nil || solver == nil || energy == nil {
		return nil, chk.Err("privar: fluid system, flash solver and energy module must all be non-nil")
	}
	lay, err := NewLayout(sys.NumPhases(), sys.NumComponents(), energy)
	if err != nil {
		return nil, err
	}
	return &Mapper{Lay: lay, Sys: sys, Flash: solver, Energy: energy}, nil
}

// Assign sets the primary variables from an arbitrary fluid state in a
// mass-conservative way. The state must define temperatures, pressures,
// saturations, compositions and densities of all phases, with the same
// temperature in every phase. If isInEquilibrium is true the caller
// guarantees that the state also defines consistent fugacities and the
// values are copied directly, without verification beyond the
// temperature check. Otherwise the global component molarities are
// computed, the flash solver is run against them with the supplied
// material law, and the result is extracted; a flash that does not
// converge is reported as a NonConvergenceError together with its
// status.
func (o *Mapper) Assign(prv la.Vector, fs *state.State, law flash.MaterialLaw, isInEquilibrium bool) (numerr.Status, error) {

	// check input
	if len(prv) != o.Lay.Neq {
		return numerr.Status{}, numerr.InvalidInput("privar: vector has %d slots but the layout needs %d", len(prv), o.Lay.Neq)
	}
	if fs.Nphases() != o.Lay.Nphases || fs.Ncomps() != o.Lay.Ncomps {
		return numerr.Status{}, numerr.InvalidInput("privar: state is %dx%d but the layout is %dx%d",
			fs.Nphases(), fs.Ncomps(), o.Lay.Nphases, o.Lay.Ncomps)
	}
	for p := 1; p < o.Lay.Nphases; p++ {
		if fs.T[p] != fs.T[0] {
			return numerr.Status{}, numerr.Precondition("privar: phase temperatures differ: T[%d] = %v K but T[0] = %v K", p, fs.T[p], fs.T[0])
		}
	}

	// fast path: the state already expresses equilibrium
	if isInEquilibrium {
		return numerr.Status{Converged: true}, o.assignNaive(prv, fs)
	}

	// equilibrate a copy against the state's global molarities
	mol := fs.GlobalMolarities(nil)
	fsFlash := fs.Clone()
	status, err := o.Flash.Solve(fsFlash, mol, law)
	if err != nil {
		return status, err
	}
	if !status.Converged {
		return status, numerr.NonConvergence("flash solve", status)
	}
	return status, o.assignNaive(prv, fsFlash)
}

// assignNaive extracts the primary variables from an equilibrated state:
// temperature slots via the energy module, reference-phase fugacities,
// reference pressure and the first M-1 saturations
func (o *Mapper) assignNaive(prv la.Vector, fs *state.State) error {
	if err := o.Energy.SetPriVarTemperatures(prv, o.Lay, fs); err != nil {
		return err
	}
	for c := 0; c < o.Lay.Ncomps; c++ {
		prv[o.Lay.Fug0+c] = fs.F[0][c]
	}
	prv[o.Lay.P0] = fs.P[0]
	for p := 0; p < o.Lay.Nphases-1; p++ {
		prv[o.Lay.S0+p] = fs.Sat[p]
	}
	return nil
}

// Reconstruct builds the fluid state determined by a primary-variable
// vector: the last saturation from the sum-to-one invariant, the phase
// pressures from the reference pressure and the capillary law, the
// compositions from the fugacities through the fluid system's
// equilibrium relations, and the densities from the fluid system. T is
// the configuration temperature, used when the layout stores none.
func (o *Mapper) Reconstruct(prv la.Vector, law flash.MaterialLaw, T float64) (*state.State, error) {
	if len(prv) != o.Lay.Neq {
		return nil, numerr.InvalidInput("privar: vector has %d slots but the layout needs %d", len(prv), o.Lay.Neq)
	}
	nph, ncp := o.Lay.Nphases, o.Lay.Ncomps
	fs := state.New(nph, ncp)

	// temperatures
	if err := o.Energy.StateTemperatures(prv, o.Lay, T, fs); err != nil {
		return nil, err
	}

	// saturations
	sum := 0.0
	for p := 0; p < nph-1; p++ {
		fs.Sat[p] = prv[o.Lay.S0+p]
		sum += fs.Sat[p]
	}
	fs.Sat[nph-1] = 1.0 - sum

	// phase pressures
	pcs := make([]float64, nph)
	if err := law.CapillaryPressures(pcs, fs.Sat); err != nil {
		return nil, err
	}
	for p := 0; p < nph; p++ {
		fs.P[p] = prv[o.Lay.P0] + pcs[p]
	}

	// compositions and fugacities
	for p := 0; p < nph; p++ {
		for c := 0; c < ncp; c++ {
			φ, err := o.Sys.FugacityCoefficient(p, c, fs.T[p], fs.P[p])
			if err != nil {
				return nil, err
			}
			fs.F[p][c] = prv[o.Lay.Fug0+c]
			fs.X[p][c] = prv[o.Lay.Fug0+c] / (φ * fs.P[p])
		}
	}

	// densities
	for p := 0; p < nph; p++ {
		cm, err := o.Sys.MolarDensity(p, fs.T[p], fs.P[p], fs.X[p])
		if err != nil {
			return nil, err
		}
		ρ, err := o.Sys.Density(p, fs.T[p], fs.P[p], fs.X[p])
		if err != nil {
			return nil, err
		}
		fs.C[p] = cm
		fs.Rho[p] = ρ
	}
	return fs, nil
}
