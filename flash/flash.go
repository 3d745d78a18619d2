// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flash implements the phase-equilibrium (flash) solver: given
// target global component molarities and a capillary pressure law, it
// drives a fluid state into simultaneous chemical (equal fugacities),
// mechanical (capillary pressure) and mass-conservation equilibrium,
// activating and deactivating phases through complementarity conditions.
package flash

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"

	"github.com/hakonhagland/opm-models/mdl/fluid"
	"github.com/hakonhagland/opm-models/numerr"
	"github.com/hakonhagland/opm-models/state"
)

// Solver computes fluid states in thermodynamic and mechanical
// equilibrium with a semismooth Newton iteration. The unknown vector is
//   q = [ p_ref | S_0 .. S_{M-2} | x_{p,c} (row-major) ]
// (the last saturation is implied by Σ S = 1) and the residual stacks
//   N     mass-balance equations      Σ_p S_p·c_p·x_{p,c} - molarity_c
//   (M-1)·N fugacity equalities       f_{0,c} - f_{p,c}
//   M     complementarity conditions  min(S_p, 1 - Σ_c x_{p,c})
// The complementarity branch taken for each phase (absent: S_p, present:
// 1 - Σx) is tracked explicitly in a per-phase presence vector and the
// residual/Jacobian assembly is re-derived whenever that set changes.
// The Jacobian is obtained by central-difference perturbation and the
// linear step is solved densely with an LU factorization.
//
// A Solver carries iteration workspace: create one per goroutine.
type Solver struct {

	// constants
	NmaxIt int     // max number of Newton iterations
	Itol   float64 // residual infinity-norm tolerance
	Dpert  float64 // relative perturbation for the numerical Jacobian
	ShowR  bool    // print residuals during iteration

	// fluid system
	sys fluid.System

	// dimensions
	nph, ncp, nq int

	// workspace
	q, r, rp, rm []float64
	scales       []float64 // mass-balance residual scales
	pcs          []float64 // capillary pressure offsets
	presence     []bool    // complementarity branch per phase
	jac          *mat.Dense
	rhs, δq      *mat.VecDense
}

// NewSolver creates a flash solver for the given fluid system.
// Optional parameters: NmaxIt, Itol, Dpert, ShowR.
func NewSolver(sys fluid.System, prms dbf.Params) (*Solver, error) {
	if sys == nil {
		return nil, chk.Err("flash: fluid system must be non-nil")
	}
	o := &Solver{
		NmaxIt: 40,
		Itol:   1e-9,
		Dpert:  1e-7,
		sys:    sys,
	}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "nmaxit":
			o.NmaxIt = int(p.V)
		case "itol":
			o.Itol = p.V
		case "dpert":
			o.Dpert = p.V
		case "showr":
			o.ShowR = p.V > 0
		default:
			return nil, chk.Err("flash: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.NmaxIt < 1 || o.Itol <= 0 || o.Dpert <= 0 {
		return nil, chk.Err("flash: NmaxIt = %d, Itol = %g and Dpert = %g must all be positive\n", o.NmaxIt, o.Itol, o.Dpert)
	}
	o.nph = sys.NumPhases()
	o.ncp = sys.NumComponents()
	o.nq = o.nph + o.nph*o.ncp
	o.q = make([]float64, o.nq)
	o.r = make([]float64, o.nq)
	o.rp = make([]float64, o.nq)
	o.rm = make([]float64, o.nq)
	o.scales = make([]float64, o.ncp)
	o.pcs = make([]float64, o.nph)
	o.presence = make([]bool, o.nph)
	o.jac = mat.NewDense(o.nq, o.nq, nil)
	o.rhs = mat.NewVecDense(o.nq, nil)
	o.δq = mat.NewVecDense(o.nq, nil)
	return o, nil
}

// unknown-vector offsets: q[0] is the reference pressure, q[1+p] the
// saturation of phase p (p < nph-1), and ixX(p,c) the mole fraction of
// component c in phase p
func (o *Solver) ixX(p, c int) int { return o.nph + p*o.ncp + c }

// GuessInitial overwrites the state with a neutral starting point for
// arbitrary inputs: equal saturations, one bar of pressure and phase
// compositions proportional to the target molarities. Temperatures are
// kept. The baseline Solve path does not call this; near-equilibrium
// callers seed from their own state.
func (o *Solver) GuessInitial(fs *state.State, globalMolarities []float64) error {
	if fs.Nphases() != o.nph || fs.Ncomps() != o.ncp || len(globalMolarities) != o.ncp {
		return numerr.InvalidInput("flash: dimensions mismatch: state is %dx%d, molarities %d, system %dx%d",
			fs.Nphases(), fs.Ncomps(), len(globalMolarities), o.nph, o.ncp)
	}
	sum := 0.0
	for c := 0; c < o.ncp; c++ {
		sum += globalMolarities[c]
	}
	for p := 0; p < o.nph; p++ {
		fs.Sat[p] = 1.0 / float64(o.nph)
		fs.P[p] = 1e5
		for c := 0; c < o.ncp; c++ {
			if sum > 0 {
				fs.X[p][c] = globalMolarities[c] / sum
			} else {
				fs.X[p][c] = 1.0 / float64(o.ncp)
			}
		}
	}
	return nil
}

// Solve drives fs into equilibrium with the given global component
// molarities [mol/m³] and capillary pressure law. The supplied state is
// the initial guess and is overwritten with the last iterate; its
// temperature defines the (isothermal) solve. Non-convergence within the
// iteration budget is reported through the status, not as an error: the
// caller decides whether it is fatal. Errors are reserved for ill-posed
// input, violated preconditions and numerical degeneracy.
func (o *Solver) Solve(fs *state.State, globalMolarities []float64, law MaterialLaw) (status numerr.Status, err error) {

	// check input
	if err = o.checkInput(fs, globalMolarities, law); err != nil {
		return
	}

	// residual scales
	for c := 0; c < o.ncp; c++ {
		o.scales[c] = math.Max(math.Abs(globalMolarities[c]), 1.0)
	}

	// seed unknowns from the given state
	o.q[0] = fs.P[0]
	for p := 0; p < o.nph-1; p++ {
		o.q[1+p] = fs.Sat[p]
	}
	for p := 0; p < o.nph; p++ {
		for c := 0; c < o.ncp; c++ {
			o.q[o.ixX(p, c)] = fs.X[p][c]
		}
	}

	// message
	if o.ShowR {
		io.PfYel("%6s%23s%12s\n", "it", "‖r‖∞", "presence")
	}

	// Newton iteration
	var rnorm float64
	for it := 0; it < o.NmaxIt; it++ {
		status.Iterations = it

		// residual at current iterate; the branch set is re-derived first
		if err = o.evalState(o.q, fs, law); err != nil {
			return
		}
		changed := o.updatePresence(fs)
		o.residual(fs, globalMolarities, o.r)
		rnorm = infNorm(o.r)

		// message
		if o.ShowR {
			io.Pfyel("%6d%23.15e%12v", it, rnorm, o.presence)
			if changed && it > 0 {
				io.Pfgrey("  (active-phase set changed)")
			}
			io.Pf("\n")
		}

		// convergence check
		if rnorm < o.Itol {
			status.Converged = true
			status.Residual = rnorm
			return
		}

		// numerical Jacobian by central differences
		if err = o.jacobian(fs, globalMolarities, law); err != nil {
			return
		}

		// linear solve: J δq = -r
		for i := 0; i < o.nq; i++ {
			o.rhs.SetVec(i, -o.r[i])
		}
		var lu mat.LU
		lu.Factorize(o.jac)
		if e := lu.SolveVecTo(o.δq, false, o.rhs); e != nil {
			if _, ill := e.(mat.Condition); !ill {
				err = numerr.Degeneracy("flash: singular Jacobian at iteration %d: %v", it, e)
				return
			}
		}

		// step damping: limit saturation and mole-fraction steps to 0.2
		// and the pressure step to half the current pressure
		λ := 1.0
		for j := 1; j < o.nq; j++ {
			if d := math.Abs(o.δq.AtVec(j)); d > 0.2 {
				λ = math.Min(λ, 0.2/d)
			}
		}
		if d := math.Abs(o.δq.AtVec(0)); d > 0.5*math.Max(math.Abs(o.q[0]), 1e3) {
			λ = math.Min(λ, 0.5*math.Max(math.Abs(o.q[0]), 1e3)/d)
		}

		// update
		for j := 0; j < o.nq; j++ {
			o.q[j] += λ * o.δq.AtVec(j)
			if math.IsNaN(o.q[j]) {
				err = numerr.Degeneracy("flash: NaN in unknown %d at iteration %d", j, it)
				return
			}
		}
	}

	// iteration budget exhausted: report the last iterate
	if err = o.evalState(o.q, fs, law); err != nil {
		return
	}
	o.updatePresence(fs)
	o.residual(fs, globalMolarities, o.r)
	status.Iterations = o.NmaxIt
	status.Residual = infNorm(o.r)
	return
}

// checkInput validates dimensions, molarities and the isothermal
// precondition
func (o *Solver) checkInput(fs *state.State, globalMolarities []float64, law MaterialLaw) error {
	if fs == nil || law == nil {
		return numerr.InvalidInput("flash: state and material law must be non-nil")
	}
	if fs.Nphases() != o.nph || fs.Ncomps() != o.ncp {
		return numerr.InvalidInput("flash: state is %dx%d but the fluid system is %dx%d",
			fs.Nphases(), fs.Ncomps(), o.nph, o.ncp)
	}
	if len(globalMolarities) != o.ncp {
		return numerr.InvalidInput("flash: expected %d global molarities; got %d", o.ncp, len(globalMolarities))
	}
	for c, m := range globalMolarities {
		if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			return numerr.InvalidInput("flash: global molarity of component %d is invalid: %v", c, m)
		}
	}
	if math.IsNaN(fs.T[0]) || fs.T[0] <= 0 {
		return numerr.InvalidInput("flash: temperature must be positive; got %v K", fs.T[0])
	}
	for p := 1; p < o.nph; p++ {
		if fs.T[p] != fs.T[0] {
			return numerr.Precondition("flash: phase temperatures differ: T[%d] = %v K but T[0] = %v K", p, fs.T[p], fs.T[0])
		}
	}
	// the seed is a guess, so composition closure is only checked loosely
	for p := 0; p < o.nph; p++ {
		sx := 0.0
		for c := 0; c < o.ncp; c++ {
			if math.IsNaN(fs.X[p][c]) {
				return numerr.InvalidInput("flash: mole fraction x[%d][%d] is NaN", p, c)
			}
			sx += fs.X[p][c]
		}
		if math.Abs(sx-1.0) > 1e-3 {
			return numerr.InvalidInput("flash: seed composition of phase %d does not sum to one: Σx = %v", p, sx)
		}
	}
	return nil
}

// evalState maps the unknown vector onto the fluid state: saturations
// (last one implied), phase pressures through the capillary law, mole
// fractions, and the derived molar densities, mass densities and
// fugacities
func (o *Solver) evalState(q []float64, fs *state.State, law MaterialLaw) error {

	// saturations
	sum := 0.0
	for p := 0; p < o.nph-1; p++ {
		fs.Sat[p] = q[1+p]
		sum += q[1+p]
	}
	fs.Sat[o.nph-1] = 1.0 - sum

	// phase pressures
	if err := law.CapillaryPressures(o.pcs, fs.Sat); err != nil {
		return err
	}
	for p := 0; p < o.nph; p++ {
		fs.P[p] = q[0] + o.pcs[p]
	}

	// compositions
	for p := 0; p < o.nph; p++ {
		for c := 0; c < o.ncp; c++ {
			fs.X[p][c] = q[o.ixX(p, c)]
		}
	}

	// derived quantities
	T := fs.T[0]
	for p := 0; p < o.nph; p++ {
		cm, err := o.sys.MolarDensity(p, T, fs.P[p], fs.X[p])
		if err != nil {
			return err
		}
		ρ, err := o.sys.Density(p, T, fs.P[p], fs.X[p])
		if err != nil {
			return err
		}
		fs.C[p] = cm
		fs.Rho[p] = ρ
		for c := 0; c < o.ncp; c++ {
			φ, err := o.sys.FugacityCoefficient(p, c, T, fs.P[p])
			if err != nil {
				return err
			}
			fs.F[p][c] = fs.X[p][c] * φ * fs.P[p]
		}
	}
	return nil
}

// updatePresence re-derives the complementarity branch of each phase
// from the current iterate; it reports whether the active set changed
func (o *Solver) updatePresence(fs *state.State) (changed bool) {
	for p := 0; p < o.nph; p++ {
		b := 1.0
		for c := 0; c < o.ncp; c++ {
			b -= fs.X[p][c]
		}
		present := b <= fs.Sat[p]
		if present != o.presence[p] {
			o.presence[p] = present
			changed = true
		}
	}
	return
}

// residual assembles the residual vector for the current branch set
func (o *Solver) residual(fs *state.State, globalMolarities []float64, r []float64) {

	// mass balance
	for c := 0; c < o.ncp; c++ {
		v := -globalMolarities[c]
		for p := 0; p < o.nph; p++ {
			v += fs.Sat[p] * fs.C[p] * fs.X[p][c]
		}
		r[c] = v / o.scales[c]
	}

	// fugacity equality against the reference phase
	pscale := math.Max(math.Abs(fs.P[0]), 1.0)
	k := o.ncp
	for p := 1; p < o.nph; p++ {
		for c := 0; c < o.ncp; c++ {
			r[k] = (fs.F[0][c] - fs.F[p][c]) / pscale
			k++
		}
	}

	// complementarity: absent phases pin their saturation, present
	// phases close their composition
	for p := 0; p < o.nph; p++ {
		if o.presence[p] {
			b := 1.0
			for c := 0; c < o.ncp; c++ {
				b -= fs.X[p][c]
			}
			r[k] = b
		} else {
			r[k] = fs.Sat[p]
		}
		k++
	}
}

// jacobian fills o.jac by central-difference perturbation of the
// unknowns, holding the branch set fixed
func (o *Solver) jacobian(fs *state.State, globalMolarities []float64, law MaterialLaw) error {
	for j := 0; j < o.nq; j++ {
		qj := o.q[j]
		h := o.Dpert * math.Max(math.Abs(qj), 1e-3)

		o.q[j] = qj + h
		if err := o.evalState(o.q, fs, law); err != nil {
			o.q[j] = qj
			return err
		}
		o.residual(fs, globalMolarities, o.rp)

		o.q[j] = qj - h
		if err := o.evalState(o.q, fs, law); err != nil {
			o.q[j] = qj
			return err
		}
		o.residual(fs, globalMolarities, o.rm)

		o.q[j] = qj
		for i := 0; i < o.nq; i++ {
			o.jac.Set(i, j, (o.rp[i]-o.rm[i])/(2.0*h))
		}
	}
	return nil
}

// infNorm returns the infinity norm of a vector
func infNorm(v []float64) (res float64) {
	for _, x := range v {
		if a := math.Abs(x); a > res {
			res = a
		}
	}
	return
}
