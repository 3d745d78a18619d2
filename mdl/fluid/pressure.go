// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/hakonhagland/opm-models/numerr"
)

// inversion constants
const (
	pInvNmaxIt = 5     // Newton iteration budget
	pInvRtol   = 1e-9  // relative tolerance on the pressure step
	pInvEpsFac = 1e-7  // central-difference step as a fraction of the initial guess
	pInvDerMin = 1e-20 // derivative magnitude below which the iteration is degenerate
)

// liquidPressureNewton inverts a liquid density function with respect to
// pressure: it finds p such that density(T,p) = ρtarget. The iteration
// starts at 1.1 times the vapor pressure pv and the derivative is
// estimated by a central finite difference with a step fixed from the
// initial guess. The returned status carries the iteration count and the
// density residual at exit; callers decide how to treat non-convergence.
func liquidPressureNewton(T, ρtarget, pv float64, density func(T, p float64) (float64, error)) (p float64, status numerr.Status, err error) {

	// check target
	if math.IsNaN(ρtarget) || math.IsInf(ρtarget, 0) || ρtarget <= 0 {
		err = numerr.InvalidInput("target density must be positive and finite; got %v", ρtarget)
		return
	}

	// initial guess and fixed finite-difference step
	p = 1.1 * pv
	ε := p * pInvEpsFac

	// Newton-Raphson
	var f, fp, fm, dfdp, Δp float64
	for it := 0; it < pInvNmaxIt; it++ {
		status.Iterations = it + 1

		// residual
		f, err = density(T, p)
		if err != nil {
			return
		}
		f -= ρtarget

		// central-difference derivative
		fp, err = density(T, p+ε)
		if err != nil {
			return
		}
		fm, err = density(T, p-ε)
		if err != nil {
			return
		}
		dfdp = (fp - fm) / (2.0 * ε)
		if math.Abs(dfdp) < pInvDerMin {
			err = numerr.Degeneracy("dρ/dp = %v at p = %v Pa; cannot continue Newton iteration", dfdp, p)
			return
		}

		// update
		Δp = -f / dfdp
		p += Δp
		if math.IsNaN(p) || p <= 0 {
			err = numerr.Degeneracy("pressure iterate became invalid (p = %v Pa, Δp = %v Pa)", p, Δp)
			return
		}
		if math.Abs(Δp) < pInvRtol*math.Abs(p) {
			status.Converged = true
			break
		}
	}

	// density residual at exit
	f, err = density(T, p)
	if err != nil {
		return
	}
	status.Residual = math.Abs(f - ρtarget)
	return
}
