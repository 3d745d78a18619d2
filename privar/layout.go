// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package privar implements the primary-variable vector: the fixed
// layout of the unknowns the outer simulation solves for (reference
// fugacities, reference pressure, saturations and, depending on the
// energy module, temperatures) and the mapper converting fluid states
// into and out of that vector.
package privar

import (
	"github.com/cpmech/gosl/chk"
)

// Layout holds the named offsets of the primary-variable vector,
// computed once from the configuration. The vector itself is a plain
// la.Vector owned by the outer solution; the core only reads and writes
// the offsets below.
//
//	[ fug_0 .. fug_{N-1} | p_ref | S_0 .. S_{M-2} | temperatures... ]
//
// The last saturation is implied by Σ S = 1 and never stored.
type Layout struct {
	Nphases int // number of fluid phases (M)
	Ncomps  int // number of components (N)
	Fug0    int // first reference-phase fugacity slot (N slots)
	P0      int // reference-phase pressure slot
	S0      int // first saturation slot (M-1 slots)
	T0      int // first temperature slot; -1 when the layout has none
	Neq     int // total number of slots
}

// NewLayout computes the vector layout for a given configuration
func NewLayout(nphases, ncomps int, energy Module) (lay Layout, err error) {
	if nphases < 1 || ncomps < 1 {
		err = chk.Err("privar: need at least one phase and one component; got %d and %d", nphases, ncomps)
		return
	}
	if energy == nil {
		err = chk.Err("privar: energy module must be non-nil")
		return
	}
	lay.Nphases = nphases
	lay.Ncomps = ncomps
	lay.Fug0 = 0
	lay.P0 = ncomps
	lay.S0 = ncomps + 1
	base := ncomps + 1 + nphases - 1
	ne := energy.NumEq(nphases)
	if ne > 0 {
		lay.T0 = base
	} else {
		lay.T0 = -1
	}
	lay.Neq = base + ne
	return
}
