// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/hakonhagland/opm-models/numerr"
)

// Lin implements a linear retention law: sl(pc) := slmax - λ*(pc - pcae)
type Lin struct {

	// parameters
	λ     float64 // slope coefficient [1/Pa]
	pcae  float64 // air-entry pressure [Pa]
	slmin float64 // residual (minimum) saturation
	slmax float64 // maximum saturation

	// derived
	pcres float64 // residual pc corresponding to slmin
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	o.slmax = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ < 1e-13 {
		return chk.Err("lin: slope coefficient lam = %g is too small for an invertible law\n", o.λ)
	}
	if o.slmin >= o.slmax {
		return chk.Err("lin: slmin = %g must be smaller than slmax = %g\n", o.slmin, o.slmax)
	}
	o.pcres = o.pcae + (o.slmax-o.slmin)/o.λ
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "lam", V: 2e-4},
		&dbf.P{N: "pcae", V: 0.0},
		&dbf.P{N: "slmin", V: 0.0},
		&dbf.P{N: "slmax", V: 1.0},
	}
}

// SlMin returns sl_min
func (o Lin) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o Lin) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o Lin) Sl(pc float64) (float64, error) {
	if math.IsNaN(pc) {
		return 0, numerr.InvalidInput("lin: capillary pressure is NaN")
	}
	if pc <= o.pcae {
		return o.slmax, nil
	}
	if pc >= o.pcres {
		return o.slmin, nil
	}
	return o.slmax - o.λ*(pc-o.pcae), nil
}

// Pc computes pc directly from sl
func (o Lin) Pc(sl float64) (float64, error) {
	if err := o.checkSl(sl); err != nil {
		return 0, err
	}
	return o.pcae + (o.slmax-sl)/o.λ, nil
}

// DpcDsl computes ∂pc/∂sl
func (o Lin) DpcDsl(sl float64) (float64, error) {
	if err := o.checkSl(sl); err != nil {
		return 0, err
	}
	return -1.0 / o.λ, nil
}

func (o Lin) checkSl(sl float64) error {
	if math.IsNaN(sl) || sl < o.slmin || sl > o.slmax {
		return numerr.InvalidInput("lin: saturation %v outside [%g,%g]", sl, o.slmin, o.slmax)
	}
	return nil
}
