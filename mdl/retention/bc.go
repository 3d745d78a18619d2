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

// BrooksCorey implements Brooks and Corey's model:
//   sl(pc) = slmin + (slmax-slmin)*(pcae/pc)^λ    for pc > pcae
//   pc(sl) = pcae * Se^(-1/λ)                     Se = (sl-slmin)/(slmax-slmin)
type BrooksCorey struct {

	// parameters
	λ     float64 // pore-size distribution index
	pcae  float64 // air-entry pressure [Pa]
	slmin float64 // residual (minimum) saturation
	slmax float64 // maximum saturation
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
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
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ < 1e-13 || o.pcae < 1e-13 {
		return chk.Err("bc: lam = %g and pcae = %g must both be positive\n", o.λ, o.pcae)
	}
	if o.slmin >= o.slmax {
		return chk.Err("bc: slmin = %g must be smaller than slmax = %g\n", o.slmin, o.slmax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "lam", V: 2.0},
		&dbf.P{N: "pcae", V: 1e3},
		&dbf.P{N: "slmin", V: 0.05},
		&dbf.P{N: "slmax", V: 1.0},
	}
}

// SlMin returns sl_min
func (o BrooksCorey) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o BrooksCorey) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o BrooksCorey) Sl(pc float64) (float64, error) {
	if math.IsNaN(pc) {
		return 0, numerr.InvalidInput("bc: capillary pressure is NaN")
	}
	if pc <= o.pcae {
		return o.slmax, nil
	}
	return o.slmin + (o.slmax-o.slmin)*math.Pow(o.pcae/pc, o.λ), nil
}

// Pc computes pc directly from sl
func (o BrooksCorey) Pc(sl float64) (float64, error) {
	se, err := o.se(sl)
	if err != nil {
		return 0, err
	}
	return o.pcae * math.Pow(se, -1.0/o.λ), nil
}

// DpcDsl computes ∂pc/∂sl
func (o BrooksCorey) DpcDsl(sl float64) (float64, error) {
	se, err := o.se(sl)
	if err != nil {
		return 0, err
	}
	return -o.pcae * math.Pow(se, -1.0/o.λ-1.0) / (o.λ * (o.slmax - o.slmin)), nil
}

// se computes the effective saturation, failing on out-of-range input;
// sl == slmin is excluded because pc diverges there
func (o BrooksCorey) se(sl float64) (float64, error) {
	if math.IsNaN(sl) || sl <= o.slmin || sl > o.slmax {
		return 0, numerr.InvalidInput("bc: saturation %v outside (%g,%g]", sl, o.slmin, o.slmax)
	}
	return (sl - o.slmin) / (o.slmax - o.slmin), nil
}
