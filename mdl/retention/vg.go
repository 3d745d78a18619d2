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

// VanGen implements van Genuchten's model:
//   Se(pc) = (1 + (α*pc)^n)^(-m)
//   sl     = slmin + (slmax-slmin)*Se
//   pc(sl) = (1/α) * (Se^(-1/m) - 1)^(1/n)
type VanGen struct {

	// parameters
	α, m, n float64 // shape parameters; α in [1/Pa]
	slmin   float64 // residual (minimum) saturation
	slmax   float64 // maximum saturation
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	o.slmax = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α < 1e-13 || o.m < 1e-13 || o.n < 1e-13 {
		return chk.Err("vg: alp = %g, m = %g and n = %g must all be positive\n", o.α, o.m, o.n)
	}
	if o.slmin >= o.slmax {
		return chk.Err("vg: slmin = %g must be smaller than slmax = %g\n", o.slmin, o.slmax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "alp", V: 1e-4},
		&dbf.P{N: "m", V: 0.5},
		&dbf.P{N: "n", V: 2.0},
		&dbf.P{N: "slmin", V: 0.0},
		&dbf.P{N: "slmax", V: 1.0},
	}
}

// SlMin returns sl_min
func (o VanGen) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o VanGen) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o VanGen) Sl(pc float64) (float64, error) {
	if math.IsNaN(pc) {
		return 0, numerr.InvalidInput("vg: capillary pressure is NaN")
	}
	if pc <= 0 {
		return o.slmax, nil
	}
	c := math.Pow(o.α*pc, o.n)
	return o.slmin + (o.slmax-o.slmin)*math.Pow(1.0+c, -o.m), nil
}

// Pc computes pc directly from sl
func (o VanGen) Pc(sl float64) (float64, error) {
	se, err := o.se(sl)
	if err != nil {
		return 0, err
	}
	if se == 1.0 {
		return 0, nil
	}
	return math.Pow(math.Pow(se, -1.0/o.m)-1.0, 1.0/o.n) / o.α, nil
}

// DpcDsl computes ∂pc/∂sl
func (o VanGen) DpcDsl(sl float64) (float64, error) {
	se, err := o.se(sl)
	if err != nil {
		return 0, err
	}
	if se == 1.0 {
		// one-sided limit; the law has infinite slope only for n < 1
		se = 1.0 - 1e-12
	}
	b := math.Pow(se, -1.0/o.m) - 1.0
	dpcdse := -math.Pow(b, 1.0/o.n-1.0) * math.Pow(se, -1.0/o.m-1.0) / (o.α * o.m * o.n)
	return dpcdse / (o.slmax - o.slmin), nil
}

// se computes the effective saturation, failing on out-of-range input;
// sl == slmin is excluded because pc diverges there
func (o VanGen) se(sl float64) (float64, error) {
	if math.IsNaN(sl) || sl <= o.slmin || sl > o.slmax {
		return 0, numerr.InvalidInput("vg: saturation %v outside (%g,%g]", sl, o.slmin, o.slmax)
	}
	return (sl - o.slmin) / (o.slmax - o.slmin), nil
}
