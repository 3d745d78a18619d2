// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements capillary pressure / liquid saturation
// material laws. A model is an opaque parameter bundle owned by the
// spatial-parameter subsystem of the outer simulation; the numerical
// core only evaluates it and never mutates it.
//  References:
//   [1] Brooks RH and Corey AT (1964) Hydraulic properties of porous
//       media. Hydrology Papers 3, Colorado State University
//   [2] van Genuchten MT (1980) A closed-form equation for predicting
//       the hydraulic conductivity of unsaturated soils. Soil Science
//       Society of America Journal, 44(5), 892-898
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a capillary pressure / saturation relation in both
// directions:
//   Sl     -- liquid saturation from capillary pressure pc = pg - pl
//   Pc     -- capillary pressure from liquid saturation
//   DpcDsl -- derivative ∂pc/∂sl, consistent with Pc
// Saturations outside [SlMin,SlMax] are invalid input; callers
// regularize trial iterates before evaluating the law.
type Model interface {
	Init(prms dbf.Params) error      // initialises the model
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
	SlMin() float64                  // returns sl_min
	SlMax() float64                  // returns sl_max
	Sl(pc float64) (float64, error)
	Pc(sl float64) (float64, error)
	DpcDsl(sl float64) (float64, error)
}

// New returns a new retention model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
