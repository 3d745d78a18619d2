// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flash

import (
	"github.com/hakonhagland/opm-models/mdl/retention"
	"github.com/hakonhagland/opm-models/numerr"
)

// MaterialLaw provides the mechanical-equilibrium closure: the pressure
// offset of every phase relative to the reference phase as a function of
// the phase saturations. Implementations never mutate the saturation
// slice. pc[0] is always zero.
type MaterialLaw interface {
	CapillaryPressures(pc, sat []float64) error
}

// TwoPhaseLaw adapts a retention model to the MaterialLaw contract for
// a liquid(reference)/gas phase pair: pc[1] = Pc(sl). Trial saturations
// are regularized into the law's validity range before evaluation, since
// Newton iterates may leave it transiently.
type TwoPhaseLaw struct {
	Lrm retention.Model
}

// CapillaryPressures computes the phase pressure offsets
func (o TwoPhaseLaw) CapillaryPressures(pc, sat []float64) error {
	if o.Lrm == nil {
		return numerr.InvalidInput("twophaselaw: retention model must be non-nil")
	}
	if len(pc) != 2 || len(sat) != 2 {
		return numerr.InvalidInput("twophaselaw: expected 2 phases; got len(pc)=%d len(sat)=%d", len(pc), len(sat))
	}
	slmin, slmax := o.Lrm.SlMin(), o.Lrm.SlMax()
	δ := 1e-6 * (slmax - slmin)
	sl := sat[0]
	if sl < slmin+δ {
		sl = slmin + δ
	}
	if sl > slmax {
		sl = slmax
	}
	v, err := o.Lrm.Pc(sl)
	if err != nil {
		return err
	}
	pc[0], pc[1] = 0, v
	return nil
}
