// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"github.com/cpmech/gofem-hx/constraint"
	"github.com/cpmech/gofem-hx/units"
)

// Effectiveness (eps) lies in [0, 1].
type Effectiveness struct {
	value constraint.Constrained[units.Ratio, constraint.UnitInterval[units.Ratio]]
}

// NewEffectiveness validates and wraps an effectiveness ratio.
func NewEffectiveness(v float64) (Effectiveness, error) {
	c, err := constraint.New[units.Ratio, constraint.UnitInterval[units.Ratio]](units.Ratio(v))
	if err != nil {
		return Effectiveness{}, err
	}
	return Effectiveness{value: c}, nil
}

// Value returns the underlying ratio.
func (e Effectiveness) Value() float64 { return float64(e.value.Value()) }

// Ntu (number of transfer units) is non-negative.
type Ntu struct {
	value constraint.Constrained[units.Ratio, constraint.NonNegative[units.Ratio]]
}

// NewNtu validates and wraps a non-negative NTU.
func NewNtu(v float64) (Ntu, error) {
	c, err := constraint.New[units.Ratio, constraint.NonNegative[units.Ratio]](units.Ratio(v))
	if err != nil {
		return Ntu{}, err
	}
	return Ntu{value: c}, nil
}

// Value returns the underlying ratio.
func (n Ntu) Value() float64 { return float64(n.value.Value()) }

// FromConductanceAndCapacitanceRate builds NTU = UA / C_min.
func FromConductanceAndCapacitanceRate(ua units.ThermalConductance, cMin CapacitanceRate) (Ntu, error) {
	return NewNtu(float64(ua) / float64(cMin.Value()))
}
