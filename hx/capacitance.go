// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"github.com/cpmech/gofem-hx/constraint"
	"github.com/cpmech/gofem-hx/units"
)

// CapacitanceRate (C = m_dot * cp) is always strictly positive.
type CapacitanceRate struct {
	value constraint.Constrained[units.ThermalConductance, constraint.StrictlyPositive[units.ThermalConductance]]
}

// NewCapacitanceRate validates and wraps a thermal-conductance-valued
// capacitance rate.
func NewCapacitanceRate(c units.ThermalConductance) (CapacitanceRate, error) {
	v, err := constraint.New[units.ThermalConductance, constraint.StrictlyPositive[units.ThermalConductance]](c)
	if err != nil {
		return CapacitanceRate{}, err
	}
	return CapacitanceRate{value: v}, nil
}

// FromMassRateAndSpecificHeat builds C = m_dot * cp.
func FromMassRateAndSpecificHeat(massRate units.MassRate, cp units.SpecificHeatCapacity) (CapacitanceRate, error) {
	return NewCapacitanceRate(units.ThermalConductance(float64(massRate) * float64(cp)))
}

// Value returns the underlying thermal conductance.
func (c CapacitanceRate) Value() units.ThermalConductance { return c.value.Value() }

// CapacityRatio (Cr = C_min / C_max) lies in [0, 1].
type CapacityRatio struct {
	value constraint.Constrained[units.Ratio, constraint.UnitInterval[units.Ratio]]
}

// Value returns the underlying ratio.
func (r CapacityRatio) Value() units.Ratio { return r.value.Value() }

// FromCapacitanceRates canonicalizes two capacitance rates (in either
// order) into Cr = min/max, per spec §4.4 ("accepts swapped orders and
// canonicalizes").
func FromCapacitanceRates(rates [2]CapacitanceRate) (CapacityRatio, error) {
	a, b := float64(rates[0].Value()), float64(rates[1].Value())
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	v, err := constraint.New[units.Ratio, constraint.UnitInterval[units.Ratio]](units.Ratio(lo / hi))
	if err != nil {
		return CapacityRatio{}, err
	}
	return CapacityRatio{value: v}, nil
}

// CMin returns the smaller of the two capacitance rates.
func CMin(rates [2]CapacitanceRate) CapacitanceRate {
	if rates[0].Value() <= rates[1].Value() {
		return rates[0]
	}
	return rates[1]
}

// CMax returns the larger of the two capacitance rates.
func CMax(rates [2]CapacitanceRate) CapacitanceRate {
	if rates[0].Value() >= rates[1].Value() {
		return rates[0]
	}
	return rates[1]
}
