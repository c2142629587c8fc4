// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solve implements the boundary resolver, segment discretizer,
// metrics, and second-law enforcement of spec §4.7-§4.9, §4.11 —
// the "core" of the discretized heat-exchanger solver. Grounded on
// fem's top-level orchestration style (main.go's fem.Start/fem.Run
// sequencing) generalized from a finite-element simulation driver to a
// segmental thermal-hydraulic one.
package solve

import (
	"github.com/cpmech/gofem-hx/constraint"
	"github.com/cpmech/gofem-hx/hx"
	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// Inlets holds the two streams' inlet states (spec §3).
type Inlets[TopFluid, BottomFluid any] struct {
	Top    thermo.State[TopFluid]
	Bottom thermo.State[BottomFluid]
}

// MassFlows holds the two streams' strictly-positive mass flow rates.
type MassFlows struct {
	top    constraint.Constrained[units.MassRate, constraint.StrictlyPositive[units.MassRate]]
	bottom constraint.Constrained[units.MassRate, constraint.StrictlyPositive[units.MassRate]]
}

// NewMassFlows validates and wraps two mass flow rates.
func NewMassFlows(top, bottom units.MassRate) (MassFlows, error) {
	t, err := constraint.New[units.MassRate, constraint.StrictlyPositive[units.MassRate]](top)
	if err != nil {
		return MassFlows{}, err
	}
	b, err := constraint.New[units.MassRate, constraint.StrictlyPositive[units.MassRate]](bottom)
	if err != nil {
		return MassFlows{}, err
	}
	return MassFlows{top: t, bottom: b}, nil
}

// Top returns the top stream's mass flow rate.
func (m MassFlows) Top() units.MassRate { return m.top.Value() }

// Bottom returns the bottom stream's mass flow rate.
func (m MassFlows) Bottom() units.MassRate { return m.bottom.Value() }

// PressureDrops holds the two streams' non-negative pressure drops
// (spec §3; defaults to zero).
type PressureDrops struct {
	top    constraint.Constrained[units.Pressure, constraint.NonNegative[units.Pressure]]
	bottom constraint.Constrained[units.Pressure, constraint.NonNegative[units.Pressure]]
}

// NewPressureDrops validates and wraps two pressure drops.
func NewPressureDrops(top, bottom units.Pressure) (PressureDrops, error) {
	t, err := constraint.New[units.Pressure, constraint.NonNegative[units.Pressure]](top)
	if err != nil {
		return PressureDrops{}, err
	}
	b, err := constraint.New[units.Pressure, constraint.NonNegative[units.Pressure]](bottom)
	if err != nil {
		return PressureDrops{}, err
	}
	return PressureDrops{top: t, bottom: b}, nil
}

// ZeroPressureDrops returns {0, 0}, the default.
func ZeroPressureDrops() PressureDrops {
	return PressureDrops{
		top:    constraint.NonNegative[units.Pressure]{}.Zero(),
		bottom: constraint.NonNegative[units.Pressure]{}.Zero(),
	}
}

// Top returns the top stream's pressure drop.
func (p PressureDrops) Top() units.Pressure { return p.top.Value() }

// Bottom returns the bottom stream's pressure drop.
func (p PressureDrops) Bottom() units.Pressure { return p.bottom.Value() }

// Known bundles everything the solver needs before a Given constraint
// is supplied (spec §3).
type Known[TopFluid, BottomFluid any] struct {
	Inlets Inlets[TopFluid, BottomFluid]
	MDot   MassFlows
	Dp     PressureDrops
}

// givenKind distinguishes the three Given variants.
type givenKind int

const (
	givenTopOutletTemp givenKind = iota
	givenBottomOutletTemp
	givenHeatTransferRate
)

// Given is the one-of-three boundary constraint of spec §3: top outlet
// temperature, bottom outlet temperature, or a heat-transfer rate
// (possibly None, meaning "solve with zero heat transfer").
type Given struct {
	kind givenKind
	temp units.AbsoluteTemperature
	qdot hx.HeatTransferRate
}

// GivenTopOutletTemp builds a Given constraining the top outlet
// temperature.
func GivenTopOutletTemp(t units.AbsoluteTemperature) Given {
	return Given{kind: givenTopOutletTemp, temp: t}
}

// GivenBottomOutletTemp builds a Given constraining the bottom outlet
// temperature.
func GivenBottomOutletTemp(t units.AbsoluteTemperature) Given {
	return Given{kind: givenBottomOutletTemp, temp: t}
}

// GivenHeatTransferRate builds a Given constraining the signed
// heat-transfer rate.
func GivenHeatTransferRate(q hx.HeatTransferRate) Given {
	return Given{kind: givenHeatTransferRate, qdot: q}
}
