// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"fmt"

	"github.com/cpmech/gofem-hx/hx"
	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// ResolvedStream is one stream's fully-resolved boundary data: both
// endpoint states, inlet enthalpy, both endpoint pressures, and mass
// flow rate (spec §4.7).
type ResolvedStream[Fluid any] struct {
	Inlet  thermo.State[Fluid]
	Outlet thermo.State[Fluid]
	HIn    units.SpecificEnthalpy
	PIn    units.Pressure
	POut   units.Pressure
	MDot   units.MassRate
}

// Resolved is the output of the boundary resolver: both streams'
// endpoint data plus the signed heat-transfer rate (spec §4.7).
type Resolved[TopFluid, BottomFluid any] struct {
	Top    ResolvedStream[TopFluid]
	Bottom ResolvedStream[BottomFluid]
	QDot   hx.HeatTransferRate
}

// heatTransferRateFromSigned converts a possibly-NaN signed power into
// a HeatTransferRate; a NaN surfaces as a SecondLawViolation carrying
// the raw inlet-to-inlet delta-T as min_delta_t with no violation
// node, grounded on original_source's heat_transfer_rate_from_signed
// helper (spec §4.7 step 4).
func heatTransferRateFromSigned(signed units.Power, topIn, bottomIn units.AbsoluteTemperature) (hx.HeatTransferRate, error) {
	q, err := hx.FromSignedTopToBottom(signed)
	if err != nil {
		rawDt := topIn.Minus(bottomIn)
		return hx.HeatTransferRate{}, &SecondLawViolation{
			QDot:      hx.HeatTransferRate{},
			MinDeltaT: MinDeltaT{Value: rawDt, Node: 0},
			HasNode:   false,
		}
	}
	return q, nil
}

// resolve dispatches on Given and produces a Resolved record, per spec
// §4.7's four-step procedure.
func resolve[TopFluid, BottomFluid any](
	known Known[TopFluid, BottomFluid],
	given Given,
	thermoTop thermo.DiscretizedHxModel[TopFluid],
	thermoBottom thermo.DiscretizedHxModel[BottomFluid],
) (Resolved[TopFluid, BottomFluid], error) {

	topIn := known.Inlets.Top
	bottomIn := known.Inlets.Bottom

	pTopIn, err := thermoTop.Pressure(topIn)
	if err != nil {
		return Resolved[TopFluid, BottomFluid]{}, thermoFailed("pressure(top inlet)", err)
	}
	hTopIn, err := thermoTop.Enthalpy(topIn)
	if err != nil {
		return Resolved[TopFluid, BottomFluid]{}, thermoFailed("enthalpy(top inlet)", err)
	}
	pBottomIn, err := thermoBottom.Pressure(bottomIn)
	if err != nil {
		return Resolved[TopFluid, BottomFluid]{}, thermoFailed("pressure(bottom inlet)", err)
	}
	hBottomIn, err := thermoBottom.Enthalpy(bottomIn)
	if err != nil {
		return Resolved[TopFluid, BottomFluid]{}, thermoFailed("enthalpy(bottom inlet)", err)
	}

	pTopOut := units.Pressure(float64(pTopIn) - float64(known.Dp.Top()))
	pBottomOut := units.Pressure(float64(pBottomIn) - float64(known.Dp.Bottom()))

	mTop := known.MDot.Top()
	mBottom := known.MDot.Bottom()

	var topOut thermo.State[TopFluid]
	var bottomOut thermo.State[BottomFluid]
	var signedQ units.Power

	switch given.kind {
	case givenTopOutletTemp:
		topOut, err = thermoTop.StateFromTP(topIn.Fluid, given.temp, pTopOut)
		if err != nil {
			return Resolved[TopFluid, BottomFluid]{}, thermoFailed("state_from(top outlet)", err)
		}
		hTopOut, err := thermoTop.Enthalpy(topOut)
		if err != nil {
			return Resolved[TopFluid, BottomFluid]{}, thermoFailed("enthalpy(top outlet)", err)
		}
		signedQ = mTop.Times(units.SpecificEnthalpy(float64(hTopIn) - float64(hTopOut)))
		hBottomOut := units.SpecificEnthalpy(float64(hBottomIn) + float64(signedQ)/float64(mBottom))
		bottomOut, err = thermoBottom.StateFromPH(bottomIn.Fluid, pBottomOut, hBottomOut)
		if err != nil {
			return Resolved[TopFluid, BottomFluid]{}, thermoFailed("state_from(bottom outlet)", err)
		}

	case givenBottomOutletTemp:
		bottomOut, err = thermoBottom.StateFromTP(bottomIn.Fluid, given.temp, pBottomOut)
		if err != nil {
			return Resolved[TopFluid, BottomFluid]{}, thermoFailed("state_from(bottom outlet)", err)
		}
		hBottomOut, err := thermoBottom.Enthalpy(bottomOut)
		if err != nil {
			return Resolved[TopFluid, BottomFluid]{}, thermoFailed("enthalpy(bottom outlet)", err)
		}
		signedQ = units.Power(float64(mBottom) * (float64(hBottomOut) - float64(hBottomIn)))
		hTopOut := units.SpecificEnthalpy(float64(hTopIn) - float64(signedQ)/float64(mTop))
		topOut, err = thermoTop.StateFromPH(topIn.Fluid, pTopOut, hTopOut)
		if err != nil {
			return Resolved[TopFluid, BottomFluid]{}, thermoFailed("state_from(top outlet)", err)
		}

	case givenHeatTransferRate:
		signedQ = given.qdot.SignedTopToBottom()
		hTopOut := units.SpecificEnthalpy(float64(hTopIn) - float64(signedQ)/float64(mTop))
		hBottomOut := units.SpecificEnthalpy(float64(hBottomIn) + float64(signedQ)/float64(mBottom))
		topOut, err = thermoTop.StateFromPH(topIn.Fluid, pTopOut, hTopOut)
		if err != nil {
			return Resolved[TopFluid, BottomFluid]{}, thermoFailed("state_from(top outlet)", err)
		}
		bottomOut, err = thermoBottom.StateFromPH(bottomIn.Fluid, pBottomOut, hBottomOut)
		if err != nil {
			return Resolved[TopFluid, BottomFluid]{}, thermoFailed("state_from(bottom outlet)", err)
		}

	default:
		return Resolved[TopFluid, BottomFluid]{}, fmt.Errorf("solve: resolve: unknown Given variant")
	}

	qdot, violationErr := heatTransferRateFromSigned(signedQ, topIn.Temperature, bottomIn.Temperature)
	if violationErr != nil {
		return Resolved[TopFluid, BottomFluid]{}, violationErr
	}

	return Resolved[TopFluid, BottomFluid]{
		Top: ResolvedStream[TopFluid]{
			Inlet: topIn, Outlet: topOut, HIn: hTopIn, PIn: pTopIn, POut: pTopOut, MDot: mTop,
		},
		Bottom: ResolvedStream[BottomFluid]{
			Inlet: bottomIn, Outlet: bottomOut, HIn: hBottomIn, PIn: pBottomIn, POut: pBottomOut, MDot: mBottom,
		},
		QDot: qdot,
	}, nil
}
