// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/cpmech/gofem-hx/hx"
	"github.com/cpmech/gofem-hx/hx/arrangement"
	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// computeMinDeltaT determines hot/cold once from the inlet
// temperatures (top is hot if T_top_in >= T_bot_in) and scans all N
// nodes for the minimum hot-to-cold delta-T, returning its value and
// node index (spec §4.9).
func computeMinDeltaT[TopFluid, BottomFluid any](
	topIn, bottomIn units.AbsoluteTemperature,
	topStates []thermo.State[TopFluid],
	bottomStates []thermo.State[BottomFluid],
) MinDeltaT {
	topIsHot := topIn >= bottomIn
	n := len(topStates)
	best := MinDeltaT{}
	for i := 0; i < n; i++ {
		var dt units.TemperatureInterval
		if topIsHot {
			dt = topStates[i].Temperature.Minus(bottomStates[i].Temperature)
		} else {
			dt = bottomStates[i].Temperature.Minus(topStates[i].Temperature)
		}
		if i == 0 || dt < best.Value {
			best = MinDeltaT{Value: dt, Node: i}
		}
	}
	return best
}

// computeUA aggregates UA across the N-1 segments by calling the
// functional inverse eps-NTU analyzer per segment and summing the
// returned conductance (spec §4.9).
func computeUA[TopFluid, BottomFluid any](
	a arrangement.Invertible,
	topStates []thermo.State[TopFluid],
	bottomStates []thermo.State[BottomFluid],
	mTop, mBottom units.MassRate,
	thermoTop thermo.HasEnthalpy[TopFluid],
	thermoBottom thermo.HasEnthalpy[BottomFluid],
) (units.ThermalConductance, error) {

	n := len(topStates)
	var totalUa units.ThermalConductance

	for i := 0; i < n-1; i++ {
		topDt := topStates[i+1].Temperature.Minus(topStates[i].Temperature)
		bottomDt := bottomStates[i+1].Temperature.Minus(bottomStates[i].Temperature)

		hTop0, err := thermoTop.Enthalpy(topStates[i])
		if err != nil {
			return 0, thermoFailed("enthalpy(top segment)", err)
		}
		hTop1, err := thermoTop.Enthalpy(topStates[i+1])
		if err != nil {
			return 0, thermoFailed("enthalpy(top segment)", err)
		}
		hBottom0, err := thermoBottom.Enthalpy(bottomStates[i])
		if err != nil {
			return 0, thermoFailed("enthalpy(bottom segment)", err)
		}
		hBottom1, err := thermoBottom.Enthalpy(bottomStates[i+1])
		if err != nil {
			return 0, thermoFailed("enthalpy(bottom segment)", err)
		}

		topDh := units.SpecificEnthalpy(float64(hTop1) - float64(hTop0))
		bottomDh := units.SpecificEnthalpy(float64(hBottom1) - float64(hBottom0))

		cTopValue := units.ThermalConductance(float64(mTop) * float64(topDh) / float64(topDt))
		cBottomValue := units.ThermalConductance(float64(mBottom) * float64(bottomDh) / float64(bottomDt))

		cTop, err := hx.NewCapacitanceRate(cTopValue)
		if err != nil {
			return 0, segmentViolationFor(i, topStates, bottomStates)
		}
		cBottom, err := hx.NewCapacitanceRate(cBottomValue)
		if err != nil {
			return 0, segmentViolationFor(i, topStates, bottomStates)
		}

		// A right-to-left (counterflow) bottom stream enters segment i at node i+1.
		bottomInIdx := i
		if !a.BottomFlowsLeftToRight() {
			bottomInIdx = i + 1
		}
		topInlet := hx.StreamInlet{CapacitanceRate: cTop, Temperature: topStates[i].Temperature}
		bottomInlet := hx.StreamInlet{CapacitanceRate: cBottom, Temperature: bottomStates[bottomInIdx].Temperature}

		topStream, err := hx.NewStreamFromOutletTemperature(topInlet, topStates[i+1].Temperature)
		if err != nil {
			return 0, segmentViolationFor(i, topStates, bottomStates)
		}

		result, err := hx.KnownConditionsAndInlets(a, topStream, 0, bottomInlet)
		if err != nil {
			return 0, segmentViolationFor(i, topStates, bottomStates)
		}
		totalUa += result.Ua
	}

	return totalUa, nil
}

// segmentViolationFor builds a SecondLawViolation at segment i. The
// reported ΔT is topStates[i] minus bottomStates[i] whatever the
// heat-flow direction, so it is not oriented hot-to-cold when heat
// flows from bottom to top; QDot is left as the None variant.
func segmentViolationFor[TopFluid, BottomFluid any](i int, topStates []thermo.State[TopFluid], bottomStates []thermo.State[BottomFluid]) error {
	dt := topStates[i].Temperature.Minus(bottomStates[i].Temperature)
	return segmentViolation(hx.HeatTransferRate{}, MinDeltaT{Value: dt, Node: i})
}
