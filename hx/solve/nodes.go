// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofem-hx/hx/arrangement"
	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// Nodes is the segment discretizer's output: N states per stream
// (spec §3 "Node arrays", §4.8).
type Nodes[TopFluid, BottomFluid any] struct {
	Top    []thermo.State[TopFluid]
	Bottom []thermo.State[BottomFluid]
}

// linearArray builds an N-length array interpolating linearly from lo
// to hi using exactly (i/(N-1)) weighting (spec §4.8: "Interpolation
// uses exactly (i / (N-1)) weighting; endpoints reproduce the stored
// endpoint states to floating-point identity"). Delegates to
// gosl/utl.LinSpace, which computes the same start+i*step progression
// and pins the last entry to stop exactly, grounded on its use
// throughout the teacher (e.g. mdl/retention/testing.go, mdl/solid's
// hyperelast tests) for node-array generation.
func linearArray(n int, lo, hi float64) []float64 {
	return utl.LinSpace(lo, hi, n)
}

func reverse(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

// buildStates places the resolved endpoint states at the correct array
// ends and calls StateFromPH for interior nodes 1..N-2, early-returning
// on the first property failure (spec §4.8 step 3).
func buildStates[Fluid any](
	n int,
	fluid Fluid,
	pressures, enthalpies []float64,
	inlet, outlet thermo.State[Fluid],
	bottomInletAtEnd bool,
	model thermo.StateFromPH[Fluid],
	context string,
) ([]thermo.State[Fluid], error) {
	states := make([]thermo.State[Fluid], n)
	inletIdx, outletIdx := 0, n-1
	if bottomInletAtEnd {
		inletIdx, outletIdx = n-1, 0
	}
	states[inletIdx] = inlet
	states[outletIdx] = outlet
	for i := 1; i < n-1; i++ {
		s, err := model.StateFromPH(fluid, units.Pressure(pressures[i]), units.SpecificEnthalpy(enthalpies[i]))
		if err != nil {
			return nil, thermoFailed(context, err)
		}
		states[i] = s
	}
	return states, nil
}

// computeNodes builds the full Nodes record from a Resolved boundary
// record and an arrangement (spec §4.8).
func computeNodes[TopFluid, BottomFluid any](
	n int,
	a arrangement.Arrangement,
	resolved Resolved[TopFluid, BottomFluid],
	thermoTop thermo.StateFromPH[TopFluid],
	thermoBottom thermo.StateFromPH[BottomFluid],
) (Nodes[TopFluid, BottomFluid], error) {

	hTopOut := float64(resolved.Top.HIn) - float64(resolved.QDot.SignedTopToBottom())/float64(resolved.Top.MDot)
	hBottomOut := float64(resolved.Bottom.HIn) + float64(resolved.QDot.SignedTopToBottom())/float64(resolved.Bottom.MDot)

	topP := linearArray(n, float64(resolved.Top.PIn), float64(resolved.Top.POut))
	topH := linearArray(n, float64(resolved.Top.HIn), hTopOut)

	var bottomP, bottomH []float64
	bottomInletAtEnd := !a.BottomFlowsLeftToRight()
	if a.BottomFlowsLeftToRight() {
		bottomP = linearArray(n, float64(resolved.Bottom.PIn), float64(resolved.Bottom.POut))
		bottomH = linearArray(n, float64(resolved.Bottom.HIn), hBottomOut)
	} else {
		bottomP = reverse(linearArray(n, float64(resolved.Bottom.PIn), float64(resolved.Bottom.POut)))
		bottomH = reverse(linearArray(n, float64(resolved.Bottom.HIn), hBottomOut))
	}

	topStates, err := buildStates(n, resolved.Top.Inlet.Fluid, topP, topH, resolved.Top.Inlet, resolved.Top.Outlet, false, thermoTop, "state_from(top node)")
	if err != nil {
		return Nodes[TopFluid, BottomFluid]{}, err
	}
	bottomStates, err := buildStates(n, resolved.Bottom.Inlet.Fluid, bottomP, bottomH, resolved.Bottom.Inlet, resolved.Bottom.Outlet, bottomInletAtEnd, thermoBottom, "state_from(bottom node)")
	if err != nil {
		return Nodes[TopFluid, BottomFluid]{}, err
	}

	return Nodes[TopFluid, BottomFluid]{Top: topStates, Bottom: bottomStates}, nil
}
