// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"fmt"

	"github.com/cpmech/gofem-hx/hx/arrangement"
	"github.com/cpmech/gofem-hx/thermo"
)

// Solve is the top-level discretized-heat-exchanger entry point of
// spec §6.1: solve<Arrangement, N>(known, given, thermo_top,
// thermo_bottom). n is a runtime int standing in for the compile-time
// constant N of the distilled spec (spec §9: "In languages without
// non-type generic parameters, accept N at runtime, perform the N >= 2
// check on entry").
//
// Only invertible arrangements (CounterFlow, ParallelFlow,
// ShellAndTube, and the two asymmetric cross-flow variants) may be
// used here, because the segmental metrics stage (§4.9) inverts the
// arrangement's eps-NTU relation once per segment; the two symmetric
// cross-flow variants (both unmixed, both mixed) have no closed-form
// inverse (spec §4.4) and so cannot appear as this solver's Arrangement.
func Solve[TopFluid, BottomFluid any](
	n int,
	a arrangement.Invertible,
	known Known[TopFluid, BottomFluid],
	given Given,
	thermoTop thermo.DiscretizedHxModel[TopFluid],
	thermoBottom thermo.DiscretizedHxModel[BottomFluid],
) (Results[TopFluid, BottomFluid], error) {
	if n < 2 {
		panic(fmt.Sprintf("solve: N must be >= 2, got %d", n))
	}

	resolved, err := resolve(known, given, thermoTop, thermoBottom)
	if err != nil {
		return Results[TopFluid, BottomFluid]{}, err
	}

	nodes, err := computeNodes(n, a, resolved, thermoTop, thermoBottom)
	if err != nil {
		return Results[TopFluid, BottomFluid]{}, err
	}

	minDeltaT := computeMinDeltaT(resolved.Top.Inlet.Temperature, resolved.Bottom.Inlet.Temperature, nodes.Top, nodes.Bottom)

	if err := checkSecondLaw(resolved, minDeltaT); err != nil {
		return Results[TopFluid, BottomFluid]{}, err
	}

	if resolved.QDot.IsNone() {
		return Results[TopFluid, BottomFluid]{
			Top: nodes.Top, Bottom: nodes.Bottom, QDot: resolved.QDot, Ua: 0, MinDeltaT: minDeltaT,
		}, nil
	}

	uaValue, err := computeUA(a, nodes.Top, nodes.Bottom, resolved.Top.MDot, resolved.Bottom.MDot, thermoTop, thermoBottom)
	if err != nil {
		return Results[TopFluid, BottomFluid]{}, err
	}

	return Results[TopFluid, BottomFluid]{
		Top: nodes.Top, Bottom: nodes.Bottom, QDot: resolved.QDot, Ua: uaValue, MinDeltaT: minDeltaT,
	}, nil
}

// SolveSame is Solve with a single shared property model for both
// streams, requiring TopFluid == BottomFluid (spec §6.1 solve_same).
func SolveSame[Fluid any](
	n int,
	a arrangement.Invertible,
	known Known[Fluid, Fluid],
	given Given,
	model thermo.DiscretizedHxModel[Fluid],
) (Results[Fluid, Fluid], error) {
	return Solve[Fluid, Fluid](n, a, known, given, model, model)
}
