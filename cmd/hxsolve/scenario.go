// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gofem-hx/hx/arrangement"
	"github.com/cpmech/gofem-hx/hx/solve"
	"github.com/cpmech/gofem-hx/units"
)

// Scenario is the (.hx.json) input file read by cmd/hxsolve, grounded
// on inp.Data's tagged-struct JSON layout (spec §13). Each fluid is
// modeled as an ideal gas if its name is "air" or "co2" and as an
// incompressible liquid if its name is "water"; TopParams/BottomParams
// override the model's example parameter set.
type Scenario struct {
	Desc string `json:"desc"`

	N           int    `json:"n"`
	Arrangement string `json:"arrangement"` // "counter", "parallel", "crossflow_mu", "crossflow_um", "shellandtube"
	Shells      int    `json:"shells"`      // only for "shellandtube"
	TubePasses  int    `json:"tubepasses"`  // only for "shellandtube"
	MixedIsCmax bool   `json:"mixedIsCmax"` // only for the asymmetric cross-flow variants

	TopFluid     string     `json:"topFluid"` // "air", "water", "co2"
	TopParams    dbf.Params `json:"topParams"`
	BottomFluid  string     `json:"bottomFluid"`
	BottomParams dbf.Params `json:"bottomParams"`

	TopInletTemp    float64 `json:"topInletTempK"`
	TopInletDensity float64 `json:"topInletDensity"`
	TopMassFlow     float64 `json:"topMassFlow"`
	TopPressureDrop float64 `json:"topPressureDrop"`

	BottomInletTemp    float64 `json:"bottomInletTempK"`
	BottomInletDensity float64 `json:"bottomInletDensity"`
	BottomMassFlow     float64 `json:"bottomMassFlow"`
	BottomPressureDrop float64 `json:"bottomPressureDrop"`

	// Given: exactly one of these should be set, unless GivenUa is set.
	GivenTopOutletTempK    *float64 `json:"givenTopOutletTempK,omitempty"`
	GivenBottomOutletTempK *float64 `json:"givenBottomOutletTempK,omitempty"`
	GivenHeatTransferRateW *float64 `json:"givenHeatTransferRateW,omitempty"` // signed, positive top-to-bottom

	// GivenUa: if set, run the outer UA-matching solver instead of Solve.
	GivenUa *float64 `json:"givenUa,omitempty"`
}

// readScenario loads a Scenario from a JSON file.
func readScenario(fnamepath string) (*Scenario, error) {
	buf, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, fmt.Errorf("hxsolve: cannot read scenario file: %w", err)
	}
	var s Scenario
	if err := json.Unmarshal(buf, &s); err != nil {
		return nil, fmt.Errorf("hxsolve: cannot parse scenario file: %w", err)
	}
	return &s, nil
}

func buildArrangement(s *Scenario) (arrangement.Invertible, error) {
	switch s.Arrangement {
	case "counter":
		return arrangement.CounterFlow{}, nil
	case "parallel":
		return arrangement.ParallelFlow{}, nil
	case "crossflow_mu":
		return arrangement.CrossFlowMixedUnmixed{MixedIsCmax: s.MixedIsCmax}, nil
	case "crossflow_um":
		return arrangement.CrossFlowUnmixedMixed{MixedIsCmax: s.MixedIsCmax}, nil
	case "shellandtube":
		return arrangement.NewShellAndTube(s.Shells, s.TubePasses)
	default:
		return nil, fmt.Errorf("hxsolve: arrangement %q is not invertible (use counter, parallel, crossflow_mu, crossflow_um, or shellandtube)", s.Arrangement)
	}
}

func buildGiven(s *Scenario) (solve.Given, error) {
	switch {
	case s.GivenTopOutletTempK != nil:
		return solve.GivenTopOutletTemp(units.AbsoluteTemperature(*s.GivenTopOutletTempK)), nil
	case s.GivenBottomOutletTempK != nil:
		return solve.GivenBottomOutletTemp(units.AbsoluteTemperature(*s.GivenBottomOutletTempK)), nil
	case s.GivenHeatTransferRateW != nil:
		q, err := signedHeatTransferRate(*s.GivenHeatTransferRateW)
		if err != nil {
			return solve.Given{}, err
		}
		return solve.GivenHeatTransferRate(q), nil
	default:
		return solve.Given{}, fmt.Errorf("hxsolve: scenario must set exactly one of givenTopOutletTempK, givenBottomOutletTempK, givenHeatTransferRateW")
	}
}
