// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hxsolve runs a discretized heat-exchanger scenario described
// by a JSON input file and prints a per-node summary table, grounded on
// gofem's main.go (flag-based CLI, io.PfWhite banner, chk.Panic on
// fatal input errors) generalized from a finite-element driver to a
// segmental thermal-hydraulic solver (spec §13).
package main

import (
	"flag"
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofem-hx/hx"
	"github.com/cpmech/gofem-hx/hx/givenua"
	"github.com/cpmech/gofem-hx/hx/solve"
	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/thermo/fluid"
	"github.com/cpmech/gofem-hx/thermo/model/incompressible"
	"github.com/cpmech/gofem-hx/thermo/model/perfectgas"
	"github.com/cpmech/gofem-hx/units"
)

// defaultPerfectGasParams/defaultIncompressibleParams mirror each
// model's own example parameter set (perfectgas.Model.GetPrms(true),
// incompressible.Model.GetPrms(true)), used when a scenario omits
// topParams/bottomParams.
var defaultPerfectGasParams = dbf.Params{
	&dbf.P{N: "cp", V: 1040},
	&dbf.P{N: "r", V: 287},
	&dbf.P{N: "tref", V: 0},
}

var defaultIncompressibleParams = dbf.Params{
	&dbf.P{N: "cp", V: 1000},
	&dbf.P{N: "rho", V: 1},
	&dbf.P{N: "tref", V: 0},
	&dbf.P{N: "pref", V: 101325},
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.Pfred("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nhxsolve -- discretized heat-exchanger solver\n\n")
	io.Pf("Copyright 2026 The Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a scenario filename. Ex.: case1.hx.json")
	}
	fnamepath := flag.Arg(0)

	scenario, err := readScenario(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}

	if err := run(scenario); err != nil {
		chk.Panic("%v", err)
	}
}

// signedHeatTransferRate builds an hx.HeatTransferRate from a signed
// watt value, positive meaning top-to-bottom.
func signedHeatTransferRate(signedW float64) (hx.HeatTransferRate, error) {
	return hx.FromSignedTopToBottom(units.Power(signedW))
}

// run dispatches on the (top fluid, bottom fluid) pair to instantiate
// the generic solver with concrete type parameters, then executes the
// requested operation (spec §6.1 solve, or §6.1 given_ua via
// hx/givenua).
func run(s *Scenario) error {
	switch s.TopFluid {
	case "air":
		return runTop[fluid.Air](s, fluid.Air{})
	case "water":
		return runTop[fluid.Water](s, fluid.Water{})
	case "co2":
		return runTop[fluid.CarbonDioxide](s, fluid.CarbonDioxide{})
	default:
		return fmt.Errorf("hxsolve: unknown topFluid %q (want air, water, or co2)", s.TopFluid)
	}
}

func runTop[TopFluid any](s *Scenario, topTag TopFluid) error {
	topModel, err := modelFor[TopFluid](s.TopFluid, s.TopParams)
	if err != nil {
		return err
	}
	switch s.BottomFluid {
	case "air":
		return solveAndPrint(s, topTag, fluid.Air{}, topModel)
	case "water":
		return solveAndPrint(s, topTag, fluid.Water{}, topModel)
	case "co2":
		return solveAndPrint(s, topTag, fluid.CarbonDioxide{}, topModel)
	default:
		return fmt.Errorf("hxsolve: unknown bottomFluid %q (want air, water, or co2)", s.BottomFluid)
	}
}

func solveAndPrint[TopFluid, BottomFluid any](s *Scenario, topTag TopFluid, bottomTag BottomFluid, topModel thermo.DiscretizedHxModel[TopFluid]) error {
	bottomModel, err := modelFor[BottomFluid](s.BottomFluid, s.BottomParams)
	if err != nil {
		return err
	}

	a, err := buildArrangement(s)
	if err != nil {
		return err
	}

	topIn := thermo.New(topTag, units.AbsoluteTemperature(s.TopInletTemp), units.Density(s.TopInletDensity))
	bottomIn := thermo.New(bottomTag, units.AbsoluteTemperature(s.BottomInletTemp), units.Density(s.BottomInletDensity))

	mdot, err := solve.NewMassFlows(units.MassRate(s.TopMassFlow), units.MassRate(s.BottomMassFlow))
	if err != nil {
		return err
	}
	dp, err := solve.NewPressureDrops(units.Pressure(s.TopPressureDrop), units.Pressure(s.BottomPressureDrop))
	if err != nil {
		return err
	}
	known := solve.Known[TopFluid, BottomFluid]{
		Inlets: solve.Inlets[TopFluid, BottomFluid]{Top: topIn, Bottom: bottomIn},
		MDot:   mdot,
		Dp:     dp,
	}

	if s.GivenUa != nil {
		results, err := givenua.GivenUa[TopFluid, BottomFluid](s.N, a, known, units.ThermalConductance(*s.GivenUa), givenua.DefaultConfig(), topModel, bottomModel)
		if err != nil {
			return err
		}
		printResults(s, results)
		return nil
	}

	given, err := buildGiven(s)
	if err != nil {
		return err
	}
	results, err := solve.Solve[TopFluid, BottomFluid](s.N, a, known, given, topModel, bottomModel)
	if err != nil {
		return err
	}
	printResults(s, results)
	return nil
}

func modelFor[Fluid any](name string, prms dbf.Params) (thermo.DiscretizedHxModel[Fluid], error) {
	switch name {
	case "water":
		if len(prms) == 0 {
			prms = defaultIncompressibleParams
		}
		return incompressible.New[Fluid](prms)
	default:
		if len(prms) == 0 {
			prms = defaultPerfectGasParams
		}
		return perfectgas.New[Fluid](prms)
	}
}

func printResults[TopFluid, BottomFluid any](s *Scenario, r solve.Results[TopFluid, BottomFluid]) {
	io.Pf("\nscenario: %s\n", s.Desc)
	io.Pf("node  top_T[K]      bottom_T[K]\n")
	for i := range r.Top {
		io.Pf("%4d  %12.4f  %12.4f\n", i, float64(r.Top[i].Temperature), float64(r.Bottom[i].Temperature))
	}
	io.Pf("\nQdot (top->bottom, W): %v\n", r.QDot.SignedTopToBottom())
	io.Pf("UA (W/K):              %v\n", r.Ua)
	io.Pf("min delta-T (K):       %v at node %d\n", r.MinDeltaT.Value, r.MinDeltaT.Node)
}
