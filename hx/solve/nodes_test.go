// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-hx/hx"
	"github.com/cpmech/gofem-hx/hx/arrangement"
	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// pressureFluid/pressureThermoModel is a dedicated double whose
// StateFromPH tracks its pressure argument into the returned density
// (density == pressure, numerically), so a ΔP != 0 regression can
// observe the node-array pressure profile directly rather than being
// masked by a pressure-blind model (testThermoModel ignores pressure
// entirely).
type pressureFluid struct{}

type pressureThermoModel struct{}

func (pressureThermoModel) Name() string { return "pressure-tracking-test-model" }

func (pressureThermoModel) Pressure(s thermo.State[pressureFluid]) (units.Pressure, error) {
	return 100000, nil
}

func (pressureThermoModel) Enthalpy(s thermo.State[pressureFluid]) (units.SpecificEnthalpy, error) {
	return s.Temperature.Minus(0).TimesCp(1000), nil
}

func (pressureThermoModel) StateFromTP(fluid pressureFluid, t units.AbsoluteTemperature, p units.Pressure) (thermo.State[pressureFluid], error) {
	return thermo.New(fluid, t, units.Density(p)), nil
}

func (pressureThermoModel) StateFromPH(fluid pressureFluid, p units.Pressure, h units.SpecificEnthalpy) (thermo.State[pressureFluid], error) {
	t := units.AbsoluteTemperature(0).Plus(units.TemperatureInterval(float64(h) / 1000))
	return thermo.New(fluid, t, units.Density(p)), nil
}

// TestCounterflowBottomPressureProfileOrientation is a ΔP != 0
// regression: the bottom stream's reversed node layout must still
// carry inlet pressure at index N-1 and outlet pressure at index 0,
// with the interior nodes interpolating monotonically between them.
func TestCounterflowBottomPressureProfileOrientation(tst *testing.T) {
	chk.PrintTitle("bottom pressure profile orientation with nonzero delta-P")

	dp, err := NewPressureDrops(0, 500)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	known := Known[pressureFluid, pressureFluid]{
		Inlets: Inlets[pressureFluid, pressureFluid]{
			Top:    thermo.New(pressureFluid{}, 400, 100000),
			Bottom: thermo.New(pressureFluid{}, 300, 100000),
		},
		MDot: mustMassFlows(tst, 2, 3),
		Dp:   dp,
	}
	given := GivenHeatTransferRate(hx.TopToBottom(power(60000)))

	results, err := SolveSame[pressureFluid](5, arrangement.CounterFlow{}, known, given, pressureThermoModel{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	bottom := results.Bottom
	if float64(bottom[4].Density) != 100000 {
		tst.Errorf("expected bottom inlet (index N-1) density=100000, got %v", bottom[4].Density)
	}
	if float64(bottom[0].Density) != 99500 {
		tst.Errorf("expected bottom outlet (index 0) density=99500, got %v", bottom[0].Density)
	}
	for i := 0; i < len(bottom)-1; i++ {
		if bottom[i].Density > bottom[i+1].Density {
			tst.Errorf("expected non-decreasing density with node index, got %v at %d then %v at %d",
				bottom[i].Density, i, bottom[i+1].Density, i+1)
		}
	}
}
