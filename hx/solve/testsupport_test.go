// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// testFluid is a bare marker fluid used only by testThermoModel, ported
// from original_source's test_support.rs TestFluid.
type testFluid struct{}

// testThermoModel is a constant-property model (cp = 1000 J/(kg*K),
// pressure = 101325 Pa, density = 1 kg/m^3), ported from
// original_source's test_support.rs TestThermoModel: it exists purely
// to exercise the solver's logic without depending on a real
// thermodynamic backend.
type testThermoModel struct{}

func (testThermoModel) Name() string { return "test-thermo-model" }

func (testThermoModel) Pressure(s thermo.State[testFluid]) (units.Pressure, error) {
	return 101325, nil
}

func (testThermoModel) Enthalpy(s thermo.State[testFluid]) (units.SpecificEnthalpy, error) {
	return s.Temperature.Minus(0).TimesCp(1000), nil
}

func (testThermoModel) StateFromTP(fluid testFluid, t units.AbsoluteTemperature, p units.Pressure) (thermo.State[testFluid], error) {
	return thermo.New(fluid, t, 1), nil
}

func (testThermoModel) StateFromPH(fluid testFluid, p units.Pressure, h units.SpecificEnthalpy) (thermo.State[testFluid], error) {
	t := units.AbsoluteTemperature(0).Plus(units.TemperatureInterval(float64(h) / 1000))
	return thermo.New(fluid, t, 1), nil
}

func testState(t float64) thermo.State[testFluid] {
	return thermo.New(testFluid{}, units.AbsoluteTemperature(t), 1)
}
