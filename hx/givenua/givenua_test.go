// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package givenua

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-hx/hx/arrangement"
	"github.com/cpmech/gofem-hx/hx/solve"
	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// testFluid/testThermoModel mirror hx/solve's constant-property test
// double (cp = 1000 J/(kg*K)), ported from original_source's
// test_support.rs for the same reason: exercising the solver's logic
// without a real thermodynamic backend.
type testFluid struct{}

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

func mustMassFlows(tst *testing.T, top, bottom units.MassRate) solve.MassFlows {
	m, err := solve.NewMassFlows(top, bottom)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return m
}

// TestE3KnownUaRoundTrip is spec §8's scenario E3 and invariant 7:
// solving forward for an achieved UA, then feeding that UA back into
// GivenUa, recovers the original top outlet temperature.
func TestE3KnownUaRoundTrip(tst *testing.T) {
	chk.PrintTitle("E3: given_ua round-trips a known achieved UA")

	known := solve.Known[testFluid, testFluid]{
		Inlets: solve.Inlets[testFluid, testFluid]{Top: testState(400), Bottom: testState(300)},
		MDot:   mustMassFlows(tst, 2, 3),
		Dp:     solve.ZeroPressureDrops(),
	}

	forward, err := solve.SolveSame[testFluid](5, arrangement.CounterFlow{}, known, solve.GivenTopOutletTemp(360), testThermoModel{})
	if err != nil {
		tst.Fatalf("unexpected error computing the reference UA: %v", err)
	}

	recovered, err := GivenUaSame[testFluid](5, arrangement.CounterFlow{}, known, forward.Ua, DefaultConfig(), testThermoModel{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	gotTopOutlet := float64(recovered.Top[4].Temperature)
	if math.Abs(gotTopOutlet-360) > 1e-8 {
		tst.Errorf("expected top[4].T~360, got %v", gotTopOutlet)
	}
}

// TestE4ZeroUa is spec §8's scenario E4 and invariant 8: a target UA of
// zero must resolve to no heat transfer at all, both streams passing
// through unchanged.
func TestE4ZeroUa(tst *testing.T) {
	chk.PrintTitle("E4: given_ua with target_ua=0")

	known := solve.Known[testFluid, testFluid]{
		Inlets: solve.Inlets[testFluid, testFluid]{Top: testState(400), Bottom: testState(300)},
		MDot:   mustMassFlows(tst, 2, 3),
		Dp:     solve.ZeroPressureDrops(),
	}

	results, err := GivenUaSame[testFluid](5, arrangement.CounterFlow{}, known, 0, DefaultConfig(), testThermoModel{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !results.QDot.IsNone() {
		tst.Errorf("expected no heat transfer, got %v", results.QDot)
	}
	if results.Ua != 0 {
		tst.Errorf("expected Ua=0, got %v", results.Ua)
	}
	if float64(results.Top[4].Temperature) != 400 {
		tst.Errorf("expected top outlet unchanged at 400, got %v", results.Top[4].Temperature)
	}
	if float64(results.Bottom[0].Temperature) != 300 {
		tst.Errorf("expected bottom outlet unchanged at 300, got %v", results.Bottom[0].Temperature)
	}
}

// TestE7UnbalancedFlowConverges is spec §8's scenario E7 and invariant
// 12: an unbalanced-flow exchanger, whose bisection search may probe
// second-law-violating candidates along the way, still converges to
// the requested UA via the AssumePositive steering hook.
func TestE7UnbalancedFlowConverges(tst *testing.T) {
	chk.PrintTitle("E7: unbalanced flow converges to target_ua despite transient violations")

	known := solve.Known[testFluid, testFluid]{
		Inlets: solve.Inlets[testFluid, testFluid]{Top: testState(400), Bottom: testState(300)},
		MDot:   mustMassFlows(tst, 2.0, 0.5),
		Dp:     solve.ZeroPressureDrops(),
	}
	targetUa := units.ThermalConductance(2000)

	results, err := GivenUaSame[testFluid](5, arrangement.CounterFlow{}, known, targetUa, DefaultConfig(), testThermoModel{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	rel := math.Abs(float64(results.Ua)-float64(targetUa)) / float64(targetUa)
	if rel > 1e-6 {
		tst.Errorf("expected achieved UA ~ %v, got %v (rel err %v)", targetUa, results.Ua, rel)
	}
}
