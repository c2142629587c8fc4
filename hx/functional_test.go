// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-hx/hx/arrangement"
	"github.com/cpmech/gofem-hx/units"
)

func TestKnownConductanceAndInletsForward(tst *testing.T) {
	chk.PrintTitle("known-conductance forward analyzer")

	cTop, _ := NewCapacitanceRate(units.ThermalConductance(2000))
	cBottom, _ := NewCapacitanceRate(units.ThermalConductance(3000))
	inlets := [2]StreamInlet{
		{CapacitanceRate: cTop, Temperature: 400},
		{CapacitanceRate: cBottom, Temperature: 300},
	}

	result, err := KnownConductanceAndInlets(arrangement.CounterFlow{}, units.ThermalConductance(1000), inlets)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if result.Streams[0].HeatFlow.IsNone() || result.Streams[1].HeatFlow.IsNone() {
		tst.Errorf("expected nonzero heat flow on both streams")
	}
	if result.Streams[0].OutletTemperature >= inlets[0].Temperature {
		tst.Errorf("expected top stream (hotter inlet) to cool down")
	}
	if result.Streams[1].OutletTemperature <= inlets[1].Temperature {
		tst.Errorf("expected bottom stream (colder inlet) to warm up")
	}
}

func TestKnownConditionsAndInletsInverse(tst *testing.T) {
	chk.PrintTitle("known-conditions inverse analyzer round-trips forward analyzer")

	cTop, _ := NewCapacitanceRate(units.ThermalConductance(2000))
	cBottom, _ := NewCapacitanceRate(units.ThermalConductance(3000))
	inlets := [2]StreamInlet{
		{CapacitanceRate: cTop, Temperature: 400},
		{CapacitanceRate: cBottom, Temperature: 300},
	}
	ua := units.ThermalConductance(1000)

	forward, err := KnownConductanceAndInlets(arrangement.CounterFlow{}, ua, inlets)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	inverse, err := KnownConditionsAndInlets(arrangement.CounterFlow{}, forward.Streams[0], 0, inlets[1])
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	rel := math.Abs(float64(inverse.Ua)-float64(ua)) / float64(ua)
	if rel > 1e-9 {
		tst.Errorf("expected recovered UA~%v, got %v (rel err %v)", ua, inverse.Ua, rel)
	}
}

func TestKnownConditionsAndInletsZeroMaxHeatFlow(tst *testing.T) {
	chk.PrintTitle("known-conditions inverse analyzer at equal inlet temperatures")

	cTop, _ := NewCapacitanceRate(units.ThermalConductance(2000))
	cBottom, _ := NewCapacitanceRate(units.ThermalConductance(3000))
	inlet := StreamInlet{CapacitanceRate: cTop, Temperature: 350}
	otherInlet := StreamInlet{CapacitanceRate: cBottom, Temperature: 350}

	known := NewStreamFromHeatFlow(inlet, NoHeatFlow())
	result, err := KnownConditionsAndInlets(arrangement.CounterFlow{}, known, 0, otherInlet)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if result.Ua != 0 || result.Ntu.Value() != 0 {
		tst.Errorf("expected UA=NTU=0 at equal inlet temperatures, got ua=%v ntu=%v", result.Ua, result.Ntu.Value())
	}
}
