// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-hx/constraint"
	"github.com/cpmech/gofem-hx/units"
)

func TestStreamFromHeatFlow(tst *testing.T) {
	chk.PrintTitle("NewStreamFromHeatFlow")

	c, err := NewCapacitanceRate(units.ThermalConductance(2000))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	inlet := StreamInlet{CapacitanceRate: c, Temperature: 400}

	mag := constraint.MustNew[units.Power, constraint.StrictlyPositive[units.Power]](20000)
	s := NewStreamFromHeatFlow(inlet, Outgoing(mag))
	if math.Abs(float64(s.OutletTemperature)-390) > 1e-9 {
		tst.Errorf("expected outlet 390, got %v", s.OutletTemperature)
	}

	s2 := NewStreamFromHeatFlow(inlet, Incoming(mag))
	if math.Abs(float64(s2.OutletTemperature)-410) > 1e-9 {
		tst.Errorf("expected outlet 410, got %v", s2.OutletTemperature)
	}
}

func TestStreamFromOutletTemperature(tst *testing.T) {
	chk.PrintTitle("NewStreamFromOutletTemperature")

	c, err := NewCapacitanceRate(units.ThermalConductance(1000))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	inlet := StreamInlet{CapacitanceRate: c, Temperature: 300}

	s, err := NewStreamFromOutletTemperature(inlet, 350)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !s.HeatFlow.IsIncoming() || math.Abs(float64(s.HeatFlow.Magnitude())-50000) > 1e-6 {
		tst.Errorf("expected incoming 50000 W, got %+v", s.HeatFlow)
	}

	s2, err := NewStreamFromOutletTemperature(inlet, 300)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !s2.HeatFlow.IsNone() {
		tst.Errorf("expected no heat flow for equal in/out temperature, got %+v", s2.HeatFlow)
	}
}

func TestStreamInletProjection(tst *testing.T) {
	chk.PrintTitle("Stream.Inlet projection")

	c, _ := NewCapacitanceRate(units.ThermalConductance(1000))
	inlet := StreamInlet{CapacitanceRate: c, Temperature: 300}
	s, err := NewStreamFromOutletTemperature(inlet, 320)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	got := s.Inlet()
	if got != inlet {
		tst.Errorf("expected %+v, got %+v", inlet, got)
	}
}
