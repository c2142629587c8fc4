// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-hx/units"
)

func TestCapacityRatioCanonicalizesOrder(tst *testing.T) {
	chk.PrintTitle("CapacityRatio canonicalizes swapped order")

	a, _ := NewCapacitanceRate(units.ThermalConductance(1000))
	b, _ := NewCapacitanceRate(units.ThermalConductance(2000))

	cr1, err := FromCapacitanceRates([2]CapacitanceRate{a, b})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	cr2, err := FromCapacitanceRates([2]CapacitanceRate{b, a})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if cr1.Value() != cr2.Value() {
		tst.Errorf("expected canonicalized ratio independent of order, got %v vs %v", cr1.Value(), cr2.Value())
	}
	if math.Abs(float64(cr1.Value())-0.5) > 1e-12 {
		tst.Errorf("expected 0.5, got %v", cr1.Value())
	}
}

func TestCMinCMax(tst *testing.T) {
	chk.PrintTitle("CMin/CMax")

	a, _ := NewCapacitanceRate(units.ThermalConductance(1000))
	b, _ := NewCapacitanceRate(units.ThermalConductance(2000))
	rates := [2]CapacitanceRate{a, b}
	if CMin(rates).Value() != 1000 {
		tst.Errorf("expected CMin=1000, got %v", CMin(rates).Value())
	}
	if CMax(rates).Value() != 2000 {
		tst.Errorf("expected CMax=2000, got %v", CMax(rates).Value())
	}
}

func TestFromMassRateAndSpecificHeat(tst *testing.T) {
	chk.PrintTitle("FromMassRateAndSpecificHeat")

	c, err := FromMassRateAndSpecificHeat(units.MassRate(2), units.SpecificHeatCapacity(1000))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if c.Value() != 2000 {
		tst.Errorf("expected 2000, got %v", c.Value())
	}
}
