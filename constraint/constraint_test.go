// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNonNegative(tst *testing.T) {
	chk.PrintTitle("NonNegative")

	if _, err := New[float64, NonNegative[float64]](1.0); err != nil {
		tst.Errorf("expected success, got %v", err)
	}
	if _, err := New[float64, NonNegative[float64]](0.0); err != nil {
		tst.Errorf("expected zero to be accepted, got %v", err)
	}
	if _, err := New[float64, NonNegative[float64]](-1.0); err == nil {
		tst.Errorf("expected failure for negative value")
	}
	if _, err := New[float64, NonNegative[float64]](math.NaN()); err == nil {
		tst.Errorf("expected failure for NaN")
	}
}

func TestStrictlyPositive(tst *testing.T) {
	chk.PrintTitle("StrictlyPositive")

	if _, err := New[float64, StrictlyPositive[float64]](0.0); err == nil {
		tst.Errorf("expected zero to be rejected")
	}
	if _, err := New[float64, StrictlyPositive[float64]](-1.0); err == nil {
		tst.Errorf("expected negative to be rejected")
	}
	v, err := New[float64, StrictlyPositive[float64]](2.5)
	if err != nil {
		tst.Fatalf("expected success, got %v", err)
	}
	if v.Value() != 2.5 {
		tst.Errorf("expected 2.5, got %v", v.Value())
	}
}

func TestUnitInterval(tst *testing.T) {
	chk.PrintTitle("UnitInterval")

	cases := []struct {
		v    float64
		want bool
	}{
		{0, true}, {1, true}, {0.5, true}, {-0.001, false}, {1.001, false},
	}
	for _, c := range cases {
		_, err := New[float64, UnitInterval[float64]](c.v)
		if (err == nil) != c.want {
			tst.Errorf("UnitInterval(%v): expected ok=%v, got err=%v", c.v, c.want, err)
		}
	}
}

func TestAddClosure(tst *testing.T) {
	chk.PrintTitle("Add closure")

	a := MustNew[float64, NonNegative[float64]](1.0)
	b := MustNew[float64, NonNegative[float64]](2.0)
	sum := Add(a, b)
	if sum.Value() != 3.0 {
		tst.Errorf("expected 3.0, got %v", sum.Value())
	}
}

func TestMustNewPanicsOnInvalid(tst *testing.T) {
	chk.PrintTitle("MustNew panics on invalid value")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("expected panic")
		}
	}()
	MustNew[float64, StrictlyPositive[float64]](-1.0)
}
