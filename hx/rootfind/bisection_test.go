// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootfind

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestBisectionConverges(tst *testing.T) {
	chk.PrintTitle("basic bisection convergence")

	model := func(x float64) (float64, error) { return x, nil }
	problem := func(y float64) float64 { return y - 3 }
	cfg := Config{MaxIters: 100, XAbsTol: 1e-12, XRelTol: 1e-12, ResidualTol: 1e-10}

	sol, err := Solve[float64](model, problem, [2]float64{0, 10}, cfg, nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if sol.Status != Converged {
		tst.Errorf("expected Converged, got %v", sol.Status)
	}
	if math.Abs(sol.Snapshot.Output-3) > 1e-8 {
		tst.Errorf("expected root ~3, got %v", sol.Snapshot.Output)
	}
}

func TestDegenerateBracketReturnsError(tst *testing.T) {
	chk.PrintTitle("degenerate bracket is a structural error")

	model := func(x float64) (float64, error) { return x, nil }
	problem := func(y float64) float64 { return y }
	cfg := Config{MaxIters: 10, XAbsTol: 1e-9, XRelTol: 1e-9, ResidualTol: 1e-9}

	_, err := Solve[float64](model, problem, [2]float64{5, 5}, cfg, nil)
	if err == nil {
		tst.Fatalf("expected a degenerate-bracket error")
	}
	var rfErr *Error
	if !errors.As(err, &rfErr) {
		tst.Fatalf("expected *rootfind.Error, got %T: %v", err, err)
	}
}

func TestMaxItersExhaustionIsNotAnError(tst *testing.T) {
	chk.PrintTitle("iteration-cap exhaustion reports NotConverged, not an error")

	model := func(x float64) (float64, error) { return x, nil }
	problem := func(y float64) float64 { return y - 3 }
	cfg := Config{MaxIters: 1, XAbsTol: 0, XRelTol: 0, ResidualTol: 0}

	sol, err := Solve[float64](model, problem, [2]float64{0, 10}, cfg, nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if sol.Status != NotConverged {
		tst.Errorf("expected NotConverged with a 1-iteration cap and zero tolerances, got %v", sol.Status)
	}
}

// TestAssumePositiveHookAvoidsFatalError exercises the steering hook
// spec §6.3 reserves for candidates the inner model cannot evaluate
// (e.g. a second-law-violating guess): the model fails below x=0, and
// the hook tells Solve to treat the failure as a strongly positive
// residual rather than aborting.
func TestAssumePositiveHookAvoidsFatalError(tst *testing.T) {
	chk.PrintTitle("AssumePositive steers past a failing candidate")

	infeasible := errors.New("candidate rejected by inner model")
	model := func(x float64) (float64, error) {
		if x < 0 {
			return 0, infeasible
		}
		return x, nil
	}
	problem := func(y float64) float64 { return y - 4 }

	sawFailure := false
	hook := func(ev Event[float64]) *Action {
		if ev.Err != nil {
			sawFailure = true
			a := AssumePositive()
			return &a
		}
		return nil
	}

	cfg := Config{MaxIters: 50, XAbsTol: 1e-10, XRelTol: 1e-10, ResidualTol: 1e-9}
	_, err := Solve[float64](model, problem, [2]float64{-1, 10}, cfg, hook)
	if err != nil {
		tst.Fatalf("expected the hook to avoid a fatal error, got: %v", err)
	}
	if !sawFailure {
		tst.Errorf("expected the hook to observe the failing candidate at x=-1")
	}
}
