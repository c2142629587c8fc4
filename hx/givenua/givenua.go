// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package givenua implements the outer UA-matching solver of spec
// §4.10: a single-variable bisection on the top-stream outlet
// temperature until the discretized solve's achieved UA matches a
// target, tolerating and steering around local second-law violations
// during the search (spec §7's "only case of local recovery inside the
// core"). Grounded on fem's inp-driven configuration pattern
// (a typed config struct with defaults) layered over hx/rootfind.
package givenua

import (
	"fmt"

	"github.com/cpmech/gofem-hx/hx"
	"github.com/cpmech/gofem-hx/hx/arrangement"
	"github.com/cpmech/gofem-hx/hx/rootfind"
	"github.com/cpmech/gofem-hx/hx/solve"
	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// Config is GivenUaConfig (spec §6.4), with defaults {100, 1e-12 K,
// 1e-12 W/K} mirroring mdl/conduct-style models' GetPrms(example bool)
// convention of exposing a canonical default parameter set.
type Config struct {
	MaxIters int
	TempTol  units.TemperatureInterval
	UaTol    units.ThermalConductance
}

// DefaultConfig returns the canonical default configuration.
func DefaultConfig() Config {
	return Config{MaxIters: 100, TempTol: 1e-12, UaTol: 1e-12}
}

func (c Config) bisection() rootfind.Config {
	return rootfind.Config{
		MaxIters:    c.MaxIters,
		XAbsTol:     float64(c.TempTol),
		XRelTol:     0,
		ResidualTol: float64(c.UaTol),
	}
}

// ErrorKind distinguishes the three GivenUaError variants of spec §6.5.
type ErrorKind int

const (
	errSolve ErrorKind = iota
	errBisection
	errMaxIters
)

// Error is GivenUaError: a wrapped SolveError, a wrapped bisection
// structural error, or a MaxIters report carrying the best-achieved
// residual.
type Error struct {
	Kind     ErrorKind
	Source   error
	Residual units.ThermalConductance
	Iters    int
}

func (e *Error) Error() string {
	switch e.Kind {
	case errSolve:
		return fmt.Sprintf("given_ua: inner solve failed: %v", e.Source)
	case errBisection:
		return fmt.Sprintf("given_ua: bisection failed: %v", e.Source)
	case errMaxIters:
		return fmt.Sprintf("given_ua: did not converge within %d iterations (residual=%v W/K)", e.Iters, e.Residual)
	default:
		return "given_ua: unknown error"
	}
}

func (e *Error) Unwrap() error { return e.Source }

// GivenUa is the outer entry point of spec §6.1:
// given_ua<Arrangement, N>(known, target_ua, config, thermo_top,
// thermo_bottom).
func GivenUa[TopFluid, BottomFluid any](
	n int,
	a arrangement.Invertible,
	known solve.Known[TopFluid, BottomFluid],
	targetUa units.ThermalConductance,
	cfg Config,
	thermoTop thermo.DiscretizedHxModel[TopFluid],
	thermoBottom thermo.DiscretizedHxModel[BottomFluid],
) (solve.Results[TopFluid, BottomFluid], error) {

	if targetUa < 0 {
		return solve.Results[TopFluid, BottomFluid]{}, fmt.Errorf("given_ua: target_ua must be >= 0, got %v", targetUa)
	}

	if targetUa == 0 {
		results, err := solve.Solve(n, a, known, solve.GivenHeatTransferRate(hx.NoHeatTransfer()), thermoTop, thermoBottom)
		if err != nil {
			return solve.Results[TopFluid, BottomFluid]{}, &Error{Kind: errSolve, Source: err}
		}
		return results, nil
	}

	topInK := float64(known.Inlets.Top.Temperature)
	bottomInK := float64(known.Inlets.Bottom.Temperature)

	model := func(topOutletK float64) (solve.Results[TopFluid, BottomFluid], error) {
		given := solve.GivenTopOutletTemp(units.AbsoluteTemperature(topOutletK))
		return solve.Solve(n, a, known, given, thermoTop, thermoBottom)
	}
	problem := func(r solve.Results[TopFluid, BottomFluid]) float64 {
		return float64(r.Ua) - float64(targetUa)
	}
	hook := func(ev rootfind.Event[solve.Results[TopFluid, BottomFluid]]) *rootfind.Action {
		if ev.Err != nil {
			a := rootfind.AssumePositive()
			return &a
		}
		return nil
	}

	solution, err := rootfind.Solve(model, problem, [2]float64{topInK, bottomInK}, cfg.bisection(), hook)
	if err != nil {
		return solve.Results[TopFluid, BottomFluid]{}, &Error{Kind: errBisection, Source: err}
	}

	if solution.Status != rootfind.Converged {
		return solve.Results[TopFluid, BottomFluid]{}, &Error{
			Kind:     errMaxIters,
			Residual: units.ThermalConductance(solution.Residual),
			Iters:    solution.Iters,
		}
	}

	return solution.Snapshot.Output, nil
}

// GivenUaSame is GivenUa with a single shared property model for both
// streams (spec §6.1 given_ua_same).
func GivenUaSame[Fluid any](
	n int,
	a arrangement.Invertible,
	known solve.Known[Fluid, Fluid],
	targetUa units.ThermalConductance,
	cfg Config,
	model thermo.DiscretizedHxModel[Fluid],
) (solve.Results[Fluid, Fluid], error) {
	return GivenUa[Fluid, Fluid](n, a, known, targetUa, cfg, model, model)
}
