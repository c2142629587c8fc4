// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rootfind implements the single-variable bracketed
// root-finder of spec §6.3: the bisection collaborator the outer
// UA-matching solver (hx/givenua) treats as an external dependency.
//
// No literal bisection routine exists anywhere in the example pack —
// the closest analogue, gosl/num, offers numerical-derivative helpers
// (DerivCentral/DerivForward), not a bracketed root-finder with an
// event-hook steering contract — so this package is original code, not
// a teacher port. It is styled after gosl/num's API conventions (a
// Config struct, a Solve function returning a result-plus-error, no
// package-level mutable state) so it reads as part of the same family
// of numerical-routine packages even though its algorithm is not drawn
// from the teacher. See DESIGN.md for the explicit justification this
// choice requires.
package rootfind

import (
	"math"
)

// Status reports whether Solve converged within the iteration cap.
type Status int

const (
	Converged Status = iota
	NotConverged
)

// Config bounds the search: a hard iteration cap and two independent
// tolerances, on the input variable and on the residual, either of
// which is sufficient to declare convergence (spec §4.10, §6.3, §6.4).
type Config struct {
	MaxIters    int
	XAbsTol     float64
	XRelTol     float64
	ResidualTol float64
}

// Event is what the hook observes after each candidate evaluation: the
// probed input, and either a successful output or the error the model
// raised while evaluating it.
type Event[Y any] struct {
	X      float64
	Output Y
	Err    error
}

// Result returns (output, err) the way the model call produced them.
func (e Event[Y]) Result() (Y, error) { return e.Output, e.Err }

// Action is the hook's response to an Event. The only action defined
// by spec §6.3 is AssumePositive: treat a failing candidate as if its
// residual were strictly positive, steering the search back toward the
// feasible region instead of aborting on the first infeasible probe.
type Action struct {
	assumePositive bool
}

// AssumePositive builds the steering action described above.
func AssumePositive() Action { return Action{assumePositive: true} }

// Snapshot carries the last successfully evaluated output.
type Snapshot[Y any] struct {
	Output Y
}

// Solution is Solve's successful-or-not-converged result.
type Solution[Y any] struct {
	Status   Status
	Residual float64
	Iters    int
	Snapshot Snapshot[Y]
}

// Error is raised for a structurally invalid call (a degenerate
// bracket), distinct from the inner model's own error (spec §6.3:
// "may additionally fail with a structured error distinct from the
// inner model's error").
type Error struct {
	Message string
}

func (e *Error) Error() string { return "rootfind: " + e.Message }

// Solve drives model (x -> Y, possibly failing) and problem (Y ->
// residual, infallible) to a root of the residual within bracket
// [x[0], x[1]], per spec §6.3's contract. hook observes every
// evaluation and may override a failing candidate's sign via
// AssumePositive; a nil hook treats every failure as fatal.
func Solve[Y any](
	model func(x float64) (Y, error),
	problem func(y Y) float64,
	bracket [2]float64,
	cfg Config,
	hook func(Event[Y]) *Action,
) (Solution[Y], error) {

	lo, hi := bracket[0], bracket[1]
	if lo == hi {
		return Solution[Y]{}, &Error{Message: "degenerate bracket: x_lo == x_hi"}
	}

	var lastGood Y
	evaluate := func(x float64) (residual float64, out Y, err error) {
		out, err = model(x)
		if err != nil {
			ev := Event[Y]{X: x, Err: err}
			var action *Action
			if hook != nil {
				action = hook(ev)
			}
			if action != nil && action.assumePositive {
				return math.Inf(1), out, nil
			}
			return 0, out, err
		}
		r := problem(out)
		lastGood = out
		if hook != nil {
			hook(Event[Y]{X: x, Output: out})
		}
		return r, out, nil
	}

	rLo, _, err := evaluate(lo)
	if err != nil {
		return Solution[Y]{}, err
	}
	rHi, _, err := evaluate(hi)
	if err != nil {
		return Solution[Y]{}, err
	}

	signLo := sign(rLo)

	best := Solution[Y]{Status: NotConverged, Residual: rHi, Iters: 0, Snapshot: Snapshot[Y]{Output: lastGood}}
	if math.Abs(rLo) <= cfg.ResidualTol {
		best.Residual = rLo
		best.Status = Converged
	}
	if math.Abs(rHi) <= cfg.ResidualTol {
		best.Residual = rHi
		best.Status = Converged
	}

	for iter := 1; iter <= cfg.MaxIters; iter++ {
		mid := 0.5 * (lo + hi)
		rMid, _, err := evaluate(mid)
		if err != nil {
			return Solution[Y]{}, err
		}
		best = Solution[Y]{Status: NotConverged, Residual: rMid, Iters: iter, Snapshot: Snapshot[Y]{Output: lastGood}}

		xTol := cfg.XAbsTol + cfg.XRelTol*math.Abs(mid)
		if math.Abs(rMid) <= cfg.ResidualTol || 0.5*math.Abs(hi-lo) <= xTol {
			best.Status = Converged
			return best, nil
		}

		if sign(rMid) == signLo {
			lo = mid
		} else {
			hi = mid
		}
	}

	return best, nil
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
