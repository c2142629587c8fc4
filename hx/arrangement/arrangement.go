// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package arrangement implements the effectiveness-NTU library of
// spec §4.4: closed-form epsilon(NTU, Cr) relations per flow
// arrangement, and, where invertible, NTU(eps, Cr). Grounded on
// mdl/solid's one-file-per-concrete-model layout (each variant is a
// distinct type registered against a shared interface), generalized
// here as a Go interface satisfied by distinct marker types instead of
// Rust's compile-time tag — spec §9 explicitly allows either
// representation, and a dynamic interface avoids parameterizing every
// downstream function over a type parameter purely to select a
// formula.
package arrangement

import (
	"fmt"
	"math"
)

// Arrangement selects the effectiveness formula and the bottom-stream
// layout convention the segment discretizer needs (spec §3, §4.4).
type Arrangement interface {
	// Name identifies the arrangement for diagnostics.
	Name() string
	// Effectiveness computes eps(NTU, Cr).
	Effectiveness(ntu, cr float64) float64
	// BottomFlowsLeftToRight reports whether the bottom stream's node
	// array is laid out left-to-right (parallel-like) or must be
	// reversed so the bottom inlet sits at index N-1 (counterflow).
	BottomFlowsLeftToRight() bool
}

// Invertible is satisfied by arrangements with a closed-form NTU(eps, Cr).
type Invertible interface {
	Arrangement
	Ntu(eff, cr float64) (float64, error)
}

// effectivenessVia applies the Cr=0 limit common to every arrangement
// before delegating to the arrangement-specific closure, grounded on
// original_source's effectiveness_ntu.rs effectiveness_via helper.
func effectivenessVia(ntu, cr float64, f func(ntu, cr float64) float64) float64 {
	if cr == 0 {
		return 1 - math.Exp(-ntu)
	}
	return f(ntu, cr)
}

// ntuVia applies the Cr=0 limit common to every arrangement before
// delegating to the arrangement-specific closure.
func ntuVia(eff, cr float64, f func(eff, cr float64) (float64, error)) (float64, error) {
	if cr == 0 {
		return -math.Log(1 - eff), nil
	}
	return f(eff, cr)
}

// CounterFlow: top flows node 0->N-1; bottom flows N-1->0.
type CounterFlow struct{}

func (CounterFlow) Name() string { return "counter-flow" }

func (CounterFlow) Effectiveness(ntu, cr float64) float64 {
	return effectivenessVia(ntu, cr, func(ntu, cr float64) float64 {
		if cr == 1 {
			return ntu / (1 + ntu)
		}
		e := math.Exp(-ntu * (1 - cr))
		return (1 - e) / (1 - cr*e)
	})
}

func (CounterFlow) Ntu(eff, cr float64) (float64, error) {
	return ntuVia(eff, cr, func(eff, cr float64) (float64, error) {
		if cr == 1 {
			if eff >= 1 {
				return 0, fmt.Errorf("arrangement: counter-flow Ntu: effectiveness must be < 1 at Cr=1")
			}
			return eff / (1 - eff), nil
		}
		num := 1 - eff*cr
		den := 1 - eff
		if num <= 0 || den <= 0 {
			return 0, fmt.Errorf("arrangement: counter-flow Ntu: effectiveness out of domain for Cr=%v", cr)
		}
		return math.Log(num/den) / (1 - cr), nil
	})
}

func (CounterFlow) BottomFlowsLeftToRight() bool { return false }

// ParallelFlow: both streams flow node 0->N-1.
type ParallelFlow struct{}

func (ParallelFlow) Name() string { return "parallel-flow" }

func (ParallelFlow) Effectiveness(ntu, cr float64) float64 {
	return effectivenessVia(ntu, cr, func(ntu, cr float64) float64 {
		return (1 - math.Exp(-ntu*(1+cr))) / (1 + cr)
	})
}

func (ParallelFlow) Ntu(eff, cr float64) (float64, error) {
	return ntuVia(eff, cr, func(eff, cr float64) (float64, error) {
		arg := 1 - eff*(1+cr)
		if arg <= 0 {
			return 0, fmt.Errorf("arrangement: parallel-flow Ntu: effectiveness out of domain for Cr=%v", cr)
		}
		return -math.Log(arg) / (1 + cr), nil
	})
}

func (ParallelFlow) BottomFlowsLeftToRight() bool { return true }

// CrossFlowUnmixedUnmixed: both streams unmixed.
type CrossFlowUnmixedUnmixed struct{}

func (CrossFlowUnmixedUnmixed) Name() string { return "cross-flow (unmixed/unmixed)" }

func (CrossFlowUnmixedUnmixed) Effectiveness(ntu, cr float64) float64 {
	return effectivenessVia(ntu, cr, func(ntu, cr float64) float64 {
		return 1 - math.Exp((math.Pow(ntu, 0.22)/cr)*(math.Exp(-cr*math.Pow(ntu, 0.78))-1))
	})
}

func (CrossFlowUnmixedUnmixed) BottomFlowsLeftToRight() bool { return true }

// CrossFlowMixedMixed: both streams mixed.
type CrossFlowMixedMixed struct{}

func (CrossFlowMixedMixed) Name() string { return "cross-flow (mixed/mixed)" }

func (CrossFlowMixedMixed) Effectiveness(ntu, cr float64) float64 {
	return effectivenessVia(ntu, cr, func(ntu, cr float64) float64 {
		return 1 / (1/(1-math.Exp(-ntu)) + cr/(1-math.Exp(-cr*ntu)) - 1/ntu)
	})
}

func (CrossFlowMixedMixed) BottomFlowsLeftToRight() bool { return true }

// crossFlowMixedUnmixedEffectiveness is shared by the two asymmetric
// cross-flow variants: mixedIsCmax reports whether the mixed stream
// is the one with the larger capacitance rate (the two distinct types
// below exist so the caller names which physical stream is mixed).
func crossFlowMixedUnmixedEffectiveness(ntu, cr float64, mixedIsCmax bool) float64 {
	if mixedIsCmax {
		return (1 / cr) * (1 - math.Exp(-cr*(1-math.Exp(-ntu))))
	}
	return 1 - math.Exp(-(1/cr)*(1-math.Exp(-cr*ntu)))
}

// crossFlowMixedUnmixedNtu inverts crossFlowMixedUnmixedEffectiveness in
// closed form, grounded on original_source's effectiveness_ntu.rs
// ntu_via analogue for the asymmetric cross-flow cases (spec §4.4:
// "the asymmetric cross-flow cases additionally define the inverse").
func crossFlowMixedUnmixedNtu(eff, cr float64, mixedIsCmax bool) (float64, error) {
	if mixedIsCmax {
		arg := 1 + math.Log(1-eff*cr)/cr
		if 1-eff*cr <= 0 || arg <= 0 {
			return 0, fmt.Errorf("arrangement: cross-flow (mixed/unmixed) Ntu: effectiveness out of domain for Cr=%v", cr)
		}
		return -math.Log(arg), nil
	}
	arg := 1 + cr*math.Log(1-eff)
	if 1-eff <= 0 || arg <= 0 {
		return 0, fmt.Errorf("arrangement: cross-flow (unmixed/mixed) Ntu: effectiveness out of domain for Cr=%v", cr)
	}
	return -math.Log(arg) / cr, nil
}

// CrossFlowMixedUnmixed: the top stream is mixed, the bottom unmixed.
// MixedIsCmax must be supplied by the caller (it depends on which
// capacitance rate is larger, spec §4.4: "asymmetric in which stream
// is C_max").
type CrossFlowMixedUnmixed struct {
	MixedIsCmax bool
}

func (CrossFlowMixedUnmixed) Name() string { return "cross-flow (mixed/unmixed)" }

func (a CrossFlowMixedUnmixed) Effectiveness(ntu, cr float64) float64 {
	return effectivenessVia(ntu, cr, func(ntu, cr float64) float64 {
		return crossFlowMixedUnmixedEffectiveness(ntu, cr, a.MixedIsCmax)
	})
}

func (a CrossFlowMixedUnmixed) Ntu(eff, cr float64) (float64, error) {
	return ntuVia(eff, cr, func(eff, cr float64) (float64, error) {
		return crossFlowMixedUnmixedNtu(eff, cr, a.MixedIsCmax)
	})
}

func (CrossFlowMixedUnmixed) BottomFlowsLeftToRight() bool { return true }

// CrossFlowUnmixedMixed: the top stream is unmixed, the bottom mixed.
// Uses the same closed forms as CrossFlowMixedUnmixed, with MixedIsCmax
// passed through unchanged: it reports whether the mixed (here bottom)
// stream has the larger capacitance rate.
type CrossFlowUnmixedMixed struct {
	MixedIsCmax bool
}

func (CrossFlowUnmixedMixed) Name() string { return "cross-flow (unmixed/mixed)" }

func (a CrossFlowUnmixedMixed) Effectiveness(ntu, cr float64) float64 {
	return effectivenessVia(ntu, cr, func(ntu, cr float64) float64 {
		return crossFlowMixedUnmixedEffectiveness(ntu, cr, a.MixedIsCmax)
	})
}

func (a CrossFlowUnmixedMixed) Ntu(eff, cr float64) (float64, error) {
	return ntuVia(eff, cr, func(eff, cr float64) (float64, error) {
		return crossFlowMixedUnmixedNtu(eff, cr, a.MixedIsCmax)
	})
}

func (CrossFlowUnmixedMixed) BottomFlowsLeftToRight() bool { return true }
