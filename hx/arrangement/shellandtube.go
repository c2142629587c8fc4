// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrangement

import (
	"fmt"
	"math"
)

// ShellAndTubeErrorKind names the four structured reasons a
// shell-and-tube configuration is rejected (spec §6.5).
type ShellAndTubeErrorKind int

const (
	ZeroShellPasses ShellAndTubeErrorKind = iota
	ShellPassOverflow
	InsufficientTubePasses
	TubePassesNotMultiple
)

func (k ShellAndTubeErrorKind) String() string {
	switch k {
	case ZeroShellPasses:
		return "zero shell passes"
	case ShellPassOverflow:
		return "shell pass count overflows"
	case InsufficientTubePasses:
		return "insufficient tube passes"
	case TubePassesNotMultiple:
		return "tube passes is not a multiple of 2*shells"
	default:
		return "unknown shell-and-tube configuration error"
	}
}

// ShellAndTubeConfigError reports why (Shells, TubePasses) is invalid.
type ShellAndTubeConfigError struct {
	Kind       ShellAndTubeErrorKind
	Shells     int
	TubePasses int
}

func (e *ShellAndTubeConfigError) Error() string {
	return fmt.Sprintf("shell-and-tube configuration invalid (%s): shells=%d, tube passes=%d",
		e.Kind, e.Shells, e.TubePasses)
}

// maxShellPasses mirrors the const-generic bound of u16::MAX/2 in the
// original Rust crate, where S was stored as a u16.
const maxShellPasses = 65535 / 2

// ShellAndTube: S shell passes, T tube passes (T a positive multiple
// of 2S). Grounded on spec §4.4's "first compute per-shell
// eps_1 from the 1-pass relation, then recurrence over S" and the
// standard shell-and-tube effectiveness correlation (Bowman, Mueller &
// Nagle). The one-shell-pass relation is continuous at Cr=1, but the
// recurrence over S is 0/0 there, so Effectiveness and Ntu use the
// Cr=1 limit form S*eps_1/(1+(S-1)*eps_1) and its inverse.
type ShellAndTube struct {
	Shells     int
	TubePasses int
}

// NewShellAndTube validates (shells, tubePasses) per spec §8 item 13:
// ShellAndTube{0,_} fails ZeroShellPasses; ShellAndTube{3,4} fails
// InsufficientTubePasses; ShellAndTube{3,8} fails TubePassesNotMultiple;
// ShellAndTube{1,2} succeeds.
func NewShellAndTube(shells, tubePasses int) (ShellAndTube, error) {
	if shells == 0 {
		return ShellAndTube{}, &ShellAndTubeConfigError{Kind: ZeroShellPasses, Shells: shells, TubePasses: tubePasses}
	}
	if shells > maxShellPasses {
		return ShellAndTube{}, &ShellAndTubeConfigError{Kind: ShellPassOverflow, Shells: shells, TubePasses: tubePasses}
	}
	if tubePasses < 2*shells {
		return ShellAndTube{}, &ShellAndTubeConfigError{Kind: InsufficientTubePasses, Shells: shells, TubePasses: tubePasses}
	}
	if tubePasses%(2*shells) != 0 {
		return ShellAndTube{}, &ShellAndTubeConfigError{Kind: TubePassesNotMultiple, Shells: shells, TubePasses: tubePasses}
	}
	return ShellAndTube{Shells: shells, TubePasses: tubePasses}, nil
}

func (a ShellAndTube) Name() string {
	return fmt.Sprintf("shell-and-tube (%d shell pass(es), %d tube pass(es))", a.Shells, a.TubePasses)
}

func oneShellPassEffectiveness(ntu1, cr float64) float64 {
	root := math.Sqrt(1 + cr*cr)
	e := math.Exp(-ntu1 * root)
	return 2 / (1 + cr + root*(1+e)/(1-e))
}

func (a ShellAndTube) Effectiveness(ntu, cr float64) float64 {
	return effectivenessVia(ntu, cr, func(ntu, cr float64) float64 {
		s := float64(a.Shells)
		eff1 := oneShellPassEffectiveness(ntu, cr)
		if cr == 1 {
			return s * eff1 / (1 + (s-1)*eff1)
		}
		ratio := (1 - eff1*cr) / (1 - eff1)
		p := math.Pow(ratio, s)
		return (p - 1) / (p - cr)
	})
}

func (a ShellAndTube) Ntu(eff, cr float64) (float64, error) {
	return ntuVia(eff, cr, func(eff, cr float64) (float64, error) {
		s := float64(a.Shells)
		var eff1 float64
		if cr == 1 {
			eff1 = eff / (s - (s-1)*eff)
		} else {
			f := math.Pow((eff*cr-1)/(eff-1), 1/s)
			eff1 = (f - 1) / (f - cr)
		}
		root := math.Sqrt(1 + cr*cr)
		num := 2/eff1 - 1 - cr - root
		den := 2/eff1 - 1 - cr + root
		if num <= 0 || den <= 0 {
			return 0, fmt.Errorf("arrangement: shell-and-tube Ntu: effectiveness out of domain for Cr=%v", cr)
		}
		ntu1 := -math.Log(num/den) / root
		return ntu1, nil
	})
}

func (ShellAndTube) BottomFlowsLeftToRight() bool { return true }
