// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermo defines the capability-interface contract a pluggable
// property model must satisfy, grounded on mdl/conduct's Model
// interface + registry idiom: a property model advertises what it can
// do via small, independent interfaces rather than one monolithic API,
// so the discretizer can require exactly the bundle it needs (spec
// §4.3) while leaving room for optional capabilities (§12) that the
// core solver never requires.
package thermo

import (
	"fmt"

	"github.com/cpmech/gofem-hx/units"
)

// State is a thermodynamic state (T, rho, fluid tag). Fluid is a
// polymorphic marker type (see package thermo/fluid) that may carry no
// data (dry air, water) or carry state-defining data of its own
// (mixture composition, salinity) — Go expresses this as a type
// parameter rather than Rust's associated-type polymorphism.
type State[Fluid any] struct {
	Temperature units.AbsoluteTemperature
	Density     units.Density
	Fluid       Fluid
}

// New builds a state from its three observable fields.
func New[Fluid any](fluid Fluid, temperature units.AbsoluteTemperature, density units.Density) State[Fluid] {
	return State[Fluid]{Temperature: temperature, Density: density, Fluid: fluid}
}

// WithTemperature returns a copy of the state at a different temperature.
func (s State[Fluid]) WithTemperature(t units.AbsoluteTemperature) State[Fluid] {
	s.Temperature = t
	return s
}

// WithDensity returns a copy of the state at a different density.
func (s State[Fluid]) WithDensity(d units.Density) State[Fluid] {
	s.Density = d
	return s
}

// ErrorKind names the four structured reasons a capability call may fail.
type ErrorKind int

const (
	Undefined ErrorKind = iota
	OutOfDomain
	InvalidState
	Calculation
)

func (k ErrorKind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case OutOfDomain:
		return "out of domain"
	case InvalidState:
		return "invalid state"
	case Calculation:
		return "calculation"
	default:
		return "unknown property error"
	}
}

// PropertyError is returned by any capability call that cannot produce
// a value for the given state.
type PropertyError struct {
	Kind    ErrorKind
	Context string
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("thermo: %s: %s", e.Kind, e.Context)
}

func NewPropertyError(kind ErrorKind, context string) error {
	return &PropertyError{Kind: kind, Context: context}
}
