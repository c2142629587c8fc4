// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import "github.com/cpmech/gofem-hx/units"

// Model is the base marker every property model satisfies; it carries
// no methods of its own. Concrete capabilities are advertised as
// independent interfaces below, combined by a consumer into whatever
// bundle it needs (spec §4.3) rather than forcing every model to
// implement one monolithic API.
type Model[Fluid any] interface {
	// Name identifies the model for diagnostics; models are built by
	// direct constructors, not looked up by name in a registry.
	Name() string
}

// HasPressure is satisfied by a model that can report the pressure of
// a given state.
type HasPressure[Fluid any] interface {
	Model[Fluid]
	Pressure(s State[Fluid]) (units.Pressure, error)
}

// HasEnthalpy is satisfied by a model that can report the specific
// enthalpy of a given state.
type HasEnthalpy[Fluid any] interface {
	Model[Fluid]
	Enthalpy(s State[Fluid]) (units.SpecificEnthalpy, error)
}

// HasInternalEnergy is an optional capability (spec §4.3, §12): not
// required by the core discretizer, but advertised the same way.
type HasInternalEnergy[Fluid any] interface {
	Model[Fluid]
	InternalEnergy(s State[Fluid]) (units.SpecificInternalEnergy, error)
}

// HasEntropy is an optional capability.
type HasEntropy[Fluid any] interface {
	Model[Fluid]
	Entropy(s State[Fluid]) (units.SpecificEntropy, error)
}

// HasCp is an optional capability exposing constant-pressure specific heat.
type HasCp[Fluid any] interface {
	Model[Fluid]
	Cp(s State[Fluid]) (units.SpecificHeatCapacity, error)
}

// HasCv is an optional capability exposing constant-volume specific heat.
type HasCv[Fluid any] interface {
	Model[Fluid]
	Cv(s State[Fluid]) (units.SpecificHeatCapacity, error)
}

// StateFromTP is satisfied by a model that can build a state from a
// fluid tag, an absolute temperature, and a pressure.
type StateFromTP[Fluid any] interface {
	Model[Fluid]
	StateFromTP(fluid Fluid, t units.AbsoluteTemperature, p units.Pressure) (State[Fluid], error)
}

// StateFromPH is satisfied by a model that can build a state from a
// fluid tag, a pressure, and a specific enthalpy. This is the
// inversion the segment discretizer relies on (spec §4.8).
type StateFromPH[Fluid any] interface {
	Model[Fluid]
	StateFromPH(fluid Fluid, p units.Pressure, h units.SpecificEnthalpy) (State[Fluid], error)
}

// DiscretizedHxModel is the bundle the segment discretizer requires:
// exactly the four capabilities named in spec §4.3/§6.2, encoded
// explicitly as a composite interface rather than importing an entire
// property-library API, so any backend satisfying just these four
// methods can be substituted (spec §9, "property model as capability
// bundle").
type DiscretizedHxModel[Fluid any] interface {
	HasPressure[Fluid]
	HasEnthalpy[Fluid]
	StateFromTP[Fluid]
	StateFromPH[Fluid]
}
