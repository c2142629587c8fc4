// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package perfectgas implements an ideal-gas thermodynamic property
// model, grounded on original_source's model/perfect_gas.rs (spec
// §12) and wired through gosl/fun/dbf the way mdl/retention.VanGen and
// mdl/solid.SmallElasticity read their named parameters.
package perfectgas

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// Model is a constant-cp ideal-gas model:
//
//	h(T) = cp * (T - Tref)
//	p    = rho * R * T
//
// cp, the specific gas constant R, and the reference temperature are
// read from a dbf.Params database, following mdl/retention.VanGen's
// Init pattern rather than a struct literal, so the parameter set can
// be listed, validated, and round-tripped uniformly with every other
// model in this codebase.
//
// Model is parameterized over the fluid tag it produces states for;
// unlike mdl/conduct's name-keyed registry (whose Model interface
// carries no type parameter), a name-keyed map cannot hold a family of
// generic constructors without erasing Fluid, so construction here is
// a direct generic constructor (New) rather than a New(name) factory.
type Model[Fluid any] struct {
	cp   units.SpecificHeatCapacity
	r    float64 // specific gas constant, J/(kg*K)
	tref units.AbsoluteTemperature
}

// New builds a Model from a dbf.Params database.
func New[Fluid any](prms dbf.Params) (*Model[Fluid], error) {
	m := &Model[Fluid]{}
	if err := m.Init(prms); err != nil {
		return nil, err
	}
	return m, nil
}

// Name identifies this model for diagnostics.
func (m *Model[Fluid]) Name() string { return "perfectgas" }

// Init reads cp, r, and tref from prms.
func (m *Model[Fluid]) Init(prms dbf.Params) error {
	m.tref = 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "cp":
			m.cp = units.SpecificHeatCapacity(p.V)
		case "r":
			m.r = p.V
		case "tref":
			m.tref = units.AbsoluteTemperature(p.V)
		default:
			return chk.Err("perfectgas: parameter named %q is incorrect\n", p.N)
		}
	}
	if m.cp <= 0 {
		return chk.Err("perfectgas: 'cp' must be given and strictly positive")
	}
	if m.r <= 0 {
		return chk.Err("perfectgas: 'r' must be given and strictly positive")
	}
	return nil
}

// GetPrms returns an example (or current) parameter set, mirroring
// mdl/retention.VanGen.GetPrms.
func (m *Model[Fluid]) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "cp", V: 1040},
			&dbf.P{N: "r", V: 287},
			&dbf.P{N: "tref", V: 0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "cp", V: float64(m.cp)},
		&dbf.P{N: "r", V: m.r},
		&dbf.P{N: "tref", V: float64(m.tref)},
	}
}

// Pressure implements thermo.HasPressure via the ideal-gas law.
func (m *Model[Fluid]) Pressure(s thermo.State[Fluid]) (units.Pressure, error) {
	if s.Density <= 0 {
		return 0, thermo.NewPropertyError(thermo.OutOfDomain, "perfectgas.Pressure: density must be positive")
	}
	return units.Pressure(float64(s.Density) * m.r * float64(s.Temperature)), nil
}

// Enthalpy implements thermo.HasEnthalpy.
func (m *Model[Fluid]) Enthalpy(s thermo.State[Fluid]) (units.SpecificEnthalpy, error) {
	dt := s.Temperature.Minus(m.tref)
	return dt.TimesCp(m.cp), nil
}

// StateFromTP implements thermo.StateFromTP: rho follows from p = rho*R*T.
func (m *Model[Fluid]) StateFromTP(fluid Fluid, t units.AbsoluteTemperature, p units.Pressure) (thermo.State[Fluid], error) {
	if t <= 0 {
		return thermo.State[Fluid]{}, thermo.NewPropertyError(thermo.OutOfDomain, "perfectgas.StateFromTP: temperature must be positive")
	}
	rho := units.Density(float64(p) / (m.r * float64(t)))
	return thermo.New(fluid, t, rho), nil
}

// StateFromPH implements thermo.StateFromPH: T follows from h, then rho
// from the ideal-gas law at that T and the given pressure.
func (m *Model[Fluid]) StateFromPH(fluid Fluid, p units.Pressure, h units.SpecificEnthalpy) (thermo.State[Fluid], error) {
	t := m.tref.Plus(units.TemperatureInterval(float64(h) / float64(m.cp)))
	return m.StateFromTP(fluid, t, p)
}
