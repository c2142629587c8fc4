// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package incompressible implements a constant-density, constant-cp
// liquid property model, grounded on original_source's
// model/incompressible.rs (spec §12). It uses the same constants the
// spec's own E1-E7 scenarios rely on (cp = 1000 J/(kg*K),
// rho = 1 kg/m^3) but as a reusable, parameterized model rather than a
// test-only double — the test-only double itself lives alongside
// hx/solve's tests, ported from original_source's test_support.rs.
package incompressible

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// Model is a constant-property liquid:
//
//	h(T) = cp * (T - Tref)
//	rho  = constant
//
// Pressure is carried through StateFromTP/StateFromPH as an opaque
// input/output (an incompressible liquid's enthalpy does not depend on
// pressure), reported back as the reference pressure supplied at
// construction when asked directly.
type Model[Fluid any] struct {
	cp   units.SpecificHeatCapacity
	rho  units.Density
	tref units.AbsoluteTemperature
	pref units.Pressure
}

// New builds a Model from a dbf.Params database.
func New[Fluid any](prms dbf.Params) (*Model[Fluid], error) {
	m := &Model[Fluid]{}
	if err := m.Init(prms); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model[Fluid]) Name() string { return "incompressible" }

// Init reads cp, rho, tref, and pref from prms.
func (m *Model[Fluid]) Init(prms dbf.Params) error {
	m.tref = 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "cp":
			m.cp = units.SpecificHeatCapacity(p.V)
		case "rho":
			m.rho = units.Density(p.V)
		case "tref":
			m.tref = units.AbsoluteTemperature(p.V)
		case "pref":
			m.pref = units.Pressure(p.V)
		default:
			return chk.Err("incompressible: parameter named %q is incorrect\n", p.N)
		}
	}
	if m.cp <= 0 {
		return chk.Err("incompressible: 'cp' must be given and strictly positive")
	}
	if m.rho <= 0 {
		return chk.Err("incompressible: 'rho' must be given and strictly positive")
	}
	return nil
}

// GetPrms returns an example (or current) parameter set; the example
// values are the canonical constants used by spec scenarios E1-E7.
func (m *Model[Fluid]) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "cp", V: 1000},
			&dbf.P{N: "rho", V: 1},
			&dbf.P{N: "tref", V: 0},
			&dbf.P{N: "pref", V: 101325},
		}
	}
	return dbf.Params{
		&dbf.P{N: "cp", V: float64(m.cp)},
		&dbf.P{N: "rho", V: float64(m.rho)},
		&dbf.P{N: "tref", V: float64(m.tref)},
		&dbf.P{N: "pref", V: float64(m.pref)},
	}
}

// Pressure implements thermo.HasPressure by returning the reference
// pressure recorded at construction; an incompressible liquid does not
// define pressure as a function of (T, rho).
func (m *Model[Fluid]) Pressure(s thermo.State[Fluid]) (units.Pressure, error) {
	return m.pref, nil
}

// Enthalpy implements thermo.HasEnthalpy.
func (m *Model[Fluid]) Enthalpy(s thermo.State[Fluid]) (units.SpecificEnthalpy, error) {
	dt := s.Temperature.Minus(m.tref)
	return dt.TimesCp(m.cp), nil
}

// StateFromTP implements thermo.StateFromTP: density is always rho.
func (m *Model[Fluid]) StateFromTP(fluid Fluid, t units.AbsoluteTemperature, p units.Pressure) (thermo.State[Fluid], error) {
	return thermo.New(fluid, t, m.rho), nil
}

// StateFromPH implements thermo.StateFromPH: T follows from h; density
// is always rho.
func (m *Model[Fluid]) StateFromPH(fluid Fluid, p units.Pressure, h units.SpecificEnthalpy) (thermo.State[Fluid], error) {
	t := m.tref.Plus(units.TemperatureInterval(float64(h) / float64(m.cp)))
	return thermo.New(fluid, t, m.rho), nil
}
