// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units is a thin type-wrapper discipline around primitive
// floats, grounded on the teacher's own wrapping of plain scalars into
// named fields (e.g. mdl/thermomech.Thermomech's a0..a3, Cp, H, Re, Sb,
// T0). It exists so that the distinction between an absolute
// temperature and a temperature interval — and between the handful of
// other physical quantities this solver manipulates — survives
// construction and arithmetic instead of collapsing into bare
// float64, per spec §4.2 and §9.
package units

// AbsoluteTemperature is a point on the Kelvin scale.
type AbsoluteTemperature float64

// TemperatureInterval is a change in temperature (Kelvin), distinct
// from an AbsoluteTemperature. It is the only thing an AbsoluteTemperature
// may be subtracted into.
type TemperatureInterval float64

// Minus computes t - other as a TemperatureInterval. This is
// deliberately not expressed as a generic "subtract two floats"
// operation: it is the one legal place an AbsoluteTemperature
// subtraction happens, so it is named and typed to prevent an absolute
// temperature from silently being used where an interval is required
// (spec §4.2: "not an identity coercion").
func (t AbsoluteTemperature) Minus(other AbsoluteTemperature) TemperatureInterval {
	return TemperatureInterval(t - other)
}

// Plus shifts an absolute temperature by an interval.
func (t AbsoluteTemperature) Plus(dt TemperatureInterval) AbsoluteTemperature {
	return AbsoluteTemperature(float64(t) + float64(dt))
}

// Pressure in pascals.
type Pressure float64

// MassRate in kilograms per second.
type MassRate float64

// Power in watts.
type Power float64

// ThermalConductance (UA) in watts per kelvin.
type ThermalConductance float64

// SpecificEnthalpy in joules per kilogram.
type SpecificEnthalpy float64

// SpecificEntropy in joules per kilogram-kelvin.
type SpecificEntropy float64

// SpecificHeatCapacity (cp or cv) in joules per kilogram-kelvin. This
// is dimensionally identical to SpecificEntropy but kept as a distinct
// named type, mirroring original_source's separate ISQ aliases for
// SpecificEnthalpy/SpecificEntropy/SpecificInternalEnergy even though
// uom's SI system has no bespoke unit for them.
type SpecificHeatCapacity float64

// SpecificInternalEnergy in joules per kilogram.
type SpecificInternalEnergy float64

// Density in kilograms per cubic meter.
type Density float64

// Ratio is a dimensionless quantity (capacity ratio, effectiveness).
type Ratio float64

// TimesCp multiplies a temperature interval by a specific heat
// capacity to produce a specific enthalpy change.
func (dt TemperatureInterval) TimesCp(cp SpecificHeatCapacity) SpecificEnthalpy {
	return SpecificEnthalpy(float64(dt) * float64(cp))
}

// Times multiplies a mass rate by a specific-enthalpy change to
// produce a power (the energy-balance primitive used throughout
// hx/solve).
func (m MassRate) Times(dh SpecificEnthalpy) Power {
	return Power(float64(m) * float64(dh))
}

// DividedBy divides a power by a mass rate to produce a specific
// enthalpy change, the inverse of Times.
func (p Power) DividedBy(m MassRate) SpecificEnthalpy {
	return SpecificEnthalpy(float64(p) / float64(m))
}

// Over divides a power by a temperature interval to produce a thermal
// conductance.
func (p Power) Over(dt TemperatureInterval) ThermalConductance {
	return ThermalConductance(float64(p) / float64(dt))
}
