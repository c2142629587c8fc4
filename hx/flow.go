// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"math"

	"github.com/cpmech/gofem-hx/constraint"
	"github.com/cpmech/gofem-hx/units"
)

// flowDir is the per-stream boundary-crossing direction.
type flowDir int

const (
	flowNone flowDir = iota
	flowIn
	flowOut
)

// HeatFlow is the per-stream {In(P>0), Out(P>0), None} variant of spec
// §3, used by the functional eps-NTU layer and by Stream.
type HeatFlow struct {
	dir flowDir
	mag constraint.Constrained[units.Power, constraint.StrictlyPositive[units.Power]]
}

// NoHeatFlow is the None variant.
func NoHeatFlow() HeatFlow { return HeatFlow{dir: flowNone} }

// Incoming builds a HeatFlow entering the stream.
func Incoming(magnitude constraint.Constrained[units.Power, constraint.StrictlyPositive[units.Power]]) HeatFlow {
	return HeatFlow{dir: flowIn, mag: magnitude}
}

// Outgoing builds a HeatFlow leaving the stream.
func Outgoing(magnitude constraint.Constrained[units.Power, constraint.StrictlyPositive[units.Power]]) HeatFlow {
	return HeatFlow{dir: flowOut, mag: magnitude}
}

// FromSigned maps a signed power to a HeatFlow: positive is incoming,
// negative is outgoing, zero is None, NaN is an error.
func FromSigned(signed units.Power) (HeatFlow, error) {
	if math.IsNaN(float64(signed)) {
		return HeatFlow{}, &constraint.Error{Kind: constraint.NotANumber, Value: float64(signed)}
	}
	switch {
	case signed > 0:
		mag, err := constraint.New[units.Power, constraint.StrictlyPositive[units.Power]](signed)
		if err != nil {
			return HeatFlow{}, err
		}
		return Incoming(mag), nil
	case signed < 0:
		mag, err := constraint.New[units.Power, constraint.StrictlyPositive[units.Power]](-signed)
		if err != nil {
			return HeatFlow{}, err
		}
		return Outgoing(mag), nil
	default:
		return NoHeatFlow(), nil
	}
}

// IsNone reports whether this is the no-flow variant.
func (f HeatFlow) IsNone() bool { return f.dir == flowNone }

// IsIncoming reports whether heat enters the stream.
func (f HeatFlow) IsIncoming() bool { return f.dir == flowIn }

// Signed returns the signed power, positive meaning incoming.
func (f HeatFlow) Signed() units.Power {
	switch f.dir {
	case flowIn:
		return f.mag.Value()
	case flowOut:
		return -f.mag.Value()
	default:
		return 0
	}
}

// Magnitude returns the unsigned power, zero for the None variant.
func (f HeatFlow) Magnitude() units.Power {
	if f.dir == flowNone {
		return 0
	}
	return f.mag.Value()
}
