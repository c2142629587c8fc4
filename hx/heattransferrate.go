// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hx implements the stream/inlet algebra and the functional
// (constant-property) effectiveness-NTU analyzer of spec §4.5-§4.6,
// grounded on mdl/porous and mdl/retention's small-struct-with-
// constructors style.
package hx

import (
	"math"

	"github.com/cpmech/gofem-hx/constraint"
	"github.com/cpmech/gofem-hx/units"
)

// direction names the two possible overall flow directions, plus the
// no-heat-transfer case (spec §3: "HeatTransferRate").
type direction int

const (
	dirNone direction = iota
	dirTopToBottom
	dirBottomToTop
)

// HeatTransferRate is the tagged {TopToBottom(P>0), BottomToTop(P>0),
// None} variant of spec §3.
type HeatTransferRate struct {
	dir direction
	mag constraint.Constrained[units.Power, constraint.StrictlyPositive[units.Power]]
}

// NoHeatTransfer is the None variant.
func NoHeatTransfer() HeatTransferRate {
	return HeatTransferRate{dir: dirNone}
}

// TopToBottom builds a HeatTransferRate flowing from top to bottom
// with the given strictly-positive magnitude.
func TopToBottom(magnitude constraint.Constrained[units.Power, constraint.StrictlyPositive[units.Power]]) HeatTransferRate {
	return HeatTransferRate{dir: dirTopToBottom, mag: magnitude}
}

// BottomToTop builds a HeatTransferRate flowing from bottom to top
// with the given strictly-positive magnitude.
func BottomToTop(magnitude constraint.Constrained[units.Power, constraint.StrictlyPositive[units.Power]]) HeatTransferRate {
	return HeatTransferRate{dir: dirBottomToTop, mag: magnitude}
}

// FromSignedTopToBottom maps a signed power to a HeatTransferRate:
// positive is TopToBottom, negative is BottomToTop, zero is None, NaN
// is an error.
func FromSignedTopToBottom(signed units.Power) (HeatTransferRate, error) {
	if math.IsNaN(float64(signed)) {
		return HeatTransferRate{}, &constraint.Error{Kind: constraint.NotANumber, Value: float64(signed)}
	}
	switch {
	case signed > 0:
		mag, err := constraint.New[units.Power, constraint.StrictlyPositive[units.Power]](signed)
		if err != nil {
			return HeatTransferRate{}, err
		}
		return TopToBottom(mag), nil
	case signed < 0:
		mag, err := constraint.New[units.Power, constraint.StrictlyPositive[units.Power]](-signed)
		if err != nil {
			return HeatTransferRate{}, err
		}
		return BottomToTop(mag), nil
	default:
		return NoHeatTransfer(), nil
	}
}

// IsNone reports whether this is the no-heat-transfer variant.
func (q HeatTransferRate) IsNone() bool { return q.dir == dirNone }

// SignedTopToBottom returns the signed power, positive meaning top to
// bottom.
func (q HeatTransferRate) SignedTopToBottom() units.Power {
	switch q.dir {
	case dirTopToBottom:
		return q.mag.Value()
	case dirBottomToTop:
		return -q.mag.Value()
	default:
		return 0
	}
}

// Magnitude returns the unsigned power, zero for the None variant.
func (q HeatTransferRate) Magnitude() units.Power {
	if q.dir == dirNone {
		return 0
	}
	return q.mag.Value()
}

// IsTopToBottom reports whether heat flows from the top stream to the
// bottom stream.
func (q HeatTransferRate) IsTopToBottom() bool { return q.dir == dirTopToBottom }

// IsBottomToTop reports whether heat flows from the bottom stream to
// the top stream.
func (q HeatTransferRate) IsBottomToTop() bool { return q.dir == dirBottomToTop }
