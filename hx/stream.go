// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"github.com/cpmech/gofem-hx/units"
)

// StreamInlet is a stream reduced to what the functional analyzer
// needs before it knows the outlet: its capacitance rate and inlet
// temperature (spec §4.5).
type StreamInlet struct {
	CapacitanceRate CapacitanceRate
	Temperature     units.AbsoluteTemperature
}

// Stream is a fully resolved stream: capacitance rate, both endpoint
// temperatures, and the heat flow that produced the outlet (spec §4.5).
type Stream struct {
	CapacitanceRate   CapacitanceRate
	InletTemperature  units.AbsoluteTemperature
	OutletTemperature units.AbsoluteTemperature
	HeatFlow          HeatFlow
}

// Inlet projects a Stream to a StreamInlet by dropping the outlet.
func (s Stream) Inlet() StreamInlet {
	return StreamInlet{CapacitanceRate: s.CapacitanceRate, Temperature: s.InletTemperature}
}

// NewStreamFromHeatFlow builds T_out = T_in +/- |Q|/C, sign from the
// HeatFlow variant (spec §4.5).
func NewStreamFromHeatFlow(inlet StreamInlet, flow HeatFlow) Stream {
	dt := units.TemperatureInterval(float64(flow.Magnitude()) / float64(inlet.CapacitanceRate.Value()))
	var outlet units.AbsoluteTemperature
	if flow.IsIncoming() {
		outlet = inlet.Temperature.Plus(dt)
	} else {
		outlet = inlet.Temperature.Plus(-dt)
	}
	return Stream{
		CapacitanceRate:   inlet.CapacitanceRate,
		InletTemperature:  inlet.Temperature,
		OutletTemperature: outlet,
		HeatFlow:          flow,
	}
}

// NewStreamFromOutletTemperature computes |Q| = C*|T_out - T_in| and
// the direction from the sign of T_out - T_in (spec §4.5).
func NewStreamFromOutletTemperature(inlet StreamInlet, outlet units.AbsoluteTemperature) (Stream, error) {
	dt := float64(outlet.Minus(inlet.Temperature))
	signed := units.Power(float64(inlet.CapacitanceRate.Value()) * dt)
	flow, err := FromSigned(signed)
	if err != nil {
		return Stream{}, err
	}
	return Stream{
		CapacitanceRate:   inlet.CapacitanceRate,
		InletTemperature:  inlet.Temperature,
		OutletTemperature: outlet,
		HeatFlow:          flow,
	}, nil
}

