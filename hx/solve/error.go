// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"fmt"

	"github.com/cpmech/gofem-hx/hx"
	"github.com/cpmech/gofem-hx/units"
)

// MinDeltaT is the minimum hot-to-cold temperature difference observed
// across all nodes, and the node index at which it occurs (spec §3,
// §4.9).
type MinDeltaT struct {
	Value units.TemperatureInterval
	Node  int
}

// SecondLawViolation reports a violation of the second law of
// thermodynamics: either a direction mismatch between the requested
// heat flow and the hotter-inlet stream, or a temperature crossover
// somewhere along the discretized exchanger (spec §4.11, §6.5).
//
// TopOutletTemp and BottomOutletTemp are pointers: they are nil when
// the violation was detected before the outlet temperatures were
// reported (a NaN heat-transfer rate, or a segment-level violation).
type SecondLawViolation struct {
	TopOutletTemp    *units.AbsoluteTemperature
	BottomOutletTemp *units.AbsoluteTemperature
	QDot             hx.HeatTransferRate
	MinDeltaT        MinDeltaT
	HasNode          bool
}

func (e *SecondLawViolation) Error() string {
	if e.HasNode {
		return fmt.Sprintf("solve: second-law violation at node %d: min delta-T = %v K",
			e.MinDeltaT.Node, e.MinDeltaT.Value)
	}
	return fmt.Sprintf("solve: second-law violation: min delta-T = %v K", e.MinDeltaT.Value)
}

// ViolationNode returns the node index and whether one was recorded.
func (e *SecondLawViolation) ViolationNode() (int, bool) {
	if !e.HasNode {
		return 0, false
	}
	return e.MinDeltaT.Node, true
}

// ThermoModelFailed wraps a property-model failure with the short
// context string naming which capability call failed (spec §4.7 "Each
// thermo call failure surfaces as a ThermoModelFailed error carrying a
// short context string").
type ThermoModelFailed struct {
	Context string
	Source  error
}

func (e *ThermoModelFailed) Error() string {
	return fmt.Sprintf("solve: thermo model failed during %s: %v", e.Context, e.Source)
}

func (e *ThermoModelFailed) Unwrap() error { return e.Source }

func thermoFailed(context string, source error) error {
	return &ThermoModelFailed{Context: context, Source: source}
}

// segmentViolation builds a SecondLawViolation carrying a segment
// index, grounded on original_source's segment_violation_error helper
// (spec §4.9, §4.11).
func segmentViolation(qdot hx.HeatTransferRate, minDeltaT MinDeltaT) *SecondLawViolation {
	return &SecondLawViolation{QDot: qdot, MinDeltaT: minDeltaT, HasNode: true}
}
