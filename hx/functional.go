// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"fmt"

	"github.com/cpmech/gofem-hx/constraint"
	"github.com/cpmech/gofem-hx/hx/arrangement"
	"github.com/cpmech/gofem-hx/units"
)

// KnownConductanceResult is the forward functional-analyzer output
// (spec §4.6, "known UA + two inlets -> streams + effectiveness").
type KnownConductanceResult struct {
	Streams       [2]Stream
	Effectiveness Effectiveness
}

// calculateMaxHeatFlow determines, for each stream, whether it is the
// one gaining or losing heat at maximum exchange, based on the sign of
// Cmin*(inlet delta). Grounded on original_source's
// calculate_max_heat_flow helper (spec §4.6).
func calculateMaxHeatFlow(inlets [2]StreamInlet, cMin CapacitanceRate) (qMaxMagnitude units.Power, hot, cold int) {
	if inlets[0].Temperature >= inlets[1].Temperature {
		hot, cold = 0, 1
	} else {
		hot, cold = 1, 0
	}
	dt := inlets[hot].Temperature.Minus(inlets[cold].Temperature)
	qMaxMagnitude = units.Power(float64(cMin.Value()) * float64(dt))
	return
}

// KnownConductanceAndInlets implements spec §4.6's forward operation:
// Q_max = C_min*(T_hot_in - T_cold_in); NTU = UA/C_min; eps from the
// arrangement; distribute eps*Q_max onto each stream with direction
// (the hotter inlet loses heat).
func KnownConductanceAndInlets(a arrangement.Arrangement, ua units.ThermalConductance, inlets [2]StreamInlet) (KnownConductanceResult, error) {
	rates := [2]CapacitanceRate{inlets[0].CapacitanceRate, inlets[1].CapacitanceRate}
	cMin := CMin(rates)
	cr, err := FromCapacitanceRates(rates)
	if err != nil {
		return KnownConductanceResult{}, err
	}

	qMaxMag, hot, cold := calculateMaxHeatFlow(inlets, cMin)

	ntu, err := FromConductanceAndCapacitanceRate(ua, cMin)
	if err != nil {
		return KnownConductanceResult{}, err
	}
	effValue := a.Effectiveness(ntu.Value(), cr.Value().Value())
	eff, err := NewEffectiveness(effValue)
	if err != nil {
		return KnownConductanceResult{}, err
	}

	qActual := units.Power(eff.Value() * float64(qMaxMag))

	var flows [2]HeatFlow
	if qActual == 0 {
		flows[hot] = NoHeatFlow()
		flows[cold] = NoHeatFlow()
	} else {
		mag, err := constraint.New[units.Power, constraint.StrictlyPositive[units.Power]](qActual)
		if err != nil {
			return KnownConductanceResult{}, err
		}
		flows[hot] = Outgoing(mag)
		flows[cold] = Incoming(mag)
	}

	var streams [2]Stream
	streams[0] = NewStreamFromHeatFlow(inlets[0], flows[0])
	streams[1] = NewStreamFromHeatFlow(inlets[1], flows[1])

	return KnownConductanceResult{Streams: streams, Effectiveness: eff}, nil
}

// KnownConditionsResult is the inverse functional-analyzer output
// (spec §4.6, "known conditions + known inlet of the other -> UA + NTU").
type KnownConditionsResult struct {
	Streams [2]Stream
	Ua      units.ThermalConductance
	Ntu     Ntu
}

// KnownConditionsAndInlets implements spec §4.6's inverse operation.
// known is the fully resolved stream at index knownIdx; otherInlet is
// the other stream's inlet. Q_max is computed from the two inlet
// temperatures; eps = |Q_actual|/Q_max; NTU is inverted from the
// arrangement's relation; UA = NTU * C_min.
//
// When Q_max = 0 (equal inlet temperatures), the actual heat flow must
// also be zero, else this fails with AboveMaximum; when both are zero,
// UA = 0 and NTU = 0.
func KnownConditionsAndInlets(a arrangement.Invertible, known Stream, knownIdx int, otherInlet StreamInlet) (KnownConditionsResult, error) {
	otherIdx := 1 - knownIdx
	var inlets [2]StreamInlet
	inlets[knownIdx] = known.Inlet()
	inlets[otherIdx] = otherInlet

	rates := [2]CapacitanceRate{inlets[0].CapacitanceRate, inlets[1].CapacitanceRate}
	cMin := CMin(rates)
	cr, err := FromCapacitanceRates(rates)
	if err != nil {
		return KnownConditionsResult{}, err
	}

	qMaxMag, _, _ := calculateMaxHeatFlow(inlets, cMin)
	qActualMag := float64(known.HeatFlow.Magnitude())

	if float64(qMaxMag) == 0 {
		if qActualMag != 0 {
			return KnownConditionsResult{}, fmt.Errorf("hx: known-conditions analyzer: actual heat flow is nonzero but maximum heat flow is zero (equal inlet temperatures): %w",
				&constraint.Error{Kind: constraint.AboveMaximum, Value: qActualMag})
		}
		var streams [2]Stream
		streams[knownIdx] = known
		streams[otherIdx] = NewStreamFromHeatFlow(otherInlet, NoHeatFlow())
		return KnownConditionsResult{Streams: streams, Ua: 0, Ntu: Ntu{}}, nil
	}

	effValue := qActualMag / float64(qMaxMag)
	eff, err := NewEffectiveness(effValue)
	if err != nil {
		return KnownConditionsResult{}, err
	}

	ntuValue, err := a.Ntu(eff.Value(), cr.Value().Value())
	if err != nil {
		return KnownConditionsResult{}, err
	}
	ntu, err := NewNtu(ntuValue)
	if err != nil {
		return KnownConditionsResult{}, err
	}

	ua := units.ThermalConductance(ntu.Value() * float64(cMin.Value()))

	otherFlow, err := oppositeFlow(known.HeatFlow)
	if err != nil {
		return KnownConditionsResult{}, err
	}

	var streams [2]Stream
	streams[knownIdx] = known
	streams[otherIdx] = NewStreamFromHeatFlow(otherInlet, otherFlow)

	return KnownConditionsResult{Streams: streams, Ua: ua, Ntu: ntu}, nil
}

// oppositeFlow mirrors a stream's heat flow onto its counterpart:
// what leaves one stream enters the other.
func oppositeFlow(f HeatFlow) (HeatFlow, error) {
	if f.IsNone() {
		return NoHeatFlow(), nil
	}
	return FromSigned(-f.Signed())
}
