// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/cpmech/gofem-hx/hx"
	"github.com/cpmech/gofem-hx/thermo"
	"github.com/cpmech/gofem-hx/units"
)

// Results is the solver's output: both streams' full node arrays, the
// signed heat-transfer rate, the achieved conductance, and the minimum
// hot-to-cold temperature difference observed (spec §3).
type Results[TopFluid, BottomFluid any] struct {
	Top       []thermo.State[TopFluid]
	Bottom    []thermo.State[BottomFluid]
	QDot      hx.HeatTransferRate
	Ua        units.ThermalConductance
	MinDeltaT MinDeltaT
}
