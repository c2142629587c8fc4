// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

// checkSecondLaw implements spec §4.11's direction check: if QDot is
// None the check passes; otherwise the top-is-hot boolean is computed
// from inlet temperatures, and a mismatch between the heat direction
// and the hot-inlet classification is a violation. A negative
// min_delta_t is also a violation, independent of direction.
func checkSecondLaw[TopFluid, BottomFluid any](resolved Resolved[TopFluid, BottomFluid], minDeltaT MinDeltaT) error {
	if resolved.QDot.IsNone() {
		return nil
	}

	topIsHot := resolved.Top.Inlet.Temperature >= resolved.Bottom.Inlet.Temperature
	directionMismatch := (topIsHot && resolved.QDot.IsBottomToTop()) || (!topIsHot && resolved.QDot.IsTopToBottom())
	negativeDeltaT := minDeltaT.Value < 0

	if directionMismatch || negativeDeltaT {
		topOut := resolved.Top.Outlet.Temperature
		bottomOut := resolved.Bottom.Outlet.Temperature
		return &SecondLawViolation{
			TopOutletTemp:    &topOut,
			BottomOutletTemp: &bottomOut,
			QDot:             resolved.QDot,
			MinDeltaT:        minDeltaT,
			HasNode:          true,
		}
	}
	return nil
}
