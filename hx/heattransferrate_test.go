// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-hx/units"
)

func TestFromSignedTopToBottom(tst *testing.T) {
	chk.PrintTitle("FromSignedTopToBottom")

	q, err := FromSignedTopToBottom(units.Power(100))
	if err != nil || !q.IsTopToBottom() || q.Magnitude() != 100 {
		tst.Errorf("expected TopToBottom(100), got %+v, err=%v", q, err)
	}

	q, err = FromSignedTopToBottom(units.Power(-50))
	if err != nil || !q.IsBottomToTop() || q.Magnitude() != 50 {
		tst.Errorf("expected BottomToTop(50), got %+v, err=%v", q, err)
	}

	q, err = FromSignedTopToBottom(units.Power(0))
	if err != nil || !q.IsNone() {
		tst.Errorf("expected None, got %+v, err=%v", q, err)
	}

	_, err = FromSignedTopToBottom(units.Power(math.NaN()))
	if err == nil {
		tst.Errorf("expected error for NaN")
	}
}

func TestHeatTransferRateSignedRoundTrip(tst *testing.T) {
	chk.PrintTitle("HeatTransferRate signed round-trip")

	for _, v := range []float64{100, -50, 0} {
		q, err := FromSignedTopToBottom(units.Power(v))
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		if float64(q.SignedTopToBottom()) != v {
			tst.Errorf("expected signed=%v, got %v", v, q.SignedTopToBottom())
		}
	}
}
