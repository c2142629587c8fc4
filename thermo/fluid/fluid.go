// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid holds bare fluid-tag marker types, mirrored from
// original_source's support/thermo/fluid.rs re-exports (spec §12):
// a polymorphic tag that carries no state-defining data of its own.
package fluid

// Air is the dry-air fluid marker.
type Air struct{}

// Water is the liquid-water fluid marker.
type Water struct{}

// CarbonDioxide is the CO2 fluid marker.
type CarbonDioxide struct{}
