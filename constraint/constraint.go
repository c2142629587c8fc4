// Copyright 2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package constraint implements a generic numeric-predicate wrapper:
// a value paired with a compile-time marker tag naming the predicate
// it satisfies. Construction validates the value and returns a
// structured ConstraintError on failure; the wrapper is transparent
// otherwise.
package constraint

import (
	"fmt"
	"math"
)

// Numeric is the set of representations a Constrained value may wrap.
// Every physical-quantity type in package units is a ~float64, so this
// is the only constraint the generic layer needs.
type Numeric interface {
	~float64
}

// ErrorKind names the structured reasons construction may fail.
type ErrorKind int

const (
	Negative ErrorKind = iota
	Positive
	Zero
	NotANumber
	BelowMinimum
	AboveMaximum
)

func (k ErrorKind) String() string {
	switch k {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	case Zero:
		return "zero"
	case NotANumber:
		return "not a number"
	case BelowMinimum:
		return "below minimum"
	case AboveMaximum:
		return "above maximum"
	default:
		return "unknown constraint error"
	}
}

// Error reports why a value failed to satisfy a constraint.
type Error struct {
	Kind  ErrorKind
	Value float64
}

func (e *Error) Error() string {
	return fmt.Sprintf("constraint violated (%s): value=%v", e.Kind, e.Value)
}

func newError(kind ErrorKind, v float64) error {
	return &Error{Kind: kind, Value: v}
}

// Checker validates a value of type T, returning a structured Error on
// failure. Concrete checkers (NonNegative, StrictlyPositive, ...) are
// zero-sized marker structs so that Constrained[T, C] can instantiate
// "var c C" to obtain a witness without ever storing it.
type Checker[T Numeric] interface {
	Check(v T) error
}

// additiveChecker is implemented by the markers closed under addition:
// NonNegative, NonPositive, StrictlyPositive, StrictlyNegative.
type additiveChecker[T Numeric] interface {
	Checker[T]
	additionClosed()
}

// Constrained pairs a value with the marker tag C naming the predicate
// it has been validated against.
type Constrained[T Numeric, C Checker[T]] struct {
	value T
}

// New validates v against C and returns the wrapped value.
func New[T Numeric, C Checker[T]](v T) (Constrained[T, C], error) {
	var c C
	if err := c.Check(v); err != nil {
		return Constrained[T, C]{}, err
	}
	return Constrained[T, C]{value: v}, nil
}

// MustNew is New, panicking on failure. Reserved for call sites where
// the value is an internal literal known to satisfy C (e.g. a zero
// constant), never for values derived from external input.
func MustNew[T Numeric, C Checker[T]](v T) Constrained[T, C] {
	c, err := New[T, C](v)
	if err != nil {
		panic(fmt.Sprintf("constraint.MustNew: %v", err))
	}
	return c
}

// Value returns the wrapped value.
func (c Constrained[T, C]) Value() T {
	return c.value
}

// Add sums two values sharing a marker closed under addition, checking
// that the sum still satisfies the marker. This is the Go analogue of
// a debug assertion guarding closure of the constraint under addition:
// since Go has no separate release-mode build, the check always runs,
// but it is a single comparison and costs nothing of note.
func Add[T Numeric, C additiveChecker[T]](a, b Constrained[T, C]) Constrained[T, C] {
	sum := a.value + b.value
	var c C
	if err := c.Check(sum); err != nil {
		panic(fmt.Sprintf("constraint.Add: closure invariant violated: %v", err))
	}
	return Constrained[T, C]{value: sum}
}

func isNaN[T Numeric](v T) bool {
	return math.IsNaN(float64(v))
}

// NonNegative accepts v >= 0.
type NonNegative[T Numeric] struct{}

func (NonNegative[T]) Check(v T) error {
	switch {
	case isNaN(v):
		return newError(NotANumber, float64(v))
	case v < 0:
		return newError(Negative, float64(v))
	default:
		return nil
	}
}
func (NonNegative[T]) additionClosed() {}

// Zero returns the additive identity, always valid under NonNegative.
func (NonNegative[T]) Zero() Constrained[T, NonNegative[T]] {
	return Constrained[T, NonNegative[T]]{value: 0}
}

// NonPositive accepts v <= 0.
type NonPositive[T Numeric] struct{}

func (NonPositive[T]) Check(v T) error {
	switch {
	case isNaN(v):
		return newError(NotANumber, float64(v))
	case v > 0:
		return newError(Positive, float64(v))
	default:
		return nil
	}
}
func (NonPositive[T]) additionClosed() {}

// NonZero accepts any finite value other than zero.
type NonZero[T Numeric] struct{}

func (NonZero[T]) Check(v T) error {
	switch {
	case isNaN(v):
		return newError(NotANumber, float64(v))
	case v == 0:
		return newError(Zero, float64(v))
	default:
		return nil
	}
}

// StrictlyPositive accepts v > 0.
type StrictlyPositive[T Numeric] struct{}

func (StrictlyPositive[T]) Check(v T) error {
	switch {
	case isNaN(v):
		return newError(NotANumber, float64(v))
	case v == 0:
		return newError(Zero, float64(v))
	case v < 0:
		return newError(Negative, float64(v))
	default:
		return nil
	}
}
func (StrictlyPositive[T]) additionClosed() {}

// StrictlyNegative accepts v < 0.
type StrictlyNegative[T Numeric] struct{}

func (StrictlyNegative[T]) Check(v T) error {
	switch {
	case isNaN(v):
		return newError(NotANumber, float64(v))
	case v == 0:
		return newError(Zero, float64(v))
	case v > 0:
		return newError(Positive, float64(v))
	default:
		return nil
	}
}
func (StrictlyNegative[T]) additionClosed() {}

// UnitInterval accepts v in [0, 1].
type UnitInterval[T Numeric] struct{}

func (UnitInterval[T]) Check(v T) error {
	switch {
	case isNaN(v):
		return newError(NotANumber, float64(v))
	case v < 0:
		return newError(BelowMinimum, float64(v))
	case v > 1:
		return newError(AboveMaximum, float64(v))
	default:
		return nil
	}
}

// UnitIntervalOpen accepts v in (0, 1).
type UnitIntervalOpen[T Numeric] struct{}

func (UnitIntervalOpen[T]) Check(v T) error {
	switch {
	case isNaN(v):
		return newError(NotANumber, float64(v))
	case v <= 0:
		return newError(BelowMinimum, float64(v))
	case v >= 1:
		return newError(AboveMaximum, float64(v))
	default:
		return nil
	}
}

// UnitIntervalLowerOpen accepts v in (0, 1].
type UnitIntervalLowerOpen[T Numeric] struct{}

func (UnitIntervalLowerOpen[T]) Check(v T) error {
	switch {
	case isNaN(v):
		return newError(NotANumber, float64(v))
	case v <= 0:
		return newError(BelowMinimum, float64(v))
	case v > 1:
		return newError(AboveMaximum, float64(v))
	default:
		return nil
	}
}

// UnitIntervalUpperOpen accepts v in [0, 1).
type UnitIntervalUpperOpen[T Numeric] struct{}

func (UnitIntervalUpperOpen[T]) Check(v T) error {
	switch {
	case isNaN(v):
		return newError(NotANumber, float64(v))
	case v < 0:
		return newError(BelowMinimum, float64(v))
	case v >= 1:
		return newError(AboveMaximum, float64(v))
	default:
		return nil
	}
}
