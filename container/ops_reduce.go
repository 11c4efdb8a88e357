// SPDX-License-Identifier: MIT

package container

import (
	"github.com/katalvlaran/genla/element"
	"github.com/katalvlaran/genla/internal/unsafeview"
)

// Dot returns Σ a[i]*b[i] evaluated through the bindings of a:
// the accumulator starts at the zero value of T and, for each index in
// ascending order, acc = Add(Mul(a[i], b[i]), acc).
//
// Numeric behavior (wraparound, rounding) is entirely the bindings'.
// Errors: ErrNilContainer, ErrInvalidContainer, ErrIncompatible,
// ErrMissingBinding (Add or Mul), ErrDivideByZero, ErrCallbackPanic.
//
// Complexity: Time O(n), Space O(1).
func Dot[T any](a, b *Store[T]) (T, error) {
	var acc T
	if err := validateReduction(a, b); err != nil {
		return acc, containerErrorf("Dot", err)
	}
	add, mul := a.ops.Add, a.ops.Mul
	left, right := a.data, b.data

	err := runBindings(a.count, func(i int) {
		scratch := mul.Apply(left[i], right[i])
		acc = add.Apply(scratch, acc)
	})
	if err != nil {
		var zero T
		return zero, containerErrorf("Dot", err)
	}
	return acc, nil
}

// MagnitudeSquared returns Dot(s, s). There is no generic square root, so
// this is the magnitude the engine can compute on its own.
func MagnitudeSquared[T any](s *Store[T]) (T, error) {
	var zero T
	if err := s.Validate(); err != nil {
		return zero, containerErrorf("MagnitudeSquared", err)
	}
	if !s.ops.Has(element.OpAdd, element.OpMul) {
		return zero, containerErrorf("MagnitudeSquared", ErrMissingBinding)
	}
	return Dot(s, s)
}

// Normalize writes src / |src| into result, where |src| = sqrt(Dot(src, src))
// and sqrt is supplied by the caller.
// Implementation:
//   - Stage 1: check operands, the sqrt binding and src's Div binding.
//   - Stage 2: squared magnitude; an all-zero bit pattern is a divide by zero.
//   - Stage 3: take the root and delegate to ApplyScalar(result, src, root, OpDiv).
//
// Errors:
//   - ErrNilContainer, ErrMissingBinding, ErrInvalidContainer, ErrDivideByZero,
//     plus everything Dot and ApplyScalar report. result is unchanged on error.
func Normalize[T any](result, src *Store[T], sqrt element.Sqrt[T]) error {
	const tag = "Normalize"
	if result == nil || src == nil {
		return containerErrorf(tag, ErrNilContainer)
	}
	if sqrt == nil || src.ops.Div == nil {
		return containerErrorf(tag, ErrMissingBinding)
	}
	if err := src.Validate(); err != nil {
		return containerErrorf(tag, err)
	}

	magnitude, err := Dot(src, src)
	if err != nil {
		return containerErrorf(tag, err)
	}
	if unsafeview.IsZero(magnitude) {
		return containerErrorf(tag, ErrDivideByZero)
	}
	if err = runBindings(1, func(int) { magnitude = sqrt(magnitude) }); err != nil {
		return containerErrorf(tag, err)
	}

	if err = ApplyScalar(result, src, magnitude, element.OpDiv); err != nil {
		return containerErrorf(tag, err)
	}
	return nil
}
