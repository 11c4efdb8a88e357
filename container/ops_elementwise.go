// SPDX-License-Identifier: MIT
// Package: container
//
// Purpose:
//   - Provide the element-wise combinator (Apply) and its scalar sibling
//     (ApplyScalar) shared by every vector and matrix operation.
//
// Design:
//   - Bindings are looked up once per call, outside the loop.
//   - Output is staged in scratch memory drawn from the result's allocator and
//     committed with a single copy after all elements succeeded, so result,
//     a and b may alias and a failure never leaves a half-written result.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1, no parallelism.
//   - One staging allocation per call; O(n) binding calls plus one O(n) copy.

package container

import (
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/genla/element"
	"github.com/katalvlaran/genla/internal/unsafeview"
)

// acquireStaging obtains scratch memory shaped like s from s's allocator.
// The caller must hand the returned buffer to releaseStaging.
func acquireStaging[T any](s *Store[T]) ([]byte, []T, error) {
	buf, err := s.alloc.Allocate(s.bufSize)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: staging: %w", ErrAllocation, err)
	}
	if len(buf) != s.bufSize || !unsafeview.Aligned[T](buf) {
		releaseStaging(s, buf)
		return nil, nil, fmt.Errorf("%w: staging: unusable buffer", ErrAllocation)
	}
	return buf, unsafeview.Slice[T](buf, s.count), nil
}

// releaseStaging returns scratch memory to s's allocator. A failing Free is
// logged; the operation outcome does not depend on it.
func releaseStaging[T any](s *Store[T], buf []byte) {
	if err := s.alloc.Free(buf); err != nil {
		Logger().Warn("staging buffer release failed", zap.Int("bytes", len(buf)), zap.Error(err))
	}
}

// recoverBinding converts a panic raised inside a binding into an error.
// It must be deferred directly.
func recoverBinding(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if re, ok := r.(runtime.Error); ok && strings.Contains(re.Error(), "divide by zero") {
		*err = ErrDivideByZero
		return
	}
	*err = fmt.Errorf("%w: %v", ErrCallbackPanic, r)
}

// runBindings calls body for i = 0..n-1 and reports a panicking binding as an error.
func runBindings(n int, body func(i int)) (err error) {
	defer recoverBinding(&err)
	for i := 0; i < n; i++ {
		body(i)
	}
	return nil
}

// Apply computes result[i] = op(a[i], b[i]) for every index, where op is the
// binding selected by kind on a.
// Implementation:
//   - Stage 1: ValidateBinary (nil → integrity → compatibility → binding → result length).
//   - Stage 2: acquire staging from result's allocator; released on every exit path.
//   - Stage 3: evaluate in ascending index order into staging; commit with one copy.
//
// Errors:
//   - ErrNilContainer, ErrInvalidContainer, ErrIncompatible, ErrMissingBinding,
//     ErrDimensionMismatch, ErrAllocation, ErrDivideByZero, ErrCallbackPanic.
//     result is unchanged whenever an error is returned.
//
// Complexity:
//   - Time O(n), Space O(n) staging.
func Apply[T any](result, a, b *Store[T], kind element.OpKind) error {
	tag := "Apply(" + kind.String() + ")"
	if err := ValidateBinary(result, a, b, kind); err != nil {
		return containerErrorf(tag, err)
	}
	op := a.ops.Lookup(kind)

	staging, out, err := acquireStaging(result)
	if err != nil {
		return containerErrorf(tag, err)
	}
	defer releaseStaging(result, staging)

	left, right := a.data, b.data
	err = runBindings(a.count, func(i int) {
		out[i] = op.Apply(left[i], right[i])
	})
	if err != nil {
		return containerErrorf(tag, err)
	}

	copy(result.data, out)
	return nil
}

// ApplyScalar computes result[i] = op(src[i], scalar) for every index, where
// op is the binding selected by kind on src (OpMul for scaling, OpDiv for
// inverse scaling). Same staging and error contract as Apply.
func ApplyScalar[T any](result, src *Store[T], scalar T, kind element.OpKind) error {
	tag := "ApplyScalar(" + kind.String() + ")"
	if err := ValidateScalar(result, src, kind); err != nil {
		return containerErrorf(tag, err)
	}
	op := src.ops.Lookup(kind)

	staging, out, err := acquireStaging(result)
	if err != nil {
		return containerErrorf(tag, err)
	}
	defer releaseStaging(result, staging)

	in := src.data
	err = runBindings(src.count, func(i int) {
		out[i] = op.Apply(in[i], scalar)
	})
	if err != nil {
		return containerErrorf(tag, err)
	}

	copy(result.data, out)
	return nil
}
