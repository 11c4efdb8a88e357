// SPDX-License-Identifier: MIT
// Package container: sentinel error set.
// Every operation returns these sentinels wrapped with call-site context;
// callers and tests match them with errors.Is.

package container

import "errors"

// Every message is prefixed with "container: ". Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the detection site, never replace.

var (
	// ErrNilContainer is returned when a nil container (receiver or operand) is used.
	ErrNilContainer = errors.New("container: nil container")

	// ErrBadShape is returned when an element count, width, height or element size is not positive.
	ErrBadShape = errors.New("container: invalid shape")

	// ErrOverflow is returned when element count or buffer size does not fit in an int.
	ErrOverflow = errors.New("container: size overflow")

	// ErrUnsupportedType is returned when the element type holds Go pointers.
	ErrUnsupportedType = errors.New("container: element type must be pointer-free")

	// ErrNullType is returned when the resolved type tag is element.TypeNull.
	ErrNullType = errors.New("container: null type tag")

	// ErrAllocation is returned when the allocator fails or returns an unusable buffer.
	ErrAllocation = errors.New("container: allocation failed")

	// ErrInvalidContainer is returned when a container fails its integrity check,
	// e.g. after Destroy.
	ErrInvalidContainer = errors.New("container: integrity check failed")

	// ErrOutOfRange indicates that an index is outside the container.
	ErrOutOfRange = errors.New("container: index out of range")

	// ErrIncompatible indicates operands with different type tags, lengths or bindings.
	ErrIncompatible = errors.New("container: incompatible operands")

	// ErrDimensionMismatch indicates a result container whose shape differs from the operands'.
	ErrDimensionMismatch = errors.New("container: dimension mismatch")

	// ErrMissingBinding indicates that a required arithmetic or square-root binding is nil.
	ErrMissingBinding = errors.New("container: missing binding")

	// ErrDivideByZero is returned when normalizing a zero vector or when an
	// integer binding divides by zero.
	ErrDivideByZero = errors.New("container: divide by zero")

	// ErrCallbackPanic is returned when a binding panicked for any other reason.
	ErrCallbackPanic = errors.New("container: binding panicked")
)
