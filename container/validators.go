// SPDX-License-Identifier: MIT
// Package: container
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep engine kernels minimal by delegating nil/integrity/compatibility
//    checks here.
//
// Note:
//  - Composite validators follow a fixed sequence:
//    NotNil → Validate (each operand) → Compatible → Binding → Result shape.

package container

import (
	"fmt"

	"github.com/katalvlaran/genla/element"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Compatible reports whether a and b may be combined: equal type tags, equal
// element counts, and identical bindings in all four arithmetic slots.
//
// The outcome is three-way: (true, nil) compatible, (false, nil) well-formed
// but mismatched, (false, ErrNilContainer) malformed input. Integrity is not
// checked here; operations validate separately.
//
// Complexity: O(1).
func Compatible[T any](a, b *Store[T]) (bool, error) {
	if a == nil || b == nil {
		return false, containerErrorf("Compatible", ErrNilContainer)
	}
	return a.tag == b.tag && a.count == b.count && a.ops.Same(b.ops), nil
}

// validateAll runs Validate on every store in order and returns the first failure.
func validateAll[T any](stores ...*Store[T]) error {
	for _, s := range stores {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBinary is the precondition of the element-wise engine:
// non-nil and valid operands, compatible a and b, the selected binding
// present on a, and a result of the same length as a.
func ValidateBinary[T any](result, a, b *Store[T], kind element.OpKind) error {
	if result == nil || a == nil || b == nil {
		return validatorErrorf("ValidateBinary", ErrNilContainer)
	}
	if err := validateAll(a, b, result); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if ok, _ := Compatible(a, b); !ok {
		return validatorErrorf("ValidateBinary", ErrIncompatible)
	}
	if a.ops.Lookup(kind) == nil {
		return validatorErrorf("ValidateBinary", fmt.Errorf("%w: %s", ErrMissingBinding, kind))
	}
	if result.count != a.count {
		return validatorErrorf("ValidateBinary", ErrDimensionMismatch)
	}
	return nil
}

// ValidateScalar is the precondition of scalar operations: non-nil and
// valid source and result, the selected binding present on src, and a
// result of the same length as src.
func ValidateScalar[T any](result, src *Store[T], kind element.OpKind) error {
	if result == nil || src == nil {
		return validatorErrorf("ValidateScalar", ErrNilContainer)
	}
	if err := validateAll(src, result); err != nil {
		return validatorErrorf("ValidateScalar", err)
	}
	if src.ops.Lookup(kind) == nil {
		return validatorErrorf("ValidateScalar", fmt.Errorf("%w: %s", ErrMissingBinding, kind))
	}
	if result.count != src.count {
		return validatorErrorf("ValidateScalar", ErrDimensionMismatch)
	}
	return nil
}

// validateReduction checks operands of Dot: non-nil, valid, compatible,
// with Add and Mul bound.
func validateReduction[T any](a, b *Store[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("validateReduction", ErrNilContainer)
	}
	if err := validateAll(a, b); err != nil {
		return validatorErrorf("validateReduction", err)
	}
	if ok, _ := Compatible(a, b); !ok {
		return validatorErrorf("validateReduction", ErrIncompatible)
	}
	if !a.ops.Has(element.OpAdd, element.OpMul) {
		return validatorErrorf("validateReduction", fmt.Errorf("%w: add and mul required", ErrMissingBinding))
	}
	return nil
}
