// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/genla/container"
	"github.com/katalvlaran/genla/element"
)

// Compatible reports whether a and b may be combined: same type tag, same
// width and height, and identical arithmetic bindings. A nil operand is an
// error (container.ErrNilContainer); a mismatch is (false, nil).
func Compatible[T any](a, b *Matrix[T]) (bool, error) {
	ok, err := container.Compatible(a.store(), b.store())
	if err != nil {
		return false, matrixErrorf("Compatible", err)
	}
	return ok && a.width == b.width && a.height == b.height, nil
}

// sameShape reports whether x and y have equal width and height.
func sameShape[T any](x, y *Matrix[T]) bool {
	return x.width == y.width && x.height == y.height
}

// apply runs the element-wise engine after the shape checks that the flat
// store cannot see: a 2x3 and a 3x2 matrix hold the same element count.
func apply[T any](tag string, result, a, b *Matrix[T], kind element.OpKind) error {
	rs, as, bs := result.store(), a.store(), b.store()
	if err := container.ValidateBinary(rs, as, bs, kind); err != nil {
		return matrixErrorf(tag, err)
	}
	if !sameShape(a, b) {
		return matrixErrorf(tag, container.ErrIncompatible)
	}
	if !sameShape(result, a) {
		return matrixErrorf(tag, container.ErrDimensionMismatch)
	}
	if err := container.Apply(rs, as, bs, kind); err != nil {
		return matrixErrorf(tag, err)
	}
	return nil
}

// Add computes result = a + b element-wise with a's Add binding.
func Add[T any](result, a, b *Matrix[T]) error {
	return apply("Add", result, a, b, element.OpAdd)
}

// Subtract computes result = a - b element-wise with a's Sub binding.
func Subtract[T any](result, a, b *Matrix[T]) error {
	return apply("Subtract", result, a, b, element.OpSub)
}

// ElementwiseMultiply computes the Hadamard product of a and b with a's Mul binding.
func ElementwiseMultiply[T any](result, a, b *Matrix[T]) error {
	return apply("ElementwiseMultiply", result, a, b, element.OpMul)
}

// ElementwiseDivide computes result = a / b element-wise with a's Div binding.
func ElementwiseDivide[T any](result, a, b *Matrix[T]) error {
	return apply("ElementwiseDivide", result, a, b, element.OpDiv)
}

func applyScalar[T any](tag string, result, src *Matrix[T], k T, kind element.OpKind) error {
	rs, ss := result.store(), src.store()
	if err := container.ValidateScalar(rs, ss, kind); err != nil {
		return matrixErrorf(tag, err)
	}
	if !sameShape(result, src) {
		return matrixErrorf(tag, container.ErrDimensionMismatch)
	}
	if err := container.ApplyScalar(rs, ss, k, kind); err != nil {
		return matrixErrorf(tag, err)
	}
	return nil
}

// Scale computes result = m * k element-wise with m's Mul binding.
func Scale[T any](result, m *Matrix[T], k T) error {
	return applyScalar("Scale", result, m, k, element.OpMul)
}

// ScaleInverse computes result = m / k element-wise with m's Div binding.
func ScaleInverse[T any](result, m *Matrix[T], k T) error {
	return applyScalar("ScaleInverse", result, m, k, element.OpDiv)
}
