// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/genla/container"
	"github.com/katalvlaran/genla/element"
)

// Compatible reports whether a and b may be combined: same type tag, same
// length and identical arithmetic bindings. A nil operand is an error
// (container.ErrNilContainer); a mismatch is (false, nil).
func Compatible[T any](a, b *Vector[T]) (bool, error) {
	ok, err := container.Compatible(a.store(), b.store())
	if err != nil {
		return false, vectorErrorf("Compatible", err)
	}
	return ok, nil
}

func apply[T any](tag string, result, a, b *Vector[T], kind element.OpKind) error {
	if err := container.Apply(result.store(), a.store(), b.store(), kind); err != nil {
		return vectorErrorf(tag, err)
	}
	return nil
}

// Add computes result[i] = a[i] + b[i] with a's Add binding.
func Add[T any](result, a, b *Vector[T]) error {
	return apply("Add", result, a, b, element.OpAdd)
}

// Subtract computes result[i] = a[i] - b[i] with a's Sub binding.
func Subtract[T any](result, a, b *Vector[T]) error {
	return apply("Subtract", result, a, b, element.OpSub)
}

// ElementwiseMultiply computes result[i] = a[i] * b[i] with a's Mul binding.
func ElementwiseMultiply[T any](result, a, b *Vector[T]) error {
	return apply("ElementwiseMultiply", result, a, b, element.OpMul)
}

// ElementwiseDivide computes result[i] = a[i] / b[i] with a's Div binding.
func ElementwiseDivide[T any](result, a, b *Vector[T]) error {
	return apply("ElementwiseDivide", result, a, b, element.OpDiv)
}

// Dot returns the dot product of a and b through a's Add and Mul bindings.
func Dot[T any](a, b *Vector[T]) (T, error) {
	p, err := container.Dot(a.store(), b.store())
	if err != nil {
		return p, vectorErrorf("Dot", err)
	}
	return p, nil
}

// Scale computes result[i] = v[i] * k with v's Mul binding.
func Scale[T any](result, v *Vector[T], k T) error {
	if err := container.ApplyScalar(result.store(), v.store(), k, element.OpMul); err != nil {
		return vectorErrorf("Scale", err)
	}
	return nil
}

// ScaleInverse computes result[i] = v[i] / k with v's Div binding.
func ScaleInverse[T any](result, v *Vector[T], k T) error {
	if err := container.ApplyScalar(result.store(), v.store(), k, element.OpDiv); err != nil {
		return vectorErrorf("ScaleInverse", err)
	}
	return nil
}

// MagnitudeSquared returns Dot(v, v).
func MagnitudeSquared[T any](v *Vector[T]) (T, error) {
	m, err := container.MagnitudeSquared(v.store())
	if err != nil {
		return m, vectorErrorf("MagnitudeSquared", err)
	}
	return m, nil
}

// Normalize writes v / sqrt(Dot(v, v)) into result. A zero vector fails with
// container.ErrDivideByZero.
func Normalize[T any](result, v *Vector[T], sqrt element.Sqrt[T]) error {
	if err := container.Normalize(result.store(), v.store(), sqrt); err != nil {
		return vectorErrorf("Normalize", err)
	}
	return nil
}
