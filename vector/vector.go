// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/genla/container"
	"github.com/katalvlaran/genla/element"
)

// vectorErrorf wraps err with the vector-level operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("vector.%s: %w", tag, err)
}

// Vector is a one-dimensional container of T.
type Vector[T any] struct {
	s *container.Store[T]
}

// New allocates a zeroed vector of length elements bound to ops.
// Options select the allocator (container.WithAllocator) and the type tag
// (container.WithType, required for custom element types).
//
// Errors: container.ErrBadShape, ErrUnsupportedType, ErrNullType,
// ErrOverflow, ErrAllocation.
func New[T any](length int, ops element.Arithmetic[T], opts ...container.Option) (*Vector[T], error) {
	s, err := container.New(length, ops, opts...)
	if err != nil {
		return nil, vectorErrorf("New", err)
	}
	return &Vector[T]{s: s}, nil
}

// NewStandard allocates a vector of a built-in numeric kind bound to the
// shared standard arithmetic for T.
func NewStandard[T element.Number](length int, opts ...container.Option) (*Vector[T], error) {
	return New(length, element.Standard[T](), opts...)
}

// FromSlice allocates a vector holding a copy of values.
func FromSlice[T any](values []T, ops element.Arithmetic[T], opts ...container.Option) (*Vector[T], error) {
	v, err := New(len(values), ops, opts...)
	if err != nil {
		return nil, err
	}
	if err = v.s.Load(values); err != nil {
		_ = v.s.Destroy()
		return nil, vectorErrorf("FromSlice", err)
	}
	return v, nil
}

func (v *Vector[T]) store() *container.Store[T] {
	if v == nil {
		return nil
	}
	return v.s
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.store().Len() }

// Type returns the type tag.
func (v *Vector[T]) Type() element.Type { return v.store().Type() }

// ElementSize returns the byte width of one element.
func (v *Vector[T]) ElementSize() int { return v.store().ElementSize() }

// BufferSize returns the byte length of the buffer; 0 after Destroy.
func (v *Vector[T]) BufferSize() int { return v.store().BufferSize() }

// Arithmetic returns the bound arithmetic set.
func (v *Vector[T]) Arithmetic() element.Arithmetic[T] { return v.store().Arithmetic() }

// Validate reports whether v is usable. It never mutates v.
func (v *Vector[T]) Validate() error {
	if err := v.store().Validate(); err != nil {
		return vectorErrorf("Validate", err)
	}
	return nil
}

// Read returns element i.
// Errors: container.ErrNilContainer, ErrInvalidContainer, ErrOutOfRange.
func (v *Vector[T]) Read(i int) (T, error) {
	x, err := v.store().ReadRaw(i)
	if err != nil {
		return x, vectorErrorf("Read", err)
	}
	return x, nil
}

// Write stores x at index i; nothing is written on error.
func (v *Vector[T]) Write(i int, x T) error {
	if err := v.store().WriteRaw(i, x); err != nil {
		return vectorErrorf("Write", err)
	}
	return nil
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() ([]T, error) {
	out, err := v.store().Values()
	if err != nil {
		return nil, vectorErrorf("Values", err)
	}
	return out, nil
}

// String implements fmt.Stringer, e.g. "[1, 2, 3]".
func (v *Vector[T]) String() string { return v.store().String() }

// Destroy releases the buffer through the bound allocator. The vector is
// invalid afterwards; a second call is a no-op.
func (v *Vector[T]) Destroy() error {
	if err := v.store().Destroy(); err != nil {
		return vectorErrorf("Destroy", err)
	}
	return nil
}
