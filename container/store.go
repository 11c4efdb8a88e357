// SPDX-License-Identifier: MIT

// Package container - Store: the buffer owner beneath Vector and Matrix.
//
// Purpose:
//   - Own exactly one contiguous buffer of ElementSize()*Len() bytes drawn from
//     the bound allocator; never share it, never resize it.
//   - Guarantee safety at the public surface: ReadRaw/WriteRaw return errors
//     instead of panicking, and leave memory untouched on failure.
//   - Keep a typed []T view over the raw bytes so the engine can walk
//     elements without per-element copies through scratch memory.
//
// Complexity quicksheet:
//   - New: O(n) zeroing by the allocator; ReadRaw/WriteRaw: O(1);
//     Values: O(n); Destroy: O(1) plus the allocator's Free.

package container

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/genla/element"
	"github.com/katalvlaran/genla/internal/unsafeview"
	"github.com/katalvlaran/genla/memory"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxRead     = "ReadRaw"
	ctxWrite    = "WriteRaw"
	ctxLoad     = "Load"
	ctxValues   = "Values"
	ctxDestroy  = "Destroy"
	ctxValidate = "Validate"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// storeErrorf wraps err with the Store method and index for diagnostics.
func storeErrorf(method string, idx int, err error) error {
	return containerErrorf(fmt.Sprintf("Store.%s(%d)", method, idx), err)
}

// Store is a typed view over one exclusively owned raw buffer.
//   - tag and ops are fixed at construction and used for compatibility checks.
//   - buf holds bufSize == elemSize*count bytes; data views the same memory as []T.
//   - alloc produced buf and receives it back in Destroy.
type Store[T any] struct {
	tag      element.Type
	elemSize int
	count    int
	bufSize  int
	buf      []byte
	data     []T
	ops      element.Arithmetic[T]
	alloc    memory.Allocator
}

// checkedMul returns a*b for positive a, b, or ErrOverflow when the product
// does not fit in an int. Overflow is detected after the multiplication by a
// divisibility check instead of widening.
func checkedMul(a, b int) (int, error) {
	p := a * b
	if p/b != a || p < a || p < b {
		return 0, ErrOverflow
	}
	return p, nil
}

// Count returns width*height for a two-dimensional shape.
// Errors: ErrBadShape if either factor is not positive, ErrOverflow when the
// product overflows.
func Count(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, ErrBadShape
	}
	return checkedMul(width, height)
}

// New allocates a Store of count elements of T.
// Implementation:
//   - Stage 1: resolve options; validate count>0, Sizeof(T)>0, T pointer-free, tag non-null.
//   - Stage 2: compute the buffer size with overflow detection (before any allocation).
//   - Stage 3: allocate through the bound allocator and check length and alignment;
//     an unusable buffer is handed back to the allocator.
//
// Errors:
//   - ErrBadShape, ErrUnsupportedType, ErrNullType, ErrOverflow, ErrAllocation.
//
// Notes:
//   - Contents are zero with memory.Heap and memory.Anonymous; a custom
//     allocator may return anything.
//
// Complexity:
//   - Time O(count) for zeroing by the allocator, Space O(count*Sizeof(T)).
func New[T any](count int, ops element.Arithmetic[T], opts ...Option) (*Store[T], error) {
	o := gatherOptions(opts...)
	elemSize := unsafeview.Size[T]()

	if count <= 0 || elemSize <= 0 {
		return nil, storeErrorf(ctxNew, count, ErrBadShape)
	}
	if !unsafeview.PointerFree(reflect.TypeOf((*T)(nil)).Elem()) {
		return nil, storeErrorf(ctxNew, count, fmt.Errorf("%w: %s", ErrUnsupportedType, reflect.TypeOf((*T)(nil)).Elem()))
	}
	tag := resolveTag[T](o)
	if tag == element.TypeNull {
		return nil, storeErrorf(ctxNew, count, ErrNullType)
	}

	bufSize, err := checkedMul(elemSize, count)
	if err != nil {
		return nil, storeErrorf(ctxNew, count, err)
	}

	buf, err := o.allocator.Allocate(bufSize)
	if err != nil {
		return nil, storeErrorf(ctxNew, count, fmt.Errorf("%w: %w", ErrAllocation, err))
	}
	if len(buf) != bufSize || !unsafeview.Aligned[T](buf) {
		_ = o.allocator.Free(buf)
		return nil, storeErrorf(ctxNew, count, fmt.Errorf("%w: unusable buffer (len %d, want %d)", ErrAllocation, len(buf), bufSize))
	}

	return &Store[T]{
		tag:      tag,
		elemSize: elemSize,
		count:    count,
		bufSize:  bufSize,
		buf:      buf,
		data:     unsafeview.Slice[T](buf, count),
		ops:      ops,
		alloc:    o.allocator,
	}, nil
}

// Len returns the number of elements (0 for a nil Store).
func (s *Store[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Type returns the type tag.
func (s *Store[T]) Type() element.Type {
	if s == nil {
		return element.TypeNull
	}
	return s.tag
}

// ElementSize returns the byte width of one element.
func (s *Store[T]) ElementSize() int {
	if s == nil {
		return 0
	}
	return s.elemSize
}

// BufferSize returns the cached byte length of the buffer; 0 after Destroy.
func (s *Store[T]) BufferSize() int {
	if s == nil {
		return 0
	}
	return s.bufSize
}

// Arithmetic returns the bound arithmetic set.
func (s *Store[T]) Arithmetic() element.Arithmetic[T] {
	if s == nil {
		return element.Arithmetic[T]{}
	}
	return s.ops
}

// Allocator returns the bound allocator.
func (s *Store[T]) Allocator() memory.Allocator {
	if s == nil {
		return nil
	}
	return s.alloc
}

// Validate checks every integrity invariant without mutating anything.
// Errors: ErrNilContainer for a nil Store, ErrInvalidContainer otherwise.
func (s *Store[T]) Validate() error {
	if s == nil {
		return validatorErrorf(ctxValidate, ErrNilContainer)
	}
	var reason string
	switch {
	case s.buf == nil:
		reason = "no buffer"
	case s.elemSize == 0:
		reason = "zero element size"
	case s.count == 0:
		reason = "zero element count"
	case s.bufSize == 0:
		reason = "zero buffer size"
	case s.bufSize != len(s.buf) || s.bufSize != s.elemSize*s.count:
		reason = "buffer size disagrees with shape"
	case s.tag == element.TypeNull:
		reason = "null type tag"
	case s.alloc == nil:
		reason = "no allocator"
	default:
		return nil
	}
	return validatorErrorf(ctxValidate, fmt.Errorf("%w: %s", ErrInvalidContainer, reason))
}

// ReadRaw returns the element at flat index i.
// Errors: ErrNilContainer, ErrInvalidContainer, ErrOutOfRange.
func (s *Store[T]) ReadRaw(i int) (T, error) {
	var zero T
	if err := s.Validate(); err != nil {
		return zero, storeErrorf(ctxRead, i, err)
	}
	if i < 0 || i >= s.count {
		return zero, storeErrorf(ctxRead, i, ErrOutOfRange)
	}
	return s.data[i], nil
}

// WriteRaw stores v at flat index i. Nothing is written on error.
// Errors: ErrNilContainer, ErrInvalidContainer, ErrOutOfRange.
func (s *Store[T]) WriteRaw(i int, v T) error {
	if err := s.Validate(); err != nil {
		return storeErrorf(ctxWrite, i, err)
	}
	if i < 0 || i >= s.count {
		return storeErrorf(ctxWrite, i, ErrOutOfRange)
	}
	s.data[i] = v
	return nil
}

// Load copies values into the store starting at index 0.
// Errors: ErrDimensionMismatch unless len(values) == Len(); nothing is
// written on error.
func (s *Store[T]) Load(values []T) error {
	if err := s.Validate(); err != nil {
		return storeErrorf(ctxLoad, len(values), err)
	}
	if len(values) != s.count {
		return storeErrorf(ctxLoad, len(values), ErrDimensionMismatch)
	}
	copy(s.data, values)
	return nil
}

// Values returns a copy of all elements in index order.
func (s *Store[T]) Values() ([]T, error) {
	if err := s.Validate(); err != nil {
		return nil, storeErrorf(ctxValues, 0, err)
	}
	out := make([]T, s.count)
	copy(out, s.data)
	return out, nil
}

// Destroy returns the buffer to the allocator and zeroes the cached buffer
// size. The Store is invalid afterwards; a second Destroy is a no-op.
// Errors: ErrNilContainer, or the allocator's Free error (the buffer is
// considered released either way).
func (s *Store[T]) Destroy() error {
	if s == nil {
		return storeErrorf(ctxDestroy, 0, ErrNilContainer)
	}
	if s.buf == nil {
		return nil
	}
	buf := s.buf
	s.buf, s.data, s.bufSize = nil, nil, 0
	if err := s.alloc.Free(buf); err != nil {
		return storeErrorf(ctxDestroy, s.count, err)
	}
	return nil
}

// String implements fmt.Stringer for easy debugging, e.g. "[1, 2, 3]".
func (s *Store[T]) String() string {
	if s.Validate() != nil {
		return _fmtOpen + _fmtClose
	}
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, v := range s.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString(_fmtClose)
	return sb.String()
}
