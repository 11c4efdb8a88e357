// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/genla/container"
	"github.com/katalvlaran/genla/element"
	"github.com/katalvlaran/genla/vector"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps err with the matrix-level operation tag and reports the
// rejection on the container logger unless a lower layer already did.
func matrixErrorf(tag string, err error) error {
	return container.Reject("matrix."+tag, err)
}

// Matrix is a width×height container of T stored in column-major order.
type Matrix[T any] struct {
	s      *container.Store[T]
	width  int // columns
	height int // rows
}

// New allocates a zeroed width×height matrix bound to ops.
// Implementation:
//   - Stage 1: width*height with overflow detection (container.Count).
//   - Stage 2: container.New for the element buffer.
//
// Errors: container.ErrBadShape, ErrOverflow, ErrUnsupportedType,
// ErrNullType, ErrAllocation.
func New[T any](width, height int, ops element.Arithmetic[T], opts ...container.Option) (*Matrix[T], error) {
	n, err := container.Count(width, height)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("New(%dx%d)", width, height), err)
	}
	s, err := container.New(n, ops, opts...)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("New(%dx%d)", width, height), err)
	}
	return &Matrix[T]{s: s, width: width, height: height}, nil
}

// NewStandard allocates a matrix of a built-in numeric kind bound to the
// shared standard arithmetic for T.
func NewStandard[T element.Number](width, height int, opts ...container.Option) (*Matrix[T], error) {
	return New(width, height, element.Standard[T](), opts...)
}

// FromColumns allocates a width×height matrix and fills it from values laid
// out column by column (len(values) must equal width*height).
func FromColumns[T any](width, height int, values []T, ops element.Arithmetic[T], opts ...container.Option) (*Matrix[T], error) {
	m, err := New(width, height, ops, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.s.Load(values); err != nil {
		_ = m.s.Destroy()
		return nil, matrixErrorf("FromColumns", err)
	}
	return m, nil
}

func (m *Matrix[T]) store() *container.Store[T] {
	if m == nil {
		return nil
	}
	return m.s
}

// Width returns the number of columns.
func (m *Matrix[T]) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

// Height returns the number of rows.
func (m *Matrix[T]) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Len returns Width()*Height().
func (m *Matrix[T]) Len() int { return m.store().Len() }

// Type returns the type tag.
func (m *Matrix[T]) Type() element.Type { return m.store().Type() }

// ElementSize returns the byte width of one element.
func (m *Matrix[T]) ElementSize() int { return m.store().ElementSize() }

// BufferSize returns the byte length of the buffer; 0 after Destroy.
func (m *Matrix[T]) BufferSize() int { return m.store().BufferSize() }

// Arithmetic returns the bound arithmetic set.
func (m *Matrix[T]) Arithmetic() element.Arithmetic[T] { return m.store().Arithmetic() }

// Validate reports whether m is usable: the underlying store is valid and
// its element count matches the recorded shape. It never mutates m and, like
// container.Store.Validate, does not log.
func (m *Matrix[T]) Validate() error {
	if err := m.store().Validate(); err != nil {
		return fmt.Errorf("matrix.Validate: %w", err)
	}
	if m.width <= 0 || m.height <= 0 || m.width*m.height != m.s.Len() {
		return fmt.Errorf("matrix.Validate: %w: shape %dx%d does not cover %d elements",
			container.ErrInvalidContainer, m.width, m.height, m.s.Len())
	}
	return nil
}

// index maps (row, col) to the raw column-major index. Row and column are
// checked independently so that an overlong row never aliases the next column.
func (m *Matrix[T]) index(row, col int) (int, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.width, m.height, container.ErrOutOfRange)
	}
	return row + m.height*col, nil
}

// Read returns the element at (row, col).
// Errors: container.ErrNilContainer, ErrInvalidContainer, ErrOutOfRange.
func (m *Matrix[T]) Read(row, col int) (T, error) {
	var zero T
	i, err := m.index(row, col)
	if err != nil {
		return zero, matrixErrorf("Read", err)
	}
	v, err := m.s.ReadRaw(i)
	if err != nil {
		return zero, matrixErrorf("Read", err)
	}
	return v, nil
}

// Write stores v at (row, col); nothing is written on error.
func (m *Matrix[T]) Write(row, col int, v T) error {
	i, err := m.index(row, col)
	if err != nil {
		return matrixErrorf("Write", err)
	}
	if err = m.s.WriteRaw(i, v); err != nil {
		return matrixErrorf("Write", err)
	}
	return nil
}

// ReadRaw returns the element at raw index i = row + Height()*col.
func (m *Matrix[T]) ReadRaw(i int) (T, error) {
	v, err := m.store().ReadRaw(i)
	if err != nil {
		return v, matrixErrorf("ReadRaw", err)
	}
	return v, nil
}

// WriteRaw stores v at raw index i; nothing is written on error.
func (m *Matrix[T]) WriteRaw(i int, v T) error {
	if err := m.store().WriteRaw(i, v); err != nil {
		return matrixErrorf("WriteRaw", err)
	}
	return nil
}

// Values returns a copy of the elements in column-major order.
func (m *Matrix[T]) Values() ([]T, error) {
	out, err := m.store().Values()
	if err != nil {
		return nil, matrixErrorf("Values", err)
	}
	return out, nil
}

// Column copies column col into a new vector of Height() elements that
// shares m's bindings, type tag and allocator. The caller owns the vector.
func (m *Matrix[T]) Column(col int) (*vector.Vector[T], error) {
	first, err := m.index(0, col)
	if err != nil {
		return nil, matrixErrorf("Column", err)
	}
	vals := make([]T, m.height)
	for i := range vals {
		if vals[i], err = m.s.ReadRaw(first + i); err != nil {
			return nil, matrixErrorf("Column", err)
		}
	}
	v, err := vector.FromSlice(vals, m.s.Arithmetic(),
		container.WithAllocator(m.s.Allocator()), container.WithType(m.s.Type()))
	if err != nil {
		return nil, matrixErrorf("Column", err)
	}
	return v, nil
}

// String implements fmt.Stringer for easy debugging, one row per line:
// "[a, b]\n[c, d]\n". An unusable matrix renders as "".
func (m *Matrix[T]) String() string {
	if m.Validate() != nil {
		return ""
	}
	vals, _ := m.s.Values()
	var b strings.Builder
	var row, col int
	for row = 0; row < m.height; row++ {
		b.WriteString(_fmtRowOpen)
		for col = 0; col < m.width; col++ {
			fmt.Fprintf(&b, "%v", vals[row+m.height*col])
			if col+1 < m.width {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}

// Destroy releases the buffer through the bound allocator. The matrix is
// invalid afterwards; a second call is a no-op.
func (m *Matrix[T]) Destroy() error {
	if err := m.store().Destroy(); err != nil {
		return matrixErrorf("Destroy", err)
	}
	return nil
}
