// SPDX-License-Identifier: MIT

// Package matrix provides Matrix[T], a two-dimensional container of any
// pointer-free element type T whose arithmetic is supplied at construction.
//
// A Matrix has a width (number of columns) and a height (number of rows).
// Elements live in one contiguous buffer in column-major order: the element
// at (row, col) sits at raw index row + height*col, so a column is a
// contiguous run of height elements.
//
// Construction:
//
//	m, err := matrix.NewStandard[float32](3, 2) // 3 columns, 2 rows
//	if err != nil { ... }
//	defer m.Destroy()
//
// Element-wise operations (Add, Subtract, ElementwiseMultiply,
// ElementwiseDivide, Scale, ScaleInverse) write into a caller-provided result
// matrix of the same shape. Operands must share the type tag, the shape and
// the exact arithmetic bindings; see Compatible. Results are committed only
// after every element succeeded, so a failed call leaves result unchanged.
//
// Row and column indices are validated independently: (row, col) is in
// range only when 0 ≤ row < Height() and 0 ≤ col < Width().
//
// All errors wrap the sentinels of package container and can be matched
// with errors.Is.
package matrix
