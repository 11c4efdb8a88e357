// Package vector provides Vector[T], a fixed-length vector whose element
// arithmetic and memory come from caller-supplied bindings.
//
// A Vector owns its buffer exclusively. It is created once, used in place
// by any number of operations, and destroyed once:
//
//	a, _ := vector.FromSlice([]int32{1, 2, 3}, element.Standard[int32]())
//	b, _ := vector.FromSlice([]int32{4, 5, 6}, element.Standard[int32]())
//	defer a.Destroy()
//	defer b.Destroy()
//
//	dot, err := vector.Dot(a, b) // 32
//
// Operations write into a caller-supplied result vector, which may be one
// of the operands. Every operation validates its operands first and
// returns an error wrapping a container sentinel (container.ErrIncompatible,
// container.ErrOutOfRange, ...) on failure; a failed operation leaves the
// result untouched.
//
// Vectors are not safe for concurrent use.
package vector
