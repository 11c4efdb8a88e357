// Package container implements the generic buffer owner shared by vectors
// and matrices, together with the operation engine that runs on it.
//
// What & Why:
//
//	A Store[T] owns one contiguous buffer obtained from a caller-chosen
//	memory.Allocator, records its shape (element size, element count,
//	buffer size) and carries the element.Arithmetic[T] bindings that give
//	the elements their meaning. The engine never does arithmetic on its
//	own: Apply, ApplyScalar, Dot, MagnitudeSquared and Normalize only walk
//	the buffer in ascending index order and call the bindings.
//
// Guarantees:
//
//   - Every operation validates its operands first and reports failures as
//     errors wrapping the sentinels in errors.go; nothing panics on user
//     input.
//   - Element-wise operations are all-or-nothing: output is staged in
//     scratch memory drawn from the result's allocator and committed only
//     after every element succeeded. Scratch memory is released on every
//     exit path.
//   - Panics raised inside bindings are recovered and reported
//     (ErrDivideByZero for integer division by zero, ErrCallbackPanic
//     otherwise).
//
// Concurrency:
//
//	A Store is not safe for concurrent use. Distinct stores may be used
//	from different goroutines when their allocators are safe for that.
//
// Complexity:
//
//	Construction O(n) (zeroing by the allocator), indexed access O(1),
//	every engine operation O(n) binding calls plus one O(n) staging copy.
package container
