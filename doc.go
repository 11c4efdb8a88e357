// Package genla is a small, type-generic linear-algebra container library:
// vectors and matrices over any pointer-free element type, whose arithmetic
// is supplied by the caller instead of being fixed by the library.
//
// What is inside?
//
//	A contained toolkit that brings together:
//		• Element bindings: per-type Add/Sub/Mul/Div sets, standard sets for
//		  every built-in numeric kind, and custom sets for your own types
//		• Containers: one exclusively owned buffer per vector or matrix,
//		  drawn from a pluggable allocator (heap, anonymous mmap, budgeted)
//		• Element-wise operations: add, subtract, multiply, divide, scale
//		• Reductions: dot product, squared magnitude, normalization
//
// Why genla?
//
//   - Safe by default: every operation validates its operands and returns
//     a wrapped sentinel error instead of panicking
//   - Transactional: a failing operation never leaves a half-written result
//   - Explicit: compatibility means the same type tag, the same shape and
//     the very same arithmetic bindings
//   - Observable: rejected operations are logged through zap when a logger
//     is installed (container.SetLogger)
//
// Packages:
//
//	element/    type tags, arithmetic bindings (Op, Arithmetic), standard sets
//	memory/     Allocator interface, Heap, Anonymous (mmap) and Tracker
//	container/  Store (the buffer owner), validators, element-wise engine
//	vector/     Vector[T] and its operations
//	matrix/     Matrix[T] (column-major) and its operations
//
// Quick example:
//
//	a, _ := vector.FromSlice([]int32{1, 2, 3}, element.Standard[int32]())
//	b, _ := vector.FromSlice([]int32{4, 5, 6}, element.Standard[int32]())
//	dot, _ := vector.Dot(a, b) // 32
//
// The genla-smoke command (cmd/genla-smoke) runs every operation end to end
// on a selectable element type and allocator.
package genla
