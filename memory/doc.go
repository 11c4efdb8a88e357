// Package memory provides the allocation bindings used by the containers.
//
// An Allocator hands out raw byte buffers and takes them back. The
// containers allocate their element storage and their per-operation
// staging buffers through it and release every buffer they obtain on all
// exit paths.
//
// Implementations:
//
//   - Heap: zero-filled Go heap memory, 8-byte aligned. The default.
//   - Anonymous: anonymous read/write memory mappings (mmap), page-aligned
//     and zero-filled by the kernel; storage stays outside the Go heap.
//   - Tracker: wraps another Allocator, keeps live counts, and can refuse
//     allocations beyond a byte budget. Useful in tests and in
//     memory-constrained callers.
package memory
