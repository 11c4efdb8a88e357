// SPDX-License-Identifier: MIT

package memory

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrInvalidSize is returned for allocation requests of zero or negative size.
	ErrInvalidSize = errors.New("memory: invalid allocation size")

	// ErrBudgetExceeded is returned by a Tracker when a request would exceed its limit.
	ErrBudgetExceeded = errors.New("memory: budget exceeded")

	// ErrForeignBuffer is returned when Free receives a buffer the allocator did not hand out.
	ErrForeignBuffer = errors.New("memory: buffer not owned by allocator")
)

// Allocator is the memory binding of a container. Allocate must return a
// buffer of exactly size bytes or an error; Free must accept exactly what
// Allocate returned. Free(nil) is a no-op.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Free(buf []byte) error
}

// memoryErrorf tags err with the allocator and size for diagnostics.
func memoryErrorf(who string, size int, err error) error {
	return fmt.Errorf("%s.Allocate(%d): %w", who, size, err)
}

// Heap allocates zero-filled memory from the Go heap. Buffers are backed by
// []uint64 so every buffer is at least 8-byte aligned. Free is a no-op; the
// garbage collector reclaims the storage once the container drops it.
type Heap struct{}

// Default is the allocator used when no other is configured.
var Default Allocator = Heap{}

// Allocate implements Allocator.
func (Heap) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, memoryErrorf("Heap", size, ErrInvalidSize)
	}
	words := make([]uint64, (size+7)/8)

	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size), nil
}

// Free implements Allocator.
func (Heap) Free([]byte) error { return nil }
