// SPDX-License-Identifier: MIT

package memory

import (
	"github.com/edsrzf/mmap-go"
)

// Anonymous allocates every buffer as its own anonymous private mapping.
// Mappings are page-granular, so small buffers waste most of a page; use it
// for large element stores rather than for scratch-heavy workloads.
type Anonymous struct{}

// Allocate implements Allocator.
func (Anonymous) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, memoryErrorf("Anonymous", size, ErrInvalidSize)
	}
	m, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, memoryErrorf("Anonymous", size, err)
	}

	return m, nil
}

// Free implements Allocator. buf must be the full slice returned by Allocate.
func (Anonymous) Free(buf []byte) error {
	if buf == nil {
		return nil
	}
	m := mmap.MMap(buf)

	return m.Unmap()
}
