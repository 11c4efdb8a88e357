// SPDX-License-Identifier: MIT

package memory

import (
	"fmt"
	"sync"
	"unsafe"
)

const panicNilInner = "memory: NewTracker: inner allocator must not be nil"

// Stats is a snapshot of a Tracker's counters.
type Stats struct {
	Allocations int   // successful Allocate calls
	Frees       int   // successful Free calls
	Failures    int   // refused or failed Allocate calls
	Live        int   // buffers handed out and not yet freed
	LiveBytes   int64 // bytes handed out and not yet freed
	PeakBytes   int64 // high-water mark of LiveBytes
}

// Tracker wraps an Allocator with accounting and an optional byte budget.
// It is safe for concurrent use.
type Tracker struct {
	inner Allocator
	limit int64 // <= 0 means unlimited

	mu    sync.Mutex
	live  map[uintptr]int // first-byte address -> size
	stats Stats
}

// NewTracker wraps inner. limit is the maximum number of live bytes; zero or
// a negative value disables the budget.
func NewTracker(inner Allocator, limit int64) *Tracker {
	if inner == nil {
		panic(panicNilInner)
	}
	return &Tracker{inner: inner, limit: limit, live: make(map[uintptr]int)}
}

// Allocate implements Allocator.
func (t *Tracker) Allocate(size int) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if size > 0 && t.limit > 0 && t.stats.LiveBytes+int64(size) > t.limit {
		t.stats.Failures++
		return nil, memoryErrorf("Tracker", size, ErrBudgetExceeded)
	}
	buf, err := t.inner.Allocate(size)
	if err != nil {
		t.stats.Failures++
		return nil, err
	}
	t.live[addrOf(buf)] = len(buf)
	t.stats.Allocations++
	t.stats.Live++
	t.stats.LiveBytes += int64(len(buf))
	t.stats.PeakBytes = max(t.stats.PeakBytes, t.stats.LiveBytes)

	return buf, nil
}

// Free implements Allocator. Buffers not handed out by this Tracker are
// rejected with ErrForeignBuffer and not forwarded.
func (t *Tracker) Free(buf []byte) error {
	if buf == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	addr := addrOf(buf)
	size, ok := t.live[addr]
	if !ok {
		return fmt.Errorf("Tracker.Free: %w", ErrForeignBuffer)
	}
	if err := t.inner.Free(buf); err != nil {
		return err
	}
	delete(t.live, addr)
	t.stats.Frees++
	t.stats.Live--
	t.stats.LiveBytes -= int64(size)

	return nil
}

// Stats returns a snapshot of the counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// SetLimit replaces the byte budget; zero or negative disables it.
func (t *Tracker) SetLimit(limit int64) {
	t.mu.Lock()
	t.limit = limit
	t.mu.Unlock()
}

func addrOf(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
}
