// SPDX-License-Identifier: MIT

package container_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/genla/container"
	"github.com/katalvlaran/genla/element"
	"github.com/katalvlaran/genla/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewShape verifies shape bookkeeping and zero initialization.
func TestNewShape(t *testing.T) {
	s, err := container.New[int32](5, element.Standard[int32]())
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 4, s.ElementSize())
	assert.Equal(t, 20, s.BufferSize())
	assert.Equal(t, element.TypeS32, s.Type())
	assert.Equal(t, memory.Default, s.Allocator())
	assert.True(t, s.Arithmetic().Same(element.Standard[int32]()))
	assert.Equal(t, []int32{0, 0, 0, 0, 0}, mustValues(t, s))
}

// TestNewRejectsEmptyShape ensures count<=0 and zero-size elements fail without allocating.
func TestNewRejectsEmptyShape(t *testing.T) {
	tr := memory.NewTracker(memory.Heap{}, 0)

	_, err := container.New[int32](0, element.Standard[int32](), container.WithAllocator(tr))
	require.ErrorIs(t, err, container.ErrBadShape)

	_, err = container.New[int32](-2, element.Standard[int32](), container.WithAllocator(tr))
	require.ErrorIs(t, err, container.ErrBadShape)

	_, err = container.New[struct{}](4, element.Arithmetic[struct{}]{}, container.WithAllocator(tr), container.WithType(typePair))
	require.ErrorIs(t, err, container.ErrBadShape)

	assert.Zero(t, tr.Stats().Allocations, "failed construction must not allocate")
}

// TestNewRejectsPointerTypes ensures element types with Go pointers are refused.
func TestNewRejectsPointerTypes(t *testing.T) {
	_, err := container.New[string](3, element.Arithmetic[string]{}, container.WithType(typePair))
	require.ErrorIs(t, err, container.ErrUnsupportedType)

	_, err = container.New[*int](3, element.Arithmetic[*int]{}, container.WithType(typePair))
	require.ErrorIs(t, err, container.ErrUnsupportedType)
}

// TestNewTypeTag covers tag derivation and explicit tagging of custom types.
func TestNewTypeTag(t *testing.T) {
	_, err := container.New[pair](2, pairOps)
	require.ErrorIs(t, err, container.ErrNullType)

	s, err := container.New[pair](2, pairOps, container.WithType(typePair))
	require.NoError(t, err)
	assert.Equal(t, typePair, s.Type())
	assert.Equal(t, 8, s.ElementSize())

	f, err := container.New[float32](2, element.Standard[float32](), container.WithType(element.TypeFP16))
	require.NoError(t, err)
	assert.Equal(t, element.TypeFP16, f.Type(), "explicit tag overrides the derived one")
}

// TestNewOverflow ensures buffer-size overflow is caught before allocation.
func TestNewOverflow(t *testing.T) {
	tr := memory.NewTracker(memory.Heap{}, 0)
	_, err := container.New[int64](math.MaxInt/4, element.Standard[int64](), container.WithAllocator(tr))
	require.ErrorIs(t, err, container.ErrOverflow)
	assert.Zero(t, tr.Stats().Allocations)
}

// TestCount covers two-dimensional element counts.
func TestCount(t *testing.T) {
	n, err := container.Count(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = container.Count(0, 4)
	require.ErrorIs(t, err, container.ErrBadShape)
	_, err = container.Count(4, -1)
	require.ErrorIs(t, err, container.ErrBadShape)
	_, err = container.Count(math.MaxInt/2, 3)
	require.ErrorIs(t, err, container.ErrOverflow)
	_, err = container.Count(math.MaxInt, math.MaxInt)
	require.ErrorIs(t, err, container.ErrOverflow)
}

// TestNewAllocationFailure covers refused and unusable buffers.
func TestNewAllocationFailure(t *testing.T) {
	tr := memory.NewTracker(memory.Heap{}, 8)
	_, err := container.New[int64](2, element.Standard[int64](), container.WithAllocator(tr))
	require.ErrorIs(t, err, container.ErrAllocation)
	require.ErrorIs(t, err, memory.ErrBudgetExceeded, "the allocator's cause stays visible")

	short := &shortAllocator{}
	_, err = container.New[int64](2, element.Standard[int64](), container.WithAllocator(short))
	require.ErrorIs(t, err, container.ErrAllocation)
	assert.Equal(t, 1, short.freed, "unusable buffer is handed back")
}

// TestReadWriteFidelity verifies Write followed by Read returns the value.
func TestReadWriteFidelity(t *testing.T) {
	s, err := container.New[float64](4, element.Standard[float64]())
	require.NoError(t, err)

	for i := 0; i < s.Len(); i++ {
		require.NoError(t, s.WriteRaw(i, float64(i)*1.5))
	}
	for i := 0; i < s.Len(); i++ {
		v, err := s.ReadRaw(i)
		require.NoError(t, err)
		assert.Equal(t, float64(i)*1.5, v)
	}
}

// TestReadWriteOutOfRange ensures bounds violations report and mutate nothing.
func TestReadWriteOutOfRange(t *testing.T) {
	s := mustStore(t, element.Standard[int32](), []int32{1, 2, 3})

	_, err := s.ReadRaw(3)
	require.ErrorIs(t, err, container.ErrOutOfRange)
	_, err = s.ReadRaw(-1)
	require.ErrorIs(t, err, container.ErrOutOfRange)

	require.ErrorIs(t, s.WriteRaw(3, 99), container.ErrOutOfRange)
	require.ErrorIs(t, s.WriteRaw(-1, 99), container.ErrOutOfRange)
	assert.Equal(t, []int32{1, 2, 3}, mustValues(t, s))
}

// TestLoad verifies Load length checking.
func TestLoad(t *testing.T) {
	s := mustStore(t, element.Standard[int32](), []int32{1, 2, 3})
	require.ErrorIs(t, s.Load([]int32{1, 2}), container.ErrDimensionMismatch)
	assert.Equal(t, []int32{1, 2, 3}, mustValues(t, s))
}

// TestDestroy verifies release, invalidation and idempotency.
func TestDestroy(t *testing.T) {
	tr := memory.NewTracker(memory.Heap{}, 0)
	s := mustStore(t, element.Standard[int32](), []int32{1, 2, 3}, container.WithAllocator(tr))
	require.Equal(t, 1, tr.Stats().Live)

	require.NoError(t, s.Destroy())
	requireNoLeak(t, tr)
	assert.Zero(t, s.BufferSize())
	assert.Equal(t, 3, s.Len(), "element count survives Destroy")

	require.ErrorIs(t, s.Validate(), container.ErrInvalidContainer)
	_, err := s.ReadRaw(0)
	require.ErrorIs(t, err, container.ErrInvalidContainer)
	require.ErrorIs(t, s.WriteRaw(0, 1), container.ErrInvalidContainer)

	require.NoError(t, s.Destroy(), "second Destroy is a no-op")
	assert.Equal(t, 1, tr.Stats().Frees)
}

// TestDestroyFreeError surfaces allocator failures on release.
func TestDestroyFreeError(t *testing.T) {
	s, err := container.New[int32](2, element.Standard[int32](), container.WithAllocator(stickyFreeAllocator{}))
	require.NoError(t, err)
	require.ErrorIs(t, s.Destroy(), errStickyFree)
	require.ErrorIs(t, s.Validate(), container.ErrInvalidContainer, "buffer is dropped regardless")
}

// TestNilStore ensures nil receivers report ErrNilContainer instead of panicking.
func TestNilStore(t *testing.T) {
	var s *container.Store[int32]
	require.ErrorIs(t, s.Validate(), container.ErrNilContainer)
	require.ErrorIs(t, s.Destroy(), container.ErrNilContainer)
	_, err := s.ReadRaw(0)
	require.ErrorIs(t, err, container.ErrNilContainer)
	require.ErrorIs(t, s.WriteRaw(0, 1), container.ErrNilContainer)

	assert.Zero(t, s.Len())
	assert.Zero(t, s.BufferSize())
	assert.Equal(t, element.TypeNull, s.Type())
	assert.Nil(t, s.Allocator())
}

// TestString checks the debug representation.
func TestString(t *testing.T) {
	s := mustStore(t, element.Standard[int32](), []int32{1, -2, 3})
	assert.Equal(t, "[1, -2, 3]", s.String())
	require.NoError(t, s.Destroy())
	assert.Equal(t, "[]", s.String())
}

// TestAnonymousBackedStore runs a store on mmap-backed memory.
func TestAnonymousBackedStore(t *testing.T) {
	s := mustStore(t, element.Standard[float64](), []float64{1, 2, 3}, container.WithAllocator(memory.Anonymous{}))
	assert.Equal(t, []float64{1, 2, 3}, mustValues(t, s))
	require.NoError(t, s.Destroy())
}

// TestOptionPanics covers programmer errors in option constructors.
func TestOptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "container: WithAllocator: allocator must not be nil", func() {
		container.WithAllocator(nil)
	})
	assert.PanicsWithValue(t, "container: WithType: tag must not be element.TypeNull", func() {
		container.WithType(element.TypeNull)
	})
}
