// SPDX-License-Identifier: MIT
// Package container_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for stores and allocators.
//   • Offer misbehaving allocators and bindings to drive failure paths.

package container_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/genla/container"
	"github.com/katalvlaran/genla/element"
	"github.com/katalvlaran/genla/memory"
	"github.com/stretchr/testify/require"
)

// mustStore allocates a Store holding values or fails the test.
func mustStore[T any](t testing.TB, ops element.Arithmetic[T], values []T, opts ...container.Option) *container.Store[T] {
	t.Helper()
	s, err := container.New[T](len(values), ops, opts...)
	require.NoError(t, err)
	require.NoError(t, s.Load(values))
	return s
}

// mustValues reads every element of s or fails the test.
func mustValues[T any](t testing.TB, s *container.Store[T]) []T {
	t.Helper()
	v, err := s.Values()
	require.NoError(t, err)
	return v
}

// requireNoLeak asserts that every buffer handed out by tr came back.
func requireNoLeak(t testing.TB, tr *memory.Tracker) {
	t.Helper()
	st := tr.Stats()
	require.Zero(t, st.Live, "live buffers: %+v", st)
	require.Zero(t, st.LiveBytes, "live bytes: %+v", st)
}

// shortAllocator returns one byte less than requested.
type shortAllocator struct{ freed int }

func (a *shortAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size-1), nil
}

func (a *shortAllocator) Free([]byte) error {
	a.freed++
	return nil
}

// stickyFreeAllocator allocates from the heap but fails every Free.
type stickyFreeAllocator struct{}

var errStickyFree = errors.New("free refused")

func (stickyFreeAllocator) Allocate(size int) ([]byte, error) { return memory.Heap{}.Allocate(size) }
func (stickyFreeAllocator) Free([]byte) error                 { return errStickyFree }

// panickyOps is an int64 set whose Mul panics with a custom value.
var panickyOps = func() element.Arithmetic[int64] {
	std := element.Standard[int64]()
	return element.Arithmetic[int64]{
		Add: std.Add,
		Sub: std.Sub,
		Mul: element.NewOp("panicky.mul", func(a, b int64) int64 {
			if a == 13 {
				panic("unlucky")
			}
			return a * b
		}),
		Div: std.Div,
	}
}()

// pair is a pointer-free custom element type without a predefined tag.
type pair struct {
	A, B int32
}

const typePair element.Type = 100

var pairOps = element.Arithmetic[pair]{
	Add: element.NewOp("pair.add", func(x, y pair) pair { return pair{x.A + y.A, x.B + y.B} }),
	Mul: element.NewOp("pair.mul", func(x, y pair) pair { return pair{x.A * y.A, x.B * y.B} }),
}
