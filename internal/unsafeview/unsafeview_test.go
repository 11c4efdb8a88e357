// SPDX-License-Identifier: MIT

package unsafeview_test

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/katalvlaran/genla/internal/unsafeview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y float32
}

type named struct {
	Label string
}

func TestSliceRoundTrip(t *testing.T) {
	backing := make([]uint64, 2) // 8-byte aligned storage
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), 16)
	require.True(t, unsafeview.Aligned[uint64](raw))

	words := unsafeview.Slice[uint32](raw, 4)
	require.Len(t, words, 4)
	words[0], words[3] = 7, 9

	again := unsafeview.Slice[uint32](raw, 4)
	assert.Equal(t, uint32(7), again[0])
	assert.Equal(t, uint32(9), again[3])
	assert.NotZero(t, backing[0])
	assert.NotZero(t, backing[1])
}

func TestSliceEmpty(t *testing.T) {
	assert.Nil(t, unsafeview.Slice[int32](nil, 4))
	assert.Nil(t, unsafeview.Slice[int32](make([]byte, 8), 0))
}

func TestIsZero(t *testing.T) {
	assert.True(t, unsafeview.IsZero(int64(0)))
	assert.False(t, unsafeview.IsZero(int64(1)))
	assert.True(t, unsafeview.IsZero(point{}))
	assert.False(t, unsafeview.IsZero(point{Y: 1}))
}

func TestSizeAlign(t *testing.T) {
	assert.Equal(t, 8, unsafeview.Size[point]())
	assert.Equal(t, 4, unsafeview.Align[point]())
	assert.Equal(t, 0, unsafeview.Size[struct{}]())
}

func TestPointerFree(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int32", reflect.TypeOf((*int32)(nil)).Elem(), true},
		{"complex128", reflect.TypeOf((*complex128)(nil)).Elem(), true},
		{"struct", reflect.TypeOf((*point)(nil)).Elem(), true},
		{"array", reflect.TypeOf((*[4]float64)(nil)).Elem(), true},
		{"string", reflect.TypeOf((*string)(nil)).Elem(), false},
		{"pointer", reflect.TypeOf((**int)(nil)).Elem(), false},
		{"struct with string", reflect.TypeOf((*named)(nil)).Elem(), false},
		{"slice", reflect.TypeOf((*[]int)(nil)).Elem(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, unsafeview.PointerFree(tc.typ))
		})
	}
}
