// SPDX-License-Identifier: MIT

// Package unsafeview reinterprets raw byte buffers as typed element slices
// and back. Element types handed to this package must be pointer-free:
// the buffers may live outside the Go heap (mmap) and are never scanned by
// the garbage collector.
package unsafeview

import (
	"reflect"
	"unsafe"
)

// Size returns the byte width of one T.
func Size[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Align returns the required alignment of T.
func Align[T any]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

// Slice views the first n*Size[T]() bytes of b as n elements of T.
// The caller guarantees len(b) >= n*Size[T]() and Aligned[T](b).
func Slice[T any](b []byte, n int) []T {
	if n <= 0 || len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// Bytes views the memory of *v as a byte slice of Size[T]() bytes.
func Bytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// IsZero reports whether every byte of v is zero. Note that this is a
// bit-pattern test: a floating -0.0 is not zero here.
func IsZero[T any](v T) bool {
	for _, c := range Bytes(&v) {
		if c != 0 {
			return false
		}
	}
	return true
}

// Aligned reports whether the first byte of b satisfies T's alignment.
func Aligned[T any](b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%uintptr(Align[T]()) == 0
}

// PointerFree reports whether values of type t carry no Go pointers
// (directly or through arrays and struct fields).
func PointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || PointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !PointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
