// SPDX-License-Identifier: MIT

package element

import (
	"math"
	"reflect"
	"sync"
)

// Number is the set of built-in kinds that have a standard binding set.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sqrt is the caller-supplied square root used by normalization.
type Sqrt[T any] func(T) T

// standardSets caches one Arithmetic[T] per concrete type so that identity
// comparisons between containers built from Standard[T] hold.
var standardSets sync.Map // reflect.Type -> any(Arithmetic[T])

// Standard returns the shared +, -, *, / binding set for T. Integer division
// by zero panics inside the binding; the engine reports it as a divide-by-zero
// error.
func Standard[T Number]() Arithmetic[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := standardSets.Load(key); ok {
		return v.(Arithmetic[T])
	}
	prefix := key.String() + "."
	set := Arithmetic[T]{
		Add: NewOp(prefix+"add", func(a, b T) T { return a + b }),
		Sub: NewOp(prefix+"sub", func(a, b T) T { return a - b }),
		Mul: NewOp(prefix+"mul", func(a, b T) T { return a * b }),
		Div: NewOp(prefix+"div", func(a, b T) T { return a / b }),
	}
	v, _ := standardSets.LoadOrStore(key, set)
	return v.(Arithmetic[T])
}

// StandardSqrt returns a square root for T: math.Sqrt for floating kinds and
// the floor of the exact root for integer kinds. Negative integers map to 0.
func StandardSqrt[T Number]() Sqrt[T] {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Float32, reflect.Float64:
		return func(x T) T { return T(math.Sqrt(float64(x))) }
	default:
		return func(x T) T {
			if x <= 0 {
				return 0
			}
			return T(isqrt(uint64(x)))
		}
	}
}

// isqrt is floor(sqrt(n)) without floating rounding for large n.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32 // r*r must not wrap
	}
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
