// SPDX-License-Identifier: MIT

package element

import (
	"reflect"
	"strconv"
)

// Type identifies the semantic type of an element. The engine only compares
// tags for equality and rejects TypeNull; callers are free to define their
// own values for custom element types.
type Type int

// Predefined tags. Integer kinds are positive, floating kinds negative.
const (
	TypeNull Type = 0
	TypeS8   Type = 1
	TypeU8   Type = 2
	TypeS16  Type = 3
	TypeU16  Type = 4
	TypeS32  Type = 5
	TypeU32  Type = 6
	TypeS64  Type = 7
	TypeU64  Type = 8
	TypeSize Type = 9

	TypeFP8  Type = -1
	TypeFP16 Type = -2
	TypeFP32 Type = -3
	TypeFP64 Type = -4
)

var typeNames = map[Type]string{
	TypeNull: "null",
	TypeS8:   "s8",
	TypeU8:   "u8",
	TypeS16:  "s16",
	TypeU16:  "u16",
	TypeS32:  "s32",
	TypeU32:  "u32",
	TypeS64:  "s64",
	TypeU64:  "u64",
	TypeSize: "size",
	TypeFP8:  "fp8",
	TypeFP16: "fp16",
	TypeFP32: "fp32",
	TypeFP64: "fp64",
}

// String implements fmt.Stringer. Caller-defined tags print as "type(N)".
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// IsFloat reports whether t is one of the predefined floating tags.
func (t Type) IsFloat() bool {
	return t >= TypeFP64 && t <= TypeFP8
}

// TagOf derives the predefined tag for T from its underlying kind, so named
// types such as `type Meters float64` map to TypeFP64. Kinds without a
// predefined tag (structs, arrays, complex numbers) yield TypeNull and must be
// tagged explicitly by the caller.
func TagOf[T any]() Type {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Int8:
		return TypeS8
	case reflect.Uint8:
		return TypeU8
	case reflect.Int16:
		return TypeS16
	case reflect.Uint16:
		return TypeU16
	case reflect.Int32:
		return TypeS32
	case reflect.Uint32:
		return TypeU32
	case reflect.Int64:
		return TypeS64
	case reflect.Uint64:
		return TypeU64
	case reflect.Int:
		if strconv.IntSize == 32 {
			return TypeS32
		}
		return TypeS64
	case reflect.Uint, reflect.Uintptr:
		return TypeSize
	case reflect.Float32:
		return TypeFP32
	case reflect.Float64:
		return TypeFP64
	default:
		return TypeNull
	}
}
