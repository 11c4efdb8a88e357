// SPDX-License-Identifier: MIT

// Package container: functional configuration for container construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective config.
//
// Configuration is resolved exactly once, at construction. A container never
// re-binds its allocator or type tag afterwards.
package container

import (
	"github.com/katalvlaran/genla/element"
	"github.com/katalvlaran/genla/memory"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilAllocator = "container: WithAllocator: allocator must not be nil"
	panicNullType     = "container: WithType: tag must not be element.TypeNull"
)

// Option mutates internal options. Applying the same Option twice is harmless;
// the last Option for a given setting wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept `...Option`.
type Options struct {
	allocator memory.Allocator // memory.Default unless WithAllocator
	tag       element.Type     // explicit tag; TypeNull means derive from T
}

// WithAllocator binds the allocator used for the element buffer and for
// every staging buffer of operations writing into this container.
// Panics when a is nil.
func WithAllocator(a memory.Allocator) Option {
	if a == nil {
		panic(panicNilAllocator)
	}
	return func(o *Options) { o.allocator = a }
}

// WithType sets the type tag explicitly. Required for element types whose
// kind has no predefined tag (structs, arrays, complex numbers); optional
// otherwise. Panics on element.TypeNull.
func WithType(t element.Type) Option {
	if t == element.TypeNull {
		panic(panicNullType)
	}
	return func(o *Options) { o.tag = t }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{allocator: memory.Default}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// resolveTag returns the explicit tag, or the one derived from T.
func resolveTag[T any](o Options) element.Type {
	if o.tag != element.TypeNull {
		return o.tag
	}
	return element.TagOf[T]()
}
