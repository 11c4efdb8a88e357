// SPDX-License-Identifier: MIT

package element

// OpKind selects one of the four arithmetic bindings.
type OpKind int

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
)

var opKindNames = [...]string{"add", "sub", "mul", "div"}

// String implements fmt.Stringer.
func (k OpKind) String() string {
	if k < OpAdd || k > OpDiv {
		return "op(?)"
	}
	return opKindNames[k]
}

const panicNilOpFunc = "element: NewOp: fn must not be nil"

// Op is a single arithmetic binding: a pure function of two elements.
// Ops are compared by pointer identity, never by behavior.
type Op[T any] struct {
	name string
	fn   func(left, right T) T
}

// NewOp wraps fn as a binding. It panics when fn is nil (programmer error).
func NewOp[T any](name string, fn func(left, right T) T) *Op[T] {
	if fn == nil {
		panic(panicNilOpFunc)
	}
	return &Op[T]{name: name, fn: fn}
}

// Apply evaluates the binding.
func (o *Op[T]) Apply(left, right T) T {
	return o.fn(left, right)
}

// Name returns the label given at construction.
func (o *Op[T]) Name() string {
	if o == nil {
		return "<nil>"
	}
	return o.name
}

// Arithmetic is the binding set carried by every container. Any field may be
// nil; operations that need a missing binding fail instead of guessing.
type Arithmetic[T any] struct {
	Add *Op[T]
	Sub *Op[T]
	Mul *Op[T]
	Div *Op[T]
}

// Lookup returns the binding selected by k, or nil.
func (a Arithmetic[T]) Lookup(k OpKind) *Op[T] {
	switch k {
	case OpAdd:
		return a.Add
	case OpSub:
		return a.Sub
	case OpMul:
		return a.Mul
	case OpDiv:
		return a.Div
	default:
		return nil
	}
}

// Has reports whether every listed binding is present.
func (a Arithmetic[T]) Has(kinds ...OpKind) bool {
	for _, k := range kinds {
		if a.Lookup(k) == nil {
			return false
		}
	}
	return true
}

// Same reports whether a and b hold identical bindings in all four slots.
func (a Arithmetic[T]) Same(b Arithmetic[T]) bool {
	return a.Add == b.Add && a.Sub == b.Sub && a.Mul == b.Mul && a.Div == b.Div
}
