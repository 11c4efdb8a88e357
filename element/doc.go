// Package element defines what the containers know about their elements:
// a semantic type tag and a set of arithmetic bindings.
//
// The containers never interpret element values themselves. Every numeric
// effect (addition, multiplication, rounding, wraparound) is whatever the
// bound Op functions implement. Two containers may only be combined when
// they carry the very same bindings, compared by *Op identity, so a
// binding set should be created once and shared.
//
// Standard binding sets for the built-in numeric kinds are available via
// Standard[T]; they are cached per type, so repeated calls return the same
// identities:
//
//	ops := element.Standard[int32]()
//	same := element.Standard[int32]()
//	ops.Same(same) // true
//
// Custom element types (fixed-point, small structs, ...) build their own
// set with NewOp:
//
//	var fixedOps = element.Arithmetic[Fixed]{
//		Add: element.NewOp("fixed.add", func(a, b Fixed) Fixed { return a + b }),
//		Mul: element.NewOp("fixed.mul", mulFixed),
//	}
package element
