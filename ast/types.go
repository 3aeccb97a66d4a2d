package ast

import (
	"fmt"
	"strings"
)

// Type is the interface implemented by every variant of the type model:
// Int, Nil, Struct, Ptr, Array and Fn. Like the Expr/Place/Stmt nodes, it
// carries no position information: diagnostics render the offending
// subterm back to source-like text instead of pointing at a source span.
type Type interface {
	typeNode()
	// String renders the type the way diagnostics embed it, eg "ptr(int)".
	String() string
}

// Int is the only primitive scalar type.
type Int struct{}

func (Int) typeNode()     {}
func (Int) String() string { return "int" }

// Nil is the type of the literal `nil`. See Eq for its compatibility with
// Ptr and Array.
type Nil struct{}

func (Nil) typeNode()     {}
func (Nil) String() string { return "nil" }

// Struct is a nominal type; identity is the name alone.
type Struct struct {
	Name string
}

func (Struct) typeNode() {}
func (s Struct) String() string { return fmt.Sprintf("struct(%s)", s.Name) }

// Ptr is a pointer to a T.
type Ptr struct {
	Elem Type
}

func (Ptr) typeNode() {}
func (p Ptr) String() string { return fmt.Sprintf("ptr(%s)", p.Elem) }

// Array is an array of T. The source language carries no static length in
// the type itself (see spec §6.1: NewArray's size is a runtime expression).
type Array struct {
	Elem Type
}

func (Array) typeNode() {}
func (a Array) String() string { return fmt.Sprintf("array(%s)", a.Elem) }

// Fn is a function signature.
type Fn struct {
	Params []Type
	Ret    Type
}

func (Fn) typeNode() {}
func (f Fn) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("fn((%s)->%s)", strings.Join(parts, ","), f.Ret)
}

func isNil(t Type) bool {
	_, ok := t.(Nil)
	return ok
}

func isPtrOrArray(t Type) bool {
	switch t.(type) {
	case Ptr, Array:
		return true
	default:
		return false
	}
}

// Eq is the type compatibility relation described in spec §3: reflexive
// and symmetric, but deliberately not transitive because Nil bridges any
// Ptr or Array type without those types bridging to each other.
func Eq(a, b Type) bool {
	switch {
	case isNil(a) && isNil(b):
		return true
	case isNil(a):
		return isPtrOrArray(b)
	case isNil(b):
		return isPtrOrArray(a)
	}

	switch av := a.(type) {
	case Int:
		_, ok := b.(Int)
		return ok
	case Struct:
		bv, ok := b.(Struct)
		return ok && av.Name == bv.Name
	case Ptr:
		bv, ok := b.(Ptr)
		return ok && Eq(av.Elem, bv.Elem)
	case Array:
		bv, ok := b.(Array)
		return ok && Eq(av.Elem, bv.Elem)
	case Fn:
		bv, ok := b.(Fn)
		if !ok || len(av.Params) != len(bv.Params) {
			return false
		}
		for i := range av.Params {
			if !Eq(av.Params[i], bv.Params[i]) {
				return false
			}
		}
		return Eq(av.Ret, bv.Ret)
	default:
		return false
	}
}

// PickNonNil returns whichever of a, b is not Nil, for use once the caller
// has already established Eq(a, b). If neither is Nil it returns a; if
// both are Nil it returns Nil.
func PickNonNil(a, b Type) Type {
	if isNil(a) && isNil(b) {
		return Nil{}
	}
	if isNil(a) {
		return b
	}
	return a
}

// IsStructOrFn reports whether t is, at its head, a Struct or Fn type -
// the shape excluded from several positions in the typing rules (lvalue
// types, NewArray element types, struct fields, params, locals).
func IsStructOrFn(t Type) bool {
	switch t.(type) {
	case Struct, Fn:
		return true
	default:
		return false
	}
}

// IsNil reports whether t is exactly the Nil type. Unlike Eq(t, Nil{}),
// this does not treat Ptr/Array as Nil-compatible: callers that need to
// exclude Nil itself from a position (lvalue types, NewSingle/NewArray
// element types, struct fields, params, locals) must use this, not Eq,
// or every Ptr/Array would be rejected too.
func IsNil(t Type) bool {
	return isNil(t)
}
