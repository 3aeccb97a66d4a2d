package ast

// Place is an l-value expression: a construct that denotes a storage
// location. It is a distinct sum from Expr; Val is the one-way adapter
// that lets a Place be read where an Expr is required.
type Place interface {
	placeNode()
}

// Id is a bare identifier naming a variable, parameter, local, extern or
// function.
type Id struct {
	Name string
}

func (*Id) placeNode() {}

// Deref is `*e`: dereferencing a pointer-typed expression.
type Deref struct {
	Expr Expr
}

func (*Deref) placeNode() {}

// ArrayAccess is `a[i]`.
type ArrayAccess struct {
	Array Expr
	Index Expr
}

func (*ArrayAccess) placeNode() {}

// FieldAccess is `e.field`, where e must type to a Ptr(Struct(S)).
type FieldAccess struct {
	Expr  Expr
	Field string
}

func (*FieldAccess) placeNode() {}
