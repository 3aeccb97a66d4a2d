package ast

// Decl is a name/type pair: a struct field, a function parameter, or a
// local declaration.
type Decl struct {
	Name string
	Type Type
}

// StructDef is a top-level struct definition.
type StructDef struct {
	Name   string
	Fields []Decl
}

// Extern declares a function whose body is not defined in the program.
// Its binding in Gamma is the raw Fn type (spec §3), unlike a FunctionDef.
type Extern struct {
	Name   string
	Params []Type
	Ret    Type
}

// FunctionDef is a top-level function definition. Body is always a
// *Stmts, never nil, once the program has gone through the jsonast
// builder.
type FunctionDef struct {
	Name   string
	Params []Decl
	Ret    Type
	Locals []Decl
	Body   *Stmts
}

// Program is the root of the AST.
type Program struct {
	Structs   []StructDef
	Externs   []Extern
	Functions []FunctionDef
}
