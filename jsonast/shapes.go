// Package jsonast is the total function from the JSON AST shape
// documented in spec §6.1 to the ast package's tagged-sum tree (spec
// §4.1). Any missing key, wrong arity, unknown tag or unrecognised
// operator name surfaces as an error built or wrapped with
// github.com/pkg/errors, so the driver can tell a malformed-input
// failure (stderr, exit 1) apart from a type error (stdout, exit 0).
package jsonast

import "encoding/json"

// declJSON is the wire shape of a Decl: { "name": string, "typ": Type }.
type declJSON struct {
	Name string          `json:"name"`
	Typ  json.RawMessage `json:"typ"`
}

// structDefJSON is { "name": string, "fields": [Decl...] }.
type structDefJSON struct {
	Name   string     `json:"name"`
	Fields []declJSON `json:"fields"`
}

// externJSON is { "name": string, "typ": Type } where Type must decode
// to the Fn variant.
type externJSON struct {
	Name string          `json:"name"`
	Typ  json.RawMessage `json:"typ"`
}

// functionDefJSON is
// { "name": string, "prms": [Decl...], "rettyp": Type, "locals": [Decl...], "stmts": [Stmt...] }.
type functionDefJSON struct {
	Name    string            `json:"name"`
	Prms    []declJSON        `json:"prms"`
	RetTyp  json.RawMessage   `json:"rettyp"`
	Locals  []declJSON        `json:"locals"`
	Stmts   []json.RawMessage `json:"stmts"`
}

// programJSON is the top-level { "structs": [...], "externs": [...], "functions": [...] }.
type programJSON struct {
	Structs   []structDefJSON   `json:"structs"`
	Externs   []externJSON      `json:"externs"`
	Functions []functionDefJSON `json:"functions"`
}

// arrayAccessJSON is the object shape of an ArrayAccess Place/Expr.
type arrayAccessJSON struct {
	Array json.RawMessage `json:"array"`
	Idx   json.RawMessage `json:"idx"`
}

// fieldAccessJSON is the object shape of a FieldAccess Place/Expr.
type fieldAccessJSON struct {
	Ptr   json.RawMessage `json:"ptr"`
	Field string          `json:"field"`
}

// selectJSON is the object shape of a Select expression.
type selectJSON struct {
	Guard json.RawMessage `json:"guard"`
	Tt    json.RawMessage `json:"tt"`
	Ff    json.RawMessage `json:"ff"`
}

// binOpJSON is the object shape of a BinOp expression.
type binOpJSON struct {
	Op    string          `json:"op"`
	Left  json.RawMessage `json:"left"`
	Right json.RawMessage `json:"right"`
}

// funCallJSON is the object shape of a FunCall.
type funCallJSON struct {
	Callee json.RawMessage   `json:"callee"`
	Args   []json.RawMessage `json:"args"`
}

// ifJSON is the object shape of an If statement. Ff may be absent
// (null) or an empty array; both mean "no else branch" per spec §6.1.
type ifJSON struct {
	Guard json.RawMessage `json:"guard"`
	Tt    json.RawMessage `json:"tt"`
	Ff    json.RawMessage `json:"ff"`
}
