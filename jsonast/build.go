package jsonast

import (
	"encoding/json"

	"github.com/clite-lang/clitec/ast"
	"github.com/pkg/errors"
)

// Build decodes a full program from its JSON AST encoding (spec §6.1)
// into the ast package's tree. The error it returns on malformed input
// is always a wrapped github.com/pkg/errors error, distinct from the
// check package's *TypeError, so a driver can tell apart "this is not a
// well-formed AST at all" from "this AST is not a well-typed program".
func Build(data []byte) (*ast.Program, error) {
	var raw programJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding program")
	}

	structs := make([]ast.StructDef, len(raw.Structs))
	for i, s := range raw.Structs {
		fields, err := buildDecls(s.Fields)
		if err != nil {
			return nil, errors.Wrapf(err, "struct %q", s.Name)
		}
		structs[i] = ast.StructDef{Name: s.Name, Fields: fields}
	}

	externs := make([]ast.Extern, len(raw.Externs))
	for i, e := range raw.Externs {
		t, err := buildType(e.Typ)
		if err != nil {
			return nil, errors.Wrapf(err, "extern %q", e.Name)
		}
		fn, ok := t.(ast.Fn)
		if !ok {
			return nil, errors.Errorf("extern %q: typ must be Fn, got %s", e.Name, t)
		}
		externs[i] = ast.Extern{Name: e.Name, Params: fn.Params, Ret: fn.Ret}
	}

	functions := make([]ast.FunctionDef, len(raw.Functions))
	for i, f := range raw.Functions {
		fn, err := buildFunctionDef(f)
		if err != nil {
			return nil, errors.Wrapf(err, "function %q", f.Name)
		}
		functions[i] = fn
	}

	return &ast.Program{Structs: structs, Externs: externs, Functions: functions}, nil
}

func buildFunctionDef(f functionDefJSON) (ast.FunctionDef, error) {
	params, err := buildDecls(f.Prms)
	if err != nil {
		return ast.FunctionDef{}, errors.Wrap(err, "params")
	}
	ret, err := buildType(f.RetTyp)
	if err != nil {
		return ast.FunctionDef{}, errors.Wrap(err, "rettyp")
	}
	locals, err := buildDecls(f.Locals)
	if err != nil {
		return ast.FunctionDef{}, errors.Wrap(err, "locals")
	}
	body, err := buildStmtsList(f.Stmts)
	if err != nil {
		return ast.FunctionDef{}, errors.Wrap(err, "stmts")
	}
	return ast.FunctionDef{Name: f.Name, Params: params, Ret: ret, Locals: locals, Body: body}, nil
}
