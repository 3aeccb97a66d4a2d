package check

import (
	"github.com/clite-lang/clitec/ast"
	"github.com/clite-lang/clitec/internal/log"
	"github.com/hashicorp/go-set/v2"
)

var programLog = log.Section("check/program")

// CheckProgram implements spec §4.5's program-level check: it builds
// Gamma and Delta, verifies every name-space disjointness invariant from
// spec §3, verifies there is exactly one `main` of the required
// signature, and then checks every struct and every function. It returns
// the first error encountered; there is no multi-error mode (spec §4.7).
func CheckProgram(p *ast.Program) error {
	if err := checkTopLevelNamesDisjoint(p); err != nil {
		return err
	}

	delta := NewDelta()
	for _, s := range p.Structs {
		fields := newStringMap[ast.Type]()
		for _, f := range s.Fields {
			fields = fields.Set(f.Name, f.Type)
		}
		delta = delta.Set(s.Name, fields)
	}

	gamma := NewGamma()
	for _, ext := range p.Externs {
		gamma = ExtendGamma(gamma, ext.Name, ast.Fn{Params: ext.Params, Ret: ext.Ret})
	}
	var mainDef *ast.FunctionDef
	for i := range p.Functions {
		fn := &p.Functions[i]
		if fn.Name == "main" {
			mainDef = fn
			continue
		}
		gamma = ExtendGamma(gamma, fn.Name, ast.Ptr{Elem: ast.Fn{Params: paramTypes(fn.Params), Ret: fn.Ret}})
	}

	if mainDef == nil {
		return newTypeError(CodeMainSignature, "no 'main' function with type '() -> int' exists")
	}
	if len(mainDef.Params) != 0 || !ast.Eq(mainDef.Ret, ast.Int{}) {
		return newTypeError(CodeMainSignature, "no 'main' function with type '() -> int' exists")
	}

	env := Env{Gamma: gamma, Delta: delta}

	for _, s := range p.Structs {
		if err := checkStruct(s); err != nil {
			return err
		}
	}

	for _, fn := range p.Functions {
		if err := checkFunction(env, fn); err != nil {
			return err
		}
	}

	programLog.Debug("program checked successfully", "structs", len(p.Structs), "externs", len(p.Externs), "functions", len(p.Functions))
	return nil
}

func paramTypes(decls []ast.Decl) []ast.Type {
	types := make([]ast.Type, len(decls))
	for i, d := range decls {
		types[i] = d.Type
	}
	return types
}

// checkTopLevelNamesDisjoint enforces spec §3's invariant that struct,
// extern and function names share one namespace with no collisions.
func checkTopLevelNamesDisjoint(p *ast.Program) error {
	names := set.New[string](len(p.Structs) + len(p.Externs) + len(p.Functions))
	for _, s := range p.Structs {
		if !names.Insert(s.Name) {
			return newTypeError(CodeDuplicateName, "name '%s' is declared more than once (struct, extern and function names share one namespace)", s.Name)
		}
	}
	for _, e := range p.Externs {
		if !names.Insert(e.Name) {
			return newTypeError(CodeDuplicateName, "name '%s' is declared more than once (struct, extern and function names share one namespace)", e.Name)
		}
	}
	for _, fn := range p.Functions {
		if !names.Insert(fn.Name) {
			return newTypeError(CodeDuplicateName, "name '%s' is declared more than once (struct, extern and function names share one namespace)", fn.Name)
		}
	}
	return nil
}

// isDisallowedMemberType reports whether t is excluded from struct field,
// parameter and local positions: Nil, Struct, or Fn - spec §4.4/§4.5 both
// state it the same way, so it is shared here rather than duplicated.
func isDisallowedMemberType(t ast.Type) bool {
	return ast.IsNil(t) || ast.IsStructOrFn(t)
}

// checkStruct implements spec §4.4.
func checkStruct(def ast.StructDef) error {
	if len(def.Fields) == 0 {
		return newTypeError(CodeStructEmpty, "struct '%s' must have at least one field", def.Name)
	}
	seen := set.New[string](len(def.Fields))
	for _, f := range def.Fields {
		if !seen.Insert(f.Name) {
			return newTypeError(CodeStructDuplicateField, "struct '%s' has more than one field named '%s'", def.Name, f.Name)
		}
		if isDisallowedMemberType(f.Type) {
			return newTypeError(CodeStructFieldType, "field '%s' of struct '%s' may not have type '%s'", f.Name, def.Name, f.Type)
		}
	}
	return nil
}

// checkFunction implements spec §4.5: it extends Gamma with the
// function's parameters and locals (disjoint from each other, and each
// of an allowed type), then requires the body to definitely return.
func checkFunction(env Env, fn ast.FunctionDef) error {
	seen := set.New[string](len(fn.Params) + len(fn.Locals))
	gamma := env.Gamma
	for _, p := range fn.Params {
		if !seen.Insert(p.Name) {
			return newTypeError(CodeParamLocalDuplicate, "function '%s' has more than one parameter or local named '%s'", fn.Name, p.Name)
		}
		if isDisallowedMemberType(p.Type) {
			return newTypeError(CodeParamLocalType, "parameter '%s' of function '%s' may not have type '%s'", p.Name, fn.Name, p.Type)
		}
		gamma = ExtendGamma(gamma, p.Name, p.Type)
	}
	for _, l := range fn.Locals {
		if !seen.Insert(l.Name) {
			return newTypeError(CodeParamLocalDuplicate, "function '%s' has more than one parameter or local named '%s'", fn.Name, l.Name)
		}
		if isDisallowedMemberType(l.Type) {
			return newTypeError(CodeParamLocalType, "local '%s' of function '%s' may not have type '%s'", l.Name, fn.Name, l.Type)
		}
		gamma = ExtendGamma(gamma, l.Name, l.Type)
	}

	if fn.Body == nil || len(fn.Body.List) == 0 {
		return newTypeError(CodeFunctionMayNotReturn, "function %s may not execute a return", fn.Name)
	}

	ctx := FlowCtx{Env: Env{Gamma: gamma, Delta: env.Delta}, RetType: fn.Ret, InLoop: false}
	returns, err := CheckStmt(ctx, fn.Body)
	if err != nil {
		return err
	}
	if !returns {
		return newTypeError(CodeFunctionMayNotReturn, "function %s may not execute a return", fn.Name)
	}
	return nil
}
