package check

import (
	"github.com/clite-lang/clitec/ast"
	"github.com/clite-lang/clitec/internal/log"
)

var exprLog = log.Section("check/expr")

// CheckExpr implements the per-variant rules of spec §4.2 for every
// Expr node, returning the derived type or a *TypeError naming the
// offending subterm rendered back to source-like syntax.
func CheckExpr(env Env, e ast.Expr) (ast.Type, error) {
	switch n := e.(type) {
	case *ast.Val:
		return CheckPlace(env, n.Place)

	case *ast.Num:
		if n.N < 0 {
			return nil, newTypeError(CodeNegativeLiteral, "negative numeric literal '%s'", ast.ExprString(e))
		}
		return ast.Int{}, nil

	case *ast.NilLit:
		return ast.Nil{}, nil

	case *ast.Select:
		guardT, err := CheckExpr(env, n.Guard)
		if err != nil {
			return nil, err
		}
		if !ast.Eq(guardT, ast.Int{}) {
			return nil, newTypeError(CodeGuardNotInt, "guard of '%s' has type '%s', expected 'int'", ast.ExprString(e), guardT)
		}
		trueT, err := CheckExpr(env, n.True)
		if err != nil {
			return nil, err
		}
		falseT, err := CheckExpr(env, n.False)
		if err != nil {
			return nil, err
		}
		if !ast.Eq(trueT, falseT) {
			return nil, newTypeError(CodeBranchMismatch, "incompatible types '%s' vs '%s' in select expression '%s'", trueT, falseT, ast.ExprString(e))
		}
		return ast.PickNonNil(trueT, falseT), nil

	case *ast.UnOpExpr:
		xT, err := CheckExpr(env, n.X)
		if err != nil {
			return nil, err
		}
		if !ast.Eq(xT, ast.Int{}) {
			return nil, newTypeError(CodeUnaryOperandNotInt, "operand of '%s' has type '%s', expected 'int'", ast.ExprString(e), xT)
		}
		return ast.Int{}, nil

	case *ast.BinOpExpr:
		return checkBinOp(env, n)

	case *ast.NewSingle:
		if ast.IsNil(n.T) {
			return nil, newTypeError(CodeNewInvalidType, "cannot allocate a value of type 'nil' in 'new %s'", n.T)
		}
		if _, isFn := n.T.(ast.Fn); isFn {
			return nil, newTypeError(CodeNewInvalidType, "cannot allocate a value of function type '%s'", n.T)
		}
		if s, ok := n.T.(ast.Struct); ok {
			if _, ok := LookupDelta(env.Delta, s.Name); !ok {
				return nil, newTypeError(CodeUnknownStruct, "struct '%s' does not exist in this scope", s.Name)
			}
		}
		return ast.Ptr{Elem: n.T}, nil

	case *ast.NewArray:
		sizeT, err := CheckExpr(env, n.N)
		if err != nil {
			return nil, err
		}
		if !ast.Eq(sizeT, ast.Int{}) {
			return nil, newTypeError(CodeNewArraySizeNotInt, "array size in '%s' has type '%s', expected 'int'", ast.ExprString(e), sizeT)
		}
		if ast.IsNil(n.T) || ast.IsStructOrFn(n.T) {
			return nil, newTypeError(CodeNewInvalidType, "cannot allocate an array of type '%s'", n.T)
		}
		return ast.Array{Elem: n.T}, nil

	case *ast.CallExp:
		return checkFunCall(env, n.Call)

	default:
		exprLog.Debug("unreachable expr variant", "type", e)
		return nil, newTypeError(CodeUnknown, "internal error: unrecognised expression node %T", e)
	}
}

func checkBinOp(env Env, n *ast.BinOpExpr) (ast.Type, error) {
	lT, err := CheckExpr(env, n.L)
	if err != nil {
		return nil, err
	}
	rT, err := CheckExpr(env, n.R)
	if err != nil {
		return nil, err
	}

	if n.Op.IsComparison() {
		if !ast.Eq(lT, rT) {
			return nil, newTypeError(CodeEqMismatch, "incompatible types '%s' vs '%s' for '%s'", lT, rT, ast.ExprString(n))
		}
		if ast.IsStructOrFn(lT) || ast.IsStructOrFn(rT) {
			return nil, newTypeError(CodeEqOperandInvalid, "operands of '%s' may not have struct or function type", ast.ExprString(n))
		}
		return ast.Int{}, nil
	}

	if !ast.Eq(lT, ast.Int{}) {
		return nil, newTypeError(CodeBinOperandNotInt, "left operand of '%s' has type '%s', expected 'int'", ast.ExprString(n), lT)
	}
	if !ast.Eq(rT, ast.Int{}) {
		return nil, newTypeError(CodeBinOperandNotInt, "right operand of '%s' has type '%s', expected 'int'", ast.ExprString(n), rT)
	}
	return ast.Int{}, nil
}

// CheckPlace implements spec §4.2's rules for the Place hierarchy: Id,
// Deref, ArrayAccess, FieldAccess.
func CheckPlace(env Env, p ast.Place) (ast.Type, error) {
	switch n := p.(type) {
	case *ast.Id:
		t, ok := LookupGamma(env.Gamma, n.Name)
		if !ok {
			return nil, newTypeError(CodeUndefinedID, "id '%s' does not exist in this scope", n.Name)
		}
		return t, nil

	case *ast.Deref:
		t, err := CheckExpr(env, n.Expr)
		if err != nil {
			return nil, err
		}
		ptr, ok := t.(ast.Ptr)
		if !ok {
			return nil, newTypeError(CodeNotPointer, "cannot dereference '%s' of type '%s', expected a pointer", ast.ExprString(n.Expr), t)
		}
		return ptr.Elem, nil

	case *ast.ArrayAccess:
		idxT, err := CheckExpr(env, n.Index)
		if err != nil {
			return nil, err
		}
		if !ast.Eq(idxT, ast.Int{}) {
			return nil, newTypeError(CodeIndexNotInt, "index of '%s' has type '%s', expected 'int'", ast.PlaceString(n), idxT)
		}
		arrT, err := CheckExpr(env, n.Array)
		if err != nil {
			return nil, err
		}
		arr, ok := arrT.(ast.Array)
		if !ok {
			return nil, newTypeError(CodeNotArray, "cannot index '%s' of type '%s', expected an array", ast.ExprString(n.Array), arrT)
		}
		return arr.Elem, nil

	case *ast.FieldAccess:
		exprT, err := CheckExpr(env, n.Expr)
		if err != nil {
			return nil, err
		}
		ptr, ok := exprT.(ast.Ptr)
		if !ok {
			return nil, newTypeError(CodeNotStructPointer, "cannot access field '%s' on '%s' of type '%s', expected a pointer to a struct", n.Field, ast.ExprString(n.Expr), exprT)
		}
		s, ok := ptr.Elem.(ast.Struct)
		if !ok {
			return nil, newTypeError(CodeNotStructPointer, "cannot access field '%s' on '%s' of type '%s', expected a pointer to a struct", n.Field, ast.ExprString(n.Expr), exprT)
		}
		fieldT, ok := LookupField(env.Delta, s.Name, n.Field)
		if !ok {
			if _, structExists := LookupDelta(env.Delta, s.Name); !structExists {
				return nil, newTypeError(CodeUnknownStruct, "struct '%s' does not exist in this scope", s.Name)
			}
			return nil, newTypeError(CodeUnknownField, "struct '%s' has no field named '%s'", s.Name, n.Field)
		}
		return fieldT, nil

	default:
		exprLog.Debug("unreachable place variant", "type", p)
		return nil, newTypeError(CodeUnknown, "internal error: unrecognised place node %T", p)
	}
}

// checkFunCall implements the call rule of spec §4.2: a call to `main` is
// rejected before its type is even looked up; otherwise the callee's type
// must be either Fn (an extern) or Ptr(Fn) (an internal function or a
// function-valued place), and each argument must be Eq-compatible with
// the corresponding parameter.
func checkFunCall(env Env, fc ast.FunCall) (ast.Type, error) {
	if isMainReference(fc.Callee) {
		return nil, newTypeError(CodeCallMain, "trying to call 'main'")
	}

	calleeT, err := CheckExpr(env, fc.Callee)
	if err != nil {
		return nil, err
	}

	fn, ok := asFn(calleeT)
	if !ok {
		return nil, newTypeError(CodeNotCallable, "'%s' of type '%s' is not callable", ast.ExprString(fc.Callee), calleeT)
	}

	if len(fc.Args) != len(fn.Params) {
		return nil, newTypeError(CodeArgCount, "call to '%s' takes %d argument(s), got %d", ast.ExprString(fc.Callee), len(fn.Params), len(fc.Args))
	}

	for i, arg := range fc.Args {
		argT, err := CheckExpr(env, arg)
		if err != nil {
			return nil, err
		}
		if !ast.Eq(argT, fn.Params[i]) {
			return nil, newTypeError(CodeArgType, "argument %d of call to '%s' has type '%s', expected '%s'", i+1, ast.ExprString(fc.Callee), argT, fn.Params[i])
		}
	}

	return fn.Ret, nil
}

func isMainReference(callee ast.Expr) bool {
	val, ok := callee.(*ast.Val)
	if !ok {
		return false
	}
	id, ok := val.Place.(*ast.Id)
	return ok && id.Name == "main"
}

// asFn extracts a Fn signature either directly (the extern case) or
// through one level of Ptr (the internal-function or function-pointer
// case), per spec §4.2's call rule.
func asFn(t ast.Type) (ast.Fn, bool) {
	if fn, ok := t.(ast.Fn); ok {
		return fn, true
	}
	if ptr, ok := t.(ast.Ptr); ok {
		if fn, ok := ptr.Elem.(ast.Fn); ok {
			return fn, true
		}
	}
	return ast.Fn{}, false
}
