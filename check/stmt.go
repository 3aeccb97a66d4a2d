package check

import (
	"github.com/clite-lang/clitec/ast"
	"github.com/clite-lang/clitec/internal/log"
)

var flowLog = log.Section("check/flow")

// FlowCtx threads the context every statement rule needs beyond the two
// read-only environments: the function's declared return type, and
// whether the statement is lexically inside a loop (for Break/Continue).
type FlowCtx struct {
	Env     Env
	RetType ast.Type
	InLoop  bool
}

func (c FlowCtx) withInLoop(inLoop bool) FlowCtx {
	c.InLoop = inLoop
	return c
}

// CheckStmt implements spec §4.3: it type-checks s and returns whether s
// is guaranteed to execute a Return along every completing control-flow
// path ("definitely returns"), per the composition rules in the table:
// Stmts is the disjunction of its children, If is the conjunction of its
// branches (false if there is no else), and While is always false since
// the loop may never execute its body.
func CheckStmt(ctx FlowCtx, s ast.Stmt) (bool, error) {
	switch n := s.(type) {
	case *ast.Stmts:
		acc := false
		for _, sub := range n.List {
			returns, err := CheckStmt(ctx, sub)
			if err != nil {
				return false, err
			}
			acc = acc || returns
		}
		return acc, nil

	case *ast.Assign:
		return checkAssign(ctx.Env, n)

	case *ast.CallStmt:
		_, err := checkFunCall(ctx.Env, n.Call)
		return false, err

	case *ast.If:
		guardT, err := CheckExpr(ctx.Env, n.Guard)
		if err != nil {
			return false, err
		}
		if !ast.Eq(guardT, ast.Int{}) {
			return false, newTypeError(CodeGuardNotInt, "guard of '%s' has type '%s', expected 'int'", ast.StmtString(n), guardT)
		}
		thenReturns, err := CheckStmt(ctx, n.Then)
		if err != nil {
			return false, err
		}
		if n.Else == nil {
			return false, nil
		}
		elseReturns, err := CheckStmt(ctx, n.Else)
		if err != nil {
			return false, err
		}
		return thenReturns && elseReturns, nil

	case *ast.While:
		guardT, err := CheckExpr(ctx.Env, n.Guard)
		if err != nil {
			return false, err
		}
		if !ast.Eq(guardT, ast.Int{}) {
			return false, newTypeError(CodeGuardNotInt, "guard of '%s' has type '%s', expected 'int'", ast.StmtString(n), guardT)
		}
		if _, err := CheckStmt(ctx.withInLoop(true), n.Body); err != nil {
			return false, err
		}
		flowLog.Debug("while body checked; loop itself never counts as returning", "guard", ast.ExprString(n.Guard))
		return false, nil

	case *ast.Return:
		if n.Value == nil {
			return false, newTypeError(CodeReturnMissingExpr, "return without an expression is not supported")
		}
		valueT, err := CheckExpr(ctx.Env, n.Value)
		if err != nil {
			return false, err
		}
		if !ast.Eq(valueT, ctx.RetType) {
			return false, newTypeError(CodeReturnMismatch, "'%s' has type '%s', expected '%s'", ast.StmtString(n), valueT, ctx.RetType)
		}
		return true, nil

	case *ast.Break:
		if !ctx.InLoop {
			return false, newTypeError(CodeBreakOutsideLoop, "'break' outside of a loop")
		}
		return false, nil

	case *ast.Continue:
		if !ctx.InLoop {
			return false, newTypeError(CodeContinueOutsideLoop, "'continue' outside of a loop")
		}
		return false, nil

	default:
		flowLog.Debug("unreachable stmt variant", "type", s)
		return false, newTypeError(CodeUnknown, "internal error: unrecognised statement node %T", s)
	}
}

// checkAssign implements spec §9's resolution of the corpus's
// inconsistent assignment-RHS rule: the l-value's type may not be
// Struct, Fn or Nil, and the RHS is then constrained only by Eq against
// that l-value type (so a Nil RHS is accepted whenever the l-value is a
// pointer or array).
func checkAssign(env Env, n *ast.Assign) (bool, error) {
	placeT, err := CheckPlace(env, n.Place)
	if err != nil {
		return false, err
	}
	if ast.IsStructOrFn(placeT) || ast.IsNil(placeT) {
		return false, newTypeError(CodeAssignLValueType, "cannot assign to '%s' of type '%s'", ast.PlaceString(n.Place), placeT)
	}
	valueT, err := CheckExpr(env, n.Value)
	if err != nil {
		return false, err
	}
	if !ast.Eq(placeT, valueT) {
		return false, newTypeError(CodeAssignMismatch, "incompatible types %s vs %s for assignment '%s'", placeT, valueT, ast.StmtString(n))
	}
	return false, nil
}
