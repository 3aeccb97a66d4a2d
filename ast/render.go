package ast

import (
	"fmt"
	"strings"
)

// ExprString renders expr back into source-like syntax, for embedding in
// diagnostics (spec §4.6). It implements the precedence-aware policy §9
// prefers over the corpus's older parenthesize-everything one: a binary
// operator's operands are only wrapped in parens when the operand's own
// precedence would otherwise be read as binding looser than it actually
// does, mirroring the teacher's showExprWalker (frontend/ast/showExpr.go)
// threading an outer precedence down the recursion.
func ExprString(e Expr) string {
	sb := &strings.Builder{}
	showExpr(sb, e, 0)
	return sb.String()
}

// PlaceString renders a Place back into source-like syntax.
func PlaceString(p Place) string {
	sb := &strings.Builder{}
	showPlace(sb, p)
	return sb.String()
}

// precedence levels, lowest to highest. Atoms (literals, places, calls,
// new) bind tighter than any operator so they never need parens on their
// own account.
const (
	precSelect = 1
	precOr     = 2
	precAnd    = 3
	precEq     = 4
	precRel    = 5
	precAdd    = 6
	precMul    = 7
	precUnary  = 8
	precAtom   = 9
)

func binOpPrec(op BinOp) int {
	switch op {
	case Or:
		return precOr
	case And:
		return precAnd
	case OpEq, NotEq:
		return precEq
	case Lt, Lte, Gt, Gte:
		return precRel
	case Add, Sub:
		return precAdd
	case Mul, Div:
		return precMul
	default:
		return precAtom
	}
}

func exprPrec(e Expr) int {
	switch n := e.(type) {
	case *BinOpExpr:
		return binOpPrec(n.Op)
	case *UnOpExpr:
		return precUnary
	case *Select:
		return precSelect
	default:
		return precAtom
	}
}

func showExpr(sb *strings.Builder, e Expr, minPrec int) {
	if e == nil {
		sb.WriteString("<nil>")
		return
	}
	needParens := exprPrec(e) < minPrec
	if needParens {
		sb.WriteByte('(')
	}
	switch n := e.(type) {
	case *Num:
		fmt.Fprintf(sb, "%d", n.N)
	case *NilLit:
		sb.WriteString("nil")
	case *Val:
		showPlace(sb, n.Place)
	case *UnOpExpr:
		sb.WriteString(n.Op.String())
		showExpr(sb, n.X, precUnary)
	case *BinOpExpr:
		prec := binOpPrec(n.Op)
		showExpr(sb, n.L, prec)
		sb.WriteByte(' ')
		sb.WriteString(n.Op.String())
		sb.WriteByte(' ')
		// the right operand is rendered at prec+1 so that, eg, `a - (b - c)`
		// is never printed as the ambiguous `a - b - c`
		showExpr(sb, n.R, prec+1)
	case *Select:
		sb.WriteString("select(")
		showExpr(sb, n.Guard, 0)
		sb.WriteString(", ")
		showExpr(sb, n.True, 0)
		sb.WriteString(", ")
		showExpr(sb, n.False, 0)
		sb.WriteByte(')')
	case *NewSingle:
		fmt.Fprintf(sb, "new %s", n.T)
	case *NewArray:
		fmt.Fprintf(sb, "new %s[", n.T)
		showExpr(sb, n.N, 0)
		sb.WriteByte(']')
	case *CallExp:
		showFunCall(sb, n.Call)
	default:
		fmt.Fprintf(sb, "<unknown expr %T>", n)
	}
	if needParens {
		sb.WriteByte(')')
	}
}

func showPlace(sb *strings.Builder, p Place) {
	if p == nil {
		sb.WriteString("<nil>")
		return
	}
	switch n := p.(type) {
	case *Id:
		sb.WriteString(n.Name)
	case *Deref:
		sb.WriteByte('*')
		showExpr(sb, n.Expr, precUnary)
	case *ArrayAccess:
		showExpr(sb, n.Array, precAtom)
		sb.WriteByte('[')
		showExpr(sb, n.Index, 0)
		sb.WriteByte(']')
	case *FieldAccess:
		showExpr(sb, n.Expr, precAtom)
		sb.WriteByte('.')
		sb.WriteString(n.Field)
	default:
		fmt.Fprintf(sb, "<unknown place %T>", n)
	}
}

func showFunCall(sb *strings.Builder, fc FunCall) {
	showExpr(sb, fc.Callee, precAtom)
	sb.WriteByte('(')
	for i, arg := range fc.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		showExpr(sb, arg, 0)
	}
	sb.WriteByte(')')
}

// StmtString renders a single statement (not recursively into nested
// blocks) for diagnostics that need to name an offending statement, eg
// `p = a`. It deliberately does not descend into If/While bodies.
func StmtString(s Stmt) string {
	sb := &strings.Builder{}
	switch n := s.(type) {
	case *Assign:
		showPlace(sb, n.Place)
		sb.WriteString(" = ")
		showExpr(sb, n.Value, 0)
	case *CallStmt:
		showFunCall(sb, n.Call)
	case *Return:
		sb.WriteString("return ")
		showExpr(sb, n.Value, 0)
	case *Break:
		sb.WriteString("break")
	case *Continue:
		sb.WriteString("continue")
	case *If:
		sb.WriteString("if (")
		showExpr(sb, n.Guard, 0)
		sb.WriteString(") {...}")
	case *While:
		sb.WriteString("while (")
		showExpr(sb, n.Guard, 0)
		sb.WriteString(") {...}")
	case *Stmts:
		sb.WriteString("{...}")
	default:
		fmt.Fprintf(sb, "<unknown stmt %T>", n)
	}
	return sb.String()
}
