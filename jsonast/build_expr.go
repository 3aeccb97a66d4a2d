package jsonast

import (
	"encoding/json"

	"github.com/clite-lang/clitec/ast"
	"github.com/pkg/errors"
)

var unOpNames = map[string]ast.UnOp{
	"Neg": ast.Neg,
	"Not": ast.Not,
}

var binOpNames = map[string]ast.BinOp{
	"Add":   ast.Add,
	"Sub":   ast.Sub,
	"Mul":   ast.Mul,
	"Div":   ast.Div,
	"And":   ast.And,
	"Or":    ast.Or,
	"Eq":    ast.OpEq,
	"NotEq": ast.NotEq,
	"Lt":    ast.Lt,
	"Lte":   ast.Lte,
	"Gt":    ast.Gt,
	"Gte":   ast.Gte,
}

// buildExpr decodes an Expression per spec §6.1. A tag that names one of
// the four Place constructors is read as a Place and wrapped in a Val,
// so an l-value read never needs its own explicit "Val" wrapper in the
// common case; "Val" itself is kept for the cases that spell it out
// explicitly.
func buildExpr(data json.RawMessage) (ast.Expr, error) {
	key, val, err := decodeSingleKeyObject(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding expression")
	}

	if placeTags[key] {
		p, err := buildPlaceFromTag(key, val)
		if err != nil {
			return nil, err
		}
		return &ast.Val{Place: p}, nil
	}

	switch key {
	case "Val":
		p, err := buildPlace(val)
		if err != nil {
			return nil, errors.Wrap(err, "Val")
		}
		return &ast.Val{Place: p}, nil

	case "Num":
		var n int
		if err := json.Unmarshal(val, &n); err != nil {
			return nil, errors.Wrap(err, "Num")
		}
		return &ast.Num{N: n}, nil

	case "Nil":
		return &ast.NilLit{}, nil

	case "Select":
		var shape selectJSON
		if err := json.Unmarshal(val, &shape); err != nil {
			return nil, errors.Wrap(err, "Select shape")
		}
		guard, err := buildExpr(shape.Guard)
		if err != nil {
			return nil, errors.Wrap(err, "Select guard")
		}
		tt, err := buildExpr(shape.Tt)
		if err != nil {
			return nil, errors.Wrap(err, "Select tt")
		}
		ff, err := buildExpr(shape.Ff)
		if err != nil {
			return nil, errors.Wrap(err, "Select ff")
		}
		return &ast.Select{Guard: guard, True: tt, False: ff}, nil

	case "UnOp":
		var parts [2]json.RawMessage
		if err := json.Unmarshal(val, &parts); err != nil {
			return nil, errors.Wrap(err, "UnOp shape, expected [op, operand]")
		}
		var opName string
		if err := json.Unmarshal(parts[0], &opName); err != nil {
			return nil, errors.Wrap(err, "UnOp operator name")
		}
		op, ok := unOpNames[opName]
		if !ok {
			return nil, errors.Errorf("unknown unary operator %q", opName)
		}
		x, err := buildExpr(parts[1])
		if err != nil {
			return nil, errors.Wrap(err, "UnOp operand")
		}
		return &ast.UnOpExpr{Op: op, X: x}, nil

	case "BinOp":
		var shape binOpJSON
		if err := json.Unmarshal(val, &shape); err != nil {
			return nil, errors.Wrap(err, "BinOp shape")
		}
		op, ok := binOpNames[shape.Op]
		if !ok {
			return nil, errors.Errorf("unknown binary operator %q", shape.Op)
		}
		l, err := buildExpr(shape.Left)
		if err != nil {
			return nil, errors.Wrap(err, "BinOp left")
		}
		r, err := buildExpr(shape.Right)
		if err != nil {
			return nil, errors.Wrap(err, "BinOp right")
		}
		return &ast.BinOpExpr{Op: op, L: l, R: r}, nil

	case "NewSingle":
		t, err := buildType(val)
		if err != nil {
			return nil, errors.Wrap(err, "NewSingle type")
		}
		return &ast.NewSingle{T: t}, nil

	case "NewArray":
		var parts [2]json.RawMessage
		if err := json.Unmarshal(val, &parts); err != nil {
			return nil, errors.Wrap(err, "NewArray shape, expected [type, size]")
		}
		t, err := buildType(parts[0])
		if err != nil {
			return nil, errors.Wrap(err, "NewArray type")
		}
		n, err := buildExpr(parts[1])
		if err != nil {
			return nil, errors.Wrap(err, "NewArray size")
		}
		return &ast.NewArray{T: t, N: n}, nil

	case "Call":
		fc, err := buildFunCall(val)
		if err != nil {
			return nil, errors.Wrap(err, "Call")
		}
		return &ast.CallExp{Call: fc}, nil

	default:
		return nil, errors.Errorf("unknown expression tag %q", key)
	}
}

func buildFunCall(data json.RawMessage) (ast.FunCall, error) {
	var shape funCallJSON
	if err := json.Unmarshal(data, &shape); err != nil {
		return ast.FunCall{}, errors.Wrap(err, "FunCall shape")
	}
	callee, err := buildExpr(shape.Callee)
	if err != nil {
		return ast.FunCall{}, errors.Wrap(err, "FunCall callee")
	}
	args := make([]ast.Expr, len(shape.Args))
	for i, a := range shape.Args {
		arg, err := buildExpr(a)
		if err != nil {
			return ast.FunCall{}, errors.Wrapf(err, "FunCall arg %d", i)
		}
		args[i] = arg
	}
	return ast.FunCall{Callee: callee, Args: args}, nil
}
