package jsonast

import (
	"bytes"
	"encoding/json"

	"github.com/clite-lang/clitec/ast"
	"github.com/pkg/errors"
)

// buildStmt decodes a Statement per spec §6.1. Unlike Type/Place/Expression,
// Statement has three distinct JSON shapes at the top level: a bare array
// (an implicit Stmts), a bare string ("Break"/"Continue"), or the usual
// single-key object.
func buildStmt(data json.RawMessage) (ast.Stmt, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty statement")
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, errors.Wrap(err, "statement array")
		}
		return buildStmtsList(items)

	case '"':
		var tag string
		if err := json.Unmarshal(trimmed, &tag); err != nil {
			return nil, errors.Wrap(err, "statement tag")
		}
		switch tag {
		case "Break":
			return &ast.Break{}, nil
		case "Continue":
			return &ast.Continue{}, nil
		default:
			return nil, errors.Errorf("unknown statement tag %q", tag)
		}

	case '{':
		key, val, err := decodeSingleKeyObject(trimmed)
		if err != nil {
			return nil, errors.Wrap(err, "decoding statement")
		}
		return buildStmtFromTag(key, val)

	default:
		return nil, errors.Errorf("unrecognised statement shape starting %q", trimmed[:1])
	}
}

func buildStmtFromTag(key string, val json.RawMessage) (ast.Stmt, error) {
	switch key {
	case "Assign":
		var parts [2]json.RawMessage
		if err := json.Unmarshal(val, &parts); err != nil {
			return nil, errors.Wrap(err, "Assign shape, expected [place, value]")
		}
		place, err := buildPlace(parts[0])
		if err != nil {
			return nil, errors.Wrap(err, "Assign place")
		}
		value, err := buildExpr(parts[1])
		if err != nil {
			return nil, errors.Wrap(err, "Assign value")
		}
		return &ast.Assign{Place: place, Value: value}, nil

	case "Call":
		fc, err := buildFunCall(val)
		if err != nil {
			return nil, errors.Wrap(err, "Call")
		}
		return &ast.CallStmt{Call: fc}, nil

	case "If":
		var shape ifJSON
		if err := json.Unmarshal(val, &shape); err != nil {
			return nil, errors.Wrap(err, "If shape")
		}
		guard, err := buildExpr(shape.Guard)
		if err != nil {
			return nil, errors.Wrap(err, "If guard")
		}
		then, err := buildStmt(shape.Tt)
		if err != nil {
			return nil, errors.Wrap(err, "If tt")
		}
		var els ast.Stmt
		if !isJSONNull(shape.Ff) && !isEmptyJSONArray(shape.Ff) {
			els, err = buildStmt(shape.Ff)
			if err != nil {
				return nil, errors.Wrap(err, "If ff")
			}
		}
		return &ast.If{Guard: guard, Then: then, Else: els}, nil

	case "While":
		var parts [2]json.RawMessage
		if err := json.Unmarshal(val, &parts); err != nil {
			return nil, errors.Wrap(err, "While shape, expected [guard, body]")
		}
		guard, err := buildExpr(parts[0])
		if err != nil {
			return nil, errors.Wrap(err, "While guard")
		}
		body, err := buildStmt(parts[1])
		if err != nil {
			return nil, errors.Wrap(err, "While body")
		}
		return &ast.While{Guard: guard, Body: body}, nil

	case "Return":
		if isJSONNull(val) {
			return &ast.Return{Value: nil}, nil
		}
		value, err := buildExpr(val)
		if err != nil {
			return nil, errors.Wrap(err, "Return value")
		}
		return &ast.Return{Value: value}, nil

	case "Stmts":
		var items []json.RawMessage
		if err := json.Unmarshal(val, &items); err != nil {
			return nil, errors.Wrap(err, "Stmts")
		}
		return buildStmtsList(items)

	default:
		return nil, errors.Errorf("unknown statement tag %q", key)
	}
}

func buildStmtsList(items []json.RawMessage) (*ast.Stmts, error) {
	list := make([]ast.Stmt, len(items))
	for i, item := range items {
		s, err := buildStmt(item)
		if err != nil {
			return nil, errors.Wrapf(err, "statement %d", i)
		}
		list[i] = s
	}
	return &ast.Stmts{List: list}, nil
}
