package jsonast

import (
	"encoding/json"

	"github.com/clite-lang/clitec/ast"
	"github.com/pkg/errors"
)

var placeTags = map[string]bool{
	"Id":          true,
	"Deref":       true,
	"ArrayAccess": true,
	"FieldAccess": true,
}

// buildPlace decodes a Place. Deref's operand, and ArrayAccess/FieldAccess's
// array/pointer operand, are Expressions (spec §6.1: a Place's sub-terms
// are read through the expression grammar, not nested Places), so this
// recurses into buildExpr rather than buildPlace.
func buildPlace(data json.RawMessage) (ast.Place, error) {
	key, val, err := decodeSingleKeyObject(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding place")
	}
	return buildPlaceFromTag(key, val)
}

func buildPlaceFromTag(key string, val json.RawMessage) (ast.Place, error) {
	switch key {
	case "Id":
		var name string
		if err := json.Unmarshal(val, &name); err != nil {
			return nil, errors.Wrap(err, "Id name")
		}
		return &ast.Id{Name: name}, nil

	case "Deref":
		e, err := buildExpr(val)
		if err != nil {
			return nil, errors.Wrap(err, "Deref operand")
		}
		return &ast.Deref{Expr: e}, nil

	case "ArrayAccess":
		var shape arrayAccessJSON
		if err := json.Unmarshal(val, &shape); err != nil {
			return nil, errors.Wrap(err, "ArrayAccess shape")
		}
		arr, err := buildExpr(shape.Array)
		if err != nil {
			return nil, errors.Wrap(err, "ArrayAccess array")
		}
		idx, err := buildExpr(shape.Idx)
		if err != nil {
			return nil, errors.Wrap(err, "ArrayAccess idx")
		}
		return &ast.ArrayAccess{Array: arr, Index: idx}, nil

	case "FieldAccess":
		var shape fieldAccessJSON
		if err := json.Unmarshal(val, &shape); err != nil {
			return nil, errors.Wrap(err, "FieldAccess shape")
		}
		ptr, err := buildExpr(shape.Ptr)
		if err != nil {
			return nil, errors.Wrap(err, "FieldAccess ptr")
		}
		return &ast.FieldAccess{Expr: ptr, Field: shape.Field}, nil

	default:
		return nil, errors.Errorf("unknown place tag %q", key)
	}
}
