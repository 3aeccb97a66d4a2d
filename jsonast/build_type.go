package jsonast

import (
	"encoding/json"

	"github.com/clite-lang/clitec/ast"
	"github.com/pkg/errors"
)

// buildType decodes a Type per spec §6.1: either the bare string "Int"
// or "Nil", or a single-key object tagged Struct, Ptr, Array or Fn.
func buildType(data json.RawMessage) (ast.Type, error) {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch tag {
		case "Int":
			return ast.Int{}, nil
		case "Nil":
			return ast.Nil{}, nil
		default:
			return nil, errors.Errorf("unknown type tag %q", tag)
		}
	}

	key, val, err := decodeSingleKeyObject(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding type")
	}

	switch key {
	case "Struct":
		var name string
		if err := json.Unmarshal(val, &name); err != nil {
			return nil, errors.Wrap(err, "Struct type name")
		}
		return ast.Struct{Name: name}, nil

	case "Ptr":
		elem, err := buildType(val)
		if err != nil {
			return nil, errors.Wrap(err, "Ptr element type")
		}
		return ast.Ptr{Elem: elem}, nil

	case "Array":
		elem, err := buildType(val)
		if err != nil {
			return nil, errors.Wrap(err, "Array element type")
		}
		return ast.Array{Elem: elem}, nil

	case "Fn":
		var parts [2]json.RawMessage
		if err := json.Unmarshal(val, &parts); err != nil {
			return nil, errors.Wrap(err, "Fn type shape, expected [params, ret]")
		}
		var paramsRaw []json.RawMessage
		if err := json.Unmarshal(parts[0], &paramsRaw); err != nil {
			return nil, errors.Wrap(err, "Fn params")
		}
		params := make([]ast.Type, len(paramsRaw))
		for i, pr := range paramsRaw {
			t, err := buildType(pr)
			if err != nil {
				return nil, errors.Wrapf(err, "Fn param %d", i)
			}
			params[i] = t
		}
		ret, err := buildType(parts[1])
		if err != nil {
			return nil, errors.Wrap(err, "Fn return type")
		}
		return ast.Fn{Params: params, Ret: ret}, nil

	default:
		return nil, errors.Errorf("unknown type tag %q", key)
	}
}

func buildDecl(d declJSON) (ast.Decl, error) {
	t, err := buildType(d.Typ)
	if err != nil {
		return ast.Decl{}, errors.Wrapf(err, "decl %q", d.Name)
	}
	return ast.Decl{Name: d.Name, Type: t}, nil
}

func buildDecls(ds []declJSON) ([]ast.Decl, error) {
	out := make([]ast.Decl, len(ds))
	for i, d := range ds {
		decl, err := buildDecl(d)
		if err != nil {
			return nil, err
		}
		out[i] = decl
	}
	return out, nil
}
