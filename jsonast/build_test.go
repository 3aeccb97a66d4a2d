package jsonast

import (
	"testing"

	"github.com/clite-lang/clitec/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTypePrimitives(t *testing.T) {
	intT, err := buildType([]byte(`"Int"`))
	require.NoError(t, err)
	assert.Equal(t, ast.Int{}, intT)

	nilT, err := buildType([]byte(`"Nil"`))
	require.NoError(t, err)
	assert.Equal(t, ast.Nil{}, nilT)
}

func TestBuildTypeCompound(t *testing.T) {
	ptrT, err := buildType([]byte(`{"Ptr":"Int"}`))
	require.NoError(t, err)
	assert.Equal(t, ast.Ptr{Elem: ast.Int{}}, ptrT)

	arrT, err := buildType([]byte(`{"Array":{"Struct":"Point"}}`))
	require.NoError(t, err)
	assert.Equal(t, ast.Array{Elem: ast.Struct{Name: "Point"}}, arrT)

	fnT, err := buildType([]byte(`{"Fn":[["Int","Int"],"Int"]}`))
	require.NoError(t, err)
	assert.Equal(t, ast.Fn{Params: []ast.Type{ast.Int{}, ast.Int{}}, Ret: ast.Int{}}, fnT)
}

func TestBuildTypeUnknownTag(t *testing.T) {
	_, err := buildType([]byte(`"Float"`))
	assert.Error(t, err)

	_, err = buildType([]byte(`{"Vector":"Int"}`))
	assert.Error(t, err)
}

func TestBuildExprImplicitValWrap(t *testing.T) {
	e, err := buildExpr([]byte(`{"Id":"x"}`))
	require.NoError(t, err)
	val, ok := e.(*ast.Val)
	require.True(t, ok)
	id, ok := val.Place.(*ast.Id)
	require.True(t, ok)
	assert.Equal(t, "x", id.Name)
}

func TestBuildExprExplicitVal(t *testing.T) {
	e, err := buildExpr([]byte(`{"Val":{"Id":"x"}}`))
	require.NoError(t, err)
	val, ok := e.(*ast.Val)
	require.True(t, ok)
	assert.Equal(t, &ast.Id{Name: "x"}, val.Place)
}

func TestBuildExprNum(t *testing.T) {
	e, err := buildExpr([]byte(`{"Num":42}`))
	require.NoError(t, err)
	assert.Equal(t, &ast.Num{N: 42}, e)
}

func TestBuildExprUnOp(t *testing.T) {
	e, err := buildExpr([]byte(`{"UnOp":["Neg",{"Num":1}]}`))
	require.NoError(t, err)
	unop, ok := e.(*ast.UnOpExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Neg, unop.Op)
	assert.Equal(t, &ast.Num{N: 1}, unop.X)
}

func TestBuildExprBinOp(t *testing.T) {
	e, err := buildExpr([]byte(`{"BinOp":{"op":"Add","left":{"Num":1},"right":{"Num":2}}}`))
	require.NoError(t, err)
	binop, ok := e.(*ast.BinOpExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Add, binop.Op)
}

func TestBuildExprUnknownOperator(t *testing.T) {
	_, err := buildExpr([]byte(`{"BinOp":{"op":"Xor","left":{"Num":1},"right":{"Num":2}}}`))
	assert.Error(t, err)
}

func TestBuildExprNewArray(t *testing.T) {
	e, err := buildExpr([]byte(`{"NewArray":["Int",{"Num":10}]}`))
	require.NoError(t, err)
	n, ok := e.(*ast.NewArray)
	require.True(t, ok)
	assert.Equal(t, ast.Int{}, n.T)
	assert.Equal(t, &ast.Num{N: 10}, n.N)
}

func TestBuildExprCall(t *testing.T) {
	e, err := buildExpr([]byte(`{"Call":{"callee":{"Id":"f"},"args":[{"Num":1},{"Num":2}]}}`))
	require.NoError(t, err)
	call, ok := e.(*ast.CallExp)
	require.True(t, ok)
	assert.Len(t, call.Call.Args, 2)
}

func TestBuildPlaceArrayAccess(t *testing.T) {
	p, err := buildPlace([]byte(`{"ArrayAccess":{"array":{"Id":"a"},"idx":{"Num":0}}}`))
	require.NoError(t, err)
	access, ok := p.(*ast.ArrayAccess)
	require.True(t, ok)
	assert.Equal(t, &ast.Val{Place: &ast.Id{Name: "a"}}, access.Array)
}

func TestBuildPlaceFieldAccess(t *testing.T) {
	p, err := buildPlace([]byte(`{"FieldAccess":{"ptr":{"Id":"p"},"field":"x"}}`))
	require.NoError(t, err)
	fa, ok := p.(*ast.FieldAccess)
	require.True(t, ok)
	assert.Equal(t, "x", fa.Field)
}

func TestBuildStmtImplicitArrayIsStmts(t *testing.T) {
	s, err := buildStmt([]byte(`[{"Call":{"callee":{"Id":"f"},"args":[]}}]`))
	require.NoError(t, err)
	stmts, ok := s.(*ast.Stmts)
	require.True(t, ok)
	assert.Len(t, stmts.List, 1)
}

func TestBuildStmtBreakContinue(t *testing.T) {
	brk, err := buildStmt([]byte(`"Break"`))
	require.NoError(t, err)
	assert.IsType(t, &ast.Break{}, brk)

	cont, err := buildStmt([]byte(`"Continue"`))
	require.NoError(t, err)
	assert.IsType(t, &ast.Continue{}, cont)
}

func TestBuildStmtReturnNull(t *testing.T) {
	s, err := buildStmt([]byte(`{"Return":null}`))
	require.NoError(t, err)
	ret, ok := s.(*ast.Return)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestBuildStmtIfElseAbsentAsNullOrEmptyArray(t *testing.T) {
	withNull, err := buildStmt([]byte(`{"If":{"guard":{"Num":1},"tt":["Break"],"ff":null}}`))
	require.NoError(t, err)
	ifNull, ok := withNull.(*ast.If)
	require.True(t, ok)
	assert.Nil(t, ifNull.Else)

	withEmpty, err := buildStmt([]byte(`{"If":{"guard":{"Num":1},"tt":["Break"],"ff":[]}}`))
	require.NoError(t, err)
	ifEmpty, ok := withEmpty.(*ast.If)
	require.True(t, ok)
	assert.Nil(t, ifEmpty.Else)
}

func TestBuildStmtIfWithElse(t *testing.T) {
	s, err := buildStmt([]byte(`{"If":{"guard":{"Num":1},"tt":["Break"],"ff":["Continue"]}}`))
	require.NoError(t, err)
	ifStmt, ok := s.(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Else)
}

func TestBuildStmtWhile(t *testing.T) {
	s, err := buildStmt([]byte(`{"While":[{"Num":1},["Break"]]}`))
	require.NoError(t, err)
	w, ok := s.(*ast.While)
	require.True(t, ok)
	assert.Equal(t, &ast.Num{N: 1}, w.Guard)
}

func TestBuildStmtAssign(t *testing.T) {
	s, err := buildStmt([]byte(`{"Assign":[{"Id":"x"},{"Num":1}]}`))
	require.NoError(t, err)
	assign, ok := s.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, &ast.Id{Name: "x"}, assign.Place)
}

func TestBuildStmtUnknownTag(t *testing.T) {
	_, err := buildStmt([]byte(`{"Goto":"label"}`))
	assert.Error(t, err)
}

func TestBuildFullProgram(t *testing.T) {
	src := []byte(`{
		"structs": [
			{"name": "Point", "fields": [{"name": "x", "typ": "Int"}, {"name": "y", "typ": "Int"}]}
		],
		"externs": [
			{"name": "puti", "typ": {"Fn": [["Int"], "Nil"]}}
		],
		"functions": [
			{
				"name": "main",
				"prms": [],
				"rettyp": "Int",
				"locals": [],
				"stmts": [
					{"Return": {"Num": 0}}
				]
			}
		]
	}`)

	prog, err := Build(src)
	require.NoError(t, err)
	require.Len(t, prog.Structs, 1)
	require.Len(t, prog.Externs, 1)
	require.Len(t, prog.Functions, 1)
	assert.Equal(t, "main", prog.Functions[0].Name)
	assert.NotNil(t, prog.Functions[0].Body)
	assert.Len(t, prog.Functions[0].Body.List, 1)
}

func TestBuildMalformedJSONWrapsError(t *testing.T) {
	_, err := Build([]byte(`not json`))
	assert.Error(t, err)
}

func TestBuildExternMustBeFn(t *testing.T) {
	_, err := Build([]byte(`{"structs":[],"externs":[{"name":"bad","typ":"Int"}],"functions":[]}`))
	assert.Error(t, err)
}
