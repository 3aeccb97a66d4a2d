package check

import (
	"testing"

	"github.com/clite-lang/clitec/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envWith(decls ...ast.Decl) Env {
	g := ExtendGammaAll(NewGamma(), decls)
	return Env{Gamma: g, Delta: NewDelta()}
}

func TestCheckExprNumRejectsNegative(t *testing.T) {
	_, err := CheckExpr(envWith(), &ast.Num{N: -1})
	assert.Error(t, err)
}

func TestCheckExprNumNonNegative(t *testing.T) {
	typ, err := CheckExpr(envWith(), ast.NumOf(5))
	require.NoError(t, err)
	assert.Equal(t, ast.Int{}, typ)
}

func TestCheckExprNilLit(t *testing.T) {
	typ, err := CheckExpr(envWith(), ast.NilExpr())
	require.NoError(t, err)
	assert.Equal(t, ast.Nil{}, typ)
}

func TestCheckExprSelectPicksNonNil(t *testing.T) {
	env := envWith(ast.DeclOf("p", ast.TPtr(ast.TInt())))
	sel := ast.SelectOf(ast.NumOf(1), ast.IdExpr("p"), ast.NilExpr())
	typ, err := CheckExpr(env, sel)
	require.NoError(t, err)
	assert.Equal(t, ast.TPtr(ast.TInt()), typ)
}

func TestCheckExprSelectGuardMustBeInt(t *testing.T) {
	env := envWith(ast.DeclOf("p", ast.TPtr(ast.TInt())))
	sel := ast.SelectOf(ast.IdExpr("p"), ast.NumOf(1), ast.NumOf(2))
	_, err := CheckExpr(env, sel)
	assert.Error(t, err)
}

func TestCheckExprSelectBranchMismatch(t *testing.T) {
	env := envWith(ast.DeclOf("p", ast.TPtr(ast.TInt())))
	sel := ast.SelectOf(ast.NumOf(1), ast.IdExpr("p"), ast.NumOf(2))
	_, err := CheckExpr(env, sel)
	assert.Error(t, err)
}

func TestCheckExprUnOpRequiresInt(t *testing.T) {
	_, err := CheckExpr(envWith(), ast.UnOpOf(ast.Neg, ast.NilExpr()))
	assert.Error(t, err)

	typ, err := CheckExpr(envWith(), ast.UnOpOf(ast.Not, ast.NumOf(1)))
	require.NoError(t, err)
	assert.Equal(t, ast.Int{}, typ)
}

func TestCheckExprBinOpArithmeticRequiresInt(t *testing.T) {
	_, err := CheckExpr(envWith(), ast.BinOpOf(ast.Add, ast.NumOf(1), ast.NilExpr()))
	assert.Error(t, err)
}

func TestCheckExprBinOpComparisonAllowsNilPtr(t *testing.T) {
	env := envWith(ast.DeclOf("p", ast.TPtr(ast.TInt())))
	typ, err := CheckExpr(env, ast.BinOpOf(ast.OpEq, ast.IdExpr("p"), ast.NilExpr()))
	require.NoError(t, err)
	assert.Equal(t, ast.Int{}, typ)
}

func TestCheckExprBinOpComparisonRejectsStruct(t *testing.T) {
	env := envWith(ast.DeclOf("s", ast.TStruct("S")))
	_, err := CheckExpr(env, ast.BinOpOf(ast.OpEq, ast.IdExpr("s"), ast.IdExpr("s")))
	assert.Error(t, err)
}

func TestCheckExprBinOpComparisonAllowsPtrToStruct(t *testing.T) {
	env := envWith(ast.DeclOf("s", ast.TPtr(ast.TStruct("S"))))
	typ, err := CheckExpr(env, ast.BinOpOf(ast.OpEq, ast.IdExpr("s"), ast.IdExpr("s")))
	require.NoError(t, err)
	assert.Equal(t, ast.Int{}, typ)
}

func TestCheckExprNewSingleRejectsNilAndFn(t *testing.T) {
	_, err := CheckExpr(envWith(), &ast.NewSingle{T: ast.Nil{}})
	assert.Error(t, err)

	_, err = CheckExpr(envWith(), &ast.NewSingle{T: ast.Fn{Ret: ast.Int{}}})
	assert.Error(t, err)
}

func TestCheckExprNewSingleStructMustExist(t *testing.T) {
	_, err := CheckExpr(envWith(), &ast.NewSingle{T: ast.Struct{Name: "Missing"}})
	assert.Error(t, err)
}

func TestCheckExprNewSingleProducesPtr(t *testing.T) {
	typ, err := CheckExpr(envWith(), &ast.NewSingle{T: ast.Int{}})
	require.NoError(t, err)
	assert.Equal(t, ast.Ptr{Elem: ast.Int{}}, typ)
}

func TestCheckExprNewArraySizeMustBeInt(t *testing.T) {
	_, err := CheckExpr(envWith(), &ast.NewArray{T: ast.Int{}, N: ast.NilExpr()})
	assert.Error(t, err)
}

func TestCheckExprNewArrayProducesArray(t *testing.T) {
	typ, err := CheckExpr(envWith(), &ast.NewArray{T: ast.Int{}, N: ast.NumOf(10)})
	require.NoError(t, err)
	assert.Equal(t, ast.Array{Elem: ast.Int{}}, typ)
}

func TestCheckPlaceIdUndefined(t *testing.T) {
	_, err := CheckPlace(envWith(), ast.IdOf("missing"))
	assert.Error(t, err)
}

func TestCheckPlaceDerefRequiresPtr(t *testing.T) {
	env := envWith(ast.DeclOf("x", ast.TInt()))
	_, err := CheckPlace(env, &ast.Deref{Expr: ast.IdExpr("x")})
	assert.Error(t, err)
}

func TestCheckPlaceDerefOk(t *testing.T) {
	env := envWith(ast.DeclOf("p", ast.TPtr(ast.TInt())))
	typ, err := CheckPlace(env, &ast.Deref{Expr: ast.IdExpr("p")})
	require.NoError(t, err)
	assert.Equal(t, ast.Int{}, typ)
}

func TestCheckPlaceArrayAccessRequiresIntIndex(t *testing.T) {
	env := envWith(ast.DeclOf("a", ast.TArray(ast.TInt())))
	_, err := CheckPlace(env, &ast.ArrayAccess{Array: ast.IdExpr("a"), Index: ast.NilExpr()})
	assert.Error(t, err)
}

func TestCheckPlaceFieldAccess(t *testing.T) {
	delta := NewDelta()
	fields := newStringMap[ast.Type]()
	fields = fields.Set("x", ast.Int{})
	delta = delta.Set("Point", fields)
	env := Env{Gamma: ExtendGamma(NewGamma(), "p", ast.TPtr(ast.TStruct("Point"))), Delta: delta}

	typ, err := CheckPlace(env, &ast.FieldAccess{Expr: ast.IdExpr("p"), Field: "x"})
	require.NoError(t, err)
	assert.Equal(t, ast.Int{}, typ)

	_, err = CheckPlace(env, &ast.FieldAccess{Expr: ast.IdExpr("p"), Field: "missing"})
	assert.Error(t, err)
}

func TestCheckFunCallRejectsMain(t *testing.T) {
	_, err := checkFunCall(envWith(), ast.CallOf(ast.IdExpr("main")))
	assert.Error(t, err)
}

func TestCheckFunCallArgCountAndType(t *testing.T) {
	env := envWith(ast.DeclOf("f", ast.TPtr(ast.TFn(ast.TInt(), ast.TInt()))))
	_, err := checkFunCall(env, ast.CallOf(ast.IdExpr("f")))
	assert.Error(t, err)

	_, err = checkFunCall(env, ast.CallOf(ast.IdExpr("f"), ast.NilExpr()))
	assert.Error(t, err)

	typ, err := checkFunCall(env, ast.CallOf(ast.IdExpr("f"), ast.NumOf(1)))
	require.NoError(t, err)
	assert.Equal(t, ast.Int{}, typ)
}

func TestCheckFunCallExternDirectFn(t *testing.T) {
	env := envWith(ast.DeclOf("puti", ast.TFn(ast.TNil(), ast.TInt())))
	typ, err := checkFunCall(env, ast.CallOf(ast.IdExpr("puti"), ast.NumOf(1)))
	require.NoError(t, err)
	assert.Equal(t, ast.Nil{}, typ)
}
