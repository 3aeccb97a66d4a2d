package check

import (
	"github.com/benbjohnson/immutable"
	"github.com/clite-lang/clitec/ast"
)

// Gamma is the value-scope environment, identifier to type (spec §3). It
// is a persistent map from github.com/benbjohnson/immutable rather than a
// plain Go map: extending it with a function's parameters and locals
// (ExtendGamma) returns a new value that shares structure with its
// parent, which is what spec §5 means by "Γ′ is produced by
// value-copying the global Γ and extending it" - the extension can never
// be observed by, or leak into, the caller's Γ.
type Gamma = *immutable.Map[string, ast.Type]

// Delta is the type-scope environment, struct name to field environment
// (spec §3). It is built once per program and never extended afterwards.
type Delta = *immutable.Map[string, *immutable.Map[string, ast.Type]]

func newStringMap[V any]() *immutable.Map[string, V] {
	return immutable.NewMap[string, V](immutable.NewHasher(""))
}

// NewGamma returns an empty Gamma.
func NewGamma() Gamma {
	return newStringMap[ast.Type]()
}

// ExtendGamma returns a new Gamma with name bound to t, leaving g
// unmodified.
func ExtendGamma(g Gamma, name string, t ast.Type) Gamma {
	return g.Set(name, t)
}

// ExtendGammaAll folds ExtendGamma over decls, in order, so a later decl
// shadows an earlier one of the same name - which callers must have
// already rejected as a duplicate-name error before reaching here.
func ExtendGammaAll(g Gamma, decls []ast.Decl) Gamma {
	for _, d := range decls {
		g = ExtendGamma(g, d.Name, d.Type)
	}
	return g
}

// LookupGamma returns the type bound to name, if any.
func LookupGamma(g Gamma, name string) (ast.Type, bool) {
	return g.Get(name)
}

// NewDelta returns an empty Delta.
func NewDelta() Delta {
	return newStringMap[*immutable.Map[string, ast.Type]]()
}

// LookupDelta returns the field environment for the named struct, if any.
func LookupDelta(d Delta, structName string) (*immutable.Map[string, ast.Type], bool) {
	return d.Get(structName)
}

// LookupField returns the type of field in struct structName.
func LookupField(d Delta, structName, field string) (ast.Type, bool) {
	fields, ok := LookupDelta(d, structName)
	if !ok {
		return nil, false
	}
	return fields.Get(field)
}

// Env bundles the two read-only environments threaded through every
// expression and place rule.
type Env struct {
	Gamma Gamma
	Delta Delta
}
