package ast

// Stmt is the interface implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// Stmts is a sequence of statements checked strictly left-to-right. A
// function body is always wrapped in exactly one Stmts node by the
// jsonast builder, even when the source program's stmts array is empty.
type Stmts struct {
	List []Stmt
}

func (*Stmts) stmtNode() {}

// Assign is `place = e`.
type Assign struct {
	Place Place
	Value Expr
}

func (*Assign) stmtNode() {}

// CallStmt is a function call used in statement position; its return
// value, if any, is discarded.
type CallStmt struct {
	Call FunCall
}

func (*CallStmt) stmtNode() {}

// If is `if (guard) { then } [else { else }]`. Else is nil when absent.
type If struct {
	Guard Expr
	Then  Stmt
	Else  Stmt
}

func (*If) stmtNode() {}

// While is `while (guard) { body }`.
type While struct {
	Guard Expr
	Body  Stmt
}

func (*While) stmtNode() {}

// Return is `return e`. The source language has no void return (spec §9
// carries this over from the original implementation); Value is nil only
// to represent a malformed `return;` that the checker must reject, never
// a valid construct.
type Return struct {
	Value Expr
}

func (*Return) stmtNode() {}

// Break is `break`, valid only inside a loop.
type Break struct{}

func (*Break) stmtNode() {}

// Continue is `continue`, valid only inside a loop.
type Continue struct{}

func (*Continue) stmtNode() {}
