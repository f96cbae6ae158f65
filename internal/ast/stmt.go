package ast

import (
	"oxjs/internal/source"
)

type (
	// LetStmt is let [mut] pat [: ty] = init;
	LetStmt struct {
		Sp   source.Span
		Pat  Pat
		Ty   *TypeRef // nil when unannotated
		Init Expr     // nil for a declaration without initializer
	}

	// ExprStmt is an expression in statement position. Semi records
	// whether a trailing semicolon was present: the final statement of a
	// block without one carries the block's value.
	ExprStmt struct {
		Sp   source.Span
		X    Expr
		Semi bool
	}

	// WhileStmt is while cond { body } or while let pat = expr { body }.
	WhileStmt struct {
		Sp   source.Span
		Cond Expr
		Let  *LetCond
		Body *BlockExpr
	}

	// ForStmt is for pat in iter { body }.
	ForStmt struct {
		Sp   source.Span
		Pat  Pat
		Iter Expr
		Body *BlockExpr
	}

	// LoopStmt is loop { body }.
	LoopStmt struct {
		Sp   source.Span
		Body *BlockExpr
	}

	// ItemStmt is a nested item declaration inside a block.
	ItemStmt struct {
		Sp   source.Span
		Item Item
	}
)

func (s *LetStmt) Span() source.Span   { return s.Sp }
func (s *ExprStmt) Span() source.Span  { return s.Sp }
func (s *WhileStmt) Span() source.Span { return s.Sp }
func (s *ForStmt) Span() source.Span   { return s.Sp }
func (s *LoopStmt) Span() source.Span  { return s.Sp }
func (s *ItemStmt) Span() source.Span  { return s.Sp }

func (*LetStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()  {}
func (*WhileStmt) stmtNode() {}
func (*ForStmt) stmtNode()   {}
func (*LoopStmt) stmtNode()  {}
func (*ItemStmt) stmtNode()  {}
