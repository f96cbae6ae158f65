// Package ast defines the syntax tree produced by the parser.
// The node families are closed: every Expr, Stmt, Pat, and Item
// implementation lives in this package, and consumers switch over the
// concrete types.
package ast

import (
	"oxjs/internal/source"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Span() source.Span
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Pat is implemented by all pattern nodes.
type Pat interface {
	Node
	patNode()
}

// Item is implemented by all top-level declaration nodes.
type Item interface {
	Node
	itemNode()
}

// File is the root of a parsed translation unit.
type File struct {
	FileID source.FileID
	Items  []Item
}

func (f *File) Span() source.Span {
	sp := source.Span{File: f.FileID}
	for _, it := range f.Items {
		sp = source.Join(sp, it.Span())
	}
	return sp
}
