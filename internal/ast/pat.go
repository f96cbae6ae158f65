package ast

import (
	"oxjs/internal/source"
)

type (
	// IdentPat binds a name: x, mut x, ref x.
	IdentPat struct {
		Sp   source.Span
		Name string
		Mut  bool
	}

	// WildcardPat is the _ pattern.
	WildcardPat struct {
		Sp source.Span
	}

	// LitPat matches a literal value.
	LitPat struct {
		Sp   source.Span
		Kind LitKind
		Text string
	}

	// PathPat matches a unit path: None, Color::Red.
	PathPat struct {
		Sp       source.Span
		Segments []string
	}

	// TupleStructPat matches a tuple variant or newtype: Some(x), Shape::Circle(r).
	TupleStructPat struct {
		Sp       source.Span
		Segments []string
		Elems    []Pat
	}

	// TuplePat matches a plain tuple: (a, b).
	TuplePat struct {
		Sp    source.Span
		Elems []Pat
	}

	// StructFieldPat is one field of a struct pattern.
	StructFieldPat struct {
		Name string
		Pat  Pat // nil for shorthand { x }
	}

	// StructPat matches struct fields: Point { x, y }, Point { x, .. }.
	StructPat struct {
		Sp       source.Span
		Segments []string
		Fields   []StructFieldPat
		Rest     bool // trailing ..
	}

	// RefPat is &pat or &mut pat; the borrow is dropped in the output.
	RefPat struct {
		Sp    source.Span
		Inner Pat
	}

	// OrPat matches any of its alternatives: 1 | 2 | 3.
	OrPat struct {
		Sp   source.Span
		Alts []Pat
	}

	// RangePat matches lo..=hi in a match arm.
	RangePat struct {
		Sp        source.Span
		Lo, Hi    Expr
		Inclusive bool
	}
)

func (p *IdentPat) Span() source.Span       { return p.Sp }
func (p *WildcardPat) Span() source.Span    { return p.Sp }
func (p *LitPat) Span() source.Span         { return p.Sp }
func (p *PathPat) Span() source.Span        { return p.Sp }
func (p *TupleStructPat) Span() source.Span { return p.Sp }
func (p *TuplePat) Span() source.Span       { return p.Sp }
func (p *StructPat) Span() source.Span      { return p.Sp }
func (p *RefPat) Span() source.Span         { return p.Sp }
func (p *OrPat) Span() source.Span          { return p.Sp }
func (p *RangePat) Span() source.Span       { return p.Sp }

func (*IdentPat) patNode()       {}
func (*WildcardPat) patNode()    {}
func (*LitPat) patNode()         {}
func (*PathPat) patNode()        {}
func (*TupleStructPat) patNode() {}
func (*TuplePat) patNode()       {}
func (*StructPat) patNode()      {}
func (*RefPat) patNode()         {}
func (*OrPat) patNode()          {}
func (*RangePat) patNode()       {}
