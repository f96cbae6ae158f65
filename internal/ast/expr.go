package ast

import (
	"oxjs/internal/source"
	"oxjs/internal/token"
)

// LitKind distinguishes the literal expression variants.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitChar
	LitBool
)

type (
	// IdentExpr is a bare identifier reference.
	IdentExpr struct {
		Sp   source.Span
		Name string
	}

	// LitExpr is a literal. Text is the raw source spelling (quotes and
	// escapes preserved for strings and chars).
	LitExpr struct {
		Sp   source.Span
		Kind LitKind
		Text string
	}

	// PathExpr is a :: separated path such as Option::Some or Point::new.
	PathExpr struct {
		Sp       source.Span
		Segments []string
	}

	// UnaryExpr is a prefix operation: -x, !x.
	UnaryExpr struct {
		Sp source.Span
		Op token.Kind
		X  Expr
	}

	// BinaryExpr is an infix operation.
	BinaryExpr struct {
		Sp   source.Span
		Op   token.Kind
		X, Y Expr
	}

	// AssignExpr covers = and the compound assignment operators.
	AssignExpr struct {
		Sp     source.Span
		Op     token.Kind
		Target Expr
		Value  Expr
	}

	// CallExpr is a free or path function call.
	CallExpr struct {
		Sp     source.Span
		Callee Expr
		Args   []Expr
	}

	// MethodCallExpr is recv.method(args).
	MethodCallExpr struct {
		Sp     source.Span
		Recv   Expr
		Method string
		Args   []Expr
	}

	// FieldExpr is recv.field, including tuple indices (pair.0).
	FieldExpr struct {
		Sp   source.Span
		X    Expr
		Name string
	}

	// IndexExpr is recv[index].
	IndexExpr struct {
		Sp    source.Span
		X     Expr
		Index Expr
	}

	// ParenExpr keeps explicit grouping so precedence survives printing.
	ParenExpr struct {
		Sp source.Span
		X  Expr
	}

	// ArrayExpr is [a, b, c] or the repeat form [elem; n].
	ArrayExpr struct {
		Sp     source.Span
		Elems  []Expr
		Repeat Expr // non-nil for the [elem; n] form; Elems[0] is the element
	}

	// TupleExpr is (a, b, ...). A single element with no trailing comma
	// parses as ParenExpr instead.
	TupleExpr struct {
		Sp    source.Span
		Elems []Expr
	}

	// FieldInit is one field of a struct literal.
	FieldInit struct {
		Name  string
		Value Expr // nil for shorthand { x } initialization
	}

	// StructLitExpr is Path { field: value, .. }.
	StructLitExpr struct {
		Sp     source.Span
		Path   []string
		Fields []FieldInit
		Base   Expr // ..base tail, or nil
	}

	// RangeExpr is lo..hi or lo..=hi.
	RangeExpr struct {
		Sp        source.Span
		Lo, Hi    Expr
		Inclusive bool
	}

	// ClosureParam is one closure parameter pattern.
	ClosureParam struct {
		Pat Pat
	}

	// ClosureExpr is |params| body, with or without the move prefix.
	ClosureExpr struct {
		Sp     source.Span
		Move   bool
		Params []ClosureParam
		Body   Expr // BlockExpr or a bare expression
	}

	// IfExpr is an if/else-if/else chain. Else is a BlockExpr, another
	// IfExpr, or nil.
	IfExpr struct {
		Sp   source.Span
		Cond Expr
		Let  *LetCond // non-nil for if let
		Then *BlockExpr
		Else Expr
	}

	// LetCond is the pattern half of if let / while let.
	LetCond struct {
		Pat  Pat
		Expr Expr
	}

	// MatchArm is one arm of a match expression.
	MatchArm struct {
		Sp    source.Span
		Pat   Pat
		Guard Expr // if guard, or nil
		Body  Expr
	}

	// MatchExpr is match subject { arms }.
	MatchExpr struct {
		Sp      source.Span
		Subject Expr
		Arms    []MatchArm
	}

	// BlockExpr is a braced statement list. When the final statement is
	// an expression without a semicolon it is the block's value.
	BlockExpr struct {
		Sp    source.Span
		Stmts []Stmt
	}

	// ReturnExpr is return [value].
	ReturnExpr struct {
		Sp    source.Span
		Value Expr // nil for bare return
	}

	// BreakExpr is break [value].
	BreakExpr struct {
		Sp    source.Span
		Value Expr
	}

	// ContinueExpr is continue.
	ContinueExpr struct {
		Sp source.Span
	}

	// RefExpr is &expr or &mut expr. Borrows are identity in the output.
	RefExpr struct {
		Sp  source.Span
		Mut bool
		X   Expr
	}

	// DerefExpr is *expr, also identity in the output.
	DerefExpr struct {
		Sp source.Span
		X  Expr
	}

	// CastExpr is expr as Type.
	CastExpr struct {
		Sp source.Span
		X  Expr
		Ty *TypeRef
	}

	// TryExpr is expr?.
	TryExpr struct {
		Sp source.Span
		X  Expr
	}

	// MacroExpr is name!(...). Args holds the raw source text between the
	// delimiters; the macro expander re-parses it as needed.
	MacroExpr struct {
		Sp    source.Span
		Name  string
		Args  string
		Delim token.Kind // LParen, LBracket, or LBrace
	}

	// SelfExpr is the bare self receiver.
	SelfExpr struct {
		Sp source.Span
	}
)

func (e *IdentExpr) Span() source.Span      { return e.Sp }
func (e *LitExpr) Span() source.Span        { return e.Sp }
func (e *PathExpr) Span() source.Span       { return e.Sp }
func (e *UnaryExpr) Span() source.Span      { return e.Sp }
func (e *BinaryExpr) Span() source.Span     { return e.Sp }
func (e *AssignExpr) Span() source.Span     { return e.Sp }
func (e *CallExpr) Span() source.Span       { return e.Sp }
func (e *MethodCallExpr) Span() source.Span { return e.Sp }
func (e *FieldExpr) Span() source.Span      { return e.Sp }
func (e *IndexExpr) Span() source.Span      { return e.Sp }
func (e *ParenExpr) Span() source.Span      { return e.Sp }
func (e *ArrayExpr) Span() source.Span      { return e.Sp }
func (e *TupleExpr) Span() source.Span      { return e.Sp }
func (e *StructLitExpr) Span() source.Span  { return e.Sp }
func (e *RangeExpr) Span() source.Span      { return e.Sp }
func (e *ClosureExpr) Span() source.Span    { return e.Sp }
func (e *IfExpr) Span() source.Span         { return e.Sp }
func (e *MatchExpr) Span() source.Span      { return e.Sp }
func (e *BlockExpr) Span() source.Span      { return e.Sp }
func (e *ReturnExpr) Span() source.Span     { return e.Sp }
func (e *BreakExpr) Span() source.Span      { return e.Sp }
func (e *ContinueExpr) Span() source.Span   { return e.Sp }
func (e *RefExpr) Span() source.Span        { return e.Sp }
func (e *DerefExpr) Span() source.Span      { return e.Sp }
func (e *CastExpr) Span() source.Span       { return e.Sp }
func (e *TryExpr) Span() source.Span        { return e.Sp }
func (e *MacroExpr) Span() source.Span      { return e.Sp }
func (e *SelfExpr) Span() source.Span       { return e.Sp }

func (*IdentExpr) exprNode()      {}
func (*LitExpr) exprNode()        {}
func (*PathExpr) exprNode()       {}
func (*UnaryExpr) exprNode()      {}
func (*BinaryExpr) exprNode()     {}
func (*AssignExpr) exprNode()     {}
func (*CallExpr) exprNode()       {}
func (*MethodCallExpr) exprNode() {}
func (*FieldExpr) exprNode()      {}
func (*IndexExpr) exprNode()      {}
func (*ParenExpr) exprNode()      {}
func (*ArrayExpr) exprNode()      {}
func (*TupleExpr) exprNode()      {}
func (*StructLitExpr) exprNode()  {}
func (*RangeExpr) exprNode()      {}
func (*ClosureExpr) exprNode()    {}
func (*IfExpr) exprNode()         {}
func (*MatchExpr) exprNode()      {}
func (*BlockExpr) exprNode()      {}
func (*ReturnExpr) exprNode()     {}
func (*BreakExpr) exprNode()      {}
func (*ContinueExpr) exprNode()   {}
func (*RefExpr) exprNode()        {}
func (*DerefExpr) exprNode()      {}
func (*CastExpr) exprNode()       {}
func (*TryExpr) exprNode()        {}
func (*MacroExpr) exprNode()      {}
func (*SelfExpr) exprNode()       {}
