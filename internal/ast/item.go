package ast

import (
	"oxjs/internal/source"
)

type (
	// Param is one function parameter.
	Param struct {
		Sp   source.Span
		Pat  Pat
		Ty   *TypeRef
		Self bool // true for the self receiver in any of its spellings
	}

	// FnDecl is a free function or an associated function inside impl.
	FnDecl struct {
		Sp     source.Span
		Name   string
		Pub    bool
		Params []Param
		Ret    *TypeRef // nil for unit
		Body   *BlockExpr
	}

	// StructField is one named field of a struct declaration.
	StructField struct {
		Sp   source.Span
		Name string
		Pub  bool
		Ty   *TypeRef
	}

	// StructDecl is a struct with named fields.
	StructDecl struct {
		Sp     source.Span
		Name   string
		Pub    bool
		Fields []StructField
	}

	// EnumVariant is one variant of an enum declaration. A variant is a
	// unit (no payload), a tuple (positional payload), or a struct
	// (named payload).
	EnumVariant struct {
		Sp     source.Span
		Name   string
		Tuple  []*TypeRef    // tuple variant payload types
		Fields []StructField // struct variant fields
	}

	// EnumDecl is an enum declaration.
	EnumDecl struct {
		Sp       source.Span
		Name     string
		Pub      bool
		Variants []EnumVariant
	}

	// ImplBlock is impl Type { fns } or impl Trait for Type { fns }.
	ImplBlock struct {
		Sp    source.Span
		Type  string
		Trait string // empty for an inherent impl
		Fns   []*FnDecl
	}

	// UseDecl is a use declaration. Inert in the output.
	UseDecl struct {
		Sp   source.Span
		Path string // rendered as written, for the skip marker
	}

	// ModDecl is a mod declaration (with or without an inline body).
	// Inline bodies are not descended into.
	ModDecl struct {
		Sp   source.Span
		Name string
	}

	// ConstDecl is a const or static item.
	ConstDecl struct {
		Sp     source.Span
		Name   string
		Pub    bool
		Static bool
		Ty     *TypeRef
		Value  Expr
	}

	// TypeAliasDecl is type Name = Ty;. Inert in the output.
	TypeAliasDecl struct {
		Sp   source.Span
		Name string
	}

	// TraitDecl is a trait declaration. Only the name is kept; trait
	// items have no JavaScript counterpart and translation reports them
	// as unsupported.
	TraitDecl struct {
		Sp   source.Span
		Name string
	}
)

func (d *FnDecl) Span() source.Span        { return d.Sp }
func (d *StructDecl) Span() source.Span    { return d.Sp }
func (d *EnumDecl) Span() source.Span      { return d.Sp }
func (d *ImplBlock) Span() source.Span     { return d.Sp }
func (d *UseDecl) Span() source.Span       { return d.Sp }
func (d *ModDecl) Span() source.Span       { return d.Sp }
func (d *ConstDecl) Span() source.Span     { return d.Sp }
func (d *TypeAliasDecl) Span() source.Span { return d.Sp }
func (d *TraitDecl) Span() source.Span     { return d.Sp }

func (*FnDecl) itemNode()        {}
func (*StructDecl) itemNode()    {}
func (*EnumDecl) itemNode()      {}
func (*ImplBlock) itemNode()     {}
func (*UseDecl) itemNode()       {}
func (*ModDecl) itemNode()       {}
func (*ConstDecl) itemNode()     {}
func (*TypeAliasDecl) itemNode() {}
func (*TraitDecl) itemNode()     {}
