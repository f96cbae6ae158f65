package token

import (
	"oxjs/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwLet, KwMut, KwIf, KwElse, KwWhile, KwFor, KwIn, KwLoop, KwMatch,
		KwBreak, KwContinue, KwReturn, KwStruct, KwEnum, KwImpl, KwTrait, KwUse,
		KwMod, KwConst, KwStatic, KwPub, KwSelfValue, KwSelfType, KwTrue, KwFalse,
		KwAs, KwRef, KwMove, KwType, KwDyn, KwWhere:
		return true
	default:
		return false
	}
}

// IsAssignOp reports whether the token is an assignment operator.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
