package lexer

import (
	"oxjs/internal/token"
)

// scanOperatorOrPunct reads the longest operator at the cursor.
// '>' is always a single token so nested generics (Vec<Vec<T>>) close
// correctly; the parser never needs a '>>' token.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Off
	b0 := lx.cursor.Peek()
	b1 := lx.cursor.PeekAt(1)
	b2 := lx.cursor.PeekAt(2)

	kind := token.Invalid
	width := uint32(1)

	switch b0 {
	case '+':
		kind = token.Plus
		if b1 == '=' {
			kind, width = token.PlusAssign, 2
		}
	case '-':
		kind = token.Minus
		switch b1 {
		case '=':
			kind, width = token.MinusAssign, 2
		case '>':
			kind, width = token.Arrow, 2
		}
	case '*':
		kind = token.Star
		if b1 == '=' {
			kind, width = token.StarAssign, 2
		}
	case '/':
		kind = token.Slash
		if b1 == '=' {
			kind, width = token.SlashAssign, 2
		}
	case '%':
		kind = token.Percent
		if b1 == '=' {
			kind, width = token.PercentAssign, 2
		}
	case '=':
		kind = token.Assign
		switch b1 {
		case '=':
			kind, width = token.EqEq, 2
		case '>':
			kind, width = token.FatArrow, 2
		}
	case '!':
		kind = token.Bang
		if b1 == '=' {
			kind, width = token.BangEq, 2
		}
	case '<':
		kind = token.Lt
		switch b1 {
		case '=':
			kind, width = token.LtEq, 2
		case '<':
			kind, width = token.Shl, 2
		}
	case '>':
		kind = token.Gt
		if b1 == '=' {
			kind, width = token.GtEq, 2
		}
	case '&':
		kind = token.Amp
		if b1 == '&' {
			kind, width = token.AndAnd, 2
		}
	case '|':
		kind = token.Pipe
		if b1 == '|' {
			kind, width = token.OrOr, 2
		}
	case '^':
		kind = token.Caret
	case '?':
		kind = token.Question
	case ':':
		kind = token.Colon
		if b1 == ':' {
			kind, width = token.ColonColon, 2
		}
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
		if b1 == '.' {
			kind, width = token.DotDot, 2
			if b2 == '=' {
				kind, width = token.DotDotEq, 3
			}
		}
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '#':
		kind = token.Pound
	}

	lx.cursor.Off += width
	return token.Token{Kind: kind, Span: lx.spanFrom(start), Text: lx.textFrom(start)}
}
