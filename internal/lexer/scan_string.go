package lexer

import (
	"oxjs/internal/token"
)

// scanString reads a double-quoted string literal. The token text keeps
// the surrounding quotes and raw escape sequences.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Off
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == '"' {
			return token.Token{Kind: token.StringLit, Span: lx.spanFrom(start), Text: lx.textFrom(start)}
		}
	}
	// Unterminated string: surface it as an invalid token.
	return token.Token{Kind: token.Invalid, Span: lx.spanFrom(start), Text: lx.textFrom(start)}
}

// scanCharOrLifetime disambiguates 'a' (char) from 'a (lifetime marker).
func (lx *Lexer) scanCharOrLifetime() token.Token {
	start := lx.cursor.Off
	next := lx.cursor.PeekAt(1)

	// 'x followed by anything but a closing quote is a lifetime.
	if isIdentStartByte(next) && lx.cursor.PeekAt(2) != '\'' {
		lx.cursor.Bump() // '\''
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return token.Token{Kind: token.Lifetime, Span: lx.spanFrom(start), Text: lx.textFrom(start)}
	}

	lx.cursor.Bump() // '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == '\'' {
			return token.Token{Kind: token.CharLit, Span: lx.spanFrom(start), Text: lx.textFrom(start)}
		}
	}
	return token.Token{Kind: token.Invalid, Span: lx.spanFrom(start), Text: lx.textFrom(start)}
}
