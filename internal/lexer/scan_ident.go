package lexer

import (
	"unicode/utf8"

	"oxjs/internal/token"
)

// scanIdentOrKeyword reads an identifier and classifies it as a keyword
// when the spelling matches one.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Off
	if b := lx.cursor.Peek(); b >= utf8RuneSelf {
		r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
		if !isIdentStartRune(r) {
			lx.cursor.Off += uint32(sz)
			return token.Token{Kind: token.Invalid, Span: lx.spanFrom(start), Text: lx.textFrom(start)}
		}
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
		if !isIdentContinueRune(r) {
			break
		}
		lx.cursor.Off += uint32(sz)
	}

	text := lx.textFrom(start)
	kind := token.Ident
	if text == "_" {
		kind = token.Underscore
	} else if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{Kind: kind, Span: lx.spanFrom(start), Text: text}
}
