// Package lexer turns source bytes into a token stream.
// Comments, whitespace, and attributes (#[...], #![...]) are consumed as
// trivia and never reach the parser.
package lexer

import (
	"oxjs/internal/source"
	"oxjs/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next returns the next significant token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanCharOrLifetime()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize drains the lexer and returns every token up to and including EOF.
func Tokenize(file *source.File) []token.Token {
	lx := New(file)
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// skipTrivia consumes whitespace, comments, and attributes.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch ch := lx.cursor.Peek(); {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			lx.skipBlockComment()
		case ch == '#' && (lx.cursor.PeekAt(1) == '[' || (lx.cursor.PeekAt(1) == '!' && lx.cursor.PeekAt(2) == '[')):
			lx.skipAttribute()
		default:
			return
		}
	}
}

// skipBlockComment consumes a (possibly nested) /* ... */ comment.
func (lx *Lexer) skipBlockComment() {
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		switch {
		case lx.cursor.Peek() == '/' && lx.cursor.PeekAt(1) == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
		case lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
		default:
			lx.cursor.Bump()
		}
	}
}

// skipAttribute consumes '#[...]' or '#![...]' with balanced brackets.
// String literals inside the attribute are respected so a ']' in a
// doc string does not close the attribute early.
func (lx *Lexer) skipAttribute() {
	lx.cursor.Bump() // '#'
	if lx.cursor.Peek() == '!' {
		lx.cursor.Bump()
	}
	lx.cursor.Bump() // '['
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		switch lx.cursor.Bump() {
		case '[':
			depth++
		case ']':
			depth--
		case '"':
			for !lx.cursor.EOF() {
				b := lx.cursor.Bump()
				if b == '\\' {
					lx.cursor.Bump()
					continue
				}
				if b == '"' {
					break
				}
			}
		}
	}
}

func (lx *Lexer) spanFrom(start uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: lx.cursor.Off}
}

func (lx *Lexer) textFrom(start uint32) string {
	return string(lx.file.Content[start:lx.cursor.Off])
}
