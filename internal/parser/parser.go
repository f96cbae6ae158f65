// Package parser builds the syntax tree for the supported Rust subset.
// It is a hand-written recursive descent parser over the lexer's token
// stream and fails fast: the first syntax error aborts the parse.
package parser

import (
	"fmt"

	"oxjs/internal/ast"
	"oxjs/internal/lexer"
	"oxjs/internal/source"
	"oxjs/internal/token"
)

type Parser struct {
	file *source.File
	lx   *lexer.Lexer
	tok  token.Token

	// noStructLit suppresses struct literal parsing in positions where a
	// brace opens a block instead (if/while/match headers).
	noStructLit bool
}

// New creates a parser positioned at the first token of file.
func New(file *source.File) *Parser {
	p := &Parser{
		file: file,
		lx:   lexer.New(file),
	}
	p.advance()
	return p
}

// ParseFile parses a whole translation unit.
func ParseFile(file *source.File) (*ast.File, error) {
	p := New(file)
	out := &ast.File{FileID: file.ID}
	for p.tok.Kind != token.EOF {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// ParseExpr parses a standalone expression from raw source text. Used by
// the macro expander, which captures macro arguments as text and
// re-parses the pieces it needs.
func ParseExpr(src string) (ast.Expr, error) {
	fs := source.NewFileSet()
	f, err := fs.AddVirtual("<expr>", []byte(src))
	if err != nil {
		return nil, err
	}
	p := New(f)
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.at(token.EOF) {
		return nil, p.errorf("unexpected trailing %s after expression", p.describe())
	}
	return e, nil
}

func (p *Parser) advance() {
	p.tok = p.lx.Next()
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

func (p *Parser) peekKind() token.Kind {
	return p.lx.Peek().Kind
}

// eat consumes the current token when it matches k.
func (p *Parser) eat(k token.Kind) bool {
	if p.tok.Kind != k {
		return false
	}
	p.advance()
	return true
}

// expect consumes the current token of kind k or fails.
func (p *Parser) expect(k token.Kind, context string) (token.Token, error) {
	if p.tok.Kind != k {
		return token.Token{}, p.errorf("expected %s in %s, found %s", k, context, p.describe())
	}
	t := p.tok
	p.advance()
	return t, nil
}

func (p *Parser) describe() string {
	switch p.tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident:
		return fmt.Sprintf("identifier %q", p.tok.Text)
	default:
		return fmt.Sprintf("%q", p.tok.Text)
	}
}

// errorf formats a syntax error with the current file position.
func (p *Parser) errorf(format string, args ...any) error {
	lc := p.file.LineColAt(p.tok.Span.Start)
	return fmt.Errorf("%s:%d:%d: %s", p.file.Path, lc.Line, lc.Col, fmt.Sprintf(format, args...))
}

// errorAt formats a syntax error at an explicit span.
func (p *Parser) errorAt(sp source.Span, format string, args ...any) error {
	lc := p.file.LineColAt(sp.Start)
	return fmt.Errorf("%s:%d:%d: %s", p.file.Path, lc.Line, lc.Col, fmt.Sprintf(format, args...))
}

// spanFrom joins a start span with the end of the previously consumed
// region, approximated by the start of the current token.
func (p *Parser) spanTo(start source.Span) source.Span {
	end := p.tok.Span.Start
	if end < start.Start {
		end = start.End
	}
	return source.Span{File: start.File, Start: start.Start, End: end}
}

// textBetween slices the raw source between two byte offsets.
func (p *Parser) textBetween(start, end uint32) string {
	if end < start || int(end) > len(p.file.Content) {
		return ""
	}
	return string(p.file.Content[start:end])
}

// skipBalanced consumes tokens until the delimiter opened by open is
// closed. Only the same delimiter kind is tracked; in well-formed code
// the other bracket kinds nest independently. The opening token must
// already be current; on return the closing token has been consumed.
func (p *Parser) skipBalanced(open token.Kind) error {
	close, ok := matchingClose(open)
	if !ok {
		return p.errorf("internal: %s is not an opening delimiter", open)
	}
	if _, err := p.expect(open, "balanced group"); err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		switch p.tok.Kind {
		case token.EOF:
			return p.errorf("unexpected end of file, expected %s", close)
		case open:
			depth++
		case close:
			depth--
		}
		p.advance()
	}
	return nil
}

func matchingClose(open token.Kind) (token.Kind, bool) {
	switch open {
	case token.LParen:
		return token.RParen, true
	case token.LBracket:
		return token.RBracket, true
	case token.LBrace:
		return token.RBrace, true
	default:
		return token.Invalid, false
	}
}
