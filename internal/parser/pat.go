package parser

import (
	"unicode"

	"oxjs/internal/ast"
	"oxjs/internal/source"
	"oxjs/internal/token"
)

// parsePattern parses a match or binding pattern, including | alternatives.
func (p *Parser) parsePattern() (ast.Pat, error) {
	first, err := p.parsePatternSingle()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Pipe) {
		return first, nil
	}
	or := &ast.OrPat{Sp: first.Span(), Alts: []ast.Pat{first}}
	for p.eat(token.Pipe) {
		alt, err := p.parsePatternSingle()
		if err != nil {
			return nil, err
		}
		or.Alts = append(or.Alts, alt)
	}
	or.Sp = p.spanTo(or.Sp)
	return or, nil
}

func (p *Parser) parsePatternSingle() (ast.Pat, error) {
	start := p.tok.Span

	switch p.tok.Kind {
	case token.Underscore:
		p.advance()
		return &ast.WildcardPat{Sp: start}, nil

	case token.Amp:
		p.advance()
		p.eat(token.KwMut)
		inner, err := p.parsePatternSingle()
		if err != nil {
			return nil, err
		}
		return &ast.RefPat{Sp: p.spanTo(start), Inner: inner}, nil

	case token.KwMut:
		p.advance()
		name, err := p.expect(token.Ident, "binding pattern")
		if err != nil {
			return nil, err
		}
		return &ast.IdentPat{Sp: p.spanTo(start), Name: name.Text, Mut: true}, nil

	case token.KwRef:
		p.advance()
		p.eat(token.KwMut)
		name, err := p.expect(token.Ident, "binding pattern")
		if err != nil {
			return nil, err
		}
		return &ast.IdentPat{Sp: p.spanTo(start), Name: name.Text}, nil

	case token.LParen:
		p.advance()
		tp := &ast.TuplePat{}
		for !p.at(token.RParen) {
			elem, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			tp.Elems = append(tp.Elems, elem)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.RParen, "tuple pattern"); err != nil {
			return nil, err
		}
		tp.Sp = p.spanTo(start)
		return tp, nil

	case token.IntLit, token.FloatLit, token.StringLit, token.CharLit, token.KwTrue, token.KwFalse, token.Minus:
		return p.parseLitOrRangePat(start)

	case token.Ident, token.KwSelfType:
		return p.parsePathPat(start)

	default:
		return nil, p.errorf("expected a pattern, found %s", p.describe())
	}
}

// parseLitOrRangePat parses a literal pattern, optionally extended to a
// range pattern (1..=9).
func (p *Parser) parseLitOrRangePat(start source.Span) (ast.Pat, error) {
	lo, err := p.parseLitExpr()
	if err != nil {
		return nil, err
	}
	if p.at(token.DotDotEq) || p.at(token.DotDot) {
		inclusive := p.tok.Kind == token.DotDotEq
		p.advance()
		hi, err := p.parseLitExpr()
		if err != nil {
			return nil, err
		}
		return &ast.RangePat{Sp: p.spanTo(start), Lo: lo, Hi: hi, Inclusive: inclusive}, nil
	}
	lit := lo.(*ast.LitExpr)
	return &ast.LitPat{Sp: p.spanTo(start), Kind: lit.Kind, Text: lit.Text}, nil
}

// parseLitExpr reads a literal token (with optional leading minus) as an
// expression node, for use inside patterns.
func (p *Parser) parseLitExpr() (ast.Expr, error) {
	start := p.tok.Span
	neg := p.eat(token.Minus)
	var kind ast.LitKind
	switch p.tok.Kind {
	case token.IntLit:
		kind = ast.LitInt
	case token.FloatLit:
		kind = ast.LitFloat
	case token.StringLit:
		kind = ast.LitString
	case token.CharLit:
		kind = ast.LitChar
	case token.KwTrue, token.KwFalse:
		kind = ast.LitBool
	default:
		return nil, p.errorf("expected a literal, found %s", p.describe())
	}
	text := p.tok.Text
	if neg {
		text = "-" + text
	}
	p.advance()
	return &ast.LitExpr{Sp: p.spanTo(start), Kind: kind, Text: text}, nil
}

// parsePathPat parses ident-led patterns: bindings, unit paths, tuple
// variants, and struct patterns. A single lowercase segment is a
// binding; anything capitalized or qualified is a path.
func (p *Parser) parsePathPat(start source.Span) (ast.Pat, error) {
	var segments []string
	for {
		var seg string
		switch p.tok.Kind {
		case token.Ident:
			seg = p.tok.Text
		case token.KwSelfType:
			seg = "Self"
		default:
			return nil, p.errorf("expected a path segment, found %s", p.describe())
		}
		p.advance()
		segments = append(segments, seg)
		if !p.eat(token.ColonColon) {
			break
		}
	}

	switch p.tok.Kind {
	case token.LParen:
		p.advance()
		tsp := &ast.TupleStructPat{Segments: segments}
		for !p.at(token.RParen) {
			elem, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			tsp.Elems = append(tsp.Elems, elem)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.RParen, "tuple variant pattern"); err != nil {
			return nil, err
		}
		tsp.Sp = p.spanTo(start)
		return tsp, nil

	case token.LBrace:
		p.advance()
		sp := &ast.StructPat{Segments: segments}
		for !p.at(token.RBrace) {
			if p.eat(token.DotDot) {
				sp.Rest = true
				break
			}
			fname, err := p.expect(token.Ident, "struct pattern field")
			if err != nil {
				return nil, err
			}
			field := ast.StructFieldPat{Name: fname.Text}
			if p.eat(token.Colon) {
				field.Pat, err = p.parsePattern()
				if err != nil {
					return nil, err
				}
			}
			sp.Fields = append(sp.Fields, field)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.RBrace, "struct pattern"); err != nil {
			return nil, err
		}
		sp.Sp = p.spanTo(start)
		return sp, nil
	}

	if len(segments) == 1 && !startsUpper(segments[0]) {
		return &ast.IdentPat{Sp: p.spanTo(start), Name: segments[0]}, nil
	}
	return &ast.PathPat{Sp: p.spanTo(start), Segments: segments}, nil
}

func startsUpper(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return unicode.IsUpper(r)
}
