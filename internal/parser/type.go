package parser

import (
	"oxjs/internal/ast"
	"oxjs/internal/token"
)

// parseType parses a type annotation. The generator only ever looks at
// the path and generic arguments, so references, lifetimes, and
// mutability are consumed and dropped.
func (p *Parser) parseType() (*ast.TypeRef, error) {
	start := p.tok.Span

	// strip any number of & / &mut / lifetime prefixes
	for {
		if p.eat(token.Amp) {
			p.eat(token.Lifetime)
			p.eat(token.KwMut)
			continue
		}
		break
	}
	p.eat(token.KwDyn)

	switch p.tok.Kind {
	case token.LParen:
		// unit or tuple type
		p.advance()
		ty := &ast.TypeRef{Name: "()", Path: []string{"()"}}
		for !p.at(token.RParen) {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			ty.Args = append(ty.Args, arg)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.RParen, "tuple type"); err != nil {
			return nil, err
		}
		if len(ty.Args) > 0 {
			ty.Name = "tuple"
			ty.Path = []string{"tuple"}
		}
		ty.Sp = p.spanTo(start)
		return ty, nil

	case token.LBracket:
		// slice [T] or array [T; N]
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.eat(token.Semicolon) {
			if _, err := p.parseExpr(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.RBracket, "slice type"); err != nil {
			return nil, err
		}
		return &ast.TypeRef{
			Sp:   p.spanTo(start),
			Name: "Vec",
			Path: []string{"Vec"},
			Args: []*ast.TypeRef{elem},
		}, nil

	case token.Ident, token.KwSelfType:
		return p.parseTypePath()

	default:
		return nil, p.errorf("expected a type, found %s", p.describe())
	}
}

func (p *Parser) parseTypePath() (*ast.TypeRef, error) {
	sp := p.tok.Span
	ty := &ast.TypeRef{}
	for {
		var seg string
		switch p.tok.Kind {
		case token.Ident:
			seg = p.tok.Text
		case token.KwSelfType:
			seg = "Self"
		default:
			return nil, p.errorf("expected a type path segment, found %s", p.describe())
		}
		p.advance()
		ty.Path = append(ty.Path, seg)
		ty.Name = seg
		if !p.eat(token.ColonColon) {
			break
		}
	}

	if p.at(token.Lt) {
		p.advance()
		for !p.at(token.Gt) {
			if p.at(token.Lifetime) {
				p.advance()
			} else {
				arg, err := p.parseType()
				if err != nil {
					return nil, err
				}
				ty.Args = append(ty.Args, arg)
			}
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.Gt, "generic arguments"); err != nil {
			return nil, err
		}
	}

	ty.Sp = p.spanTo(sp)
	return ty, nil
}
