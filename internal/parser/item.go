package parser

import (
	"strings"

	"oxjs/internal/ast"
	"oxjs/internal/token"
)

// parseItem parses one top-level declaration.
func (p *Parser) parseItem() (ast.Item, error) {
	pub := p.eat(token.KwPub)

	switch p.tok.Kind {
	case token.KwFn:
		return p.parseFn(pub)
	case token.KwStruct:
		return p.parseStruct(pub)
	case token.KwEnum:
		return p.parseEnum(pub)
	case token.KwImpl:
		if pub {
			return nil, p.errorf("impl blocks cannot be pub")
		}
		return p.parseImpl()
	case token.KwUse:
		return p.parseUse()
	case token.KwMod:
		return p.parseMod()
	case token.KwConst:
		return p.parseConst(pub, false)
	case token.KwStatic:
		return p.parseConst(pub, true)
	case token.KwType:
		return p.parseTypeAlias()
	case token.KwTrait:
		return p.parseTrait()
	default:
		return nil, p.errorf("expected a declaration, found %s", p.describe())
	}
}

func (p *Parser) parseFn(pub bool) (*ast.FnDecl, error) {
	start := p.tok.Span
	p.advance() // fn

	name, err := p.expect(token.Ident, "function declaration")
	if err != nil {
		return nil, err
	}
	if err := p.skipGenerics(); err != nil {
		return nil, err
	}

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	var ret *ast.TypeRef
	if p.eat(token.Arrow) {
		ret, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if err := p.skipWhereClause(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FnDecl{
		Sp:     p.spanTo(start),
		Name:   name.Text,
		Pub:    pub,
		Params: params,
		Ret:    ret,
		Body:   body,
	}, nil
}

// parseParams parses the parenthesized parameter list, including the
// self receiver in its borrowed and owned spellings.
func (p *Parser) parseParams() ([]ast.Param, error) {
	if _, err := p.expect(token.LParen, "parameter list"); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.at(token.RParen) {
		start := p.tok.Span

		if sp, ok := p.trySelfParam(); ok {
			params = append(params, ast.Param{Sp: sp.Sp, Self: true})
		} else {
			pat, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon, "parameter"); err != nil {
				return nil, err
			}
			ty, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Param{Sp: p.spanTo(start), Pat: pat, Ty: ty})
		}

		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RParen, "parameter list"); err != nil {
		return nil, err
	}
	return params, nil
}

// trySelfParam consumes self, &self, &mut self, or mut self.
// &mut self needs two tokens of lookahead; the Amp branch only fires
// when self follows, so an &mut binding pattern is left untouched.
func (p *Parser) trySelfParam() (ast.Param, bool) {
	start := p.tok.Span
	switch p.tok.Kind {
	case token.KwSelfValue:
		p.advance()
		return ast.Param{Sp: start}, true
	case token.Amp:
		switch p.peekKind() {
		case token.KwSelfValue:
			p.advance()
			p.advance()
			return ast.Param{Sp: p.spanTo(start)}, true
		case token.KwMut:
			// A parameter list never contains &mut <binding>, only
			// &mut self, so two keywords in a row decide it.
			p.advance() // &
			p.advance() // mut
			p.advance() // self
			return ast.Param{Sp: p.spanTo(start)}, true
		}
		return ast.Param{}, false
	case token.KwMut:
		if p.peekKind() == token.KwSelfValue {
			p.advance()
			p.advance()
			return ast.Param{Sp: p.spanTo(start)}, true
		}
		return ast.Param{}, false
	default:
		return ast.Param{}, false
	}
}

func (p *Parser) parseStruct(pub bool) (*ast.StructDecl, error) {
	start := p.tok.Span
	p.advance() // struct

	name, err := p.expect(token.Ident, "struct declaration")
	if err != nil {
		return nil, err
	}
	if err := p.skipGenerics(); err != nil {
		return nil, err
	}

	decl := &ast.StructDecl{Name: name.Text, Pub: pub}

	switch p.tok.Kind {
	case token.Semicolon:
		// unit struct
		p.advance()
	case token.LParen:
		return nil, p.errorf("tuple structs are not supported, give %s named fields", name.Text)
	case token.LBrace:
		p.advance()
		for !p.at(token.RBrace) {
			fieldStart := p.tok.Span
			fieldPub := p.eat(token.KwPub)
			fname, err := p.expect(token.Ident, "struct field")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon, "struct field"); err != nil {
				return nil, err
			}
			fty, err := p.parseType()
			if err != nil {
				return nil, err
			}
			decl.Fields = append(decl.Fields, ast.StructField{
				Sp:   p.spanTo(fieldStart),
				Name: fname.Text,
				Pub:  fieldPub,
				Ty:   fty,
			})
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.RBrace, "struct declaration"); err != nil {
			return nil, err
		}
	default:
		return nil, p.errorf("expected struct body, found %s", p.describe())
	}

	decl.Sp = p.spanTo(start)
	return decl, nil
}

func (p *Parser) parseEnum(pub bool) (*ast.EnumDecl, error) {
	start := p.tok.Span
	p.advance() // enum

	name, err := p.expect(token.Ident, "enum declaration")
	if err != nil {
		return nil, err
	}
	if err := p.skipGenerics(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, "enum declaration"); err != nil {
		return nil, err
	}

	decl := &ast.EnumDecl{Name: name.Text, Pub: pub}
	for !p.at(token.RBrace) {
		vStart := p.tok.Span
		vname, err := p.expect(token.Ident, "enum variant")
		if err != nil {
			return nil, err
		}
		variant := ast.EnumVariant{Name: vname.Text}

		switch p.tok.Kind {
		case token.LParen:
			p.advance()
			for !p.at(token.RParen) {
				ty, err := p.parseType()
				if err != nil {
					return nil, err
				}
				variant.Tuple = append(variant.Tuple, ty)
				if !p.eat(token.Comma) {
					break
				}
			}
			if _, err := p.expect(token.RParen, "enum variant"); err != nil {
				return nil, err
			}
		case token.LBrace:
			p.advance()
			for !p.at(token.RBrace) {
				fStart := p.tok.Span
				fname, err := p.expect(token.Ident, "enum variant field")
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.Colon, "enum variant field"); err != nil {
					return nil, err
				}
				fty, err := p.parseType()
				if err != nil {
					return nil, err
				}
				variant.Fields = append(variant.Fields, ast.StructField{
					Sp: p.spanTo(fStart), Name: fname.Text, Ty: fty,
				})
				if !p.eat(token.Comma) {
					break
				}
			}
			if _, err := p.expect(token.RBrace, "enum variant"); err != nil {
				return nil, err
			}
		}

		// Explicit discriminants carry no information in the output; the
		// variant tag is always its name.
		if p.eat(token.Assign) {
			if _, err := p.parseExpr(); err != nil {
				return nil, err
			}
		}

		variant.Sp = p.spanTo(vStart)
		decl.Variants = append(decl.Variants, variant)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RBrace, "enum declaration"); err != nil {
		return nil, err
	}

	decl.Sp = p.spanTo(start)
	return decl, nil
}

func (p *Parser) parseImpl() (*ast.ImplBlock, error) {
	start := p.tok.Span
	p.advance() // impl
	if err := p.skipGenerics(); err != nil {
		return nil, err
	}

	first, err := p.expect(token.Ident, "impl block")
	if err != nil {
		return nil, err
	}
	if err := p.skipGenerics(); err != nil {
		return nil, err
	}

	block := &ast.ImplBlock{Type: first.Text}
	if p.eat(token.KwFor) {
		tyName, err := p.expect(token.Ident, "impl block")
		if err != nil {
			return nil, err
		}
		if err := p.skipGenerics(); err != nil {
			return nil, err
		}
		block.Trait = first.Text
		block.Type = tyName.Text
	}
	if err := p.skipWhereClause(); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LBrace, "impl block"); err != nil {
		return nil, err
	}
	for !p.at(token.RBrace) {
		fnPub := p.eat(token.KwPub)
		if !p.at(token.KwFn) {
			return nil, p.errorf("expected fn in impl block, found %s", p.describe())
		}
		fn, err := p.parseFn(fnPub)
		if err != nil {
			return nil, err
		}
		block.Fns = append(block.Fns, fn)
	}
	if _, err := p.expect(token.RBrace, "impl block"); err != nil {
		return nil, err
	}

	block.Sp = p.spanTo(start)
	return block, nil
}

func (p *Parser) parseUse() (*ast.UseDecl, error) {
	start := p.tok.Span
	p.advance() // use
	pathStart := p.tok.Span.Start
	for !p.at(token.Semicolon) && !p.at(token.EOF) {
		p.advance()
	}
	pathEnd := p.tok.Span.Start
	if _, err := p.expect(token.Semicolon, "use declaration"); err != nil {
		return nil, err
	}
	path := strings.TrimSpace(p.textBetween(pathStart, pathEnd))
	return &ast.UseDecl{Sp: p.spanTo(start), Path: path}, nil
}

func (p *Parser) parseMod() (*ast.ModDecl, error) {
	start := p.tok.Span
	p.advance() // mod
	name, err := p.expect(token.Ident, "mod declaration")
	if err != nil {
		return nil, err
	}
	switch p.tok.Kind {
	case token.Semicolon:
		p.advance()
	case token.LBrace:
		if err := p.skipBalanced(token.LBrace); err != nil {
			return nil, err
		}
	default:
		return nil, p.errorf("expected ';' or '{' after mod %s", name.Text)
	}
	return &ast.ModDecl{Sp: p.spanTo(start), Name: name.Text}, nil
}

func (p *Parser) parseConst(pub, static bool) (*ast.ConstDecl, error) {
	start := p.tok.Span
	p.advance() // const or static
	p.eat(token.KwMut)

	name, err := p.expect(token.Ident, "const declaration")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "const declaration"); err != nil {
		return nil, err
	}
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign, "const declaration"); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "const declaration"); err != nil {
		return nil, err
	}
	return &ast.ConstDecl{
		Sp:     p.spanTo(start),
		Name:   name.Text,
		Pub:    pub,
		Static: static,
		Ty:     ty,
		Value:  value,
	}, nil
}

func (p *Parser) parseTypeAlias() (*ast.TypeAliasDecl, error) {
	start := p.tok.Span
	p.advance() // type
	name, err := p.expect(token.Ident, "type alias")
	if err != nil {
		return nil, err
	}
	if err := p.skipGenerics(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign, "type alias"); err != nil {
		return nil, err
	}
	if _, err := p.parseType(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "type alias"); err != nil {
		return nil, err
	}
	return &ast.TypeAliasDecl{Sp: p.spanTo(start), Name: name.Text}, nil
}

func (p *Parser) parseTrait() (*ast.TraitDecl, error) {
	start := p.tok.Span
	p.advance() // trait
	name, err := p.expect(token.Ident, "trait declaration")
	if err != nil {
		return nil, err
	}
	if err := p.skipGenerics(); err != nil {
		return nil, err
	}
	// Supertraits (: Bound + Bound) and the body are skipped wholesale.
	for !p.at(token.LBrace) && !p.at(token.EOF) {
		p.advance()
	}
	if err := p.skipBalanced(token.LBrace); err != nil {
		return nil, err
	}
	return &ast.TraitDecl{Sp: p.spanTo(start), Name: name.Text}, nil
}

// skipGenerics consumes a <...> parameter list when present. Nested
// angle brackets are tracked; closing '>' tokens are always single.
func (p *Parser) skipGenerics() error {
	if !p.at(token.Lt) {
		return nil
	}
	depth := 0
	for {
		switch p.tok.Kind {
		case token.EOF:
			return p.errorf("unexpected end of file in generic parameters")
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		}
		p.advance()
		if depth == 0 {
			return nil
		}
	}
}

// skipWhereClause consumes a trailing where clause up to the body brace
// or terminating semicolon.
func (p *Parser) skipWhereClause() error {
	if !p.at(token.KwWhere) {
		return nil
	}
	for !p.at(token.LBrace) && !p.at(token.Semicolon) && !p.at(token.EOF) {
		p.advance()
	}
	if p.at(token.EOF) {
		return p.errorf("unexpected end of file in where clause")
	}
	return nil
}
