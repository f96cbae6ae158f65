package parser

import (
	"oxjs/internal/ast"
	"oxjs/internal/token"
)

// parseBlock parses a braced statement list.
func (p *Parser) parseBlock() (*ast.BlockExpr, error) {
	start := p.tok.Span
	if _, err := p.expect(token.LBrace, "block"); err != nil {
		return nil, err
	}
	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	block := &ast.BlockExpr{}
	for !p.at(token.RBrace) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	if _, err := p.expect(token.RBrace, "block"); err != nil {
		return nil, err
	}
	block.Sp = p.spanTo(start)
	return block, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	start := p.tok.Span

	switch p.tok.Kind {
	case token.KwLet:
		return p.parseLetStmt()

	case token.KwWhile:
		return p.parseWhileStmt()

	case token.KwFor:
		return p.parseForStmt()

	case token.KwLoop:
		p.advance()
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.LoopStmt{Sp: p.spanTo(start), Body: body}, nil

	case token.KwFn, token.KwStruct, token.KwEnum, token.KwImpl, token.KwUse,
		token.KwConst, token.KwStatic, token.KwMod, token.KwTrait:
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		return &ast.ItemStmt{Sp: p.spanTo(start), Item: item}, nil

	case token.Semicolon:
		// empty statement
		p.advance()
		return &ast.ExprStmt{Sp: start, X: &ast.TupleExpr{Sp: start}, Semi: true}, nil
	}

	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ExprStmt{X: x}
	if p.eat(token.Semicolon) {
		stmt.Semi = true
	} else if !p.at(token.RBrace) && !isBlockLike(x) {
		return nil, p.errorf("expected ';' after expression, found %s", p.describe())
	}
	stmt.Sp = p.spanTo(start)
	return stmt, nil
}

func (p *Parser) parseLetStmt() (ast.Stmt, error) {
	start := p.tok.Span
	p.advance() // let

	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	stmt := &ast.LetStmt{Pat: pat}

	if p.eat(token.Colon) {
		stmt.Ty, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if p.eat(token.Assign) {
		stmt.Init, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon, "let statement"); err != nil {
		return nil, err
	}
	stmt.Sp = p.spanTo(start)
	return stmt, nil
}

func (p *Parser) parseWhileStmt() (ast.Stmt, error) {
	start := p.tok.Span
	p.advance() // while

	stmt := &ast.WhileStmt{}
	if p.eat(token.KwLet) {
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Assign, "while let"); err != nil {
			return nil, err
		}
		subj, err := p.parseExprNoStruct()
		if err != nil {
			return nil, err
		}
		stmt.Let = &ast.LetCond{Pat: pat, Expr: subj}
	} else {
		cond, err := p.parseExprNoStruct()
		if err != nil {
			return nil, err
		}
		stmt.Cond = cond
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	stmt.Sp = p.spanTo(start)
	return stmt, nil
}

func (p *Parser) parseForStmt() (ast.Stmt, error) {
	start := p.tok.Span
	p.advance() // for

	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwIn, "for loop"); err != nil {
		return nil, err
	}
	iter, err := p.parseExprNoStruct()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Sp: p.spanTo(start), Pat: pat, Iter: iter, Body: body}, nil
}
