package parser

import (
	"oxjs/internal/ast"
	"oxjs/internal/source"
	"oxjs/internal/token"
)

// binaryBP returns the left binding power for infix operators, or 0 when
// the token is not a binary operator.
func binaryBP(k token.Kind) int {
	switch k {
	case token.OrOr:
		return 1
	case token.AndAnd:
		return 2
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return 3
	case token.Pipe:
		return 4
	case token.Caret:
		return 5
	case token.Amp:
		return 6
	case token.Shl:
		return 7
	case token.Plus, token.Minus:
		return 8
	case token.Star, token.Slash, token.Percent:
		return 9
	default:
		return 0
	}
}

// parseExpr parses a full expression, struct literals allowed.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssign()
}

// parseExprNoStruct parses an expression in a position where a brace
// starts a block, not a struct literal (if/while/match headers).
func (p *Parser) parseExprNoStruct() (ast.Expr, error) {
	saved := p.noStructLit
	p.noStructLit = true
	e, err := p.parseAssign()
	p.noStructLit = saved
	return e, err
}

func (p *Parser) parseAssign() (ast.Expr, error) {
	start := p.tok.Span
	lhs, err := p.parseRange()
	if err != nil {
		return nil, err
	}
	if p.tok.IsAssignOp() {
		op := p.tok.Kind
		p.advance()
		rhs, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Sp: p.spanTo(start), Op: op, Target: lhs, Value: rhs}, nil
	}
	return lhs, nil
}

func (p *Parser) parseRange() (ast.Expr, error) {
	start := p.tok.Span

	// prefix range: ..hi / ..=hi / ..
	if p.at(token.DotDot) || p.at(token.DotDotEq) {
		inclusive := p.tok.Kind == token.DotDotEq
		p.advance()
		var hi ast.Expr
		if p.startsExpr() {
			var err error
			hi, err = p.parseBinary(1)
			if err != nil {
				return nil, err
			}
		}
		return &ast.RangeExpr{Sp: p.spanTo(start), Hi: hi, Inclusive: inclusive}, nil
	}

	lo, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if p.at(token.DotDot) || p.at(token.DotDotEq) {
		inclusive := p.tok.Kind == token.DotDotEq
		p.advance()
		var hi ast.Expr
		if p.startsExpr() {
			hi, err = p.parseBinary(1)
			if err != nil {
				return nil, err
			}
		}
		return &ast.RangeExpr{Sp: p.spanTo(start), Lo: lo, Hi: hi, Inclusive: inclusive}, nil
	}
	return lo, nil
}

// startsExpr reports whether the current token can begin an expression.
// Used to decide whether an open range has an upper bound.
func (p *Parser) startsExpr() bool {
	switch p.tok.Kind {
	case token.Ident, token.IntLit, token.FloatLit, token.StringLit, token.CharLit,
		token.KwTrue, token.KwFalse, token.KwSelfValue, token.KwSelfType,
		token.LParen, token.LBracket, token.LBrace, token.Minus, token.Bang,
		token.Amp, token.Star, token.Pipe, token.OrOr, token.KwMove,
		token.KwIf, token.KwMatch, token.KwReturn:
		return true
	default:
		return false
	}
}

func (p *Parser) parseBinary(minBP int) (ast.Expr, error) {
	start := p.tok.Span
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		bp := binaryBP(p.tok.Kind)
		if bp == 0 || bp < minBP {
			return lhs, nil
		}
		op := p.tok.Kind
		p.advance()
		rhs, err := p.parseBinary(bp + 1)
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Sp: p.spanTo(start), Op: op, X: lhs, Y: rhs}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	start := p.tok.Span
	switch p.tok.Kind {
	case token.Minus, token.Bang:
		op := p.tok.Kind
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Sp: p.spanTo(start), Op: op, X: x}, nil
	case token.Amp:
		p.advance()
		mut := p.eat(token.KwMut)
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.RefExpr{Sp: p.spanTo(start), Mut: mut, X: x}, nil
	case token.Star:
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.DerefExpr{Sp: p.spanTo(start), X: x}, nil
	}
	return p.parseCast()
}

// parseCast handles `expr as Type`, which binds tighter than any binary
// operator but looser than postfix.
func (p *Parser) parseCast() (ast.Expr, error) {
	start := p.tok.Span
	x, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.eat(token.KwAs) {
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		x = &ast.CastExpr{Sp: p.spanTo(start), X: x, Ty: ty}
	}
	return x, nil
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	start := p.tok.Span
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Kind {
		case token.Dot:
			p.advance()
			switch p.tok.Kind {
			case token.IntLit:
				// tuple field access: pair.0
				x = &ast.FieldExpr{Sp: p.spanTo(start), X: x, Name: p.tok.Text}
				p.advance()
			case token.Ident:
				name := p.tok.Text
				p.advance()
				if p.at(token.ColonColon) {
					// turbofish: recv.method::<T>(args)
					p.advance()
					if err := p.skipGenerics(); err != nil {
						return nil, err
					}
				}
				if p.at(token.LParen) {
					args, err := p.parseCallArgs()
					if err != nil {
						return nil, err
					}
					x = &ast.MethodCallExpr{Sp: p.spanTo(start), Recv: x, Method: name, Args: args}
				} else {
					x = &ast.FieldExpr{Sp: p.spanTo(start), X: x, Name: name}
				}
			default:
				return nil, p.errorf("expected a field or method name after '.', found %s", p.describe())
			}

		case token.LParen:
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			x = &ast.CallExpr{Sp: p.spanTo(start), Callee: x, Args: args}

		case token.LBracket:
			p.advance()
			saved := p.noStructLit
			p.noStructLit = false
			idx, err := p.parseExpr()
			p.noStructLit = saved
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBracket, "index expression"); err != nil {
				return nil, err
			}
			x = &ast.IndexExpr{Sp: p.spanTo(start), X: x, Index: idx}

		case token.Question:
			p.advance()
			x = &ast.TryExpr{Sp: p.spanTo(start), X: x}

		default:
			return x, nil
		}
	}
}

func (p *Parser) parseCallArgs() ([]ast.Expr, error) {
	if _, err := p.expect(token.LParen, "call arguments"); err != nil {
		return nil, err
	}
	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	var args []ast.Expr
	for !p.at(token.RParen) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RParen, "call arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	start := p.tok.Span

	switch p.tok.Kind {
	case token.IntLit:
		e := &ast.LitExpr{Sp: start, Kind: ast.LitInt, Text: p.tok.Text}
		p.advance()
		return e, nil
	case token.FloatLit:
		e := &ast.LitExpr{Sp: start, Kind: ast.LitFloat, Text: p.tok.Text}
		p.advance()
		return e, nil
	case token.StringLit:
		e := &ast.LitExpr{Sp: start, Kind: ast.LitString, Text: p.tok.Text}
		p.advance()
		return e, nil
	case token.CharLit:
		e := &ast.LitExpr{Sp: start, Kind: ast.LitChar, Text: p.tok.Text}
		p.advance()
		return e, nil
	case token.KwTrue, token.KwFalse:
		e := &ast.LitExpr{Sp: start, Kind: ast.LitBool, Text: p.tok.Text}
		p.advance()
		return e, nil

	case token.KwSelfValue:
		p.advance()
		return &ast.SelfExpr{Sp: start}, nil

	case token.Ident, token.KwSelfType:
		return p.parsePathOrStructLit()

	case token.LParen:
		return p.parseParenOrTuple()

	case token.LBracket:
		return p.parseArray()

	case token.LBrace:
		return p.parseBlock()

	case token.Pipe, token.OrOr, token.KwMove:
		return p.parseClosure()

	case token.KwIf:
		return p.parseIf()

	case token.KwMatch:
		return p.parseMatch()

	case token.KwReturn:
		p.advance()
		var val ast.Expr
		if p.startsExpr() {
			var err error
			val, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		return &ast.ReturnExpr{Sp: p.spanTo(start), Value: val}, nil

	case token.KwBreak:
		p.advance()
		var val ast.Expr
		if p.startsExpr() {
			var err error
			val, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		return &ast.BreakExpr{Sp: p.spanTo(start), Value: val}, nil

	case token.KwContinue:
		p.advance()
		return &ast.ContinueExpr{Sp: start}, nil

	default:
		return nil, p.errorf("expected an expression, found %s", p.describe())
	}
}

// parsePathOrStructLit parses everything that begins with an identifier:
// plain references, :: paths, macro invocations, and struct literals.
func (p *Parser) parsePathOrStructLit() (ast.Expr, error) {
	start := p.tok.Span
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

		// macro invocation: only valid on a single-segment name
		if p.at(token.Bang) && len(segments) == 1 {
			return p.parseMacro(start, segments[0])
		}

		if !p.at(token.ColonColon) {
			break
		}
		p.advance()
		// turbofish on a path: Vec::<i32>::new
		if p.at(token.Lt) {
			if err := p.skipGenerics(); err != nil {
				return nil, err
			}
			if !p.eat(token.ColonColon) {
				break
			}
		}
	}

	if p.at(token.LBrace) && !p.noStructLit {
		return p.parseStructLit(start, segments)
	}

	if len(segments) == 1 {
		return &ast.IdentExpr{Sp: p.spanTo(start), Name: segments[0]}, nil
	}
	return &ast.PathExpr{Sp: p.spanTo(start), Segments: segments}, nil
}

func (p *Parser) parseStructLit(start source.Span, segments []string) (ast.Expr, error) {
	if _, err := p.expect(token.LBrace, "struct literal"); err != nil {
		return nil, err
	}
	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	lit := &ast.StructLitExpr{Path: segments}
	for !p.at(token.RBrace) {
		if p.eat(token.DotDot) {
			base, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			lit.Base = base
			break
		}
		fname, err := p.expect(token.Ident, "struct literal field")
		if err != nil {
			return nil, err
		}
		field := ast.FieldInit{Name: fname.Text}
		if p.eat(token.Colon) {
			field.Value, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		lit.Fields = append(lit.Fields, field)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RBrace, "struct literal"); err != nil {
		return nil, err
	}
	lit.Sp = p.spanTo(start)
	return lit, nil
}

// parseMacro captures a macro invocation. The argument tokens are not
// parsed here: the raw text between the delimiters is kept and the
// expander re-parses whatever pieces it needs.
func (p *Parser) parseMacro(start source.Span, name string) (ast.Expr, error) {
	if _, err := p.expect(token.Bang, "macro invocation"); err != nil {
		return nil, err
	}

	open := p.tok.Kind
	close, ok := matchingClose(open)
	if !ok {
		return nil, p.errorf("expected macro delimiter after %s!, found %s", name, p.describe())
	}
	rawStart := p.tok.Span.End
	rawEnd := rawStart
	p.advance()

	depth := 1
	for depth > 0 {
		switch p.tok.Kind {
		case token.EOF:
			return nil, p.errorf("unexpected end of file in %s! arguments", name)
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				rawEnd = p.tok.Span.Start
			}
		}
		p.advance()
	}

	return &ast.MacroExpr{
		Sp:    p.spanTo(start),
		Name:  name,
		Args:  p.textBetween(rawStart, rawEnd),
		Delim: open,
	}, nil
}

func (p *Parser) parseParenOrTuple() (ast.Expr, error) {
	start := p.tok.Span
	p.advance() // (
	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	if p.at(token.RParen) {
		p.advance()
		return &ast.TupleExpr{Sp: p.spanTo(start)}, nil
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Comma) {
		if _, err := p.expect(token.RParen, "parenthesized expression"); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Sp: p.spanTo(start), X: first}, nil
	}

	tuple := &ast.TupleExpr{Elems: []ast.Expr{first}}
	for p.eat(token.Comma) {
		if p.at(token.RParen) {
			break
		}
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		tuple.Elems = append(tuple.Elems, elem)
	}
	if _, err := p.expect(token.RParen, "tuple expression"); err != nil {
		return nil, err
	}
	tuple.Sp = p.spanTo(start)
	return tuple, nil
}

func (p *Parser) parseArray() (ast.Expr, error) {
	start := p.tok.Span
	p.advance() // [
	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	arr := &ast.ArrayExpr{}
	if p.at(token.RBracket) {
		p.advance()
		arr.Sp = p.spanTo(start)
		return arr, nil
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	arr.Elems = append(arr.Elems, first)

	if p.eat(token.Semicolon) {
		arr.Repeat, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	} else {
		for p.eat(token.Comma) {
			if p.at(token.RBracket) {
				break
			}
			elem, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, elem)
		}
	}
	if _, err := p.expect(token.RBracket, "array expression"); err != nil {
		return nil, err
	}
	arr.Sp = p.spanTo(start)
	return arr, nil
}

func (p *Parser) parseClosure() (ast.Expr, error) {
	start := p.tok.Span
	move := p.eat(token.KwMove)

	cl := &ast.ClosureExpr{Move: move}
	if p.eat(token.OrOr) {
		// zero parameters
	} else {
		if _, err := p.expect(token.Pipe, "closure parameters"); err != nil {
			return nil, err
		}
		for !p.at(token.Pipe) {
			// no or-alternatives here: the closing | must stay the
			// parameter list terminator
			pat, err := p.parsePatternSingle()
			if err != nil {
				return nil, err
			}
			// parameter type annotations are erased
			if p.eat(token.Colon) {
				if _, err := p.parseType(); err != nil {
					return nil, err
				}
			}
			cl.Params = append(cl.Params, ast.ClosureParam{Pat: pat})
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.Pipe, "closure parameters"); err != nil {
			return nil, err
		}
	}

	// optional return type forces a block body
	if p.eat(token.Arrow) {
		if _, err := p.parseType(); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		cl.Body = body
	} else {
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		cl.Body = body
	}
	cl.Sp = p.spanTo(start)
	return cl, nil
}

func (p *Parser) parseIf() (ast.Expr, error) {
	start := p.tok.Span
	p.advance() // if

	out := &ast.IfExpr{}
	if p.eat(token.KwLet) {
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Assign, "if let"); err != nil {
			return nil, err
		}
		subj, err := p.parseExprNoStruct()
		if err != nil {
			return nil, err
		}
		out.Let = &ast.LetCond{Pat: pat, Expr: subj}
	} else {
		cond, err := p.parseExprNoStruct()
		if err != nil {
			return nil, err
		}
		out.Cond = cond
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	out.Then = then

	if p.eat(token.KwElse) {
		var els ast.Expr
		if p.at(token.KwIf) {
			els, err = p.parseIf()
		} else {
			els, err = p.parseBlock()
		}
		if err != nil {
			return nil, err
		}
		out.Else = els
	}

	out.Sp = p.spanTo(start)
	return out, nil
}

func (p *Parser) parseMatch() (ast.Expr, error) {
	start := p.tok.Span
	p.advance() // match

	subject, err := p.parseExprNoStruct()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, "match expression"); err != nil {
		return nil, err
	}

	m := &ast.MatchExpr{Subject: subject}
	for !p.at(token.RBrace) {
		armStart := p.tok.Span
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		arm := ast.MatchArm{Pat: pat}

		if p.eat(token.KwIf) {
			arm.Guard, err = p.parseExprNoStruct()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.FatArrow, "match arm"); err != nil {
			return nil, err
		}
		arm.Body, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
		arm.Sp = p.spanTo(armStart)
		m.Arms = append(m.Arms, arm)

		// the comma is optional after a block-bodied arm
		if !p.eat(token.Comma) && !isBlockLike(arm.Body) {
			break
		}
	}
	if _, err := p.expect(token.RBrace, "match expression"); err != nil {
		return nil, err
	}

	m.Sp = p.spanTo(start)
	return m, nil
}

// isBlockLike reports whether the expression reads as a braced block,
// which makes a following semicolon or comma optional.
func isBlockLike(e ast.Expr) bool {
	switch e.(type) {
	case *ast.BlockExpr, *ast.IfExpr, *ast.MatchExpr:
		return true
	default:
		return false
	}
}
