package jsgen

import (
	"fmt"
	"strings"

	"oxjs/internal/ast"
)

// blockMode controls how the final expression of a block is rendered.
type blockMode uint8

const (
	// blockReturn emits `return <tail>;` for a trailing expression, for
	// function bodies and value-position blocks.
	blockReturn blockMode = iota
	// blockNoReturn discards the trailing expression's value.
	blockNoReturn
)

// blockJS translates a braced statement list. The block gets its own
// scope layer; leaving it discards every substitution the block
// introduced, so sibling blocks can reuse names freely.
func (t *translator) blockJS(b *ast.BlockExpr, mode blockMode) (string, error) {
	t.state.EnterScope()
	defer t.state.ExitScope()

	var lines []string
	for i, stmt := range b.Stmts {
		last := i == len(b.Stmts)-1

		// trailing expression without semicolon is the block's value
		if es, ok := stmt.(*ast.ExprStmt); ok && last && !es.Semi && mode == blockReturn {
			frag, err := t.exprJS(es.X)
			if err != nil {
				return "", err
			}
			lines = append(lines, "return "+frag+";")
			continue
		}

		frag, err := t.stmtJS(stmt)
		if err != nil {
			return "", err
		}
		if frag != "" {
			lines = append(lines, frag)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// stmtJS translates one statement to one or more lines of output.
func (t *translator) stmtJS(stmt ast.Stmt) (string, error) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		return t.letJS(s)

	case *ast.ExprStmt:
		return t.exprStmtJS(s)

	case *ast.WhileStmt:
		return t.whileJS(s)

	case *ast.ForStmt:
		return t.forJS(s)

	case *ast.LoopStmt:
		body, err := t.blockJS(s.Body, blockNoReturn)
		if err != nil {
			return "", err
		}
		return "while (true) {\n" + indentLines(body) + "\n}", nil

	case *ast.ItemStmt:
		fn, ok := s.Item.(*ast.FnDecl)
		if !ok {
			return "", unsupportedf("nested declaration", "%T", s.Item)
		}
		return t.fnJS(fn)

	default:
		return "", unsupportedf("statement", "%T", stmt)
	}
}

// exprStmtJS renders an expression in statement position. Control-flow
// expressions and if chains become real statements here instead of the
// value-position IIFE forms.
func (t *translator) exprStmtJS(s *ast.ExprStmt) (string, error) {
	switch x := s.X.(type) {
	case *ast.ReturnExpr:
		if x.Value == nil {
			return "return;", nil
		}
		frag, err := t.exprJS(x.Value)
		if err != nil {
			return "", err
		}
		return "return " + frag + ";", nil

	case *ast.BreakExpr:
		if x.Value != nil {
			return "", unsupported("break with value")
		}
		return "break;", nil

	case *ast.ContinueExpr:
		return "continue;", nil

	case *ast.IfExpr:
		return t.ifLadderJS(x, blockNoReturn)

	case *ast.BlockExpr:
		body, err := t.blockJS(x, blockNoReturn)
		if err != nil {
			return "", err
		}
		return "{\n" + indentLines(body) + "\n}", nil

	case *ast.TupleExpr:
		if len(x.Elems) == 0 {
			// the unit expression as a statement is a no-op
			return "", nil
		}
	}

	frag, err := t.exprJS(s.X)
	if err != nil {
		return "", err
	}
	return frag + ";", nil
}

func (t *translator) letJS(s *ast.LetStmt) (string, error) {
	var init string
	if s.Init != nil {
		frag, err := t.exprJS(s.Init)
		if err != nil {
			return "", err
		}
		init = frag
	}

	switch pat := s.Pat.(type) {
	case *ast.IdentPat:
		// Declare after the initializer is translated: the initializer
		// must still see any previous binding of the same name.
		name := t.state.Declare(pat.Name)
		if s.Init == nil {
			return fmt.Sprintf("let %s;", name), nil
		}
		kw := "const"
		if pat.Mut {
			kw = "let"
		}
		return fmt.Sprintf("%s %s = %s;", kw, name, init), nil

	case *ast.WildcardPat:
		if s.Init == nil {
			return "", nil
		}
		// evaluated for effect only
		return init + ";", nil

	case *ast.TuplePat:
		if s.Init == nil {
			return "", unsupported("tuple binding without initializer")
		}
		names := make([]string, len(pat.Elems))
		for i, elem := range pat.Elems {
			switch ep := elem.(type) {
			case *ast.IdentPat:
				names[i] = t.state.Declare(ep.Name)
			case *ast.WildcardPat:
				names[i] = t.state.Synth(fmt.Sprintf("_unused_%d", i))
			default:
				return "", unsupportedf("binding pattern", "%T", elem)
			}
		}
		return fmt.Sprintf("const [%s] = %s;", strings.Join(names, ", "), init), nil

	default:
		return "", unsupportedf("binding pattern", "%T", s.Pat)
	}
}

// ifLadderJS renders an if/else-if/else chain as statements. Both
// statement position (mode blockNoReturn) and the value-position IIFE
// body (mode blockReturn) share this.
func (t *translator) ifLadderJS(x *ast.IfExpr, mode blockMode) (string, error) {
	var b strings.Builder

	if x.Let != nil {
		return t.ifLetJS(x, mode)
	}

	cond, err := t.exprJS(x.Cond)
	if err != nil {
		return "", err
	}
	then, err := t.blockJS(x.Then, mode)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "if (%s) {\n%s\n}", cond, indentLines(then))

	switch els := x.Else.(type) {
	case nil:
	case *ast.IfExpr:
		chained, err := t.ifLadderJS(els, mode)
		if err != nil {
			return "", err
		}
		b.WriteString(" else " + chained)
	case *ast.BlockExpr:
		body, err := t.blockJS(els, mode)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " else {\n%s\n}", indentLines(body))
	default:
		return "", unsupportedf("else branch", "%T", x.Else)
	}
	return b.String(), nil
}

// ifLetJS renders if let: the subject is hoisted into a temp so it is
// evaluated exactly once, then the pattern's condition guards the then
// branch with its bindings in scope.
func (t *translator) ifLetJS(x *ast.IfExpr, mode blockMode) (string, error) {
	subj, err := t.exprJS(x.Let.Expr)
	if err != nil {
		return "", err
	}
	tmp := t.state.TempVar()

	t.state.EnterScope()
	cond, bindings, err := t.patternJS(x.Let.Pat, tmp)
	if err != nil {
		t.state.ExitScope()
		return "", err
	}
	then, err := t.blockJS(x.Then, mode)
	t.state.ExitScope()
	if err != nil {
		return "", err
	}
	if cond == "" {
		cond = fmt.Sprintf("%s !== undefined", tmp)
	}

	inner := strings.Join(bindings, "\n")
	if inner != "" {
		inner += "\n"
	}
	inner += then

	var b strings.Builder
	fmt.Fprintf(&b, "{\n  const %s = %s;\n", tmp, subj)
	fmt.Fprintf(&b, "%s\n}", indentLines(fmt.Sprintf("if (%s) {\n%s\n}", cond, indentLines(inner))))

	if x.Else != nil {
		// the else branch belongs to the same if; restructure so it
		// stays attached inside the hoisting block
		elseText := ""
		switch els := x.Else.(type) {
		case *ast.IfExpr:
			chained, err := t.ifLadderJS(els, mode)
			if err != nil {
				return "", err
			}
			elseText = " else " + chained
		case *ast.BlockExpr:
			body, err := t.blockJS(els, mode)
			if err != nil {
				return "", err
			}
			elseText = fmt.Sprintf(" else {\n%s\n}", indentLines(body))
		}
		out := b.String()
		// attach before the closing brace of the hoisting block
		out = strings.TrimSuffix(out, "\n}")
		return out + elseText + "\n}", nil
	}
	return b.String(), nil
}

func (t *translator) whileJS(s *ast.WhileStmt) (string, error) {
	if s.Let != nil {
		return t.whileLetJS(s)
	}
	cond, err := t.exprJS(s.Cond)
	if err != nil {
		return "", err
	}
	body, err := t.blockJS(s.Body, blockNoReturn)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("while (%s) {\n%s\n}", cond, indentLines(body)), nil
}

// whileLetJS desugars while let into an endless loop with a fresh
// subject evaluation and a guarded break each iteration.
func (t *translator) whileLetJS(s *ast.WhileStmt) (string, error) {
	subj, err := t.exprJS(s.Let.Expr)
	if err != nil {
		return "", err
	}
	tmp := t.state.TempVar()

	t.state.EnterScope()
	defer t.state.ExitScope()

	cond, bindings, err := t.patternJS(s.Let.Pat, tmp)
	if err != nil {
		return "", err
	}
	if cond == "" {
		cond = fmt.Sprintf("%s !== undefined", tmp)
	}
	body, err := t.blockJS(s.Body, blockNoReturn)
	if err != nil {
		return "", err
	}

	var inner strings.Builder
	fmt.Fprintf(&inner, "const %s = %s;\n", tmp, subj)
	fmt.Fprintf(&inner, "if (!(%s)) { break; }\n", cond)
	for _, bind := range bindings {
		inner.WriteString(bind + "\n")
	}
	inner.WriteString(body)
	return "while (true) {\n" + indentLines(inner.String()) + "\n}", nil
}

func (t *translator) forJS(s *ast.ForStmt) (string, error) {
	// numeric ranges get a plain counting loop
	if rng, ok := s.Iter.(*ast.RangeExpr); ok && rng.Lo != nil && rng.Hi != nil {
		ip, ok := s.Pat.(*ast.IdentPat)
		if !ok {
			return "", unsupportedf("range loop pattern", "%T", s.Pat)
		}
		lo, err := t.exprJS(rng.Lo)
		if err != nil {
			return "", err
		}
		hi, err := t.exprJS(rng.Hi)
		if err != nil {
			return "", err
		}

		t.state.EnterScope()
		defer t.state.ExitScope()
		name := t.state.Declare(ip.Name)
		body, err := t.blockJS(s.Body, blockNoReturn)
		if err != nil {
			return "", err
		}
		cmp := "<"
		if rng.Inclusive {
			cmp = "<="
		}
		return fmt.Sprintf("for (let %s = %s; %s %s %s; %s++) {\n%s\n}",
			name, lo, name, cmp, hi, name, indentLines(body)), nil
	}

	iter := s.Iter
	enumerated := false
	if mc, ok := iter.(*ast.MethodCallExpr); ok {
		switch mc.Method {
		case "enumerate":
			enumerated = true
			iter = mc.Recv
			if inner, ok := iter.(*ast.MethodCallExpr); ok && isIterNoise(inner.Method) {
				iter = inner.Recv
			}
		case "iter", "into_iter", "iter_mut", "drain":
			iter = mc.Recv
		}
	}
	iterFrag, err := t.exprJS(iter)
	if err != nil {
		return "", err
	}

	t.state.EnterScope()
	defer t.state.ExitScope()

	var head string
	switch pat := s.Pat.(type) {
	case *ast.IdentPat:
		head = t.state.Declare(pat.Name)
	case *ast.WildcardPat:
		head = t.state.Synth("_unused_0")
	case *ast.TuplePat:
		names := make([]string, len(pat.Elems))
		for i, elem := range pat.Elems {
			switch ep := elem.(type) {
			case *ast.IdentPat:
				names[i] = t.state.Declare(ep.Name)
			case *ast.WildcardPat:
				names[i] = t.state.Synth(fmt.Sprintf("_unused_%d", i))
			default:
				return "", unsupportedf("loop pattern", "%T", elem)
			}
		}
		head = "[" + strings.Join(names, ", ") + "]"
	default:
		return "", unsupportedf("loop pattern", "%T", s.Pat)
	}

	body, err := t.blockJS(s.Body, blockNoReturn)
	if err != nil {
		return "", err
	}

	if enumerated {
		return fmt.Sprintf("for (const %s of (%s).entries()) {\n%s\n}",
			head, iterFrag, indentLines(body)), nil
	}
	return fmt.Sprintf("for (const %s of %s) {\n%s\n}",
		head, iterFrag, indentLines(body)), nil
}

// isIterNoise reports iterator-adaptor markers that compile to their
// receiver unchanged.
func isIterNoise(method string) bool {
	switch method {
	case "iter", "into_iter", "iter_mut", "cloned", "copied":
		return true
	default:
		return false
	}
}
