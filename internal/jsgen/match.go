package jsgen

import (
	"fmt"
	"strings"

	"oxjs/internal/ast"
)

// matchJS compiles a match expression into a value-producing IIFE: the
// subject is bound once, then the arms form a sequence of guarded early
// returns in source order, so the first satisfied arm wins.
func (t *translator) matchJS(m *ast.MatchExpr) (string, error) {
	subj, err := t.exprJS(m.Subject)
	if err != nil {
		return "", err
	}
	tmp := t.state.TempVar()

	var b strings.Builder
	b.WriteString("(function() {\n")
	fmt.Fprintf(&b, "  const %s = %s;\n", tmp, subj)

	sawDefault := false
	for _, arm := range m.Arms {
		armText, unconditional, err := t.matchArmJS(&arm, tmp)
		if err != nil {
			return "", err
		}
		b.WriteString(indentLines(armText) + "\n")
		if unconditional {
			sawDefault = true
			break
		}
	}
	if !sawDefault {
		b.WriteString("  return undefined;\n")
	}
	b.WriteString("}).call(this)")
	return b.String(), nil
}

// matchArmJS renders one arm. An arm whose pattern always matches and
// that carries no guard is unconditional: its body runs unguarded and
// later arms are unreachable.
func (t *translator) matchArmJS(arm *ast.MatchArm, subj string) (string, bool, error) {
	t.state.EnterScope()
	defer t.state.ExitScope()

	cond, bindings, err := t.patternJS(arm.Pat, subj)
	if err != nil {
		return "", false, err
	}

	body, err := t.armBodyJS(arm.Body)
	if err != nil {
		return "", false, err
	}

	inner := strings.Join(bindings, "\n")
	if inner != "" {
		inner += "\n"
	}

	if arm.Guard != nil {
		// bindings must be live before the guard evaluates
		guard, err := t.exprJS(arm.Guard)
		if err != nil {
			return "", false, err
		}
		inner += fmt.Sprintf("if (%s) {\n%s\n}", guard, indentLines(body))
	} else {
		inner += body
	}

	if cond == "" && arm.Guard == nil {
		if len(bindings) == 0 {
			return inner, true, nil
		}
		// bindings need their own block so they stay local to the arm
		return "{\n" + indentLines(inner) + "\n}", true, nil
	}
	if cond == "" {
		cond = "true"
	}
	return fmt.Sprintf("if (%s) {\n%s\n}", cond, indentLines(inner)), false, nil
}

func (t *translator) armBodyJS(body ast.Expr) (string, error) {
	if block, ok := body.(*ast.BlockExpr); ok {
		inner, err := t.blockJS(block, blockReturn)
		if err != nil {
			return "", err
		}
		return inner, nil
	}
	frag, err := t.exprJS(body)
	if err != nil {
		return "", err
	}
	return "return " + frag + ";", nil
}

// patternJS compiles a pattern against a subject fragment. It returns
// the runtime condition (empty when the pattern always matches) and the
// binding statements to run once the condition holds. Binding names are
// declared in the current scope.
func (t *translator) patternJS(pat ast.Pat, subj string) (cond string, bindings []string, err error) {
	switch p := pat.(type) {
	case *ast.WildcardPat:
		return "", nil, nil

	case *ast.IdentPat:
		name := t.state.Declare(p.Name)
		return "", []string{fmt.Sprintf("const %s = %s;", name, subj)}, nil

	case *ast.LitPat:
		lit, err := t.litJS(&ast.LitExpr{Kind: p.Kind, Text: p.Text})
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s === %s", subj, lit), nil, nil

	case *ast.PathPat:
		last := p.Segments[len(p.Segments)-1]
		if last == "None" {
			return fmt.Sprintf("(%s === null || %s === undefined)", subj, subj), nil, nil
		}
		// payload-less variant: its runtime value is the tag string
		return fmt.Sprintf("%s === '%s'", subj, last), nil, nil

	case *ast.TupleStructPat:
		return t.tupleStructPatJS(p, subj)

	case *ast.TuplePat:
		var conds []string
		for i, elem := range p.Elems {
			c, bs, err := t.patternJS(elem, fmt.Sprintf("%s[%d]", subj, i))
			if err != nil {
				return "", nil, err
			}
			if c != "" {
				conds = append(conds, c)
			}
			bindings = append(bindings, bs...)
		}
		return strings.Join(conds, " && "), bindings, nil

	case *ast.StructPat:
		return t.structPatJS(p, subj)

	case *ast.RefPat:
		return t.patternJS(p.Inner, subj)

	case *ast.OrPat:
		var conds []string
		for _, alt := range p.Alts {
			c, bs, err := t.patternJS(alt, subj)
			if err != nil {
				return "", nil, err
			}
			if len(bs) > 0 {
				return "", nil, unsupported("bindings inside an or-pattern")
			}
			if c == "" {
				c = "true"
			}
			conds = append(conds, "("+c+")")
		}
		return strings.Join(conds, " || "), nil, nil

	case *ast.RangePat:
		lo, err := t.exprJS(p.Lo)
		if err != nil {
			return "", nil, err
		}
		hi, err := t.exprJS(p.Hi)
		if err != nil {
			return "", nil, err
		}
		cmp := "<"
		if p.Inclusive {
			cmp = "<="
		}
		return fmt.Sprintf("%s >= %s && %s %s %s", subj, lo, subj, cmp, hi), nil, nil

	default:
		return "", nil, unsupportedf("pattern", "%T", pat)
	}
}

// tupleStructPatJS compiles Some/Ok/Err and tagged tuple variants. The
// optional wrapper is erased at run time, so Some(p) is a null guard
// plus the inner pattern against the subject itself.
func (t *translator) tupleStructPatJS(p *ast.TupleStructPat, subj string) (string, []string, error) {
	last := p.Segments[len(p.Segments)-1]
	switch last {
	case "Some":
		if len(p.Elems) != 1 {
			return "", nil, unsupportedf("pattern", "Some with %d elements", len(p.Elems))
		}
		guard := fmt.Sprintf("%s !== null && %s !== undefined", subj, subj)
		c, bs, err := t.patternJS(p.Elems[0], subj)
		if err != nil {
			return "", nil, err
		}
		if c != "" {
			guard += " && " + c
		}
		return guard, bs, nil

	case "Ok":
		if len(p.Elems) != 1 {
			return "", nil, unsupportedf("pattern", "Ok with %d elements", len(p.Elems))
		}
		guard := fmt.Sprintf("%s && %s.ok !== undefined", subj, subj)
		c, bs, err := t.patternJS(p.Elems[0], subj+".ok")
		if err != nil {
			return "", nil, err
		}
		if c != "" {
			guard += " && " + c
		}
		return guard, bs, nil

	case "Err":
		if len(p.Elems) != 1 {
			return "", nil, unsupportedf("pattern", "Err with %d elements", len(p.Elems))
		}
		guard := fmt.Sprintf("%s && %s.error !== undefined", subj, subj)
		c, bs, err := t.patternJS(p.Elems[0], subj+".error")
		if err != nil {
			return "", nil, err
		}
		if c != "" {
			guard += " && " + c
		}
		return guard, bs, nil
	}

	// tagged variant with positional payload
	guard := fmt.Sprintf("%s !== null && typeof %s === 'object' && %s.type === '%s'",
		subj, subj, subj, last)
	var bindings []string
	for i, elem := range p.Elems {
		c, bs, err := t.patternJS(elem, fmt.Sprintf("%s.value%d", subj, i))
		if err != nil {
			return "", nil, err
		}
		if c != "" {
			guard += " && " + c
		}
		bindings = append(bindings, bs...)
	}
	return guard, bindings, nil
}

// structPatJS compiles struct-shaped patterns. A qualified path
// (Enum::Variant { .. }) tests the discriminant; a bare struct name
// only requires an object.
func (t *translator) structPatJS(p *ast.StructPat, subj string) (string, []string, error) {
	guard := fmt.Sprintf("%s !== null && typeof %s === 'object'", subj, subj)
	if len(p.Segments) > 1 {
		variant := p.Segments[len(p.Segments)-1]
		guard += fmt.Sprintf(" && %s.type === '%s'", subj, variant)
	}

	var bindings []string
	for _, field := range p.Fields {
		fieldSubj := subj + "." + field.Name
		if field.Pat == nil {
			name := t.state.Declare(field.Name)
			bindings = append(bindings, fmt.Sprintf("const %s = %s;", name, fieldSubj))
			continue
		}
		c, bs, err := t.patternJS(field.Pat, fieldSubj)
		if err != nil {
			return "", nil, err
		}
		if c != "" {
			guard += " && " + c
		}
		bindings = append(bindings, bs...)
	}
	return guard, bindings, nil
}
