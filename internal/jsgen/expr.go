// Package jsgen is the translation engine: it turns the parsed source
// tree into JavaScript text. Translation is a pure structural recursion
// over the immutable input tree; each top-level declaration gets its own
// State and emits one string fragment. Fragments compose only by ordered
// concatenation, there is no target-side tree.
package jsgen

import (
	"fmt"
	"strings"

	"oxjs/internal/ast"
	"oxjs/internal/dom"
	"oxjs/internal/token"
)

type translator struct {
	state *State
}

func newTranslator() *translator {
	return &translator{state: NewState()}
}

// exprJS translates one expression node to one target fragment, or
// fails with an unsupported-construct error naming the node kind.
func (t *translator) exprJS(e ast.Expr) (string, error) {
	switch x := e.(type) {
	case *ast.LitExpr:
		return t.litJS(x)

	case *ast.IdentExpr:
		if x.Name == "None" {
			return "null", nil
		}
		return t.state.Resolve(x.Name), nil

	case *ast.SelfExpr:
		return "this", nil

	case *ast.PathExpr:
		return t.pathJS(x.Segments)

	case *ast.ParenExpr:
		inner, err := t.exprJS(x.X)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil

	case *ast.UnaryExpr:
		inner, err := t.exprJS(x.X)
		if err != nil {
			return "", err
		}
		switch x.Op {
		case token.Minus:
			return "-" + inner, nil
		case token.Bang:
			return "!" + inner, nil
		default:
			return "", unsupportedf("unary operator", "%s", x.Op)
		}

	case *ast.BinaryExpr:
		return t.binaryJS(x)

	case *ast.AssignExpr:
		return t.assignJS(x)

	case *ast.RefExpr:
		inner, err := t.exprJS(x.X)
		if err != nil {
			return "", err
		}
		// Borrows are erased. A mutable borrow of anything but a plain
		// path is semantically lossy, so the erasure is flagged in the
		// output.
		if x.Mut && !isPathLike(x.X) {
			return "/* &mut */ " + inner, nil
		}
		return inner, nil

	case *ast.DerefExpr:
		return t.exprJS(x.X)

	case *ast.CastExpr:
		return t.castJS(x)

	case *ast.TryExpr:
		return t.tryJS(x)

	case *ast.FieldExpr:
		return t.fieldJS(x)

	case *ast.IndexExpr:
		obj, err := t.exprJS(x.X)
		if err != nil {
			return "", err
		}
		idx, err := t.exprJS(x.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", obj, idx), nil

	case *ast.CallExpr:
		return t.callJS(x)

	case *ast.MethodCallExpr:
		return t.methodCallJS(x)

	case *ast.ArrayExpr:
		return t.arrayJS(x)

	case *ast.TupleExpr:
		return t.tupleJS(x)

	case *ast.RangeExpr:
		return t.rangeJS(x)

	case *ast.StructLitExpr:
		return t.structLitJS(x)

	case *ast.ClosureExpr:
		return t.closureJS(x)

	case *ast.IfExpr:
		return t.ifExprJS(x)

	case *ast.MatchExpr:
		return t.matchJS(x)

	case *ast.BlockExpr:
		body, err := t.blockJS(x, blockReturn)
		if err != nil {
			return "", err
		}
		return "(function() {\n" + indentLines(body) + "\n}).call(this)", nil

	case *ast.MacroExpr:
		return t.macroJS(x)

	case *ast.ReturnExpr, *ast.BreakExpr, *ast.ContinueExpr:
		return "", unsupported("control-flow expression in value position")

	default:
		return "", unsupportedf("expression", "%T", e)
	}
}

func (t *translator) litJS(x *ast.LitExpr) (string, error) {
	switch x.Kind {
	case ast.LitInt:
		return cleanNumeric(x.Text), nil
	case ast.LitFloat:
		return cleanNumeric(x.Text), nil
	case ast.LitString:
		return x.Text, nil
	case ast.LitChar:
		// chars erase to one-character strings
		body := x.Text[1 : len(x.Text)-1]
		return `"` + strings.ReplaceAll(body, `"`, `\"`) + `"`, nil
	case ast.LitBool:
		return x.Text, nil
	default:
		return "", unsupportedf("literal", "%d", x.Kind)
	}
}

// cleanNumeric strips underscore separators and type suffixes from a
// numeric literal so the target parser accepts it.
func cleanNumeric(text string) string {
	text = strings.ReplaceAll(text, "_", "")
	for _, suffix := range []string{
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64",
	} {
		if strings.HasSuffix(text, suffix) && len(text) > len(suffix) {
			return text[:len(text)-len(suffix)]
		}
	}
	return text
}

// pathJS renders a bare :: path in value position.
func (t *translator) pathJS(segments []string) (string, error) {
	segments = t.normalizePath(segments)
	if len(segments) == 1 {
		if segments[0] == "None" {
			return "null", nil
		}
		return t.state.Resolve(segments[0]), nil
	}
	return strings.Join(segments, "."), nil
}

// normalizePath resolves Self and strips namespace segments that have no
// target counterpart (Option::, Result::, std::).
func (t *translator) normalizePath(segments []string) []string {
	out := make([]string, 0, len(segments))
	for i, seg := range segments {
		switch {
		case seg == "Self" && t.state.structName != "":
			out = append(out, t.state.structName)
		case i == 0 && (seg == "Option" || seg == "Result" || seg == "std"):
			// dropped namespace qualifier
		case seg == "env" && i > 0:
			out = append(out, "env")
		default:
			out = append(out, seg)
		}
	}
	if len(out) == 0 {
		return segments
	}
	return out
}

func (t *translator) binaryJS(x *ast.BinaryExpr) (string, error) {
	l, err := t.exprJS(x.X)
	if err != nil {
		return "", err
	}
	r, err := t.exprJS(x.Y)
	if err != nil {
		return "", err
	}

	// + over a text-producing operand is concatenation; it compiles to a
	// template literal so numbers stringify the same way the source did.
	if x.Op == token.Plus && (t.producesString(x.X) || t.producesString(x.Y)) {
		return "`" + templateSlot(x.X, l) + templateSlot(x.Y, r) + "`", nil
	}

	op, ok := binaryOpJS(x.Op)
	if !ok {
		return "", unsupportedf("binary operator", "%s", x.Op)
	}
	return fmt.Sprintf("%s %s %s", l, op, r), nil
}

// templateSlot renders one operand of string concatenation inside a
// template literal. String literals inline their body; everything else
// becomes an interpolation slot.
func templateSlot(e ast.Expr, frag string) string {
	if lit, ok := e.(*ast.LitExpr); ok && lit.Kind == ast.LitString {
		return escapeTemplateText(lit.Text[1 : len(lit.Text)-1])
	}
	return "${" + frag + "}"
}

func binaryOpJS(op token.Kind) (string, bool) {
	switch op {
	case token.Plus:
		return "+", true
	case token.Minus:
		return "-", true
	case token.Star:
		return "*", true
	case token.Slash:
		return "/", true
	case token.Percent:
		return "%", true
	case token.EqEq:
		return "===", true
	case token.BangEq:
		return "!==", true
	case token.Lt:
		return "<", true
	case token.LtEq:
		return "<=", true
	case token.Gt:
		return ">", true
	case token.GtEq:
		return ">=", true
	case token.AndAnd:
		return "&&", true
	case token.OrOr:
		return "||", true
	case token.Amp:
		return "&", true
	case token.Pipe:
		return "|", true
	case token.Caret:
		return "^", true
	case token.Shl:
		return "<<", true
	default:
		return "", false
	}
}

// producesString reports whether an expression is statically
// recognizable as text-producing.
func (t *translator) producesString(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.LitExpr:
		return x.Kind == ast.LitString
	case *ast.MacroExpr:
		return x.Name == "format"
	case *ast.MethodCallExpr:
		switch x.Method {
		case "to_string", "to_uppercase", "to_lowercase", "trim",
			"trim_start", "trim_end", "join", "repeat":
			return true
		}
		return false
	case *ast.ParenExpr:
		return t.producesString(x.X)
	case *ast.BinaryExpr:
		return x.Op == token.Plus && (t.producesString(x.X) || t.producesString(x.Y))
	case *ast.RefExpr:
		return t.producesString(x.X)
	default:
		return false
	}
}

func (t *translator) assignJS(x *ast.AssignExpr) (string, error) {
	target, err := t.exprJS(x.Target)
	if err != nil {
		return "", err
	}
	value, err := t.exprJS(x.Value)
	if err != nil {
		return "", err
	}
	var op string
	switch x.Op {
	case token.Assign:
		op = "="
	case token.PlusAssign:
		op = "+="
	case token.MinusAssign:
		op = "-="
	case token.StarAssign:
		op = "*="
	case token.SlashAssign:
		op = "/="
	case token.PercentAssign:
		op = "%="
	default:
		return "", unsupportedf("assignment operator", "%s", x.Op)
	}
	return fmt.Sprintf("%s %s %s", target, op, value), nil
}

func (t *translator) castJS(x *ast.CastExpr) (string, error) {
	inner, err := t.exprJS(x.X)
	if err != nil {
		return "", err
	}
	switch x.Ty.Name {
	case "i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64":
		return fmt.Sprintf("Number(%s)", inner), nil
	case "String", "str":
		return fmt.Sprintf("String(%s)", inner), nil
	case "bool":
		return fmt.Sprintf("Boolean(%s)", inner), nil
	default:
		return fmt.Sprintf("%s /* as %s */", inner, x.Ty), nil
	}
}

// tryJS unwraps the {ok}/{error} result envelope. An error payload is
// thrown; the host catches it at whatever boundary it chooses.
func (t *translator) tryJS(x *ast.TryExpr) (string, error) {
	inner, err := t.exprJS(x.X)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"((res) => { if (res && res.error !== undefined) { throw res.error; } return res && res.ok !== undefined ? res.ok : res; })(%s)",
		inner), nil
}

func (t *translator) fieldJS(x *ast.FieldExpr) (string, error) {
	obj, err := t.exprJS(x.X)
	if err != nil {
		return "", err
	}
	if isDigits(x.Name) {
		// tuple field access erases to array indexing
		return fmt.Sprintf("%s[%s]", obj, x.Name), nil
	}
	name := x.Name
	if js, ok := dom.Property(name); ok {
		name = js
	}
	return obj + "." + name, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// isPathLike reports whether an expression is a plain place expression
// (identifier, field chain, index chain).
func isPathLike(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.IdentExpr, *ast.SelfExpr, *ast.PathExpr:
		return true
	case *ast.FieldExpr:
		return isPathLike(x.X)
	case *ast.IndexExpr:
		return isPathLike(x.X)
	default:
		return false
	}
}

func (t *translator) callJS(x *ast.CallExpr) (string, error) {
	// wrapper constructors erase before anything else
	if name, ok := calleeName(x.Callee); ok {
		switch name {
		case "Some":
			if len(x.Args) == 1 {
				return t.exprJS(x.Args[0])
			}
		case "Ok":
			if len(x.Args) == 1 {
				arg, err := t.exprJS(x.Args[0])
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("{ ok: %s }", arg), nil
			}
		case "Err":
			if len(x.Args) == 1 {
				arg, err := t.exprJS(x.Args[0])
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("{ error: %s }", arg), nil
			}
		}
	}

	if path, ok := x.Callee.(*ast.PathExpr); ok {
		if frag, handled, err := t.builtinPathCall(path.Segments, x.Args); handled {
			return frag, err
		}
	}

	callee, err := t.exprJS(x.Callee)
	if err != nil {
		return "", err
	}
	args, err := t.argListJS(x.Args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s)", callee, args), nil
}

// builtinPathCall maps well-known associated-function paths to their
// target idioms.
func (t *translator) builtinPathCall(segments []string, args []ast.Expr) (string, bool, error) {
	joined := strings.Join(segments, "::")
	switch joined {
	case "Vec::new", "Vec::with_capacity":
		return "[]", true, nil
	case "HashMap::new", "HashMap::with_capacity", "BTreeMap::new":
		return "{}", true, nil
	case "String::new":
		return `""`, true, nil
	case "String::from":
		if len(args) == 1 {
			arg, err := t.exprJS(args[0])
			if err != nil {
				return "", true, err
			}
			return fmt.Sprintf("String(%s)", arg), true, nil
		}
	case "std::env::args", "env::args":
		return "env.args()", true, nil
	}
	return "", false, nil
}

func calleeName(e ast.Expr) (string, bool) {
	switch x := e.(type) {
	case *ast.IdentExpr:
		return x.Name, true
	case *ast.PathExpr:
		if len(x.Segments) > 0 {
			return x.Segments[len(x.Segments)-1], true
		}
	}
	return "", false
}

func (t *translator) argListJS(args []ast.Expr) (string, error) {
	frags := make([]string, len(args))
	for i, a := range args {
		frag, err := t.exprJS(a)
		if err != nil {
			return "", err
		}
		frags[i] = frag
	}
	return strings.Join(frags, ", "), nil
}

func (t *translator) arrayJS(x *ast.ArrayExpr) (string, error) {
	if x.Repeat != nil {
		elem, err := t.exprJS(x.Elems[0])
		if err != nil {
			return "", err
		}
		n, err := t.exprJS(x.Repeat)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Array.from({length: %s}, () => %s)", n, elem), nil
	}
	inner, err := t.argListJS(x.Elems)
	if err != nil {
		return "", err
	}
	return "[" + inner + "]", nil
}

func (t *translator) tupleJS(x *ast.TupleExpr) (string, error) {
	if len(x.Elems) == 0 {
		// the unit value
		return "undefined", nil
	}
	inner, err := t.argListJS(x.Elems)
	if err != nil {
		return "", err
	}
	return "[" + inner + "]", nil
}

func (t *translator) rangeJS(x *ast.RangeExpr) (string, error) {
	if x.Lo == nil || x.Hi == nil {
		return "", unsupported("open-ended range in value position")
	}
	lo, err := t.exprJS(x.Lo)
	if err != nil {
		return "", err
	}
	hi, err := t.exprJS(x.Hi)
	if err != nil {
		return "", err
	}
	length := fmt.Sprintf("(%s) - (%s)", hi, lo)
	if x.Inclusive {
		length = fmt.Sprintf("(%s) - (%s) + 1", hi, lo)
	}
	// the index parameter must not capture-shadow anything the bound
	// expressions resolve to
	idx := t.state.Synth("_i")
	return fmt.Sprintf("Array.from({length: %s}, (_, %s) => (%s) + %s)", length, idx, lo, idx), nil
}

func (t *translator) structLitJS(x *ast.StructLitExpr) (string, error) {
	if x.Base != nil {
		return "", unsupported("struct update syntax")
	}
	typeName := x.Path[len(x.Path)-1]
	if typeName == "Self" {
		typeName = t.state.structName
		if typeName == "" {
			return "", unsupported("Self literal outside an impl block")
		}
		if t.state.inStatic {
			return t.selfLitStaticJS(typeName, x)
		}
	}

	values := make([]string, len(x.Fields))
	for i, f := range x.Fields {
		if f.Value == nil {
			values[i] = t.state.Resolve(f.Name)
			continue
		}
		frag, err := t.exprJS(f.Value)
		if err != nil {
			return "", err
		}
		values[i] = frag
	}
	return fmt.Sprintf("new %s(%s)", typeName, strings.Join(values, ", ")), nil
}

// selfLitStaticJS builds a Self literal inside a static associated
// function. Field values may be computed in any order by the caller, but
// the instance must come from the real constructor chain so its
// prototype identity is right; an object literal would not give that.
func (t *translator) selfLitStaticJS(typeName string, x *ast.StructLitExpr) (string, error) {
	tmp := t.state.TempVar()
	var b strings.Builder
	b.WriteString("(function() {\n")
	fmt.Fprintf(&b, "  const %s = new %s();\n", tmp, typeName)
	for _, f := range x.Fields {
		var frag string
		var err error
		if f.Value == nil {
			frag = t.state.Resolve(f.Name)
		} else {
			frag, err = t.exprJS(f.Value)
			if err != nil {
				return "", err
			}
		}
		fmt.Fprintf(&b, "  %s.%s = %s;\n", tmp, f.Name, frag)
	}
	fmt.Fprintf(&b, "  return %s;\n", tmp)
	b.WriteString("}).call(this)")
	return b.String(), nil
}

func (t *translator) closureJS(x *ast.ClosureExpr) (string, error) {
	t.state.EnterScope()
	defer t.state.ExitScope()

	params := make([]string, len(x.Params))
	for i, p := range x.Params {
		switch pat := p.Pat.(type) {
		case *ast.IdentPat:
			params[i] = t.state.Declare(pat.Name)
		case *ast.WildcardPat:
			// discarded parameters still need distinct names to keep the
			// emitted function syntactically valid
			params[i] = t.state.Synth(fmt.Sprintf("_unused_%d", i))
		case *ast.TuplePat:
			names := make([]string, len(pat.Elems))
			for j, elem := range pat.Elems {
				ip, ok := elem.(*ast.IdentPat)
				if !ok {
					return "", unsupportedf("closure parameter pattern", "%T", elem)
				}
				names[j] = t.state.Declare(ip.Name)
			}
			params[i] = "[" + strings.Join(names, ", ") + "]"
		default:
			return "", unsupportedf("closure parameter pattern", "%T", p.Pat)
		}
	}

	head := "(" + strings.Join(params, ", ") + ")"
	if block, ok := x.Body.(*ast.BlockExpr); ok {
		body, err := t.blockJS(block, blockReturn)
		if err != nil {
			return "", err
		}
		return head + " => {\n" + indentLines(body) + "\n}", nil
	}
	body, err := t.exprJS(x.Body)
	if err != nil {
		return "", err
	}
	return head + " => " + body, nil
}

// ifExprJS renders an if chain in value position. Statement position
// goes through stmtJS instead and produces a plain if statement.
func (t *translator) ifExprJS(x *ast.IfExpr) (string, error) {
	body, err := t.ifLadderJS(x, blockReturn)
	if err != nil {
		return "", err
	}
	return "(function() {\n" + indentLines(body+"\nreturn undefined;") + "\n}).call(this)", nil
}
