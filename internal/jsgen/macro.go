package jsgen

import (
	"fmt"
	"strings"

	"oxjs/internal/ast"
	"oxjs/internal/parser"
)

// macroJS expands one macro invocation. The recognized set is fixed and
// closed; any other name is a hard failure naming the macro, never a
// best-effort passthrough.
func (t *translator) macroJS(m *ast.MacroExpr) (string, error) {
	switch m.Name {
	case "format":
		return t.formatMacroJS(m.Args)

	case "println", "print":
		tpl, err := t.formatMacroJS(m.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("console.log(%s)", tpl), nil

	case "eprintln", "eprint":
		tpl, err := t.formatMacroJS(m.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("console.error(%s)", tpl), nil

	case "vec":
		return t.vecMacroJS(m.Args)

	case "panic":
		if strings.TrimSpace(m.Args) == "" {
			return `panic("explicit panic")`, nil
		}
		tpl, err := t.formatMacroJS(m.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("panic(%s)", tpl), nil

	case "assert":
		return t.assertMacroJS(m.Args)

	case "assert_eq":
		return t.assertEqMacroJS(m.Args)

	default:
		return "", unsupportedf("macro", "%s!", m.Name)
	}
}

// formatMacroJS expands format-style arguments into one template
// literal. The first argument must be a string literal template; the
// remaining arguments fill its placeholders in order.
func (t *translator) formatMacroJS(raw string) (string, error) {
	args := splitMacroArgs(raw)
	if len(args) == 0 {
		return "``", nil
	}
	tpl := args[0]
	if len(tpl) < 2 || tpl[0] != '"' || tpl[len(tpl)-1] != '"' {
		return "", unsupportedf("macro", "format template must be a string literal, got %s", tpl)
	}

	parts, err := scanTemplate(tpl[1 : len(tpl)-1])
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('`')
	next := 1
	for _, part := range parts {
		b.WriteString(escapeTemplateText(part.Literal))
		if part.Slot == nil {
			continue
		}
		switch part.Slot.Kind {
		case placeholderDisplay, placeholderDebug:
			if next >= len(args) {
				return "", unsupportedf("macro", "format template needs argument %d, got %d", next, len(args)-1)
			}
			frag, err := t.macroArgJS(args[next])
			if err != nil {
				return "", err
			}
			next++
			if part.Slot.Kind == placeholderDebug {
				frag = "debug_repr(" + frag + ")"
			}
			b.WriteString("${" + frag + "}")
		case placeholderNamed:
			frag := t.state.Resolve(part.Slot.Name)
			if part.Slot.Debug {
				frag = "debug_repr(" + frag + ")"
			}
			b.WriteString("${" + frag + "}")
		}
	}
	b.WriteByte('`')
	return b.String(), nil
}

// macroArgJS re-parses one raw argument slice and translates it.
func (t *translator) macroArgJS(src string) (string, error) {
	e, err := parser.ParseExpr(src)
	if err != nil {
		return "", fmt.Errorf("macro argument %q: %w", src, err)
	}
	return t.exprJS(e)
}

func (t *translator) vecMacroJS(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "[]", nil
	}
	if elem, count, ok := splitRepeatForm(trimmed); ok {
		elemJS, err := t.macroArgJS(elem)
		if err != nil {
			return "", err
		}
		countJS, err := t.macroArgJS(count)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Array.from({length: %s}, () => %s)", countJS, elemJS), nil
	}
	args := splitMacroArgs(trimmed)
	frags := make([]string, len(args))
	for i, a := range args {
		frag, err := t.macroArgJS(a)
		if err != nil {
			return "", err
		}
		frags[i] = frag
	}
	return "[" + strings.Join(frags, ", ") + "]", nil
}

func (t *translator) assertMacroJS(raw string) (string, error) {
	args := splitMacroArgs(raw)
	if len(args) == 0 {
		return "", unsupportedf("macro", "assert! needs a condition")
	}
	cond, err := t.macroArgJS(args[0])
	if err != nil {
		return "", err
	}
	msg := fmt.Sprintf("%q", "assertion failed: "+args[0])
	if len(args) > 1 {
		tpl, err := t.formatMacroJS(strings.Join(args[1:], ", "))
		if err != nil {
			return "", err
		}
		msg = tpl
	}
	return fmt.Sprintf("assert(%s, %s)", cond, msg), nil
}

func (t *translator) assertEqMacroJS(raw string) (string, error) {
	args := splitMacroArgs(raw)
	if len(args) < 2 {
		return "", unsupportedf("macro", "assert_eq! needs two arguments")
	}
	left, err := t.macroArgJS(args[0])
	if err != nil {
		return "", err
	}
	right, err := t.macroArgJS(args[1])
	if err != nil {
		return "", err
	}
	msg := fmt.Sprintf("%q", fmt.Sprintf("assertion failed: %s == %s", args[0], args[1]))
	return fmt.Sprintf("assert((%s) === (%s), %s)", left, right, msg), nil
}
