package jsgen

import (
	"fmt"
	"strings"

	"oxjs/internal/ast"
)

// fnJS translates a function declaration to a JS function declaration.
// Shared by top-level functions and nested fn items.
func (t *translator) fnJS(fn *ast.FnDecl) (string, error) {
	t.state.EnterScope()
	defer t.state.ExitScope()

	params, err := t.paramListJS(fn.Params)
	if err != nil {
		return "", err
	}
	body, err := t.blockJS(fn.Body, blockReturn)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("function %s(%s) {\n%s\n}",
		escapeReserved(fn.Name), params, indentLines(body)), nil
}

// paramListJS declares function parameters in the current scope,
// pre-seeding them as live so body bindings that reuse a parameter name
// get renamed.
func (t *translator) paramListJS(params []ast.Param) (string, error) {
	var names []string
	for i, p := range params {
		if p.Self {
			continue
		}
		switch pat := p.Pat.(type) {
		case *ast.IdentPat:
			names = append(names, t.state.Declare(pat.Name))
		case *ast.WildcardPat:
			names = append(names, t.state.Synth(fmt.Sprintf("_unused_%d", i)))
		case *ast.TuplePat:
			elems := make([]string, len(pat.Elems))
			for j, elem := range pat.Elems {
				ip, ok := elem.(*ast.IdentPat)
				if !ok {
					return "", unsupportedf("parameter pattern", "%T", elem)
				}
				elems[j] = t.state.Declare(ip.Name)
			}
			names = append(names, "["+strings.Join(elems, ", ")+"]")
		default:
			return "", unsupportedf("parameter pattern", "%T", p.Pat)
		}
	}
	return strings.Join(names, ", "), nil
}

// structJS translates a struct declaration to a class with a
// field-order constructor and the serialize/deserialize pair. The same
// field order flows through all three members, which is what makes the
// round-trip contract hold.
func (t *translator) structJS(s *ast.StructDecl) (string, error) {
	fields := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = escapeReserved(f.Name)
	}
	name := s.Name

	var b strings.Builder
	fmt.Fprintf(&b, "class %s {\n", name)

	fmt.Fprintf(&b, "  constructor(%s) {\n", strings.Join(fields, ", "))
	for _, f := range fields {
		fmt.Fprintf(&b, "    this.%s = %s;\n", f, f)
	}
	b.WriteString("  }\n")

	b.WriteString("  toJSON() {\n    return {")
	for i, f := range fields {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, " %s: this.%s", f, f)
	}
	b.WriteString(" };\n  }\n")

	b.WriteString("  static fromJSON(json) {\n")
	args := make([]string, len(fields))
	for i, f := range fields {
		args[i] = "json." + f
	}
	fmt.Fprintf(&b, "    return new %s(%s);\n  }\n", name, strings.Join(args, ", "))

	b.WriteString("}")
	return b.String(), nil
}

// enumJS translates an enum declaration to its companion value plus the
// type predicate. Payload-less variants are their own name as a tag
// string; payload variants are factories returning tagged objects.
func (t *translator) enumJS(e *ast.EnumDecl) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "const %s = {\n", e.Name)

	for i, v := range e.Variants {
		sep := ","
		if i == len(e.Variants)-1 {
			sep = ""
		}
		switch {
		case len(v.Tuple) > 0:
			params := make([]string, len(v.Tuple))
			for j := range v.Tuple {
				params[j] = fmt.Sprintf("value%d", j)
			}
			fmt.Fprintf(&b, "  %s: function(%s) {\n", v.Name, strings.Join(params, ", "))
			fmt.Fprintf(&b, "    return { type: '%s'", v.Name)
			for _, p := range params {
				fmt.Fprintf(&b, ", %s: %s", p, p)
			}
			fmt.Fprintf(&b, " };\n  }%s\n", sep)

		case len(v.Fields) > 0:
			params := make([]string, len(v.Fields))
			for j, f := range v.Fields {
				if f.Name == "type" {
					// the tagged-object encoding reserves this key for
					// the discriminant
					return "", unsupportedf("variant field", "%s.%s named type", e.Name, v.Name)
				}
				params[j] = escapeReserved(f.Name)
			}
			fmt.Fprintf(&b, "  %s: function(%s) {\n", v.Name, strings.Join(params, ", "))
			fmt.Fprintf(&b, "    return { type: '%s'", v.Name)
			for j, f := range v.Fields {
				fmt.Fprintf(&b, ", %s: %s", f.Name, params[j])
			}
			fmt.Fprintf(&b, " };\n  }%s\n", sep)

		default:
			fmt.Fprintf(&b, "  %s: '%s'%s\n", v.Name, v.Name, sep)
		}
	}
	b.WriteString("};\n")

	tags := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		tags[i] = "'" + v.Name + "'"
	}
	fmt.Fprintf(&b, "function is%s(value) {\n", e.Name)
	fmt.Fprintf(&b, "  const tags = [%s];\n", strings.Join(tags, ", "))
	b.WriteString("  if (typeof value === 'string') {\n    return tags.includes(value);\n  }\n")
	b.WriteString("  return value !== null && typeof value === 'object' && tags.includes(value.type);\n")
	b.WriteString("}")
	return b.String(), nil
}

// constJS translates const and static items. Both erase to module-level
// bindings; statics stay reassignable.
func (t *translator) constJS(c *ast.ConstDecl) (string, error) {
	value, err := t.exprJS(c.Value)
	if err != nil {
		return "", err
	}
	kw := "const"
	if c.Static {
		kw = "let"
	}
	return fmt.Sprintf("%s %s = %s;", kw, escapeReserved(c.Name), value), nil
}
