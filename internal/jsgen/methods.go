package jsgen

import (
	"fmt"

	"oxjs/internal/ast"
	"oxjs/internal/dom"
)

// methodRenames is the fixed rewrite table from source container/string
// method names to target spellings. Methods absent from this table and
// from every special case below pass through under their own name; that
// is deliberate, the target's duck typing decides at run time.
var methodRenames = map[string]string{
	"to_string":    "toString",
	"to_uppercase": "toUpperCase",
	"to_lowercase": "toLowerCase",
	"trim_start":   "trimStart",
	"trim_end":     "trimEnd",
	"starts_with":  "startsWith",
	"ends_with":    "endsWith",
	"contains":     "includes",
	"index_of":     "indexOf",
	"char_at":      "charAt",
}

// identityMethods compile to their receiver unchanged: iterator-adaptor
// markers and ownership ceremonies with no target counterpart.
var identityMethods = map[string]bool{
	"iter":      true,
	"into_iter": true,
	"iter_mut":  true,
	"collect":   true,
	"clone":     true,
	"cloned":    true,
	"copied":    true,
	"to_owned":  true,
	"to_vec":    true,
	"as_str":    true,
	"as_ref":    true,
	"as_mut":    true,
	"borrow":    true,
	"unwrap":    true,
	"enumerate": true,
}

func (t *translator) methodCallJS(x *ast.MethodCallExpr) (string, error) {
	recv, err := t.exprJS(x.Recv)
	if err != nil {
		return "", err
	}

	// universal dispatch: the source's static container type does not
	// survive erasure, so these operations check the runtime shape
	switch {
	case x.Method == "len" && len(x.Args) == 0:
		return fmt.Sprintf(
			"((obj) => obj.length !== undefined ? obj.length : Object.keys(obj).length)(%s)",
			recv), nil

	case x.Method == "is_empty" && len(x.Args) == 0:
		return fmt.Sprintf(
			"(((obj) => obj.length !== undefined ? obj.length : Object.keys(obj).length)(%s) === 0)",
			recv), nil

	case x.Method == "contains_key" && len(x.Args) == 1:
		key, err := t.exprJS(x.Args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			`((obj, key) => obj && typeof obj.has === "function" ? obj.has(key) : Object.prototype.hasOwnProperty.call(obj, key))(%s, %s)`,
			recv, key), nil

	case x.Method == "insert" && len(x.Args) == 2:
		key, err := t.exprJS(x.Args[0])
		if err != nil {
			return "", err
		}
		val, err := t.exprJS(x.Args[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"((obj, key, val) => obj.splice ? obj.splice(key, 0, val) : obj[key] = val)(%s, %s, %s)",
			recv, key, val), nil

	case x.Method == "remove" && len(x.Args) == 1:
		key, err := t.exprJS(x.Args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"((obj, key) => obj.splice ? obj.splice(key, 1)[0] : ((val) => (delete obj[key], val))(obj[key]))(%s, %s)",
			recv, key), nil

	case x.Method == "get" && len(x.Args) == 1:
		key, err := t.exprJS(x.Args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", recv, key), nil
	}

	// optional-value predicates: the receiver appears twice in the test,
	// so non-trivial receivers are hoisted into a single evaluation
	switch x.Method {
	case "is_some":
		if isPathLike(x.Recv) {
			return fmt.Sprintf("(%s !== null && %s !== undefined)", recv, recv), nil
		}
		return fmt.Sprintf("((v) => v !== null && v !== undefined)(%s)", recv), nil
	case "is_none":
		if isPathLike(x.Recv) {
			return fmt.Sprintf("(%s === null || %s === undefined)", recv, recv), nil
		}
		return fmt.Sprintf("((v) => v === null || v === undefined)(%s)", recv), nil
	case "is_ok":
		return fmt.Sprintf("((r) => r && r.ok !== undefined)(%s)", recv), nil
	case "is_err":
		return fmt.Sprintf("((r) => r && r.error !== undefined)(%s)", recv), nil
	case "unwrap_or":
		if len(x.Args) == 1 {
			def, err := t.exprJS(x.Args[0])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("((v, d) => v !== null && v !== undefined ? v : d)(%s, %s)", recv, def), nil
		}
	case "parse":
		return fmt.Sprintf("Number(%s)", recv), nil
	case "chars":
		return fmt.Sprintf(`%s.split("")`, recv), nil
	case "abs", "floor", "ceil", "round", "sqrt", "powi", "powf", "min", "max":
		return t.mathCallJS(x, recv)
	}

	if identityMethods[x.Method] && len(x.Args) == 0 {
		return recv, nil
	}

	name := x.Method
	if js, ok := methodRenames[name]; ok {
		name = js
	} else if js, ok := dom.Method(name); ok {
		name = js
	}
	args, err := t.argListJS(x.Args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.%s(%s)", recv, name, args), nil
}

// mathCallJS rewrites numeric receiver methods to Math calls.
func (t *translator) mathCallJS(x *ast.MethodCallExpr, recv string) (string, error) {
	fn := x.Method
	switch fn {
	case "powi", "powf":
		fn = "pow"
	}
	args, err := t.argListJS(x.Args)
	if err != nil {
		return "", err
	}
	if args != "" {
		return fmt.Sprintf("Math.%s(%s, %s)", fn, recv, args), nil
	}
	return fmt.Sprintf("Math.%s(%s)", fn, recv), nil
}
