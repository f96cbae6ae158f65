package jsgen

import (
	"fmt"
	"strings"

	"oxjs/internal/ast"
)

// implJS translates an impl block. A function whose first parameter is
// the receiver attaches to the prototype; one without attaches to the
// type itself. Inside bodies, self resolves to this through the
// expression translator, which has no other rendering for it, so no
// receiver reference can survive untranslated.
func (t *translator) implJS(block *ast.ImplBlock) (string, error) {
	var frags []string
	for _, fn := range block.Fns {
		frag, err := t.implFnJS(block.Type, fn)
		if err != nil {
			return "", fmt.Errorf("%s::%s: %w", block.Type, fn.Name, err)
		}
		frags = append(frags, frag)
	}
	return strings.Join(frags, "\n\n"), nil
}

func (t *translator) implFnJS(typeName string, fn *ast.FnDecl) (string, error) {
	hasSelf := len(fn.Params) > 0 && fn.Params[0].Self

	t.state.structName = typeName
	t.state.inStatic = !hasSelf
	defer func() {
		t.state.structName = ""
		t.state.inStatic = false
	}()

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

	target := fmt.Sprintf("%s.prototype.%s", typeName, fn.Name)
	if !hasSelf {
		target = fmt.Sprintf("%s.%s", typeName, fn.Name)
	}
	return fmt.Sprintf("%s = function(%s) {\n%s\n};", target, params, indentLines(body)), nil
}
