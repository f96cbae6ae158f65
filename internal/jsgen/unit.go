package jsgen

import (
	"fmt"
	"strings"

	"oxjs/internal/ast"
)

// TranslateItem translates one top-level declaration into one fragment.
// Every invocation gets a fresh translation context, so rename counters
// restart per declaration and concurrent invocations share nothing.
func TranslateItem(item ast.Item) (string, error) {
	t := newTranslator()
	switch it := item.(type) {
	case *ast.FnDecl:
		return t.fnJS(it)
	case *ast.StructDecl:
		return t.structJS(it)
	case *ast.EnumDecl:
		return t.enumJS(it)
	case *ast.ImplBlock:
		return t.implJS(it)
	case *ast.ConstDecl:
		return t.constJS(it)
	case *ast.UseDecl:
		// inert in the output; kept as a marker, not silently dropped
		return "// skipped: use " + it.Path, nil
	case *ast.ModDecl:
		return "// skipped: mod " + it.Name, nil
	case *ast.TypeAliasDecl:
		return "", unsupportedf("declaration", "type alias %s", it.Name)
	case *ast.TraitDecl:
		return "", unsupportedf("declaration", "trait %s", it.Name)
	default:
		return "", unsupportedf("declaration", "%T", item)
	}
}

// TranslateFile translates a whole parsed unit: every item in source
// order, assembled behind the runtime preamble.
func TranslateFile(file *ast.File) (string, error) {
	frags := make([]string, 0, len(file.Items))
	for _, item := range file.Items {
		frag, err := TranslateItem(item)
		if err != nil {
			return "", fmt.Errorf("item %s: %w", itemName(item), err)
		}
		frags = append(frags, frag)
	}
	return Assemble(frags), nil
}

// Assemble concatenates fragments in order behind the preamble. It
// performs no validation; ordering is the only composition rule.
func Assemble(frags []string) string {
	var b strings.Builder
	b.WriteString(preamble)
	for _, frag := range frags {
		b.WriteString("\n")
		b.WriteString(frag)
		b.WriteString("\n")
	}
	return b.String()
}

func itemName(item ast.Item) string {
	switch it := item.(type) {
	case *ast.FnDecl:
		return "fn " + it.Name
	case *ast.StructDecl:
		return "struct " + it.Name
	case *ast.EnumDecl:
		return "enum " + it.Name
	case *ast.ImplBlock:
		return "impl " + it.Type
	case *ast.ConstDecl:
		return "const " + it.Name
	case *ast.UseDecl:
		return "use " + it.Path
	case *ast.ModDecl:
		return "mod " + it.Name
	case *ast.TypeAliasDecl:
		return "type " + it.Name
	case *ast.TraitDecl:
		return "trait " + it.Name
	default:
		return fmt.Sprintf("%T", item)
	}
}
