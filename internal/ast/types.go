package ast

import (
	"strings"

	"oxjs/internal/source"
)

// TypeRef is a parsed type annotation. The generator is type-erased, so
// only the path and generic arguments are kept; references and
// mutability are flattened away.
type TypeRef struct {
	Sp   source.Span
	Name string // last path segment, e.g. "Vec", "i32", "Self"
	Path []string
	Args []*TypeRef
}

func (t *TypeRef) Span() source.Span { return t.Sp }

// String renders the type roughly as written, for error messages.
func (t *TypeRef) String() string {
	if t == nil {
		return "_"
	}
	var b strings.Builder
	b.WriteString(strings.Join(t.Path, "::"))
	if len(t.Args) > 0 {
		b.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte('>')
	}
	return b.String()
}
