package jsgen

import (
	"strings"
)

// This file is the dedicated tokenizer for the format-macro mini
// grammar: quote-aware argument splitting, placeholder scanning, and
// template-literal escaping. Keeping it separate from the expander makes
// the escaping rules independently testable.

// splitMacroArgs splits raw macro argument text on top-level commas.
// Commas inside string/char literals or inside any bracket nesting do
// not separate arguments. Empty input yields no arguments.
func splitMacroArgs(raw string) []string {
	var (
		args    []string
		depth   int
		start   int
		inStr   bool
		inChar  bool
		escaped bool
	)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inStr:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inStr = false
			}
		case inChar:
			if c == '\\' {
				escaped = true
			} else if c == '\'' {
				inChar = false
			}
		case c == '"':
			inStr = true
		case c == '\'':
			inChar = true
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			args = append(args, strings.TrimSpace(raw[start:i]))
			start = i + 1
		}
	}
	if tail := strings.TrimSpace(raw[start:]); tail != "" {
		args = append(args, tail)
	}
	return args
}

// splitRepeatForm splits vec!-style "elem; count" argument text at the
// top-level semicolon, if any.
func splitRepeatForm(raw string) (elem, count string, ok bool) {
	var (
		depth   int
		inStr   bool
		inChar  bool
		escaped bool
	)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inStr:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inStr = false
			}
		case inChar:
			if c == '\\' {
				escaped = true
			} else if c == '\'' {
				inChar = false
			}
		case c == '"':
			inStr = true
		case c == '\'':
			inChar = true
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ';' && depth == 0:
			return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:]), true
		}
	}
	return "", "", false
}

// placeholderKind distinguishes the supported format placeholders.
type placeholderKind uint8

const (
	placeholderDisplay placeholderKind = iota // {}
	placeholderDebug                          // {:?}
	placeholderNamed                          // {name} or {name:?}
)

// placeholder is one {...} slot found in a format template.
type placeholder struct {
	Kind  placeholderKind
	Name  string // for placeholderNamed
	Debug bool   // :? on a named placeholder
}

// templatePart is a run of literal text followed by an optional
// placeholder. The final part has None set.
type templatePart struct {
	Literal string
	Slot    *placeholder
}

// scanTemplate splits a format template (without surrounding quotes)
// into literal runs and placeholders. {{ and }} unescape to single
// braces inside literal runs.
func scanTemplate(tpl string) ([]templatePart, error) {
	var (
		parts []templatePart
		lit   strings.Builder
	)
	for i := 0; i < len(tpl); i++ {
		c := tpl[i]
		switch c {
		case '{':
			if i+1 < len(tpl) && tpl[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tpl[i:], '}')
			if end < 0 {
				return nil, unsupportedf("format template", "unclosed '{' in %q", tpl)
			}
			inner := tpl[i+1 : i+end]
			slot, err := parsePlaceholder(inner, tpl)
			if err != nil {
				return nil, err
			}
			parts = append(parts, templatePart{Literal: lit.String(), Slot: slot})
			lit.Reset()
			i += end
		case '}':
			if i+1 < len(tpl) && tpl[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, unsupportedf("format template", "stray '}' in %q", tpl)
		default:
			lit.WriteByte(c)
		}
	}
	parts = append(parts, templatePart{Literal: lit.String()})
	return parts, nil
}

func parsePlaceholder(inner, tpl string) (*placeholder, error) {
	switch inner {
	case "":
		return &placeholder{Kind: placeholderDisplay}, nil
	case ":?", ":#?":
		return &placeholder{Kind: placeholderDebug}, nil
	}
	name := inner
	debug := false
	if idx := strings.IndexByte(inner, ':'); idx >= 0 {
		spec := inner[idx+1:]
		if spec != "?" && spec != "#?" {
			return nil, unsupportedf("format template", "format spec {%s} in %q", inner, tpl)
		}
		name = inner[:idx]
		debug = true
	}
	if name == "" || !isIdentName(name) {
		return nil, unsupportedf("format template", "placeholder {%s} in %q", inner, tpl)
	}
	return &placeholder{Kind: placeholderNamed, Name: name, Debug: debug}, nil
}

func isIdentName(s string) bool {
	for i, c := range s {
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return s != ""
}

// escapeTemplateText escapes literal text for inclusion in a JS template
// literal: backticks and ${ openers. Backslash escapes from the source
// string body (\n, \", \\) are left alone since they mean the same thing
// inside a template literal.
func escapeTemplateText(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
		case c == '`':
			b.WriteString("\\`")
		case c == '$' && i+1 < len(s) && s[i+1] == '{':
			b.WriteString(`\$`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
