package jsgen

import (
	"fmt"
	"strings"
)

// State is the translation context for one top-level declaration. It is
// created when translation of a declaration begins and discarded when it
// ends; nothing in it is shared between invocations, which keeps the
// engine reentrant under parallel drivers.
type State struct {
	// scopes holds the binding layers, innermost last.
	scopes []*scope

	tempCounter int

	// structName is the receiver type inside an impl block, used to
	// resolve Self. inStatic marks associated functions without a
	// receiver, where Self{} literals need prototype-preserving
	// construction.
	structName string
	inStatic   bool
}

// scope is one binding layer. names maps original names to their live
// target name; issued remembers every target name this layer ever
// handed out, so a later same-scope shadow that overwrites a names
// entry cannot free the old target name for reuse within the layer's
// lifetime.
type scope struct {
	names  map[string]string
	issued map[string]bool
}

func newScope() *scope {
	return &scope{names: map[string]string{}, issued: map[string]bool{}}
}

// NewState creates a context with one root scope.
func NewState() *State {
	return &State{scopes: []*scope{newScope()}}
}

// EnterScope pushes a fresh scope layer.
func (s *State) EnterScope() {
	s.scopes = append(s.scopes, newScope())
}

// ExitScope discards the innermost layer and every substitution it
// introduced, so a sibling scope may reuse names without renaming.
func (s *State) ExitScope() {
	if len(s.scopes) > 1 {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}
}

// Declare registers a new binding and returns the target name to emit.
// When the proposed name is already live anywhere in the scope chain the
// binding gets a uniquely suffixed alternate, keeping renaming injective.
func (s *State) Declare(name string) string {
	js := s.uniqueName(escapeReserved(name))
	top := s.scopes[len(s.scopes)-1]
	top.names[name] = js
	top.issued[js] = true
	return js
}

// Synth issues a synthesized target name (loop indices, discarded
// parameters). It never maps back from a source name, but it occupies
// the name like any declaration so user bindings cannot alias it.
func (s *State) Synth(base string) string {
	js := s.uniqueName(base)
	s.scopes[len(s.scopes)-1].issued[js] = true
	return js
}

// Resolve returns the live target name for a reference, searching
// innermost-out. Names never declared in this context (globals, function
// names, enum companions) pass through with only reserved-word escaping.
func (s *State) Resolve(name string) string {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if js, ok := s.scopes[i].names[name]; ok {
			return js
		}
	}
	return escapeReserved(name)
}

func (s *State) uniqueName(proposed string) string {
	candidate := proposed
	for n := 1; s.nameLive(candidate); n++ {
		candidate = fmt.Sprintf("%s_%d", proposed, n)
	}
	return candidate
}

func (s *State) nameLive(js string) bool {
	for _, sc := range s.scopes {
		if sc.issued[js] {
			return true
		}
	}
	return false
}

// TempVar returns a fresh synthesized name for hoisted values. The
// counter is monotonic within one context, so temp names are comparable
// only inside a single declaration. Counter values whose name a user
// binding already took are skipped.
func (s *State) TempVar() string {
	for {
		s.tempCounter++
		js := fmt.Sprintf("_temp%d", s.tempCounter)
		if !s.nameLive(js) {
			s.scopes[len(s.scopes)-1].issued[js] = true
			return js
		}
	}
}

// reservedWords are target-language keywords that cannot be used as
// binding names. Source names colliding with them grow a trailing
// underscore before uniqueness checking.
var reservedWords = map[string]bool{
	"await": true, "case": true, "catch": true, "class": true,
	"debugger": true, "default": true, "delete": true, "do": true,
	"export": true, "extends": true, "finally": true, "function": true,
	"import": true, "in": true, "instanceof": true, "new": true,
	"null": true, "of": true, "super": true, "switch": true,
	"this": true, "throw": true, "try": true, "typeof": true,
	"undefined": true, "var": true, "void": true, "with": true,
	"yield": true,
}

func escapeReserved(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

// indentLines prefixes every non-empty line of s with one indent step.
func indentLines(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}
