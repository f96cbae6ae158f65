package jsgen

import "testing"

func TestDeclareResolve(t *testing.T) {
	s := NewState()
	if got := s.Declare("count"); got != "count" {
		t.Fatalf("Declare(count) = %q", got)
	}
	if got := s.Resolve("count"); got != "count" {
		t.Fatalf("Resolve(count) = %q", got)
	}
}

func TestShadowingSameScope(t *testing.T) {
	s := NewState()
	first := s.Declare("x")
	second := s.Declare("x")
	if first != "x" || second != "x_1" {
		t.Fatalf("got %q, %q", first, second)
	}
	// later references see the newest binding
	if got := s.Resolve("x"); got != "x_1" {
		t.Fatalf("Resolve(x) = %q", got)
	}
	third := s.Declare("x")
	if third != "x_2" {
		t.Fatalf("third declare = %q", third)
	}
}

func TestSiblingScopesReuseNames(t *testing.T) {
	s := NewState()
	s.EnterScope()
	if got := s.Declare("y"); got != "y" {
		t.Fatalf("first sibling = %q", got)
	}
	s.ExitScope()
	s.EnterScope()
	if got := s.Declare("y"); got != "y" {
		t.Fatalf("second sibling = %q, leak from the first", got)
	}
	s.ExitScope()
}

func TestNestedScopeShadowDiscarded(t *testing.T) {
	s := NewState()
	s.Declare("x")
	s.EnterScope()
	if got := s.Declare("x"); got != "x_1" {
		t.Fatalf("inner declare = %q", got)
	}
	s.ExitScope()
	if got := s.Resolve("x"); got != "x" {
		t.Fatalf("after exit Resolve(x) = %q", got)
	}
}

func TestReservedWordEscaping(t *testing.T) {
	s := NewState()
	if got := s.Declare("new"); got != "new_" {
		t.Fatalf("Declare(new) = %q", got)
	}
	if got := s.Resolve("class"); got != "class_" {
		t.Fatalf("Resolve(class) = %q", got)
	}
	// field-position names go through escapeReserved directly
	if got := escapeReserved("typeof"); got != "typeof_" {
		t.Fatalf("escapeReserved(typeof) = %q", got)
	}
	if got := escapeReserved("width"); got != "width" {
		t.Fatalf("escapeReserved(width) = %q", got)
	}
}

func TestTempVarSequence(t *testing.T) {
	s := NewState()
	if a, b := s.TempVar(), s.TempVar(); a != "_temp1" || b != "_temp2" {
		t.Fatalf("got %q, %q", a, b)
	}
	// a fresh context restarts the counter
	if got := NewState().TempVar(); got != "_temp1" {
		t.Fatalf("fresh context TempVar = %q", got)
	}
}

func TestTempVarSkipsTakenName(t *testing.T) {
	s := NewState()
	if got := s.Declare("_temp1"); got != "_temp1" {
		t.Fatalf("Declare(_temp1) = %q", got)
	}
	if got := s.TempVar(); got != "_temp2" {
		t.Fatalf("TempVar after user _temp1 = %q", got)
	}
}

func TestSynthOccupiesName(t *testing.T) {
	s := NewState()
	if got := s.Synth("_unused_0"); got != "_unused_0" {
		t.Fatalf("Synth = %q", got)
	}
	if got := s.Declare("_unused_0"); got != "_unused_0_1" {
		t.Fatalf("Declare after Synth = %q", got)
	}
}

func TestIndentLines(t *testing.T) {
	got := indentLines("a;\n\nb;")
	want := "  a;\n\n  b;"
	if got != want {
		t.Fatalf("indentLines = %q, want %q", got, want)
	}
}
