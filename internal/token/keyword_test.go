package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
		ok    bool
	}{
		{"fn", KwFn, true},
		{"match", KwMatch, true},
		{"self", KwSelfValue, true},
		{"Self", KwSelfType, true},
		{"loop", KwLoop, true},
		{"Fn", Invalid, false},
		{"function", Invalid, false},
		{"", Invalid, false},
	}
	for _, tt := range tests {
		got, ok := LookupKeyword(tt.ident)
		if ok != tt.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(Token{Kind: IntLit}).IsLiteral() {
		t.Error("IntLit should be a literal")
	}
	if !(Token{Kind: KwTrue}).IsLiteral() {
		t.Error("true should be a literal")
	}
	if (Token{Kind: Ident}).IsKeyword() {
		t.Error("Ident should not be a keyword")
	}
	if !(Token{Kind: PlusAssign}).IsAssignOp() {
		t.Error("+= should be an assign op")
	}
	if (Token{Kind: EqEq}).IsAssignOp() {
		t.Error("== should not be an assign op")
	}
}
