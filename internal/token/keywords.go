package token

var keywords = map[string]Kind{
	"fn":       KwFn,
	"let":      KwLet,
	"mut":      KwMut,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"for":      KwFor,
	"in":       KwIn,
	"loop":     KwLoop,
	"match":    KwMatch,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"struct":   KwStruct,
	"enum":     KwEnum,
	"impl":     KwImpl,
	"trait":    KwTrait,
	"use":      KwUse,
	"mod":      KwMod,
	"const":    KwConst,
	"static":   KwStatic,
	"pub":      KwPub,
	"self":     KwSelfValue,
	"Self":     KwSelfType,
	"true":     KwTrue,
	"false":    KwFalse,
	"as":       KwAs,
	"ref":      KwRef,
	"move":     KwMove,
	"type":     KwType,
	"dyn":      KwDyn,
	"where":    KwWhere,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case sensitive: only the exact spelling is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
