package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Lifetime represents a lifetime marker such as 'a.
	Lifetime

	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwSelfValue represents the 'self' keyword.
	KwSelfValue // self
	// KwSelfType represents the 'Self' keyword.
	KwSelfType // Self
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwRef represents the 'ref' keyword.
	KwRef // ref
	// KwMove represents the 'move' keyword.
	KwMove // move
	// KwType represents the 'type' keyword.
	KwType // type
	// KwDyn represents the 'dyn' keyword.
	KwDyn // dyn
	// KwWhere represents the 'where' keyword.
	KwWhere // where

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit
	// CharLit represents a character literal token.
	CharLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// EqEq represents the equality operator token.
	EqEq // ==
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Amp represents the ampersand token.
	Amp // &
	// Pipe represents the pipe token.
	Pipe // |
	// Caret represents the caret token.
	Caret // ^
	// Shl represents the shift-left operator token.
	Shl // <<
	// AndAnd represents the logical and operator token.
	AndAnd // &&
	// OrOr represents the logical or operator token.
	OrOr // ||
	// Question represents the question operator token.
	Question // ?
	// Colon represents the colon token.
	Colon // :
	// ColonColon represents the path separator token.
	ColonColon // ::
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the exclusive range token.
	DotDot // ..
	// DotDotEq represents the inclusive range token.
	DotDotEq // ..=
	// Arrow represents the return-type arrow token.
	Arrow // ->
	// FatArrow represents the match-arm arrow token.
	FatArrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Underscore represents the wildcard token.
	Underscore // _
	// Pound represents the '#' token (only inside attributes).
	Pound // #
)

var kindNames = map[Kind]string{
	Invalid:       "invalid",
	EOF:           "eof",
	Ident:         "ident",
	Lifetime:      "lifetime",
	KwFn:          "fn",
	KwLet:         "let",
	KwMut:         "mut",
	KwIf:          "if",
	KwElse:        "else",
	KwWhile:       "while",
	KwFor:         "for",
	KwIn:          "in",
	KwLoop:        "loop",
	KwMatch:       "match",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwReturn:      "return",
	KwStruct:      "struct",
	KwEnum:        "enum",
	KwImpl:        "impl",
	KwTrait:       "trait",
	KwUse:         "use",
	KwMod:         "mod",
	KwConst:       "const",
	KwStatic:      "static",
	KwPub:         "pub",
	KwSelfValue:   "self",
	KwSelfType:    "Self",
	KwTrue:        "true",
	KwFalse:       "false",
	KwAs:          "as",
	KwRef:         "ref",
	KwMove:        "move",
	KwType:        "type",
	KwDyn:         "dyn",
	KwWhere:       "where",
	IntLit:        "int literal",
	FloatLit:      "float literal",
	StringLit:     "string literal",
	CharLit:       "char literal",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	EqEq:          "==",
	Bang:          "!",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Shl:           "<<",
	AndAnd:        "&&",
	OrOr:          "||",
	Question:      "?",
	Colon:         ":",
	ColonColon:    "::",
	Semicolon:     ";",
	Comma:         ",",
	Dot:           ".",
	DotDot:        "..",
	DotDotEq:      "..=",
	Arrow:         "->",
	FatArrow:      "=>",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
	Underscore:    "_",
	Pound:         "#",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
