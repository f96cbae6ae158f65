package lexer

import (
	"oxjs/internal/token"
)

// scanNumber reads an integer or float literal, including underscore
// separators, base prefixes, and type suffixes (42u32, 1.5f64).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Off
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.consumeNumSuffix()
			return token.Token{Kind: kind, Span: lx.spanFrom(start), Text: lx.textFrom(start)}
		case 'o', 'O', 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.consumeNumSuffix()
			return token.Token{Kind: kind, Span: lx.spanFrom(start), Text: lx.textFrom(start)}
		}
	}

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// A '.' only belongs to the number when a digit follows. This keeps
	// ranges (0..n) and method calls (1.to_string()) intact.
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		if isDec(next) || ((next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2))) {
			kind = token.FloatLit
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	if suffix := lx.consumeNumSuffix(); suffix == 'f' {
		kind = token.FloatLit
	}
	return token.Token{Kind: kind, Span: lx.spanFrom(start), Text: lx.textFrom(start)}
}

// consumeNumSuffix eats a trailing type suffix (i32, u64, usize, f64, ...)
// and returns its first letter, or 0 when there is none.
func (lx *Lexer) consumeNumSuffix() byte {
	b := lx.cursor.Peek()
	if b != 'i' && b != 'u' && b != 'f' {
		return 0
	}
	// Only consume when the rest looks like a numeric type name, so an
	// adjacent identifier is left alone.
	n := uint32(1)
	for isIdentContinueByte(lx.cursor.PeekAt(n)) {
		n++
	}
	switch string(lx.file.Content[lx.cursor.Off : lx.cursor.Off+n]) {
	case "i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64":
		lx.cursor.Off += n
		return b
	}
	return 0
}
