package source

// Span is a half-open byte range [Start, End) inside a file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Len returns the byte length of the span.
func (s Span) Len() uint32 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// IsZero reports whether the span carries no position information.
func (s Span) IsZero() bool {
	return s.File == 0 && s.Start == 0 && s.End == 0
}

// Join returns the smallest span covering both a and b.
// Both spans must belong to the same file.
func Join(a, b Span) Span {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	out := a
	if b.Start < out.Start {
		out.Start = b.Start
	}
	if b.End > out.End {
		out.End = b.End
	}
	return out
}
