// Package token defines lexical token kinds for the Rust-subset front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Attributes (#[...]) are consumed by the lexer as trivia and never
//     appear in the main token stream.
//   - Lifetime markers ('a) are lexed as Lifetime tokens and skipped by
//     the parser; they never influence the output.
package token
