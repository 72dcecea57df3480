// Package token defines the lexical token kinds produced by the regg scanner.
// Invariants:
//   - Token.Lexeme is the exact source slice consumed for the token,
//     delimiters included.
//   - Token.Literal is the delimiter-trimmed payload (tag name, code text,
//     expression text) and is empty for pure-delimiter kinds.
//   - Token.Span addresses the source by codepoint offsets, not bytes.
//   - Token.Line is the scanner's line counter at the moment the token was
//     emitted; for multi-line tokens this is the line where the token ended.
//   - Every token stream ends with exactly one EOF token with an empty lexeme.
package token
