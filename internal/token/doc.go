// Package token defines lexical token kinds and values for the USCL front end.
// Invariants:
//   - Tokens are immutable values; the scanner appends them and never mutates.
//   - Token.Line/Column are 1-based and record the cursor position right
//     after the lexeme (trailing-position convention).
//   - 'true'/'false' map to BoolLit and 'and'/'or'/'not' to operator kinds
//     through the keyword table; consumers must not expect generic keyword
//     kinds for them.
//   - SymbolLit, Whitespace, Comment, Indent, and Dedent are declared for the
//     downstream surface but never appear in the scanner's output stream.
package token
