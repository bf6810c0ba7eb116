// Package lexer turns USCL source text into an ordered token sequence.
//
// One pass, left to right, at most two characters of lookahead. Dispatch
// precedence from the current character: newline, digit, letter/underscore,
// quote, fixed punctuation, operator fallback — literal and identifier
// readers always win over the symbolic path.
//
// The scanner is lenient by construction: the only diagnostic is a warning
// for an unrecognized character (which is skipped), unterminated strings
// absorb to EOF, and every input yields a complete EOF-terminated sequence.
// Malformed-source detection belongs to the parser and later phases.
package lexer
