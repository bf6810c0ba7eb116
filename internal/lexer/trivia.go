package lexer

// skipSpaceAndComments discards spaces, tabs, and '#' line comments without
// emitting tokens. Newlines are NOT consumed here; the main loop turns them
// into Newline tokens. Comment bytes are skipped without column accounting
// since the terminating newline resets the column anyway.
func (lx *Lexer) skipSpaceAndComments() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t':
			lx.cursor.Bump()
		case b == '#':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Skip()
			}
		default:
			return
		}
	}
}
