package lexer

// cursor is the scan position threaded through the sub-scanners. Each
// sub-scanner takes a cursor at the first byte of its lexeme and returns
// the cursor just past the bytes it consumed.
type cursor struct {
	pos  int
	line int
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLetter(ch byte) bool {
	lower := ch | 0x20
	return lower >= 'a' && lower <= 'z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

// advance moves the cursor to end, counting the newlines it passes over
func (c cursor) advance(src string, end int) cursor {
	for ; c.pos < end; c.pos++ {
		if src[c.pos] == '\n' {
			c.line++
		}
	}
	return c
}

// peekNonSpace returns the first non-whitespace byte at or after pos, or 0
// when only whitespace remains.
func peekNonSpace(src string, pos int) byte {
	for pos < len(src) && isWhitespace(src[pos]) {
		pos++
	}
	if pos < len(src) {
		return src[pos]
	}
	return 0
}
