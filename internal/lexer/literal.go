package lexer

import "strings"

// scanQuoted reads a string or character literal opening at c. The text
// runs from the opening quote through the next occurrence of the same
// quote, inclusive. Backslashes have no special meaning. When the input
// ends first the literal extends to the end and terminated is false.
func scanQuoted(src string, c cursor) (next cursor, text string, terminated bool) {
	quote := src[c.pos]
	end := strings.IndexByte(src[c.pos+1:], quote)
	if end < 0 {
		return c.advance(src, len(src)), src[c.pos:], false
	}
	stop := c.pos + 1 + end + 1
	return c.advance(src, stop), src[c.pos:stop], true
}
