package lexer

import "strings"

// isCommentStart reports whether a // or /* comment opens at pos
func isCommentStart(src string, pos int) bool {
	if pos+1 >= len(src) || src[pos] != '/' {
		return false
	}
	return src[pos+1] == '/' || src[pos+1] == '*'
}

// skipComment consumes the comment opening at c. A line comment stops
// before its newline so the main loop still counts it. A block comment
// runs through the closing */; when the input ends first the whole rest of
// the input is consumed and terminated is false.
func skipComment(src string, c cursor) (next cursor, terminated bool) {
	if src[c.pos+1] == '/' {
		end := strings.IndexByte(src[c.pos:], '\n')
		if end < 0 {
			return c.advance(src, len(src)), true
		}
		return c.advance(src, c.pos+end), true
	}

	body := c.pos + 2
	end := strings.Index(src[body:], "*/")
	if end < 0 {
		return c.advance(src, len(src)), false
	}
	return c.advance(src, body+end+2), true
}
