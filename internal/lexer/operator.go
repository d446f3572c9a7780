package lexer

// scanOperator applies maximal munch against the dialect's operator table,
// trying the longest candidate first. Lookahead is bounded by the longest
// table entry, so three-byte entries such as ">>=" are reachable. When no
// multi-byte entry matches, the single byte at the cursor is the operator.
func (d *Dialect) scanOperator(src string, c cursor) (cursor, string) {
	for n := d.maxOperator; n > 1; n-- {
		if c.pos+n > len(src) {
			continue
		}
		if candidate := src[c.pos : c.pos+n]; d.IsOperator(candidate) {
			return c.advance(src, c.pos+n), candidate
		}
	}
	return c.advance(src, c.pos+1), src[c.pos : c.pos+1]
}
