package lexer

import (
	"errors"
	"strconv"
	"strings"
)

// lexemeClass is the outcome of classifying a run read by scanLexeme
type lexemeClass int

const (
	classInvalid lexemeClass = iota
	classKeyword
	classIdentifier
	classFunctionName // identifier followed by '(': not a symbol table entry
	classConstant
)

// scanLexeme reads the maximal run of bytes starting at c that contains no
// whitespace, operator character or punctuation character. Quotes do not
// end a lexeme.
func (d *Dialect) scanLexeme(src string, c cursor) (cursor, string) {
	end := c.pos
	for end < len(src) && !d.endsLexeme(src[end]) {
		end++
	}
	return c.advance(src, end), src[c.pos:end]
}

func (d *Dialect) endsLexeme(ch byte) bool {
	return isWhitespace(ch) || d.isOperatorChar(ch) || d.isPunctuation(ch)
}

// classify decides what a lexeme is. rest is the input following the
// lexeme, used to tell function names from other identifiers.
func (d *Dialect) classify(lexeme, rest string) lexemeClass {
	if lexeme == "" {
		return classInvalid
	}
	if d.IsKeyword(lexeme) {
		return classKeyword
	}
	if isIdentifier(lexeme) {
		if peekNonSpace(rest, 0) == '(' {
			return classFunctionName
		}
		return classIdentifier
	}
	if isDigit(lexeme[0]) && isNumericLiteral(lexeme) {
		return classConstant
	}
	return classInvalid
}

func isIdentifier(lexeme string) bool {
	if !isIdentStart(lexeme[0]) {
		return false
	}
	for i := 1; i < len(lexeme); i++ {
		ch := lexeme[i]
		if !isLetter(ch) && !isDigit(ch) && ch != '_' {
			return false
		}
	}
	return true
}

// isNumericLiteral reports whether the whole lexeme reads as a C floating
// point number (decimal with optional exponent, or hexadecimal with an
// optional binary exponent). Magnitudes out of float64 range still count.
func isNumericLiteral(lexeme string) bool {
	if strings.ContainsRune(lexeme, '_') {
		return false
	}
	s := lexeme
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && !strings.ContainsAny(s, "pP") {
		s += "p0"
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
