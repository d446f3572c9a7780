package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipComment(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantPos    int
		wantLine   int
		terminated bool
	}{
		{"line comment stops before newline", "// hi\nx", 5, 1, true},
		{"line comment at end of input", "// hi", 5, 1, true},
		{"block comment", "/* a */x", 7, 1, true},
		{"block comment counts newlines", "/* a\n\nb */x", 10, 3, true},
		{"empty block comment", "/**/", 4, 1, true},
		{"slash star slash is not closed", "/*/", 3, 1, false},
		{"unterminated block comment", "/* a\nb", 6, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, terminated := skipComment(tt.src, cursor{line: 1})
			assert.Equal(t, tt.wantPos, next.pos)
			assert.Equal(t, tt.wantLine, next.line)
			assert.Equal(t, tt.terminated, terminated)
		})
	}
}

func TestIsCommentStart(t *testing.T) {
	assert.True(t, isCommentStart("//", 0))
	assert.True(t, isCommentStart("a/*", 1))
	assert.False(t, isCommentStart("/", 0))
	assert.False(t, isCommentStart("/=", 0))
	assert.False(t, isCommentStart("*/", 0))
}

func TestScanQuoted(t *testing.T) {
	tests := []struct {
		src        string
		start      int
		wantText   string
		wantPos    int
		terminated bool
	}{
		{`"abc" x`, 0, `"abc"`, 5, true},
		{`x = ""`, 4, `""`, 6, true},
		{`'a'`, 0, `'a'`, 3, true},
		{`'"'`, 0, `'"'`, 3, true},
		{`"it's"`, 0, `"it's"`, 6, true},
		{`"open`, 0, `"open`, 5, false},
		{`'`, 0, `'`, 1, false},
	}
	for _, tt := range tests {
		next, text, terminated := scanQuoted(tt.src, cursor{pos: tt.start, line: 1})
		assert.Equal(t, tt.wantText, text, "src=%q", tt.src)
		assert.Equal(t, tt.wantPos, next.pos, "src=%q", tt.src)
		assert.Equal(t, tt.terminated, terminated, "src=%q", tt.src)
	}
}

func TestScanOperator(t *testing.T) {
	d := C()
	tests := []struct {
		src  string
		want string
	}{
		{"+", "+"},
		{"++x", "++"},
		{"+=1", "+="},
		{"<<=", "<<="},
		{"<<", "<"},
		{"<=>", "<="},
		{"=!", "="},
		{"&&&", "&&"},
	}
	for _, tt := range tests {
		next, op := d.scanOperator(tt.src, cursor{line: 1})
		assert.Equal(t, tt.want, op, "src=%q", tt.src)
		assert.Equal(t, len(tt.want), next.pos, "src=%q", tt.src)
	}
}

func TestScanLexeme(t *testing.T) {
	d := C()
	tests := []struct {
		src  string
		want string
	}{
		{"abc def", "abc"},
		{"abc+1", "abc"},
		{"abc;", "abc"},
		{"abc.d", "abc"},
		{"abc\n", "abc"},
		{`abc"d"`, `abc"d"`},
		{"a$b c", "a$b"},
		{"12e5", "12e5"},
	}
	for _, tt := range tests {
		next, lexeme := d.scanLexeme(tt.src, cursor{line: 1})
		assert.Equal(t, tt.want, lexeme, "src=%q", tt.src)
		assert.Equal(t, len(tt.want), next.pos, "src=%q", tt.src)
	}
}

func TestClassify(t *testing.T) {
	d := C()
	tests := []struct {
		lexeme string
		rest   string
		want   lexemeClass
	}{
		{"while", "", classKeyword},
		{"while", "(", classKeyword},
		{"count", ";", classIdentifier},
		{"_tmp1", "", classIdentifier},
		{"main", "()", classFunctionName},
		{"main", " \n (", classFunctionName},
		{"42", "", classConstant},
		{"1abc", "", classInvalid},
		{"a$b", "", classInvalid},
		{"", "", classInvalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.classify(tt.lexeme, tt.rest), "lexeme=%q rest=%q", tt.lexeme, tt.rest)
	}
}

func TestIsNumericLiteral(t *testing.T) {
	valid := []string{"0", "42", "007", "08", "1e10", "1E5", "0x1F", "0XFF", "0x1p3", "1e999"}
	for _, s := range valid {
		assert.True(t, isNumericLiteral(s), "%q should be a constant", s)
	}

	invalid := []string{"1e", "10L", "1f", "0x", "0xg", "1_000", "0b101", "123abc", "1x"}
	for _, s := range invalid {
		assert.False(t, isNumericLiteral(s), "%q should not be a constant", s)
	}
}

func TestCursorAdvance(t *testing.T) {
	c := cursor{pos: 0, line: 1}.advance("a\nb\nc", 4)
	assert.Equal(t, cursor{pos: 4, line: 3}, c)
}

func TestPeekNonSpace(t *testing.T) {
	assert.Equal(t, byte('('), peekNonSpace(" \t\r\n(", 0))
	assert.Equal(t, byte(0), peekNonSpace("   ", 0))
	assert.Equal(t, byte(0), peekNonSpace("", 0))
}
