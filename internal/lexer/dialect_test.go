package lexer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect_C(t *testing.T) {
	d := C()
	assert.Len(t, d.Keywords(), 32)
	assert.Len(t, d.Operators(), 28)
	assert.Equal(t, 3, d.MaxOperatorLen())
	assert.True(t, d.IsOperator(">>="))
	assert.False(t, d.IsOperator(">>"))
	assert.True(t, d.IsKeyword("volatile"))
	assert.False(t, d.IsKeyword("inline"))
}

func TestDialect_Extend(t *testing.T) {
	d := C().Extend([]string{"inline", "bool"}, []string{"->", "::"})

	assert.True(t, d.IsKeyword("inline"))
	assert.True(t, d.IsOperator("->"))
	assert.False(t, C().IsKeyword("inline"), "extending must not touch the base dialect")

	res := NewScanner(d, Options{}).Tokenize("inline p->x; a::b")
	assert.Equal(t, []string{"inline", "p", "->", "x", ";", "a", "::", "b"}, texts(res))
	assert.Equal(t, []Kind{Keyword, Identifier, Operator, Identifier, Punctuation, Identifier, Operator, Identifier}, kinds(res))

	// ':' is not a C operator character, so C skips it between lexemes
	assert.Equal(t, []string{"a", "b"}, texts(Tokenize("a :: b")))
}

func TestDialect_Custom(t *testing.T) {
	d := NewDialect([]string{"let"}, []string{"=", ":="}, "=:", ";")
	res := NewScanner(d, Options{}).Tokenize("let x := 1; int")

	assert.Equal(t, []Kind{Keyword, Identifier, Operator, Constant, Punctuation, Identifier}, kinds(res))
	assert.Equal(t, []string{"int", "x"}, res.Symbols)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Punctuation", Punctuation.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())

	k, ok := ParseKind("Constant")
	assert.True(t, ok)
	assert.Equal(t, Constant, k)

	_, ok = ParseKind("Bogus")
	assert.False(t, ok)
}

func TestToken_JSON(t *testing.T) {
	data, err := json.Marshal(Token{Kind: Keyword, Text: "int", Line: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Keyword","text":"int","line":3}`, string(data))

	var decoded Token
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"Operator","text":"==","line":1}`), &decoded))
	assert.Equal(t, Token{Kind: Operator, Text: "==", Line: 1}, decoded)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"Nope"}`), &decoded))
	assert.Equal(t, "Keyword: int", Token{Kind: Keyword, Text: "int"}.String())
}
