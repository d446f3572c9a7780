package lexer

import (
	"sort"
	"strings"
)

// Dialect holds the fixed classification tables a Scanner works with.
// A Dialect is immutable once built; Extend returns a new value.
type Dialect struct {
	keywords      map[string]struct{}
	operators     map[string]struct{}
	operatorChars string
	punctuation   string
	maxOperator   int
}

var cKeywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"int", "long", "register", "return", "short", "signed", "sizeof", "static",
	"struct", "switch", "typedef", "union", "unsigned", "void", "volatile", "while",
}

var cOperators = []string{
	"+", "-", "*", "/", "%", "=", "<", ">", "!", "&", "|", "^", "~",
	"+=", "-=", "*=", "/=", "%=", "==", "<=", ">=", "!=", "&&", "||",
	">>=", "<<=", "++", "--",
}

const (
	cOperatorChars = "+-*/%=<>!&|^~"
	cPunctuation   = "(){},;[]."
)

var cDialect = NewDialect(cKeywords, cOperators, cOperatorChars, cPunctuation)

// C returns the C89 dialect: 32 keywords, 28 operators and the
// punctuation set "(){},;[].".
func C() *Dialect {
	return cDialect
}

// NewDialect builds a dialect from the given tables
func NewDialect(keywords, operators []string, operatorChars, punctuation string) *Dialect {
	d := &Dialect{
		keywords:      make(map[string]struct{}, len(keywords)),
		operators:     make(map[string]struct{}, len(operators)),
		operatorChars: operatorChars,
		punctuation:   punctuation,
	}
	for _, kw := range keywords {
		d.keywords[kw] = struct{}{}
	}
	for _, op := range operators {
		if op == "" {
			continue
		}
		d.operators[op] = struct{}{}
		if len(op) > d.maxOperator {
			d.maxOperator = len(op)
		}
	}
	return d
}

// Extend returns a copy of d with additional keywords and operators.
// Every byte of an added operator becomes an operator character, so the
// operator can be dispatched and also ends identifier lexemes.
func (d *Dialect) Extend(keywords, operators []string) *Dialect {
	chars := d.operatorChars
	for _, op := range operators {
		for i := 0; i < len(op); i++ {
			if strings.IndexByte(chars, op[i]) < 0 {
				chars += string(op[i])
			}
		}
	}
	return NewDialect(
		append(d.Keywords(), keywords...),
		append(d.Operators(), operators...),
		chars,
		d.punctuation,
	)
}

// IsKeyword reports whether word is a reserved word of the dialect
func (d *Dialect) IsKeyword(word string) bool {
	_, ok := d.keywords[word]
	return ok
}

// IsOperator reports whether op is an entry of the operator table
func (d *Dialect) IsOperator(op string) bool {
	_, ok := d.operators[op]
	return ok
}

func (d *Dialect) isOperatorChar(ch byte) bool {
	return strings.IndexByte(d.operatorChars, ch) >= 0
}

func (d *Dialect) isPunctuation(ch byte) bool {
	return strings.IndexByte(d.punctuation, ch) >= 0
}

// Keywords returns the keyword table in sorted order
func (d *Dialect) Keywords() []string {
	return sortedKeys(d.keywords)
}

// Operators returns the operator table in sorted order
func (d *Dialect) Operators() []string {
	return sortedKeys(d.operators)
}

// MaxOperatorLen is the length of the longest operator, which bounds the
// lookahead of the operator reader.
func (d *Dialect) MaxOperatorLen() int {
	return d.maxOperator
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
