package lexer

import "fmt"

// Kind is the coarse category assigned to a scanned lexeme.
type Kind int

const (
	Keyword Kind = iota
	Identifier
	Constant
	String
	Operator
	Punctuation

	// Character is only produced when Options.DistinctCharacterKind is set.
	// By default character literals are reported as String.
	Character
)

var kindNames = [...]string{
	Keyword:     "Keyword",
	Identifier:  "Identifier",
	Constant:    "Constant",
	String:      "String",
	Operator:    "Operator",
	Punctuation: "Punctuation",
	Character:   "Character",
}

// String returns the display name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name so stored analyses stay readable
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown token kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name produced by MarshalText
func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown token kind %q", text)
	}
	*k = kind
	return nil
}

// ParseKind looks up a kind by its display name
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Token is a classified lexeme. Literal tokens keep their surrounding quotes.
type Token struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	Line int    `json:"line"` // line on which the lexeme starts
}

func (t Token) String() string {
	return t.Kind.String() + ": " + t.Text
}
