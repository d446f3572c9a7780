package lexer

import "fmt"

// Reason names the kind of lexical error recorded for a lexeme
type Reason string

const (
	ReasonInvalidLexeme Reason = "invalid lexeme"

	// Recorded only in strict mode
	ReasonUnterminatedString  Reason = "unterminated string literal"
	ReasonUnterminatedChar    Reason = "unterminated character literal"
	ReasonUnterminatedComment Reason = "unterminated comment"
	ReasonUnexpectedChar      Reason = "unexpected character"

	// Recorded when Options.MaxLexemeLength is exceeded
	ReasonTooLong Reason = "lexeme too long"
)

// LexicalError records a lexeme the scanner could not accept
type LexicalError struct {
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
	Reason Reason `json:"reason"`
}

func (e LexicalError) Error() string {
	return fmt.Sprintf("line %d: %s %s", e.Line, e.Lexeme, e.Reason)
}

// String renders the error the way the analyzer prints it: the raw lexeme
// followed by the reason.
func (e LexicalError) String() string {
	return e.Lexeme + " " + string(e.Reason)
}
