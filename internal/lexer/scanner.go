// Package lexer turns C source text into classified tokens, collecting a
// symbol table of identifiers and the lexemes it could not classify.
//
// The scanner dispatches on the byte at the cursor, in this order:
// whitespace, comment openers (// and /*), identifier/number starts,
// quotes, operator characters, punctuation. Bytes matching none of these
// are skipped. Every sub-scanner takes the cursor at the first byte of its
// lexeme and hands back the cursor past the last byte it consumed, so the
// sub-scanners hold no state of their own.
//
// Usage:
//
//	s := lexer.NewScanner(lexer.C(), lexer.Options{})
//	res := s.Tokenize(src)
//	for _, tok := range res.Tokens {
//	    // tok.Kind, tok.Text, tok.Line
//	}
package lexer

// Options tune the scanner beyond its lenient defaults. The zero value
// reproduces the classic behavior.
type Options struct {
	// Strict records unterminated literals, unterminated block comments and
	// unexpected bytes as lexical errors. The token stream is unchanged.
	Strict bool

	// MaxLexemeLength caps the text of emitted tokens; 0 disables the cap.
	// Longer lexemes are truncated and reported with ReasonTooLong. The
	// cursor still moves past the whole lexeme.
	MaxLexemeLength int

	// DistinctCharacterKind tags character literals as Character instead
	// of String.
	DistinctCharacterKind bool
}

// Result is the outcome of one Tokenize call. The caller owns it.
type Result struct {
	Tokens  []Token        `json:"tokens"`
	Symbols []string       `json:"symbols"` // sorted alphabetically
	Errors  []LexicalError `json:"errors"`  // in scan order
	Lines   int            `json:"lines"`
}

// Count returns the number of tokens of the given kind
func (r *Result) Count(kind Kind) int {
	n := 0
	for _, t := range r.Tokens {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// HasErrors reports whether any lexical error was recorded
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Scanner tokenizes source text. A Scanner may be reused for any number of
// inputs one after another, but is not safe for concurrent use; give each
// goroutine its own.
type Scanner struct {
	dialect *Dialect
	opts    Options

	tokens  []Token
	symbols *SymbolTable
	errors  []LexicalError
}

// NewScanner creates a scanner over the given dialect. A nil dialect means C().
func NewScanner(dialect *Dialect, opts Options) *Scanner {
	if dialect == nil {
		dialect = C()
	}
	return &Scanner{
		dialect: dialect,
		opts:    opts,
		symbols: NewSymbolTable(),
	}
}

// Tokenize scans src with the C dialect and default options
func Tokenize(src string) *Result {
	return NewScanner(C(), Options{}).Tokenize(src)
}

// Dialect returns the tables the scanner classifies with
func (s *Scanner) Dialect() *Dialect {
	return s.dialect
}

// Tokenize scans the whole of src once, left to right
func (s *Scanner) Tokenize(src string) *Result {
	s.reset()

	c := cursor{line: 1}
	for c.pos < len(src) {
		ch := src[c.pos]

		switch {
		case isWhitespace(ch):
			c = c.advance(src, c.pos+1)

		case isCommentStart(src, c.pos):
			next, terminated := skipComment(src, c)
			if !terminated {
				s.strictError(src[c.pos:c.pos+2], c.line, ReasonUnterminatedComment)
			}
			c = next

		case isIdentStart(ch) || isDigit(ch):
			c = s.lexeme(src, c)

		case ch == '"' || ch == '\'':
			c = s.literal(src, c)

		case s.dialect.isOperatorChar(ch):
			next, op := s.dialect.scanOperator(src, c)
			s.emit(Operator, op, c.line)
			c = next

		case s.dialect.isPunctuation(ch):
			s.emit(Punctuation, src[c.pos:c.pos+1], c.line)
			c = c.advance(src, c.pos+1)

		default:
			s.strictError(src[c.pos:c.pos+1], c.line, ReasonUnexpectedChar)
			c = c.advance(src, c.pos+1)
		}
	}

	return &Result{
		Tokens:  s.tokens,
		Symbols: s.symbols.Sorted(),
		Errors:  s.errors,
		Lines:   c.line,
	}
}

func (s *Scanner) reset() {
	s.tokens = make([]Token, 0, 64)
	s.errors = make([]LexicalError, 0)
	s.symbols.Reset()
}

// lexeme reads and classifies an identifier, keyword or constant.
// Unclassifiable lexemes become errors and emit no token.
func (s *Scanner) lexeme(src string, c cursor) cursor {
	next, lexeme := s.dialect.scanLexeme(src, c)

	switch s.dialect.classify(lexeme, src[next.pos:]) {
	case classKeyword:
		s.emit(Keyword, lexeme, c.line)
	case classIdentifier:
		s.emit(Identifier, lexeme, c.line)
		s.symbols.Add(lexeme)
	case classFunctionName:
		s.emit(Identifier, lexeme, c.line)
	case classConstant:
		s.emit(Constant, lexeme, c.line)
	default:
		if lexeme != "" {
			s.errors = append(s.errors, LexicalError{Lexeme: lexeme, Line: c.line, Reason: ReasonInvalidLexeme})
		}
	}
	return next
}

func (s *Scanner) literal(src string, c cursor) cursor {
	next, text, terminated := scanQuoted(src, c)

	kind, reason := String, ReasonUnterminatedString
	if src[c.pos] == '\'' {
		reason = ReasonUnterminatedChar
		if s.opts.DistinctCharacterKind {
			kind = Character
		}
	}

	s.emit(kind, text, c.line)
	if !terminated {
		s.strictError(text, c.line, reason)
	}
	return next
}

// emit appends a token, applying the length cap
func (s *Scanner) emit(kind Kind, text string, line int) Token {
	if limit := s.opts.MaxLexemeLength; limit > 0 && len(text) > limit {
		s.errors = append(s.errors, LexicalError{Lexeme: text, Line: line, Reason: ReasonTooLong})
		text = text[:limit]
	}
	tok := Token{Kind: kind, Text: text, Line: line}
	s.tokens = append(s.tokens, tok)
	return tok
}

func (s *Scanner) strictError(lexeme string, line int, reason Reason) {
	if s.opts.Strict {
		s.errors = append(s.errors, LexicalError{Lexeme: lexeme, Line: line, Reason: reason})
	}
}
