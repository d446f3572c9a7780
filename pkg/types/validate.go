package types

import (
	"fmt"
	"strings"
)

const (
	maxParallelism = 100

	// Shorter caps would cut three-character operators apart
	minLexemeLength = 3
)

// Validate checks the configuration and returns a *ConfigError for the
// first invalid field
func (c *Config) Validate() error {
	if c.Parallelism < 1 || c.Parallelism > maxParallelism {
		return &ConfigError{
			Field:      "parallel",
			Value:      c.Parallelism,
			Message:    fmt.Sprintf("parallelism must be between 1 and %d, got %d", maxParallelism, c.Parallelism),
			Suggestion: "Use --parallel=1 for sequential scanning or a small multiple of your CPU count.",
		}
	}

	if c.MaxLexemeLength < 0 || (c.MaxLexemeLength > 0 && c.MaxLexemeLength < minLexemeLength) {
		return &ConfigError{
			Field:      "max-lexeme",
			Value:      c.MaxLexemeLength,
			Message:    fmt.Sprintf("lexeme length cap must be 0 or at least %d, got %d", minLexemeLength, c.MaxLexemeLength),
			Suggestion: "Use --max-lexeme=0 to disable the cap.",
		}
	}

	if strings.TrimSpace(c.OutputFile) == "" {
		return &ConfigError{
			Field:      "output-file",
			Value:      c.OutputFile,
			Message:    "output file path must not be empty",
			Suggestion: "Use --output-file=.clex/analysis.json or set output_file in the [run] section of clex.toml.",
		}
	}

	for _, kw := range c.ExtraKeywords {
		if !isWord(kw) {
			return &ConfigError{
				Field:      "keywords",
				Value:      kw,
				Message:    fmt.Sprintf("keyword %q is not identifier-shaped", kw),
				Suggestion: "Keywords must start with a letter or '_' followed by letters, digits or '_'.",
			}
		}
	}

	for _, op := range c.ExtraOperators {
		if !isOperator(op) {
			return &ConfigError{
				Field:      "operators",
				Value:      op,
				Message:    fmt.Sprintf("operator %q contains letters, digits, quotes, whitespace or punctuation", op),
				Suggestion: "Operators may only use symbol characters such as + - * / % = < > ! & | ^ ~ : ? @ # $.",
			}
		}
	}

	return nil
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '_', ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func isOperator(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch <= ' ' || ch >= 0x7f || isWord(string(ch)) || (ch >= '0' && ch <= '9') ||
			strings.IndexByte("\"'(){},;[].\\", ch) >= 0 {
			return false
		}
	}
	return true
}
