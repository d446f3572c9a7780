package types

import "fmt"

// Config holds runtime configuration combining the config file, flags, and defaults
type Config struct {
	// Scanner
	Strict                bool     // Report unterminated literals/comments and stray bytes
	MaxLexemeLength       int      // 0 = unlimited
	DistinctCharacterKind bool     // Tag character literals as Character instead of String
	ExtraKeywords         []string // Added to the C keyword table
	ExtraOperators        []string // Added to the C operator table

	// Execution
	Parallelism int // Max files tokenized concurrently (1 = sequential)

	// Output
	OutputFile       string // Analysis data output path
	ConnectionString string // Optional PostgreSQL database receiving the analysis
	Verbose          bool   // Enable debug logging
}

// ConfigError describes an invalid configuration value
type ConfigError struct {
	Field      string
	Value      interface{}
	Message    string
	Suggestion string
}

func (e *ConfigError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s\nSuggestion: %s", e.Field, e.Message, e.Suggestion)
}
