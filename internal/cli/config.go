package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/cybertec-postgresql/clex/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// ConfigFileName is picked up from the working directory when no
// --config flag is given
const ConfigFileName = "clex.toml"

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	Strict:                false,
	MaxLexemeLength:       0,
	DistinctCharacterKind: false,
	Parallelism:           1,
	OutputFile:            ".clex/analysis.json",
	ConnectionString:      "",
	Verbose:               false,
}

// fileConfig mirrors clex.toml. Pointer fields tell an absent key from a
// zero value so the file only overrides what it mentions.
type fileConfig struct {
	Scanner struct {
		Strict                *bool `toml:"strict"`
		MaxLexemeLength       *int  `toml:"max_lexeme_length"`
		DistinctCharacterKind *bool `toml:"distinct_character_kind"`
	} `toml:"scanner"`
	Dialect struct {
		ExtraKeywords  []string `toml:"extra_keywords"`
		ExtraOperators []string `toml:"extra_operators"`
	} `toml:"dialect"`
	Run struct {
		Parallel   *int    `toml:"parallel"`
		OutputFile *string `toml:"output_file"`
		Connection *string `toml:"connection"`
		Verbose    *bool   `toml:"verbose"`
	} `toml:"run"`
}

// LoadConfig returns the defaults overlaid with a TOML config file.
// An empty path loads clex.toml from the working directory if present;
// an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig

	explicit := path != ""
	if !explicit {
		path = ConfigFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, &ConfigError{
			Field:      "config",
			Value:      path,
			Message:    fmt.Sprintf("cannot read config file: %v", err),
			Suggestion: "Check the --config path or remove the flag to use defaults.",
		}
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, tomlConfigError(path, err)
	}

	fc.apply(&cfg)
	return &cfg, nil
}

func tomlConfigError(path string, err error) *ConfigError {
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) {
		return &ConfigError{
			Field:      "config",
			Value:      path,
			Message:    fmt.Sprintf("unknown key in %s: %s", path, strictErr.String()),
			Suggestion: "Valid sections are [scanner], [dialect] and [run].",
		}
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return &ConfigError{
			Field:      "config",
			Value:      path,
			Message:    fmt.Sprintf("%s:%d:%d: %s", path, row, col, decodeErr.Error()),
			Suggestion: "Fix the TOML syntax at the reported position.",
		}
	}

	return &ConfigError{
		Field:   "config",
		Value:   path,
		Message: err.Error(),
	}
}

func (fc *fileConfig) apply(c *Config) {
	if v := fc.Scanner.Strict; v != nil {
		c.Strict = *v
	}
	if v := fc.Scanner.MaxLexemeLength; v != nil {
		c.MaxLexemeLength = *v
	}
	if v := fc.Scanner.DistinctCharacterKind; v != nil {
		c.DistinctCharacterKind = *v
	}
	c.ExtraKeywords = append(c.ExtraKeywords, fc.Dialect.ExtraKeywords...)
	c.ExtraOperators = append(c.ExtraOperators, fc.Dialect.ExtraOperators...)
	if v := fc.Run.Parallel; v != nil {
		c.Parallelism = *v
	}
	if v := fc.Run.OutputFile; v != nil {
		c.OutputFile = *v
	}
	if v := fc.Run.Connection; v != nil {
		c.ConnectionString = *v
	}
	if v := fc.Run.Verbose; v != nil {
		c.Verbose = *v
	}
}

// Flags holds the command-line values of `clex scan`. Zero values and nil
// pointers mean the flag was not given; boolean flags can only switch a
// setting on.
type Flags struct {
	Parallel   int
	Strict     bool
	MaxLexeme  *int
	CharKind   bool
	OutputFile string
	Connection string
	Verbose    bool
}

// ApplyFlagsToConfig applies command-line flag values to configuration
func ApplyFlagsToConfig(c *Config, f Flags) {
	if f.Parallel != 0 {
		c.Parallelism = f.Parallel
	}
	if f.Strict {
		c.Strict = true
	}
	if f.MaxLexeme != nil {
		c.MaxLexemeLength = *f.MaxLexeme
	}
	if f.CharKind {
		c.DistinctCharacterKind = true
	}
	if f.OutputFile != "" {
		c.OutputFile = f.OutputFile
	}
	if f.Connection != "" {
		c.ConnectionString = f.Connection
	}
	if f.Verbose {
		c.Verbose = true
	}
}
