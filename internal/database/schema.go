package database

import (
	"context"
	"fmt"
)

// schemaStatements create the tables receiving stored analyses. They are
// idempotent and executed one at a time. Lexeme columns are bytea since
// source files may hold NUL bytes or invalid UTF-8.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clex_run (
		id             bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		schema_version text        NOT NULL,
		analyzed_at    timestamptz NOT NULL,
		file_count     integer     NOT NULL,
		token_count    integer     NOT NULL,
		error_count    integer     NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clex_file (
		id     bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		run_id bigint  NOT NULL REFERENCES clex_run (id) ON DELETE CASCADE,
		path   text    NOT NULL,
		lines  integer NOT NULL,
		UNIQUE (run_id, path)
	)`,
	`CREATE TABLE IF NOT EXISTS clex_token (
		file_id bigint  NOT NULL REFERENCES clex_file (id) ON DELETE CASCADE,
		seq     integer NOT NULL,
		line    integer NOT NULL,
		kind    text    NOT NULL,
		text    bytea   NOT NULL,
		PRIMARY KEY (file_id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS clex_symbol (
		file_id bigint NOT NULL REFERENCES clex_file (id) ON DELETE CASCADE,
		name    bytea  NOT NULL,
		PRIMARY KEY (file_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS clex_error (
		file_id bigint  NOT NULL REFERENCES clex_file (id) ON DELETE CASCADE,
		seq     integer NOT NULL,
		line    integer NOT NULL,
		lexeme  bytea   NOT NULL,
		reason  text    NOT NULL,
		PRIMARY KEY (file_id, seq)
	)`,
}

// EnsureSchema creates the clex tables if they do not exist yet
func (p *Pool) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := p.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
