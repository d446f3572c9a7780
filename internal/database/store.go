package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/cybertec-postgresql/clex/internal/analysis"
	clexerrors "github.com/cybertec-postgresql/clex/internal/errors"
	"github.com/cybertec-postgresql/clex/internal/lexer"
	"github.com/jackc/pgx/v5"
)

var (
	tokenColumns  = []string{"file_id", "seq", "line", "kind", "text"}
	symbolColumns = []string{"file_id", "name"}
	errorColumns  = []string{"file_id", "seq", "line", "lexeme", "reason"}
)

// ErrRunNotFound is returned when a requested run does not exist
var ErrRunNotFound = errors.New("analysis run not found")

// SaveAnalysis stores the analysis as a new run and returns its id.
// Everything is written in one transaction; token, symbol and error rows
// are streamed with COPY.
func (p *Pool) SaveAnalysis(ctx context.Context, a *analysis.Analysis) (int64, error) {
	tx, err := p.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var runID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO clex_run (schema_version, analyzed_at, file_count, token_count, error_count)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		a.Version, a.Timestamp, len(a.Files), a.TotalTokens(), a.TotalErrors(),
	).Scan(&runID)
	if err != nil {
		return 0, clexerrors.NewPersistError("clex_run", err)
	}

	for _, path := range a.SortedPaths() {
		if err := saveFile(ctx, tx, runID, a.Files[path]); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit analysis: %w", err)
	}
	return runID, nil
}

func saveFile(ctx context.Context, tx pgx.Tx, runID int64, f *analysis.FileAnalysis) error {
	var fileID int64
	err := tx.QueryRow(ctx,
		`INSERT INTO clex_file (run_id, path, lines) VALUES ($1, $2, $3) RETURNING id`,
		runID, f.Path, f.Lines,
	).Scan(&fileID)
	if err != nil {
		return clexerrors.NewPersistError("clex_file", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"clex_token"}, tokenColumns,
		pgx.CopyFromSlice(len(f.Tokens), func(i int) ([]any, error) {
			t := f.Tokens[i]
			return []any{fileID, i, t.Line, t.Kind.String(), []byte(t.Text)}, nil
		}))
	if err != nil {
		return clexerrors.NewPersistError("clex_token", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"clex_symbol"}, symbolColumns,
		pgx.CopyFromSlice(len(f.Symbols), func(i int) ([]any, error) {
			return []any{fileID, []byte(f.Symbols[i])}, nil
		}))
	if err != nil {
		return clexerrors.NewPersistError("clex_symbol", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"clex_error"}, errorColumns,
		pgx.CopyFromSlice(len(f.Errors), func(i int) ([]any, error) {
			e := f.Errors[i]
			return []any{fileID, i, e.Line, []byte(e.Lexeme), string(e.Reason)}, nil
		}))
	if err != nil {
		return clexerrors.NewPersistError("clex_error", err)
	}
	return nil
}

// LatestRunID returns the id of the most recently stored run
func (p *Pool) LatestRunID(ctx context.Context) (int64, error) {
	var id int64
	err := p.QueryRow(ctx, "SELECT id FROM clex_run ORDER BY id DESC LIMIT 1").Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrRunNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query latest run: %w", err)
	}
	return id, nil
}

// LoadAnalysis rebuilds a stored run
func (p *Pool) LoadAnalysis(ctx context.Context, runID int64) (*analysis.Analysis, error) {
	a := &analysis.Analysis{Files: make(map[string]*analysis.FileAnalysis)}
	err := p.QueryRow(ctx,
		"SELECT schema_version, analyzed_at FROM clex_run WHERE id = $1", runID,
	).Scan(&a.Version, &a.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %d: %w", runID, err)
	}

	rows, err := p.Query(ctx, "SELECT id, path, lines FROM clex_file WHERE run_id = $1", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load files of run %d: %w", runID, err)
	}
	ids := make(map[int64]*analysis.FileAnalysis)
	for rows.Next() {
		var id int64
		f := &analysis.FileAnalysis{
			Tokens:  []lexer.Token{},
			Symbols: []string{},
			Errors:  []lexer.LexicalError{},
		}
		if err := rows.Scan(&id, &f.Path, &f.Lines); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		ids[id] = f
		a.Files[f.Path] = f
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load files of run %d: %w", runID, err)
	}

	for id, f := range ids {
		if err := p.loadFile(ctx, id, f); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (p *Pool) loadFile(ctx context.Context, fileID int64, f *analysis.FileAnalysis) error {
	rows, err := p.Query(ctx, "SELECT line, kind, text FROM clex_token WHERE file_id = $1 ORDER BY seq", fileID)
	if err != nil {
		return fmt.Errorf("failed to load tokens of %s: %w", f.Path, err)
	}
	for rows.Next() {
		var (
			t    lexer.Token
			kind string
			text []byte
		)
		if err := rows.Scan(&t.Line, &kind, &text); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan token of %s: %w", f.Path, err)
		}
		if err := t.Kind.UnmarshalText([]byte(kind)); err != nil {
			rows.Close()
			return fmt.Errorf("%s: %w", f.Path, err)
		}
		t.Text = string(text)
		f.Tokens = append(f.Tokens, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load tokens of %s: %w", f.Path, err)
	}

	rows, err = p.Query(ctx, `SELECT name FROM clex_symbol WHERE file_id = $1 ORDER BY name`, fileID)
	if err != nil {
		return fmt.Errorf("failed to load symbols of %s: %w", f.Path, err)
	}
	symbols, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return fmt.Errorf("failed to load symbols of %s: %w", f.Path, err)
	}
	for _, name := range symbols {
		f.Symbols = append(f.Symbols, string(name))
	}

	rows, err = p.Query(ctx, "SELECT line, lexeme, reason FROM clex_error WHERE file_id = $1 ORDER BY seq", fileID)
	if err != nil {
		return fmt.Errorf("failed to load errors of %s: %w", f.Path, err)
	}
	for rows.Next() {
		var (
			e      lexer.LexicalError
			lexeme []byte
			reason string
		)
		if err := rows.Scan(&e.Line, &lexeme, &reason); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan lexical error of %s: %w", f.Path, err)
		}
		e.Lexeme = string(lexeme)
		e.Reason = lexer.Reason(reason)
		f.Errors = append(f.Errors, e)
	}
	rows.Close()
	return rows.Err()
}
