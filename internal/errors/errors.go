package errors

import (
	"fmt"
)

// ReadError represents a source file that could not be read
type ReadError struct {
	File string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.File, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError
func NewReadError(file string, err error) *ReadError {
	return &ReadError{
		File: file,
		Err:  err,
	}
}

// ConnectionError represents PostgreSQL connection failure
type ConnectionError struct {
	Message    string
	Suggestion string
}

func (e *ConnectionError) Error() string {
	if e.Suggestion == "" {
		return "database connection failed: " + e.Message
	}
	return fmt.Sprintf("database connection failed: %s (%s)", e.Message, e.Suggestion)
}

// PersistError represents a failure writing analysis data to PostgreSQL
type PersistError struct {
	Table string
	Err   error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Table, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// NewPersistError creates a new PersistError
func NewPersistError(table string, err error) *PersistError {
	return &PersistError{
		Table: table,
		Err:   err,
	}
}
