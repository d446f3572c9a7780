package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store handles persistence of analysis data
type Store struct {
	filePath string
}

// NewStore creates a new analysis store
func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
	}
}

// Save writes analysis data to disk as JSON
func (s *Store) Save(a *Analysis) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis data: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write analysis file: %w", err)
	}

	return nil
}

// Load reads analysis data from disk
func (s *Store) Load() (*Analysis, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("analysis file not found: %s", s.filePath)
		}
		return nil, fmt.Errorf("failed to read analysis file: %w", err)
	}

	var a Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse analysis file: %w", err)
	}
	if a.Files == nil {
		a.Files = make(map[string]*FileAnalysis)
	}

	return &a, nil
}

// Exists checks if the analysis file exists
func (s *Store) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Delete removes the analysis file
func (s *Store) Delete() error {
	if !s.Exists() {
		return nil
	}
	return os.Remove(s.filePath)
}

// Path returns the file path where analysis data is stored
func (s *Store) Path() string {
	return s.filePath
}
