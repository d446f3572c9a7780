package analysis

import (
	"sort"
	"time"

	"github.com/cybertec-postgresql/clex/internal/lexer"
)

// SchemaVersion is written into every stored analysis
const SchemaVersion = "1.0"

// Analysis represents the aggregated tokenization of a set of files
type Analysis struct {
	Version   string                   `json:"version"`   // Schema version (e.g., "1.0")
	Timestamp time.Time                `json:"timestamp"` // When the analysis ran
	Files     map[string]*FileAnalysis `json:"files"`     // Key: relative file path
}

// FileAnalysis holds the scanner output for one file
type FileAnalysis struct {
	Path    string               `json:"path"`
	Lines   int                  `json:"lines"`
	Tokens  []lexer.Token        `json:"tokens"`
	Symbols []string             `json:"symbols"` // sorted
	Errors  []lexer.LexicalError `json:"errors"`  // scan order
}

// NewAnalysis creates a new empty Analysis
func NewAnalysis() *Analysis {
	return &Analysis{
		Version:   SchemaVersion,
		Timestamp: time.Now(),
		Files:     make(map[string]*FileAnalysis),
	}
}

// AddResult stores the scanner result for a file, replacing any earlier one
func (a *Analysis) AddResult(path string, res *lexer.Result) *FileAnalysis {
	if a.Files == nil {
		a.Files = make(map[string]*FileAnalysis)
	}
	fa := &FileAnalysis{
		Path:    path,
		Lines:   res.Lines,
		Tokens:  res.Tokens,
		Symbols: res.Symbols,
		Errors:  res.Errors,
	}
	a.Files[path] = fa
	return fa
}

// SortedPaths returns file paths in alphabetical order for deterministic output
func (a *Analysis) SortedPaths() []string {
	paths := make([]string, 0, len(a.Files))
	for p := range a.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// TotalTokens returns the number of tokens across all files
func (a *Analysis) TotalTokens() int {
	n := 0
	for _, f := range a.Files {
		n += len(f.Tokens)
	}
	return n
}

// TotalErrors returns the number of lexical errors across all files
func (a *Analysis) TotalErrors() int {
	n := 0
	for _, f := range a.Files {
		n += len(f.Errors)
	}
	return n
}

// KindCounts returns how many tokens of each kind were found across all files
func (a *Analysis) KindCounts() map[lexer.Kind]int {
	counts := make(map[lexer.Kind]int)
	for _, f := range a.Files {
		for k, n := range f.KindCounts() {
			counts[k] += n
		}
	}
	return counts
}

// Symbols returns the union of all symbol tables, sorted
func (a *Analysis) Symbols() []string {
	st := lexer.NewSymbolTable()
	for _, p := range a.SortedPaths() {
		for _, s := range a.Files[p].Symbols {
			st.Add(s)
		}
	}
	return st.Sorted()
}

// SymbolFiles maps each symbol to the sorted paths of the files declaring it
func (a *Analysis) SymbolFiles() map[string][]string {
	out := make(map[string][]string)
	for _, p := range a.SortedPaths() {
		for _, s := range a.Files[p].Symbols {
			out[s] = append(out[s], p)
		}
	}
	return out
}

// KindCounts returns how many tokens of each kind the file contains
func (f *FileAnalysis) KindCounts() map[lexer.Kind]int {
	counts := make(map[lexer.Kind]int)
	for _, t := range f.Tokens {
		counts[t.Kind]++
	}
	return counts
}
