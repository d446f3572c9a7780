package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/cybertec-postgresql/clex/internal/analysis"
)

// SymbolMatch is a symbol of a stored analysis with the files declaring it
type SymbolMatch struct {
	Name     string
	Files    []string
	Distance int // Levenshtein distance to the query; 0 without a query
}

// FindSymbols lists the symbols of a. Without a query every symbol is
// returned alphabetically; with a query only fuzzy matches are returned,
// closest first.
func FindSymbols(a *analysis.Analysis, query string) []SymbolMatch {
	files := a.SymbolFiles()
	names := a.Symbols()

	if query == "" {
		matches := make([]SymbolMatch, 0, len(names))
		for _, name := range names {
			matches = append(matches, SymbolMatch{Name: name, Files: files[name]})
		}
		return matches
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	matches := make([]SymbolMatch, 0, len(ranks))
	for _, r := range ranks {
		matches = append(matches, SymbolMatch{Name: r.Target, Files: files[r.Target], Distance: r.Distance})
	}
	return matches
}

// Symbols prints the symbols of the stored analysis, optionally filtered by
// a fuzzy query
func Symbols(analysisFile, query string, stdout io.Writer) error {
	store := analysis.NewStore(analysisFile)
	if !store.Exists() {
		return fmt.Errorf("analysis file not found: %s (run 'clex scan' first)", analysisFile)
	}

	a, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load analysis data: %w", err)
	}

	matches := FindSymbols(a, query)
	if len(matches) == 0 {
		if query != "" {
			fmt.Fprintf(stdout, "No symbols matching %q\n", query)
		}
		return nil
	}

	for i, m := range matches {
		fmt.Fprintf(stdout, "%d) %s\t%s\n", i+1, m.Name, strings.Join(m.Files, ", "))
	}
	return nil
}
