package lexer

import "sort"

// SymbolTable is the deduplicated set of identifier names found in a scan
type SymbolTable struct {
	seen  map[string]struct{}
	names []string
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{seen: make(map[string]struct{})}
}

// Add inserts name unless it is already present. It reports whether the
// table grew.
func (t *SymbolTable) Add(name string) bool {
	if _, ok := t.seen[name]; ok {
		return false
	}
	t.seen[name] = struct{}{}
	t.names = append(t.names, name)
	return true
}

// Contains reports whether name is in the table
func (t *SymbolTable) Contains(name string) bool {
	_, ok := t.seen[name]
	return ok
}

// Len returns the number of entries
func (t *SymbolTable) Len() int {
	return len(t.names)
}

// Names returns the entries in insertion order
func (t *SymbolTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Sorted returns the entries in alphabetical order
func (t *SymbolTable) Sorted() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	sort.Strings(out)
	return out
}

// Reset empties the table for reuse
func (t *SymbolTable) Reset() {
	clear(t.seen)
	t.names = t.names[:0]
}
