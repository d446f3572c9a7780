package analysis

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/cybertec-postgresql/clex/internal/discovery"
	"github.com/cybertec-postgresql/clex/internal/errors"
	"github.com/cybertec-postgresql/clex/internal/lexer"
	"github.com/cybertec-postgresql/clex/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() *Analysis {
	a := NewAnalysis()
	a.AddResult("main.c", lexer.Tokenize("int count = 1; helper(count); 9x;"))
	a.AddResult("lib/util.c", lexer.Tokenize("int count; char *name = \"x\";"))
	return a
}

func TestAnalysis_Aggregates(t *testing.T) {
	a := sampleAnalysis()

	assert.Equal(t, []string{"lib/util.c", "main.c"}, a.SortedPaths())
	assert.Equal(t, []string{"count", "name"}, a.Symbols())
	assert.Equal(t, map[string][]string{
		"count": {"lib/util.c", "main.c"},
		"name":  {"lib/util.c"},
	}, a.SymbolFiles())
	assert.Equal(t, 1, a.TotalErrors())
	assert.Equal(t, 20, a.TotalTokens())

	counts := a.KindCounts()
	assert.Equal(t, 3, counts[lexer.Keyword])
	assert.Equal(t, 1, counts[lexer.String])
}

func TestCollector_CollectFromRuns(t *testing.T) {
	clean := &runner.FileRun{
		File:   &discovery.DiscoveredFile{RelativePath: "a.c"},
		Status: runner.RunClean,
		Result: lexer.Tokenize("int a;"),
	}
	failed := &runner.FileRun{
		File:   &discovery.DiscoveredFile{RelativePath: "gone.c"},
		Status: runner.RunFailed,
		Error:  errors.NewReadError("gone.c", assert.AnError),
	}

	c := NewCollector()
	require.NoError(t, c.CollectFromRuns([]*runner.FileRun{clean, failed}))

	a := c.Analysis()
	assert.Len(t, a.Files, 1)
	assert.Equal(t, []string{"a"}, a.Files["a.c"].Symbols)
	assert.Equal(t, []*runner.FileRun{failed}, c.Failed())

	assert.Error(t, c.CollectFromRun(&runner.FileRun{}))
}

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "analysis.json")
	store := NewStore(path)
	assert.False(t, store.Exists())

	a := sampleAnalysis()
	a.Timestamp = time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(a))
	assert.True(t, store.Exists())
	assert.Equal(t, path, store.Path())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, a.Version, loaded.Version)
	assert.True(t, a.Timestamp.Equal(loaded.Timestamp))
	assert.Equal(t, a.Files, loaded.Files)

	require.NoError(t, store.Delete())
	assert.False(t, store.Exists())
	require.NoError(t, store.Delete(), "deleting a missing file is not an error")
}

func TestStore_LoadMissing(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "none.json")).Load()
	assert.ErrorContains(t, err, "analysis file not found")
}

func TestAnalysis_JSONSchema(t *testing.T) {
	data, err := json.Marshal(sampleAnalysis())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, field := range []string{"version", "timestamp", "files"} {
		assert.Contains(t, decoded, field)
	}

	files := decoded["files"].(map[string]interface{})
	main := files["main.c"].(map[string]interface{})
	first := main["tokens"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Keyword", first["kind"])
	assert.Equal(t, "int", first["text"])

	errs := main["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "invalid lexeme", errs[0].(map[string]interface{})["reason"])
}
