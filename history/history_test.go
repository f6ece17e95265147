package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/xbrowse/xbrowse/model"
)

func writeRun(t *testing.T, resultsDir, dirName string, set model.RunResultSet) {
	t.Helper()
	dir := filepath.Join(resultsDir, dirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	data, err := json.Marshal(set)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "results.json"), data, 0644))
}

func TestLoadEntries(t *testing.T) {
	resultsDir := t.TempDir()
	older := model.RunResultSet{RunID: "older", Timestamp: time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)}
	newer := model.RunResultSet{RunID: "newer", Timestamp: time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)}
	writeRun(t, resultsDir, "report_20260827_090000", older)
	writeRun(t, resultsDir, "report_20260829_140000", newer)

	// Broken and unrelated entries are skipped.
	broken := filepath.Join(resultsDir, "report_20260828_000000")
	require.NoError(t, os.MkdirAll(broken, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(broken, "results.json"), []byte("{"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(resultsDir, "scratch"), 0755))

	entries, err := LoadEntries(zerolog.Nop(), resultsDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	require.Equal(t, "newer", entries[0].Set.RunID)
	require.Equal(t, "older", entries[1].Set.RunID)
	require.Equal(t, filepath.Join(resultsDir, "report_20260829_140000"), entries[0].FullPath)
}

func TestLoadEntriesMissingDir(t *testing.T) {
	entries, err := LoadEntries(zerolog.Nop(), filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	require.Empty(t, entries)
}
