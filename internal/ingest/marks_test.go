package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMarksCSV(t *testing.T) {
	path := writeTempFile(t, "marks.csv", `Aarav,75
Vihaan,82
Broken,notanumber
TooMany,50,extra
OutOfRange,150
Kiara,92
`)

	records, skipped, err := LoadMarksCSV(path)
	require.NoError(t, err)

	assert.Equal(t, 3, skipped)
	require.Len(t, records, 3)
	assert.Equal(t, "Aarav", records[0].Name)
	assert.Equal(t, 75, records[0].Marks)
	assert.Equal(t, "Kiara", records[2].Name)
	assert.Equal(t, 92, records[2].Marks)
}

func TestLoadMarksCSV_MissingFile(t *testing.T) {
	_, _, err := LoadMarksCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadMarksCSV_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "")

	records, skipped, err := LoadMarksCSV(path)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, skipped)
}

func TestLoadMarksCSV_DuplicateNamesKeepOrder(t *testing.T) {
	path := writeTempFile(t, "marks.csv", `Aarav,75
Aarav,80
`)

	records, _, err := LoadMarksCSV(path)
	require.NoError(t, err)

	// duplicates are allowed, identity is positional
	require.Len(t, records, 2)
	assert.Equal(t, 75, records[0].Marks)
	assert.Equal(t, 80, records[1].Marks)
}
