package fileutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/data/nexo_transactions.csv", "/data/nexo_transactions_cointracker.csv"},
		{"nexo.csv", "nexo_cointracker.csv"},
		{"exports/report.txt", filepath.Join("exports", "report_cointracker.csv")},
		{"/data/archive.2021.csv", "/data/archive.2021_cointracker.csv"},
		{"/data/noext", "/data/noext_cointracker.csv"},
		{"/data/.hidden", "/data/.hidden_cointracker.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.expected), DeriveOutputPath(filepath.FromSlash(tt.input)))
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing.csv")))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(file, []byte("a,b\n"), 0600))

	data, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.csv")
}
