package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Data.Workers)
	assert.True(t, cfg.Data.DropNulls)
	assert.Equal(t, time.Sunday, cfg.Data.Weekday())
	assert.Empty(t, cfg.Datasets)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tsa.yaml", `
log:
  level: debug
  format: json
data:
  date_format: "%m/%d/%Y"
  week_end: Friday
  workers: 2
datasets:
  - name: MSFT
    path: data/MSFT.csv
  - name: BMW
    path: /abs/BMW.xlsx
    sheet: Prices
    fields: [Open, Close]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "%m/%d/%Y", cfg.Data.DateFormat)
	assert.Equal(t, time.Friday, cfg.Data.Weekday())
	assert.Equal(t, 2, cfg.Data.Workers)
	require.Len(t, cfg.Datasets, 2)
	assert.Equal(t, filepath.Join(dir, "data", "MSFT.csv"), cfg.Datasets[0].Path)
	assert.Equal(t, "/abs/BMW.xlsx", cfg.Datasets[1].Path)

	bmw, ok := cfg.Dataset("BMW")
	require.True(t, ok)
	assert.Equal(t, []string{"Open", "Close"}, bmw.Fields)

	_, ok = cfg.Dataset("AMZN")
	assert.False(t, ok)
}

func TestEnvOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tsa.yaml", "log:\n  level: debug\n")

	t.Setenv("TSA_LOG_LEVEL", "warn")
	t.Setenv("TSA_DATA_WORKERS", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Data.Workers)
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TSA_DATA_DATE_COLUMN=Timestamp\n")
	path := writeFile(t, dir, "tsa.yaml", "data:\n  workers: 1\n")
	t.Cleanup(func() { os.Unsetenv("TSA_DATA_DATE_COLUMN") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Timestamp", cfg.Data.DateColumn)
}

func TestMalformedDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TSA-LOG-LEVEL=debug\n")
	path := writeFile(t, dir, "tsa.yaml", "data:\n  workers: 1\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env")
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"bad week end", "data:\n  week_end: someday\n"},
		{"zero workers", "data:\n  workers: 0\n"},
		{"dataset without path", "datasets:\n  - name: MSFT\n"},
		{"duplicate dataset", "datasets:\n  - {name: A, path: a.csv}\n  - {name: A, path: b.csv}\n"},
		{"malformed yaml", "log: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "tsa.yaml", tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
