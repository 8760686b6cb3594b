package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("sheet", "", "")
	fs.String("engine", "", "")
	fs.StringP("format", "o", "", "")
	fs.Int("header-row", 0, "")
	fs.Int("offset", 0, "")
	fs.Int("count", 0, "")
	fs.BoolP("verbose", "v", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", "", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultFile, cfg.File)
	assert.Equal(t, DefaultEngine, cfg.Engine)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultHeaderRow, cfg.HeaderRow)
	assert.Equal(t, DefaultPreviewCount, cfg.Preview.Count)
	assert.Equal(t, DefaultWindowOffset, cfg.Window.Offset)
	assert.Equal(t, DefaultWindowCount, cfg.Window.Count)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Source)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, ConfigFileName, `
file: pedidos/Cliente-9000.xlsx
sheet: Pedidos
format: table
window:
  offset: 8
  count: 4
`)

	cfg, err := Load("", "", nil)
	require.NoError(t, err)

	assert.Equal(t, ConfigFileName, cfg.Source)
	assert.Equal(t, "pedidos/Cliente-9000.xlsx", cfg.File)
	assert.Equal(t, "Pedidos", cfg.Sheet)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, 8, cfg.Window.Offset)
	assert.Equal(t, 4, cfg.Window.Count)
	assert.Equal(t, DefaultPreviewCount, cfg.Preview.Count)
}

func TestLoadExplicitConfigMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("does-not-exist.yaml", "", nil)
	assert.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeConfig(t, dir, "custom.yml", `
format: json
window:
  count: 4
preview:
  count: 7
`)

	t.Setenv("SHEETPEEK_FORMAT", "toon")
	t.Setenv("SHEETPEEK_WINDOW__COUNT", "6")
	t.Setenv("SHEETPEEK_HEADER_ROW", "3")

	cfg, err := Load(path, "window", newFlags(t, "--count", "2", "-o", "table"))
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, "table", cfg.Format, "flag beats env")
	assert.Equal(t, 2, cfg.Window.Count, "section flag beats env")
	assert.Equal(t, 3, cfg.HeaderRow, "env beats default")
	assert.Equal(t, 7, cfg.Preview.Count, "other section untouched")
}

func TestLoadSectionlessCount(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", "", newFlags(t, "--count", "2"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPreviewCount, cfg.Preview.Count)
	assert.Equal(t, DefaultWindowCount, cfg.Window.Count)
}

func TestLoadInvalid(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("", "", newFlags(t, "--header-row", "0"))
	assert.ErrorContains(t, err, "header_row")

	_, err = Load("", "window", newFlags(t, "--offset=-1"))
	assert.ErrorContains(t, err, "window.offset")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), NewLogger(&buf, false))

	GetLogger(ctx).Debug("hidden")
	GetLogger(ctx).Info("opened workbook", "sheet", "Pedidos")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "sheet=Pedidos")

	buf.Reset()
	NewLogger(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")

	// A context without a logger still yields a usable one.
	GetLogger(context.Background()).Info("discarded")
}
