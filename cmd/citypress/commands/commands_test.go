package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/citypress/internal/config"
	"git.home.luguber.info/inful/citypress/internal/history"
)

func TestResolveOutputDir(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Directory = "dist"

	assert.Equal(t, "/tmp/site", resolveOutputDir("/tmp/site", cfg))
	assert.Equal(t, "dist", resolveOutputDir("", cfg))

	cfg.Output.Directory = ""
	assert.Equal(t, "public", resolveOutputDir("", cfg))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel(true))

	t.Setenv("CITYPRESS_LOG_LEVEL", "warn")
	assert.Equal(t, slog.LevelWarn, parseLogLevel(false))

	t.Setenv("CITYPRESS_LOG_LEVEL", "")
	assert.Equal(t, slog.LevelInfo, parseLogLevel(false))
}

func TestLoadConfigExplicitMissingPathFails(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestBuildCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "cities.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("city,state,col\nReno,NV,1.2\n"), 0o644))

	imagePath := filepath.Join(dir, "picture.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png"), 0o644))

	historyPath := filepath.Join(dir, "history.db")
	cfgPath := filepath.Join(dir, "config.yaml")
	cfgYAML := fmt.Sprintf(`
catalog:
  path: %q
output:
  image_file: %q
build:
  mode: regular
  history_path: %q
`, csvPath, imagePath, historyPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	out := filepath.Join(dir, "public")
	cmd := &BuildCmd{Output: out}
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: cfgPath}))

	for _, rel := range []string{"index.html", "reno-nv/index.html", "robots.txt", "sitemap.xml"} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}

	store, err := history.Open(historyPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	runs, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "regular", runs[0].Mode)
	assert.Equal(t, "success", runs[0].Outcome)
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	cmd := &InitCmd{}
	root := &CLI{Config: cfgPath}
	require.NoError(t, cmd.Run(&Global{}, root))

	// second run without --force fails, with --force succeeds
	require.Error(t, cmd.Run(&Global{}, root))
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, root))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "regular", cfg.Build.Mode)
}
