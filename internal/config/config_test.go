package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "build:\n  mode: cost\n"))
	require.NoError(t, err)

	assert.Equal(t, "cost", cfg.Build.Mode)
	assert.Equal(t, "cities.csv", cfg.Catalog.Path)
	assert.Equal(t, 350, cfg.Pricing.CostLow)
	assert.Equal(t, 1500, cfg.Pricing.CostHigh)
	assert.Equal(t, "public", cfg.Output.Directory)
	assert.Equal(t, "picture.png", cfg.Output.ImageFile)
	assert.Equal(t, 1, cfg.Build.Workers)
	assert.NotEmpty(t, cfg.Brand.BrandName)
	assert.Len(t, cfg.Content.Main, 3)
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
brand:
  brand_name: Acme Repairs
pricing:
  cost_low: 100
  cost_high: 900
content:
  main:
    - heading: Hello
      body: World
      markdown: true
build:
  mode: state
  workers: 4
output:
  directory: dist
`))
	require.NoError(t, err)

	assert.Equal(t, "Acme Repairs", cfg.Brand.BrandName)
	assert.Equal(t, 100, cfg.Pricing.CostLow)
	assert.Equal(t, "state", cfg.Build.Mode)
	assert.Equal(t, 4, cfg.Build.Workers)
	assert.Equal(t, "dist", cfg.Output.Directory)
	require.Len(t, cfg.Content.Main, 1)
	assert.True(t, cfg.Content.Main[0].Markdown)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_CITYPRESS_ORIGIN", "https://env.example.com")
	cfg, err := Load(writeConfig(t, "build:\n  site_origin: ${TEST_CITYPRESS_ORIGIN}\n"))
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Build.SiteOrigin)
}

func TestOriginFallsBackToProcessEnv(t *testing.T) {
	t.Setenv("SITE_ORIGIN", "https://fallback.example.com")
	t.Setenv("SUBDOMAIN_BASE", "fallback.example.com")
	cfg, err := Load(writeConfig(t, "build:\n  mode: subdomain\n"))
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.example.com", cfg.Build.SiteOrigin)
	assert.Equal(t, "fallback.example.com", cfg.Build.SubdomainBase)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "regular", cfg.Build.Mode)
	assert.Contains(t, cfg.Content.LocationCostBody, "{City, State}")
}
