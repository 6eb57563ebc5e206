// Package config loads the site configuration: brand identity, content copy,
// pricing, catalog location, and the per-build settings (mode, origin,
// output). The loaded Config is an immutable value threaded explicitly into
// every resolver; nothing reads ambient globals after Load returns.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Brand   BrandConfig   `yaml:"brand"`
	Catalog CatalogConfig `yaml:"catalog"`
	Pricing PricingConfig `yaml:"pricing"`
	Content ContentConfig `yaml:"content"`
	Build   BuildConfig   `yaml:"build"`
	Output  OutputConfig  `yaml:"output"`
}

// BrandConfig carries site identity and the contact call-to-action.
type BrandConfig struct {
	BaseName  string `yaml:"base_name"`  // short name, drives the deploy descriptor
	BrandName string `yaml:"brand_name"` // topbar brand link text
	CTAText   string `yaml:"cta_text"`
}

// CatalogConfig points at the location dataset.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// PricingConfig is the base price range scaled by each location's
// cost-of-living factor.
type PricingConfig struct {
	CostLow  int `yaml:"cost_low"`
	CostHigh int `yaml:"cost_high"`
}

// Section is one heading/body pair of page copy. Body text may contain
// {cost_lo}, {cost_hi} and {City, State} placeholders, and any other
// {text} braces become home-page links. Markdown sections are rendered
// through goldmark instead of the placeholder pipeline.
type Section struct {
	Heading  string `yaml:"heading"`
	Body     string `yaml:"body"`
	Markdown bool   `yaml:"markdown,omitempty"`
}

// ContentConfig is the template copy for every page kind.
type ContentConfig struct {
	HomeTitle    string `yaml:"home_title"`
	HomeShort    string `yaml:"home_short"` // used where the full title would blow the clamp
	HomeSubtitle string `yaml:"home_subtitle"`

	CostTitle    string `yaml:"cost_title"`
	CostSubtitle string `yaml:"cost_subtitle"`

	HowToTitle    string `yaml:"howto_title"`
	HowToSubtitle string `yaml:"howto_subtitle"`

	ContactTitle    string `yaml:"contact_title"`
	ContactSubtitle string `yaml:"contact_subtitle"`
	ContactEmbed    string `yaml:"contact_embed"` // raw HTML fragment, e.g. a lead form embed

	Main  []Section `yaml:"main"`
	Cost  []Section `yaml:"cost"`
	HowTo []Section `yaml:"howto"`

	LocationCostHeading string `yaml:"location_cost_heading"`
	LocationCostBody    string `yaml:"location_cost_body"`
}

// BuildConfig is the per-build invocation configuration.
type BuildConfig struct {
	Mode          string `yaml:"mode"`
	SiteOrigin    string `yaml:"site_origin"`    // optional absolute origin for canonicals
	SubdomainBase string `yaml:"subdomain_base"` // optional base domain for subdomain mode
	Workers       int    `yaml:"workers"`        // render concurrency; 1 = sequential
	VerifyLinks   bool   `yaml:"verify_links"`
	HistoryPath   string `yaml:"history_path"` // sqlite build history; empty disables
	LogLevel      string `yaml:"log_level"`
}

// OutputConfig describes the build artifacts' destination.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	ImageFile string `yaml:"image_file"` // site image copied into the output root
}

// Load reads, expands and defaults a configuration file. A .env / .env.local
// file is layered into the environment first (never overriding existing
// variables), then ${VAR} references in the YAML are expanded.
func Load(path string) (*Config, error) {
	// Best effort: absence of a .env file is the common case.
	_ = godotenv.Load(".env", ".env.local")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the built-in configuration, used by `citypress init` and
// as the fallback when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	applyBrandDefaults(&c.Brand)
	applyContentDefaults(&c.Content)

	if c.Catalog.Path == "" {
		c.Catalog.Path = "cities.csv"
	}
	if c.Pricing.CostLow == 0 {
		c.Pricing.CostLow = 350
	}
	if c.Pricing.CostHigh == 0 {
		c.Pricing.CostHigh = 1500
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "public"
	}
	if c.Output.ImageFile == "" {
		c.Output.ImageFile = "picture.png"
	}
	if c.Build.Mode == "" {
		c.Build.Mode = "regular"
	}
	if c.Build.Workers == 0 {
		c.Build.Workers = 1
	}
	if c.Build.SiteOrigin == "" {
		c.Build.SiteOrigin = os.Getenv("SITE_ORIGIN")
	}
	if c.Build.SubdomainBase == "" {
		c.Build.SubdomainBase = os.Getenv("SUBDOMAIN_BASE")
	}
	if c.Build.LogLevel == "" {
		c.Build.LogLevel = "info"
	}
}
