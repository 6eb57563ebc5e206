package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/citypress/internal/builder"
	"git.home.luguber.info/inful/citypress/internal/catalog"
	"git.home.luguber.info/inful/citypress/internal/history"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Output directory for the generated site (overrides config)"`
	Mode        string `short:"m" help:"Site mode: regular, cost, state, subdomain, regular-city-only (overrides config)"`
	Catalog     string `help:"Catalog CSV path (overrides config)"`
	Workers     int    `short:"w" help:"Render concurrency (overrides config)"`
	VerifyLinks bool   `name:"verify-links" help:"Verify internal links before publishing"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if b.Mode != "" {
		cfg.Build.Mode = b.Mode
	}
	if b.Workers > 0 {
		cfg.Build.Workers = b.Workers
	}
	if b.VerifyLinks {
		cfg.Build.VerifyLinks = true
	}

	catalogPath := cfg.Catalog.Path
	if b.Catalog != "" {
		catalogPath = b.Catalog
	}
	locations, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bld, err := builder.New(cfg, locations, resolveOutputDir(b.Output, cfg))
	if err != nil {
		return err
	}
	report, buildErr := bld.Build(ctx)
	recordRun(ctx, cfg.Build.HistoryPath, report)
	return buildErr
}

// recordRun appends the build outcome to the history database when one is
// configured. History failures never fail the build.
func recordRun(ctx context.Context, path string, report *builder.Report) {
	if path == "" || report == nil {
		return
	}
	store, err := history.Open(path)
	if err != nil {
		slog.Warn("Failed to open build history", "path", path, "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	err = store.Append(ctx, history.Run{
		ID:       report.ID,
		Mode:     report.Mode,
		Pages:    report.Pages,
		Outcome:  string(report.Outcome),
		Started:  report.Start,
		Duration: report.End.Sub(report.Start),
	})
	if err != nil {
		slog.Warn("Failed to record build run", "error", err)
	}
}
