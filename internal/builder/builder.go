// Package builder orchestrates a site build: it resolves the route table for
// the selected mode, renders every page through the composer, and emits the
// page artifacts, robots file, sitemap and deploy descriptor atomically.
package builder

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"git.home.luguber.info/inful/citypress/internal/catalog"
	"git.home.luguber.info/inful/citypress/internal/compose"
	"git.home.luguber.info/inful/citypress/internal/config"
	"git.home.luguber.info/inful/citypress/internal/errors"
	"git.home.luguber.info/inful/citypress/internal/linkcheck"
	"git.home.luguber.info/inful/citypress/internal/site"
	"git.home.luguber.info/inful/citypress/internal/topology"
)

// Builder runs one build for one immutable (config, catalog, mode) triple.
// Two builders with different configs can run in the same process without
// interference; nothing is read from ambient globals.
type Builder struct {
	cfg       *config.Config
	mode      site.Mode
	origin    topology.Origin
	locations []catalog.Location
	outputDir string
	stageDir  string
	links     topology.Resolver
	composer  *compose.Composer
}

// New creates a builder. The mode string from configuration is validated
// here; an unknown mode aborts before any filesystem work.
func New(cfg *config.Config, locations []catalog.Location, outputDir string) (*Builder, error) {
	mode, err := site.ParseMode(cfg.Build.Mode)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, "invalid site mode").WithContext("mode", cfg.Build.Mode)
	}

	origin := topology.NewOrigin(cfg.Build.SiteOrigin, cfg.Build.SubdomainBase)
	links := topology.NewResolver(mode, origin)
	return &Builder{
		cfg:       cfg,
		mode:      mode,
		origin:    origin,
		locations: locations,
		outputDir: filepath.Clean(outputDir),
		links:     links,
		composer:  compose.New(cfg.Brand, filepath.Base(cfg.Output.ImageFile), links),
	}, nil
}

// Build generates the complete site. It either promotes a fully built site
// into the output directory or fails without touching the previous output.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	report := newReport(b.mode)
	slog.Info("Starting site build",
		slog.String("mode", b.mode.String()),
		slog.Int("locations", len(b.locations)),
		slog.String("output", b.outputDir))

	routes, err := topology.ResolveRoutes(b.mode, b.locations, b.origin)
	if err != nil {
		return report.fail(err), err
	}
	report.Routes = len(routes)
	b.warnOnSlugCollisions(routes)

	if err := b.beginStaging(); err != nil {
		return report.fail(err), err
	}
	defer b.abortStaging()

	if err := b.copySiteImage(); err != nil {
		return report.fail(err), err
	}

	rendered, err := b.renderAll(ctx, routes)
	if err != nil {
		return report.fail(err), err
	}

	for i, route := range routes {
		if err := b.writePage(route, rendered[i]); err != nil {
			return report.fail(err), err
		}
	}
	report.Pages = len(routes)

	if err := writeFile(filepath.Join(b.stageDir, "robots.txt"), robotsTxt()); err != nil {
		return report.fail(err), err
	}
	canonicals := make([]string, len(routes))
	for i, route := range routes {
		canonicals[i] = route.Canonical
	}
	if err := writeFile(filepath.Join(b.stageDir, "sitemap.xml"), sitemapXML(canonicals)); err != nil {
		return report.fail(err), err
	}
	report.SitemapEntries = len(canonicals)

	if b.cfg.Build.VerifyLinks {
		issues, err := linkcheck.VerifyDir(b.stageDir)
		if err != nil {
			return report.fail(err), err
		}
		if len(issues) > 0 {
			for _, issue := range issues {
				slog.Error("Broken internal link", slog.String("page", issue.Page), slog.String("url", issue.URL))
			}
			err := errors.New(errors.CategoryCompose, "broken internal links").WithContext("count", len(issues))
			return report.fail(err), err
		}
	}

	if err := b.finalizeStaging(); err != nil {
		return report.fail(err), err
	}

	// Post-publish metadata lives beside the page set, never inside it.
	if err := writeFile(b.deployDescriptorPath(), b.deployDescriptor()); err != nil {
		return report.fail(err), err
	}

	report.finish()
	if err := report.Write(b.reportPath()); err != nil {
		slog.Warn("Failed to write build report", "error", err)
	}

	slog.Info("Site build complete",
		slog.String("mode", b.mode.String()),
		slog.Int("pages", report.Pages),
		slog.String("output", b.outputDir))
	return report, nil
}

// renderAll renders every route, optionally in parallel. Rendering order is
// unconstrained; results are reassembled by route index so artifacts and the
// sitemap stay deterministic regardless of worker count.
func (b *Builder) renderAll(ctx context.Context, routes []topology.Route) ([]string, error) {
	workers := b.cfg.Build.Workers
	if workers < 1 {
		workers = 1
	}

	rendered := make([]string, len(routes))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := range routes {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.CategoryInternal, "build canceled")
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			html, err := b.renderRoute(routes[i])
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			rendered[i] = html
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return rendered, nil
}

// warnOnSlugCollisions surfaces catalog entries whose slugs map to the same
// route path. The collision itself is preserved (last write wins); only the
// observability is new.
func (b *Builder) warnOnSlugCollisions(routes []topology.Route) {
	seen := make(map[string]topology.RouteKind, len(routes))
	for _, route := range routes {
		if prev, ok := seen[route.Path]; ok {
			slog.Warn("Slug collision: route path emitted twice, last write wins",
				slog.String("path", route.Path),
				slog.String("kind", string(route.Kind)),
				slog.String("previous_kind", string(prev)))
			continue
		}
		seen[route.Path] = route.Kind
	}
}

func (b *Builder) writePage(route topology.Route, html string) error {
	rel := filepath.FromSlash(strings.TrimPrefix(route.Path, "/"))
	path := filepath.Join(b.stageDir, rel, "index.html")
	if err := writeFile(path, html); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "write page").WithContext("path", route.Path)
	}
	return nil
}

// copySiteImage copies the configured site image into the output root.
// A missing image is fatal: partial sites are never published.
func (b *Builder) copySiteImage() error {
	src, err := os.Open(b.cfg.Output.ImageFile)
	if err != nil {
		return errors.Wrap(err, errors.CategoryConfig, "missing site image").WithContext("path", b.cfg.Output.ImageFile)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(filepath.Join(b.stageDir, filepath.Base(b.cfg.Output.ImageFile)))
	if err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "create site image")
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "copy site image")
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func (b *Builder) reportPath() string {
	return filepath.Join(filepath.Dir(b.outputDir), "build-report.json")
}

func (b *Builder) deployDescriptorPath() string {
	return filepath.Join(filepath.Dir(b.outputDir), "wrangler.jsonc")
}
