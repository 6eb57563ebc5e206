package builder

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/citypress/internal/errors"
)

// Builds are staged in a sibling directory and promoted by rename, so a
// failed build can never leave a half-written site in the output location.

func (b *Builder) beginStaging() error {
	stage := b.outputDir + "_stage"
	// Drop any stage left behind by a crashed build.
	if err := os.RemoveAll(stage); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "clear stale staging directory").WithContext("staging", stage)
	}
	if err := os.MkdirAll(stage, 0o755); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "create staging directory").WithContext("staging", stage)
	}
	b.stageDir = stage
	slog.Debug("Initialized staging directory", "staging", stage, "final", b.outputDir)
	return nil
}

// finalizeStaging promotes the staging directory to the final output
// location: the existing output (if any) moves to <output>.prev, staging is
// renamed into place, and the backup is removed best-effort.
func (b *Builder) finalizeStaging() error {
	if b.stageDir == "" {
		return errors.New(errors.CategoryInternal, "no staging directory initialized")
	}

	prev := b.outputDir + ".prev"
	if err := os.RemoveAll(prev); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "remove previous backup").WithContext("path", prev)
	}
	if _, err := os.Stat(b.outputDir); err == nil {
		if err := os.Rename(b.outputDir, prev); err != nil {
			return errors.Wrap(err, errors.CategoryFileSystem, "backup existing output")
		}
	}
	if err := os.Rename(b.stageDir, b.outputDir); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "promote staging directory")
	}
	b.stageDir = ""

	if err := os.RemoveAll(prev); err != nil {
		slog.Warn("Failed to remove previous backup", "path", prev, "error", err)
	}
	slog.Debug("Promoted staging directory", "output", b.outputDir)
	return nil
}

// abortStaging removes the staging directory after a failed build. Safe to
// call after a successful finalize; it becomes a no-op.
func (b *Builder) abortStaging() {
	if b.stageDir == "" {
		return
	}
	dir := b.stageDir
	b.stageDir = ""
	if err := os.RemoveAll(dir); err != nil {
		slog.Warn("Failed to remove staging directory after abort", "staging", dir, "error", err)
	}
}
