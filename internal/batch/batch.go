// Package batch expands file patterns and minifies the matching files
// concurrently to measure how much each one shrinks. It never writes the
// minified output anywhere.
package batch

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"minipress/internal/detect"
	"minipress/internal/minifier"
	"minipress/internal/report"
	"minipress/internal/session"
)

// DefaultWorkers is used when no positive worker count is configured.
const DefaultWorkers = 4

// Options configures a Runner.
type Options struct {
	// BaseDir is the directory paths are read relative to.
	BaseDir string
	Workers int
	// Gzip also measures gzip sizes of the original and minified text.
	Gzip     bool
	Minifier minifier.Options
}

// Runner minifies a list of files with a bounded number of workers.
type Runner struct {
	engine session.Minifier
	opts   Options
	logger *slog.Logger
}

// NewRunner returns a Runner using engine.
func NewRunner(engine session.Minifier, opts Options, logger *slog.Logger) *Runner {
	if opts.Workers < 1 {
		opts.Workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{engine: engine, opts: opts, logger: logger}
}

// Run minifies every file and returns one entry per file in input order.
// A file that fails is recorded in its entry and does not stop the run; the
// returned error is only set when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, files []string) ([]report.Entry, error) {
	r.logger.Info("audit.start", "files", len(files), "workers", r.opts.Workers)
	start := time.Now()

	entries := make([]report.Entry, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := r.audit(ctx, path)
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			entries[i] = entry
			return nil
		})
	}

	err := g.Wait()
	r.logger.Info("audit.done", "files", len(files), "elapsed", time.Since(start))
	return entries, err
}

// audit builds the entry for one file. The error is returned only so the
// caller can tell cancellation apart; it is also stored in the entry.
func (r *Runner) audit(ctx context.Context, path string) (report.Entry, error) {
	entry := report.Entry{Path: path}

	text, err := session.ReadFile(ctx, filepath.Join(r.opts.BaseDir, path))
	if err != nil {
		entry.Error = err.Error()
		return entry, err
	}

	res, err := r.engine.Minify(ctx, text, r.opts.Minifier)
	if errors.Is(err, minifier.ErrEmptyInput) {
		entry.Skipped = true
		return entry, nil
	}
	if err != nil {
		r.logger.Warn("audit.file_failed", "path", path, "error", err)
		entry.Type = r.typeOf(text)
		entry.Error = err.Error()
		return entry, err
	}

	entry.Type = res.Type
	entry.OriginalSize = res.OriginalSize
	entry.MinifiedSize = res.MinifiedSize
	entry.Savings = res.Savings()

	if r.opts.Gzip {
		entry.GzipOriginal, entry.GzipMinified, err = minifier.GzipSizes(text, res)
		if err != nil {
			entry.Error = err.Error()
			return entry, err
		}
	}

	r.logger.Debug("audit.file_done", "path", path, "type", res.Type, "saved", entry.Savings)
	return entry, nil
}

func (r *Runner) typeOf(text string) detect.FileType {
	if r.opts.Minifier.Type != detect.Auto {
		return r.opts.Minifier.Type
	}
	return detect.Detect(text)
}
