// Package pipeline orchestrates input discovery, the concurrent per-file
// conversion jobs, and batch summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/rawpress/internal/config"
	"github.com/backmassage/rawpress/internal/display"
	"github.com/backmassage/rawpress/internal/logging"
	"github.com/backmassage/rawpress/internal/naming"
	"github.com/backmassage/rawpress/internal/rawcodec"
)

// OutputExt is the fixed extension of converted files.
const OutputExt = ".dng"

// SoftwareTag is stamped into every converted DNG. The version part is
// injected at build time through the cmd package.
var SoftwareTag = "rawpress"

// Run executes one batch: preflight checks, fan-out of one job per input
// path across a bounded worker pool, fan-in, and a summary log. The returned
// Results hold exactly one terminal outcome per input path.
//
// A returned error is batch-fatal (invalid template or unusable destination
// directory) and means no job was dispatched. Per-job failures never produce
// a Run error; they are recorded in Results and logged as warnings.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, codec rawcodec.Codec, paths []string) (Results, error) {
	// An empty template compiles to the original-filename reference alone,
	// so the unset case needs no special handling downstream.
	format, err := naming.Compile(cfg.FormatStr)
	if err != nil {
		return nil, fmt.Errorf("invalid filename format: %w", err)
	}

	if err := ensureDestDir(cfg.OutputDir); err != nil {
		return nil, err
	}

	logBatchHeader(cfg, log, len(paths))

	results := make(Results, len(paths))
	claims := newPathClaims()

	var g errgroup.Group
	g.SetLimit(cfg.Jobs)

	for i, path := range paths {
		g.Go(func() error {
			j := &job{
				cfg:    cfg,
				codec:  codec,
				format: format,
				claims: claims,
				input:  path,
			}
			res := j.run(ctx)
			results[i] = res
			logOutcome(cfg, log, res)
			return nil
		})
	}
	// Workers never return errors; Wait is purely the fan-in join.
	_ = g.Wait()

	logSummary(cfg, log, results)
	return results, nil
}

// ensureDestDir verifies the destination is a usable directory, creating it
// when missing. Failures here are batch-fatal.
func ensureDestDir(dir string) error {
	if st, err := os.Stat(dir); err == nil {
		if !st.IsDir() {
			return fmt.Errorf("destination path exists and isn't a directory: %s", dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("couldn't create destination directory: %w", err)
	}
	return nil
}

func logOutcome(cfg *config.Config, log *logging.Logger, res Result) {
	switch {
	case res.State == StateCompleted && cfg.DryRun:
		log.Info("dry run: would write DNG: %s", res.OutputPath)
	case res.State == StateCompleted:
		log.Success("Wrote DNG: %s", res.OutputPath)
		log.Debug("%s: %s in, %s out", res.InputPath,
			display.FormatBytes(res.InputBytes), display.FormatBytes(res.OutputBytes))
	default:
		log.Warn("while processing %q: %v", res.InputPath, res.Err)
	}
}

func logBatchHeader(cfg *config.Config, log *logging.Logger, total int) {
	log.Info("Found %d RAW files", total)
	log.Info("Workers: %d", cfg.Jobs)
	if cfg.FormatStr != "" {
		log.Info("Filename format: %s", cfg.FormatStr)
	}
	if cfg.Artist != "" {
		log.Info("Artist: %s", cfg.Artist)
	}
	if cfg.EmbedOriginal {
		log.Info("Embedding original RAW files (conversion may take considerably longer)")
	}
	if cfg.Force {
		log.Info("Overwrite: existing files will be replaced")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, results Results) {
	log.Info("==============================")
	skipped := results.Skipped()
	log.Info("Done: %d converted, %d skipped, %d failed",
		results.Completed(), skipped, results.Failed()-skipped)

	if cfg.DryRun {
		return
	}
	log.Info("  Read %s, wrote %s",
		display.FormatBytes(results.InputBytes()),
		display.FormatBytes(results.OutputBytes()))
}
